package model

// MapConversion holds the raw georeferencing metadata of a model. Optional
// fields are nil when the source leaves them unset.
type MapConversion struct {
	Eastings         float64
	Northings        float64
	OrthogonalHeight float64
	XAxisAbscissa    *float64
	XAxisOrdinate    *float64
	Scale            *float64
	SRSName          string // from the projected CRS; empty when unknown
}

// Model is a complete BIM element graph for one source file.
type Model struct {
	Schema     string // source schema name, e.g. "IFC4"
	SourceName string // source file name, used for external references

	Project *Element

	// Elements lists every product element in source enumeration order.
	Elements []*Element

	MapConversion *MapConversion
}

// Buildings returns the top-level spatial containers in source order.
func (m *Model) Buildings() []*Element {
	return m.ByKind(KindBuilding)
}

// ByKind returns all elements of the given kind in source order.
func (m *Model) ByKind(k Kind) []*Element {
	var out []*Element
	for _, e := range m.Elements {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// OfSourceType returns all elements whose source entity type matches
// exactly, in source order. Subtypes do not match; the assembler relies on
// this to avoid emitting an element twice.
func (m *Model) OfSourceType(sourceType string) []*Element {
	var out []*Element
	for _, e := range m.Elements {
		if e.SourceType == sourceType {
			out = append(out, e)
		}
	}
	return out
}
