package model

// Representation holds the shape metadata of an element.
type Representation struct {
	Parts []SubRepresentation
}

// SubRepresentation is one shape representation of an element, e.g. the
// "Body" or the "Axis" representation.
type SubRepresentation struct {
	Identifier string // "Body", "Axis", ...; empty when unset
	Type       string // "SweptSolid", "Brep", "Tessellation", ...
	Items      []*RepItem
}

// RepItem is one geometric item of a sub-representation, reduced to the
// appearance data the fallback material collector needs.
type RepItem struct {
	// Colors gathered from styled items attached to this item.
	Colors []RGB

	// Mapped holds the items of a mapped representation when this item is
	// a representation-map instance.
	Mapped []*RepItem

	// ColourMap is set when this item is a triangulated face set with an
	// indexed colour map.
	ColourMap *IndexedColourMap
}

// IndexedColourMap assigns palette colors to individual faces of a
// triangulated face set. Index entries are 1-based, per the source schema.
type IndexedColourMap struct {
	Colours []RGB
	Index   []int
}
