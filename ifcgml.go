// Package ifcgml provides a fluent API for converting IFC building models
// into CityGML 3.0 documents.
//
// Basic usage:
//
//	doc, warnings, err := ifcgml.Open("building.ifc").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", ifcgml.FormatWarnings(warnings))
//	}
//
// With options:
//
//	_, err := ifcgml.Open("building.ifc").
//	    WithGeometrySidecar("building.meshes.json").
//	    BucketOrphanOpenings().
//	    Georeference(ifcgml.Theresienwiese).
//	    WriteGML("building.gml")
//
// For advanced use cases, the lower-level step and citygml packages are
// also available.
package ifcgml

import (
	"github.com/bimshape/ifcgml/citygml"
	"github.com/bimshape/ifcgml/geom"
	"github.com/bimshape/ifcgml/model"
)

// Warning is a non-fatal condition reported during conversion.
type Warning = citygml.Warning

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	return citygml.FormatWarnings(warnings)
}

// Theresienwiese is a fixed georeference anchor in Munich, useful for
// inspecting non-georeferenced models in a GIS.
var Theresienwiese = geom.Theresienwiese

// Open prepares a conversion of the named IFC file and returns a Converter
// for fluent configuration. The file is read lazily, on the first terminal
// operation.
//
// Example:
//
//	doc, warnings, err := ifcgml.Open("building.ifc").Document()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromModel creates a Converter over an already-built element graph. This
// is useful when the model comes from somewhere other than a STEP file.
//
// Example:
//
//	m, err := step.ReadFile("building.ifc")
//	if err != nil {
//	    // handle error
//	}
//	doc, warnings, err := ifcgml.FromModel(m).Document()
func FromModel(m *model.Model) *Converter {
	return &Converter{
		model:   m,
		loaded:  true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	m := ifcgml.Must(ifcgml.Open("building.ifc").Model())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDocument is a helper that wraps a call to Document() and panics if
// the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	doc := ifcgml.MustDocument(ifcgml.Open("building.ifc").Document())
func MustDocument[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
