package ifcgml

import "github.com/bimshape/ifcgml/geom"

// convertOptions holds configuration for one conversion.
type convertOptions struct {
	// Output shaping
	noExternalReferences bool
	noProperties         bool
	noAppearances        bool
	noStoreys            bool

	// Orphan door/window handling
	listOrphanOpenings   bool
	bucketOrphanOpenings bool

	// Property rendering
	flatAttributes       bool
	prefixAttributeNames bool

	// Geometry placement
	georeference *geom.Georeference // nil means use the model's own
	offset       [3]float64

	// Geometry source
	sidecarPath string
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	return convertOptions{}
}

// clone creates a copy of convertOptions.
func (o convertOptions) clone() convertOptions {
	newOpts := o
	if o.georeference != nil {
		g := *o.georeference
		newOpts.georeference = &g
	}
	return newOpts
}
