package semantic

import (
	"strings"

	"github.com/bimshape/ifcgml/model"
)

// solidRepresentationTypes are the representation types that imply a
// volumetric solid rather than a surface collection.
var solidRepresentationTypes = map[string]bool{
	"SweptSolid":   true, // extrusions, revolutions
	"Brep":         true, // boundary representations
	"AdvancedBrep": true, // NURBS / advanced solids
	"CSG":          true,
	"Clipping":     true, // boolean results
	"BoundingBox":  true, // simplified solid box
}

// bodyIdentifiers are the sub-representation identifiers that carry the
// physical shape. Sub-representations with any other identifier (axis,
// footprint, ...) do not determine solidity.
var bodyIdentifiers = map[string]bool{
	"body":        true,
	"mesh":        true,
	"facetedbrep": true,
}

// IsSolid reports whether an element was modeled as a volumetric solid.
// Elements without representation metadata default to surface collections.
// Pure function of the representation metadata.
func IsSolid(e *model.Element) bool {
	if e == nil || e.Representation == nil {
		return false
	}
	for _, part := range e.Representation.Parts {
		if part.Identifier != "" && !bodyIdentifiers[strings.ToLower(part.Identifier)] {
			continue
		}
		if solidRepresentationTypes[part.Type] {
			return true
		}
	}
	return false
}
