package semantic

import (
	"testing"

	"github.com/bimshape/ifcgml/model"
)

func rep(parts ...model.SubRepresentation) *model.Representation {
	return &model.Representation{Parts: parts}
}

func TestIsSolid(t *testing.T) {
	tests := []struct {
		name    string
		element *model.Element
		want    bool
	}{
		{
			"nil element",
			nil,
			false,
		},
		{
			"no representation defaults to surface",
			&model.Element{},
			false,
		},
		{
			"swept solid body",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "Body", Type: "SweptSolid"},
			)},
			true,
		},
		{
			"brep body",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "Body", Type: "Brep"},
			)},
			true,
		},
		{
			"advanced brep body",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "Body", Type: "AdvancedBrep"},
			)},
			true,
		},
		{
			"csg body",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "Body", Type: "CSG"},
			)},
			true,
		},
		{
			"clipping body",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "Body", Type: "Clipping"},
			)},
			true,
		},
		{
			"bounding box counts as solid",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "Body", Type: "BoundingBox"},
			)},
			true,
		},
		{
			"surface model body",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "Body", Type: "SurfaceModel"},
			)},
			false,
		},
		{
			"tessellation body",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "Body", Type: "Tessellation"},
			)},
			false,
		},
		{
			"solid type on axis identifier is ignored",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "Axis", Type: "SweptSolid"},
			)},
			false,
		},
		{
			"body identifier is case-insensitive",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "BODY", Type: "Brep"},
			)},
			true,
		},
		{
			"mesh identifier carries the shape",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "Mesh", Type: "SweptSolid"},
			)},
			true,
		},
		{
			"facetedbrep identifier carries the shape",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "FacetedBrep", Type: "Brep"},
			)},
			true,
		},
		{
			"empty identifier is considered",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "", Type: "SweptSolid"},
			)},
			true,
		},
		{
			"solid among several parts wins",
			&model.Element{Representation: rep(
				model.SubRepresentation{Identifier: "Axis", Type: "Curve2D"},
				model.SubRepresentation{Identifier: "Body", Type: "SweptSolid"},
			)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSolid(tt.element); got != tt.want {
				t.Errorf("IsSolid() = %v, want %v", got, tt.want)
			}
		})
	}
}
