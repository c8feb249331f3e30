package appearance

import (
	"math"

	"github.com/bimshape/ifcgml/model"
)

// Group is a set of mesh faces sharing one exact (color, transparency)
// value. A nil Faces slice means the group applies to the whole geometry.
type Group struct {
	Color        model.RGB
	Transparency float64
	Faces        []int
}

// groupKey identifies a group after rounding. Comparable, so it can key a
// map directly.
type groupKey struct {
	r, g, b, t float64
}

// round6 rounds to six decimals, the precision materials are compared at.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func keyOf(r, g, b, t float64) groupKey {
	return groupKey{round6(r), round6(g), round6(b), round6(t)}
}

// FromMesh groups the mesh's triangles by their kernel-assigned material.
// Triangles without a material are omitted. Returns nil when the mesh
// carries no per-triangle material data at all.
func FromMesh(m *model.Mesh) []Group {
	if m == nil || len(m.TriangleMaterials) == 0 || len(m.Materials) == 0 {
		return nil
	}

	var order []groupKey
	faces := make(map[groupKey][]int)

	for face, matIdx := range m.TriangleMaterials {
		if face >= len(m.Triangles) {
			break
		}
		if matIdx < 0 || matIdx >= len(m.Materials) {
			continue
		}
		mat := m.Materials[matIdx]
		key := keyOf(mat.R, mat.G, mat.B, mat.Transparency)
		if _, seen := faces[key]; !seen {
			order = append(order, key)
		}
		faces[key] = append(faces[key], face)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{
			Color:        model.RGB{R: key.r, G: key.g, B: key.b},
			Transparency: key.t,
			Faces:        faces[key],
		})
	}
	return groups
}
