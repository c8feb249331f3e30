package appearance

import (
	"testing"

	"github.com/bimshape/ifcgml/model"
)

func meshWithMaterials(assignments []int, materials []model.SurfaceMaterial) *model.Mesh {
	mesh := &model.Mesh{
		TriangleMaterials: assignments,
		Materials:         materials,
	}
	for i := 0; i < len(assignments); i++ {
		mesh.Triangles = append(mesh.Triangles, [3]int{0, 1, 2})
	}
	mesh.Vertices = [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	return mesh
}

func TestFromMeshGroupsByMaterial(t *testing.T) {
	red := model.SurfaceMaterial{R: 1, G: 0, B: 0}
	blue := model.SurfaceMaterial{R: 0, G: 0, B: 1}
	mesh := meshWithMaterials([]int{0, 0, 1, 1}, []model.SurfaceMaterial{red, blue})

	groups := FromMesh(mesh)
	if len(groups) != 2 {
		t.Fatalf("FromMesh() returned %d groups, want 2", len(groups))
	}
	if groups[0].Color != (model.RGB{R: 1, G: 0, B: 0}) {
		t.Errorf("first group color = %+v, want red", groups[0].Color)
	}
	if got, want := groups[0].Faces, []int{0, 1}; !equalInts(got, want) {
		t.Errorf("first group faces = %v, want %v", got, want)
	}
	if got, want := groups[1].Faces, []int{2, 3}; !equalInts(got, want) {
		t.Errorf("second group faces = %v, want %v", got, want)
	}
}

func TestFromMeshFirstSeenOrder(t *testing.T) {
	a := model.SurfaceMaterial{R: 0.2, G: 0.2, B: 0.2}
	b := model.SurfaceMaterial{R: 0.8, G: 0.8, B: 0.8}
	mesh := meshWithMaterials([]int{1, 0, 1, 0}, []model.SurfaceMaterial{a, b})

	groups := FromMesh(mesh)
	if len(groups) != 2 {
		t.Fatalf("FromMesh() returned %d groups, want 2", len(groups))
	}
	// Material 1 appears on face 0, so its group comes first.
	if groups[0].Color.R != 0.8 {
		t.Errorf("first group color R = %v, want 0.8", groups[0].Color.R)
	}
	if got, want := groups[0].Faces, []int{0, 2}; !equalInts(got, want) {
		t.Errorf("first group faces = %v, want %v", got, want)
	}
}

func TestFromMeshMergesBeyondSixDecimals(t *testing.T) {
	// Differ only in the seventh decimal: same group after rounding.
	a := model.SurfaceMaterial{R: 0.5000001, G: 0.5, B: 0.5}
	b := model.SurfaceMaterial{R: 0.5000002, G: 0.5, B: 0.5}
	mesh := meshWithMaterials([]int{0, 1}, []model.SurfaceMaterial{a, b})

	groups := FromMesh(mesh)
	if len(groups) != 1 {
		t.Fatalf("FromMesh() returned %d groups, want 1 after rounding", len(groups))
	}
	if got, want := groups[0].Faces, []int{0, 1}; !equalInts(got, want) {
		t.Errorf("merged group faces = %v, want %v", got, want)
	}
}

func TestFromMeshSeparatesAtSixDecimals(t *testing.T) {
	a := model.SurfaceMaterial{R: 0.500001, G: 0.5, B: 0.5}
	b := model.SurfaceMaterial{R: 0.500002, G: 0.5, B: 0.5}
	mesh := meshWithMaterials([]int{0, 1}, []model.SurfaceMaterial{a, b})

	if groups := FromMesh(mesh); len(groups) != 2 {
		t.Fatalf("FromMesh() returned %d groups, want 2: sixth decimal differs", len(groups))
	}
}

func TestFromMeshTransparencySplitsGroups(t *testing.T) {
	opaque := model.SurfaceMaterial{R: 1, G: 0, B: 0}
	glassy := model.SurfaceMaterial{R: 1, G: 0, B: 0, Transparency: 0.5}
	mesh := meshWithMaterials([]int{0, 1}, []model.SurfaceMaterial{opaque, glassy})

	groups := FromMesh(mesh)
	if len(groups) != 2 {
		t.Fatalf("FromMesh() returned %d groups, want 2: transparency differs", len(groups))
	}
	if groups[1].Transparency != 0.5 {
		t.Errorf("second group transparency = %v, want 0.5", groups[1].Transparency)
	}
}

func TestFromMeshNoMaterialData(t *testing.T) {
	tests := []struct {
		name string
		mesh *model.Mesh
	}{
		{"nil mesh", nil},
		{"no assignments", &model.Mesh{Materials: []model.SurfaceMaterial{{R: 1}}}},
		{"no materials", &model.Mesh{TriangleMaterials: []int{0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if groups := FromMesh(tt.mesh); groups != nil {
				t.Errorf("FromMesh() = %v, want nil", groups)
			}
		})
	}
}

func TestFromMeshSkipsInvalidIndices(t *testing.T) {
	red := model.SurfaceMaterial{R: 1}
	mesh := meshWithMaterials([]int{0, -1, 5, 0}, []model.SurfaceMaterial{red})

	groups := FromMesh(mesh)
	if len(groups) != 1 {
		t.Fatalf("FromMesh() returned %d groups, want 1", len(groups))
	}
	if got, want := groups[0].Faces, []int{0, 3}; !equalInts(got, want) {
		t.Errorf("group faces = %v, want %v", got, want)
	}
}

func TestFromMeshIsDeterministic(t *testing.T) {
	red := model.SurfaceMaterial{R: 1}
	blue := model.SurfaceMaterial{B: 1}
	mesh := meshWithMaterials([]int{0, 1, 0, 1}, []model.SurfaceMaterial{red, blue})

	first := FromMesh(mesh)
	second := FromMesh(mesh)
	if len(first) != len(second) {
		t.Fatalf("group counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Color != second[i].Color || !equalInts(first[i].Faces, second[i].Faces) {
			t.Errorf("group %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
