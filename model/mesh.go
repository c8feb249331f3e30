package model

// RGB is a color with channels in the unit range.
type RGB struct {
	R, G, B float64
}

// SurfaceMaterial is one entry of a mesh's material table.
type SurfaceMaterial struct {
	R, G, B      float64
	Transparency float64
}

// Mesh is a triangulated surface in world coordinates, as produced by a
// geometry kernel.
type Mesh struct {
	Vertices  [][3]float64
	Triangles [][3]int

	// TriangleMaterials maps each triangle to an index into Materials.
	// Nil when the kernel provides no per-triangle materials; an entry of
	// -1 means the triangle has none.
	TriangleMaterials []int
	Materials         []SurfaceMaterial
}

// Empty reports whether the mesh contributes no geometry.
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Triangles) == 0
}
