// Package kernel defines the boundary to the geometry kernel that
// triangulates element shapes.
//
// The converter itself never triangulates: it asks a [Provider] for a mesh
// per element and treats a failure as "no geometry" for that element,
// nothing more. [Static] is a map-backed provider for meshes produced out
// of band, and [LoadSidecar] reads such meshes from a JSON sidecar file.
package kernel

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bimshape/ifcgml/model"
)

// Provider produces triangulated meshes in world coordinates.
//
// A (nil, nil) return means the element has no geometry; a non-nil error
// means extraction failed. Callers treat both as "no geometry" for the
// element in question, but an error is additionally surfaced as a warning.
type Provider interface {
	Mesh(e *model.Element) (*model.Mesh, error)
}

// Static is a Provider backed by a map of meshes keyed by element GUID.
type Static struct {
	meshes map[string]*model.Mesh
}

// NewStatic returns an empty static provider.
func NewStatic() *Static {
	return &Static{meshes: make(map[string]*model.Mesh)}
}

// Put registers a mesh for the element with the given GUID.
func (s *Static) Put(guid string, m *model.Mesh) {
	s.meshes[guid] = m
}

// Mesh returns the registered mesh for the element, or (nil, nil) when
// none was registered.
func (s *Static) Mesh(e *model.Element) (*model.Mesh, error) {
	if e == nil {
		return nil, nil
	}
	return s.meshes[e.GUID], nil
}

// sidecarFile is the JSON shape of a mesh sidecar.
type sidecarFile struct {
	Meshes map[string]sidecarMesh `json:"meshes"`
}

type sidecarMesh struct {
	Vertices          [][3]float64      `json:"vertices"`
	Triangles         [][3]int          `json:"triangles"`
	TriangleMaterials []int             `json:"triangleMaterials,omitempty"`
	Materials         []sidecarMaterial `json:"materials,omitempty"`
}

type sidecarMaterial struct {
	R            float64 `json:"r"`
	G            float64 `json:"g"`
	B            float64 `json:"b"`
	Transparency float64 `json:"transparency,omitempty"`
}

// LoadSidecar reads meshes from a JSON sidecar file keyed by element GUID.
func LoadSidecar(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mesh sidecar: %w", err)
	}
	var file sidecarFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing mesh sidecar: %w", err)
	}

	s := NewStatic()
	for guid, sm := range file.Meshes {
		mesh := &model.Mesh{
			Vertices:          sm.Vertices,
			Triangles:         sm.Triangles,
			TriangleMaterials: sm.TriangleMaterials,
		}
		for _, mat := range sm.Materials {
			mesh.Materials = append(mesh.Materials, model.SurfaceMaterial{
				R: mat.R, G: mat.G, B: mat.B, Transparency: mat.Transparency,
			})
		}
		s.Put(guid, mesh)
	}
	return s, nil
}
