// Package geom applies the georeferencing similarity transform to mesh
// vertices and extracts the transform from a model's map-conversion
// metadata.
package geom

import "github.com/bimshape/ifcgml/model"

// Georeference is a fixed world anchor: translation offsets plus the
// spatial reference system label.
type Georeference struct {
	Eastings         float64
	Northings        float64
	OrthogonalHeight float64
	SRSName          string
}

// Theresienwiese anchors a model at the Theresienwiese in Munich, useful
// for inspecting non-georeferenced models in a GIS.
var Theresienwiese = Georeference{
	Eastings:         689738.0,
	Northings:        5334100.0,
	OrthogonalHeight: 521.0,
	SRSName:          "EPSG:25832",
}

// Transform is a linear similarity transform: scale, then rotation, then
// translation, then a user offset.
type Transform struct {
	Scale     float64
	Rotation  [3][3]float64
	Translate [3]float64
	Offset    [3]float64
	SRSName   string
}

// Identity returns the no-op transform with the unknown reference system.
func Identity() Transform {
	return Transform{
		Scale: 1.0,
		Rotation: [3][3]float64{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
		SRSName: "EPSG:0",
	}
}

// FromModel derives the transform from the model's map-conversion metadata.
// Models without map conversion keep local coordinates (identity).
func FromModel(m *model.Model) Transform {
	t := Identity()
	mc := m.MapConversion
	if mc == nil {
		return t
	}
	t.Translate = [3]float64{mc.Eastings, mc.Northings, mc.OrthogonalHeight}
	if mc.Scale != nil {
		t.Scale = *mc.Scale
	}
	if mc.XAxisAbscissa != nil && mc.XAxisOrdinate != nil {
		cos, sin := *mc.XAxisAbscissa, *mc.XAxisOrdinate
		t.Rotation = [3][3]float64{
			{cos, -sin, 0},
			{sin, cos, 0},
			{0, 0, 1},
		}
	}
	if mc.SRSName != "" {
		t.SRSName = mc.SRSName
	}
	return t
}

// WithGeoreference replaces the translation and reference system with a
// fixed anchor, keeping scale, rotation, and offset.
func (t Transform) WithGeoreference(g Georeference) Transform {
	t.Translate = [3]float64{g.Eastings, g.Northings, g.OrthogonalHeight}
	t.SRSName = g.SRSName
	return t
}

// WithOffset sets the user offset applied after georeferencing.
func (t Transform) WithOffset(x, y, z float64) Transform {
	t.Offset = [3]float64{x, y, z}
	return t
}

// Apply transforms one vertex: v' = R·(s·v) + translate + offset.
func (t Transform) Apply(v [3]float64) [3]float64 {
	sx, sy, sz := v[0]*t.Scale, v[1]*t.Scale, v[2]*t.Scale
	r := t.Rotation
	return [3]float64{
		r[0][0]*sx + r[0][1]*sy + r[0][2]*sz + t.Translate[0] + t.Offset[0],
		r[1][0]*sx + r[1][1]*sy + r[1][2]*sz + t.Translate[1] + t.Offset[1],
		r[2][0]*sx + r[2][1]*sy + r[2][2]*sz + t.Translate[2] + t.Offset[2],
	}
}
