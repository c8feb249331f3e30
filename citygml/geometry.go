package citygml

import (
	"fmt"
	"strings"

	"github.com/bimshape/ifcgml/model"
	"github.com/bimshape/ifcgml/semantic"
)

// emitGeometry writes the element's triangles as LoD3 geometry. Elements
// whose source representation declares a volumetric type become a solid
// with an exterior shell; everything else becomes a multi-surface. Each
// triangle is one polygon carrying its own identifier so appearance data
// can target individual faces.
func (g *Generator) emitGeometry(feat *Node, e *model.Element, mesh *model.Mesh, geometryID string, surfaceIDs []string) {
	var container *Node
	if semantic.IsSolid(e) {
		solid := feat.Child("core", "lod3Solid").Child("gml", "Solid")
		solid.SetAttr("gml", "id", geometryID)
		solid.SetAttr("", "srsName", g.transform.SRSName)
		solid.SetAttr("", "srsDimension", "3")
		container = solid.Child("gml", "exterior").Child("gml", "Shell")
	} else {
		ms := feat.Child("core", "lod3MultiSurface").Child("gml", "MultiSurface")
		ms.SetAttr("gml", "id", geometryID)
		ms.SetAttr("", "srsName", g.transform.SRSName)
		ms.SetAttr("", "srsDimension", "3")
		container = ms
	}

	for i, tri := range mesh.Triangles {
		poly := container.Child("gml", "surfaceMember").Child("gml", "Polygon")
		poly.SetAttr("gml", "id", surfaceIDs[i])
		ring := poly.Child("gml", "exterior").Child("gml", "LinearRing")
		ring.TextChild("gml", "posList", g.ringText(mesh, tri))
	}
}

// ringText renders one triangle as a closed linear ring: the three
// transformed vertices followed by a repeat of the first.
func (g *Generator) ringText(mesh *model.Mesh, tri [3]int) string {
	var sb strings.Builder
	write := func(idx int) {
		v := g.transform.Apply(mesh.Vertices[idx])
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.3f %.3f %.3f", v[0], v[1], v[2])
	}
	write(tri[0])
	write(tri[1])
	write(tri[2])
	write(tri[0])
	return sb.String()
}
