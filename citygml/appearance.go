package citygml

import (
	"fmt"
	"strconv"

	"github.com/bimshape/ifcgml/appearance"
	"github.com/bimshape/ifcgml/model"
)

// emitAppearance writes the element's appearance block: per-face material
// groups from the kernel mesh when available, otherwise groups
// approximated from the element's own style and material data. Returns
// the number of materials written; zero means no block was added.
func (g *Generator) emitAppearance(feat *Node, e *model.Element, featureID, geometryID string, mesh *model.Mesh, surfaceIDs []string) int {
	if g.opts.NoAppearances {
		return 0
	}

	// The kernel path wins only when it actually yields groups; per-face
	// data that maps to nothing falls back like missing data.
	groups := appearance.FromMesh(mesh)
	if len(groups) == 0 {
		groups = appearance.FromElement(e)
	}
	if len(groups) == 0 {
		return 0
	}

	app := feat.Child("core", "appearance").Child("app", "Appearance")
	app.SetAttr("gml", "id", "APP_"+featureID)
	app.TextChild("app", "theme", "RGB")

	for matIdx, group := range groups {
		mat := app.Child("app", "surfaceData").Child("app", "X3DMaterial")
		mat.SetAttr("gml", "id", fmt.Sprintf("MAT_%s_%d", featureID, matIdx))
		mat.TextChild("app", "isFront", "true")
		mat.TextChild("app", "diffuseColor", fmt.Sprintf("%s %s %s",
			formatComponent(group.Color.R), formatComponent(group.Color.G), formatComponent(group.Color.B)))
		if group.Transparency > 0 {
			mat.TextChild("app", "transparency", formatComponent(group.Transparency))
		}
		if group.Faces == nil {
			mat.TextChild("app", "target", "#"+geometryID)
			continue
		}
		for _, face := range group.Faces {
			if face < 0 || face >= len(surfaceIDs) {
				continue
			}
			mat.TextChild("app", "target", "#"+surfaceIDs[face])
		}
	}
	return len(groups)
}

// formatComponent renders a color or transparency component with the
// shortest exact decimal form.
func formatComponent(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
