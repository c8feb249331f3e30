package citygml

import (
	"github.com/bimshape/ifcgml/model"
	"github.com/bimshape/ifcgml/resolve"
	"github.com/bimshape/ifcgml/semantic"
)

// propertyName maps a feature class onto the child element wrapping it
// under bldg:Building.
func propertyName(class semantic.FeatureClass) (prefix, local string) {
	switch class {
	case semantic.ClassInstallation:
		return "bldg", "buildingInstallation"
	case semantic.ClassRoom:
		return "bldg", "buildingRoom"
	case semantic.ClassFurniture:
		return "bldg", "buildingFurniture"
	default:
		return "bldg", "buildingConstructiveElement"
	}
}

// emitFeature builds one feature speculatively: the subtree is assembled
// detached and attached to the building only when geometry extraction
// produced something. Whatever the outcome, doors and windows reachable
// through the element's openings are consumed as fillings so orphan
// accounting stays correct.
func (g *Generator) emitFeature(building *Node, ctx *buildingContext, e *model.Element, class semantic.FeatureClass) {
	propPrefix, propLocal := propertyName(class)
	prop := NewNode(propPrefix, propLocal)
	feat := prop.Child("bldg", class.String())
	id := newID()
	feat.SetAttr("gml", "id", id)
	ctx.assign(e, id)

	if e.Description != "" {
		feat.TextChild("gml", "description", e.Description)
	}
	if e.Name != "" {
		feat.TextChild("gml", "name", e.Name)
	}
	g.emitExternalReference(feat, e.GUID)

	mesh := g.extractMesh(e)
	var geometryID string
	var surfaceIDs []string
	if mesh != nil {
		geometryID = newID()
		surfaceIDs = make([]string, len(mesh.Triangles))
		for i := range surfaceIDs {
			surfaceIDs[i] = newID()
		}
		ctx.appearances += g.emitAppearance(feat, e, id, geometryID, mesh, surfaceIDs)
	}

	g.emitProperties(feat, e)

	if mesh != nil {
		g.emitGeometry(feat, e, mesh, geometryID, surfaceIDs)
		building.Append(prop)
		ctx.confirm(e)
		g.stats.Features++
	}

	if class == semantic.ClassConstructiveElement || class == semantic.ClassInstallation {
		for _, filling := range resolve.Fillings(e) {
			ctx.embedded[filling] = true
			ctx.appearances += g.emitFilling(feat, ctx, filling)
			g.stats.EmbeddedOpenings++
		}
	}

	// Schema order wants the class label after any fillings.
	feat.TextChild("bldg", "class", e.SourceType)
}

// emitFilling embeds a door or window inside its host feature. Fillings
// are always attached to the host node; they only reach the document when
// the host itself does. Returns the number of appearance materials added.
func (g *Generator) emitFilling(host *Node, ctx *buildingContext, dw *model.Element) int {
	prop := host.Child("con", "filling")
	local := "Window"
	if dw.Kind == model.KindDoor {
		local = "Door"
	}
	feat := prop.Child("con", local)
	id := newID()
	feat.SetAttr("gml", "id", id)

	if dw.Description != "" {
		feat.TextChild("gml", "description", dw.Description)
	}
	if dw.Name != "" {
		feat.TextChild("gml", "name", dw.Name)
	}
	g.emitExternalReference(feat, dw.GUID)

	mesh := g.extractMesh(dw)
	materials := 0
	var geometryID string
	var surfaceIDs []string
	if mesh != nil {
		geometryID = newID()
		surfaceIDs = make([]string, len(mesh.Triangles))
		for i := range surfaceIDs {
			surfaceIDs[i] = newID()
		}
		materials = g.emitAppearance(feat, dw, id, geometryID, mesh, surfaceIDs)
	}

	g.emitProperties(feat, dw)

	if mesh != nil {
		g.emitGeometry(feat, dw, mesh, geometryID, surfaceIDs)
	}
	return materials
}
