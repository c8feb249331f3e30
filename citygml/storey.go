package citygml

import (
	"github.com/bimshape/ifcgml/model"
	"github.com/bimshape/ifcgml/resolve"
	"github.com/bimshape/ifcgml/semantic"
)

// emitStoreys writes the building's storey features last, after every
// feature they may reference. A storey carries metadata and cross-
// references only, never geometry. Links point solely at confirmed
// features, so every reference in the output resolves.
func (g *Generator) emitStoreys(building *Node, ctx *buildingContext, memberSet map[*model.Element]bool, rooms []*model.Element) {
	if g.opts.NoStoreys {
		return
	}
	for _, storey := range g.model.ByKind(model.KindStorey) {
		if !memberSet[storey] {
			continue
		}

		feat := building.Child("bldg", "buildingSubdivision").Child("bldg", "Storey")
		feat.SetAttr("gml", "id", newID())

		if storey.Description != "" {
			feat.TextChild("gml", "description", storey.Description)
		}
		if storey.Name != "" {
			feat.TextChild("gml", "name", storey.Name)
		}
		g.emitExternalReference(feat, storey.GUID)
		g.emitProperties(feat, storey)

		members := resolve.Members(storey)

		// Doors and windows never appear here: fillings are embedded in
		// their hosts, not linked.
		for _, sourceType := range semantic.LinkableTypes() {
			for _, e := range g.model.OfSourceType(sourceType) {
				if !memberSet[e] || !members[e] {
					continue
				}
				if id, ok := ctx.linkTarget(e); ok {
					link := feat.Child("bldg", "buildingConstructiveElement")
					link.SetAttr("xlink", "href", "#"+id)
				}
			}
		}

		// The storey's dummy orphan bucket, if one was created. The
		// fallback bucket belongs to no storey and is never linked.
		if id, ok := ctx.dummyByStorey[storey]; ok {
			link := feat.Child("bldg", "buildingConstructiveElement")
			link.SetAttr("xlink", "href", "#"+id)
		}

		for _, room := range rooms {
			if !members[room] {
				continue
			}
			if id, ok := ctx.linkTarget(room); ok {
				link := feat.Child("bldg", "buildingRoom")
				link.SetAttr("xlink", "href", "#"+id)
			}
		}
	}
}
