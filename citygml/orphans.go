package citygml

import (
	"fmt"
	"strings"

	"github.com/bimshape/ifcgml/model"
	"github.com/bimshape/ifcgml/resolve"
)

// handleOrphanOpenings accounts for the building's doors and windows that
// no host consumed as a filling. Depending on options they are reported
// per element, grouped into dummy constructive elements per storey, or
// silently counted.
func (g *Generator) handleOrphanOpenings(building *Node, ctx *buildingContext, memberSet map[*model.Element]bool) {
	var orphans []*model.Element
	for _, kind := range []model.Kind{model.KindDoor, model.KindWindow} {
		for _, dw := range g.model.ByKind(kind) {
			if memberSet[dw] && !ctx.embedded[dw] {
				orphans = append(orphans, dw)
			}
		}
	}
	g.stats.OrphanOpenings += len(orphans)
	if len(orphans) == 0 {
		return
	}

	if g.opts.ListOrphanOpenings {
		for _, dw := range orphans {
			g.warn(WarnOrphanOpening, dw.GUID, orphanMessage(dw))
		}
	}
	if g.opts.BucketOrphanOpenings {
		g.emitOrphanBuckets(building, ctx, orphans)
	}
}

// orphanMessage describes one unmatched door/window with the hosts its
// fill chain points at.
func orphanMessage(dw *model.Element) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %q not embedded in any constructive element", dw.SourceType, dw.Name)
	if hosts := resolve.Hosts(dw); len(hosts) > 0 {
		sb.WriteString("; fills opening in")
		for i, h := range hosts {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, " %s %s", h.SourceType, h.GUID)
		}
	}
	return sb.String()
}

// emitOrphanBuckets groups orphan doors/windows into one dummy
// constructive element per resolved storey, plus a single fallback bucket
// for elements without any storey. Buckets are attached unconditionally;
// they exist to carry fillings, not geometry of their own.
func (g *Generator) emitOrphanBuckets(building *Node, ctx *buildingContext, orphans []*model.Element) {
	var storeyOrder []*model.Element
	byStorey := make(map[*model.Element][]*model.Element)
	var noStorey []*model.Element

	for _, dw := range orphans {
		storey := resolve.StoreyFor(dw)
		if storey == nil {
			noStorey = append(noStorey, dw)
			continue
		}
		if _, seen := byStorey[storey]; !seen {
			storeyOrder = append(storeyOrder, storey)
		}
		byStorey[storey] = append(byStorey[storey], dw)
	}

	for _, storey := range storeyOrder {
		name := storey.Name
		if name == "" {
			name = "Unnamed Storey"
		}
		id := g.emitBucket(building, ctx,
			"Stub Element for unrelated Doors and Windows - Storey: "+name, byStorey[storey])
		ctx.dummyByStorey[storey] = id
	}
	if len(noStorey) > 0 {
		g.emitBucket(building, ctx,
			"Stub Element for unrelated Doors and Windows - No Storey Assignment", noStorey)
	}
}

func (g *Generator) emitBucket(building *Node, ctx *buildingContext, name string, fillings []*model.Element) string {
	feat := building.Child("bldg", "buildingConstructiveElement").Child("bldg", "BuildingConstructiveElement")
	id := newID()
	feat.SetAttr("gml", "id", id)
	feat.TextChild("gml", "name", name)
	for _, dw := range fillings {
		ctx.appearances += g.emitFilling(feat, ctx, dw)
	}
	feat.TextChild("bldg", "class", "DummyBuildingConstructiveElement")
	return id
}
