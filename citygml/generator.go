package citygml

import (
	"fmt"

	"github.com/bimshape/ifcgml/geom"
	"github.com/bimshape/ifcgml/kernel"
	"github.com/bimshape/ifcgml/model"
	"github.com/bimshape/ifcgml/semantic"
)

// Options is the configuration surface of the assembler.
type Options struct {
	// NoExternalReferences suppresses external references to source GUIDs.
	NoExternalReferences bool
	// NoProperties suppresses property export.
	NoProperties bool
	// NoAppearances suppresses appearance export.
	NoAppearances bool
	// NoStoreys suppresses storey features and their cross-references.
	NoStoreys bool
	// ListOrphanOpenings reports each unmatched door/window as a warning,
	// with the hosts its fill chain points at.
	ListOrphanOpenings bool
	// BucketOrphanOpenings groups unmatched doors/windows into one dummy
	// constructive element per resolved storey, plus one fallback bucket.
	BucketOrphanOpenings bool
	// FlatAttributes emits properties as direct generic attributes
	// instead of grouped attribute sets.
	FlatAttributes bool
	// PrefixAttributeNames prefixes property names with their set name.
	PrefixAttributeNames bool
}

// Stats summarizes one generation run.
type Stats struct {
	Buildings        int
	Features         int // features kept in the document (geometry confirmed)
	EmbeddedOpenings int
	OrphanOpenings   int
	Appearances      int
}

// Generator assembles the output document for one model.
type Generator struct {
	model     *model.Model
	provider  kernel.Provider
	transform geom.Transform
	opts      Options

	warnings []Warning
	stats    Stats
}

// NewGenerator returns a generator over the given model. provider may be
// nil, in which case every element is geometry-less.
func NewGenerator(m *model.Model, provider kernel.Provider, t geom.Transform, opts Options) *Generator {
	return &Generator{model: m, provider: provider, transform: t, opts: opts}
}

// Warnings returns the warnings accumulated so far.
func (g *Generator) Warnings() []Warning {
	return g.warnings
}

// Stats returns the counters of the last Generate call.
func (g *Generator) Stats() Stats {
	return g.stats
}

func (g *Generator) warn(cat WarningCategory, guid, msg string) {
	g.warnings = append(g.warnings, Warning{Category: cat, GUID: guid, Message: msg})
}

// Generate builds the document tree. A model without buildings yields an
// empty but valid document, not an error.
func (g *Generator) Generate() *Node {
	g.stats = Stats{}

	root := NewNode("core", "CityModel")
	root.SetAttr("xsi", "schemaLocation", schemaLocation)

	if p := g.model.Project; p != nil {
		if p.Description != "" {
			root.TextChild("gml", "description", p.Description)
		}
		if p.Name != "" {
			root.TextChild("gml", "name", p.Name)
		}
	}

	buildings := g.model.Buildings()
	if len(buildings) == 0 {
		g.warn(WarnNoBuildings, "", "model contains no building; writing empty document")
		return root
	}
	for _, b := range buildings {
		g.emitBuilding(root, b)
	}
	return root
}

// emitBuilding runs the per-building emission pipeline in schema order:
// metadata, walls with embedded openings, remaining constructive elements,
// orphan-opening accounting, installations, rooms, furniture, storeys.
func (g *Generator) emitBuilding(root *Node, b *model.Element) {
	ctx := newBuildingContext()

	member := root.Child("core", "cityObjectMember")
	bn := member.Child("bldg", "Building")
	bn.SetAttr("gml", "id", newID())

	if b.Description != "" {
		bn.TextChild("gml", "description", b.Description)
	}
	if b.Name != "" {
		bn.TextChild("gml", "name", b.Name)
	}
	guid := b.GUID
	if guid == "" && g.model.Project != nil {
		guid = g.model.Project.GUID
	}
	g.emitExternalReference(bn, guid)
	g.emitProperties(bn, b)

	// Membership is the aggregation/containment closure of the building.
	memberSet := make(map[*model.Element]bool)
	for _, e := range b.Decomposition() {
		memberSet[e] = true
	}

	var rooms []*model.Element
	for _, space := range g.model.ByKind(model.KindSpace) {
		if memberSet[space] {
			rooms = append(rooms, space)
		}
	}

	for _, t := range semantic.WallTypes {
		for _, e := range g.elementsOf(t, memberSet) {
			g.emitFeature(bn, ctx, e, semantic.ClassConstructiveElement)
		}
	}
	for _, t := range semantic.ConstructiveTypes {
		for _, e := range g.elementsOf(t, memberSet) {
			g.emitFeature(bn, ctx, e, semantic.ClassConstructiveElement)
		}
	}

	g.handleOrphanOpenings(bn, ctx, memberSet)

	for _, t := range semantic.InstallationTypes {
		for _, e := range g.elementsOf(t, memberSet) {
			g.emitFeature(bn, ctx, e, semantic.ClassInstallation)
		}
	}
	for _, room := range rooms {
		g.emitFeature(bn, ctx, room, semantic.ClassRoom)
	}
	for _, t := range semantic.FurnitureTypes {
		for _, e := range g.elementsOf(t, memberSet) {
			g.emitFeature(bn, ctx, e, semantic.ClassFurniture)
		}
	}

	g.emitStoreys(bn, ctx, memberSet, rooms)

	g.stats.Buildings++
	g.stats.Appearances += ctx.appearances
}

// elementsOf returns the building's members of one exact source type, in
// source order.
func (g *Generator) elementsOf(sourceType string, memberSet map[*model.Element]bool) []*model.Element {
	var out []*model.Element
	for _, e := range g.model.OfSourceType(sourceType) {
		if memberSet[e] {
			out = append(out, e)
		}
	}
	return out
}

// extractMesh asks the kernel for an element's mesh. Failures degrade to
// "no geometry" with a warning; they never abort the run.
func (g *Generator) extractMesh(e *model.Element) *model.Mesh {
	if g.provider == nil || e == nil {
		return nil
	}
	mesh, err := g.provider.Mesh(e)
	if err != nil {
		g.warn(WarnGeometryFailure, e.GUID, fmt.Sprintf("geometry extraction failed: %v", err))
		return nil
	}
	if mesh.Empty() {
		return nil
	}
	for _, tri := range mesh.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(mesh.Vertices) {
				g.warn(WarnGeometryFailure, e.GUID,
					fmt.Sprintf("mesh references vertex %d, have %d", idx, len(mesh.Vertices)))
				return nil
			}
		}
	}
	return mesh
}

// emitExternalReference links a feature back to its source element.
func (g *Generator) emitExternalReference(feat *Node, guid string) {
	if g.opts.NoExternalReferences {
		return
	}
	if guid == "" {
		guid = "UNKNOWN"
	}
	ref := feat.Child("core", "externalReference").Child("core", "ExternalReference")
	ref.TextChild("core", "targetResource", guid)
	ref.TextChild("core", "informationSystem", g.model.SourceName)
}
