package step

import (
	"strings"
	"testing"

	"github.com/bimshape/ifcgml/model"
)

// graphFile wires a small but complete model: project, building, storey,
// a wall with representation, an opening filled by a door, a property
// set, a styled color, a material, and georeferencing.
const graphFile = `ISO-10303-21;
HEADER;
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCPROJECT('proj-guid',$,'Project','Desc',$,$,$,$,$);
#2=IFCBUILDING('bldg-guid',$,'Main',$,$,$,$,$,$,$,$,$);
#3=IFCBUILDINGSTOREY('storey-guid',$,'EG',$,$,$,$,$,$,$);
#4=IFCWALL('wall-guid',$,'Wall A',$,$,$,#40,$,$);
#5=IFCOPENINGELEMENT('open-guid',$,$,$,$,$,$,$,$);
#6=IFCDOOR('door-guid',$,'Door 1',$,$,$,$,$,$,$,$,$,$);
#10=IFCRELAGGREGATES('r1',$,$,$,#1,(#2));
#11=IFCRELAGGREGATES('r2',$,$,$,#2,(#3));
#12=IFCRELCONTAINEDINSPATIALSTRUCTURE('r3',$,$,$,(#4,#6),#3);
#13=IFCRELVOIDSELEMENT('r4',$,$,$,#4,#5);
#14=IFCRELFILLSELEMENT('r5',$,$,$,#5,#6);
#20=IFCPROPERTYSET('ps-guid',$,'Pset_WallCommon',$,(#21,#22));
#21=IFCPROPERTYSINGLEVALUE('IsExternal',$,IFCBOOLEAN(.T.),$);
#22=IFCPROPERTYSINGLEVALUE('FireRating',$,IFCLABEL('F90'),$);
#23=IFCRELDEFINESBYPROPERTIES('r6',$,$,$,(#4),#20);
#30=IFCCOLOURRGB($,0.5,0.25,0.125);
#31=IFCSURFACESTYLESHADING(#30,$);
#32=IFCSURFACESTYLE('Style',.BOTH.,(#31));
#33=IFCSTYLEDITEM(#41,(#32),$);
#40=IFCPRODUCTDEFINITIONSHAPE($,$,(#42));
#41=IFCEXTRUDEDAREASOLID($,$,$,$);
#42=IFCSHAPEREPRESENTATION($,'Body','SweptSolid',(#41));
#50=IFCMATERIAL('Concrete',$,$);
#51=IFCRELASSOCIATESMATERIAL('r7',$,$,$,(#4),#50);
#60=IFCPROJECTEDCRS('EPSG:25832',$,$,$,$,$,$);
#61=IFCMAPCONVERSION($,#60,691000.,5335000.,500.,1.,0.,1.);
ENDSEC;
END-ISO-10303-21;
`

func buildGraph(t *testing.T) *model.Model {
	t.Helper()
	m, err := Read(strings.NewReader(graphFile), "graph.ifc")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	return m
}

func elementByGUID(t *testing.T, m *model.Model, guid string) *model.Element {
	t.Helper()
	for _, e := range m.Elements {
		if e.GUID == guid {
			return e
		}
	}
	t.Fatalf("element %s not found", guid)
	return nil
}

func TestBuildElements(t *testing.T) {
	m := buildGraph(t)

	if m.Schema != "IFC4" {
		t.Errorf("Schema = %q, want IFC4", m.Schema)
	}
	if m.SourceName != "graph.ifc" {
		t.Errorf("SourceName = %q, want graph.ifc", m.SourceName)
	}
	if m.Project == nil || m.Project.Name != "Project" || m.Project.GUID != "proj-guid" {
		t.Fatalf("Project = %+v", m.Project)
	}

	wall := elementByGUID(t, m, "wall-guid")
	if wall.Kind != model.KindWall || wall.SourceType != "IfcWall" {
		t.Errorf("wall kind/type = %v/%s", wall.Kind, wall.SourceType)
	}
	if wall.Name != "Wall A" {
		t.Errorf("wall name = %q", wall.Name)
	}

	// Relationship and geometry-support instances never become elements.
	for _, e := range m.Elements {
		if strings.HasPrefix(e.GUID, "r") || e.GUID == "ps-guid" {
			t.Errorf("non-product instance became an element: %+v", e)
		}
	}

	buildings := m.Buildings()
	if len(buildings) != 1 || buildings[0].GUID != "bldg-guid" {
		t.Fatalf("Buildings() = %+v", buildings)
	}
}

func TestBuildAggregationAndContainment(t *testing.T) {
	m := buildGraph(t)

	building := elementByGUID(t, m, "bldg-guid")
	storey := elementByGUID(t, m, "storey-guid")
	wall := elementByGUID(t, m, "wall-guid")
	door := elementByGUID(t, m, "door-guid")

	if building.Parent != m.Project {
		t.Errorf("building parent = %+v, want project", building.Parent)
	}
	if storey.Parent != building {
		t.Errorf("storey parent = %+v, want building", storey.Parent)
	}
	if wall.Container != storey || door.Container != storey {
		t.Errorf("containment not wired to the storey")
	}
	if len(storey.Contains) != 2 {
		t.Errorf("storey contains %d elements, want 2", len(storey.Contains))
	}

	// The whole graph hangs off the building.
	members := make(map[*model.Element]bool)
	for _, e := range building.Decomposition() {
		members[e] = true
	}
	for _, e := range []*model.Element{storey, wall, door} {
		if !members[e] {
			t.Errorf("decomposition missing %s", e.GUID)
		}
	}
}

func TestBuildVoidsAndFills(t *testing.T) {
	m := buildGraph(t)

	wall := elementByGUID(t, m, "wall-guid")
	opening := elementByGUID(t, m, "open-guid")
	door := elementByGUID(t, m, "door-guid")

	if len(wall.Openings) != 1 || wall.Openings[0] != opening {
		t.Fatalf("wall openings = %+v", wall.Openings)
	}
	if opening.VoidsHost != wall {
		t.Errorf("opening host = %+v, want wall", opening.VoidsHost)
	}
	if len(opening.Fillings) != 1 || opening.Fillings[0] != door {
		t.Errorf("opening fillings = %+v", opening.Fillings)
	}
	if len(door.FillsOpenings) != 1 || door.FillsOpenings[0] != opening {
		t.Errorf("door fills = %+v", door.FillsOpenings)
	}
}

func TestBuildRepresentation(t *testing.T) {
	m := buildGraph(t)

	wall := elementByGUID(t, m, "wall-guid")
	if wall.Representation == nil || len(wall.Representation.Parts) != 1 {
		t.Fatalf("wall representation = %+v", wall.Representation)
	}
	part := wall.Representation.Parts[0]
	if part.Identifier != "Body" || part.Type != "SweptSolid" {
		t.Errorf("part = %q/%q, want Body/SweptSolid", part.Identifier, part.Type)
	}
	if len(part.Items) != 1 {
		t.Fatalf("part items = %d, want 1", len(part.Items))
	}
	colors := part.Items[0].Colors
	if len(colors) != 1 || colors[0] != (model.RGB{R: 0.5, G: 0.25, B: 0.125}) {
		t.Errorf("styled colors = %+v", colors)
	}

	door := elementByGUID(t, m, "door-guid")
	if door.Representation != nil {
		t.Errorf("door has a representation, want none")
	}
}

func TestBuildProperties(t *testing.T) {
	m := buildGraph(t)

	wall := elementByGUID(t, m, "wall-guid")
	if len(wall.PropertySets) != 1 {
		t.Fatalf("property sets = %d, want 1", len(wall.PropertySets))
	}
	pset := wall.PropertySets[0]
	if pset.Name != "Pset_WallCommon" || len(pset.Properties) != 2 {
		t.Fatalf("pset = %+v", pset)
	}
	if v, ok := pset.Properties[0].Value.(model.BoolValue); !ok || !bool(v) {
		t.Errorf("IsExternal = %+v, want true", pset.Properties[0].Value)
	}
	if v, ok := pset.Properties[1].Value.(model.StringValue); !ok || v != "F90" {
		t.Errorf("FireRating = %+v, want F90", pset.Properties[1].Value)
	}
}

func TestBuildMaterialAssociation(t *testing.T) {
	m := buildGraph(t)

	wall := elementByGUID(t, m, "wall-guid")
	if len(wall.Materials) != 1 {
		t.Fatalf("materials = %d, want 1", len(wall.Materials))
	}
	assoc := wall.Materials[0]
	if assoc.Kind != model.AssociationSingle {
		t.Errorf("association kind = %v, want single", assoc.Kind)
	}
	// The material has no definition representation, so no color.
	if len(assoc.Colors) != 1 || assoc.Colors[0] != nil {
		t.Errorf("colors = %+v, want a single nil entry", assoc.Colors)
	}
}

func TestBuildMapConversion(t *testing.T) {
	m := buildGraph(t)

	mc := m.MapConversion
	if mc == nil {
		t.Fatal("MapConversion = nil")
	}
	if mc.Eastings != 691000 || mc.Northings != 5335000 || mc.OrthogonalHeight != 500 {
		t.Errorf("translation = %v/%v/%v", mc.Eastings, mc.Northings, mc.OrthogonalHeight)
	}
	if mc.XAxisAbscissa == nil || *mc.XAxisAbscissa != 1 {
		t.Errorf("XAxisAbscissa = %v, want 1", mc.XAxisAbscissa)
	}
	if mc.XAxisOrdinate == nil || *mc.XAxisOrdinate != 0 {
		t.Errorf("XAxisOrdinate = %v, want 0", mc.XAxisOrdinate)
	}
	if mc.Scale == nil || *mc.Scale != 1 {
		t.Errorf("Scale = %v, want 1", mc.Scale)
	}
	if mc.SRSName != "EPSG:25832" {
		t.Errorf("SRSName = %q, want EPSG:25832", mc.SRSName)
	}
}

func TestBuildIndexedColourMap(t *testing.T) {
	src := `ISO-10303-21;
HEADER;
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCWALL('wall-guid',$,$,$,$,$,#2,$,$);
#2=IFCPRODUCTDEFINITIONSHAPE($,$,(#3));
#3=IFCSHAPEREPRESENTATION($,'Body','Tessellation',(#4));
#4=IFCTRIANGULATEDFACESET($,$,$,$,$);
#5=IFCCOLOURRGBLIST(((1.,0.,0.),(0.,0.,1.)));
#6=IFCINDEXEDCOLOURMAP(#4,$,#5,(1,2,1));
ENDSEC;
END-ISO-10303-21;
`
	m, err := Read(strings.NewReader(src), "colours.ifc")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	wall := elementByGUID(t, m, "wall-guid")
	cm := wall.Representation.Parts[0].Items[0].ColourMap
	if cm == nil {
		t.Fatal("ColourMap = nil")
	}
	if len(cm.Colours) != 2 || cm.Colours[1] != (model.RGB{B: 1}) {
		t.Errorf("palette = %+v", cm.Colours)
	}
	if len(cm.Index) != 3 || cm.Index[0] != 1 || cm.Index[1] != 2 {
		t.Errorf("index = %+v", cm.Index)
	}
}

func TestBuildMappedItems(t *testing.T) {
	src := `ISO-10303-21;
HEADER;
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCFURNITURE('chair-guid',$,$,$,$,$,#2,$,$);
#2=IFCPRODUCTDEFINITIONSHAPE($,$,(#3));
#3=IFCSHAPEREPRESENTATION($,'Body','MappedRepresentation',(#4));
#4=IFCMAPPEDITEM(#5,$);
#5=IFCREPRESENTATIONMAP($,#6);
#6=IFCSHAPEREPRESENTATION($,'Body','SweptSolid',(#7));
#7=IFCEXTRUDEDAREASOLID($,$,$,$);
#8=IFCCOLOURRGB($,1.,1.,0.);
#9=IFCSURFACESTYLERENDERING(#8,$,$,$,$,$,$,$,$);
#10=IFCSURFACESTYLE('s',.BOTH.,(#9));
#11=IFCSTYLEDITEM(#7,(#10),$);
ENDSEC;
END-ISO-10303-21;
`
	m, err := Read(strings.NewReader(src), "mapped.ifc")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	chair := elementByGUID(t, m, "chair-guid")
	item := chair.Representation.Parts[0].Items[0]
	if len(item.Mapped) != 1 {
		t.Fatalf("mapped items = %d, want 1", len(item.Mapped))
	}
	colors := item.Mapped[0].Colors
	if len(colors) != 1 || colors[0] != (model.RGB{R: 1, G: 1}) {
		t.Errorf("mapped colors = %+v", colors)
	}
}
