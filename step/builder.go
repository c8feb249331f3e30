package step

import (
	"github.com/bimshape/ifcgml/model"
	"github.com/bimshape/ifcgml/semantic"
)

// Root entity attribute positions shared by everything derived from
// IfcRoot: GlobalId, OwnerHistory, Name, Description.
const (
	attrGlobalID    = 0
	attrName        = 2
	attrDescription = 3
)

// attrRepresentation is the product-definition-shape reference on products
// and spatial structure elements.
const attrRepresentation = 6

// Relationship attribute positions. Objectified relationships put their
// payload right after the root attributes.
const (
	attrRelFirst  = 4
	attrRelSecond = 5
)

// builder turns a parsed instance table into the element graph.
type builder struct {
	file *File

	elements map[int64]*model.Element

	// Inverse indexes, populated in one scan before elements are built.
	styledColors map[int64][]model.RGB              // representation item → styled colors
	colourMaps   map[int64]*model.IndexedColourMap  // face set → indexed colour map
	materialCol  map[int64]*model.RGB               // material → resolved color
	repItems     map[int64]*model.RepItem           // memo for representation items
}

// build maps the instance table into a model.
func build(file *File, sourceName string) *model.Model {
	b := &builder{
		file:         file,
		elements:     make(map[int64]*model.Element),
		styledColors: make(map[int64][]model.RGB),
		colourMaps:   make(map[int64]*model.IndexedColourMap),
		materialCol:  make(map[int64]*model.RGB),
		repItems:     make(map[int64]*model.RepItem),
	}

	b.indexInverses()

	m := &model.Model{
		Schema:     file.Schema,
		SourceName: sourceName,
	}

	// First pass: create elements for every handled product type, in
	// source order.
	for _, id := range file.Order {
		inst := file.Instances[id]
		if inst.Type == "IFCPROJECT" {
			if m.Project == nil {
				m.Project = b.rootedElement(inst, "IfcProject", model.KindProject)
			}
			continue
		}
		canonical, kind, ok := semantic.CanonicalType(inst.Type)
		if !ok {
			continue
		}
		e := b.rootedElement(inst, canonical, kind)
		e.Representation = b.buildRepresentation(inst)
		b.elements[id] = e
		m.Elements = append(m.Elements, e)
	}

	// Second pass: wire relationship instances. Unknown endpoints are
	// skipped; a dangling relation is not an error.
	for _, id := range file.Order {
		inst := file.Instances[id]
		switch inst.Type {
		case "IFCRELAGGREGATES", "IFCRELNESTS":
			b.wireAggregation(inst)
		case "IFCRELCONTAINEDINSPATIALSTRUCTURE":
			b.wireContainment(inst)
		case "IFCRELVOIDSELEMENT":
			b.wireVoids(inst)
		case "IFCRELFILLSELEMENT":
			b.wireFills(inst)
		case "IFCRELDEFINESBYPROPERTIES":
			b.wireProperties(inst)
		case "IFCRELASSOCIATESMATERIAL":
			b.wireMaterial(inst)
		}
	}

	m.MapConversion = b.buildMapConversion()
	return m
}

// rootedElement builds an element from the shared root attributes.
func (b *builder) rootedElement(inst *Instance, canonical string, kind model.Kind) *model.Element {
	e := &model.Element{Kind: kind, SourceType: canonical}
	e.GUID, _ = inst.argStr(attrGlobalID)
	e.Name, _ = inst.argStr(attrName)
	e.Description, _ = inst.argStr(attrDescription)
	return e
}

// indexInverses scans the instance table once for the relations the schema
// models as inverses: styled items pointing at their geometry items,
// indexed colour maps pointing at their face sets, and material definition
// representations pointing at their materials.
func (b *builder) indexInverses() {
	for _, id := range b.file.Order {
		inst := b.file.Instances[id]
		switch inst.Type {
		case "IFCSTYLEDITEM":
			itemID, ok := inst.argRef(0)
			if !ok {
				continue
			}
			colors := b.styleColors(inst.argList(1), 0)
			b.styledColors[itemID] = append(b.styledColors[itemID], colors...)
		case "IFCINDEXEDCOLOURMAP":
			faceSetID, ok := inst.argRef(0)
			if !ok {
				continue
			}
			if cm := b.buildColourMap(inst); cm != nil {
				b.colourMaps[faceSetID] = cm
			}
		case "IFCMATERIALDEFINITIONREPRESENTATION":
			materialID, ok := inst.argRef(3)
			if !ok {
				continue
			}
			if color := b.materialRepColor(inst); color != nil {
				b.materialCol[materialID] = color
			}
		}
	}
}

// styleColors resolves surface-style colors from a styled item's style
// list, unwrapping presentation style assignments one level.
func (b *builder) styleColors(styles List, depth int) []model.RGB {
	if depth > 1 {
		return nil
	}
	var out []model.RGB
	for _, v := range styles {
		style := b.file.Get(v)
		if style == nil {
			continue
		}
		switch style.Type {
		case "IFCPRESENTATIONSTYLEASSIGNMENT":
			out = append(out, b.styleColors(style.argList(0), depth+1)...)
		case "IFCSURFACESTYLE":
			for _, sv := range style.argList(2) {
				shading := b.file.Get(sv)
				if shading == nil {
					continue
				}
				if shading.Type != "IFCSURFACESTYLESHADING" && shading.Type != "IFCSURFACESTYLERENDERING" {
					continue
				}
				if rgb, ok := b.colourRGB(shading.arg(0)); ok {
					out = append(out, rgb)
				}
			}
		}
	}
	return out
}

// colourRGB resolves an IFCCOLOURRGB reference.
func (b *builder) colourRGB(v Value) (model.RGB, bool) {
	inst := b.file.Get(v)
	if inst == nil || inst.Type != "IFCCOLOURRGB" {
		return model.RGB{}, false
	}
	r, okR := inst.argFloat(1)
	g, okG := inst.argFloat(2)
	bb, okB := inst.argFloat(3)
	if !okR || !okG || !okB {
		return model.RGB{}, false
	}
	return model.RGB{R: r, G: g, B: bb}, true
}

// buildColourMap resolves an indexed colour map: palette from the colour
// list, 1-based per-face palette indices from ColourIndex.
func (b *builder) buildColourMap(inst *Instance) *model.IndexedColourMap {
	colourList := b.file.Get(inst.arg(2))
	if colourList == nil || colourList.Type != "IFCCOLOURRGBLIST" {
		return nil
	}
	var palette []model.RGB
	for _, triple := range colourList.argList(0) {
		parts, ok := triple.(List)
		if !ok || len(parts) < 3 {
			continue
		}
		rgb := model.RGB{}
		if r, ok := floatOf(parts[0]); ok {
			rgb.R = r
		}
		if g, ok := floatOf(parts[1]); ok {
			rgb.G = g
		}
		if bl, ok := floatOf(parts[2]); ok {
			rgb.B = bl
		}
		palette = append(palette, rgb)
	}
	var index []int
	for _, v := range inst.argList(3) {
		if n, ok := v.(Int); ok {
			index = append(index, int(n))
		}
	}
	if len(palette) == 0 || len(index) == 0 {
		return nil
	}
	return &model.IndexedColourMap{Colours: palette, Index: index}
}

// materialRepColor finds the first styled color in a material definition
// representation.
func (b *builder) materialRepColor(inst *Instance) *model.RGB {
	for _, rv := range inst.argList(2) {
		rep := b.file.Get(rv)
		if rep == nil {
			continue
		}
		for _, iv := range rep.argList(3) {
			item := b.file.Get(iv)
			if item == nil || item.Type != "IFCSTYLEDITEM" {
				continue
			}
			colors := b.styleColors(item.argList(1), 0)
			if len(colors) > 0 {
				c := colors[0]
				return &c
			}
		}
	}
	return nil
}

// buildRepresentation maps a product's definition shape into the IR.
func (b *builder) buildRepresentation(inst *Instance) *model.Representation {
	shape := b.file.Get(inst.arg(attrRepresentation))
	if shape == nil || shape.Type != "IFCPRODUCTDEFINITIONSHAPE" {
		return nil
	}
	var rep model.Representation
	for _, rv := range shape.argList(2) {
		sub := b.file.Get(rv)
		if sub == nil || sub.Type != "IFCSHAPEREPRESENTATION" {
			continue
		}
		part := model.SubRepresentation{}
		part.Identifier, _ = sub.argStr(1)
		part.Type, _ = sub.argStr(2)
		for _, iv := range sub.argList(3) {
			if item := b.buildRepItem(iv, make(map[int64]bool)); item != nil {
				part.Items = append(part.Items, item)
			}
		}
		rep.Parts = append(rep.Parts, part)
	}
	if len(rep.Parts) == 0 {
		return nil
	}
	return &rep
}

// buildRepItem maps one representation item, following mapped items into
// their representation maps. The visited set guards against malformed
// cyclic maps.
func (b *builder) buildRepItem(v Value, visited map[int64]bool) *model.RepItem {
	inst := b.file.Get(v)
	if inst == nil || visited[inst.ID] {
		return nil
	}
	visited[inst.ID] = true
	if memo, ok := b.repItems[inst.ID]; ok {
		return memo
	}

	item := &model.RepItem{Colors: b.styledColors[inst.ID]}
	b.repItems[inst.ID] = item

	if inst.Type == "IFCMAPPEDITEM" {
		if source := b.file.Get(inst.arg(0)); source != nil && source.Type == "IFCREPRESENTATIONMAP" {
			if mapped := b.file.Get(source.arg(1)); mapped != nil {
				for _, iv := range mapped.argList(3) {
					if child := b.buildRepItem(iv, visited); child != nil {
						item.Mapped = append(item.Mapped, child)
					}
				}
			}
		}
	}
	if inst.Type == "IFCTRIANGULATEDFACESET" {
		item.ColourMap = b.colourMaps[inst.ID]
	}
	return item
}

func (b *builder) wireAggregation(inst *Instance) {
	parent := b.elementOf(inst.arg(attrRelFirst))
	if parent == nil {
		return
	}
	for _, v := range inst.argList(attrRelSecond) {
		child := b.elementOf(v)
		if child == nil {
			continue
		}
		child.Parent = parent
		parent.Children = append(parent.Children, child)
	}
}

func (b *builder) wireContainment(inst *Instance) {
	container := b.elementOf(inst.arg(attrRelSecond))
	if container == nil {
		return
	}
	for _, v := range inst.argList(attrRelFirst) {
		contained := b.elementOf(v)
		if contained == nil {
			continue
		}
		contained.Container = container
		container.Contains = append(container.Contains, contained)
	}
}

func (b *builder) wireVoids(inst *Instance) {
	host := b.elementOf(inst.arg(attrRelFirst))
	opening := b.elementOf(inst.arg(attrRelSecond))
	if host == nil || opening == nil {
		return
	}
	host.Openings = append(host.Openings, opening)
	opening.VoidsHost = host
}

func (b *builder) wireFills(inst *Instance) {
	opening := b.elementOf(inst.arg(attrRelFirst))
	filling := b.elementOf(inst.arg(attrRelSecond))
	if opening == nil || filling == nil {
		return
	}
	opening.Fillings = append(opening.Fillings, filling)
	filling.FillsOpenings = append(filling.FillsOpenings, opening)
}

func (b *builder) wireProperties(inst *Instance) {
	pset := b.file.Get(inst.arg(attrRelSecond))
	if pset == nil || pset.Type != "IFCPROPERTYSET" {
		return
	}
	name, _ := pset.argStr(attrName)
	var props []model.Property
	for _, pv := range pset.argList(4) {
		prop := b.file.Get(pv)
		if prop == nil || prop.Type != "IFCPROPERTYSINGLEVALUE" {
			continue
		}
		propName, _ := prop.argStr(0)
		value := propertyValue(prop.arg(2))
		if propName == "" || value == nil {
			continue
		}
		props = append(props, model.Property{Name: propName, Value: value})
	}
	if len(props) == 0 {
		return
	}
	set := model.PropertySet{Name: name, Properties: props}
	for _, v := range inst.argList(attrRelFirst) {
		if e := b.elementOf(v); e != nil {
			e.PropertySets = append(e.PropertySets, set)
		}
	}
}

// propertyValue converts a nominal value into a typed property value.
// Unset values yield nil.
func propertyValue(v Value) model.PropertyValue {
	if t, ok := v.(Typed); ok {
		if len(t.Args) == 0 {
			return nil
		}
		v = t.Args[0]
	}
	switch val := v.(type) {
	case Str:
		return model.StringValue(val)
	case Int:
		return model.IntValue(val)
	case Real:
		return model.RealValue(val)
	case Enum:
		switch val {
		case "T":
			return model.BoolValue(true)
		case "F":
			return model.BoolValue(false)
		default:
			return model.StringValue(val)
		}
	default:
		return nil
	}
}

func (b *builder) wireMaterial(inst *Instance) {
	material := b.file.Get(inst.arg(attrRelSecond))
	if material == nil {
		return
	}
	assoc, ok := b.buildAssociation(material)
	if !ok {
		return
	}
	for _, v := range inst.argList(attrRelFirst) {
		if e := b.elementOf(v); e != nil {
			e.Materials = append(e.Materials, assoc)
		}
	}
}

func (b *builder) buildAssociation(material *Instance) (model.MaterialAssociation, bool) {
	switch material.Type {
	case "IFCMATERIAL":
		return model.MaterialAssociation{
			Kind:   model.AssociationSingle,
			Colors: []*model.RGB{b.materialCol[material.ID]},
		}, true
	case "IFCMATERIALLAYERSETUSAGE":
		layerSet := b.file.Get(material.arg(0))
		if layerSet == nil {
			return model.MaterialAssociation{}, false
		}
		return b.layerSetAssociation(layerSet)
	case "IFCMATERIALLAYERSET":
		return b.layerSetAssociation(material)
	case "IFCMATERIALCONSTITUENTSET":
		var colors []*model.RGB
		for _, cv := range material.argList(2) {
			constituent := b.file.Get(cv)
			if constituent == nil || constituent.Type != "IFCMATERIALCONSTITUENT" {
				continue
			}
			if mat := b.file.Get(constituent.arg(2)); mat != nil {
				colors = append(colors, b.materialCol[mat.ID])
			}
		}
		return model.MaterialAssociation{Kind: model.AssociationConstituentSet, Colors: colors}, true
	default:
		return model.MaterialAssociation{}, false
	}
}

func (b *builder) layerSetAssociation(layerSet *Instance) (model.MaterialAssociation, bool) {
	if layerSet.Type != "IFCMATERIALLAYERSET" {
		return model.MaterialAssociation{}, false
	}
	var colors []*model.RGB
	for _, lv := range layerSet.argList(0) {
		layer := b.file.Get(lv)
		if layer == nil || layer.Type != "IFCMATERIALLAYER" {
			continue
		}
		if mat := b.file.Get(layer.arg(0)); mat != nil {
			colors = append(colors, b.materialCol[mat.ID])
		}
	}
	return model.MaterialAssociation{Kind: model.AssociationLayerSet, Colors: colors}, true
}

// buildMapConversion extracts georeferencing from the first map conversion
// found, with the reference-system label from its target CRS.
func (b *builder) buildMapConversion() *model.MapConversion {
	for _, id := range b.file.Order {
		inst := b.file.Instances[id]
		if inst.Type != "IFCMAPCONVERSION" {
			continue
		}
		mc := &model.MapConversion{}
		mc.Eastings, _ = inst.argFloat(2)
		mc.Northings, _ = inst.argFloat(3)
		mc.OrthogonalHeight, _ = inst.argFloat(4)
		if v, ok := inst.argFloat(5); ok {
			mc.XAxisAbscissa = &v
		}
		if v, ok := inst.argFloat(6); ok {
			mc.XAxisOrdinate = &v
		}
		if v, ok := inst.argFloat(7); ok {
			mc.Scale = &v
		}
		if crs := b.file.Get(inst.arg(1)); crs != nil && crs.Type == "IFCPROJECTEDCRS" {
			mc.SRSName, _ = crs.argStr(0)
		}
		return mc
	}
	return nil
}

func (b *builder) elementOf(v Value) *model.Element {
	ref, ok := v.(Ref)
	if !ok {
		return nil
	}
	return b.elements[int64(ref)]
}

func floatOf(v Value) (float64, bool) {
	switch val := v.(type) {
	case Real:
		return float64(val), true
	case Int:
		return float64(val), true
	default:
		return 0, false
	}
}
