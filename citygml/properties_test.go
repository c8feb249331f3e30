package citygml

import (
	"testing"

	"github.com/bimshape/ifcgml/model"
)

func wallWithProperties(m *model.Model, psets ...model.PropertySet) {
	for _, e := range m.Elements {
		if e.GUID == "wall-1" {
			e.PropertySets = psets
		}
	}
}

func wallFeature(t *testing.T, root *Node) *Node {
	t.Helper()
	return findPath(t, root, "core:cityObjectMember", "bldg:Building",
		"bldg:buildingConstructiveElement", "bldg:BuildingConstructiveElement")
}

func TestPropertiesGroupedBySet(t *testing.T) {
	m, meshes := testModel()
	wallWithProperties(m, model.PropertySet{
		Name: "Pset_WallCommon",
		Properties: []model.Property{
			{Name: "IsExternal", Value: model.BoolValue(true)},
			{Name: "FireRating", Value: model.StringValue("F90")},
			{Name: "Width", Value: model.RealValue(0.24)},
			{Name: "Layers", Value: model.IntValue(3)},
		},
	})
	root, _ := generate(t, m, meshes, Options{})

	set := findPath(t, wallFeature(t, root), "core:genericAttribute", "gen:GenericAttributeSet")
	if name := set.Find("gen", "name"); name == nil || name.Text != "Pset_WallCommon" {
		t.Fatalf("set name = %+v, want Pset_WallCommon", name)
	}
	attrs := set.FindAll("gen", "genericAttribute")
	if len(attrs) != 4 {
		t.Fatalf("attributes = %d, want 4", len(attrs))
	}

	tests := []struct {
		local, name, value string
	}{
		{"IntAttribute", "IsExternal", "1"},
		{"StringAttribute", "FireRating", "F90"},
		{"DoubleAttribute", "Width", "0.24"},
		{"IntAttribute", "Layers", "3"},
	}
	for i, tt := range tests {
		attr := attrs[i].Find("gen", tt.local)
		if attr == nil {
			t.Errorf("attribute %d: no gen:%s", i, tt.local)
			continue
		}
		if name := attr.Find("gen", "name"); name == nil || name.Text != tt.name {
			t.Errorf("attribute %d name = %+v, want %s", i, name, tt.name)
		}
		if value := attr.Find("gen", "value"); value == nil || value.Text != tt.value {
			t.Errorf("attribute %d value = %+v, want %s", i, value, tt.value)
		}
	}
}

func TestPropertiesFlat(t *testing.T) {
	m, meshes := testModel()
	wallWithProperties(m, model.PropertySet{
		Name:       "Pset_WallCommon",
		Properties: []model.Property{{Name: "IsExternal", Value: model.BoolValue(false)}},
	})
	root, _ := generate(t, m, meshes, Options{FlatAttributes: true})

	wall := wallFeature(t, root)
	container := findPath(t, wall, "core:genericAttribute")
	if container.Find("gen", "GenericAttributeSet") != nil {
		t.Errorf("flat mode still wraps attributes in a set")
	}
	attr := findPath(t, container, "gen:IntAttribute")
	if value := attr.Find("gen", "value"); value == nil || value.Text != "0" {
		t.Errorf("false bool value = %+v, want 0", value)
	}
}

func TestPropertiesPrefixedNames(t *testing.T) {
	m, meshes := testModel()
	wallWithProperties(m, model.PropertySet{
		Name:       "Pset_WallCommon",
		Properties: []model.Property{{Name: "IsExternal", Value: model.BoolValue(true)}},
	})

	t.Run("flat", func(t *testing.T) {
		root, _ := generate(t, m, meshes, Options{FlatAttributes: true, PrefixAttributeNames: true})
		attr := findPath(t, wallFeature(t, root), "core:genericAttribute", "gen:IntAttribute")
		if name := attr.Find("gen", "name"); name == nil || name.Text != "[Pset_WallCommon]IsExternal" {
			t.Errorf("name = %+v, want [Pset_WallCommon]IsExternal", name)
		}
	})
	t.Run("grouped", func(t *testing.T) {
		root, _ := generate(t, m, meshes, Options{PrefixAttributeNames: true})
		attr := findPath(t, wallFeature(t, root), "core:genericAttribute",
			"gen:GenericAttributeSet", "gen:genericAttribute", "gen:IntAttribute")
		if name := attr.Find("gen", "name"); name == nil || name.Text != "[Pset_WallCommon]IsExternal" {
			t.Errorf("name = %+v, want [Pset_WallCommon]IsExternal", name)
		}
	})
}

func TestPropertiesSkipInternalAndEmpty(t *testing.T) {
	m, meshes := testModel()
	wallWithProperties(m,
		model.PropertySet{Name: "id", Properties: []model.Property{{Name: "x", Value: model.IntValue(1)}}},
		model.PropertySet{Name: "Empty"},
		model.PropertySet{Name: "OnlyID", Properties: []model.Property{{Name: "id", Value: model.IntValue(1)}}},
		model.PropertySet{Name: "OnlyNil", Properties: []model.Property{{Name: "x", Value: nil}}},
	)
	root, _ := generate(t, m, meshes, Options{})

	if n := wallFeature(t, root).Find("core", "genericAttribute"); n != nil {
		t.Errorf("internal/empty property sets were emitted")
	}
}

func TestNoPropertiesOption(t *testing.T) {
	m, meshes := testModel()
	wallWithProperties(m, model.PropertySet{
		Name:       "Pset_WallCommon",
		Properties: []model.Property{{Name: "IsExternal", Value: model.BoolValue(true)}},
	})
	root, _ := generate(t, m, meshes, Options{NoProperties: true})

	if n := wallFeature(t, root).Find("core", "genericAttribute"); n != nil {
		t.Errorf("properties emitted despite NoProperties")
	}
}
