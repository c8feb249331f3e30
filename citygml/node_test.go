package citygml

import (
	"strings"
	"testing"
)

func TestNodeWrite(t *testing.T) {
	root := NewNode("core", "CityModel")
	root.SetAttr("xsi", "schemaLocation", schemaLocation)
	member := root.Child("core", "cityObjectMember")
	b := member.Child("bldg", "Building")
	b.SetAttr("gml", "id", "UUID_1")
	b.TextChild("gml", "name", "Main")
	b.Child("bldg", "buildingConstructiveElement")

	var sb strings.Builder
	if err := root.Write(&sb); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	out := sb.String()

	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("output missing XML declaration")
	}
	for _, want := range []string{
		`xmlns:core="http://www.opengis.net/citygml/3.0"`,
		`xmlns:bldg="http://www.opengis.net/citygml/building/3.0"`,
		`xmlns:con="http://www.opengis.net/citygml/construction/3.0"`,
		`xmlns:gen="http://www.opengis.net/citygml/generics/3.0"`,
		`xmlns:app="http://www.opengis.net/citygml/appearance/3.0"`,
		`xmlns:gml="http://www.opengis.net/gml/3.2"`,
		`xmlns:xlink="http://www.w3.org/1999/xlink"`,
		`<bldg:Building gml:id="UUID_1">`,
		`<gml:name>Main</gml:name>`,
		`<bldg:buildingConstructiveElement/>`,
		`</core:CityModel>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}
	// The prefix table is declared once, on the root.
	if strings.Count(out, "xmlns:gml=") != 1 {
		t.Errorf("gml namespace declared %d times, want 1", strings.Count(out, "xmlns:gml="))
	}
}

func TestNodeWriteEscapesText(t *testing.T) {
	root := NewNode("core", "CityModel")
	root.TextChild("gml", "name", `Fa<c>ade & "more"`)
	child := root.Child("core", "cityObjectMember")
	child.SetAttr("gml", "id", `a<b&"c"`)

	var sb strings.Builder
	if err := root.Write(&sb); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	out := sb.String()

	if strings.Contains(out, "Fa<c>ade") {
		t.Errorf("text not escaped: %s", out)
	}
	if !strings.Contains(out, "Fa&lt;c&gt;ade &amp;") {
		t.Errorf("escaped text missing: %s", out)
	}
	if !strings.Contains(out, "a&lt;b&amp;") {
		t.Errorf("attribute not escaped: %s", out)
	}
}

func TestNodeFindAndAttr(t *testing.T) {
	n := NewNode("bldg", "Building")
	n.SetAttr("gml", "id", "x")
	n.Child("gml", "name")
	n.Child("gml", "name")
	n.Child("bldg", "class")

	if got := len(n.FindAll("gml", "name")); got != 2 {
		t.Errorf("FindAll() = %d, want 2", got)
	}
	if n.Find("gml", "description") != nil {
		t.Errorf("Find() found a missing child")
	}
	if v, ok := n.Attr("gml", "id"); !ok || v != "x" {
		t.Errorf("Attr() = (%q, %v), want (x, true)", v, ok)
	}
	if _, ok := n.Attr("gml", "missing"); ok {
		t.Errorf("Attr() reported a missing attribute as set")
	}
}

func TestNewIDFormat(t *testing.T) {
	id := newID()
	if !strings.HasPrefix(id, "UUID_") {
		t.Errorf("newID() = %q, want UUID_ prefix", id)
	}
	if len(id) != len("UUID_")+36 {
		t.Errorf("newID() length = %d, want UUID_ plus 36", len(id))
	}
	if id == newID() {
		t.Errorf("newID() returned the same value twice")
	}
}
