package citygml

import (
	"strconv"

	"github.com/bimshape/ifcgml/model"
)

// emitProperties writes the element's property sets as generic attributes.
// By default each set becomes one attribute set carrying its name; the
// flat mode spills all properties as direct attributes instead. Sets and
// properties named "id" are internal bookkeeping and skipped.
func (g *Generator) emitProperties(feat *Node, e *model.Element) {
	if g.opts.NoProperties {
		return
	}
	for _, pset := range e.PropertySets {
		if pset.Name == "id" {
			continue
		}
		props := validProperties(pset.Properties)
		if len(props) == 0 {
			continue
		}

		if g.opts.FlatAttributes {
			for _, p := range props {
				name := p.Name
				if g.opts.PrefixAttributeNames {
					name = "[" + pset.Name + "]" + name
				}
				emitAttribute(feat.Child("core", "genericAttribute"), name, p.Value)
			}
			continue
		}

		set := feat.Child("core", "genericAttribute").Child("gen", "GenericAttributeSet")
		set.TextChild("gen", "name", pset.Name)
		for _, p := range props {
			name := p.Name
			if g.opts.PrefixAttributeNames {
				name = "[" + pset.Name + "]" + name
			}
			emitAttribute(set.Child("gen", "genericAttribute"), name, p.Value)
		}
	}
}

func validProperties(props []model.Property) []model.Property {
	var out []model.Property
	for _, p := range props {
		if p.Value == nil || p.Name == "id" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// emitAttribute writes one typed generic attribute. Booleans become
// integer attributes, the target schema has no boolean generic type.
func emitAttribute(parent *Node, name string, value model.PropertyValue) {
	var local, text string
	switch v := value.(type) {
	case model.BoolValue:
		local = "IntAttribute"
		if v {
			text = "1"
		} else {
			text = "0"
		}
	case model.RealValue:
		local = "DoubleAttribute"
		text = strconv.FormatFloat(float64(v), 'g', -1, 64)
	case model.IntValue:
		local = "IntAttribute"
		text = strconv.FormatInt(int64(v), 10)
	case model.StringValue:
		local = "StringAttribute"
		text = string(v)
	default:
		return
	}
	attr := parent.Child("gen", local)
	attr.TextChild("gen", "name", name)
	attr.TextChild("gen", "value", text)
}
