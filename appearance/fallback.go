package appearance

import (
	"strings"

	"github.com/bimshape/ifcgml/model"
)

// bodyIdentifiers mirrors the classifier's body aliases: only body-carrying
// sub-representations contribute element-level appearance data.
var bodyIdentifiers = map[string]bool{
	"body":        true,
	"mesh":        true,
	"facetedbrep": true,
}

// collector deduplicates colors by their rounded RGB value across all
// fallback sources while preserving first-seen order.
type collector struct {
	groups []Group
	seen   map[groupKey]bool
}

func newCollector() *collector {
	return &collector{seen: make(map[groupKey]bool)}
}

func (c *collector) add(color model.RGB, faces []int) {
	key := keyOf(color.R, color.G, color.B, 0)
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.groups = append(c.groups, Group{Color: color, Faces: faces})
}

// FromElement approximates material groups from element-level appearance
// data. Groups carry no face list (they apply to the whole geometry) unless
// sourced from an indexed colour map, which yields genuine per-face
// sub-groups. Returns nil when the element has no appearance data; that is
// not an error, simply "no groups".
func FromElement(e *model.Element) []Group {
	if e == nil {
		return nil
	}

	c := newCollector()

	if e.Representation != nil {
		for _, part := range e.Representation.Parts {
			if !bodyIdentifiers[strings.ToLower(part.Identifier)] {
				continue
			}
			for _, item := range part.Items {
				collectItem(c, item)
			}
		}
	}

	for _, assoc := range e.Materials {
		switch assoc.Kind {
		case model.AssociationConstituentSet:
			// Union of every constituent's color, no face targeting.
			for _, color := range assoc.Colors {
				if color != nil {
					c.add(*color, nil)
				}
			}
		case model.AssociationLayerSet:
			// First layer's material color only.
			if len(assoc.Colors) > 0 && assoc.Colors[0] != nil {
				c.add(*assoc.Colors[0], nil)
			}
		case model.AssociationSingle:
			if len(assoc.Colors) > 0 && assoc.Colors[0] != nil {
				c.add(*assoc.Colors[0], nil)
			}
		}
	}

	if len(c.groups) > 0 {
		return c.groups
	}

	// Last resort: a single whole-element color lookup.
	if color, ok := singleColor(e); ok {
		return []Group{{Color: color}}
	}
	return nil
}

// collectItem gathers colors from one representation item: styled-item
// colors, mapped items (representation-map indirection), and indexed colour
// maps with their per-face groupings.
func collectItem(c *collector, item *model.RepItem) {
	if item == nil {
		return
	}
	for _, color := range item.Colors {
		c.add(color, nil)
	}
	for _, mapped := range item.Mapped {
		collectItem(c, mapped)
	}
	if cm := item.ColourMap; cm != nil {
		var order []int
		faces := make(map[int][]int)
		for face, colourIdx := range cm.Index {
			if _, seen := faces[colourIdx]; !seen {
				order = append(order, colourIdx)
			}
			faces[colourIdx] = append(faces[colourIdx], face)
		}
		for _, colourIdx := range order {
			// Colour indices are 1-based.
			if colourIdx < 1 || colourIdx > len(cm.Colours) {
				continue
			}
			c.add(cm.Colours[colourIdx-1], faces[colourIdx])
		}
	}
}

// singleColor finds the first color attached to the element anywhere: any
// sub-representation regardless of identifier, then the first material
// association color.
func singleColor(e *model.Element) (model.RGB, bool) {
	if e.Representation != nil {
		for _, part := range e.Representation.Parts {
			for _, item := range part.Items {
				if color, ok := firstItemColor(item); ok {
					return color, true
				}
			}
		}
	}
	for _, assoc := range e.Materials {
		for _, color := range assoc.Colors {
			if color != nil {
				return *color, true
			}
		}
	}
	return model.RGB{}, false
}

func firstItemColor(item *model.RepItem) (model.RGB, bool) {
	if item == nil {
		return model.RGB{}, false
	}
	if len(item.Colors) > 0 {
		return item.Colors[0], true
	}
	for _, mapped := range item.Mapped {
		if color, ok := firstItemColor(mapped); ok {
			return color, true
		}
	}
	return model.RGB{}, false
}
