package resolve

import "github.com/bimshape/ifcgml/model"

// Members returns the set of elements belonging to a storey. The result is
// the union of two independently computed sets: the storey's transitive
// aggregation/containment closure, and the elements whose containment
// relation names the storey directly. Union, not intersection: models
// populate either relation, rarely both.
func Members(storey *model.Element) map[*model.Element]bool {
	members := make(map[*model.Element]bool)
	if storey == nil {
		return members
	}
	for _, e := range storey.Decomposition() {
		members[e] = true
	}
	for _, e := range storey.Contains {
		if e != nil {
			members[e] = true
		}
	}
	return members
}

// StoreyFor finds the storey an element belongs to, for elements not
// otherwise embedded as fillings. It checks the element's own containment
// relation first (following through an intermediate building container via
// the aggregation parent), then walks the aggregation parent chain. Returns
// nil when no storey is discoverable; callers treat that as "no storey".
func StoreyFor(e *model.Element) *model.Element {
	return storeyFor(e, make(map[*model.Element]bool))
}

func storeyFor(e *model.Element, visited map[*model.Element]bool) *model.Element {
	if e == nil || visited[e] {
		return nil
	}
	visited[e] = true

	if c := e.Container; c != nil {
		if c.Kind == model.KindStorey {
			return c
		}
		// Contained directly in a building: the storey, if any, hangs off
		// the element's own aggregation parent.
		if c.Kind == model.KindBuilding && e.Parent != nil && e.Parent.Kind == model.KindStorey {
			return e.Parent
		}
	}

	if p := e.Parent; p != nil {
		if p.Kind == model.KindStorey {
			return p
		}
		return storeyFor(p, visited)
	}
	return nil
}
