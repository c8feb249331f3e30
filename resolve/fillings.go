package resolve

import "github.com/bimshape/ifcgml/model"

// Fillings returns the doors and windows embedded in a host element via the
// two-hop void→fill relation chain. Traversal is exactly two hops; openings
// nested inside openings are not followed. No element appears twice even
// when reachable through distinct void relations.
func Fillings(host *model.Element) []*model.Element {
	if host == nil {
		return nil
	}
	var out []*model.Element
	seen := make(map[*model.Element]bool)
	for _, opening := range host.Openings {
		if opening == nil || opening.Kind != model.KindOpening {
			continue
		}
		for _, filling := range opening.Fillings {
			if filling == nil || !filling.Kind.IsOpenable() {
				continue
			}
			if seen[filling] {
				continue
			}
			seen[filling] = true
			out = append(out, filling)
		}
	}
	return out
}

// Hosts walks the fill chain backwards: the host elements whose openings a
// door or window fills. Used when reporting orphan openings with their
// expected hosts.
func Hosts(filling *model.Element) []*model.Element {
	if filling == nil {
		return nil
	}
	var out []*model.Element
	seen := make(map[*model.Element]bool)
	for _, opening := range filling.FillsOpenings {
		if opening == nil || opening.VoidsHost == nil {
			continue
		}
		host := opening.VoidsHost
		if seen[host] {
			continue
		}
		seen[host] = true
		out = append(out, host)
	}
	return out
}
