package resolve

import (
	"testing"

	"github.com/bimshape/ifcgml/model"
)

func TestFillingsTwoHopChain(t *testing.T) {
	door := &model.Element{GUID: "door", Kind: model.KindDoor}
	window := &model.Element{GUID: "window", Kind: model.KindWindow}
	opening1 := &model.Element{Kind: model.KindOpening, Fillings: []*model.Element{door}}
	opening2 := &model.Element{Kind: model.KindOpening, Fillings: []*model.Element{window}}
	wall := &model.Element{Kind: model.KindWall, Openings: []*model.Element{opening1, opening2}}

	got := Fillings(wall)
	if len(got) != 2 || got[0] != door || got[1] != window {
		t.Fatalf("Fillings() = %v, want [door window]", guids(got))
	}
}

func TestFillingsDeduplicates(t *testing.T) {
	door := &model.Element{GUID: "door", Kind: model.KindDoor}
	opening1 := &model.Element{Kind: model.KindOpening, Fillings: []*model.Element{door}}
	opening2 := &model.Element{Kind: model.KindOpening, Fillings: []*model.Element{door}}
	wall := &model.Element{Kind: model.KindWall, Openings: []*model.Element{opening1, opening2}}

	if got := Fillings(wall); len(got) != 1 {
		t.Errorf("Fillings() returned %d elements, want 1: reachable twice but embedded once", len(got))
	}
}

func TestFillingsSkipsNonFillers(t *testing.T) {
	slab := &model.Element{Kind: model.KindSlab}
	opening := &model.Element{Kind: model.KindOpening, Fillings: []*model.Element{slab, nil}}
	wall := &model.Element{Kind: model.KindWall, Openings: []*model.Element{opening}}

	if got := Fillings(wall); len(got) != 0 {
		t.Errorf("Fillings() = %v, want none: only doors and windows fill openings", guids(got))
	}
}

func TestFillingsSkipsNonOpenings(t *testing.T) {
	door := &model.Element{Kind: model.KindDoor}
	// A wall wrongly wired as an opening must not be traversed.
	notOpening := &model.Element{Kind: model.KindWall, Fillings: []*model.Element{door}}
	wall := &model.Element{Kind: model.KindWall, Openings: []*model.Element{notOpening}}

	if got := Fillings(wall); len(got) != 0 {
		t.Errorf("Fillings() = %v, want none through a non-opening", guids(got))
	}
}

func TestFillingsExactlyTwoHops(t *testing.T) {
	deepDoor := &model.Element{Kind: model.KindDoor}
	innerOpening := &model.Element{Kind: model.KindOpening, Fillings: []*model.Element{deepDoor}}
	// The outer opening is "filled" by another opening; that chain ends there.
	outerOpening := &model.Element{Kind: model.KindOpening, Fillings: []*model.Element{innerOpening}}
	wall := &model.Element{Kind: model.KindWall, Openings: []*model.Element{outerOpening}}

	if got := Fillings(wall); len(got) != 0 {
		t.Errorf("Fillings() = %v, want none beyond two hops", guids(got))
	}
}

func TestFillingsNilHost(t *testing.T) {
	if got := Fillings(nil); got != nil {
		t.Errorf("Fillings(nil) = %v, want nil", got)
	}
}

func TestHosts(t *testing.T) {
	wall := &model.Element{GUID: "wall", Kind: model.KindWall}
	slab := &model.Element{GUID: "slab", Kind: model.KindSlab}
	opening1 := &model.Element{Kind: model.KindOpening, VoidsHost: wall}
	opening2 := &model.Element{Kind: model.KindOpening, VoidsHost: slab}
	opening3 := &model.Element{Kind: model.KindOpening, VoidsHost: wall}
	orphanOpening := &model.Element{Kind: model.KindOpening}
	door := &model.Element{Kind: model.KindDoor,
		FillsOpenings: []*model.Element{opening1, opening2, opening3, orphanOpening}}

	got := Hosts(door)
	if len(got) != 2 || got[0] != wall || got[1] != slab {
		t.Fatalf("Hosts() = %v, want [wall slab]", guids(got))
	}
}

func guids(elements []*model.Element) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = e.GUID
	}
	return out
}
