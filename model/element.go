package model

// Kind classifies a source element into one of the fixed categories the
// converter knows how to emit.
type Kind int

const (
	KindUnknown Kind = iota
	KindWall
	KindRoof
	KindSlab
	KindColumn
	KindBeam
	KindMember
	KindPlate
	KindStair
	KindStairFlight
	KindRamp
	KindRampFlight
	KindFooting
	KindPile
	KindProxy
	KindCurtainWall
	KindCovering
	KindRailing
	KindFurniture
	KindDoor
	KindWindow
	KindSpace
	KindStorey
	KindBuilding
	KindOpening
	KindProject
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "Wall"
	case KindRoof:
		return "Roof"
	case KindSlab:
		return "Slab"
	case KindColumn:
		return "Column"
	case KindBeam:
		return "Beam"
	case KindMember:
		return "Member"
	case KindPlate:
		return "Plate"
	case KindStair:
		return "Stair"
	case KindStairFlight:
		return "StairFlight"
	case KindRamp:
		return "Ramp"
	case KindRampFlight:
		return "RampFlight"
	case KindFooting:
		return "Footing"
	case KindPile:
		return "Pile"
	case KindProxy:
		return "Proxy"
	case KindCurtainWall:
		return "CurtainWall"
	case KindCovering:
		return "Covering"
	case KindRailing:
		return "Railing"
	case KindFurniture:
		return "Furniture"
	case KindDoor:
		return "Door"
	case KindWindow:
		return "Window"
	case KindSpace:
		return "Space"
	case KindStorey:
		return "Storey"
	case KindBuilding:
		return "Building"
	case KindOpening:
		return "Opening"
	case KindProject:
		return "Project"
	default:
		return "Unknown"
	}
}

// IsOpenable reports whether elements of this kind fill openings.
func (k Kind) IsOpenable() bool {
	return k == KindDoor || k == KindWindow
}

// Element is one node of the BIM element graph.
type Element struct {
	// Identity
	GUID       string
	Kind       Kind
	SourceType string // source entity type, e.g. "IfcWallStandardCase"

	// Optional descriptive metadata; empty string means absent.
	Name        string
	Description string

	// Shape metadata; nil when the element has no representation.
	Representation *Representation

	PropertySets []PropertySet
	Materials    []MaterialAssociation

	// Void relations. On a host element, Openings lists the opening
	// elements cut out of it. On an opening element, VoidsHost points back
	// at the host.
	Openings  []*Element
	VoidsHost *Element

	// Fill relations. On an opening element, Fillings lists the elements
	// occupying it. On a filling element, FillsOpenings lists the openings
	// it occupies.
	Fillings      []*Element
	FillsOpenings []*Element

	// Aggregation and nesting.
	Parent   *Element
	Children []*Element

	// Spatial containment.
	Container *Element
	Contains  []*Element
}

// Decomposition returns every element below e via aggregation/nesting and
// spatial containment, recursively. The receiver itself is not included.
func (e *Element) Decomposition() []*Element {
	var out []*Element
	visited := map[*Element]bool{e: true}
	var walk func(el *Element)
	walk = func(el *Element) {
		for _, group := range [2][]*Element{el.Children, el.Contains} {
			for _, child := range group {
				if visited[child] {
					continue
				}
				visited[child] = true
				out = append(out, child)
				walk(child)
			}
		}
	}
	walk(e)
	return out
}
