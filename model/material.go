package model

// MaterialAssociationKind distinguishes the forms a material association
// arrives in.
type MaterialAssociationKind int

const (
	AssociationSingle MaterialAssociationKind = iota
	AssociationLayerSet
	AssociationConstituentSet
)

func (k MaterialAssociationKind) String() string {
	switch k {
	case AssociationSingle:
		return "Single"
	case AssociationLayerSet:
		return "LayerSet"
	case AssociationConstituentSet:
		return "ConstituentSet"
	default:
		return "Unknown"
	}
}

// MaterialAssociation is one material assignment of an element with its
// colors already resolved through the material definition representations.
// Colors are in declaration order; a nil entry is a material without color.
type MaterialAssociation struct {
	Kind   MaterialAssociationKind
	Colors []*RGB
}
