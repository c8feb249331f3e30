package semantic

import (
	"strings"

	"github.com/bimshape/ifcgml/model"
)

// FeatureClass is the target feature class an element is emitted as.
type FeatureClass int

const (
	ClassNone FeatureClass = iota
	ClassConstructiveElement
	ClassInstallation
	ClassFurniture
	ClassRoom
	ClassDoor
	ClassWindow
)

func (c FeatureClass) String() string {
	switch c {
	case ClassConstructiveElement:
		return "BuildingConstructiveElement"
	case ClassInstallation:
		return "BuildingInstallation"
	case ClassFurniture:
		return "BuildingFurniture"
	case ClassRoom:
		return "BuildingRoom"
	case ClassDoor:
		return "Door"
	case ClassWindow:
		return "Window"
	default:
		return "None"
	}
}

// kindBySourceType maps source entity types onto kinds. Several source
// types share a kind (both wall flavours, the three furniture flavours);
// the source type stays on the element for exact-type iteration and class
// labelling.
var kindBySourceType = map[string]model.Kind{
	"IfcProject":                model.KindProject,
	"IfcBuilding":               model.KindBuilding,
	"IfcBuildingStorey":         model.KindStorey,
	"IfcSpace":                  model.KindSpace,
	"IfcOpeningElement":         model.KindOpening,
	"IfcWall":                   model.KindWall,
	"IfcWallStandardCase":       model.KindWall,
	"IfcRoof":                   model.KindRoof,
	"IfcSlab":                   model.KindSlab,
	"IfcColumn":                 model.KindColumn,
	"IfcBeam":                   model.KindBeam,
	"IfcMember":                 model.KindMember,
	"IfcPlate":                  model.KindPlate,
	"IfcStair":                  model.KindStair,
	"IfcStairFlight":            model.KindStairFlight,
	"IfcRamp":                   model.KindRamp,
	"IfcRampFlight":             model.KindRampFlight,
	"IfcFooting":                model.KindFooting,
	"IfcPile":                   model.KindPile,
	"IfcBuildingElementProxy":   model.KindProxy,
	"IfcCurtainWall":            model.KindCurtainWall,
	"IfcCovering":               model.KindCovering,
	"IfcRailing":                model.KindRailing,
	"IfcFurniture":              model.KindFurniture,
	"IfcSystemFurnitureElement": model.KindFurniture,
	"IfcFurnishingElement":      model.KindFurniture,
	"IfcDoor":                   model.KindDoor,
	"IfcWindow":                 model.KindWindow,
}

// KindForSourceType returns the kind a source entity type maps to, or
// KindUnknown when the type is not handled.
func KindForSourceType(sourceType string) model.Kind {
	return kindBySourceType[sourceType]
}

// canonicalByUpper maps uppercase entity keywords, as they appear in
// exchange files, back to their canonical mixed-case type names.
var canonicalByUpper = func() map[string]string {
	m := make(map[string]string, len(kindBySourceType))
	for name := range kindBySourceType {
		m[strings.ToUpper(name)] = name
	}
	return m
}()

// CanonicalType resolves an entity type in any casing to its canonical
// name and kind. The second return is false for unhandled types.
func CanonicalType(entityType string) (string, model.Kind, bool) {
	name, ok := canonicalByUpper[strings.ToUpper(entityType)]
	if !ok {
		return "", model.KindUnknown, false
	}
	return name, kindBySourceType[name], true
}

// classByKind maps kinds onto target feature classes.
var classByKind = map[model.Kind]FeatureClass{
	model.KindWall:        ClassConstructiveElement,
	model.KindRoof:        ClassConstructiveElement,
	model.KindSlab:        ClassConstructiveElement,
	model.KindColumn:      ClassConstructiveElement,
	model.KindBeam:        ClassConstructiveElement,
	model.KindMember:      ClassConstructiveElement,
	model.KindPlate:       ClassConstructiveElement,
	model.KindStair:       ClassConstructiveElement,
	model.KindStairFlight: ClassConstructiveElement,
	model.KindRamp:        ClassConstructiveElement,
	model.KindRampFlight:  ClassConstructiveElement,
	model.KindFooting:     ClassConstructiveElement,
	model.KindPile:        ClassConstructiveElement,
	model.KindProxy:       ClassConstructiveElement,
	model.KindCurtainWall: ClassConstructiveElement,
	model.KindCovering:    ClassInstallation,
	model.KindRailing:     ClassInstallation,
	model.KindFurniture:   ClassFurniture,
	model.KindSpace:       ClassRoom,
	model.KindDoor:        ClassDoor,
	model.KindWindow:      ClassWindow,
}

// ClassFor returns the feature class an element kind is emitted as, or
// ClassNone when the kind is not emitted as its own feature.
func ClassFor(k model.Kind) FeatureClass {
	return classByKind[k]
}

// Emission order tables. The assembler iterates source types, not kinds, so
// that subtype pairs like wall/wall-standard-case keep their own class
// labels and their source enumeration order.
var (
	// WallTypes are processed first: walls carry most embedded openings.
	WallTypes = []string{"IfcWall", "IfcWallStandardCase"}

	// ConstructiveTypes are the remaining constructive element types.
	ConstructiveTypes = []string{
		"IfcRoof", "IfcSlab", "IfcColumn", "IfcBeam", "IfcMember", "IfcPlate",
		"IfcStair", "IfcStairFlight", "IfcRamp", "IfcRampFlight",
		"IfcFooting", "IfcPile", "IfcBuildingElementProxy", "IfcCurtainWall",
	}

	InstallationTypes = []string{"IfcCovering", "IfcRailing"}

	FurnitureTypes = []string{"IfcFurniture", "IfcSystemFurnitureElement", "IfcFurnishingElement"}
)

// LinkableTypes lists every source type a storey may cross-reference.
// Doors and windows are absent: fillings are embedded, never linked.
func LinkableTypes() []string {
	out := make([]string, 0, len(WallTypes)+len(ConstructiveTypes)+len(InstallationTypes)+len(FurnitureTypes))
	out = append(out, WallTypes...)
	out = append(out, ConstructiveTypes...)
	out = append(out, InstallationTypes...)
	out = append(out, FurnitureTypes...)
	return out
}
