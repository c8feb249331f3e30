package citygml

import (
	"fmt"
	"strings"
)

// WarningCategory classifies non-fatal conditions encountered during
// document assembly.
type WarningCategory int

const (
	// WarnNoBuildings: the model holds no top-level spatial container;
	// the output document is valid but empty.
	WarnNoBuildings WarningCategory = iota
	// WarnGeometryFailure: the geometry kernel failed for one element;
	// the element was treated as geometry-less.
	WarnGeometryFailure
	// WarnOrphanOpening: a door or window could not be matched to any
	// host element.
	WarnOrphanOpening
)

func (c WarningCategory) String() string {
	switch c {
	case WarnNoBuildings:
		return "no-buildings"
	case WarnGeometryFailure:
		return "geometry-failure"
	case WarnOrphanOpening:
		return "orphan-opening"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal condition tied to at most one source element.
// Warnings never abort processing of sibling elements.
type Warning struct {
	Category WarningCategory
	GUID     string // source element GUID; empty for model-level warnings
	Message  string
}

func (w Warning) String() string {
	if w.GUID == "" {
		return fmt.Sprintf("[%s] %s", w.Category, w.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", w.Category, w.GUID, w.Message)
}

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
