package citygml

import (
	"github.com/google/uuid"

	"github.com/bimshape/ifcgml/model"
)

// newID returns a fresh feature/geometry identifier. The stream is never
// reused, within or across buildings.
func newID() string {
	return "UUID_" + uuid.New().String()
}

// buildingContext is the per-building bookkeeping: assigned identifiers,
// the confirmed-emitted subset, and the dummy-bucket features keyed by
// storey. Built fresh for every building and discarded afterwards, so no
// state leaks across building boundaries.
type buildingContext struct {
	ids     map[*model.Element]string
	emitted map[*model.Element]bool

	// Orphan doors/windows grouped into dummy buckets: feature id per
	// resolved storey, for the storey cross-references. The no-storey
	// fallback bucket is never linked, so its id is not tracked.
	dummyByStorey map[*model.Element]string

	// embedded tracks doors/windows consumed as fillings during host
	// iteration; whatever remains afterwards is an orphan.
	embedded map[*model.Element]bool

	appearances int
}

func newBuildingContext() *buildingContext {
	return &buildingContext{
		ids:           make(map[*model.Element]string),
		emitted:       make(map[*model.Element]bool),
		dummyByStorey: make(map[*model.Element]string),
		embedded:      make(map[*model.Element]bool),
	}
}

// assign records the identifier of an attempted feature.
func (c *buildingContext) assign(e *model.Element, id string) {
	c.ids[e] = id
}

// confirm marks an element as actually emitted. Only confirmed elements
// may be cross-referenced.
func (c *buildingContext) confirm(e *model.Element) {
	c.emitted[e] = true
}

// linkTarget returns the identifier an xlink may point at: set only when
// the element was attempted and its geometry was kept.
func (c *buildingContext) linkTarget(e *model.Element) (string, bool) {
	if !c.emitted[e] {
		return "", false
	}
	id, ok := c.ids[e]
	return id, ok
}
