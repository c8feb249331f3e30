// Package resolve answers relational queries over the BIM element graph:
// which doors and windows fill a host element's openings, which elements a
// storey contains, and which storey an element belongs to.
//
// Source models are inconsistent about which relation they populate, so the
// storey resolvers union multiple relation paths rather than trusting any
// single one. All resolvers are read-only and side-effect free.
package resolve
