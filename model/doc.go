// Package model provides the intermediate representation (IR) for a BIM
// element graph.
//
// This package defines the data structures the step reader produces and the
// citygml assembler consumes. A [Model] holds the project, every product
// element in source order, and the georeferencing metadata. Each [Element]
// carries its identity (GUID, [Kind], source entity type), optional
// name/description, an optional shape [Representation], property sets,
// material associations, and the relation edges the resolvers walk:
//
//   - Openings / VoidsHost: void relations between hosts and openings
//   - Fillings / FillsOpenings: fill relations between openings and
//     doors or windows
//   - Parent / Children: aggregation and nesting
//   - Container / Contains: spatial containment
//
// Relation edges are immutable inputs: resolvers read them, nothing in this
// module mutates a model after it has been built.
//
// Triangle meshes ([Mesh]) are produced by a geometry kernel, not by this
// package; see the kernel package for the boundary.
package model
