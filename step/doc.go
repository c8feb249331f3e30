// Package step reads ISO 10303-21 files (STEP physical files, the exchange
// format IFC models ship in) and builds the model package's element graph.
//
// Reading happens in three stages: the lexer tokenizes the exchange
// structure, the parser collects the entity instances of the DATA section
// into an instance table, and the builder resolves references between
// instances into [model.Element] values with their relation edges, property
// sets, material associations, and georeferencing metadata.
//
// Only the entity types the converter consumes are mapped; everything else
// is skipped silently. Dangling references resolve to nothing and are
// likewise skipped; a sparse model is not an error.
package step
