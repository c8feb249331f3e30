// Package citygml assembles a CityGML 3.0 document from a BIM element
// graph.
//
// The [Generator] drives one pass per building in a fixed emission order
// dictated by the target schema's content models: building metadata, then
// constructive elements (walls with their embedded openings first), orphan
// opening buckets, installations, rooms, furniture, and finally storeys
// with cross-references to everything emitted before them.
//
// Feature emission is speculative: a candidate node is built detached,
// and only attached to the document once geometry extraction confirmed the
// element contributes geometry. Cross-references are only ever written to
// confirmed features, so every xlink in the output resolves. Bookkeeping
// lives in a per-building context that is discarded at building
// boundaries; identifiers are never reused across buildings.
//
// Non-fatal conditions (a failed geometry extraction, an unmatched door)
// surface as [Warning] values; no element failure ever aborts a sibling.
package citygml
