// Package placement moves classified files into their final library location.
//
// The engine resolves a media group identity for each incoming file, searches
// the library breadth-first for an existing directory holding that group,
// then either merges the file into it or creates the canonical target
// computed from category, year, and identity. Placements are serialized per
// group id so two first-time files of the same group can never race the
// search-then-create sequence into divergent directories. Error wrapping and
// decision logging follow the same conventions as the rest of the pipeline.
package placement
