// Package store persists generated levels and answers exact
// (level number, canvas extent) lookups for the generator's cache-and-reuse
// contract: an unchanged viewport replays the same puzzle, a resized one
// misses and forces regeneration.
//
// Two implementations of the generate.Store shape are provided:
//
//   - MemoryStore — per-process map, the default for a running game
//   - SQLiteStore — durable single-file store (cgo-free modernc driver)
//
// Both exchange deep copies exclusively: Save clones the level in, Load
// clones it out, so no reference ever aliases between the store and the
// caller. The YAML snapshot codec (EncodeLevel/DecodeLevel) is the
// serialization boundary — plain id/position/radius/neighbor-list and
// endpoint/crossing records, nothing richer. An empty document decodes to
// no level, which callers treat as "generate fresh".
package store
