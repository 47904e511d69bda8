// Package ast is the document model produced by parsing sage text.
//
// A Document is a flat ordered list of top-level nodes; the notation's
// constructs do not nest at the top level, so there is no tree above
// node granularity. Reading order is meaningful and preserved (later
// passes associate prose with the decision that follows it by
// position, not by ownership).
//
// Storage follows the arena pattern: nodes, statements, type
// expressions, and their sub-entities live in append-only arenas
// addressed by 1-based typed IDs, with names interned through
// source.Interner. A document is immutable once its parse call
// returns; a re-parse builds a fresh Builder and discards the old one.
// No node references the token stream or a sibling node; refinement
// parent/child links are names only.
package ast
