// Package lucene provides the search expression AST used to build MusicBrainz
// full-text queries, and renders it to the Lucene query-parser subset the
// search endpoint accepts.
//
// ARCHITECTURE:
//
// The package sits between the per-entity search builders and the wire:
//
//	[search builders] → [Expr tree] → Render → "artist:\"David Bowie\" AND ..."
//
// An expression tree is built from Terms (atomic values) and five node
// kinds. Every node is immutable once constructed and validated at
// construction; Render never fails.
//
// GRAMMAR:
//
//	field:value
//	field:"phrase value"
//	field:(term1 term2)
//	(expr1 AND expr2)
//	(expr1 OR expr2)
//	+field:value
//	-field:value
//	-field:*
//
// SEALED INTERFACES:
//
// Expr is a sealed interface using the marker method pattern. Only Field,
// And, Or, Require and Prohibit implement it, so renderers and visitors can
// switch exhaustively:
//
//	switch e := expr.(type) {
//	case lucene.Field:
//	case lucene.And:
//	case lucene.Or:
//	case lucene.Require:
//	case lucene.Prohibit:
//	}
//
// ESCAPING:
//
// Literal text has reserved grammar characters escaped with a backslash.
// Phrases are quoted with inner quotes and backslashes escaped. Wildcard
// markers and boost/fuzzy suffixes are appended after escaping, so user text
// can never introduce grammar of its own.
//
// The zero-term Field renders as "-name:*", meaning the field must be absent
// or empty. This matches the service's established convention and is not an
// error.
package lucene
