// Package brainz defines the MusicBrainz vocabulary shared by the query
// builders and the service: entity kinds, the per-entity search field sets,
// request modifiers (includes, release status, release type), typed
// identifiers and names, and the response models decoded from the service.
//
// Field sets are distinct string types, one per entity. A search builder
// parameterized by ReleaseField cannot accept an ArtistField, so the
// restriction of which fields an entity supports is enforced by the compiler
// rather than checked at runtime. For callers holding field names as plain
// strings (CLI flags, config), FieldSet exposes the same sets as data.
//
// Identifier and name types are single-field wrappers over string; equality
// is value equality of the wrapped string.
package brainz
