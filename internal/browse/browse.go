// Package browse builds requests listing the entities linked to another
// entity, e.g. the releases of a label.
package browse

import (
	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/querymap"
	"github.com/roach88/brainz/internal/rules"
)

// Request browses entity on target. The target parameter comes first,
// followed by modifiers and paging.
type Request[T Target] struct {
	entity brainz.Entity
	target T
	tables *rules.Tables
	mods   brainz.Modifiers
}

type (
	ReleaseBrowse = Request[ReleaseTarget]
	ArtistBrowse  = Request[ArtistTarget]
	SeriesBrowse  = Request[SeriesTarget]
)

// Releases browses releases linked to on.
func Releases(tables *rules.Tables, on ReleaseTarget) *ReleaseBrowse {
	return &ReleaseBrowse{entity: brainz.EntityRelease, target: on, tables: tables}
}

// Artists browses artists linked to on.
func Artists(tables *rules.Tables, on ArtistTarget) *ArtistBrowse {
	return &ArtistBrowse{entity: brainz.EntityArtist, target: on, tables: tables}
}

// Series browses series linked to on.
func Series(tables *rules.Tables, on SeriesTarget) *SeriesBrowse {
	return &SeriesBrowse{entity: brainz.EntitySeries, target: on, tables: tables}
}

// Include adds include modifiers.
func (r *Request[T]) Include(incs ...brainz.Include) *Request[T] {
	r.mods.AddIncludes(incs...)
	return r
}

// Status adds release status filters.
func (r *Request[T]) Status(statuses ...brainz.ReleaseStatus) *Request[T] {
	r.mods.AddStatuses(statuses...)
	return r
}

// Type adds release type filters.
func (r *Request[T]) Type(types ...brainz.ReleaseType) *Request[T] {
	r.mods.AddTypes(types...)
	return r
}

// Entity returns the browsed entity.
func (r *Request[T]) Entity() brainz.Entity { return r.entity }

// Path returns the ws/2 path, which is the browsed entity name.
func (r *Request[T]) Path() string { return string(r.entity) }

// Finalize validates the request and returns its parameters.
func (r *Request[T]) Finalize(opts ...querymap.Option) (querymap.Map, error) {
	if any(r.target) == nil {
		return querymap.Map{}, rules.Invalid(rules.ErrCodeInvalidMbid, r.entity, "browse target is required")
	}
	if !brainz.ValidMbid(r.target.ID()) {
		return querymap.Map{}, rules.NewValidationError(rules.ErrCodeInvalidMbid, r.entity, r.target.ID())
	}
	if err := r.tables.Validate(rules.OpBrowse, r.entity, r.mods); err != nil {
		return querymap.Map{}, err
	}
	return querymap.NewBuilder().
		Set(r.target.Key(), r.target.ID()).
		Modifiers(r.mods).
		Build(opts...)
}
