// Package lookup builds requests that fetch one entity by MBID.
package lookup

import (
	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/querymap"
	"github.com/roach88/brainz/internal/rules"
)

// Request is a lookup of one entity. Includes, statuses and types are
// checked against the lookup rule table of the entity at Finalize.
type Request[M brainz.Mbid] struct {
	entity brainz.Entity
	mbid   M
	tables *rules.Tables
	mods   brainz.Modifiers
}

func newRequest[M brainz.Mbid](entity brainz.Entity, tables *rules.Tables, mbid M) *Request[M] {
	return &Request[M]{entity: entity, mbid: mbid, tables: tables}
}

// Include adds include modifiers.
func (r *Request[M]) Include(incs ...brainz.Include) *Request[M] {
	r.mods.AddIncludes(incs...)
	return r
}

// Status adds release status filters.
func (r *Request[M]) Status(statuses ...brainz.ReleaseStatus) *Request[M] {
	r.mods.AddStatuses(statuses...)
	return r
}

// Type adds release type filters.
func (r *Request[M]) Type(types ...brainz.ReleaseType) *Request[M] {
	r.mods.AddTypes(types...)
	return r
}

// Entity returns the entity looked up.
func (r *Request[M]) Entity() brainz.Entity { return r.entity }

// Mbid returns the identifier looked up.
func (r *Request[M]) Mbid() M { return r.mbid }

// Path returns the ws/2 path, e.g. "artist/<mbid>".
func (r *Request[M]) Path() string {
	return string(r.entity) + "/" + string(r.mbid)
}

// Finalize validates the request and returns its parameters.
func (r *Request[M]) Finalize() (querymap.Map, error) {
	if !r.mbid.Valid() {
		return querymap.Map{}, rules.NewValidationError(rules.ErrCodeInvalidMbid, r.entity, string(r.mbid))
	}
	if err := r.tables.Validate(rules.OpLookup, r.entity, r.mods); err != nil {
		return querymap.Map{}, err
	}
	return querymap.NewBuilder().Modifiers(r.mods).Build()
}

type (
	ArtistLookup       = Request[brainz.ArtistMbid]
	ReleaseLookup      = Request[brainz.ReleaseMbid]
	ReleaseGroupLookup = Request[brainz.ReleaseGroupMbid]
	LabelLookup        = Request[brainz.LabelMbid]
	RecordingLookup    = Request[brainz.RecordingMbid]
	WorkLookup         = Request[brainz.WorkMbid]
)

func Artist(tables *rules.Tables, mbid brainz.ArtistMbid) *ArtistLookup {
	return newRequest(brainz.EntityArtist, tables, mbid)
}

func Release(tables *rules.Tables, mbid brainz.ReleaseMbid) *ReleaseLookup {
	return newRequest(brainz.EntityRelease, tables, mbid)
}

func ReleaseGroup(tables *rules.Tables, mbid brainz.ReleaseGroupMbid) *ReleaseGroupLookup {
	return newRequest(brainz.EntityReleaseGroup, tables, mbid)
}

func Label(tables *rules.Tables, mbid brainz.LabelMbid) *LabelLookup {
	return newRequest(brainz.EntityLabel, tables, mbid)
}

func Recording(tables *rules.Tables, mbid brainz.RecordingMbid) *RecordingLookup {
	return newRequest(brainz.EntityRecording, tables, mbid)
}

func Work(tables *rules.Tables, mbid brainz.WorkMbid) *WorkLookup {
	return newRequest(brainz.EntityWork, tables, mbid)
}

// EventLookup accepts includes only; events carry no releases to filter.
type EventLookup struct {
	req *Request[brainz.EventMbid]
}

func Event(tables *rules.Tables, mbid brainz.EventMbid) *EventLookup {
	return &EventLookup{req: newRequest(brainz.EntityEvent, tables, mbid)}
}

// Include adds include modifiers.
func (e *EventLookup) Include(incs ...brainz.Include) *EventLookup {
	e.req.Include(incs...)
	return e
}

// Path returns the ws/2 path.
func (e *EventLookup) Path() string { return e.req.Path() }

// Finalize validates the request and returns its parameters.
func (e *EventLookup) Finalize() (querymap.Map, error) { return e.req.Finalize() }
