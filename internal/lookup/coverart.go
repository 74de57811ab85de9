package lookup

import (
	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/querymap"
	"github.com/roach88/brainz/internal/rules"
)

// CoverArtRequest fetches the Cover Art Archive listing of a release or
// release group. It carries no parameters.
type CoverArtRequest struct {
	entity brainz.Entity
	mbid   string
}

// CoverArt returns a listing request for entity, which must be a release
// or a release group.
func CoverArt(entity brainz.Entity, mbid string) *CoverArtRequest {
	return &CoverArtRequest{entity: entity, mbid: mbid}
}

// Entity returns the entity whose artwork is listed.
func (r *CoverArtRequest) Entity() brainz.Entity { return r.entity }

// Path returns the archive path, e.g. "release/<mbid>".
func (r *CoverArtRequest) Path() string {
	return string(r.entity) + "/" + r.mbid
}

// Finalize validates the entity and MBID.
func (r *CoverArtRequest) Finalize() (querymap.Map, error) {
	switch r.entity {
	case brainz.EntityRelease, brainz.EntityReleaseGroup:
	default:
		ve := rules.NewValidationError(rules.ErrCodeUnsupportedEntity, r.entity, string(r.entity),
			string(brainz.EntityRelease), string(brainz.EntityReleaseGroup))
		ve.Message = "cover art is listed for releases and release groups only"
		return querymap.Map{}, ve
	}
	if !brainz.ValidMbid(r.mbid) {
		return querymap.Map{}, rules.NewValidationError(rules.ErrCodeInvalidMbid, r.entity, r.mbid)
	}
	return querymap.NewBuilder().Build()
}
