package browse

import "github.com/roach88/brainz/internal/brainz"

// Target is the entity a browse is anchored on. The set of concrete
// targets is closed; each entity's browse accepts only the targets that
// implement its marker interface.
type Target interface {
	// Key is the request parameter naming the target entity.
	Key() string
	// ID is the target's MBID.
	ID() string
	target()
}

// ReleaseTarget is a target accepted by a release browse.
type ReleaseTarget interface {
	Target
	releaseTarget()
}

// ArtistTarget is a target accepted by an artist browse.
type ArtistTarget interface {
	Target
	artistTarget()
}

// SeriesTarget is a target accepted by a series browse.
type SeriesTarget interface {
	Target
	seriesTarget()
}

type ByArea brainz.AreaMbid

func (ByArea) Key() string    { return "area" }
func (t ByArea) ID() string   { return string(t) }
func (ByArea) target()        {}
func (ByArea) releaseTarget() {}
func (ByArea) artistTarget()  {}

type ByArtist brainz.ArtistMbid

func (ByArtist) Key() string    { return "artist" }
func (t ByArtist) ID() string   { return string(t) }
func (ByArtist) target()        {}
func (ByArtist) releaseTarget() {}

type ByCollection brainz.CollectionMbid

func (ByCollection) Key() string    { return "collection" }
func (t ByCollection) ID() string   { return string(t) }
func (ByCollection) target()        {}
func (ByCollection) releaseTarget() {}
func (ByCollection) artistTarget()  {}
func (ByCollection) seriesTarget()  {}

type ByLabel brainz.LabelMbid

func (ByLabel) Key() string    { return "label" }
func (t ByLabel) ID() string   { return string(t) }
func (ByLabel) target()        {}
func (ByLabel) releaseTarget() {}

type ByRecording brainz.RecordingMbid

func (ByRecording) Key() string    { return "recording" }
func (t ByRecording) ID() string   { return string(t) }
func (ByRecording) target()        {}
func (ByRecording) releaseTarget() {}
func (ByRecording) artistTarget()  {}

type ByRelease brainz.ReleaseMbid

func (ByRelease) Key() string   { return "release" }
func (t ByRelease) ID() string  { return string(t) }
func (ByRelease) target()       {}
func (ByRelease) artistTarget() {}

type ByReleaseGroup brainz.ReleaseGroupMbid

func (ByReleaseGroup) Key() string    { return "release-group" }
func (t ByReleaseGroup) ID() string   { return string(t) }
func (ByReleaseGroup) target()        {}
func (ByReleaseGroup) releaseTarget() {}
func (ByReleaseGroup) artistTarget()  {}

type ByTrack brainz.TrackMbid

func (ByTrack) Key() string    { return "track" }
func (t ByTrack) ID() string   { return string(t) }
func (ByTrack) target()        {}
func (ByTrack) releaseTarget() {}

// ByTrackArtist matches releases with a track credited to the artist.
type ByTrackArtist brainz.ArtistMbid

func (ByTrackArtist) Key() string    { return "track_artist" }
func (t ByTrackArtist) ID() string   { return string(t) }
func (ByTrackArtist) target()        {}
func (ByTrackArtist) releaseTarget() {}

type ByWork brainz.WorkMbid

func (ByWork) Key() string   { return "work" }
func (t ByWork) ID() string  { return string(t) }
func (ByWork) target()       {}
func (ByWork) artistTarget() {}
