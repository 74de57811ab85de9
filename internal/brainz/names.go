package brainz

import "strings"

// Name and title types used by the convenience finders. Each wraps the
// trimmed user-facing string.
type (
	ArtistName     string
	AlbumName      string
	RecordingTitle string
	TrackTitle     string
	ComposerName   string
	LabelName      string
)

const (
	UnknownArtist    ArtistName     = "Unknown"
	UnknownAlbum     AlbumName      = "Unknown"
	UnknownRecording RecordingTitle = "Unknown"
	UnknownTrack     TrackTitle     = "Unknown"
	UnknownComposer  ComposerName   = "Unknown"
	UnknownLabel     LabelName      = "Unknown"
)

// ToArtistName trims s. A blank string yields UnknownArtist.
func ToArtistName(s string) ArtistName {
	return orUnknown(s, UnknownArtist)
}

// ToAlbumName trims s. A blank string yields UnknownAlbum.
func ToAlbumName(s string) AlbumName {
	return orUnknown(s, UnknownAlbum)
}

// ToRecordingTitle trims s. A blank string yields UnknownRecording.
func ToRecordingTitle(s string) RecordingTitle {
	return orUnknown(s, UnknownRecording)
}

// ToTrackTitle trims s. A blank string yields UnknownTrack.
func ToTrackTitle(s string) TrackTitle {
	return orUnknown(s, UnknownTrack)
}

// ToComposerName trims s. A blank string yields UnknownComposer.
func ToComposerName(s string) ComposerName {
	return orUnknown(s, UnknownComposer)
}

// ToLabelName trims s. A blank string yields UnknownLabel.
func ToLabelName(s string) LabelName {
	return orUnknown(s, UnknownLabel)
}

func orUnknown[N ~string](s string, unknown N) N {
	s = strings.TrimSpace(s)
	if s == "" {
		return unknown
	}
	return N(s)
}
