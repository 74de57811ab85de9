package brainz

import (
	"strings"

	"github.com/google/uuid"
)

// ValidMbid reports whether s has the canonical 8-4-4-4-12 lowercase hex
// form of a MusicBrainz identifier. Braced, URN, undashed and uppercase
// UUID forms are rejected.
func ValidMbid(s string) bool {
	if len(s) != 36 || strings.ContainsAny(s, "ABCDEF") {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Identifier types, one per entity. The zero value is invalid.
type (
	AreaMbid         string
	ArtistMbid       string
	CollectionMbid   string
	EventMbid        string
	InstrumentMbid   string
	LabelMbid        string
	PlaceMbid        string
	RecordingMbid    string
	ReleaseMbid      string
	ReleaseGroupMbid string
	SeriesMbid       string
	TrackMbid        string
	WorkMbid         string
)

func (m AreaMbid) Valid() bool         { return ValidMbid(string(m)) }
func (m ArtistMbid) Valid() bool       { return ValidMbid(string(m)) }
func (m CollectionMbid) Valid() bool   { return ValidMbid(string(m)) }
func (m EventMbid) Valid() bool        { return ValidMbid(string(m)) }
func (m InstrumentMbid) Valid() bool   { return ValidMbid(string(m)) }
func (m LabelMbid) Valid() bool        { return ValidMbid(string(m)) }
func (m PlaceMbid) Valid() bool        { return ValidMbid(string(m)) }
func (m RecordingMbid) Valid() bool    { return ValidMbid(string(m)) }
func (m ReleaseMbid) Valid() bool      { return ValidMbid(string(m)) }
func (m ReleaseGroupMbid) Valid() bool { return ValidMbid(string(m)) }
func (m SeriesMbid) Valid() bool       { return ValidMbid(string(m)) }
func (m TrackMbid) Valid() bool        { return ValidMbid(string(m)) }
func (m WorkMbid) Valid() bool         { return ValidMbid(string(m)) }

// Mbid is implemented by every identifier type.
type Mbid interface {
	~string
	Valid() bool
}
