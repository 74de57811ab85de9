package brainz

import "strings"

// Include asks the service to embed related data in a lookup or browse
// response ("inc" parameter).
type Include string

// Subqueries.
const (
	IncArtists       Include = "artists"
	IncCollections   Include = "collections"
	IncLabels        Include = "labels"
	IncRecordings    Include = "recordings"
	IncReleases      Include = "releases"
	IncReleaseGroups Include = "release-groups"
	IncWorks         Include = "works"
	IncDiscIDs       Include = "discids"
	IncMedia         Include = "media"
	IncISRCs         Include = "isrcs"
	IncArtistCredits Include = "artist-credits"
	IncVarious       Include = "various-artists"
)

// Miscellaneous includes.
const (
	IncAliases     Include = "aliases"
	IncAnnotation  Include = "annotation"
	IncTags        Include = "tags"
	IncRatings     Include = "ratings"
	IncGenres      Include = "genres"
	IncUserTags    Include = "user-tags"
	IncUserRatings Include = "user-ratings"
	IncUserGenres  Include = "user-genres"
)

// Relationship includes.
const (
	IncAreaRels         Include = "area-rels"
	IncArtistRels       Include = "artist-rels"
	IncEventRels        Include = "event-rels"
	IncInstrumentRels   Include = "instrument-rels"
	IncLabelRels        Include = "label-rels"
	IncPlaceRels        Include = "place-rels"
	IncRecordingRels    Include = "recording-rels"
	IncReleaseRels      Include = "release-rels"
	IncReleaseGroupRels Include = "release-group-rels"
	IncSeriesRels       Include = "series-rels"
	IncURLRels          Include = "url-rels"
	IncWorkRels         Include = "work-rels"
)

// ReleaseStatus filters releases by status ("status" parameter).
type ReleaseStatus string

const (
	StatusOfficial      ReleaseStatus = "official"
	StatusPromotion     ReleaseStatus = "promotion"
	StatusBootleg       ReleaseStatus = "bootleg"
	StatusPseudoRelease ReleaseStatus = "pseudo-release"
)

// ReleaseType filters releases and release groups by type ("type"
// parameter).
type ReleaseType string

const (
	TypeNat         ReleaseType = "nat"
	TypeAlbum       ReleaseType = "album"
	TypeSingle      ReleaseType = "single"
	TypeEP          ReleaseType = "ep"
	TypeCompilation ReleaseType = "compilation"
	TypeSoundtrack  ReleaseType = "soundtrack"
	TypeSpokenWord  ReleaseType = "spokenword"
	TypeInterview   ReleaseType = "interview"
	TypeAudiobook   ReleaseType = "audiobook"
	TypeLive        ReleaseType = "live"
	TypeRemix       ReleaseType = "remix"
	TypeOther       ReleaseType = "other"
)

var (
	releaseStatuses = []ReleaseStatus{
		StatusOfficial, StatusPromotion, StatusBootleg, StatusPseudoRelease,
	}
	releaseTypes = []ReleaseType{
		TypeNat, TypeAlbum, TypeSingle, TypeEP, TypeCompilation, TypeSoundtrack,
		TypeSpokenWord, TypeInterview, TypeAudiobook, TypeLive, TypeRemix, TypeOther,
	}
)

// ValidStatus reports whether s names a known release status.
func ValidStatus(s ReleaseStatus) bool {
	for _, v := range releaseStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidType reports whether t names a known release type.
func ValidType(t ReleaseType) bool {
	for _, v := range releaseTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Modifiers is the include/status/type request state shared by lookup,
// browse and search builders. Slices keep insertion order and are
// deduplicated on add.
type Modifiers struct {
	Includes []Include
	Statuses []ReleaseStatus
	Types    []ReleaseType
}

// AddIncludes appends includes not already present.
func (m *Modifiers) AddIncludes(incs ...Include) {
	m.Includes = appendUnique(m.Includes, incs...)
}

// AddStatuses appends statuses not already present.
func (m *Modifiers) AddStatuses(statuses ...ReleaseStatus) {
	m.Statuses = appendUnique(m.Statuses, statuses...)
}

// AddTypes appends types not already present.
func (m *Modifiers) AddTypes(types ...ReleaseType) {
	m.Types = appendUnique(m.Types, types...)
}

// HasInclude reports whether inc is present.
func (m Modifiers) HasInclude(inc Include) bool {
	for _, v := range m.Includes {
		if v == inc {
			return true
		}
	}
	return false
}

// Empty reports whether no modifier is set.
func (m Modifiers) Empty() bool {
	return len(m.Includes) == 0 && len(m.Statuses) == 0 && len(m.Types) == 0
}

// Clone returns a deep copy.
func (m Modifiers) Clone() Modifiers {
	return Modifiers{
		Includes: append([]Include(nil), m.Includes...),
		Statuses: append([]ReleaseStatus(nil), m.Statuses...),
		Types:    append([]ReleaseType(nil), m.Types...),
	}
}

// IncludeParam joins includes with "+" as the "inc" parameter expects.
func (m Modifiers) IncludeParam() string {
	return join(m.Includes, "+")
}

// StatusParam joins statuses with "|".
func (m Modifiers) StatusParam() string {
	return join(m.Statuses, "|")
}

// TypeParam joins types with "|".
func (m Modifiers) TypeParam() string {
	return join(m.Types, "|")
}

func appendUnique[T comparable](dst []T, vals ...T) []T {
	for _, v := range vals {
		dup := false
		for _, have := range dst {
			if have == v {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, v)
		}
	}
	return dst
}

func join[T ~string](vals []T, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, sep)
}
