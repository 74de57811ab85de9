package brainz

import "encoding/json"

// Response models decoded from ws/2 JSON. Only the commonly used members are
// modelled; unknown members are ignored by the decoder.

// LifeSpan is the begin/end date pair shared by several entities.
type LifeSpan struct {
	Begin string `json:"begin,omitempty"`
	End   string `json:"end,omitempty"`
	Ended bool   `json:"ended,omitempty"`
}

// Alias is an alternate name of an entity.
type Alias struct {
	Name     string `json:"name"`
	SortName string `json:"sort-name,omitempty"`
	Locale   string `json:"locale,omitempty"`
	Type     string `json:"type,omitempty"`
	Primary  bool   `json:"primary,omitempty"`
}

// Tag is a folksonomy tag with its vote count.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
	Score int    `json:"score,omitempty"`
}

// Area is a geographic region.
type Area struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SortName string `json:"sort-name,omitempty"`
	Type     string `json:"type,omitempty"`
}

// Artist is a person, group or other credited entity.
type Artist struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	SortName       string   `json:"sort-name,omitempty"`
	Disambiguation string   `json:"disambiguation,omitempty"`
	Type           string   `json:"type,omitempty"`
	Gender         string   `json:"gender,omitempty"`
	Country        string   `json:"country,omitempty"`
	Area           *Area    `json:"area,omitempty"`
	LifeSpan       LifeSpan `json:"life-span,omitzero"`
	Aliases        []Alias  `json:"aliases,omitempty"`
	Tags           []Tag    `json:"tags,omitempty"`
	Score          int      `json:"score,omitempty"`
}

// ArtistCredit is one name in a credited artist phrase.
type ArtistCredit struct {
	Name       string `json:"name"`
	JoinPhrase string `json:"joinphrase,omitempty"`
	Artist     Artist `json:"artist"`
}

// LabelInfo ties a release to a label and catalog number.
type LabelInfo struct {
	CatalogNumber string `json:"catalog-number,omitempty"`
	Label         *Label `json:"label,omitempty"`
}

// Medium is one disc or other physical unit of a release.
type Medium struct {
	Position   int     `json:"position"`
	Format     string  `json:"format,omitempty"`
	Title      string  `json:"title,omitempty"`
	TrackCount int     `json:"track-count"`
	Tracks     []Track `json:"tracks,omitempty"`
}

// Track is a recording's appearance on a medium.
type Track struct {
	ID        string     `json:"id"`
	Number    string     `json:"number,omitempty"`
	Position  int        `json:"position,omitempty"`
	Title     string     `json:"title"`
	Length    int        `json:"length,omitempty"`
	Recording *Recording `json:"recording,omitempty"`
}

// Release is a unique issue of a release group.
type Release struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Status         string         `json:"status,omitempty"`
	Disambiguation string         `json:"disambiguation,omitempty"`
	Date           string         `json:"date,omitempty"`
	Country        string         `json:"country,omitempty"`
	Barcode        string         `json:"barcode,omitempty"`
	ArtistCredit   []ArtistCredit `json:"artist-credit,omitempty"`
	ReleaseGroup   *ReleaseGroup  `json:"release-group,omitempty"`
	LabelInfo      []LabelInfo    `json:"label-info,omitempty"`
	Media          []Medium       `json:"media,omitempty"`
	Tags           []Tag          `json:"tags,omitempty"`
	Score          int            `json:"score,omitempty"`
}

// ReleaseGroup groups the releases of one logical album, single or EP.
type ReleaseGroup struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	PrimaryType      string         `json:"primary-type,omitempty"`
	SecondaryTypes   []string       `json:"secondary-types,omitempty"`
	FirstReleaseDate string         `json:"first-release-date,omitempty"`
	Disambiguation   string         `json:"disambiguation,omitempty"`
	ArtistCredit     []ArtistCredit `json:"artist-credit,omitempty"`
	Releases         []Release      `json:"releases,omitempty"`
	Tags             []Tag          `json:"tags,omitempty"`
	Score            int            `json:"score,omitempty"`
}

// Recording is a distinct audio performance.
type Recording struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Length         int            `json:"length,omitempty"`
	Video          bool           `json:"video,omitempty"`
	Disambiguation string         `json:"disambiguation,omitempty"`
	ArtistCredit   []ArtistCredit `json:"artist-credit,omitempty"`
	Releases       []Release      `json:"releases,omitempty"`
	ISRCs          []string       `json:"isrcs,omitempty"`
	Tags           []Tag          `json:"tags,omitempty"`
	Score          int            `json:"score,omitempty"`
}

// Label is an imprint or record company.
type Label struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SortName       string    `json:"sort-name,omitempty"`
	Type           string    `json:"type,omitempty"`
	LabelCode      int       `json:"label-code,omitempty"`
	Country        string    `json:"country,omitempty"`
	Disambiguation string    `json:"disambiguation,omitempty"`
	LifeSpan       LifeSpan  `json:"life-span,omitzero"`
	Releases       []Release `json:"releases,omitempty"`
	Score          int       `json:"score,omitempty"`
}

// Work is a distinct intellectual or artistic creation.
type Work struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Type           string   `json:"type,omitempty"`
	Language       string   `json:"language,omitempty"`
	ISWCs          []string `json:"iswcs,omitempty"`
	Disambiguation string   `json:"disambiguation,omitempty"`
	Score          int      `json:"score,omitempty"`
}

// Event is an organised happening such as a concert or festival.
type Event struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type,omitempty"`
	Time           string   `json:"time,omitempty"`
	Cancelled      bool     `json:"cancelled,omitempty"`
	Disambiguation string   `json:"disambiguation,omitempty"`
	LifeSpan       LifeSpan `json:"life-span,omitzero"`
}

// Series is an ordered sequence of entities.
type Series struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type,omitempty"`
	Disambiguation string `json:"disambiguation,omitempty"`
}

// Search list envelopes. Browse responses name their counters after the
// entity and are modelled by the Browse* types below.

type ArtistList struct {
	Created string   `json:"created,omitempty"`
	Count   int      `json:"count"`
	Offset  int      `json:"offset"`
	Artists []Artist `json:"artists"`
}

type ReleaseList struct {
	Created  string    `json:"created,omitempty"`
	Count    int       `json:"count"`
	Offset   int       `json:"offset"`
	Releases []Release `json:"releases"`
}

type ReleaseGroupList struct {
	Created       string         `json:"created,omitempty"`
	Count         int            `json:"count"`
	Offset        int            `json:"offset"`
	ReleaseGroups []ReleaseGroup `json:"release-groups"`
}

type RecordingList struct {
	Created    string      `json:"created,omitempty"`
	Count      int         `json:"count"`
	Offset     int         `json:"offset"`
	Recordings []Recording `json:"recordings"`
}

type LabelList struct {
	Created string  `json:"created,omitempty"`
	Count   int     `json:"count"`
	Offset  int     `json:"offset"`
	Labels  []Label `json:"labels"`
}

type WorkList struct {
	Created string `json:"created,omitempty"`
	Count   int    `json:"count"`
	Offset  int    `json:"offset"`
	Works   []Work `json:"works"`
}

type TagList struct {
	Created string `json:"created,omitempty"`
	Count   int    `json:"count"`
	Offset  int    `json:"offset"`
	Tags    []Tag  `json:"tags"`
}

// BrowseReleaseList is the browse response for releases.
type BrowseReleaseList struct {
	ReleaseCount  int       `json:"release-count"`
	ReleaseOffset int       `json:"release-offset"`
	Releases      []Release `json:"releases"`
}

// BrowseArtistList is the browse response for artists.
type BrowseArtistList struct {
	ArtistCount  int      `json:"artist-count"`
	ArtistOffset int      `json:"artist-offset"`
	Artists      []Artist `json:"artists"`
}

// SeriesList is the browse response for series.
type SeriesList struct {
	SeriesCount  int      `json:"series-count"`
	SeriesOffset int      `json:"series-offset"`
	Series       []Series `json:"series"`
}

// CoverArtRelease is the Cover Art Archive listing for a release. Release
// is the MusicBrainz URL of the release the images belong to.
type CoverArtRelease struct {
	Images  []CoverArtImage `json:"images"`
	Release string          `json:"release"`
}

// CoverArtImage is one archived image.
type CoverArtImage struct {
	ID         json.Number        `json:"id"`
	Image      string             `json:"image"`
	Thumbnails CoverArtThumbnails `json:"thumbnails"`
	Types      []string           `json:"types,omitempty"`
	Front      bool               `json:"front"`
	Back       bool               `json:"back"`
	Approved   bool               `json:"approved"`
	Comment    string             `json:"comment,omitempty"`
	Edit       int                `json:"edit,omitempty"`
}

// FrontImage returns the first image flagged front.
func (r CoverArtRelease) FrontImage() (CoverArtImage, bool) {
	for _, img := range r.Images {
		if img.Front {
			return img, true
		}
	}
	return CoverArtImage{}, false
}

// CoverArtThumbnails holds thumbnail URLs keyed by size.
type CoverArtThumbnails struct {
	Small  string `json:"small,omitempty"`
	Large  string `json:"large,omitempty"`
	Px250  string `json:"250,omitempty"`
	Px500  string `json:"500,omitempty"`
	Px1200 string `json:"1200,omitempty"`
}
