package search

import (
	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/rules"
)

// ArtistSearch searches artists.
type ArtistSearch struct{ *Builder[brainz.ArtistField] }

func NewArtistSearch(tables *rules.Tables) *ArtistSearch {
	return &ArtistSearch{New[brainz.ArtistField](tables)}
}

// Artist matches the artist name as a phrase.
func (s *ArtistSearch) Artist(name brainz.ArtistName) *ArtistSearch {
	s.Phrase(brainz.ArtistFieldArtist, string(name))
	return s
}

// Country matches the ISO 3166-1 country code.
func (s *ArtistSearch) Country(code string) *ArtistSearch {
	s.Term(brainz.ArtistFieldCountry, code)
	return s
}

// Tag matches an artist tag.
func (s *ArtistSearch) Tag(tag string) *ArtistSearch {
	s.Phrase(brainz.ArtistFieldTag, tag)
	return s
}

// ReleaseSearch searches releases.
type ReleaseSearch struct{ *Builder[brainz.ReleaseField] }

func NewReleaseSearch(tables *rules.Tables) *ReleaseSearch {
	return &ReleaseSearch{New[brainz.ReleaseField](tables)}
}

// Artist matches the combined artist credit as a phrase.
func (s *ReleaseSearch) Artist(name brainz.ArtistName) *ReleaseSearch {
	s.Phrase(brainz.ReleaseFieldArtist, string(name))
	return s
}

// Release matches the release title as a phrase.
func (s *ReleaseSearch) Release(name brainz.AlbumName) *ReleaseSearch {
	s.Phrase(brainz.ReleaseFieldRelease, string(name))
	return s
}

// Label matches the label name as a phrase.
func (s *ReleaseSearch) Label(name brainz.LabelName) *ReleaseSearch {
	s.Phrase(brainz.ReleaseFieldLabel, string(name))
	return s
}

// Barcode matches the release barcode.
func (s *ReleaseSearch) Barcode(code string) *ReleaseSearch {
	s.Term(brainz.ReleaseFieldBarcode, code)
	return s
}

// ReleaseGroupSearch searches release groups.
type ReleaseGroupSearch struct {
	*Builder[brainz.ReleaseGroupField]
}

func NewReleaseGroupSearch(tables *rules.Tables) *ReleaseGroupSearch {
	return &ReleaseGroupSearch{New[brainz.ReleaseGroupField](tables)}
}

// Artist matches the artist credit as a phrase.
func (s *ReleaseGroupSearch) Artist(name brainz.ArtistName) *ReleaseGroupSearch {
	s.Phrase(brainz.ReleaseGroupFieldArtist, string(name))
	return s
}

// ReleaseGroup matches the release group title as a phrase.
func (s *ReleaseGroupSearch) ReleaseGroup(name brainz.AlbumName) *ReleaseGroupSearch {
	s.Phrase(brainz.ReleaseGroupFieldReleaseGroup, string(name))
	return s
}

// PrimaryType matches the primary type, e.g. album.
func (s *ReleaseGroupSearch) PrimaryType(t brainz.ReleaseType) *ReleaseGroupSearch {
	s.Term(brainz.ReleaseGroupFieldPrimaryType, string(t))
	return s
}

// RecordingSearch searches recordings.
type RecordingSearch struct {
	*Builder[brainz.RecordingField]
}

func NewRecordingSearch(tables *rules.Tables) *RecordingSearch {
	return &RecordingSearch{New[brainz.RecordingField](tables)}
}

// Recording matches the recording title as a phrase.
func (s *RecordingSearch) Recording(title brainz.RecordingTitle) *RecordingSearch {
	s.Phrase(brainz.RecordingFieldRecording, string(title))
	return s
}

// Artist matches the artist credit as a phrase.
func (s *RecordingSearch) Artist(name brainz.ArtistName) *RecordingSearch {
	s.Phrase(brainz.RecordingFieldArtist, string(name))
	return s
}

// Release matches the title of a release the recording appears on.
func (s *RecordingSearch) Release(name brainz.AlbumName) *RecordingSearch {
	s.Phrase(brainz.RecordingFieldRelease, string(name))
	return s
}

// ISRC matches an ISRC of the recording.
func (s *RecordingSearch) ISRC(code string) *RecordingSearch {
	s.Term(brainz.RecordingFieldISRC, code)
	return s
}

// LabelSearch searches labels.
type LabelSearch struct{ *Builder[brainz.LabelField] }

func NewLabelSearch(tables *rules.Tables) *LabelSearch {
	return &LabelSearch{New[brainz.LabelField](tables)}
}

// Label matches the label name as a phrase.
func (s *LabelSearch) Label(name brainz.LabelName) *LabelSearch {
	s.Phrase(brainz.LabelFieldLabel, string(name))
	return s
}

// WorkSearch searches works.
type WorkSearch struct{ *Builder[brainz.WorkField] }

func NewWorkSearch(tables *rules.Tables) *WorkSearch {
	return &WorkSearch{New[brainz.WorkField](tables)}
}

// Work matches the work title as a phrase.
func (s *WorkSearch) Work(title string) *WorkSearch {
	s.Phrase(brainz.WorkFieldWork, title)
	return s
}

// Composer matches a credited artist as a phrase.
func (s *WorkSearch) Composer(name brainz.ComposerName) *WorkSearch {
	s.Phrase(brainz.WorkFieldArtist, string(name))
	return s
}

// TagSearch searches tags.
type TagSearch struct{ *Builder[brainz.TagField] }

func NewTagSearch(tables *rules.Tables) *TagSearch {
	return &TagSearch{New[brainz.TagField](tables)}
}

// Tag matches the tag name.
func (s *TagSearch) Tag(name string) *TagSearch {
	s.Phrase(brainz.TagFieldTag, name)
	return s
}

// InstrumentSearch searches instruments.
type InstrumentSearch struct {
	*Builder[brainz.InstrumentField]
}

func NewInstrumentSearch(tables *rules.Tables) *InstrumentSearch {
	return &InstrumentSearch{New[brainz.InstrumentField](tables)}
}

// Instrument matches the instrument name as a phrase.
func (s *InstrumentSearch) Instrument(name string) *InstrumentSearch {
	s.Phrase(brainz.InstrumentFieldInstrument, name)
	return s
}

// AnnotationSearch searches annotations.
type AnnotationSearch struct {
	*Builder[brainz.AnnotationField]
}

func NewAnnotationSearch(tables *rules.Tables) *AnnotationSearch {
	return &AnnotationSearch{New[brainz.AnnotationField](tables)}
}

// Text matches words of the annotation body.
func (s *AnnotationSearch) Text(words string) *AnnotationSearch {
	s.Phrase(brainz.AnnotationFieldText, words)
	return s
}
