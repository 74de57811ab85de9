package brainz

import "slices"

// SearchField is the constraint satisfied by every per-entity field type.
// The empty value of each type is the entity's default (implicit) field.
type SearchField interface {
	~string
	Entity() Entity
}

// ArtistField is a searchable artist field.
type ArtistField string

// Entity implements SearchField.
func (ArtistField) Entity() Entity { return EntityArtist }

const (
	ArtistFieldDefault      ArtistField = ""
	ArtistFieldAlias        ArtistField = "alias"
	ArtistFieldPrimaryAlias ArtistField = "primary_alias"
	ArtistFieldArea         ArtistField = "area"
	ArtistFieldID           ArtistField = "arid"
	ArtistFieldArtist       ArtistField = "artist"
	ArtistFieldAccent       ArtistField = "artistaccent"
	ArtistFieldBegin        ArtistField = "begin"
	ArtistFieldBeginArea    ArtistField = "beginarea"
	ArtistFieldComment      ArtistField = "comment"
	ArtistFieldCountry      ArtistField = "country"
	ArtistFieldEnd          ArtistField = "end"
	ArtistFieldEndArea      ArtistField = "endarea"
	ArtistFieldEnded        ArtistField = "ended"
	ArtistFieldGender       ArtistField = "gender"
	ArtistFieldIPI          ArtistField = "ipi"
	ArtistFieldISNI         ArtistField = "isni"
	ArtistFieldSortName     ArtistField = "sortname"
	ArtistFieldTag          ArtistField = "tag"
	ArtistFieldType         ArtistField = "type"
)

// ReleaseField is a searchable release field.
type ReleaseField string

// Entity implements SearchField.
func (ReleaseField) Entity() Entity { return EntityRelease }

const (
	ReleaseFieldDefault           ReleaseField = ""
	ReleaseFieldArtistID          ReleaseField = "arid"
	ReleaseFieldArtist            ReleaseField = "artist"
	ReleaseFieldArtistName        ReleaseField = "artistname"
	ReleaseFieldASIN              ReleaseField = "asin"
	ReleaseFieldBarcode           ReleaseField = "barcode"
	ReleaseFieldCatalogNumber     ReleaseField = "catno"
	ReleaseFieldComment           ReleaseField = "comment"
	ReleaseFieldCountry           ReleaseField = "country"
	ReleaseFieldCreditName        ReleaseField = "creditname"
	ReleaseFieldDate              ReleaseField = "date"
	ReleaseFieldDiscIDCount       ReleaseField = "discids"
	ReleaseFieldMediumDiscIDCount ReleaseField = "discidsmedium"
	ReleaseFieldFormat            ReleaseField = "format"
	ReleaseFieldLabelID           ReleaseField = "laid"
	ReleaseFieldLabel             ReleaseField = "label"
	ReleaseFieldLanguage          ReleaseField = "lang"
	ReleaseFieldMediumCount       ReleaseField = "mediums"
	ReleaseFieldPrimaryType       ReleaseField = "primarytype"
	ReleaseFieldQuality           ReleaseField = "quality"
	ReleaseFieldID                ReleaseField = "reid"
	ReleaseFieldRelease           ReleaseField = "release"
	ReleaseFieldAccent            ReleaseField = "releaseaccent"
	ReleaseFieldReleaseGroupID    ReleaseField = "rgid"
	ReleaseFieldScript            ReleaseField = "script"
	ReleaseFieldSecondaryType     ReleaseField = "secondarytype"
	ReleaseFieldStatus            ReleaseField = "status"
	ReleaseFieldTag               ReleaseField = "tag"
	ReleaseFieldTrackCount        ReleaseField = "tracks"
	ReleaseFieldMediumTrackCount  ReleaseField = "tracksmedium"
	ReleaseFieldType              ReleaseField = "type"
)

// ReleaseGroupField is a searchable release-group field.
type ReleaseGroupField string

// Entity implements SearchField.
func (ReleaseGroupField) Entity() Entity { return EntityReleaseGroup }

const (
	ReleaseGroupFieldDefault          ReleaseGroupField = ""
	ReleaseGroupFieldAlias            ReleaseGroupField = "alias"
	ReleaseGroupFieldArtistID         ReleaseGroupField = "arid"
	ReleaseGroupFieldArtist           ReleaseGroupField = "artist"
	ReleaseGroupFieldArtistName       ReleaseGroupField = "artistname"
	ReleaseGroupFieldComment          ReleaseGroupField = "comment"
	ReleaseGroupFieldCreditName       ReleaseGroupField = "creditname"
	ReleaseGroupFieldFirstReleaseDate ReleaseGroupField = "firstreleasedate"
	ReleaseGroupFieldPrimaryType      ReleaseGroupField = "primarytype"
	ReleaseGroupFieldReleaseID        ReleaseGroupField = "reid"
	ReleaseGroupFieldRelease          ReleaseGroupField = "release"
	ReleaseGroupFieldReleaseGroup     ReleaseGroupField = "releasegroup"
	ReleaseGroupFieldAccent           ReleaseGroupField = "releasegroupaccent"
	ReleaseGroupFieldReleaseCount     ReleaseGroupField = "releases"
	ReleaseGroupFieldID               ReleaseGroupField = "rgid"
	ReleaseGroupFieldSecondaryType    ReleaseGroupField = "secondarytype"
	ReleaseGroupFieldStatus           ReleaseGroupField = "status"
	ReleaseGroupFieldTag              ReleaseGroupField = "tag"
	ReleaseGroupFieldType             ReleaseGroupField = "type"
)

// RecordingField is a searchable recording field.
type RecordingField string

// Entity implements SearchField.
func (RecordingField) Entity() Entity { return EntityRecording }

const (
	RecordingFieldDefault           RecordingField = ""
	RecordingFieldAlias             RecordingField = "alias"
	RecordingFieldArtistID          RecordingField = "arid"
	RecordingFieldArtist            RecordingField = "artist"
	RecordingFieldArtistName        RecordingField = "artistname"
	RecordingFieldComment           RecordingField = "comment"
	RecordingFieldCountry           RecordingField = "country"
	RecordingFieldCreditName        RecordingField = "creditname"
	RecordingFieldDate              RecordingField = "date"
	RecordingFieldDuration          RecordingField = "dur"
	RecordingFieldFirstReleaseDate  RecordingField = "firstreleasedate"
	RecordingFieldFormat            RecordingField = "format"
	RecordingFieldISRC              RecordingField = "isrc"
	RecordingFieldTrackNumber       RecordingField = "number"
	RecordingFieldPosition          RecordingField = "position"
	RecordingFieldPrimaryType       RecordingField = "primarytype"
	RecordingFieldQuantizedDuration RecordingField = "qdur"
	RecordingFieldRecording         RecordingField = "recording"
	RecordingFieldAccent            RecordingField = "recordingaccent"
	RecordingFieldReleaseID         RecordingField = "reid"
	RecordingFieldRelease           RecordingField = "release"
	RecordingFieldReleaseGroupID    RecordingField = "rgid"
	RecordingFieldID                RecordingField = "rid"
	RecordingFieldSecondaryType     RecordingField = "secondarytype"
	RecordingFieldStatus            RecordingField = "status"
	RecordingFieldTrackID           RecordingField = "tid"
	RecordingFieldTrackPosition     RecordingField = "tnum"
	RecordingFieldTrackCount        RecordingField = "tracks"
	RecordingFieldReleaseTrackCount RecordingField = "tracksrelease"
	RecordingFieldTag               RecordingField = "tag"
	RecordingFieldType              RecordingField = "type"
	RecordingFieldVideo             RecordingField = "video"
)

// LabelField is a searchable label field.
type LabelField string

// Entity implements SearchField.
func (LabelField) Entity() Entity { return EntityLabel }

const (
	LabelFieldDefault      LabelField = ""
	LabelFieldAlias        LabelField = "alias"
	LabelFieldArea         LabelField = "area"
	LabelFieldBegin        LabelField = "begin"
	LabelFieldCode         LabelField = "code"
	LabelFieldComment      LabelField = "comment"
	LabelFieldCountry      LabelField = "country"
	LabelFieldEnd          LabelField = "end"
	LabelFieldEnded        LabelField = "ended"
	LabelFieldIPI          LabelField = "ipi"
	LabelFieldISNI         LabelField = "isni"
	LabelFieldLabel        LabelField = "label"
	LabelFieldAccent       LabelField = "labelaccent"
	LabelFieldID           LabelField = "laid"
	LabelFieldReleaseCount LabelField = "release_count"
	LabelFieldSortName     LabelField = "sortname"
	LabelFieldTag          LabelField = "tag"
	LabelFieldType         LabelField = "type"
)

// WorkField is a searchable work field.
type WorkField string

// Entity implements SearchField.
func (WorkField) Entity() Entity { return EntityWork }

const (
	WorkFieldDefault        WorkField = ""
	WorkFieldAlias          WorkField = "alias"
	WorkFieldArtistID       WorkField = "arid"
	WorkFieldArtist         WorkField = "artist"
	WorkFieldComment        WorkField = "comment"
	WorkFieldISWC           WorkField = "iswc"
	WorkFieldLanguage       WorkField = "lang"
	WorkFieldRecording      WorkField = "recording"
	WorkFieldRecordingCount WorkField = "recording_count"
	WorkFieldRecordingID    WorkField = "rid"
	WorkFieldTag            WorkField = "tag"
	WorkFieldType           WorkField = "type"
	WorkFieldID             WorkField = "wid"
	WorkFieldWork           WorkField = "work"
	WorkFieldAccent         WorkField = "workaccent"
)

// TagField is a searchable tag field.
type TagField string

// Entity implements SearchField.
func (TagField) Entity() Entity { return EntityTag }

const (
	TagFieldDefault TagField = ""
	TagFieldTag     TagField = "tag"
)

// InstrumentField is a searchable instrument field.
type InstrumentField string

// Entity implements SearchField.
func (InstrumentField) Entity() Entity { return EntityInstrument }

const (
	InstrumentFieldDefault     InstrumentField = ""
	InstrumentFieldAlias       InstrumentField = "alias"
	InstrumentFieldComment     InstrumentField = "comment"
	InstrumentFieldDescription InstrumentField = "description"
	InstrumentFieldID          InstrumentField = "iid"
	InstrumentFieldInstrument  InstrumentField = "instrument"
	InstrumentFieldType        InstrumentField = "type"
	InstrumentFieldTag         InstrumentField = "tag"
)

// AnnotationField is a searchable annotation field.
type AnnotationField string

// Entity implements SearchField.
func (AnnotationField) Entity() Entity { return EntityAnnotation }

const (
	AnnotationFieldDefault    AnnotationField = ""
	AnnotationFieldEntity     AnnotationField = "entity"
	AnnotationFieldID         AnnotationField = "id"
	AnnotationFieldEntityName AnnotationField = "name"
	AnnotationFieldText       AnnotationField = "text"
	AnnotationFieldEntityType AnnotationField = "type"
)

// fieldSets maps each searchable entity to its permitted field names,
// including "" for the default field.
var fieldSets = map[Entity][]string{
	EntityArtist: names(
		ArtistFieldDefault, ArtistFieldAlias, ArtistFieldPrimaryAlias, ArtistFieldArea,
		ArtistFieldID, ArtistFieldArtist, ArtistFieldAccent, ArtistFieldBegin,
		ArtistFieldBeginArea, ArtistFieldComment, ArtistFieldCountry, ArtistFieldEnd,
		ArtistFieldEndArea, ArtistFieldEnded, ArtistFieldGender, ArtistFieldIPI,
		ArtistFieldISNI, ArtistFieldSortName, ArtistFieldTag, ArtistFieldType,
	),
	EntityRelease: names(
		ReleaseFieldDefault, ReleaseFieldArtistID, ReleaseFieldArtist, ReleaseFieldArtistName,
		ReleaseFieldASIN, ReleaseFieldBarcode, ReleaseFieldCatalogNumber, ReleaseFieldComment,
		ReleaseFieldCountry, ReleaseFieldCreditName, ReleaseFieldDate, ReleaseFieldDiscIDCount,
		ReleaseFieldMediumDiscIDCount, ReleaseFieldFormat, ReleaseFieldLabelID, ReleaseFieldLabel,
		ReleaseFieldLanguage, ReleaseFieldMediumCount, ReleaseFieldPrimaryType, ReleaseFieldQuality,
		ReleaseFieldID, ReleaseFieldRelease, ReleaseFieldAccent, ReleaseFieldReleaseGroupID,
		ReleaseFieldScript, ReleaseFieldSecondaryType, ReleaseFieldStatus, ReleaseFieldTag,
		ReleaseFieldTrackCount, ReleaseFieldMediumTrackCount, ReleaseFieldType,
	),
	EntityReleaseGroup: names(
		ReleaseGroupFieldDefault, ReleaseGroupFieldAlias, ReleaseGroupFieldArtistID,
		ReleaseGroupFieldArtist, ReleaseGroupFieldArtistName, ReleaseGroupFieldComment,
		ReleaseGroupFieldCreditName, ReleaseGroupFieldFirstReleaseDate,
		ReleaseGroupFieldPrimaryType, ReleaseGroupFieldReleaseID, ReleaseGroupFieldRelease,
		ReleaseGroupFieldReleaseGroup, ReleaseGroupFieldAccent, ReleaseGroupFieldReleaseCount,
		ReleaseGroupFieldID, ReleaseGroupFieldSecondaryType, ReleaseGroupFieldStatus,
		ReleaseGroupFieldTag, ReleaseGroupFieldType,
	),
	EntityRecording: names(
		RecordingFieldDefault, RecordingFieldAlias, RecordingFieldArtistID, RecordingFieldArtist,
		RecordingFieldArtistName, RecordingFieldComment, RecordingFieldCountry,
		RecordingFieldCreditName, RecordingFieldDate, RecordingFieldDuration,
		RecordingFieldFirstReleaseDate, RecordingFieldFormat, RecordingFieldISRC,
		RecordingFieldTrackNumber, RecordingFieldPosition, RecordingFieldPrimaryType,
		RecordingFieldQuantizedDuration, RecordingFieldRecording, RecordingFieldAccent,
		RecordingFieldReleaseID, RecordingFieldRelease, RecordingFieldReleaseGroupID,
		RecordingFieldID, RecordingFieldSecondaryType, RecordingFieldStatus,
		RecordingFieldTrackID, RecordingFieldTrackPosition, RecordingFieldTrackCount,
		RecordingFieldReleaseTrackCount, RecordingFieldTag, RecordingFieldType,
		RecordingFieldVideo,
	),
	EntityLabel: names(
		LabelFieldDefault, LabelFieldAlias, LabelFieldArea, LabelFieldBegin, LabelFieldCode,
		LabelFieldComment, LabelFieldCountry, LabelFieldEnd, LabelFieldEnded, LabelFieldIPI,
		LabelFieldISNI, LabelFieldLabel, LabelFieldAccent, LabelFieldID,
		LabelFieldReleaseCount, LabelFieldSortName, LabelFieldTag, LabelFieldType,
	),
	EntityWork: names(
		WorkFieldDefault, WorkFieldAlias, WorkFieldArtistID, WorkFieldArtist, WorkFieldComment,
		WorkFieldISWC, WorkFieldLanguage, WorkFieldRecording, WorkFieldRecordingCount,
		WorkFieldRecordingID, WorkFieldTag, WorkFieldType, WorkFieldID, WorkFieldWork,
		WorkFieldAccent,
	),
	EntityTag: names(TagFieldDefault, TagFieldTag),
	EntityInstrument: names(
		InstrumentFieldDefault, InstrumentFieldAlias, InstrumentFieldComment,
		InstrumentFieldDescription, InstrumentFieldID, InstrumentFieldInstrument,
		InstrumentFieldType, InstrumentFieldTag,
	),
	EntityAnnotation: names(
		AnnotationFieldDefault, AnnotationFieldEntity, AnnotationFieldID,
		AnnotationFieldEntityName, AnnotationFieldText, AnnotationFieldEntityType,
	),
}

func names[F ~string](fields ...F) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return out
}

// FieldSet returns the permitted search field names for an entity, and
// false if the entity is not searchable.
func FieldSet(e Entity) ([]string, bool) {
	set, ok := fieldSets[e]
	if !ok {
		return nil, false
	}
	return slices.Clone(set), true
}

// HasField reports whether name is a permitted search field of e.
func HasField(e Entity, name string) bool {
	return slices.Contains(fieldSets[e], name)
}

// Searchable reports whether e supports full-text search.
func Searchable(e Entity) bool {
	_, ok := fieldSets[e]
	return ok
}
