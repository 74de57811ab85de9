package brainz

import "fmt"

// Entity names a MusicBrainz entity kind as it appears in ws/2 paths.
type Entity string

const (
	EntityAnnotation   Entity = "annotation"
	EntityArea         Entity = "area"
	EntityArtist       Entity = "artist"
	EntityCollection   Entity = "collection"
	EntityEvent        Entity = "event"
	EntityInstrument   Entity = "instrument"
	EntityLabel        Entity = "label"
	EntityPlace        Entity = "place"
	EntityRecording    Entity = "recording"
	EntityRelease      Entity = "release"
	EntityReleaseGroup Entity = "release-group"
	EntitySeries       Entity = "series"
	EntityTag          Entity = "tag"
	EntityTrack        Entity = "track"
	EntityWork         Entity = "work"
)

var allEntities = []Entity{
	EntityAnnotation,
	EntityArea,
	EntityArtist,
	EntityCollection,
	EntityEvent,
	EntityInstrument,
	EntityLabel,
	EntityPlace,
	EntityRecording,
	EntityRelease,
	EntityReleaseGroup,
	EntitySeries,
	EntityTag,
	EntityTrack,
	EntityWork,
}

// Entities returns every known entity.
func Entities() []Entity {
	return append([]Entity(nil), allEntities...)
}

// ParseEntity converts a ws/2 entity name to an Entity.
func ParseEntity(s string) (Entity, error) {
	for _, e := range allEntities {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown entity %q", s)
}

// String returns the ws/2 name.
func (e Entity) String() string { return string(e) }
