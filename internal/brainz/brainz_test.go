package brainz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidMbid(t *testing.T) {
	assert.True(t, ValidMbid("ca2866c0-e204-4b0e-8fd2-00823863e2b2"))

	invalid := []string{
		"ca2866c00-e204-4b0e-8fd2-00823863e2b2",
		"ca2866c-e204-4b0e-8fd2-00823863e2b2",
		"ca2866c-e2040-4b0e-8fd2-00823863e2b2",
		"ca2866c0-e20-4b0e-8fd2-00823863e2b2",
		"ca2866c0-e204-4b0e0-8fd2-00823863e2b2",
		"ca2866c0-e204-4b0-8fd2-00823863e2b2",
		"ca2866c0-e204-4b0e-8fd20-00823863e2b2",
		"ca2866c0-e204-4b0e-8fd-00823863e2b2",
		"ca2866c0-e204-4b0e-8fd2-00823863e2b20",
		"ca2866c0-e204-4b0e-8fd2-00823863e2b",
		"ca2866c0--e204-4b0e-8fd2-00823863e2b2",
		"ca2866c0e204-4b0e-8fd2-00823863e2b2",
		"ca2866c0-e204--4b0e-8fd2-00823863e2b2",
		"ca2866c0-e2044b0e-8fd2-00823863e2b2",
		"ca2866c0-e204-4b0e--8fd2-00823863e2b2",
		"ca2866c0-e204-4b0e8fd200823863e2b2",
		"ca2866c0-e204-4b0e-8fd2--00823863e2b2",
		"ca2866c0-e204-4b0e-8fd200823863e2b2",
		"-ca2866c0-e204-4b0e-8fd2-00823863e2b2",
		"ca2866c0-e204-4b0e-8fd2-00823863e2b2-",
		"ca2866c0ae204-4b0e-8fd2-00823863e2b2",
		"ca2866c0-e204a4b0e-8fd2-00823863e2b2",
		"ca2866c0-e204-4b0ea8fd2-00823863e2b2",
		"ca2866c0-e204-4b0e-8fd2a00823863e2b2",
		"2ca2866c0-e204-4b0e-8fd2-00823863e2b2",
		"ca2866c0-e204-4b0e-8fd2-00823863e2b2c",
		"ca28g6c0-e204-4b0e-8fd2-00823863e2b2c",
		"-a2866c0-e204-4b0e-8fd2-00823863e2b2",
		"ca2866c0-e204-4b0e-8fd2-00823863e2b-",
		"{ca2866c0-e204-4b0e-8fd2-00823863e2b2}",
		"ca2866c0e2044b0e8fd200823863e2b2",
		"CA2866C0-E204-4B0E-8FD2-00823863E2B2",
		"ca2866c0-e204-4b0e-8fd2-00823863E2B2",
		"",
	}
	for _, s := range invalid {
		assert.False(t, ValidMbid(s), s)
	}

	assert.True(t, ReleaseMbid("938cef50-de9a-3ced-a1fe-bdfbd3bc4315").Valid())
	assert.False(t, ArtistMbid("").Valid())
}

func TestParseEntity(t *testing.T) {
	e, err := ParseEntity("release-group")
	require.NoError(t, err)
	assert.Equal(t, EntityReleaseGroup, e)

	_, err = ParseEntity("releasegroup")
	assert.Error(t, err)

	assert.Len(t, Entities(), 15)
}

func TestFieldSet(t *testing.T) {
	set, ok := FieldSet(EntityRelease)
	require.True(t, ok)
	assert.Contains(t, set, "")
	assert.Contains(t, set, "artist")
	assert.Contains(t, set, "release")

	set[0] = "mutated"
	assert.True(t, HasField(EntityRelease, ""))

	assert.True(t, HasField(EntityArtist, "sortname"))
	assert.False(t, HasField(EntityArtist, "release"))
	assert.False(t, Searchable(EntityCollection))

	_, ok = FieldSet(EntityTrack)
	assert.False(t, ok)
}

func TestSearchField_Entity(t *testing.T) {
	assert.Equal(t, EntityArtist, ArtistFieldArtist.Entity())
	assert.Equal(t, EntityRelease, ReleaseFieldRelease.Entity())
	assert.Equal(t, EntityReleaseGroup, ReleaseGroupFieldDefault.Entity())
	assert.Equal(t, EntityRecording, RecordingFieldISRC.Entity())
	assert.Equal(t, EntityAnnotation, AnnotationFieldText.Entity())
}

func TestModifiers(t *testing.T) {
	var m Modifiers
	assert.True(t, m.Empty())

	m.AddIncludes(IncReleases, IncMedia, IncReleases)
	m.AddStatuses(StatusOfficial, StatusBootleg)
	m.AddTypes(TypeAlbum)

	assert.Equal(t, []Include{IncReleases, IncMedia}, m.Includes)
	assert.Equal(t, "releases+media", m.IncludeParam())
	assert.Equal(t, "official|bootleg", m.StatusParam())
	assert.Equal(t, "album", m.TypeParam())
	assert.True(t, m.HasInclude(IncMedia))
	assert.False(t, m.HasInclude(IncRatings))

	c := m.Clone()
	c.AddIncludes(IncRatings)
	assert.False(t, m.HasInclude(IncRatings))
}

func TestValidStatusAndType(t *testing.T) {
	assert.True(t, ValidStatus(StatusPseudoRelease))
	assert.False(t, ValidStatus("withdrawn-ish"))
	assert.True(t, ValidType(TypeSpokenWord))
	assert.False(t, ValidType("mixtape"))
}

func TestNames(t *testing.T) {
	assert.Equal(t, ArtistName("David Bowie"), ToArtistName("  David Bowie "))
	assert.Equal(t, UnknownAlbum, ToAlbumName("   "))
	assert.Equal(t, RecordingTitle("Her Majesty"), ToRecordingTitle("Her Majesty"))
	assert.Equal(t, UnknownTrack, ToTrackTitle(""))
	assert.Equal(t, UnknownComposer, ToComposerName(""))
	assert.Equal(t, LabelName("EMI"), ToLabelName("EMI\n"))
}

func TestReleaseList_DecodesSearchResponse(t *testing.T) {
	body := `{
		"created": "2020-01-01T00:00:00.000Z",
		"count": 1,
		"offset": 0,
		"releases": [{
			"id": "938cef50-de9a-3ced-a1fe-bdfbd3bc4315",
			"title": "The Man Who Sold the World",
			"score": 100,
			"artist-credit": [{"name": "David Bowie", "artist": {"id": "5441c29d-3602-4898-b1a1-b77fa23b8e50", "name": "David Bowie"}}],
			"release-group": {"id": "x", "title": "The Man Who Sold the World", "primary-type": "Album"},
			"unmodelled": {"ignored": true}
		}]
	}`
	var list ReleaseList
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list.Releases, 1)
	rel := list.Releases[0]
	assert.Equal(t, "The Man Who Sold the World", rel.Title)
	assert.Equal(t, 100, rel.Score)
	require.Len(t, rel.ArtistCredit, 1)
	assert.Equal(t, "David Bowie", rel.ArtistCredit[0].Artist.Name)
	require.NotNil(t, rel.ReleaseGroup)
	assert.Equal(t, "Album", rel.ReleaseGroup.PrimaryType)
}
