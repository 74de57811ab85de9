package querymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/rules"
)

func intp(n int) *int { return &n }

func TestAssemble_KeyOrder(t *testing.T) {
	tests := []struct {
		name   string
		limit  *int
		offset *int
		keys   []string
	}{
		{"no paging", nil, nil, []string{"query"}},
		{"limit only", intp(20), nil, []string{"query", "limit"}},
		{"offset only", nil, intp(10), []string{"query", "offset"}},
		{"both", intp(100), intp(10), []string{"query", "limit", "offset"}},
		{"zero offset kept", nil, intp(0), []string{"query", "offset"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Assemble(`artist:"Queen"`, Paging(tt.limit, tt.offset)...)
			require.NoError(t, err)
			assert.Equal(t, tt.keys, m.Keys())
			assert.Equal(t, len(tt.keys), m.Len())
		})
	}
}

func TestAssemble_LimitTwentyHasNoOffset(t *testing.T) {
	m, err := Assemble("x", Limit(20))
	require.NoError(t, err)
	assert.Equal(t, []string{"query", "limit"}, m.Keys())
	_, ok := m.Get("offset")
	assert.False(t, ok)
	v, ok := m.Get("limit")
	assert.True(t, ok)
	assert.Equal(t, "20", v)
}

func TestAssemble_RejectsBadPaging(t *testing.T) {
	_, err := Assemble("x", Limit(0))
	assert.Equal(t, rules.ErrCodeInvalidLimit, rules.ValidationCode(err))

	_, err = Assemble("x", Limit(-5))
	assert.Equal(t, rules.ErrCodeInvalidLimit, rules.ValidationCode(err))

	_, err = Assemble("x", Offset(-1))
	assert.Equal(t, rules.ErrCodeInvalidOffset, rules.ValidationCode(err))

	_, err = Assemble("x", Offset(-1), Limit(0))
	assert.Equal(t, rules.ErrCodeInvalidOffset, rules.ValidationCode(err), "first failure wins")

	_, err = Assemble("   ")
	assert.Equal(t, rules.ErrCodeEmptyQuery, rules.ValidationCode(err))
}

func TestMap_EncodePreservesOrder(t *testing.T) {
	m, err := Assemble(`artist:"David Bowie" AND release:"Heroes"`, Limit(5), Offset(15))
	require.NoError(t, err)
	assert.Equal(t, "query=artist%3A%22David+Bowie%22+AND+release%3A%22Heroes%22&limit=5&offset=15", m.Encode())
}

func TestMap_Equal(t *testing.T) {
	a, err := Assemble("x", Limit(1))
	require.NoError(t, err)
	b, err := Assemble("x", Limit(1))
	require.NoError(t, err)
	c, err := Assemble("x", Limit(2))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, Map{}.Equal(Map{}))
}

func TestBuilder_Modifiers(t *testing.T) {
	var mods brainz.Modifiers
	mods.AddIncludes(brainz.IncReleases, brainz.IncMedia)
	mods.AddStatuses(brainz.StatusOfficial, brainz.StatusPromotion)
	mods.AddTypes(brainz.TypeAlbum, brainz.TypeEP)

	m, err := NewBuilder().Set("artist", "5441c29d-3602-4898-b1a1-b77fa23b8e50").Modifiers(mods).Build(Limit(25))
	require.NoError(t, err)

	assert.Equal(t, []string{"artist", "inc", "status", "type", "limit"}, m.Keys())
	inc, _ := m.Get(KeyInclude)
	assert.Equal(t, "releases+media", inc)
	status, _ := m.Get(KeyStatus)
	assert.Equal(t, "official|promotion", status)
	typ, _ := m.Get(KeyType)
	assert.Equal(t, "album|ep", typ)
}

func TestBuilder_SkipsEmpty(t *testing.T) {
	m, err := NewBuilder().Modifiers(brainz.Modifiers{}).Build()
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "", m.Encode())
	assert.Equal(t, "{}", m.String())
}

func TestMap_ParamsIsCopy(t *testing.T) {
	m, err := Assemble("x")
	require.NoError(t, err)
	p := m.Params()
	p[0].Value = "y"
	v, _ := m.Get(KeyQuery)
	assert.Equal(t, "x", v)
}
