package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/brainz/internal/testutil"
)

const (
	rgid  = "938cef50-de9a-3ced-a1fe-bdfbd3bc4315"
	rgid2 = "46f0f4cd-8aab-4b33-b698-f459faf64190"
)

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestQuery_Golden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "query_release",
			args: []string{"query", "release",
				"-f", `artist="David Bowie"`,
				"-f", "release=The Man Who Sold the World",
				"--limit", "20"},
		},
		{
			name: "query_any",
			args: []string{"query", "release",
				"-f", "artist=Nirvana",
				"-f", "label=DGC",
				"--match", "any",
				"--inc", "labels,ratings",
				"--status", "official",
				"--offset", "40"},
		},
		{
			name: "query_wildcards",
			args: []string{"query", "artist",
				"-f", "artist=Radio*",
				"-f", "tag=rok~",
				"--missing", "country"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := testutil.NewFakeInvoker()
			stdout, _, err := execute(t, inv, tt.args...)
			require.NoError(t, err)
			assert.Zero(t, inv.CallCount(), "query must not call the service")
			golden(t).Assert(t, tt.name, []byte(stdout))
		})
	}
}

func TestQuery_JSON(t *testing.T) {
	stdout, _, err := execute(t, testutil.NewFakeInvoker(),
		"--format", "json", "query", "recording",
		"-f", "recording=Her Majesty", "-f", "artist=The Beatles", "--limit", "5")
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   renderedQuery `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "recording", resp.Data.Entity)
	assert.Equal(t, `recording:"Her Majesty" AND artist:"The Beatles"`, resp.Data.Query)
	assert.Equal(t, []kvParam{
		{Key: "query", Value: `recording:"Her Majesty" AND artist:"The Beatles"`},
		{Key: "limit", Value: "5"},
	}, resp.Data.Params)
}

func TestQuery_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
		wantExit int
	}{
		{
			name:     "ratings without companion",
			args:     []string{"query", "release", "-f", "artist=Nirvana", "--inc", "ratings"},
			wantCode: "MISSING_COMPANION",
			wantExit: ExitFailure,
		},
		{
			name:     "unknown field",
			args:     []string{"query", "artist", "-f", "barcode=123"},
			wantCode: "UNKNOWN_FIELD",
			wantExit: ExitFailure,
		},
		{
			name:     "no terms",
			args:     []string{"query", "label"},
			wantCode: "INVALID_EXPRESSION",
			wantExit: ExitFailure,
		},
		{
			name:     "bad limit",
			args:     []string{"query", "label", "-f", "label=Factory", "--limit", "0"},
			wantCode: "INVALID_LIMIT",
			wantExit: ExitFailure,
		},
		{
			name:     "malformed field",
			args:     []string{"query", "label", "-f", "Factory"},
			wantCode: ErrCodeUsage,
			wantExit: ExitCommandError,
		},
		{
			name:     "unknown entity",
			args:     []string{"query", "planet", "-f", "name=Mars"},
			wantCode: ErrCodeUsage,
			wantExit: ExitCommandError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, testutil.NewFakeInvoker(), append([]string{"--format", "json"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestSearch_Success(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(200, `{"count":1,"offset":0,"releases":[{"id":"r1","title":"The Man Who Sold the World"}]}`)

	stdout, _, err := execute(t, inv, "--format", "json", "search", "release",
		"-f", "artist=David Bowie", "-f", "release=The Man Who Sold the World", "--limit", "20")
	require.NoError(t, err)

	calls := inv.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "release", calls[0].Path)
	assert.Equal(t, `artist:"David Bowie" AND release:"The Man Who Sold the World"`, calls[0].Query())
	assert.Equal(t, []string{"query", "limit"}, calls[0].Params.Keys())

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Count    int `json:"count"`
			Releases []struct {
				Title string `json:"title"`
			} `json:"releases"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Data.Count)
	assert.Equal(t, "The Man Who Sold the World", resp.Data.Releases[0].Title)
}

func TestSearch_ServiceError(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(503, `{"error":"503","help":"Service unavailable"}`)

	stdout, _, err := execute(t, inv, "search", "artist", "-f", "artist=Can")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "Error [SERVICE_ERROR]: Service unavailable")
}

func TestSearch_UnknownErrorBody(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(502, "<html>bad gateway</html>")

	stdout, _, err := execute(t, inv, "--format", "json", "search", "artist", "-f", "artist=Can")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeCallFailed, resp.Error.Code)
	details, ok := resp.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "502", details["status"])
}

func TestSearch_RejectedNeverCalls(t *testing.T) {
	inv := testutil.NewFakeInvoker()

	_, _, err := execute(t, inv, "search", "release", "-f", "artist=Nirvana", "--inc", "ratings")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Zero(t, inv.CallCount())
}

func TestSearch_MetricsDump(t *testing.T) {
	inv := testutil.NewFakeInvoker()

	_, stderr, err := execute(t, inv, "--metrics", "search", "tag", "-f", "tag=shoegaze")
	require.NoError(t, err)
	assert.Contains(t, stderr, `brainz_requests_total{entity="tag",operation="search",outcome="success"} 1`)
	assert.Contains(t, stderr, "brainz_request_duration_seconds")
}

func TestSearch_VerboseLogsCall(t *testing.T) {
	inv := testutil.NewFakeInvoker()

	_, stderr, err := execute(t, inv, "-v", "search", "tag", "-f", "tag=shoegaze")
	require.NoError(t, err)
	assert.Contains(t, stderr, "catalog call")
	assert.Contains(t, stderr, "request_id=")
	assert.Contains(t, stderr, "outcome=success")
}

func TestLookup_Single(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(200, `{"id":"`+rgid+`","title":"dummy"}`)

	stdout, _, err := execute(t, inv, "lookup", "release-group", rgid, "--inc", "releases", "--status", "official")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"title": "dummy"`)

	calls := inv.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "release-group/"+rgid, calls[0].Path)
	assert.Equal(t, []string{"inc", "status"}, calls[0].Params.Keys())
}

func TestLookup_TextKeepsNumbersVerbatim(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(200, `{"id":"`+rgid+`","count":12345678901234567890}`)

	stdout, _, err := execute(t, inv, "lookup", "release-group", rgid)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"count": 12345678901234567890`)
}

func TestSearch_JSONLogFormatIsCaseInsensitive(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  format: JSON\n"), 0o600))

	_, stderr, err := execute(t, testutil.NewFakeInvoker(), "--config", cfgPath, "-v", "search", "tag", "-f", "tag=shoegaze")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"catalog call"`)
}

func TestLookup_StatusWithoutReleasesNeverCalls(t *testing.T) {
	inv := testutil.NewFakeInvoker()

	stdout, _, err := execute(t, inv, "lookup", "release-group", rgid, "--status", "official")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "STATUS_REQUIRES_INCLUDE")
	assert.Zero(t, inv.CallCount())
}

func TestLookup_ManyInOrder(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(200, `{"title":"ok"}`)

	stdout, _, err := execute(t, inv, "--format", "json", "lookup", "label", rgid, "not-an-mbid", rgid2, "--concurrency", "2")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, 2, inv.CallCount())

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			MBID  string          `json:"mbid"`
			Data  json.RawMessage `json:"data"`
			Error *CLIError       `json:"error"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, rgid, resp.Data[0].MBID)
	assert.JSONEq(t, `{"title":"ok"}`, string(resp.Data[0].Data))
	assert.Equal(t, "not-an-mbid", resp.Data[1].MBID)
	require.NotNil(t, resp.Data[1].Error)
	assert.Equal(t, "INVALID_MBID", resp.Data[1].Error.Code)
	assert.Equal(t, rgid2, resp.Data[2].MBID)
	assert.Nil(t, resp.Data[2].Error)
}

func TestLookup_EventRejectsStatus(t *testing.T) {
	inv := testutil.NewFakeInvoker()

	stdout, _, err := execute(t, inv, "lookup", "event", rgid, "--status", "official")
	require.Error(t, err)
	assert.Contains(t, stdout, "Error [USAGE]")
	assert.Zero(t, inv.CallCount())
}

func TestLookup_UnsupportedEntity(t *testing.T) {
	_, _, err := execute(t, testutil.NewFakeInvoker(), "lookup", "tag", rgid)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestLookup_RulesFileFromConfig(t *testing.T) {
	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "strict.cue")
	require.NoError(t, os.WriteFile(rulesPath, []byte(`
tables: lookup: artist: allowed: ["aliases"]
`), 0o600))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("rules_file: strict.cue\n"), 0o600))

	inv := testutil.NewFakeInvoker()
	stdout, _, err := execute(t, inv, "--config", cfgPath, "lookup", "artist", rgid, "--inc", "tags")
	require.Error(t, err)
	assert.Contains(t, stdout, "UNSUPPORTED_INCLUDE")
	assert.Zero(t, inv.CallCount())
}

const coverArtListing = `{
  "images": [
    {
      "id": 1234567890,
      "image": "http://coverartarchive.org/release/91975b77-c9f2-46d1-a03b-f1fffbda1d1c/1234567890.jpg",
      "front": true,
      "back": false,
      "approved": true,
      "types": ["Front"],
      "thumbnails": {"250": "http://coverartarchive.org/release/91975b77-c9f2-46d1-a03b-f1fffbda1d1c/1234567890-250.jpg"}
    }
  ],
  "release": "https://musicbrainz.org/release/91975b77-c9f2-46d1-a03b-f1fffbda1d1c"
}`

const artMbid = "91975b77-c9f2-46d1-a03b-f1fffbda1d1c"

func TestCoverArt_Release(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(200, coverArtListing)

	stdout, _, err := execute(t, inv, "coverart", "release", artMbid)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"id": 1234567890`)

	calls := inv.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "release/"+artMbid, calls[0].Path)
	assert.Zero(t, calls[0].Params.Len())
}

func TestCoverArt_NotFound(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(404, `{"error":"404","help":"Not found"}`)

	stdout, _, err := execute(t, inv, "coverart", "release-group", artMbid)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "Error [SERVICE_ERROR]: Not found")
}

func TestCoverArt_RejectedNeverCalls(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"artist", []string{"coverart", "artist", artMbid}, "UNSUPPORTED_ENTITY"},
		{"bad mbid", []string{"coverart", "release", "91975b77"}, "INVALID_MBID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := testutil.NewFakeInvoker()
			stdout, _, err := execute(t, inv, append([]string{"--format", "json"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.Zero(t, inv.CallCount())

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}
