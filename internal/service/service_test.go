package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/browse"
	"github.com/roach88/brainz/internal/lookup"
	"github.com/roach88/brainz/internal/metrics"
	"github.com/roach88/brainz/internal/querymap"
	"github.com/roach88/brainz/internal/result"
	"github.com/roach88/brainz/internal/rules"
	"github.com/roach88/brainz/internal/search"
	"github.com/roach88/brainz/internal/testutil"
	"github.com/roach88/brainz/internal/transport"
)

const (
	releaseID      = brainz.ReleaseMbid("938cef50-de9a-3ced-a1fe-bdfbd3bc4315")
	releaseGroupID = brainz.ReleaseGroupMbid("938cef50-de9a-3ced-a1fe-bdfbd3bc4315")
	labelID        = brainz.LabelMbid("46f0f4cd-8aab-4b33-b698-f459faf64190")

	bowieQuery = `artist:"David Bowie" AND release:"The Man Who Sold the World"`

	notFoundBody = `
{
  "error": "404",
  "help": "Not found"
}
`
)

func newService(t *testing.T, inv *testutil.FakeInvoker, opts ...Option) *Service {
	t.Helper()
	tables, err := rules.Default()
	require.NoError(t, err)
	return New(inv, tables, opts...)
}

func intPtr(n int) *int { return &n }

type recordingObserver struct {
	mu       sync.Mutex
	calls    []string
	rejected []string
}

func (o *recordingObserver) ObserveCall(entity, operation, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, entity+"/"+operation+"/"+outcome)
}

func (o *recordingObserver) ObserveRejected(entity, code string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rejected = append(o.rejected, entity+"/"+code)
}

func TestFindReleaseByName_Paging(t *testing.T) {
	tests := []struct {
		name     string
		limit    *int
		offset   *int
		wantKeys []string
	}{
		{name: "no paging", wantKeys: []string{"query"}},
		{name: "limit only", limit: intPtr(20), wantKeys: []string{"query", "limit"}},
		{name: "offset only", offset: intPtr(10), wantKeys: []string{"query", "offset"}},
		{name: "limit and offset", limit: intPtr(100), offset: intPtr(10), wantKeys: []string{"query", "limit", "offset"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := testutil.NewFakeInvoker().Respond(200, `{"count": 1, "offset": 0, "releases": [{"id": "r1", "title": "The Man Who Sold the World"}]}`)
			svc := newService(t, inv)

			res, err := svc.FindReleaseByName(context.Background(), "David Bowie", "The Man Who Sold the World", tt.limit, tt.offset)
			require.NoError(t, err)

			list, ok := result.Value(res)
			require.True(t, ok, "expected success, got %T", res)
			require.Len(t, list.Releases, 1)
			assert.Equal(t, "The Man Who Sold the World", list.Releases[0].Title)

			calls := inv.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, "release", calls[0].Path)
			assert.Equal(t, bowieQuery, calls[0].Query())
			assert.Equal(t, tt.wantKeys, calls[0].Params.Keys())

			if tt.limit != nil {
				v, _ := calls[0].Params.Get(querymap.KeyLimit)
				assert.Equal(t, strconv.Itoa(*tt.limit), v)
			}
			if tt.offset != nil {
				v, _ := calls[0].Params.Get(querymap.KeyOffset)
				assert.Equal(t, strconv.Itoa(*tt.offset), v)
			}
		})
	}
}

func TestFindReleaseByName_TransportFailure(t *testing.T) {
	cause := errors.New("I O, let's go!")
	inv := testutil.NewFakeInvoker().Fail(cause)
	svc := newService(t, inv)

	res, err := svc.FindReleaseByName(context.Background(), "David Bowie", "The Man Who Sold the World", nil, nil)
	require.NoError(t, err)

	exc, ok := res.(result.Exceptional[brainz.ReleaseList])
	require.True(t, ok, "expected exceptional, got %T", res)
	var wrapped *result.WrappedFailure
	require.ErrorAs(t, exc.Cause, &wrapped)
	assert.Same(t, cause, wrapped.Cause)
	assert.Equal(t, bowieQuery, inv.Calls()[0].Query())
}

func TestFindRecordingByName_Query(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(200, `{"count": 0, "offset": 0, "recordings": []}`)
	svc := newService(t, inv)

	res, err := svc.FindRecordingByName(context.Background(), "Her Majesty", "The Beatles", "Abbey Road")
	require.NoError(t, err)
	assert.Equal(t, result.KindSuccess, res.Kind())

	calls := inv.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "recording", calls[0].Path)
	assert.Equal(t, `recording:"Her Majesty" AND artist:"The Beatles" AND release:"Abbey Road"`, calls[0].Query())
	assert.Equal(t, []string{"query"}, calls[0].Params.Keys())
}

func TestSearch_BuildFailureNotCountedAsValidation(t *testing.T) {
	inv := testutil.NewFakeInvoker()
	obs := &recordingObserver{}
	svc := newService(t, inv, WithObserver(obs))

	malformed := errors.New("malformed --field")
	res, err := Search[json.RawMessage](context.Background(), svc, brainz.EntityLabel, func() (querymap.Map, error) {
		return querymap.Map{}, malformed
	})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, malformed)
	assert.Zero(t, inv.CallCount())
	assert.Empty(t, obs.rejected)
	assert.Empty(t, obs.calls)
}

func TestFindRelease_RatingsWithoutCompanionNeverCalls(t *testing.T) {
	inv := testutil.NewFakeInvoker()
	obs := &recordingObserver{}
	svc := newService(t, inv, WithObserver(obs))

	res, err := svc.FindRelease(context.Background(), nil, nil, func(b *search.ReleaseSearch) {
		b.Artist("Nirvana")
		b.Include(brainz.IncRatings)
	})
	assert.Nil(t, res)
	assert.True(t, rules.IsValidationError(err))
	assert.Equal(t, rules.ErrCodeMissingCompanion, rules.ValidationCode(err))
	assert.Zero(t, inv.CallCount())
	assert.Equal(t, []string{"release/MISSING_COMPANION"}, obs.rejected)
	assert.Empty(t, obs.calls)

	res, err = svc.FindRelease(context.Background(), nil, nil, func(b *search.ReleaseSearch) {
		b.Artist("Nirvana")
		b.Include(brainz.IncRatings, brainz.IncLabels)
	})
	require.NoError(t, err)
	assert.Equal(t, result.KindSuccess, res.Kind())
	assert.Equal(t, 1, inv.CallCount())
}

func TestFind_EmptySearchRejected(t *testing.T) {
	inv := testutil.NewFakeInvoker()
	svc := newService(t, inv)

	_, err := svc.FindArtist(context.Background(), nil, nil, nil)
	assert.Equal(t, rules.ErrCodeInvalidExpression, rules.ValidationCode(err))
	assert.Zero(t, inv.CallCount())
}

func TestFind_InvalidLimitRejected(t *testing.T) {
	inv := testutil.NewFakeInvoker()
	svc := newService(t, inv)

	_, err := svc.FindLabel(context.Background(), intPtr(0), nil, func(b *search.LabelSearch) {
		b.Label("Factory")
	})
	assert.Equal(t, rules.ErrCodeInvalidLimit, rules.ValidationCode(err))
	assert.Zero(t, inv.CallCount())
}

func TestFind_OtherEntities(t *testing.T) {
	inv := testutil.NewFakeInvoker()
	svc := newService(t, inv)
	ctx := context.Background()

	_, err := svc.FindArtist(ctx, nil, nil, func(b *search.ArtistSearch) { b.Artist("Björk").Country("IS") })
	require.NoError(t, err)
	_, err = svc.FindReleaseGroup(ctx, nil, nil, func(b *search.ReleaseGroupSearch) { b.ReleaseGroup("Homogenic") })
	require.NoError(t, err)
	_, err = svc.FindWork(ctx, nil, nil, func(b *search.WorkSearch) { b.Work("Jóga") })
	require.NoError(t, err)
	_, err = svc.FindTag(ctx, intPtr(5), nil, func(b *search.TagSearch) { b.Tag("trip-hop") })
	require.NoError(t, err)

	calls := inv.Calls()
	require.Len(t, calls, 4)
	assert.Equal(t, "artist", calls[0].Path)
	assert.Equal(t, `artist:"Björk" AND country:IS`, calls[0].Query())
	assert.Equal(t, "release-group", calls[1].Path)
	assert.Equal(t, `releasegroup:"Homogenic"`, calls[1].Query())
	assert.Equal(t, "work", calls[2].Path)
	assert.Equal(t, "tag", calls[3].Path)
	assert.Equal(t, []string{"query", "limit"}, calls[3].Params.Keys())
}

func TestLookupRelease(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(200, `{"id": "938cef50-de9a-3ced-a1fe-bdfbd3bc4315", "title": "dummy"}`)
	svc := newService(t, inv)

	res, err := svc.LookupRelease(context.Background(), releaseID, nil)
	require.NoError(t, err)

	rel, ok := result.Value(res)
	require.True(t, ok)
	assert.Equal(t, "dummy", rel.Title)

	calls := inv.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "release/"+string(releaseID), calls[0].Path)
	assert.Zero(t, calls[0].Params.Len())
}

func TestLookupReleaseGroup_StatusWithoutReleasesNeverCalls(t *testing.T) {
	inv := testutil.NewFakeInvoker()
	svc := newService(t, inv)

	res, err := svc.LookupReleaseGroup(context.Background(), releaseGroupID, func(r *lookup.ReleaseGroupLookup) {
		r.Status(brainz.StatusOfficial)
	})
	assert.Nil(t, res)
	assert.Equal(t, rules.ErrCodeStatusRequiresInclude, rules.ValidationCode(err))
	assert.Zero(t, inv.CallCount())
}

func TestLookupReleaseGroup_StatusWithReleases(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(200, `{"id": "938cef50-de9a-3ced-a1fe-bdfbd3bc4315", "title": "dummy"}`)
	svc := newService(t, inv)

	res, err := svc.LookupReleaseGroup(context.Background(), releaseGroupID, func(r *lookup.ReleaseGroupLookup) {
		r.Include(brainz.IncReleases).Status(brainz.StatusOfficial)
	})
	require.NoError(t, err)
	rg, ok := result.Value(res)
	require.True(t, ok)
	assert.Equal(t, "dummy", rg.Title)

	params := inv.Calls()[0].Params
	assert.Equal(t, []string{"inc", "status"}, params.Keys())
	inc, _ := params.Get(querymap.KeyInclude)
	status, _ := params.Get(querymap.KeyStatus)
	assert.Equal(t, "releases", inc)
	assert.Equal(t, "official", status)
}

func TestLookup_InvalidMbidNeverCalls(t *testing.T) {
	inv := testutil.NewFakeInvoker()
	svc := newService(t, inv)

	_, err := svc.LookupArtist(context.Background(), "not-an-mbid", nil)
	assert.Equal(t, rules.ErrCodeInvalidMbid, rules.ValidationCode(err))
	assert.Zero(t, inv.CallCount())
}

func TestLookupEvent_UnsupportedInclude(t *testing.T) {
	inv := testutil.NewFakeInvoker()
	svc := newService(t, inv)
	const id = brainz.EventMbid("e3a208ee-1fc6-4e0a-a7b5-5a6b0d0b2b8e")

	_, err := svc.LookupEvent(context.Background(), id, brainz.IncRecordings)
	assert.Equal(t, rules.ErrCodeUnsupportedInclude, rules.ValidationCode(err))
	assert.Zero(t, inv.CallCount())

	res, err := svc.LookupEvent(context.Background(), id, brainz.IncAliases, brainz.IncArtistRels)
	require.NoError(t, err)
	assert.Equal(t, result.KindSuccess, res.Kind())
	assert.Equal(t, "event/"+string(id), inv.Calls()[0].Path)
}

func TestLookup_ErrorBody(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(404, notFoundBody)
	svc := newService(t, inv)

	res, err := svc.LookupRelease(context.Background(), releaseID, nil)
	require.NoError(t, err)

	e, ok := res.(result.Error[brainz.Release])
	require.True(t, ok, "expected error result, got %T", res)
	assert.Equal(t, "404", e.Body.Code)
	assert.Equal(t, "Not found", e.Body.Help)
}

func TestLookup_UnknownErrorBody(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(404, "won't work")
	svc := newService(t, inv)

	res, err := svc.LookupRelease(context.Background(), releaseID, nil)
	require.NoError(t, err)

	exc, ok := res.(result.Exceptional[brainz.Release])
	require.True(t, ok, "expected exceptional, got %T", res)
	var unknown *result.UnknownHTTPError
	require.ErrorAs(t, exc.Cause, &unknown)
	assert.Equal(t, 404, unknown.Status)
	assert.Equal(t, []byte("won't work"), unknown.RawBody)
}

func TestLookup_CancelledContext(t *testing.T) {
	inv := testutil.NewFakeInvoker()
	obs := &recordingObserver{}
	svc := newService(t, inv, WithObserver(obs))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.LookupLabel(context.Background(), labelID, nil)
	require.NoError(t, err)
	assert.Equal(t, result.KindSuccess, res.Kind())

	res, err = svc.LookupLabel(ctx, labelID, nil)
	require.NoError(t, err)
	c, ok := res.(result.Cancelled[brainz.Label])
	require.True(t, ok, "expected cancelled, got %T", res)
	assert.ErrorIs(t, c.Cause, context.Canceled)
	assert.Equal(t, 1, inv.CallCount())
	assert.Equal(t, []string{"label/lookup/success", "label/lookup/cancelled"}, obs.calls)
}

func TestBrowseReleases(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(200, `{"release-count": 2, "release-offset": 0, "releases": [{"id": "a", "title": "A"}, {"id": "b", "title": "B"}]}`)
	svc := newService(t, inv)

	res, err := svc.BrowseReleases(context.Background(), browse.ByLabel(labelID), intPtr(25), nil, func(r *browse.ReleaseBrowse) {
		r.Include(brainz.IncLabels).Status(brainz.StatusOfficial)
	})
	require.NoError(t, err)

	list, ok := result.Value(res)
	require.True(t, ok)
	assert.Equal(t, 2, list.ReleaseCount)
	assert.Len(t, list.Releases, 2)

	call := inv.Calls()[0]
	assert.Equal(t, "release", call.Path)
	assert.Equal(t, []string{"label", "inc", "status", "limit"}, call.Params.Keys())
	v, _ := call.Params.Get("label")
	assert.Equal(t, string(labelID), v)
}

func TestBrowse_RejectedLocally(t *testing.T) {
	inv := testutil.NewFakeInvoker()
	svc := newService(t, inv)

	_, err := svc.BrowseReleases(context.Background(), browse.ByLabel(labelID), nil, nil, func(r *browse.ReleaseBrowse) {
		r.Include(brainz.IncRatings)
	})
	assert.Equal(t, rules.ErrCodeMissingCompanion, rules.ValidationCode(err))

	_, err = svc.BrowseArtists(context.Background(), browse.ByWork("bad"), nil, nil, nil)
	assert.Equal(t, rules.ErrCodeInvalidMbid, rules.ValidationCode(err))

	_, err = svc.BrowseSeries(context.Background(), nil, nil, nil, nil)
	assert.Equal(t, rules.ErrCodeInvalidMbid, rules.ValidationCode(err))
	assert.Zero(t, inv.CallCount())
}

func TestCall_Direct(t *testing.T) {
	inv := testutil.NewFakeInvoker().Respond(200, `{"id": "x", "title": "dummy"}`)
	svc := newService(t, inv)

	params, err := querymap.NewBuilder().Set(querymap.KeyInclude, "media").Build()
	require.NoError(t, err)

	res := Call[brainz.Release](context.Background(), svc, "release/"+string(releaseID), params)
	rel, ok := result.Value(res)
	require.True(t, ok)
	assert.Equal(t, "dummy", rel.Title)
	assert.Equal(t, "release/"+string(releaseID), inv.Calls()[0].Path)
}

func TestCall_TransportPanicIsExceptional(t *testing.T) {
	inv := testutil.NewFakeInvoker().Handle(func(context.Context, string, querymap.Map) (transport.Response, error) {
		panic("boom")
	})
	svc := newService(t, inv)

	res := Call[brainz.Release](context.Background(), svc, "release/"+string(releaseID), querymap.Map{})
	exc, ok := res.(result.Exceptional[brainz.Release])
	require.True(t, ok, "expected exceptional, got %T", res)
	assert.Contains(t, exc.Cause.Error(), "boom")
}

func TestService_LogsEachCall(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ids := &testutil.SequenceIDs{}
	clock := testutil.NewStepClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 250*time.Millisecond)

	inv := testutil.NewFakeInvoker().Respond(404, notFoundBody)
	svc := newService(t, inv, WithLogger(logger), WithRequestIDs(ids.Next), WithClock(clock.Now))

	_, err := svc.LookupRelease(context.Background(), releaseID, nil)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catalog call", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "release", entry["entity"])
	assert.Equal(t, "lookup", entry["operation"])
	assert.Equal(t, "error", entry["outcome"])
	assert.Equal(t, float64(250*time.Millisecond), entry["duration"])
	assert.Equal(t, "service error 404: Not found", entry["error"])
}

func TestService_MetricsCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := metrics.New(registry, metrics.Options{})

	inv := testutil.NewFakeInvoker()
	svc := newService(t, inv, WithObserver(collector))

	for i := 0; i < 3; i++ {
		_, err := svc.FindLabel(context.Background(), nil, nil, func(b *search.LabelSearch) {
			b.Label(brainz.LabelName(fmt.Sprintf("Label %d", i)))
		})
		require.NoError(t, err)
	}
	_, err := svc.LookupArtist(context.Background(), "bad", nil)
	require.Error(t, err)

	count, err := promtest.GatherAndCount(registry, "brainz_requests_total", "brainz_validation_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestService_ConcurrentCallsIndependent(t *testing.T) {
	inv := testutil.NewFakeInvoker()
	svc := newService(t, inv)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.FindWork(context.Background(), intPtr(i+1), nil, func(b *search.WorkSearch) {
				b.Work(fmt.Sprintf("Work %d", i))
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 16, inv.CallCount())
}
