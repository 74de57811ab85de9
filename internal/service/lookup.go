package service

import (
	"context"

	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/browse"
	"github.com/roach88/brainz/internal/lookup"
	"github.com/roach88/brainz/internal/querymap"
	"github.com/roach88/brainz/internal/result"
)

func lookupOne[T any, M brainz.Mbid](ctx context.Context, s *Service, req *lookup.Request[M], fn func(*lookup.Request[M])) (result.Result[T], error) {
	if fn != nil {
		fn(req)
	}
	return Lookup[T](ctx, s, req.Entity(), req.Path(), req.Finalize)
}

func (s *Service) LookupArtist(ctx context.Context, mbid brainz.ArtistMbid, fn func(*lookup.ArtistLookup)) (result.Result[brainz.Artist], error) {
	return lookupOne[brainz.Artist](ctx, s, lookup.Artist(s.tables, mbid), fn)
}

func (s *Service) LookupRelease(ctx context.Context, mbid brainz.ReleaseMbid, fn func(*lookup.ReleaseLookup)) (result.Result[brainz.Release], error) {
	return lookupOne[brainz.Release](ctx, s, lookup.Release(s.tables, mbid), fn)
}

func (s *Service) LookupReleaseGroup(ctx context.Context, mbid brainz.ReleaseGroupMbid, fn func(*lookup.ReleaseGroupLookup)) (result.Result[brainz.ReleaseGroup], error) {
	return lookupOne[brainz.ReleaseGroup](ctx, s, lookup.ReleaseGroup(s.tables, mbid), fn)
}

func (s *Service) LookupLabel(ctx context.Context, mbid brainz.LabelMbid, fn func(*lookup.LabelLookup)) (result.Result[brainz.Label], error) {
	return lookupOne[brainz.Label](ctx, s, lookup.Label(s.tables, mbid), fn)
}

func (s *Service) LookupRecording(ctx context.Context, mbid brainz.RecordingMbid, fn func(*lookup.RecordingLookup)) (result.Result[brainz.Recording], error) {
	return lookupOne[brainz.Recording](ctx, s, lookup.Recording(s.tables, mbid), fn)
}

func (s *Service) LookupWork(ctx context.Context, mbid brainz.WorkMbid, fn func(*lookup.WorkLookup)) (result.Result[brainz.Work], error) {
	return lookupOne[brainz.Work](ctx, s, lookup.Work(s.tables, mbid), fn)
}

// LookupEvent fetches one event. Events accept includes only.
func (s *Service) LookupEvent(ctx context.Context, mbid brainz.EventMbid, incs ...brainz.Include) (result.Result[brainz.Event], error) {
	req := lookup.Event(s.tables, mbid).Include(incs...)
	return Lookup[brainz.Event](ctx, s, brainz.EntityEvent, req.Path(), req.Finalize)
}

// LookupCoverArt fetches the artwork listing of a release or release group.
func (s *Service) LookupCoverArt(ctx context.Context, entity brainz.Entity, mbid string) (result.Result[brainz.CoverArtRelease], error) {
	return CoverArt[brainz.CoverArtRelease](ctx, s, entity, mbid)
}

func browseOn[T any, Tg browse.Target](ctx context.Context, s *Service, req *browse.Request[Tg], limit, offset *int, fn func(*browse.Request[Tg])) (result.Result[T], error) {
	if fn != nil {
		fn(req)
	}
	return Browse[T](ctx, s, req.Entity(), func() (querymap.Map, error) {
		return req.Finalize(querymap.Paging(limit, offset)...)
	})
}

func (s *Service) BrowseReleases(ctx context.Context, on browse.ReleaseTarget, limit, offset *int, fn func(*browse.ReleaseBrowse)) (result.Result[brainz.BrowseReleaseList], error) {
	return browseOn[brainz.BrowseReleaseList](ctx, s, browse.Releases(s.tables, on), limit, offset, fn)
}

func (s *Service) BrowseArtists(ctx context.Context, on browse.ArtistTarget, limit, offset *int, fn func(*browse.ArtistBrowse)) (result.Result[brainz.BrowseArtistList], error) {
	return browseOn[brainz.BrowseArtistList](ctx, s, browse.Artists(s.tables, on), limit, offset, fn)
}

func (s *Service) BrowseSeries(ctx context.Context, on browse.SeriesTarget, limit, offset *int, fn func(*browse.SeriesBrowse)) (result.Result[brainz.SeriesList], error) {
	return browseOn[brainz.SeriesList](ctx, s, browse.Series(s.tables, on), limit, offset, fn)
}
