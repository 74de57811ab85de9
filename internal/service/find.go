package service

import (
	"context"

	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/querymap"
	"github.com/roach88/brainz/internal/result"
	"github.com/roach88/brainz/internal/search"
)

// finalizer is satisfied by every entity search builder.
type finalizer interface {
	Finalize(opts ...querymap.Option) (querymap.Map, error)
}

// find builds a search with newB, lets fn populate it and runs it. A nil
// limit or offset leaves that parameter out.
func find[T any, B finalizer](ctx context.Context, s *Service, entity brainz.Entity, newB func() B, limit, offset *int, fn func(B)) (result.Result[T], error) {
	return Search[T](ctx, s, entity, func() (querymap.Map, error) {
		b := newB()
		if fn != nil {
			fn(b)
		}
		return b.Finalize(querymap.Paging(limit, offset)...)
	})
}

func (s *Service) FindArtist(ctx context.Context, limit, offset *int, fn func(*search.ArtistSearch)) (result.Result[brainz.ArtistList], error) {
	return find[brainz.ArtistList](ctx, s, brainz.EntityArtist, func() *search.ArtistSearch {
		return search.NewArtistSearch(s.tables)
	}, limit, offset, fn)
}

func (s *Service) FindRelease(ctx context.Context, limit, offset *int, fn func(*search.ReleaseSearch)) (result.Result[brainz.ReleaseList], error) {
	return find[brainz.ReleaseList](ctx, s, brainz.EntityRelease, func() *search.ReleaseSearch {
		return search.NewReleaseSearch(s.tables)
	}, limit, offset, fn)
}

func (s *Service) FindReleaseGroup(ctx context.Context, limit, offset *int, fn func(*search.ReleaseGroupSearch)) (result.Result[brainz.ReleaseGroupList], error) {
	return find[brainz.ReleaseGroupList](ctx, s, brainz.EntityReleaseGroup, func() *search.ReleaseGroupSearch {
		return search.NewReleaseGroupSearch(s.tables)
	}, limit, offset, fn)
}

func (s *Service) FindRecording(ctx context.Context, limit, offset *int, fn func(*search.RecordingSearch)) (result.Result[brainz.RecordingList], error) {
	return find[brainz.RecordingList](ctx, s, brainz.EntityRecording, func() *search.RecordingSearch {
		return search.NewRecordingSearch(s.tables)
	}, limit, offset, fn)
}

func (s *Service) FindLabel(ctx context.Context, limit, offset *int, fn func(*search.LabelSearch)) (result.Result[brainz.LabelList], error) {
	return find[brainz.LabelList](ctx, s, brainz.EntityLabel, func() *search.LabelSearch {
		return search.NewLabelSearch(s.tables)
	}, limit, offset, fn)
}

func (s *Service) FindWork(ctx context.Context, limit, offset *int, fn func(*search.WorkSearch)) (result.Result[brainz.WorkList], error) {
	return find[brainz.WorkList](ctx, s, brainz.EntityWork, func() *search.WorkSearch {
		return search.NewWorkSearch(s.tables)
	}, limit, offset, fn)
}

func (s *Service) FindTag(ctx context.Context, limit, offset *int, fn func(*search.TagSearch)) (result.Result[brainz.TagList], error) {
	return find[brainz.TagList](ctx, s, brainz.EntityTag, func() *search.TagSearch {
		return search.NewTagSearch(s.tables)
	}, limit, offset, fn)
}

// FindReleaseByName searches releases by artist and album name phrases.
func (s *Service) FindReleaseByName(ctx context.Context, artist brainz.ArtistName, album brainz.AlbumName, limit, offset *int) (result.Result[brainz.ReleaseList], error) {
	return s.FindRelease(ctx, limit, offset, func(b *search.ReleaseSearch) {
		b.Artist(artist).Release(album)
	})
}

// FindRecordingByName searches recordings by title, artist and album
// phrases.
func (s *Service) FindRecordingByName(ctx context.Context, recording brainz.RecordingTitle, artist brainz.ArtistName, album brainz.AlbumName) (result.Result[brainz.RecordingList], error) {
	return s.FindRecording(ctx, nil, nil, func(b *search.RecordingSearch) {
		b.Recording(recording).Artist(artist).Release(album)
	})
}
