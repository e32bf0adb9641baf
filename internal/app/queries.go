package app

import (
	"context"
	"fmt"
	"time"

	"daoxanh/internal/domain"
)

// QueryService serves the public content pages: read-through cached lists of
// lodging options, packages and blog posts.
type QueryService struct {
	repo     domain.ContentRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.ContentRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

const (
	keyAccommodations = "content:accommodations"
	keyComboPackages  = "content:packages:combo"
	keyDayTrips       = "content:packages:day-trip"
)

func postsKey(limit int) string  { return fmt.Sprintf("content:posts:%d", limit) }
func postKey(slug string) string { return "content:post:" + slug }

func (s *QueryService) ListAccommodations(ctx context.Context) ([]domain.AccommodationOption, error) {
	var out []domain.AccommodationOption
	if ok, _ := s.cache.Get(ctx, keyAccommodations, &out); ok {
		return out, nil
	}
	out, err := s.repo.ListAccommodations(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, keyAccommodations, copySlice(out), int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) ListComboPackages(ctx context.Context) ([]domain.ComboPackage, error) {
	var out []domain.ComboPackage
	if ok, _ := s.cache.Get(ctx, keyComboPackages, &out); ok {
		return out, nil
	}
	out, err := s.repo.ListComboPackages(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, keyComboPackages, copySlice(out), int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) ListDayTripPackages(ctx context.Context) ([]domain.DayTripPackage, error) {
	var out []domain.DayTripPackage
	if ok, _ := s.cache.Get(ctx, keyDayTrips, &out); ok {
		return out, nil
	}
	out, err := s.repo.ListDayTripPackages(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, keyDayTrips, copySlice(out), int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) ListPosts(ctx context.Context, pg domain.PageQuery) (domain.PostsPage, error) {
	key := postsKey(pg.Limit)
	var out domain.PostsPage
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out, err := s.repo.ListPosts(ctx, pg)
	if err != nil {
		return domain.PostsPage{}, err
	}
	// copy before caching to avoid aliasing the repo's backing array
	cached := domain.PostsPage{Items: copySlice(out.Items)}
	_ = s.cache.Set(ctx, key, cached, int(s.cacheTTL.Seconds()))
	return cached, nil
}

func (s *QueryService) GetPost(ctx context.Context, slug string) (domain.Post, error) {
	key := postKey(slug)
	var p domain.Post
	if ok, _ := s.cache.Get(ctx, key, &p); ok {
		return p, nil
	}
	p, err := s.repo.GetPost(ctx, slug)
	if err != nil {
		return domain.Post{}, err
	}
	_ = s.cache.Set(ctx, key, p, int(s.cacheTTL.Seconds()))
	return p, nil
}

func copySlice[T any](in []T) []T {
	if len(in) == 0 {
		return in
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
