package app

import (
	"context"
	"fmt"

	"daoxanh/internal/domain"
)

// CommandService is the content write path: the seeder and the admin CMS
// both go through it so every write lands in the store and evicts the
// matching read cache.
type CommandService struct {
	repo  domain.ContentRepository
	cache domain.Cache
}

func NewCommandService(r domain.ContentRepository, cache domain.Cache) *CommandService {
	return &CommandService{repo: r, cache: cache}
}

func (s *CommandService) SaveAccommodation(ctx context.Context, a domain.AccommodationOption) error {
	if err := s.repo.UpsertAccommodation(ctx, a); err != nil {
		return fmt.Errorf("upsert accommodation %s: %w", a.ID, err)
	}
	s.invalidate(ctx, keyAccommodations)
	return nil
}

func (s *CommandService) SaveComboPackage(ctx context.Context, p domain.ComboPackage) error {
	if err := s.repo.UpsertComboPackage(ctx, p); err != nil {
		return fmt.Errorf("upsert combo package %s: %w", p.ID, err)
	}
	s.invalidate(ctx, keyComboPackages)
	return nil
}

func (s *CommandService) SaveDayTripPackage(ctx context.Context, p domain.DayTripPackage) error {
	if err := s.repo.UpsertDayTripPackage(ctx, p); err != nil {
		return fmt.Errorf("upsert day-trip package %s: %w", p.ID, err)
	}
	s.invalidate(ctx, keyDayTrips)
	return nil
}

func (s *CommandService) SavePost(ctx context.Context, p domain.Post) error {
	if err := s.repo.UpsertPost(ctx, p); err != nil {
		return fmt.Errorf("upsert post %s: %w", p.Slug, err)
	}
	s.invalidate(ctx, postKey(p.Slug))
	// list caches exist per limit; evict the common page sizes
	for _, lim := range []int{10, 20, 50} {
		s.invalidate(ctx, postsKey(lim))
	}
	return nil
}

func (s *CommandService) invalidate(ctx context.Context, key string) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, key)
	}
}
