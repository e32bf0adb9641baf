package app_test

import (
	"context"
	"testing"
	"time"

	"daoxanh/internal/app"
	"daoxanh/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	accommodations []domain.AccommodationOption
	combos         []domain.ComboPackage
	dayTrips       []domain.DayTripPackage
	posts          domain.PostsPage
	post           domain.Post

	upserts int
}

func (f *fakeRepo) UpsertAccommodation(ctx context.Context, a domain.AccommodationOption) error {
	f.upserts++
	return nil
}
func (f *fakeRepo) UpsertComboPackage(ctx context.Context, p domain.ComboPackage) error {
	f.upserts++
	return nil
}
func (f *fakeRepo) UpsertDayTripPackage(ctx context.Context, p domain.DayTripPackage) error {
	f.upserts++
	return nil
}
func (f *fakeRepo) UpsertPost(ctx context.Context, p domain.Post) error {
	f.upserts++
	return nil
}
func (f *fakeRepo) ListAccommodations(ctx context.Context) ([]domain.AccommodationOption, error) {
	return f.accommodations, nil
}
func (f *fakeRepo) ListComboPackages(ctx context.Context) ([]domain.ComboPackage, error) {
	return f.combos, nil
}
func (f *fakeRepo) ListDayTripPackages(ctx context.Context) ([]domain.DayTripPackage, error) {
	return f.dayTrips, nil
}
func (f *fakeRepo) ListPosts(ctx context.Context, pg domain.PageQuery) (domain.PostsPage, error) {
	return f.posts, nil
}
func (f *fakeRepo) GetPost(ctx context.Context, slug string) (domain.Post, error) {
	if slug != f.post.Slug {
		return domain.Post{}, domain.ErrNotFound
	}
	return f.post, nil
}

type fakeCache struct {
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.AccommodationOption:
		*d = v.([]domain.AccommodationOption)
	case *[]domain.ComboPackage:
		*d = v.([]domain.ComboPackage)
	case *[]domain.DayTripPackage:
		*d = v.([]domain.DayTripPackage)
	case *domain.PostsPage:
		*d = v.(domain.PostsPage)
	case *domain.Post:
		*d = v.(domain.Post)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

// ---- tests ----

func TestListAccommodations_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{accommodations: domain.DefaultCatalog().Accommodations}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)

	// Miss (first time, populates cache)
	out, err := q.ListAccommodations(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 6 || out[0].ID != "lan-la-hanh-ngo" {
		t.Fatalf("unexpected accommodations: %+v", out)
	}

	// Mutate repo to ensure the second read comes from cache
	repo.accommodations = nil

	out2, err := q.ListAccommodations(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out2) != 6 {
		t.Fatalf("expected cached list, got %d items", len(out2))
	}
}

func TestGetPost_CachesBySlug(t *testing.T) {
	title := "Một ngày ở nông trại"
	repo := &fakeRepo{post: domain.Post{ID: 7, Slug: "mot-ngay-o-nong-trai", Title: title, Published: true}}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)

	p, err := q.GetPost(context.Background(), "mot-ngay-o-nong-trai")
	if err != nil || p.Title != title {
		t.Fatalf("got %+v, err %v", p, err)
	}

	repo.post.Title = "SHOULD NOT SEE THIS"
	p2, _ := q.GetPost(context.Background(), "mot-ngay-o-nong-trai")
	if p2.Title != title {
		t.Fatalf("expected cached title, got %q", p2.Title)
	}

	if _, err := q.GetPost(context.Background(), "missing"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCommandService_WriteInvalidatesCache(t *testing.T) {
	repo := &fakeRepo{combos: domain.DefaultCatalog().Combos}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)
	c := app.NewCommandService(repo, cache)

	if _, err := q.ListComboPackages(context.Background()); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	updated := domain.DefaultCatalog().Combos[0]
	updated.PriceAdult = 999000
	if err := c.SaveComboPackage(context.Background(), updated); err != nil {
		t.Fatalf("save: %v", err)
	}
	if repo.upserts != 1 {
		t.Fatalf("upserts = %d", repo.upserts)
	}

	// stale entry must be gone so the next read refetches
	repo.combos[0].PriceAdult = 999000
	out, _ := q.ListComboPackages(context.Background())
	if out[0].PriceAdult != 999000 {
		t.Fatalf("stale price %d served after write", out[0].PriceAdult)
	}
}
