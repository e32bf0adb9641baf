package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// ContentRepository is the slug-indexed content store behind the public
// pages and the catalog seeder.
type ContentRepository interface {
	// Write paths (seeder / admin CMS)
	UpsertAccommodation(ctx context.Context, a AccommodationOption) error
	UpsertComboPackage(ctx context.Context, p ComboPackage) error
	UpsertDayTripPackage(ctx context.Context, p DayTripPackage) error
	UpsertPost(ctx context.Context, p Post) error

	// Read paths (published records only, display order)
	ListAccommodations(ctx context.Context) ([]AccommodationOption, error)
	ListComboPackages(ctx context.Context) ([]ComboPackage, error)
	ListDayTripPackages(ctx context.Context) ([]DayTripPackage, error)
	ListPosts(ctx context.Context, pg PageQuery) (PostsPage, error)
	GetPost(ctx context.Context, slug string) (Post, error)
}

// Mailer dispatches one rendered notification. Returns the provider's
// message id when it reports one.
type Mailer interface {
	Send(ctx context.Context, m Email) (string, error)
}

type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
