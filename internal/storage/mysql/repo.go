package mysql

import (
	"context"
	"database/sql"

	"daoxanh/internal/domain"
)

func valInt64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}
func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func nullToPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
func nullStrToPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertAccommodation(ctx context.Context, a domain.AccommodationOption) error {
	_, err := r.db.ExecContext(ctx, upsertAccommodationSQL,
		a.ID,
		a.Name,
		a.Description,
		a.PriceOriginal,
		a.PriceDiscounted,
		a.Unit,
		a.DisplayOrder,
		a.Published,
	)
	return err
}

func (r *Repo) UpsertComboPackage(ctx context.Context, p domain.ComboPackage) error {
	_, err := r.db.ExecContext(ctx, upsertComboPackageSQL,
		p.ID,
		p.Name,
		p.Subtitle,
		p.PriceAdult,
		p.PriceChild,
		valInt64(p.PriceAdultOriginal),
		valInt64(p.PriceChildOriginal),
		p.RequiresAccommodation,
		p.DisplayOrder,
		p.Published,
	)
	return err
}

func (r *Repo) UpsertDayTripPackage(ctx context.Context, p domain.DayTripPackage) error {
	_, err := r.db.ExecContext(ctx, upsertDayTripPackageSQL,
		p.ID,
		p.Name,
		p.Subtitle,
		p.PriceAdult,
		p.PriceChild,
		valInt64(p.BBQPriceAdult),
		valInt64(p.BBQPriceChild),
		p.DisplayOrder,
		p.Published,
	)
	return err
}

func (r *Repo) UpsertPost(ctx context.Context, p domain.Post) error {
	var publishedAt any
	if p.PublishedAt != nil {
		publishedAt = *p.PublishedAt
	}
	_, err := r.db.ExecContext(ctx, upsertPostSQL,
		p.Slug,
		p.Title,
		valStr(p.Excerpt),
		valStr(p.Content),
		valStr(p.CoverImage),
		valStr(p.Author),
		p.Published,
		publishedAt,
	)
	return err
}

func (r *Repo) ListAccommodations(ctx context.Context) ([]domain.AccommodationOption, error) {
	rows, err := r.db.QueryContext(ctx, listAccommodationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AccommodationOption
	for rows.Next() {
		var a domain.AccommodationOption
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Description,
			&a.PriceOriginal, &a.PriceDiscounted, &a.Unit,
			&a.DisplayOrder, &a.Published,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) ListComboPackages(ctx context.Context) ([]domain.ComboPackage, error) {
	rows, err := r.db.QueryContext(ctx, listComboPackagesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ComboPackage
	for rows.Next() {
		var p domain.ComboPackage
		var adultOrig, childOrig sql.NullInt64
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Subtitle,
			&p.PriceAdult, &p.PriceChild,
			&adultOrig, &childOrig,
			&p.RequiresAccommodation,
			&p.DisplayOrder, &p.Published,
		); err != nil {
			return nil, err
		}
		p.PriceAdultOriginal = nullToPtr(adultOrig)
		p.PriceChildOriginal = nullToPtr(childOrig)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) ListDayTripPackages(ctx context.Context) ([]domain.DayTripPackage, error) {
	rows, err := r.db.QueryContext(ctx, listDayTripPackagesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DayTripPackage
	for rows.Next() {
		var p domain.DayTripPackage
		var bbqAdult, bbqChild sql.NullInt64
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Subtitle,
			&p.PriceAdult, &p.PriceChild,
			&bbqAdult, &bbqChild,
			&p.DisplayOrder, &p.Published,
		); err != nil {
			return nil, err
		}
		p.BBQPriceAdult = nullToPtr(bbqAdult)
		p.BBQPriceChild = nullToPtr(bbqChild)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) ListPosts(ctx context.Context, pg domain.PageQuery) (domain.PostsPage, error) {
	limit := pg.Limit
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, listPostsSQL, limit)
	if err != nil {
		return domain.PostsPage{}, err
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		var p domain.Post
		var excerpt, cover, author sql.NullString
		var publishedAt sql.NullTime
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.Title,
			&excerpt, &cover, &author,
			&p.Published, &publishedAt,
		); err != nil {
			return domain.PostsPage{}, err
		}
		p.Excerpt = nullStrToPtr(excerpt)
		p.CoverImage = nullStrToPtr(cover)
		p.Author = nullStrToPtr(author)
		if publishedAt.Valid {
			t := publishedAt.Time
			p.PublishedAt = &t
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return domain.PostsPage{}, err
	}
	return domain.PostsPage{Items: out}, nil
}

func (r *Repo) GetPost(ctx context.Context, slug string) (domain.Post, error) {
	row := r.db.QueryRowContext(ctx, getPostSQL, slug)

	var p domain.Post
	var excerpt, content, cover, author sql.NullString
	var publishedAt sql.NullTime
	if err := row.Scan(
		&p.ID, &p.Slug, &p.Title,
		&excerpt, &content, &cover, &author,
		&p.Published, &publishedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.Post{}, domain.ErrNotFound
		}
		return domain.Post{}, err
	}
	p.Excerpt = nullStrToPtr(excerpt)
	p.Content = nullStrToPtr(content)
	p.CoverImage = nullStrToPtr(cover)
	p.Author = nullStrToPtr(author)
	if publishedAt.Valid {
		t := publishedAt.Time
		p.PublishedAt = &t
	}
	return p, nil
}
