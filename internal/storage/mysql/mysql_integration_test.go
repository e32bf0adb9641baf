//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"daoxanh/internal/domain"
	mysqlrepo "daoxanh/internal/storage/mysql"
)

// ---------- small helpers ----------
func pstr(s string) *string        { return &s }
func pint64(i int64) *int64        { return &i }
func ptime(t time.Time) *time.Time { return &t }

// migrationsDir resolves MIGRATIONS_DIR, falling back to the repo's
// migrations/ directory next to this package.
func migrationsDir(t *testing.T) string {
	t.Helper()
	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir(t)

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("migrations dir %s is not a directory or missing", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

// ---------- the test ----------
func TestRepo_MySQL_UpsertAndQuery(t *testing.T) {
	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=daoxanh",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "daoxanh")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	repo := mysqlrepo.New(db)
	ctx := context.Background()

	// Arrange
	acc := domain.AccommodationOption{
		ID:            "homestay-an-yen",
		Name:          "Homestay An Yên",
		Description:   "Nhà sàn, vách gỗ, mái cọ",
		PriceOriginal: 1000000, PriceDiscounted: 700000,
		Unit:         "1 phòng/2 khách",
		DisplayOrder: 2, Published: true,
	}
	if err := repo.UpsertAccommodation(ctx, acc); err != nil {
		t.Fatalf("UpsertAccommodation: %v", err)
	}
	// second upsert on the same slug must update, not duplicate
	acc.PriceDiscounted = 750000
	if err := repo.UpsertAccommodation(ctx, acc); err != nil {
		t.Fatalf("UpsertAccommodation (update): %v", err)
	}

	combo := domain.ComboPackage{
		ID: "combo-a1", Name: "Gói A1", Subtitle: "Tùy chọn lưu trú",
		PriceAdult: 524000, PriceChild: 384000,
		PriceAdultOriginal:    pint64(749000),
		PriceChildOriginal:    pint64(549000),
		RequiresAccommodation: true,
		DisplayOrder:          2, Published: true,
	}
	if err := repo.UpsertComboPackage(ctx, combo); err != nil {
		t.Fatalf("UpsertComboPackage: %v", err)
	}

	trip := domain.DayTripPackage{
		ID: "daytrip-a1", Name: "Gói A1", Subtitle: "Nông trại 5 sao",
		PriceAdult: 137000, PriceChild: 112000,
		BBQPriceAdult: pint64(258000), BBQPriceChild: pint64(209000),
		DisplayOrder: 2, Published: true,
	}
	if err := repo.UpsertDayTripPackage(ctx, trip); err != nil {
		t.Fatalf("UpsertDayTripPackage: %v", err)
	}

	// one published, one draft; only the published one is readable
	published := domain.Post{
		Slug: "mot-ngay-o-nong-trai", Title: "Một ngày ở nông trại",
		Excerpt:   pstr("Trải nghiệm trọn vẹn"),
		Content:   pstr("Buổi sáng bắt đầu..."),
		Author:    pstr("Đào Xanh Eco Farm"),
		Published: true, PublishedAt: ptime(time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)),
	}
	draft := domain.Post{
		Slug: "bai-nhap", Title: "Bài nháp", Published: false,
	}
	if err := repo.UpsertPost(ctx, published); err != nil {
		t.Fatalf("UpsertPost: %v", err)
	}
	if err := repo.UpsertPost(ctx, draft); err != nil {
		t.Fatalf("UpsertPost (draft): %v", err)
	}

	// Assert
	accs, err := repo.ListAccommodations(ctx)
	if err != nil {
		t.Fatalf("ListAccommodations: %v", err)
	}
	if len(accs) != 1 || accs[0].ID != "homestay-an-yen" || accs[0].PriceDiscounted != 750000 {
		t.Fatalf("unexpected accommodations: %+v", accs)
	}

	combos, err := repo.ListComboPackages(ctx)
	if err != nil {
		t.Fatalf("ListComboPackages: %v", err)
	}
	if len(combos) != 1 || !combos[0].RequiresAccommodation {
		t.Fatalf("unexpected combos: %+v", combos)
	}
	if combos[0].PriceAdultOriginal == nil || *combos[0].PriceAdultOriginal != 749000 {
		t.Fatalf("strike-through price not round-tripped: %+v", combos[0])
	}

	trips, err := repo.ListDayTripPackages(ctx)
	if err != nil {
		t.Fatalf("ListDayTripPackages: %v", err)
	}
	if len(trips) != 1 || trips[0].BBQPriceAdult == nil || *trips[0].BBQPriceAdult != 258000 {
		t.Fatalf("unexpected day trips: %+v", trips)
	}

	page, err := repo.ListPosts(ctx, domain.PageQuery{Limit: 10})
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Slug != "mot-ngay-o-nong-trai" {
		t.Fatalf("unexpected posts page: %+v", page)
	}

	got, err := repo.GetPost(ctx, "mot-ngay-o-nong-trai")
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if got.Content == nil || *got.Content == "" {
		t.Fatalf("GetPost missing content: %+v", got)
	}

	if _, err := repo.GetPost(ctx, "bai-nhap"); err != domain.ErrNotFound {
		t.Fatalf("draft post should be invisible, got err=%v", err)
	}
}
