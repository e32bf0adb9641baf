package main

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"daoxanh/internal/adapters/observability"
	redisad "daoxanh/internal/adapters/redis"
	"daoxanh/internal/app"
	"daoxanh/internal/domain"
	"daoxanh/internal/shared"
	mysqlrepo "daoxanh/internal/storage/mysql"
)

// seedTask is one named unit of work; tasks are independent and run
// concurrently under the worker semaphore.
type seedTask struct {
	name string
	run  func(context.Context) error
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	cmd := app.NewCommandService(repo, cache)

	tasks := buildTasks(cmd)

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, task := range tasks {
		task := task

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(t seedTask) {
			defer wg.Done()
			defer sem.Release(int64(1))

			if err := t.run(ctx); err != nil {
				log.Warn().Str("task", t.name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("task", t.name).Msg("seed ok")
		}(task)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

func buildTasks(cmd *app.CommandService) []seedTask {
	cat := domain.DefaultCatalog()

	var tasks []seedTask
	for _, a := range cat.Accommodations {
		a := a
		tasks = append(tasks, seedTask{
			name: "accommodation:" + a.ID,
			run:  func(ctx context.Context) error { return cmd.SaveAccommodation(ctx, a) },
		})
	}
	for _, p := range cat.Combos {
		p := p
		tasks = append(tasks, seedTask{
			name: "combo:" + p.ID,
			run:  func(ctx context.Context) error { return cmd.SaveComboPackage(ctx, p) },
		})
	}
	for _, p := range cat.DayTrips {
		p := p
		tasks = append(tasks, seedTask{
			name: "day-trip:" + p.ID,
			run:  func(ctx context.Context) error { return cmd.SaveDayTripPackage(ctx, p) },
		})
	}
	for _, p := range samplePosts() {
		p := p
		tasks = append(tasks, seedTask{
			name: "post:" + p.Slug,
			run:  func(ctx context.Context) error { return cmd.SavePost(ctx, p) },
		})
	}
	return tasks
}

func samplePosts() []domain.Post {
	pstr := func(s string) *string { return &s }
	ptime := func(t time.Time) *time.Time { return &t }

	return []domain.Post{
		{
			Slug:        "mot-ngay-o-nong-trai",
			Title:       "Một ngày ở nông trại Đào Xanh",
			Excerpt:     pstr("Trải nghiệm trọn vẹn từ sáng sớm đến hoàng hôn tại nông trại."),
			Content:     pstr("Buổi sáng bắt đầu với việc cho dê ăn và hái rau trong vườn..."),
			Author:      pstr("Đào Xanh Eco Farm"),
			Published:   true,
			PublishedAt: ptime(time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)),
		},
		{
			Slug:        "huong-dan-dat-combo",
			Title:       "Hướng dẫn chọn combo phù hợp cho gia đình",
			Excerpt:     pstr("So sánh các gói combo 2 ngày 1 đêm và gợi ý theo số lượng khách."),
			Content:     pstr("Gia đình có trẻ nhỏ nên chọn Gói A kèm lưu trú homestay..."),
			Author:      pstr("Đào Xanh Eco Farm"),
			Published:   true,
			PublishedAt: ptime(time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)),
		},
		{
			Slug:        "bbq-tai-vuon",
			Title:       "BBQ tại vườn: thực đơn và lưu ý",
			Excerpt:     pstr("Các gói trong ngày có thể nâng cấp kèm tiệc BBQ ngoài trời."),
			Content:     pstr("Thực đơn BBQ gồm gà nướng, heo quay và rau củ tự hái..."),
			Author:      pstr("Đào Xanh Eco Farm"),
			Published:   true,
			PublishedAt: ptime(time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)),
		},
	}
}
