package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "daoxanh/internal/adapters/http_server"
	"daoxanh/internal/adapters/observability"
	"daoxanh/internal/adapters/ratelimit"
	redisad "daoxanh/internal/adapters/redis"
	"daoxanh/internal/adapters/resend"
	"daoxanh/internal/app"
	"daoxanh/internal/domain"
	"daoxanh/internal/shared"
	mysqlrepo "daoxanh/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(repo, cache, cfg.CacheTTL)

	mailer, err := resend.New(cfg.ResendBase, cfg.ResendKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Resend client")
	}
	b := app.NewBookingService(domain.DefaultCatalog(), mailer, cfg.BookingFrom, cfg.BookingInbox)
	limiter := ratelimit.New(cfg.RateLimitWindow, cfg.RateLimitMax)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:              q,
		B:              b,
		Limiter:        limiter,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
