package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	ResendBase   string
	ResendKey    string
	BookingFrom  string
	BookingInbox string

	AllowedOrigins  []string
	RateLimitWindow time.Duration
	RateLimitMax    int

	SeedWorkers int
	CacheTTL    time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/daoxanh?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),

		ResendBase:   env("RESEND_BASE_URL", "https://api.resend.com"),
		ResendKey:    env("RESEND_API_KEY", ""),
		BookingFrom:  env("BOOKING_FROM", "onboarding@resend.dev"),
		BookingInbox: env("BOOKING_INBOX", "daoxanhecofarmdaklak@gmail.com"),

		AllowedOrigins: splitList(env("CORS_ALLOWED_ORIGINS",
			"https://daoxanh.com.vn,http://localhost:5173,http://localhost:8080")),
		RateLimitWindow: time.Duration(atoi("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		RateLimitMax:    atoi("RATE_LIMIT_MAX", 5),

		SeedWorkers: atoi("SEED_WORKERS", 8),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.ResendKey == "" {
		log.Warn().Msg("RESEND_API_KEY is empty; booking notifications will fail")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
