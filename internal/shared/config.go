package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	StorageDriver string // memory | mysql
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	MatchBase     string
	MatchKey      string
	MatchTimeout  time.Duration
	AuthSecret    string
	SeedDemo      bool
	SeedFile      string
	Workers       int
	CacheTTL      time.Duration
}

func Load() Config {
	// Local development convenience; absence of .env is not an error.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		StorageDriver: env("STORAGE_DRIVER", "memory"),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/myroomate?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		MatchBase:     env("SMARTMATCH_BASE_URL", "https://suggest.myroomate.example"),
		MatchKey:      env("SMARTMATCH_API_KEY", ""),
		MatchTimeout:  time.Duration(atoi("SMARTMATCH_TIMEOUT_SECONDS", 15)) * time.Second,
		AuthSecret:    env("AUTH_JWT_SECRET", ""),
		SeedDemo:      env("SEED_DEMO", "false") == "true",
		SeedFile:      env("SEED_FILE", "seed/listings.json"),
		Workers:       atoi("SEED_WORKERS", 8),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.AuthSecret == "" {
		log.Warn().Msg("AUTH_JWT_SECRET is empty; owner endpoints will reject every token")
	}
	if c.MatchKey == "" {
		log.Warn().Msg("SMARTMATCH_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
