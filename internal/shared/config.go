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
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration

	CatalogBase string
	CatalogKey  string
	CatalogRPS  int
	// PlaceIDs restricts ingestion to these ids; empty means the whole catalog index.
	PlaceIDs      []string
	IngestWorkers int

	ScoreWorkers int
	TagVocabPath string

	RateLimitPerMin int
	CORSOrigins     []string
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/planner?parseTime=true&charset=utf8mb4&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 86400)) * time.Second,

		CatalogBase:   env("CATALOG_BASE_URL", "http://localhost:9000/v1"),
		CatalogKey:    env("CATALOG_API_KEY", ""),
		CatalogRPS:    atoi("CATALOG_RPS", 5),
		PlaceIDs:      list("PLACE_IDS"),
		IngestWorkers: atoi("INGEST_WORKERS", 8),

		ScoreWorkers: atoi("SCORE_WORKERS", 8),
		TagVocabPath: env("TAG_VOCAB_PATH", ""),

		RateLimitPerMin: atoi("RATE_LIMIT_PER_MIN", 600),
		CORSOrigins:     list("CORS_ORIGINS"),
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// list splits a comma separated variable, dropping blanks.
func list(k string) []string {
	var out []string
	for _, s := range strings.Split(os.Getenv(k), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
