package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	OverlayDir   string
	Provider     string // static | hostaway
	HostawayBase string
	HostawayKey  string
	APIKeys      []string
	Workers      int
	CacheTTL     time.Duration
}

// defaultAPIKeys is the demo allow-list; override with API_KEYS in any real
// deployment.
var defaultAPIKeys = []string{
	"demo-api-key-12345",
	"test-api-key-67890",
	"dev-api-key-abcdef",
	"prod-api-key-xyz789",
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
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ":9100"),
		RedisAddr:    env("REDIS_ADDR", "localhost:6379"),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		OverlayDir:   env("OVERLAY_DIR", "data/overlay"),
		Provider:     env("REVIEW_PROVIDER", "static"),
		HostawayBase: env("HOSTAWAY_BASE_URL", "https://api.hostaway.example/v1"),
		HostawayKey:  env("HOSTAWAY_API_KEY", ""),
		APIKeys:      keyList(env("API_KEYS", "")),
		Workers:      atoi("WARMUP_WORKERS", 4),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.Provider == "hostaway" && c.HostawayKey == "" {
		log.Warn().Msg("HOSTAWAY_API_KEY is empty")
	}
	return c
}

func keyList(v string) []string {
	if v == "" {
		return defaultAPIKeys
	}
	var out []string
	for _, k := range strings.Split(v, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return defaultAPIKeys
	}
	return out
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
