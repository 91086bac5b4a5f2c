package config

import (
	"time"
)

// RateLimitConfig defines settings for the Redis token-bucket limiter
// guarding the gateway.  The gateway relays every request to the remote
// booking service, so the limiter primarily protects that upstream from
// a misbehaving UI loop rather than the gateway itself.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	KeyStrategy    string
	Prefix         string
	Debug          bool
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig, clamping nonsensical values to safe minimums.
func LoadRateLimitConfig() RateLimitConfig {
	def := RateLimitConfig{
		Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity:       atoiDefault(getenv("RATE_LIMIT_CAPACITY", ""), 60),
		RefillTokens:   atoiDefault(getenv("RATE_LIMIT_REFILL_TOKENS", ""), 1),
		RefillInterval: durDefault(getenv("RATE_LIMIT_REFILL_INTERVAL", ""), time.Second),
		TTL:            durDefault(getenv("RATE_LIMIT_TTL", ""), 10*time.Minute),
		KeyStrategy:    getenv("RATE_LIMIT_KEY_STRATEGY", "ip_route"),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
		Debug:          getenv("RATE_LIMIT_DEBUG", "false") == "true",
	}
	if def.Capacity < 1 {
		def.Capacity = 1
	}
	if def.RefillTokens < 1 {
		def.RefillTokens = 1
	}
	if def.RefillInterval <= 0 {
		def.RefillInterval = time.Second
	}
	minTTL := 5 * def.RefillInterval
	if def.TTL < minTTL {
		def.TTL = minTTL
	}
	return def
}

func atoiDefault(s string, d int) int {
	if s == "" {
		return d
	}
	if n := atoi(s); n != 0 || s == "0" {
		return n
	}
	return d
}

func durDefault(s string, d time.Duration) time.Duration {
	if s == "" {
		return d
	}
	if dur, err := time.ParseDuration(s); err == nil {
		return dur
	}
	return d
}
