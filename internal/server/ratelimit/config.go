package ratelimit

import (
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix starts every environment variable read by LoadConfig.
const EnvPrefix = "RATE_LIMIT_"

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window; 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LookupFunc reads one setting; it has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadConfig loads rate limiting configuration from RATE_LIMIT_* environment
// variables.
func LoadConfig() *Config {
	return LoadConfigFrom(os.LookupEnv)
}

// LoadConfigFrom loads rate limiting configuration through lookup. Unset or
// unparseable values fall back to their defaults.
func LoadConfigFrom(lookup LookupFunc) *Config {
	env := settings{lookup: lookup}
	if !env.getBool("ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    env.getInt("DEFAULT_LIMIT", 1000),
		DefaultWindow:   env.getDuration("DEFAULT_WINDOW", time.Minute),
		CleanupInterval: env.getDuration("CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(env.getString("WHITELIST")),
		Blacklist:       parseIPList(env.getString("BLACKLIST")),
		EndpointConfigs: []EndpointConfig{
			{
				Path:   "/build-resume",
				Method: "POST",
				Limit:  env.getInt("BUILD_LIMIT", 60),
				Window: env.getDuration("BUILD_WINDOW", time.Minute),
				Burst:  env.getInt("BUILD_BURST", 10),
			},
			// GET / and GET /health are unlimited; see MatchEndpoint.
		},
	}
}

// DefaultEndpointConfigs returns the endpoint limits used when no
// RATE_LIMIT_BUILD_* variable is set.
func DefaultEndpointConfigs() []EndpointConfig {
	return LoadConfigFrom(func(string) (string, bool) { return "", false }).EndpointConfigs
}

// settings reads prefixed keys and logs values it cannot parse.
type settings struct {
	lookup LookupFunc
}

func (s settings) getString(key string) string {
	value, _ := s.lookup(EnvPrefix + key)
	return strings.TrimSpace(value)
}

func (s settings) getInt(key string, fallback int) int {
	return parseOr(s, key, fallback, strconv.Atoi)
}

func (s settings) getBool(key string, fallback bool) bool {
	return parseOr(s, key, fallback, strconv.ParseBool)
}

func (s settings) getDuration(key string, fallback time.Duration) time.Duration {
	return parseOr(s, key, fallback, time.ParseDuration)
}

func parseOr[T any](s settings, key string, fallback T, parse func(string) (T, error)) T {
	value := s.getString(key)
	if value == "" {
		return fallback
	}
	parsed, err := parse(value)
	if err != nil {
		log.Printf("[rate-limit] ignoring %s%s=%q: %v", EnvPrefix, key, value, err)
		return fallback
	}
	return parsed
}

// parseIPList parses a comma-separated list of IP addresses into a set keyed
// by canonical form. Entries that are not IP addresses are skipped.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		ip := net.ParseIP(entry)
		if ip == nil {
			log.Printf("[rate-limit] ignoring invalid IP %q", entry)
			continue
		}
		result[ip.String()] = true
	}
	return result
}
