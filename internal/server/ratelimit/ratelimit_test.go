package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(limit int) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  limit,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
	}
}

func TestTokenBucket_Allow(t *testing.T) {
	bucket := newTokenBucket(3, 0)

	for i := 0; i < 3; i++ {
		assert.True(t, bucket.allow(), "request %d should be allowed", i)
	}
	assert.False(t, bucket.allow(), "bucket should be empty")
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(1, 50) // one token every 20ms

	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	assert.Eventually(t, bucket.allow, time.Second, 10*time.Millisecond)
}

func TestTokenBucket_GetStatus(t *testing.T) {
	bucket := newTokenBucket(10, 1)

	remaining, reset := bucket.getStatus()
	assert.Equal(t, 10, remaining)
	assert.WithinDuration(t, time.Now(), reset, 50*time.Millisecond)

	bucket.allow()
	bucket.allow()
	remaining, reset = bucket.getStatus()
	assert.Equal(t, 8, remaining)
	assert.True(t, reset.After(time.Now().Add(time.Second)), "reset should be about two seconds away")
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(testConfig(10))
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/build-resume", "POST")
		require.True(t, allowed, "request %d", i)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := limiter.Allow("10.0.0.1", "/build-resume", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.Positive(t, info.RetryAfter)

	allowed, _ = limiter.Allow("10.0.0.2", "/build-resume", "POST")
	assert.True(t, allowed, "other clients have their own bucket")
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	config := testConfig(1)
	config.Whitelist["10.0.0.1"] = true
	config.Blacklist["10.0.0.2"] = true
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/build-resume", "POST")
		assert.True(t, allowed)
	}

	allowed, info := limiter.Allow("10.0.0.2", "/build-resume", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/build-resume", "POST")
		require.True(t, allowed)
	}
	assert.Zero(t, limiter.size())
}

func TestLimiter_BuildEndpoint(t *testing.T) {
	config := testConfig(1000)
	config.EndpointConfigs = []EndpointConfig{
		{Path: "/build-resume", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/build-resume", "POST")
		require.True(t, allowed)
		assert.Equal(t, 60, info.Limit)
	}
	allowed, _ := limiter.Allow("10.0.0.1", "/build-resume", "POST")
	assert.False(t, allowed, "burst of 2 should be exhausted")

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/health", "GET")
		assert.True(t, allowed, "health is never limited")
	}
}

func TestLimiter_UnlimitedEndpoints(t *testing.T) {
	limiter := NewLimiter(testConfig(1))
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/", "GET")
		assert.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
	assert.Zero(t, limiter.size(), "unlimited endpoints do not allocate buckets")
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(testConfig(100))
	defer limiter.Stop()

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := limiter.Allow("10.0.0.1", "/build-resume", "POST"); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	// The window refills a token every 600ms, so at most one extra slips in.
	assert.InDelta(t, 100, int(allowed.Load()), 1)
}

func TestLimiter_CleanupBuckets(t *testing.T) {
	limiter := NewLimiter(testConfig(10))
	defer limiter.Stop()

	limiter.Allow("10.0.0.1", "/build-resume", "POST")
	limiter.Allow("10.0.0.2", "/build-resume", "POST")
	require.Equal(t, 2, limiter.size())

	limiter.cleanupBuckets(time.Now().Add(-time.Minute))
	assert.Equal(t, 2, limiter.size(), "recent buckets survive")

	limiter.cleanupBuckets(time.Now().Add(time.Minute))
	assert.Zero(t, limiter.size())
}

func TestLimiter_UnmatchedPathsShareBucket(t *testing.T) {
	limiter := NewLimiter(testConfig(3))
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", fmt.Sprintf("/missing-%d", i), "GET")
		require.True(t, allowed, "request %d", i)
	}
	allowed, _ := limiter.Allow("10.0.0.1", "/missing-99", "PROPFIND")
	assert.False(t, allowed, "every unmatched path draws from the same budget")
	assert.Equal(t, 1, limiter.size())
}

func TestLimiter_PrefixMatchSharesBucket(t *testing.T) {
	config := testConfig(1000)
	config.EndpointConfigs = []EndpointConfig{
		{Path: "/build-resume/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 1},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/build-resume/a", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/build-resume/b", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 1, limiter.size())
}

func TestLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.1", "/build-resume", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(testConfig(10))
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/build-resume", Method: "POST", Limit: 60},
		{Path: "/preview/", Method: "POST", Limit: 30},
	}

	tests := []struct {
		name      string
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{name: "exact", path: "/build-resume", method: "POST", wantLimit: 60},
		{name: "prefix", path: "/preview/text", method: "POST", wantLimit: 30},
		{name: "method mismatch", path: "/build-resume", method: "GET", wantNil: true},
		{name: "health unlimited", path: "/health", method: "GET", wantLimit: 0},
		{name: "root unlimited", path: "/", method: "GET", wantLimit: 0},
		{name: "unknown", path: "/other", method: "POST", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "50")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")
	t.Setenv("RATE_LIMIT_BUILD_LIMIT", "5")
	t.Setenv("RATE_LIMIT_BUILD_BURST", "2")

	config := LoadConfig()
	assert.True(t, config.Enabled)
	assert.Equal(t, 50, config.DefaultLimit)
	assert.True(t, config.Whitelist["10.0.0.1"])
	assert.True(t, config.Whitelist["10.0.0.2"])

	build := MatchEndpoint("/build-resume", "POST", config.EndpointConfigs)
	require.NotNil(t, build)
	assert.Equal(t, 5, build.Limit)
	assert.Equal(t, 2, build.Burst)

	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}

func mapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadConfigFrom_Defaults(t *testing.T) {
	config := LoadConfigFrom(mapLookup(nil))

	assert.True(t, config.Enabled)
	assert.Equal(t, 1000, config.DefaultLimit)
	assert.Equal(t, time.Minute, config.DefaultWindow)
	assert.Equal(t, 5*time.Minute, config.CleanupInterval)
	assert.Empty(t, config.Whitelist)
	assert.Empty(t, config.Blacklist)
	assert.Equal(t, []EndpointConfig{
		{Path: "/build-resume", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
	}, config.EndpointConfigs)
	assert.Equal(t, config.EndpointConfigs, DefaultEndpointConfigs())
}

func TestLoadConfigFrom_InvalidValuesFallBack(t *testing.T) {
	config := LoadConfigFrom(mapLookup(map[string]string{
		"RATE_LIMIT_ENABLED":        "maybe",
		"RATE_LIMIT_DEFAULT_LIMIT":  "lots",
		"RATE_LIMIT_DEFAULT_WINDOW": "soon",
		"RATE_LIMIT_BUILD_WINDOW":   " 30s ",
	}))

	assert.True(t, config.Enabled)
	assert.Equal(t, 1000, config.DefaultLimit)
	assert.Equal(t, time.Minute, config.DefaultWindow)
	assert.Equal(t, 30*time.Second, config.EndpointConfigs[0].Window)
}

func TestParseIPList(t *testing.T) {
	list := parseIPList(" 10.0.0.1,,not-an-ip, ::1 ,2001:DB8::1")

	assert.Equal(t, map[string]bool{
		"10.0.0.1":    true,
		"::1":         true,
		"2001:db8::1": true,
	}, list)
	assert.Empty(t, parseIPList(""))
}
