package config

import (
	"sync"
	"testing"

	"github.com/MKhiriev/go-server-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCredential = models.NewCredential("test-key", "test-cert")

// ── defaults ──────────────────────────────────────────────────────────────────

// TestServerConfigBuilder_Defaults verifies that a builder with only host and
// port fills every optional field with its default.
func TestServerConfigBuilder_Defaults(t *testing.T) {
	tests := []struct {
		name string
		host string
		port uint16
	}{
		{name: "localhost", host: "localhost", port: 8080},
		{name: "port zero", host: "0.0.0.0", port: 0},
		{name: "max port", host: "example.com", port: 65535},
		{name: "empty host is not rejected", host: "", port: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewServerConfigBuilder(tt.host, tt.port).Build()

			assert.Equal(t, tt.host, cfg.Host())
			assert.Equal(t, tt.port, cfg.Port())
			_, ok := cfg.Credential()
			assert.False(t, ok)
			assert.Equal(t, DefaultHotReload, cfg.HotReloadEnabled())
			assert.Equal(t, DefaultTimeoutMillis, cfg.TimeoutMillis())
			assert.Equal(t, uint32(2000), cfg.TimeoutMillis())
		})
	}
}

// ── examples ──────────────────────────────────────────────────────────────────

func TestServerConfigBuilder_Examples(t *testing.T) {
	tests := []struct {
		name     string
		build    func() models.ServerConfig
		expected models.ServerConfig
	}{
		{
			name: "plain",
			build: func() models.ServerConfig {
				return NewServerConfigBuilder("localhost", 8080).Build()
			},
			expected: models.NewServerConfig("localhost", 8080, nil, false, 2000),
		},
		{
			name: "with credential",
			build: func() models.ServerConfig {
				return NewServerConfigBuilder("localhost", 8080).
					WithCredential(testCredential).
					Build()
			},
			expected: models.NewServerConfig("localhost", 8080, &testCredential, false, 2000),
		},
		{
			name: "credential, hot reload and timeout",
			build: func() models.ServerConfig {
				return NewServerConfigBuilder("localhost", 8080).
					WithCredential(testCredential).
					WithHotReload(true).
					WithTimeout(5000).
					Build()
			},
			expected: models.NewServerConfig("localhost", 8080, &testCredential, true, 5000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.build())
		})
	}
}

// ── last write wins ───────────────────────────────────────────────────────────

func TestServerConfigBuilder_LastWriteWins(t *testing.T) {
	other := models.NewCredential("other-key", "other-cert")

	t.Run("credential", func(t *testing.T) {
		cfg := NewServerConfigBuilder("localhost", 8080).
			WithCredential(testCredential).
			WithCredential(other).
			Build()

		got, ok := cfg.Credential()
		require.True(t, ok)
		assert.Equal(t, other, got)
	})

	t.Run("hot reload", func(t *testing.T) {
		cfg := NewServerConfigBuilder("localhost", 8080).
			WithHotReload(true).
			WithHotReload(false).
			Build()

		assert.False(t, cfg.HotReloadEnabled())
	})

	t.Run("timeout", func(t *testing.T) {
		cfg := NewServerConfigBuilder("localhost", 8080).
			WithTimeout(100).
			WithTimeout(0).
			Build()

		// zero is recorded as is, not replaced by the default
		assert.Equal(t, uint32(0), cfg.TimeoutMillis())
	})
}

// ── finalization ──────────────────────────────────────────────────────────────

// TestServerConfigBuilder_BuildIsIdempotent verifies that building twice
// without changes yields equal configs.
func TestServerConfigBuilder_BuildIsIdempotent(t *testing.T) {
	b := NewServerConfigBuilder("localhost", 8080).
		WithCredential(testCredential).
		WithTimeout(5000)

	first := b.Build()
	second := b.Build()

	assert.Equal(t, first, second)
	assert.True(t, first == second)
}

// TestServerConfigBuilder_OrderIndependent verifies that setters for distinct
// fields commute.
func TestServerConfigBuilder_OrderIndependent(t *testing.T) {
	base := NewServerConfigBuilder("localhost", 8080)

	setters := map[string]func(ServerConfigBuilder) ServerConfigBuilder{
		"credential": func(b ServerConfigBuilder) ServerConfigBuilder { return b.WithCredential(testCredential) },
		"hot reload": func(b ServerConfigBuilder) ServerConfigBuilder { return b.WithHotReload(true) },
		"timeout":    func(b ServerConfigBuilder) ServerConfigBuilder { return b.WithTimeout(5000) },
	}
	orders := [][]string{
		{"credential", "hot reload", "timeout"},
		{"credential", "timeout", "hot reload"},
		{"hot reload", "credential", "timeout"},
		{"hot reload", "timeout", "credential"},
		{"timeout", "credential", "hot reload"},
		{"timeout", "hot reload", "credential"},
	}

	expected := models.NewServerConfig("localhost", 8080, &testCredential, true, 5000)
	for _, order := range orders {
		b := base
		for _, name := range order {
			b = setters[name](b)
		}
		assert.Equal(t, expected, b.Build(), "order %v", order)
	}
}

// ── value semantics ───────────────────────────────────────────────────────────

// TestServerConfigBuilder_SettersDoNotMutateReceiver verifies that every
// setter returns a new builder and leaves the original untouched.
func TestServerConfigBuilder_SettersDoNotMutateReceiver(t *testing.T) {
	base := NewServerConfigBuilder("localhost", 8080)

	_ = base.WithCredential(testCredential)
	_ = base.WithHotReload(true)
	_ = base.WithTimeout(5000)

	assert.Equal(t, models.NewServerConfig("localhost", 8080, nil, false, 2000), base.Build())
}

// TestServerConfigBuilder_Branching verifies that two configs branched from
// one base builder do not affect each other.
func TestServerConfigBuilder_Branching(t *testing.T) {
	base := NewServerConfigBuilder("localhost", 8443).WithHotReload(true)

	secure := base.WithCredential(testCredential).WithTimeout(100)
	plain := base.WithTimeout(200)

	secureCfg := secure.Build()
	plainCfg := plain.Build()

	assert.True(t, secureCfg.TLSEnabled())
	assert.Equal(t, uint32(100), secureCfg.TimeoutMillis())
	assert.False(t, plainCfg.TLSEnabled())
	assert.Equal(t, uint32(200), plainCfg.TimeoutMillis())
	assert.True(t, plainCfg.HotReloadEnabled())
}

// TestServerConfigBuilder_ReuseAfterBuild verifies that changing a builder
// after Build does not alter the config already produced.
func TestServerConfigBuilder_ReuseAfterBuild(t *testing.T) {
	b := NewServerConfigBuilder("localhost", 8080)
	cfg := b.Build()

	b = b.WithTimeout(9000).WithHotReload(true)

	assert.Equal(t, uint32(2000), cfg.TimeoutMillis())
	assert.False(t, cfg.HotReloadEnabled())
	assert.Equal(t, uint32(9000), b.Build().TimeoutMillis())
}

// TestServerConfigBuilder_ConcurrentUse verifies that a shared base builder
// can be extended from many goroutines. Run with -race.
func TestServerConfigBuilder_ConcurrentUse(t *testing.T) {
	base := NewServerConfigBuilder("localhost", 8080).WithCredential(testCredential)

	const workers = 16
	results := make([]models.ServerConfig, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = base.WithTimeout(uint32(i + 1)).Build()
		}()
	}
	wg.Wait()

	for i, cfg := range results {
		assert.Equal(t, uint32(i+1), cfg.TimeoutMillis())
		assert.True(t, cfg.TLSEnabled())
	}
	assert.Equal(t, DefaultTimeoutMillis, base.Build().TimeoutMillis())
}
