package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SCRAPER_HOST", "")
	t.Setenv("SCRAPER_PORT", "")
	t.Setenv("SCRAPER_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SCRAPER_HOST", "127.0.0.1")
	t.Setenv("SCRAPER_PORT", "6001")
	t.Setenv("SCRAPER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 6001, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SCRAPER_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"valid", &Config{Host: "0.0.0.0", Port: 5001, LogLevel: "info"}, false},
		{"empty host", &Config{Host: "", Port: 5001, LogLevel: "info"}, true},
		{"port too low", &Config{Host: "0.0.0.0", Port: 0, LogLevel: "info"}, true},
		{"port too high", &Config{Host: "0.0.0.0", Port: 70000, LogLevel: "info"}, true},
		{"unknown log level", &Config{Host: "0.0.0.0", Port: 5001, LogLevel: "verbose"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
	assert.True(t, IsDevelopment())
}
