package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:         "8082",
		APIBaseURL:   "https://dev.lunchmoney.app",
		PageSize:     500,
		CacheSize:    50,
		CacheTTL:     5 * time.Minute,
		PrefsBackend: "memory",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid memory config",
			mutate: func(c *Config) {},
		},
		{
			name:   "valid sqlite config",
			mutate: func(c *Config) { c.PrefsBackend = "sqlite"; c.SQLiteDBPath = "./test.db" },
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "must be between 1 and 65535",
		},
		{
			name:        "invalid API URL scheme",
			mutate:      func(c *Config) { c.APIBaseURL = "ftp://example.com" },
			wantErr:     true,
			errorString: "must be 'http' or 'https'",
		},
		{
			name:        "page size too large",
			mutate:      func(c *Config) { c.PageSize = 5000 },
			wantErr:     true,
			errorString: "must be at most 1000",
		},
		{
			name:        "page size too small",
			mutate:      func(c *Config) { c.PageSize = 0 },
			wantErr:     true,
			errorString: "must be at least 1",
		},
		{
			name:        "cache TTL too short",
			mutate:      func(c *Config) { c.CacheTTL = time.Millisecond },
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name:        "unknown prefs backend",
			mutate:      func(c *Config) { c.PrefsBackend = "redis" },
			wantErr:     true,
			errorString: "invalid prefs backend",
		},
		{
			name:        "sqlite backend without path",
			mutate:      func(c *Config) { c.PrefsBackend = "sqlite"; c.SQLiteDBPath = "" },
			wantErr:     true,
			errorString: "database path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.errorString)
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8082" {
		t.Fatalf("default port = %s", cfg.Port)
	}
	if cfg.PageSize != 500 {
		t.Fatalf("default page size = %d", cfg.PageSize)
	}
	if cfg.PrefsBackend != "memory" {
		t.Fatalf("default prefs backend = %s", cfg.PrefsBackend)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}
