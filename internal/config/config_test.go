package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("missing file reported as existing")
	}
	if cfg.Basis.BaseURL != defaultBasisBaseURL {
		t.Errorf("base URL = %q", cfg.Basis.BaseURL)
	}
	if cfg.Basis.Version != "1.4" {
		t.Errorf("version = %q", cfg.Basis.Version)
	}
	if cfg.Server.Bind != defaultServerBind {
		t.Errorf("bind = %q", cfg.Server.Bind)
	}
	if len(cfg.Encoders) != 11 {
		t.Errorf("default roster has %d encoders, want 11", len(cfg.Encoders))
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[basis]
base_url = "http://example.test/basis/"
version = "2.0"

[server]
bind = "0.0.0.0:8080"

[[encoders]]
name = "Studio A"
id = "abc123"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Basis.BaseURL != "http://example.test/basis/" {
		t.Errorf("base URL = %q", cfg.Basis.BaseURL)
	}
	if cfg.Basis.Version != "2.0" {
		t.Errorf("version = %q", cfg.Basis.Version)
	}
	if len(cfg.Encoders) != 1 || cfg.Encoders[0].ID != "abc123" {
		t.Errorf("encoders = %+v", cfg.Encoders)
	}
	// Untouched sections keep their defaults.
	if cfg.Basis.TimeoutSeconds != defaultBasisTimeoutSecs {
		t.Errorf("timeout = %d", cfg.Basis.TimeoutSeconds)
	}
}

func TestLoadEnvOverridesBaseURL(t *testing.T) {
	t.Setenv(basisBaseURLEnv, "http://override.test/basis/")

	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Basis.BaseURL != "http://override.test/basis/" {
		t.Errorf("base URL = %q", cfg.Basis.BaseURL)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "relative base url",
			mutate: func(c *Config) { c.Basis.BaseURL = "basis/" },
			want:   "basis.base_url",
		},
		{
			name:   "empty bind",
			mutate: func(c *Config) { c.Server.Bind = "" },
			want:   "server.bind",
		},
		{
			name:   "bind without port",
			mutate: func(c *Config) { c.Server.Bind = "localhost" },
			want:   "server.bind",
		},
		{
			name: "duplicate encoder id",
			mutate: func(c *Config) {
				c.Encoders = []Encoder{{Name: "A", ID: "x"}, {Name: "B", ID: "x"}}
			},
			want: "duplicated",
		},
		{
			name:   "encoder without id",
			mutate: func(c *Config) { c.Encoders = []Encoder{{Name: "A"}} },
			want:   "encoders[0].id",
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			want:   "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Encoders = defaultEncoders()
			cfg.normalizeLogging()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/exports")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "exports") {
		t.Errorf("ExpandPath = %q", got)
	}
}
