package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferdiebergado/nftlane/internal/config"
	"github.com/ferdiebergado/nftlane/internal/platform/validation"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STATIC_DIR", "")
	t.Setenv("MAX_BODY_BYTES", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.json"), validation.NewGoPlaygroundValidator())
	if err != nil {
		t.Fatalf("config.Load() = %v, want: %v", err, nil)
	}

	want := config.Default()
	if cfg.Server.Port != want.Server.Port {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, want.Server.Port)
	}
	if cfg.App.Name != "nft-lane" || cfg.App.Version != "1.0.0" {
		t.Errorf("cfg.App = %+v, want name nft-lane and version 1.0.0", cfg.App)
	}
	if cfg.Server.MaxBodyBytes != 1<<20 {
		t.Errorf("cfg.Server.MaxBodyBytes = %d, want: %d", cfg.Server.MaxBodyBytes, 1<<20)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"port": 3000, "read_timeout": "5s"},
		"app": {"static_dir": "public"}
	}`)

	t.Setenv("PORT", "9090")
	t.Setenv("STATIC_DIR", "")
	t.Setenv("MAX_BODY_BYTES", "")

	cfg, err := config.Load(path, validation.NewGoPlaygroundValidator())
	if err != nil {
		t.Fatalf("config.Load(%q) = %v, want: %v", path, err, nil)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("cfg.Server.ReadTimeout = %v, want: %v", cfg.Server.ReadTimeout.Duration, 5*time.Second)
	}
	if cfg.Server.WriteTimeout.Duration != 10*time.Second {
		t.Errorf("cfg.Server.WriteTimeout = %v, want: %v", cfg.Server.WriteTimeout.Duration, 10*time.Second)
	}
	if cfg.App.StaticDir != "public" {
		t.Errorf("cfg.App.StaticDir = %q, want: %q", cfg.App.StaticDir, "public")
	}
	if cfg.App.Name != "nft-lane" {
		t.Errorf("cfg.App.Name = %q, want: %q", cfg.App.Name, "nft-lane")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, content, port string
	}{
		{"Malformed json", `{"server":`, ""},
		{"Port out of range", `{"server": {"port": 70000}}`, ""},
		{"Port from env not a number", `{}`, "http"},
		{"Missing app section", `{"app": null}`, ""},
		{"Bad version", `{"app": {"version": "latest"}}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			t.Setenv("STATIC_DIR", "")
			t.Setenv("MAX_BODY_BYTES", "")

			path := writeConfig(t, tt.content)
			if _, err := config.Load(path, validation.NewGoPlaygroundValidator()); err == nil {
				t.Errorf("config.Load(%q) = %v, want: error", path, err)
			}
		})
	}
}

func TestLoad_ValidatorReceivesMergedConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STATIC_DIR", "assets")
	t.Setenv("MAX_BODY_BYTES", "")

	var seen *config.Config
	stub := &validation.StubValidator{
		ValidateStructFunc: func(s any) map[string]string {
			seen, _ = s.(*config.Config)
			return map[string]string{"port": "port must be at least 1."}
		},
	}

	path := writeConfig(t, `{"server": {"port": 4000}}`)
	if _, err := config.Load(path, stub); err == nil {
		t.Fatalf("config.Load(%q) = %v, want: error", path, err)
	}

	if seen == nil {
		t.Fatal("validator was not called with *config.Config")
	}
	if seen.Server.Port != 4000 {
		t.Errorf("seen.Server.Port = %d, want: %d", seen.Server.Port, 4000)
	}
	if seen.App.StaticDir != "assets" {
		t.Errorf("seen.App.StaticDir = %q, want: %q", seen.App.StaticDir, "assets")
	}
}
