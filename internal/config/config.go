package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ferdiebergado/nftlane/internal/pkg/env"
	timex "github.com/ferdiebergado/nftlane/internal/pkg/time"
	"github.com/ferdiebergado/nftlane/internal/platform/validation"
)

type ServerOptions struct {
	Port            int            `json:"port,omitempty" env:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty" env:"MAX_BODY_BYTES" validate:"gt=0"`
}

type AppOptions struct {
	Name      string `json:"name,omitempty" validate:"required"`
	Version   string `json:"version,omitempty" validate:"required,semver"`
	StaticDir string `json:"static_dir,omitempty" env:"STATIC_DIR"`
}

type Config struct {
	Server *ServerOptions `json:"server,omitempty" validate:"required"`
	App    *AppOptions    `json:"app,omitempty" validate:"required"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("server", c.Server),
		slog.Any("app", c.App),
	)
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Server: &ServerOptions{
			Port:            8080,
			ReadTimeout:     timex.Duration{Duration: 10 * time.Second},
			WriteTimeout:    timex.Duration{Duration: 10 * time.Second},
			IdleTimeout:     timex.Duration{Duration: 60 * time.Second},
			ShutdownTimeout: timex.Duration{Duration: 10 * time.Second},
			MaxBodyBytes:    1 << 20,
		},
		App: &AppOptions{
			Name:      "nft-lane",
			Version:   "1.0.0",
			StaticDir: "static",
		},
	}
}

// Load builds the configuration from the defaults, the optional JSON file at
// cfgFile and the environment, in that order, and validates the result.
func Load(cfgFile string, validator validation.Validator) (*Config, error) {
	slog.Info("Loading config...")
	cfg := Default()

	if err := parseCfgFile(cfgFile, cfg); err != nil {
		return nil, err
	}

	if err := env.OverrideStruct(cfg); err != nil {
		return nil, fmt.Errorf("override config with env: %w", err)
	}

	if errs := validator.ValidateStruct(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %v", errs)
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string, cfg *Config) error {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("Config file not found, using defaults.", "config_file", cfgFile)
			return nil
		}
		return fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	if err := json.Unmarshal(configFile, cfg); err != nil {
		return fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return nil
}
