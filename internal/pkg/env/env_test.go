package env_test

import (
	"reflect"
	"testing"

	"github.com/ferdiebergado/nftlane/internal/pkg/env"
)

func TestOverrideStruct(t *testing.T) {
	type serverOpts struct {
		Port         int    `env:"PORT"`
		MaxBodyBytes int64  `env:"MAX_BODY_BYTES"`
		Host         string `env:"HOST"`
	}

	type settings struct {
		StaticDir string `env:"STATIC_DIR"`
		Debug     bool   `env:"DEBUG"`
		Server    *serverOpts
	}

	got := settings{
		StaticDir: "static",
		Server: &serverOpts{
			Port:         8080,
			MaxBodyBytes: 1024,
			Host:         "localhost",
		},
	}

	t.Setenv("STATIC_DIR", "public")
	t.Setenv("DEBUG", "true")
	t.Setenv("PORT", "9090")
	t.Setenv("HOST", "")

	if err := env.OverrideStruct(&got); err != nil {
		t.Fatal(err)
	}

	want := settings{
		StaticDir: "public",
		Debug:     true,
		Server: &serverOpts{
			Port:         9090,
			MaxBodyBytes: 1024,
			Host:         "localhost",
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("env.OverrideStruct(&got) = %+v, want: %+v", got, want)
	}
}

func TestOverrideStruct_Errors(t *testing.T) {
	type opts struct {
		Port int `env:"PORT"`
	}

	t.Run("Invalid int", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		var o opts
		if err := env.OverrideStruct(&o); err == nil {
			t.Errorf("env.OverrideStruct(&o) = %v, want: error", err)
		}
	})

	t.Run("Not a pointer", func(t *testing.T) {
		if err := env.OverrideStruct(opts{}); err == nil {
			t.Errorf("env.OverrideStruct(opts{}) = %v, want: error", err)
		}
	})
}

func TestEnv(t *testing.T) {
	const fallback = "development"

	tests := []struct {
		name, envVar, envVal, fallback, val string
	}{
		{"EnvVar is set", "NFTLANE_TEST_ENV", "production", fallback, "production"},
		{"EnvVar is not set", "NFTLANE_TEST_ENV", "", fallback, fallback},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envVal != "" {
				t.Setenv(tc.envVar, tc.envVal)
			}
			val := env.Env(tc.envVar, tc.fallback)

			if val != tc.val {
				t.Errorf("env.Env(%q, %q) = %q, want: %q", tc.envVar, tc.fallback, val, tc.val)
			}
		})
	}
}
