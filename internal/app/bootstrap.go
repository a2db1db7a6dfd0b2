package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	gkenv "github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/nftlane/internal/config"
	"github.com/ferdiebergado/nftlane/internal/middleware"
	"github.com/ferdiebergado/nftlane/internal/pkg/env"
	"github.com/ferdiebergado/nftlane/internal/pkg/logging"
	"github.com/ferdiebergado/nftlane/internal/platform/validation"
)

const envFile = ".env"

func Run(baseCtx context.Context) error {
	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	appEnv := env.Env("ENV", "development")
	if appEnv != "production" {
		if err := loadEnvFile(envFile); err != nil {
			return err
		}
		appEnv = env.Env("ENV", appEnv)
	}

	logging.SetupLogger(appEnv, env.Env("LOG_LEVEL", "info"), os.Stdout)
	slog.Info("Initializing...", "env", appEnv)

	cfg, err := config.Load(env.Env("CONFIG_FILE", "config.json"), validation.NewGoPlaygroundValidator())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	api := New(cfg, newProvider(), Middlewares())
	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// Middlewares is the global middleware chain, outermost first.
func Middlewares() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CORS,
		middleware.ContextGuard,
	}
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}

	if err := gkenv.Load(path); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}
