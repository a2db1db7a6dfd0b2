package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/nftlane/internal/config"
	"github.com/ferdiebergado/nftlane/internal/health"
	"github.com/ferdiebergado/nftlane/internal/nft"
	"github.com/ferdiebergado/nftlane/internal/platform/router"
)

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	router          router.Router
	store           nft.Store
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	nftService := nft.NewService(a.store)
	nftHandler := nft.NewHandler(nftService)
	mountNFTRoutes(a.router, nftHandler, a.config.Server.MaxBodyBytes)

	healthHandler := health.NewHandler(nftService, a.config.App.Name, a.config.App.Version)
	mountHealthRoutes(a.router, healthHandler)

	mountPreflightRoutes(a.router)
	mountStaticRoutes(a.router, a.config.App.StaticDir)
}

// Handler returns the fully wired router.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Start serves until ctx is done or the listener fails.
func (a *App) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// New wires the application. Middlewares are registered before any route.
func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	app := &App{
		config:          cfg,
		router:          provider.Router,
		store:           provider.Store,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
	app.registerMiddlewares()
	app.setupRoutes()

	return app
}
