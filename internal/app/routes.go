package app

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/nftlane/internal/health"
	"github.com/ferdiebergado/nftlane/internal/middleware"
	"github.com/ferdiebergado/nftlane/internal/nft"
	"github.com/ferdiebergado/nftlane/internal/platform/router"
)

func mountNFTRoutes(r router.Router, handler *nft.Handler, maxBodySize int64) {
	r.Post("/mint", handler.Mint,
		middleware.DecodePayload[nft.MintRequest](maxBodySize))
	r.Get("/nfts", handler.List)
	r.Get("/nft/{token_id}", handler.Get)
	r.Get("/nft/{$}", handler.Get)
	r.Post("/submit", handler.Submit, middleware.LimitBody(maxBodySize))
}

func mountHealthRoutes(r router.Router, handler *health.Handler) {
	r.Get("/health", handler.Check)
}

func mountPreflightRoutes(r router.Router) {
	r.Options("/", middleware.Preflight)
}

// mountStaticRoutes serves dir at the root when it exists.
func mountStaticRoutes(r router.Router, dir string) {
	if dir == "" {
		return
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		slog.Info("Static directory not found, skipping.", "dir", dir)
		return
	}

	slog.Info("Serving static files.", "dir", dir)
	r.Get("/", http.FileServer(http.Dir(dir)).ServeHTTP)
}
