// Package health reports liveness and the size of the minted table.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/ferdiebergado/nftlane/internal/pkg/web"
)

const StatusOK = "OK"

// Counter reports how many NFTs have been minted.
type Counter interface {
	Count(ctx context.Context) int
}

type Handler struct {
	counter Counter
	service string
	version string
	now     func() time.Time
}

func NewHandler(counter Counter, service, version string) *Handler {
	return &Handler{
		counter: counter,
		service: service,
		version: version,
		now:     time.Now,
	}
}

type Response struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	Service    string    `json:"service"`
	Version    string    `json:"version"`
	NFTsMinted int       `json:"nfts_minted"`
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	web.OK(w, &Response{
		Status:     StatusOK,
		Timestamp:  h.now().UTC(),
		Service:    h.service,
		Version:    h.version,
		NFTsMinted: h.counter.Count(r.Context()),
	})
}
