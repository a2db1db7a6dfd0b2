package app

import (
	"github.com/ferdiebergado/nftlane/internal/nft"
	"github.com/ferdiebergado/nftlane/internal/platform/router"
)

type Provider struct {
	Router router.Router
	Store  nft.Store
}

func newProvider() *Provider {
	return &Provider{
		Router: router.NewGoexpressRouter(),
		Store:  nft.NewMemoryStore(),
	}
}
