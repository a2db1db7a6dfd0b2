package nft

import (
	"context"
	"errors"
)

type StubService struct {
	MintFunc   func(ctx context.Context, params MintParams) (NFT, error)
	SubmitFunc func(ctx context.Context, sub Submission) (SubmitResult, error)
	FindFunc   func(ctx context.Context, tokenID string) (NFT, error)
	ListFunc   func(ctx context.Context) ([]NFT, error)
	CountFunc  func(ctx context.Context) int
}

var _ Service = &StubService{}

func (s *StubService) Mint(ctx context.Context, params MintParams) (NFT, error) {
	if s.MintFunc == nil {
		return NFT{}, errors.New("Mint() not implemented by stub")
	}
	return s.MintFunc(ctx, params)
}

func (s *StubService) Submit(ctx context.Context, sub Submission) (SubmitResult, error) {
	if s.SubmitFunc == nil {
		return SubmitResult{}, errors.New("Submit() not implemented by stub")
	}
	return s.SubmitFunc(ctx, sub)
}

func (s *StubService) Find(ctx context.Context, tokenID string) (NFT, error) {
	if s.FindFunc == nil {
		return NFT{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, tokenID)
}

func (s *StubService) List(ctx context.Context) ([]NFT, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Count(ctx context.Context) int {
	if s.CountFunc == nil {
		panic("Count() not implemented by stub")
	}
	return s.CountFunc(ctx)
}

type StubStore struct {
	CreateFunc func(ctx context.Context, params CreateParams) (NFT, error)
	FindFunc   func(ctx context.Context, tokenID string) (NFT, error)
	ListFunc   func(ctx context.Context) ([]NFT, error)
	CountFunc  func(ctx context.Context) int
}

var _ Store = &StubStore{}

func (s *StubStore) Create(ctx context.Context, params CreateParams) (NFT, error) {
	if s.CreateFunc == nil {
		return NFT{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubStore) Find(ctx context.Context, tokenID string) (NFT, error) {
	if s.FindFunc == nil {
		return NFT{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, tokenID)
}

func (s *StubStore) List(ctx context.Context) ([]NFT, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubStore) Count(ctx context.Context) int {
	if s.CountFunc == nil {
		panic("Count() not implemented by stub")
	}
	return s.CountFunc(ctx)
}
