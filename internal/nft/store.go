package nft

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"
)

type CreateParams struct {
	TokenID   TokenID
	Owner     string
	Metadata  json.RawMessage
	CreatedAt time.Time
}

// MemoryStore holds every minted NFT for the lifetime of the process.
//
// The table, the insertion order and the id counter share one mutex so that
// id generation, the existence check and the insert are a single step.
type MemoryStore struct {
	mu     sync.Mutex
	nfts   map[string]NFT
	order  []string
	nextID uint64
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nfts:   make(map[string]NFT),
		nextID: 1,
	}
}

// Create inserts a new NFT unless its id is taken. An empty TokenID is
// replaced by the next counter value; the counter advances even if the
// generated id turns out to be taken by an explicit mint.
func (s *MemoryStore) Create(_ context.Context, params CreateParams) (NFT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokenID := string(params.TokenID)
	if params.TokenID.IsZero() {
		tokenID = strconv.FormatUint(s.nextID, 10)
		s.nextID++
	}

	if _, ok := s.nfts[tokenID]; ok {
		return NFT{}, &DuplicateError{TokenID: tokenID}
	}

	n := NFT{
		TokenID:   tokenID,
		Owner:     params.Owner,
		Metadata:  bytes.Clone(params.Metadata),
		CreatedAt: params.CreatedAt,
	}
	s.nfts[tokenID] = n
	s.order = append(s.order, tokenID)

	return n, nil
}

func (s *MemoryStore) Find(_ context.Context, tokenID string) (NFT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nfts[tokenID]
	if !ok {
		return NFT{}, ErrNotFound
	}
	return n, nil
}

// List returns the stored NFTs in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]NFT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nfts := make([]NFT, 0, len(s.order))
	for _, id := range s.order {
		nfts = append(nfts, s.nfts[id])
	}
	return nfts, nil
}

func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.nfts)
}
