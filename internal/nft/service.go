package nft

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"
)

// Store is the storage contract for minted NFTs.
type Store interface {
	Create(ctx context.Context, params CreateParams) (NFT, error)
	Find(ctx context.Context, tokenID string) (NFT, error)
	List(ctx context.Context) ([]NFT, error)
	Count(ctx context.Context) int
}

type MintParams struct {
	TokenID  TokenID
	Metadata json.RawMessage
	Owner    *string
}

// Submission is a raw payload forwarded by an upstream lane together with its
// out-of-band hints.
type Submission struct {
	Payload     []byte
	Source      string
	ContentType string
	User        string
	Timestamp   string
}

type SubmitResult struct {
	BytesReceived int
	// TokenID is set when the payload was recognized as a mint request.
	TokenID string
	Minted  bool
	Skipped bool
}

type service struct {
	store Store
	now   func() time.Time
}

var _ Service = (*service)(nil)

type ServiceOption func(*service)

// WithClock replaces the clock used to stamp new records.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		s.now = now
	}
}

func NewService(store Store, opts ...ServiceOption) Service {
	svc := &service{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) Mint(ctx context.Context, params MintParams) (NFT, error) {
	owner := DefaultOwner
	if params.Owner != nil {
		owner = *params.Owner
	}

	n, err := s.create(ctx, params.TokenID, owner, params.Metadata)
	if err != nil {
		return NFT{}, err
	}

	slog.Info("Minted NFT.", "token_id", n.TokenID, "owner", n.Owner)
	return n, nil
}

// Submit accepts any payload. Payloads that decode as a JSON object with a
// token_id or metadata key are minted; a taken token id is skipped rather than
// reported. Everything else is acknowledged as opaque data.
func (s *service) Submit(ctx context.Context, sub Submission) (SubmitResult, error) {
	result := SubmitResult{BytesReceived: len(sub.Payload)}

	source := sub.Source
	if source == "" {
		source = "unknown source"
	}
	slog.Info("Received submission.", "bytes", result.BytesReceived, "source", source,
		"content_type", sub.ContentType, "timestamp", sub.Timestamp)

	req, ok := parseMintSubmission(sub.Payload)
	if !ok {
		slog.Info("Processing raw data.", "bytes", result.BytesReceived)
		return result, nil
	}

	owner := DefaultOwner
	switch {
	case sub.User != "":
		owner = sub.User
	case req.owner != nil:
		owner = *req.owner
	}

	n, err := s.create(ctx, req.tokenID, owner, req.metadata)
	if err != nil {
		var dupErr *DuplicateError
		if errors.As(err, &dupErr) {
			slog.Info("Token already exists, skipping mint.", "token_id", dupErr.TokenID)
			result.TokenID = dupErr.TokenID
			result.Skipped = true
			return result, nil
		}
		return result, fmt.Errorf("mint submission: %w", err)
	}

	slog.Info("Minted NFT from submission.", "token_id", n.TokenID, "owner", n.Owner)
	result.TokenID = n.TokenID
	result.Minted = true
	return result, nil
}

func (s *service) Find(ctx context.Context, tokenID string) (NFT, error) {
	return s.store.Find(ctx, tokenID)
}

func (s *service) List(ctx context.Context) ([]NFT, error) {
	return s.store.List(ctx)
}

func (s *service) Count(ctx context.Context) int {
	return s.store.Count(ctx)
}

func (s *service) create(ctx context.Context, tokenID TokenID, owner string, metadata json.RawMessage) (NFT, error) {
	if len(metadata) == 0 || bytes.Equal(bytes.TrimSpace(metadata), []byte("null")) {
		metadata = emptyMetadata
	}

	return s.store.Create(ctx, CreateParams{
		TokenID:   tokenID,
		Owner:     owner,
		Metadata:  metadata,
		CreatedAt: s.now().UTC(),
	})
}

type submittedMint struct {
	tokenID  TokenID
	owner    *string
	metadata json.RawMessage
}

func parseMintSubmission(payload []byte) (submittedMint, bool) {
	var req submittedMint

	if !utf8.Valid(payload) {
		return req, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return req, false
	}

	rawTokenID, hasTokenID := fields["token_id"]
	rawMetadata, hasMetadata := fields["metadata"]
	if !hasTokenID && !hasMetadata {
		return req, false
	}

	if hasTokenID {
		if err := json.Unmarshal(rawTokenID, &req.tokenID); err != nil {
			slog.Warn("Submission token_id cannot be used as a token id.", "reason", err)
			return req, false
		}
	}

	if rawOwner, ok := fields["owner"]; ok {
		var owner *string
		if err := json.Unmarshal(rawOwner, &owner); err == nil {
			req.owner = owner
		}
	}

	req.metadata = rawMetadata
	return req, true
}
