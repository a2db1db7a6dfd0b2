// Package nft mints and serves NFT records held in process memory.
package nft

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const DefaultOwner = "unknown"

var (
	ErrNotFound       = errors.New("nft: token not found")
	ErrTokenExists    = errors.New("nft: token already exists")
	ErrInvalidTokenID = errors.New("nft: invalid token id")
)

// emptyMetadata is stored when a mint carries no metadata.
var emptyMetadata = json.RawMessage(`{}`)

// NFT is a minted record. Records are never modified after creation.
type NFT struct {
	TokenID   string
	Owner     string
	Metadata  json.RawMessage
	CreatedAt time.Time
}

// DuplicateError reports an attempt to mint a token id that is already taken.
type DuplicateError struct {
	TokenID string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("Token ID %s already exists", e.TokenID)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrTokenExists
}
