package nft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ferdiebergado/nftlane/internal/pkg/message"
	"github.com/ferdiebergado/nftlane/internal/pkg/web"
)

// Headers carrying the out-of-band hints of a submission.
const (
	HeaderForwardedFrom = "X-Forwarded-From"
	HeaderContentType   = "X-Content-Type"
	HeaderUser          = "X-User"
	HeaderTimestamp     = "X-Timestamp"
)

type Service interface {
	Mint(ctx context.Context, params MintParams) (NFT, error)
	Submit(ctx context.Context, sub Submission) (SubmitResult, error)
	Find(ctx context.Context, tokenID string) (NFT, error)
	List(ctx context.Context) ([]NFT, error)
	Count(ctx context.Context) int
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// MintRequest is the body of POST /mint. Every field is optional.
type MintRequest struct {
	TokenID  TokenID         `json:"token_id,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
	Owner    *string         `json:"owner,omitempty"`
}

type Data struct {
	Owner     string          `json:"owner"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt time.Time       `json:"created_at"`
}

type MintResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	TokenID string `json:"token_id"`
	NFT     Data   `json:"nft"`
}

func (h *Handler) Mint(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[MintRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput)
		return
	}

	params := MintParams(req)
	n, err := h.svc.Mint(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrTokenExists) {
			web.RespondBadRequest(w, err, err.Error())
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	web.OK(w, &MintResponse{
		Status:  web.StatusOK,
		Message: message.Minted,
		TokenID: n.TokenID,
		NFT:     newData(n),
	})
}

type GetResponse struct {
	Status  string `json:"status"`
	TokenID string `json:"token_id"`
	NFT     Data   `json:"nft"`
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	tokenID := r.PathValue("token_id")
	if tokenID == "" {
		web.RespondBadRequest(w, errors.New("empty token id"), message.TokenIDRequired)
		return
	}

	n, err := h.svc.Find(r.Context(), tokenID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, tokenID))
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	web.OK(w, &GetResponse{
		Status:  web.StatusOK,
		TokenID: n.TokenID,
		NFT:     newData(n),
	})
}

// ListItem is an NFT flattened with its token id.
type ListItem struct {
	TokenID   string          `json:"token_id"`
	Owner     string          `json:"owner"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt time.Time       `json:"created_at"`
}

type ListResponse struct {
	Status string     `json:"status"`
	Count  int        `json:"count"`
	NFTs   []ListItem `json:"nfts"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	nfts, err := h.svc.List(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.OK(w, newListResponse(nfts))
}

type SubmitResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	BytesReceived int    `json:"bytes_received"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			web.RespondRequestEntityTooLarge(w, err, message.PayloadTooLarge)
			return
		}

		web.RespondInternalServerError(w, fmt.Errorf("read submission: %w", err))
		return
	}

	sub := Submission{
		Payload:     payload,
		Source:      r.Header.Get(HeaderForwardedFrom),
		ContentType: r.Header.Get(HeaderContentType),
		User:        r.Header.Get(HeaderUser),
		Timestamp:   r.Header.Get(HeaderTimestamp),
	}
	result, err := h.svc.Submit(r.Context(), sub)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.OK(w, &SubmitResponse{
		Status:        web.StatusOK,
		Message:       message.Submitted,
		BytesReceived: result.BytesReceived,
	})
}

func newData(n NFT) Data {
	return Data{
		Owner:     n.Owner,
		Metadata:  n.Metadata,
		CreatedAt: n.CreatedAt,
	}
}

func newListResponse(nfts []NFT) *ListResponse {
	items := make([]ListItem, 0, len(nfts))
	for _, n := range nfts {
		items = append(items, ListItem{
			TokenID:   n.TokenID,
			Owner:     n.Owner,
			Metadata:  n.Metadata,
			CreatedAt: n.CreatedAt,
		})
	}

	return &ListResponse{
		Status: web.StatusOK,
		Count:  len(items),
		NFTs:   items,
	}
}
