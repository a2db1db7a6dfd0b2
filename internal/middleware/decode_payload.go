package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/nftlane/internal/pkg/message"
	"github.com/ferdiebergado/nftlane/internal/pkg/web"
)

// DecodePayload decodes a single JSON value of type T from a body of at most
// bodySize bytes and stores it in the request context. Unknown fields are
// ignored.
func DecodePayload[T any](bodySize int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Decoding json payload...")
			r.Body = http.MaxBytesReader(w, r.Body, bodySize)
			decoder := json.NewDecoder(r.Body)
			var decoded T
			if err := decoder.Decode(&decoded); err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					web.RespondRequestEntityTooLarge(w, err, message.PayloadTooLarge)
					return
				}

				web.RespondBadRequest(w, err, fmt.Sprintf("%s %v", message.InvalidInput, err))
				return
			}

			if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
				web.RespondBadRequest(w, fmt.Errorf("trailing data after json payload: %v", err), message.InvalidInput)
				return
			}

			ctx := web.NewContextWithParams(r.Context(), decoded)
			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}
