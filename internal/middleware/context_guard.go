package middleware

import (
	"net/http"

	"github.com/ferdiebergado/nftlane/internal/pkg/web"
)

// ContextGuard stops requests whose context is already done before they reach a handler.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			web.Fail(w, http.StatusRequestTimeout, err, "Request cancelled or timed out.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
