package middleware

import "net/http"

// LimitBody caps the request body at maxBodySize bytes. Reads past the limit
// fail with *http.MaxBytesError.
func LimitBody(maxBodySize int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
			next.ServeHTTP(w, r)
		})
	}
}
