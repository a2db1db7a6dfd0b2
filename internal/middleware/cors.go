package middleware

import (
	"net/http"
)

const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"

	AllowedOrigin  = "*"
	AllowedMethods = "GET, POST, OPTIONS"
	AllowedHeaders = "Content-Type"
)

// CORS adds permissive cross-origin headers to every response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w.Header())
		next.ServeHTTP(w, r)
	})
}

// Preflight answers an OPTIONS request on any path with the CORS headers and no body.
func Preflight(w http.ResponseWriter, _ *http.Request) {
	setCORSHeaders(w.Header())
	w.WriteHeader(http.StatusNoContent)
}

func setCORSHeaders(h http.Header) {
	h.Set(HeaderAllowOrigin, AllowedOrigin)
	h.Set(HeaderAllowMethods, AllowedMethods)
	h.Set(HeaderAllowHeaders, AllowedHeaders)
}
