package middleware

import "net/http"

// InjectWriter wraps the response writer in a SafeResponseWriter unless it already is one.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(safeWriter(w, r), r)
	})
}

func safeWriter(w http.ResponseWriter, r *http.Request) *SafeResponseWriter {
	if writer, ok := w.(*SafeResponseWriter); ok {
		return writer
	}
	return NewSafeResponseWriter(r.Context(), w)
}
