package request

import (
	"net/http"
)

// BodyLimit caps request bodies at maxBytes with http.MaxBytesReader. Reads
// past the limit fail, which JSON decoding reports as a bad request. Register
// it before any handler that reads the body.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
