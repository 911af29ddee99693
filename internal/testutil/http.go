// Package testutil provides reusable test helpers for the CLI
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// MockAPIServer creates a test HTTP server with the given handler and
// closes it when the test finishes
func MockAPIServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// RouteMap serves canned JSON responses keyed by request path. Paths not
// present in the map respond 404 with a conventional error body.
func RouteMap(routes map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}
