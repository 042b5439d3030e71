package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestPreflightAllowsQuarantineResolution(t *testing.T) {
	is := is.New(t)

	r := New("test-svc")
	r.Patch("/api/v0/quarantines/{quarantineID}", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodOptions, "/api/v0/quarantines/q1", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	res := httptest.NewRecorder()

	r.ServeHTTP(res, req)

	is.Equal("PATCH", res.Header().Get("Access-Control-Allow-Methods"))
}

func TestPreflightRejectsUnsupportedMethod(t *testing.T) {
	is := is.New(t)

	r := New("test-svc")
	r.Get("/api/v0/alerts", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodOptions, "/api/v0/alerts", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	res := httptest.NewRecorder()

	r.ServeHTTP(res, req)

	is.True(!strings.Contains(res.Header().Get("Access-Control-Allow-Methods"), "DELETE"))
}
