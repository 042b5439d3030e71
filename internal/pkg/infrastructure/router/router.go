package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
)

func New(serviceName string) *chi.Mux {
	r := chi.NewRouter()

	// The alert API is read-mostly with a single mutating verb for
	// quarantine resolution, so CORS is limited to exactly that surface.
	// Auth is bearer tokens, not cookies, hence no credentialed requests.
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPatch},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         3600,
	}).Handler)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))

	return r
}
