// Package api provides the fixhub REST API: normalize/parse/validate/build
// operations over HTTP, a journal of processed messages, and Prometheus
// metrics.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ssargent/fixhub/pkg/dictionary"
	"github.com/ssargent/fixhub/pkg/journal"
)

// StartServer starts the HTTP server with all routes configured. It blocks
// until the listener fails.
func StartServer(config ServerConfig, catalog dictionary.Catalog, jrnl *journal.Journal) error {
	metrics := NewMetrics()

	server, err := NewServer(config, catalog, jrnl, metrics)
	if err != nil {
		return err
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(config.APIKey))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Codec operations
		r.Post("/parse", metrics.InstrumentHandler("POST", "/api/v1/parse", server.handleParse))
		r.Post("/validate", metrics.InstrumentHandler("POST", "/api/v1/validate", server.handleValidate))
		r.Post("/build", metrics.InstrumentHandler("POST", "/api/v1/build", server.handleBuild))

		// Journal
		r.Get("/messages", metrics.InstrumentHandler("GET", "/api/v1/messages", server.handleListMessages))
		r.Get("/messages/{id}", metrics.InstrumentHandler("GET", "/api/v1/messages/{id}", server.handleGetMessage))
	})

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting fixhub REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	return http.ListenAndServe(addr, r)
}
