// Package api chromapack REST API
//
// @title           chromapack REST API
// @version         1.0.0
// @description     Packs and unpacks colors and stores them in a palette.
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/ssargent/chromapack/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

// Routes builds the HTTP handler for s. Metrics are served from gatherer.
func (s *Server) Routes(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(logging.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		m := s.metrics

		r.Get("/health", m.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		// Codec operations are pure and need no key
		r.Get("/catalog", m.InstrumentHandler("GET", "/api/v1/catalog", s.handleCatalog))
		r.Post("/pack", m.InstrumentHandler("POST", "/api/v1/pack", s.handlePack))
		r.Post("/unpack", m.InstrumentHandler("POST", "/api/v1/unpack", s.handleUnpack))

		r.Group(func(r chi.Router) {
			r.Use(apiKeyMiddleware(s.config.APIKey, m))

			r.Post("/colors", m.InstrumentHandler("POST", "/api/v1/colors", s.handleCreateColor))
			r.Get("/colors", m.InstrumentHandler("GET", "/api/v1/colors", s.handleListColors))
			r.Get("/colors/{id}", m.InstrumentHandler("GET", "/api/v1/colors/{id}", s.handleGetColor))
			r.Put("/colors/{id}", m.InstrumentHandler("PUT", "/api/v1/colors/{id}", s.handleUpdateColor))
			r.Delete("/colors/{id}", m.InstrumentHandler("DELETE", "/api/v1/colors/{id}", s.handleDeleteColor))
		})
	})

	r.Get("/swagger/*", s.handleSwagger)

	return r
}

func (s *Server) handleSwagger(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/swagger/", "/swagger/index.html":
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerUI))
	case "/swagger/doc.json", "/swagger/swagger.json":
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(s.readDoc()))
	default:
		http.NotFound(w, r)
	}
}

// readDoc renders the registered API document with this server's address
// as its host. Servers without a port advertise the registered default.
func (s *Server) readDoc() string {
	spec := *SwaggerInfo
	if s.config.Port != 0 {
		spec.Host = s.config.Addr()
	}
	return spec.ReadDoc()
}

// StartServer serves the API until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func StartServer(ctx context.Context, store ColorStore, config ServerConfig, logger logrus.FieldLogger) error {
	addr := config.Addr()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := NewMetrics(registry)

	server := NewServer(store, config, metrics, logger)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Routes(registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("starting chromapack API server")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

const swaggerUI = `<!DOCTYPE html>
<html>
<head>
	 <title>chromapack API Documentation</title>
	 <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui.css" />
</head>
<body>
	 <div id="swagger-ui"></div>
	 <script src="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui-bundle.js"></script>
	 <script>
	   window.onload = function() {
	     SwaggerUIBundle({
	       url: '/swagger/doc.json',
	       dom_id: '#swagger-ui',
	       presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.presets.standalone]
	     });
	   };
	 </script>
</body>
</html>`
