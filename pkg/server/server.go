// Copyright (c) 2025, the cylindo-feed authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
	"github.com/pimtools/cylindo-feed/pkg/combiner"
	"github.com/pimtools/cylindo-feed/pkg/pipeline"
	"github.com/pimtools/cylindo-feed/pkg/serializer"
)

// ProductSource is the upstream the feed API reads from. Satisfied by
// cylindo.Client.
type ProductSource interface {
	pipeline.ConfigurationSource
	ListProducts(ctx context.Context) ([]string, error)
}

// Dependencies carries the domain collaborators of the feed API.
type Dependencies struct {
	// Source is the content API client (or a stub in tests).
	Source ProductSource

	// Records is the internal catalog, loaded once at startup.
	Records []catalog.Record

	// Groups is the exclusive-group table applied to every request.
	Groups []combiner.ExclusiveGroup

	// CID is the Cylindo customer id feeds are generated for.
	CID string

	// Version is reported in feed envelopes and /version.
	Version string
}

// Server is the feed HTTP API.
type Server struct {
	config      *Config
	deps        Dependencies
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	mu          sync.RWMutex
	ready       bool
}

// New creates a server instance. A nil config uses NewConfig defaults.
func New(config *Config, deps Dependencies) *Server {
	if config == nil {
		config = NewConfig()
	}

	s := &Server{
		config:      config,
		deps:        deps,
		rateLimiter: rate.NewLimiter(config.RateLimit, config.RateLimitBurst),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Address, config.Port),
		Handler:      s.setupRoutes(),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return s
}

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.HandleFunc("/version", s.handleVersion)
	mux.Handle("/metrics", promhttp.Handler())

	// API endpoints with middleware
	mux.HandleFunc("/v1/feed", s.withMiddleware(s.handleFeed))
	mux.HandleFunc("/v1/products", s.withMiddleware(s.handleProducts))

	return mux
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, VersionResponse{
		Name:    "cyfeed",
		Version: s.deps.Version,
	})
}

// SetReady marks the server as ready to serve traffic
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Start runs the HTTP server until the context is canceled, then shuts it
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.SetReady(true)

	slog.Info("starting feed API server",
		"address", s.httpServer.Addr,
		"rateLimit", s.config.RateLimit,
		"rateLimitBurst", s.config.RateLimitBurst,
		"maxProductsPerRequest", s.config.MaxProductsPerRequest,
	)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down feed API server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("server stopped gracefully")
	return nil
}
