package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/davidbz/saucier/internal/config"
	"github.com/davidbz/saucier/internal/httpserver/middleware"
	"github.com/davidbz/saucier/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	return &Server{
		config:      *cfg,
		handler:     handler,
		middlewares: middlewares,
		srv:         nil,
	}
}

// Routes returns the router with the middleware chain applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/chat", s.handler.HandleChat)
	mux.HandleFunc("POST /v1/culinary/chat", s.handler.HandleCulinaryChat)
	mux.HandleFunc("POST /v1/intent", s.handler.HandleIntent)
	mux.HandleFunc("POST /v1/recipes/suggestions", s.handler.HandleSuggestions)
	mux.HandleFunc("POST /v1/recipes/details", s.handler.HandleRecipeDetails)
	mux.HandleFunc("POST /v1/recipes/normalize", s.handler.HandleNormalize)
	mux.HandleFunc("POST /v1/recipes/fallback", s.handler.HandleFallbackRecipe)
	mux.HandleFunc("POST /v1/ingredients/recommendations", s.handler.HandleRecommendations)

	mux.HandleFunc("POST /v1/recipes", s.handler.HandleSaveRecipe)
	mux.HandleFunc("GET /v1/recipes", s.handler.HandleListRecipes)
	mux.HandleFunc("GET /v1/recipes/{id}", s.handler.HandleGetRecipe)

	mux.HandleFunc("GET /health", s.handler.HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s.middlewares(mux)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	// Create server with timeouts.
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
