package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"confronto/internal/log"
	"confronto/internal/middleware/ratelimit"
	"confronto/internal/middleware/security"
	"confronto/internal/middleware/trace"
	"confronto/internal/prefs"
	"confronto/internal/services"
)

// Server exposes the comparison dashboard as a JSON API.
type Server struct {
	http.Server

	summaries *services.SummaryService
	prefs     prefs.Store
	logger    *log.Logger

	limiter      *ratelimit.Limiter
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, summaries *services.SummaryService, store prefs.Store, logger *log.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		summaries: summaries,
		prefs:     store,
		logger:    logger.WithComponent(log.ComponentHTTP),
		limiter:   ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/api/preferences", s.handlePreferences)
	mux.HandleFunc("/api/preferences/", s.handlePreferenceKey)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	tracer := trace.NewMiddleware(security.ExtractClientIP)

	var handler http.Handler = mux
	handler = s.limiter.Middleware(security.ExtractClientIP)(handler)
	handler = headers.Middleware(handler)
	handler = tracer.Middleware(handler)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// Shutdown gracefully shuts down the server and its cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.limiter != nil {
			s.limiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
