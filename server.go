package sidenav

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	navauth "github.com/xraph/sidenav/auth"
	"github.com/xraph/sidenav/middleware"
)

// Server serves the rendered navigation over HTTP: the page itself, the
// resolved menu as JSON, static assets, and the operational endpoints.
type Server struct {
	renderer *Renderer
	logger   Logger

	checker  navauth.AuthChecker
	assetsFS fs.FS
	content  func(*http.Request) g.Node
	cors     *middleware.CORSConfig

	router    chi.Router
	server    *http.Server
	running   bool
	startTime time.Time

	mu sync.RWMutex
}

// ServerOption configures the server.
type ServerOption func(*Server)

// WithAuthChecker resolves the request user; entries behind authentication
// and the header variant follow what it reports. Without one, every
// request renders the anonymous variant.
func WithAuthChecker(checker navauth.AuthChecker) ServerOption {
	return func(s *Server) {
		s.checker = checker
	}
}

// WithAssetsFS serves the given filesystem under the configured assets
// path. Without one, no static files are served.
func WithAssetsFS(fsys fs.FS) ServerOption {
	return func(s *Server) {
		s.assetsFS = fsys
	}
}

// WithContent sets the function that renders the page's content area for
// each request. Without one, the content area is empty.
func WithContent(content func(*http.Request) g.Node) ServerOption {
	return func(s *Server) {
		s.content = content
	}
}

// WithCORS allows cross-origin access, for hosts fetching nav.json from
// another origin.
func WithCORS(config middleware.CORSConfig) ServerOption {
	return func(s *Server) {
		s.cors = &config
	}
}

// NewServer creates a server around an existing renderer.
func NewServer(renderer *Renderer, opts ...ServerOption) (*Server, error) {
	if renderer == nil {
		return nil, ErrNilRenderer
	}

	s := &Server{
		renderer: renderer,
		logger:   renderer.logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = s.buildRouter()

	return s, nil
}

// Start begins listening on the configured address. It returns once the
// listener goroutine is launched.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	s.server = &http.Server{
		Addr:         s.renderer.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.renderer.cfg.ReadTimeout,
		WriteTimeout: s.renderer.cfg.WriteTimeout,
	}

	go func() {
		s.logger.Info("sidenav server listening",
			String("addr", s.server.Addr),
			String("base_path", s.renderer.cfg.BasePath),
		)

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("sidenav server error", Error(err))
		}
	}()

	s.running = true
	s.startTime = time.Now()

	return nil
}

// Stop shuts the server down, waiting up to the configured shutdown
// timeout for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ErrNotRunning
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, s.renderer.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("sidenav: shutdown: %w", err)
	}

	s.running = false
	s.logger.Info("sidenav server stopped")

	return nil
}

// IsRunning reports whether the server is accepting requests.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running
}

// Uptime returns how long the server has been running, zero when stopped.
func (s *Server) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.running {
		return 0
	}
	return time.Since(s.startTime)
}

// Handler exposes the full route tree, for mounting inside a host's own
// server instead of running Start.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	logCfg := middleware.DefaultLoggingConfig()
	logCfg.ExcludePaths = []string{"/healthz", s.renderer.cfg.MetricsPath}

	r.Use(middleware.RequestID())
	r.Use(middleware.LoggingWithConfig(s.logger, logCfg))
	r.Use(middleware.Recovery(s.logger))
	if s.cors != nil {
		r.Use(middleware.CORS(*s.cors))
	}
	r.Use(navauth.Middleware(s.checker))

	base := strings.TrimRight(s.renderer.cfg.BasePath, "/")

	if base != "" {
		r.Get(base, s.handleIndex)
	}
	r.Get(base+"/", s.handleIndex)
	r.Get(base+"/nav.json", s.handleManifest)
	r.Get("/healthz", s.handleHealth)

	if s.assetsFS != nil {
		prefix := strings.TrimRight(s.renderer.cfg.AssetsPath, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(http.FS(s.assetsFS))))
	}

	if s.renderer.metrics != nil {
		r.Handle(s.renderer.cfg.MetricsPath, s.renderer.metrics.Handler())
	}

	return r
}
