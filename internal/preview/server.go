// Package preview serves a sissigen project over HTTP for local viewing and
// optionally rebuilds it when its inputs change.
package preview

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"git.home.luguber.info/inful/sissigen/internal/config"
	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
	"git.home.luguber.info/inful/sissigen/internal/logfields"
	smw "git.home.luguber.info/inful/sissigen/internal/server/middleware"
)

// Port is the fixed preview port.
const Port = config.PreviewPort

const shutdownTimeout = 5 * time.Second

// Options tune a Server. The zero value serves on Port.
type Options struct {
	// Addr overrides the listen address (tests use "127.0.0.1:0").
	Addr   string
	Logger *slog.Logger
	// Routes are mounted next to the file server, e.g. a metrics endpoint.
	Routes map[string]http.Handler
}

// Server serves a directory tree over HTTP.
type Server struct {
	root   string
	addr   string
	logger *slog.Logger
	mux    *http.ServeMux
	srv    *http.Server
	ln     net.Listener
}

// NewServer returns a Server for root. Nothing is bound until Start.
func NewServer(root string, opts Options) *Server {
	addr := opts.Addr
	if addr == "" {
		addr = fmt.Sprintf(":%d", Port)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()
	for pattern, h := range opts.Routes {
		mux.Handle(pattern, h)
	}
	mux.Handle("/", http.FileServer(http.Dir(root)))
	return &Server{root: root, addr: addr, logger: logger, mux: mux}
}

// Handler returns the request handler including middleware.
func (s *Server) Handler() http.Handler {
	return smw.Chain(s.logger)(s.mux)
}

// Start binds the listen address and serves in the background. Binding
// errors (such as the port already being in use) are returned immediately.
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return errors.RuntimeError("failed to bind preview server").
			WithCause(err).
			WithContext("addr", s.addr).
			Build()
	}
	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			s.logger.Error("preview server error", logfields.Error(err))
		}
	}()
	s.logger.Info("Preview server listening",
		slog.String("addr", ln.Addr().String()),
		logfields.Path(s.root))
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "preview server shutdown").Build()
	}
	s.logger.Info("Preview server stopped")
	return nil
}

// Run starts the server and blocks until ctx is canceled, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Stop(shutdownCtx)
}
