package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glint-ui/glint/internal/errors"
	"github.com/glint-ui/glint/pkg/dom"
)

// RootComponent builds a session's root node. It is invoked once per
// session, inside the session's owner scope, so every effect it creates
// is disposed when the session closes.
type RootComponent func() *dom.Node

// Server is the HTTP/WebSocket host for a Glint application.
type Server struct {
	config  *Config
	root    RootComponent
	logger  *slog.Logger
	metrics *serverMetrics

	router   chi.Router
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[uint64]*Session
	nextSess atomic.Uint64

	httpServer *http.Server
}

// New creates a server hosting root.
func New(root RootComponent, config *Config, opts ...Option) *Server {
	config = config.withDefaults()

	s := &Server{
		config:   config,
		root:     root,
		logger:   slog.Default().With("component", "server"),
		metrics:  newServerMetrics(),
		sessions: make(map[uint64]*Session),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = s.buildRouter()
	return s
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l.With("component", "server")
		}
	}
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// Handler returns the server's HTTP handler, for embedding or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server and blocks until ctx is canceled or
// the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.config.Address,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown closes every session and stops the HTTP server gracefully.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}

	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// handleIndex serves the page shell: the statically rendered tree plus
// the client bootstrap that opens the WebSocket.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, err := s.renderShell()
	if err != nil {
		s.logger.Error("shell render failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

// handleWebSocket upgrades the connection and runs the session loop on
// this goroutine until the client disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		gerr := errors.New("S001").Wrap(err)
		s.logger.Error("websocket upgrade failed", "error", gerr)
		return
	}

	sess := newSession(s.nextSess.Add(1), conn, s.root, s.config, s.logger, s.metrics)

	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()
	s.metrics.sessionOpened()

	defer func() {
		s.mu.Lock()
		delete(s.sessions, sess.ID())
		s.mu.Unlock()
		s.metrics.sessionClosed()
	}()

	if err := sess.Start(); err != nil {
		s.logger.Error("session start failed", "session", sess.ID(), "error", err)
		sess.Close()
		return
	}
	sess.ReadLoop()
}
