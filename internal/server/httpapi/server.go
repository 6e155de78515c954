// Package httpapi exposes the archive over HTTP/JSON.
//
// Routes:
//
//	GET  /api/archive          current document
//	POST /api/archive          replace the document (sanitized first)
//	GET  /api/share/{shareId}  a single shared journal, album or event
//	GET  /healthz              liveness
//
// Every response carries Cache-Control: no-store.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/lifearchive/internal/codec"
	"github.com/dmitrijs2005/lifearchive/internal/logging"
	"github.com/dmitrijs2005/lifearchive/internal/server/storage"
)

const (
	msgLoadFailed  = "파일 데이터를 불러오지 못했어요."
	msgSaveFailed  = "파일 데이터를 저장하지 못했어요."
	msgShareAbsent = "공유된 내용을 찾을 수 없어요."
)

const (
	headerSource    = "X-Archive-Source"
	headerUpdatedAt = "X-Archive-Updated-At"
	headerRequestID = "X-Request-ID"
)

type Server struct {
	router  *http.ServeMux
	store   storage.Store
	codec   *codec.Codec
	logger  logging.Logger
	maxBody int64
}

// NewServer builds the handler tree. maxBody limits POST bodies; zero or a
// negative value disables the limit.
func NewServer(store storage.Store, c *codec.Codec, l logging.Logger, maxBody int64) *Server {
	s := &Server{
		router:  http.NewServeMux(),
		store:   store,
		codec:   c,
		logger:  l.With("module", "http_server"),
		maxBody: maxBody,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("GET /healthz", s.handleHealth)
	s.router.HandleFunc("GET /api/archive", s.handleGetArchive)
	s.router.HandleFunc("POST /api/archive", s.handlePostArchive)
	s.router.HandleFunc("GET /api/share/{shareId}", s.handleGetShared)
}

// Handler returns the router wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	return s.requestID(s.accessLog(s.recoverer(s.router)))
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	listen, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen, shutdownTimeout)
}

func (s *Server) Serve(ctx context.Context, listen net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String(), "storage", s.store.Name())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
