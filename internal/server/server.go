package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bfctl/internal/bf"
	"bfctl/internal/system"
)

// DefaultMaxSteps caps a request when the server has no explicit budget.
const DefaultMaxSteps = 10_000_000

// Server exposes the interpreter over a small JSON API.
type Server struct {
	Addr string
	// MaxSteps bounds every run; requests may lower it but never raise it.
	MaxSteps int
	// Quiet drops the per-request access log.
	Quiet bool
	// Engine is applied to every engine the server builds, e.g. bf.WithTapeLimit.
	Engine []bf.Option
}

// Start serves until ctx is cancelled, then shuts down gracefully.
// It returns http.ErrServerClosed after a clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()
	system.Logger.Info("api server listening", "addr", s.Addr, "max_steps", s.budget())
	return srv.ListenAndServe()
}

// Handler builds the gin engine with all routes mounted.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	if !s.Quiet {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())
	s.mountAPI(r)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}

func (s *Server) budget() int {
	if s.MaxSteps <= 0 {
		return DefaultMaxSteps
	}
	return s.MaxSteps
}
