// Package server exposes a word list over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"golang.org/x/time/rate"

	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/wordlist"
)

const (
	RouteWords   = "/api/words"
	RouteHealthz = "/healthz"

	shutdownTimeout = 5 * time.Second
)

// Server serves words from a Source.
type Server struct {
	cfg       model.ServerConfig
	source    wordlist.Source
	startedAt time.Time

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter
}

// New returns a Server. Non-positive limits fall back to sane values.
func New(cfg model.ServerConfig, source wordlist.Source) *Server {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 100
	}
	if cfg.MaxLimit < cfg.DefaultLimit {
		cfg.MaxLimit = cfg.DefaultLimit
	}
	return &Server{
		cfg:       cfg,
		source:    source,
		startedAt: time.Now(),
		limiters:  map[string]*rate.Limiter{},
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), ginGzip.Gzip(ginGzip.DefaultCompression))
	router.GET(RouteWords, s.rateLimitMiddleware(), s.wordsHandler)
	router.GET(RouteHealthz, s.healthzHandler)
	return router
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logInfo("Word server listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	logInfo("Shutting down word server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

func (s *Server) wordsHandler(c *gin.Context) {
	limit := s.cfg.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = lo.Clamp(n, 1, s.cfg.MaxLimit)
	}
	words, err := s.source.GetWords(c.Request.Context(), limit)
	if err != nil {
		logWarn("Failed to get words (request %s): %v", requestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get words"})
		return
	}
	if words == nil {
		words = []string{}
	}
	c.JSON(http.StatusOK, words)
}

func (s *Server) healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"lang":   s.cfg.Lang,
		"uptime": time.Since(s.startedAt).Round(time.Second).String(),
	})
}

func logInfo(format string, v ...any) {
	log.Printf("[INFO] "+format, v...)
}

func logWarn(format string, v ...any) {
	log.Printf("[WARN] "+format, v...)
}
