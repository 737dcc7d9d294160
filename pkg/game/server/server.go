// Package server serves the web page, a health check and rendered grid
// frames over HTTP.
package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"datagrid/pkg/engine/logger"
	"datagrid/pkg/game/grid"
	"datagrid/pkg/game/i18n"
	"datagrid/pkg/game/renderer"
	"datagrid/pkg/game/renderer/headless"
)

//go:embed web
var embedded embed.FS

// Options configures the server.
type Options struct {
	Addr      string
	WebRoot   string // Directory to serve; empty uses the embedded page
	MaxWidth  int
	MaxHeight int
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// errorResponse is the body of failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

// Server renders frames for the configured grid. Each request builds its
// own Renderer, so handlers share no mutable state.
type Server struct {
	cfg     grid.Config
	catalog *grid.Catalog
	opts    Options
	log     *zap.Logger
	static  http.Handler
}

// New creates a server for the given grid.
func New(cfg grid.Config, catalog *grid.Catalog, opts Options) (*Server, error) {
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = 3840
	}
	if opts.MaxHeight <= 0 {
		opts.MaxHeight = 2160
	}

	var root fs.FS
	if opts.WebRoot != "" {
		if _, err := os.Stat(opts.WebRoot); err != nil {
			return nil, fmt.Errorf("web root: %w", err)
		}
		root = os.DirFS(opts.WebRoot)
	} else {
		sub, err := fs.Sub(embedded, "web")
		if err != nil {
			return nil, err
		}
		root = sub
	}

	return &Server{
		cfg:     cfg,
		catalog: catalog,
		opts:    opts,
		log:     logger.Named("server"),
		static:  http.FileServer(http.FS(root)),
	}, nil
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.HealthHandler)
	mux.HandleFunc("GET /frame.png", s.FrameHandler)
	mux.Handle("GET /", s.static)
	return s.logRequests(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("server listening",
			zap.String("addr", s.opts.Addr),
			zap.Strings("endpoints", []string{"/", "/health", "/frame.png"}))
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// HealthHandler handles /health (simple liveness check)
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Message: i18n.T("HEALTH_OK")})
}

// FrameHandler handles /frame.png. Query parameters: w and h (pixels,
// required), offset (scroll distance in cells, default 0) and preset
// (default: the configured grid).
func (s *Server) FrameHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	width, err := intParam(q.Get("w"), 1, s.opts.MaxWidth)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "w: " + err.Error()})
		return
	}
	height, err := intParam(q.Get("h"), 1, s.opts.MaxHeight)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "h: " + err.Error()})
		return
	}
	distance := 0.0
	if v := q.Get("offset"); v != "" {
		distance, err = strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(distance) || distance < 0 || distance > renderer.MaxDistance {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("offset: must be a number in [0, %d]", renderer.MaxDistance)})
			return
		}
	}

	gr, err := s.rendererFor(q.Get("preset"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, grid.ErrUnknownPreset) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := headless.RenderPNG(gr, width, height, distance, &buf); err != nil {
		s.log.Error("frame render failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "render failed"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// rendererFor builds a renderer for a preset, or for the configured grid
// when name is empty.
func (s *Server) rendererFor(name string) (*renderer.Renderer, error) {
	if name == "" {
		return renderer.New(s.cfg, s.catalog)
	}
	return renderer.NewFromPreset(name)
}

func intParam(v string, lo, hi int) (int, error) {
	if v == "" {
		return 0, errors.New("required")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("not an integer")
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("must be in [%d, %d]", lo, hi)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	})
}
