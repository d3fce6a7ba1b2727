package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

const (
	// RenderTimeout bounds a single render request
	RenderTimeout = 20 * time.Second
	maxDimension  = 4096
)

// Server handles web requests for the raytracer
type Server struct {
	port       int
	logger     core.Logger
	numWorkers int
	renderID   atomic.Uint64
}

// NewServer creates a new web server
func NewServer(port int, logger core.Logger) *Server {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &Server{port: port, logger: logger}
}

// SetNumWorkers sets the worker count used per render (0 = CPU count)
func (s *Server) SetNumWorkers(n int) {
	s.numWorkers = n
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string
	Width  int
	Height int
	Format loaders.Format
}

// Handler returns the HTTP routes served by the raytracer
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"scenes": scene.ListScenes()})
}

// handleRender renders a scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	req, sceneObj, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	renderLogger := NewRenderLogger(fmt.Sprintf("render-%d", s.renderID.Add(1)), s.logger)
	renderLogger.Printf("Rendering %s at %dx%d as %s\n", req.Scene, req.Width, req.Height, req.Format)

	ctx, cancel := context.WithTimeout(r.Context(), RenderTimeout)
	defer cancel()

	config := renderer.DefaultConfig()
	config.NumWorkers = s.numWorkers
	raytracer := renderer.NewRaytracer(sceneObj.Spheres, req.Width, req.Height, config, renderLogger)

	fb, stats, err := raytracer.RenderParallel(ctx)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		renderLogger.Printf("Render failed: %v\n", err)
		http.Error(w, fmt.Sprintf("Render error: %v", err), status)
		return
	}

	var buf bytes.Buffer
	if err := loaders.EncodeFrame(&buf, fb, req.Format); err != nil {
		renderLogger.Printf("Encode failed: %v\n", err)
		http.Error(w, fmt.Sprintf("Encode error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters and resolves the scene
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, *scene.Scene, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default", Format: loaders.FormatPNG}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}
	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		return nil, nil, err
	}

	if req.Width, err = parseIntParam(query, "width", sceneObj.Width, 1, maxDimension); err != nil {
		return nil, nil, err
	}
	if req.Height, err = parseIntParam(query, "height", sceneObj.Height, 1, maxDimension); err != nil {
		return nil, nil, err
	}
	if format := query.Get("format"); format != "" {
		if req.Format, err = loaders.ParseFormat(format); err != nil {
			return nil, nil, err
		}
	}

	return req, sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
