package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/frontier"
	"github.com/aretw0/frontier/internal/logging"
	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/maze"
	"github.com/aretw0/frontier/pkg/playback"
	"github.com/aretw0/frontier/pkg/ports"
)

// DefaultInterval is the playback tick used when a request gives no speed.
const DefaultInterval = 500 * time.Millisecond

// Engine is the subset of *frontier.Engine the server needs.
type Engine interface {
	Maze() *maze.Maze
	Solve(ctx context.Context, req domain.SolveRequest) (domain.SolveResult, error)
	Trace(ctx context.Context, req domain.SolveRequest) (domain.Trace, error)
	SolveSession(ctx context.Context, sessionID string, req domain.SolveRequest) (*domain.Session, error)
	Play(ctx context.Context, sessionID string, r ports.Renderer, interval time.Duration) (*playback.Scheduler, error)
	Reset(ctx context.Context, sessionID string) error
	Session(ctx context.Context, sessionID string) (*domain.Session, error)
}

var _ Engine = (*frontier.Engine)(nil)

// Server holds the handlers of the HTTP API.
type Server struct {
	Engine   Engine
	Streams  *StreamManager
	gatherer prometheus.Gatherer
	interval time.Duration
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithGatherer sets the registry served on /metrics (default: prometheus.DefaultGatherer).
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithInterval sets the default playback tick for session solves.
func WithInterval(d time.Duration) Option {
	return func(s *Server) {
		s.interval = d
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer builds a Server for engine.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		Engine:   engine,
		gatherer: prometheus.DefaultGatherer,
		interval: DefaultInterval,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams = NewStreamManager(s.logger)
	return s
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	return NewServer(engine, opts...).Routes()
}

// Routes mounts every endpoint on a chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/solve", s.Solve)
	r.Post("/trace", s.Trace)
	r.Get("/maze", s.GetMaze)

	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", s.GetSession)
		r.Post("/solve", s.SolveSession)
		r.Post("/reset", s.ResetSession)
		r.Get("/events", s.SubscribeEvents)
	})

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(RawSpec())
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Frontier API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// sessionSolveRequest is the body of POST /sessions/{id}/solve.
type sessionSolveRequest struct {
	domain.SolveRequest
	Speed int `json:"speed,omitempty"`
}

type mazeView struct {
	Name      string                        `json:"name"`
	Start     string                        `json:"start"`
	Goal      string                        `json:"goal"`
	Nodes     []string                      `json:"nodes"`
	Graph     map[string]map[string]float64 `json:"graph"`
	Heuristic map[string]float64            `json:"heuristic"`
	Grid      maze.Grid                     `json:"grid"`
	Positions map[string]maze.Position      `json:"positions,omitempty"`
}

// Solve handles POST /solve.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	var body domain.SolveRequest
	if !s.decode(w, r, &body) {
		return
	}

	res, err := s.Engine.Solve(r.Context(), body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// Trace handles POST /trace.
func (s *Server) Trace(w http.ResponseWriter, r *http.Request) {
	var body domain.SolveRequest
	if !s.decode(w, r, &body) {
		return
	}

	tr, err := s.Engine.Trace(r.Context(), body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tr)
}

// GetMaze handles GET /maze.
func (s *Server) GetMaze(w http.ResponseWriter, r *http.Request) {
	m := s.Engine.Maze()
	s.writeJSON(w, http.StatusOK, mazeView{
		Name:      m.Name,
		Start:     m.Start,
		Goal:      m.Goal,
		Nodes:     m.Graph.Nodes(),
		Graph:     m.Adjacency(),
		Heuristic: m.Heuristics(),
		Grid:      m.Grid,
		Positions: m.Positions,
	})
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Engine.Session(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

// SolveSession handles POST /sessions/{id}/solve: the trace is stored and
// played back to the session's SSE subscribers.
func (s *Server) SolveSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var body sessionSolveRequest
	if r.ContentLength != 0 && !s.decode(w, r, &body) {
		return
	}

	if _, err := s.Engine.SolveSession(r.Context(), sessionID, body.SolveRequest); err != nil {
		s.writeError(w, err)
		return
	}

	interval := s.interval
	if body.Speed != 0 {
		interval = playback.Interval(body.Speed)
	}
	// Playback outlives the request.
	ctx := context.WithoutCancel(r.Context())
	if _, err := s.Engine.Play(ctx, sessionID, &StreamRenderer{Streams: s.Streams, SessionID: sessionID}, interval); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("Playback started", "session_id", sessionID, "interval", interval)

	sess, err := s.Engine.Session(r.Context(), sessionID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

// ResetSession handles POST /sessions/{id}/reset.
func (s *Server) ResetSession(w http.ResponseWriter, r *http.Request) {
	if err := s.Engine.Reset(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	} else if err != nil {
		s.logger.Error("Failed to load OpenAPI spec", "error", err)
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "frontier-http",
		"version":     frontier.Version,
		"api_version": apiVersion,
		"maze":        s.Engine.Maze().Name,
	})
}

// SubscribeEvents handles GET /sessions/{id}/events (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	sessionID := chi.URLParam(r, "id")
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	s.logger.Info("SSE: Subscribing to session", "session_id", sessionID)
	ch, cancel := s.Streams.Subscribe(sessionID)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE Client Disconnected", "session_id", sessionID)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// -- Helpers --

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status, msg := StatusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "status", status, "error", err)
	} else {
		s.logger.Warn("Request rejected", "status", status, "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// StatusFor maps engine errors to an HTTP status and a client message.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnknownAlgorithm):
		return http.StatusBadRequest, "Invalid algorithm"
	case errors.Is(err, domain.ErrUnknownNode):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrNoTrace):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrSolveRequestFailed):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
