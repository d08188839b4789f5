package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/frontier"
	"github.com/aretw0/frontier/internal/logging"
	"github.com/aretw0/frontier/pkg/adapters/memory"
	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/maze"
	"github.com/aretw0/frontier/pkg/playback"
)

// Engine is the subset of *frontier.Engine exposed as MCP tools.
type Engine interface {
	Maze() *maze.Maze
	Solve(ctx context.Context, req domain.SolveRequest) (domain.SolveResult, error)
	Trace(ctx context.Context, req domain.SolveRequest) (domain.Trace, error)
}

var _ Engine = (*frontier.Engine)(nil)

// TraceResponse is the structured result of trace_search.
type TraceResponse struct {
	Trace        domain.Trace         `json:"trace" jsonschema_description:"Explored order, path and every narrated step with its frontier snapshot"`
	Narration    []string             `json:"narration" jsonschema_description:"Narration lines in order"`
	Instructions []domain.Instruction `json:"instructions,omitempty" jsonschema_description:"Render instructions of a full playback"`
}

// MazeResponse describes the served maze.
type MazeResponse struct {
	Name      string                        `json:"name"`
	Start     string                        `json:"start"`
	Goal      string                        `json:"goal"`
	Nodes     []string                      `json:"nodes"`
	Graph     map[string]map[string]float64 `json:"graph"`
	Heuristic map[string]float64            `json:"heuristic"`
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("frontier-mcp", frontier.Version),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and shuts it down
// when ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: solve_maze
	solveTool := mcp.NewTool("solve_maze",
		mcp.WithDescription("Run BFS, DFS or A* on the maze and return the explored order and the path."),
		mcp.WithString("algorithm", mcp.Required(), mcp.Description("bfs, dfs or astar")),
		mcp.WithString("start", mcp.Description("Start node (default: maze start)")),
		mcp.WithString("goal", mcp.Description("Goal node (default: maze goal)")),
		mcp.WithOutputSchema[domain.SolveResult](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.HandleSolve))

	// TOOL: trace_search
	traceTool := mcp.NewTool("trace_search",
		mcp.WithDescription("Explain a search step by step: narration and the frontier after each step."),
		mcp.WithString("algorithm", mcp.Required(), mcp.Description("bfs, dfs or astar")),
		mcp.WithString("start", mcp.Description("Start node (default: maze start)")),
		mcp.WithString("goal", mcp.Description("Goal node (default: maze goal)")),
		mcp.WithBoolean("instructions", mcp.Description("Also return the render instructions of a full playback")),
		mcp.WithOutputSchema[TraceResponse](),
	)
	s.mcpServer.AddTool(traceTool, mcp.NewStructuredToolHandler(s.HandleTrace))

	// TOOL: get_maze
	s.mcpServer.AddTool(mcp.NewTool("get_maze",
		mcp.WithDescription("Get the maze graph and heuristic table."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.mazeResponse())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// toolArgs is the argument set shared by the search tools.
type toolArgs struct {
	domain.SolveRequest `mapstructure:",squash"`
	Instructions        bool `mapstructure:"instructions"`
}

func decodeArgs(args map[string]interface{}) (toolArgs, error) {
	var out toolArgs
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(args); err != nil {
		return out, fmt.Errorf("invalid arguments: %w", err)
	}
	return out, nil
}

// HandleSolve implements solve_maze.
func (s *Server) HandleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.SolveResult, error) {
	in, err := decodeArgs(args)
	if err != nil {
		return domain.SolveResult{}, err
	}
	res, err := s.engine.Solve(ctx, in.SolveRequest)
	if err != nil {
		s.logger.Warn("MCP solve failed", "error", err)
		return domain.SolveResult{}, fmt.Errorf("solve failed: %w", err)
	}
	return res, nil
}

// HandleTrace implements trace_search.
func (s *Server) HandleTrace(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TraceResponse, error) {
	in, err := decodeArgs(args)
	if err != nil {
		return TraceResponse{}, err
	}
	tr, err := s.engine.Trace(ctx, in.SolveRequest)
	if err != nil {
		s.logger.Warn("MCP trace failed", "error", err)
		return TraceResponse{}, fmt.Errorf("trace failed: %w", err)
	}

	resp := TraceResponse{Trace: tr, Narration: tr.Narration()}
	if in.Instructions {
		rec := memory.NewRecorder()
		if err := playback.Replay(tr, rec, playback.WithLogger(s.logger)); err != nil {
			return TraceResponse{}, fmt.Errorf("replay failed: %w", err)
		}
		resp.Instructions = rec.Instructions()
	}
	return resp, nil
}

func (s *Server) mazeResponse() MazeResponse {
	m := s.engine.Maze()
	return MazeResponse{
		Name:      m.Name,
		Start:     m.Start,
		Goal:      m.Goal,
		Nodes:     m.Graph.Nodes(),
		Graph:     m.Adjacency(),
		Heuristic: m.Heuristics(),
	}
}

func (s *Server) registerResources() {
	// EXPOSE: frontier://maze
	s.mcpServer.AddResource(mcp.NewResource("frontier://maze", "Current Maze Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.mazeResponse())
		if err != nil {
			return nil, fmt.Errorf("failed to encode maze: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "frontier://maze",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
