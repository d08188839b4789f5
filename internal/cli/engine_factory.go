package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/frontier"
	"github.com/aretw0/frontier/internal/logging"
	"github.com/aretw0/frontier/pkg/adapters/file"
	httpAdapter "github.com/aretw0/frontier/pkg/adapters/http"
	"github.com/aretw0/frontier/pkg/adapters/redis"
	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/maze"
	"github.com/aretw0/frontier/pkg/observability"
)

// EngineOptions are the CLI flags that shape an engine.
type EngineOptions struct {
	MazePath   string
	SolverURL  string
	RedisAddr  string
	SessionTTL time.Duration
	StoreDir   string
	Debug      bool
	Registerer prometheus.Registerer
}

// Closer releases what NewEngine opened.
type Closer func() error

// CreateLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout frames).
func CreateLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}

// LoadMaze reads the maze file, or returns the built-in maze for an empty path.
func LoadMaze(path string) (*maze.Maze, error) {
	if path == "" {
		return maze.Default(), nil
	}
	m, err := maze.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading maze: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid maze %s: %w", path, err)
	}
	return m, nil
}

// NewEngine wires an engine with standard CLI conventions:
// Redis sessions when an address is given, files when a directory is given,
// memory otherwise; a remote solver when a URL is given.
func NewEngine(opts EngineOptions, logger *slog.Logger, extra ...frontier.Option) (*frontier.Engine, Closer, error) {
	m, err := LoadMaze(opts.MazePath)
	if err != nil {
		return nil, nil, err
	}

	closer := Closer(func() error { return nil })
	engineOpts := []frontier.Option{frontier.WithLogger(logger)}

	switch {
	case opts.RedisAddr != "":
		store := redis.New(opts.RedisAddr, "", 0, redis.WithTTL(opts.SessionTTL))
		engineOpts = append(engineOpts,
			frontier.WithStore(store),
			frontier.WithLocker(redis.NewLocker(store.Client(), redis.DefaultPrefix)),
		)
		closer = store.Close
		logger.Debug("Using Redis session store", "address", opts.RedisAddr)
	case opts.StoreDir != "":
		engineOpts = append(engineOpts, frontier.WithStore(file.New(opts.StoreDir)))
		logger.Debug("Using file session store", "dir", opts.StoreDir)
	}

	if opts.SolverURL != "" {
		engineOpts = append(engineOpts, frontier.WithSolver(httpAdapter.NewSolverClient(opts.SolverURL)))
		logger.Debug("Using remote solver", "url", opts.SolverURL)
	}

	hooks := []domain.LifecycleHooks{observability.LoggingHooks(logger)}
	if opts.Registerer != nil {
		hooks = append(hooks, observability.NewMetrics(opts.Registerer).Hooks())
	}
	engineOpts = append(engineOpts, frontier.WithLifecycleHooks(domain.MergeHooks(hooks...)))
	engineOpts = append(engineOpts, extra...)

	eng, err := frontier.New(m, engineOpts...)
	if err != nil {
		_ = closer()
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return eng, closer, nil
}
