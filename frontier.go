package frontier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/frontier/internal/logging"
	"github.com/aretw0/frontier/pkg/adapters/memory"
	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/maze"
	"github.com/aretw0/frontier/pkg/playback"
	"github.com/aretw0/frontier/pkg/ports"
	"github.com/aretw0/frontier/pkg/session"
	"github.com/aretw0/frontier/pkg/solver"
	"github.com/aretw0/frontier/pkg/trace"
)

// Engine is the high-level entry point of the library.
// It owns one maze and runs solve, trace reconstruction and playback for
// any number of named sessions.
type Engine struct {
	maze     *maze.Maze
	solver   ports.Solver
	store    ports.SessionStore
	locker   ports.DistributedLocker
	sessions *session.Manager
	clock    playback.Clock
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	Name     string

	mu      sync.Mutex
	players map[string]*playback.Scheduler
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSolver replaces the in-process solver, e.g. with an HTTP client.
func WithSolver(s ports.Solver) Option {
	return func(e *Engine) {
		e.solver = s
	}
}

// WithStore sets where sessions are persisted (default: memory).
func WithStore(s ports.SessionStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithLocker enables distributed session locks.
func WithLocker(l ports.DistributedLocker) Option {
	return func(e *Engine) {
		e.locker = l
	}
}

// WithClock sets the playback clock (default: playback.SystemClock).
func WithClock(c playback.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine for m. A nil maze selects maze.Default().
func New(m *maze.Maze, opts ...Option) (*Engine, error) {
	if m == nil {
		m = maze.Default()
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid maze: %w", err)
	}

	eng := &Engine{
		maze:    m,
		clock:   playback.SystemClock{},
		logger:  logging.NewNop(),
		Name:    m.Name,
		players: make(map[string]*playback.Scheduler),
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.solver == nil {
		eng.solver = solver.NewLocal(m.Graph)
	}
	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	sessOpts := []session.Option{session.WithLogger(eng.logger)}
	if eng.locker != nil {
		sessOpts = append(sessOpts, session.WithLocker(eng.locker))
	}
	eng.sessions = session.NewManager(eng.store, sessOpts...)

	return eng, nil
}

// Maze returns the engine's maze.
func (e *Engine) Maze() *maze.Maze {
	return e.maze
}

// Sessions returns the session manager.
func (e *Engine) Sessions() *session.Manager {
	return e.sessions
}

// Normalize fills defaults: bfs, and the maze's start and goal.
func (e *Engine) Normalize(req domain.SolveRequest) (domain.SolveRequest, error) {
	if req.Algorithm == "" {
		req.Algorithm = domain.AlgorithmBFS
	} else {
		alg, err := domain.ParseAlgorithm(string(req.Algorithm))
		if err != nil {
			return req, err
		}
		req.Algorithm = alg
	}
	if req.Start == "" {
		req.Start = e.maze.Start
	}
	if req.Goal == "" {
		req.Goal = e.maze.Goal
	}
	return req, nil
}

// Solve asks the solver for the explored order and the path.
// Transport and solver failures are reported as domain.ErrSolveRequestFailed.
func (e *Engine) Solve(ctx context.Context, req domain.SolveRequest) (domain.SolveResult, error) {
	req, res, err := e.solve(ctx, req)
	e.emitSolve(ctx, "", req, res, 0, err)
	return res, err
}

// Trace solves req and reconstructs the narrated trace.
func (e *Engine) Trace(ctx context.Context, req domain.SolveRequest) (domain.Trace, error) {
	return e.trace(ctx, "", req)
}

func (e *Engine) trace(ctx context.Context, sessionID string, req domain.SolveRequest) (domain.Trace, error) {
	req, res, err := e.solve(ctx, req)
	if err != nil {
		e.emitSolve(ctx, sessionID, req, res, 0, err)
		return domain.Trace{}, err
	}

	tr := trace.Simulate(e.maze.Graph, trace.Request{
		Algorithm: req.Algorithm,
		Start:     req.Start,
		Goal:      req.Goal,
		Explored:  res.Explored,
		Path:      res.Path,
	})
	e.emitSolve(ctx, sessionID, req, res, len(tr.Steps), nil)
	return tr, nil
}

func (e *Engine) solve(ctx context.Context, req domain.SolveRequest) (domain.SolveRequest, domain.SolveResult, error) {
	req, err := e.Normalize(req)
	if err != nil {
		return req, domain.SolveResult{}, err
	}

	res, err := e.solver.Solve(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSolveRequestFailed),
			errors.Is(err, domain.ErrUnknownAlgorithm),
			errors.Is(err, domain.ErrUnknownNode),
			errors.Is(err, context.Canceled),
			errors.Is(err, context.DeadlineExceeded):
		default:
			err = fmt.Errorf("%w: %w", domain.ErrSolveRequestFailed, err)
		}
		e.logger.Warn("Solve failed", "algorithm", req.Algorithm, "error", err)
		return req, domain.SolveResult{}, err
	}
	if res.Path == nil {
		res.Path = []string{}
	}
	return req, res, nil
}

func (e *Engine) emitSolve(ctx context.Context, sessionID string, req domain.SolveRequest, res domain.SolveResult, steps int, err error) {
	if e.hooks.OnSolve == nil {
		return
	}
	e.hooks.OnSolve(ctx, &domain.SolveEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventSolve, SessionID: sessionID},
		Algorithm: req.Algorithm,
		Explored:  len(res.Explored),
		PathLen:   len(res.Path),
		Steps:     steps,
		IsError:   err != nil,
	})
}

// SolveSession resets any playback of the session, solves req and stores the
// new trace. On failure the session is left cleared with the error recorded.
func (e *Engine) SolveSession(ctx context.Context, sessionID string, req domain.SolveRequest) (*domain.Session, error) {
	e.stop(sessionID)

	var solveErr error
	s, err := e.sessions.Update(ctx, sessionID, func(ctx context.Context, s *domain.Session) error {
		s.Clear()
		s.Maze = e.maze.Name

		tr, err := e.trace(ctx, sessionID, req)
		if err != nil {
			solveErr = err
			s.Error = err.Error()
			return nil
		}
		s.Algorithm = tr.Algorithm
		s.Start = tr.Start
		s.Goal = tr.Goal
		s.Trace = &tr
		return nil
	})
	if err != nil {
		return nil, err
	}
	if solveErr != nil {
		return s, solveErr
	}
	return s, nil
}

// Play starts the playback of a solved session on r.
// A playback already running for the session is reset first.
func (e *Engine) Play(ctx context.Context, sessionID string, r ports.Renderer, interval time.Duration) (*playback.Scheduler, error) {
	var sched *playback.Scheduler
	_, err := e.sessions.Update(ctx, sessionID, func(ctx context.Context, s *domain.Session) error {
		if s.Trace == nil {
			return fmt.Errorf("%w: %s", domain.ErrNoTrace, sessionID)
		}
		e.stop(sessionID)

		sched = playback.NewScheduler(r,
			playback.WithClock(e.clock),
			playback.WithLifecycleHooks(e.hooks),
			playback.WithLogger(e.logger),
			playback.WithSessionID(sessionID),
		)
		e.mu.Lock()
		e.players[sessionID] = sched
		e.mu.Unlock()

		sched.Start(*s.Trace, interval)
		s.Status = domain.StatusRunning
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sched, nil
}

// Player returns the scheduler of a session, if one was started.
func (e *Engine) Player(sessionID string) (*playback.Scheduler, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, ok := e.players[sessionID]
	return p, ok
}

// Session loads a session, reporting the live playback status when a
// playback exists in this process.
func (e *Engine) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	s, err := e.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if p, ok := e.Player(sessionID); ok {
		s.Status = p.Status()
		if perr := p.Err(); perr != nil {
			s.Error = perr.Error()
		}
	}
	return s, nil
}

// Reset stops the session's playback, clears its visuals and discards its trace.
func (e *Engine) Reset(ctx context.Context, sessionID string) error {
	return e.sessions.WithLock(ctx, sessionID, func(ctx context.Context) error {
		s, err := e.store.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		e.stop(sessionID)
		s.Clear()
		return e.store.Save(ctx, sessionID, s)
	})
}

// Delete stops the session's playback and removes it from the store.
func (e *Engine) Delete(ctx context.Context, sessionID string) error {
	e.stop(sessionID)
	return e.sessions.Delete(ctx, sessionID)
}

// Close stops every playback.
func (e *Engine) Close() {
	e.mu.Lock()
	players := e.players
	e.players = make(map[string]*playback.Scheduler)
	e.mu.Unlock()

	for _, p := range players {
		p.Reset()
	}
}

func (e *Engine) stop(sessionID string) {
	e.mu.Lock()
	p, ok := e.players[sessionID]
	delete(e.players, sessionID)
	e.mu.Unlock()

	if ok {
		p.Reset()
	}
}
