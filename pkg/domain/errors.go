package domain

import "errors"

// ErrSolveRequestFailed is returned when the solver cannot be reached or answers with a failure.
var ErrSolveRequestFailed = errors.New("solve request failed")

// ErrUnknownAlgorithm is returned for any algorithm name other than bfs, dfs or astar.
var ErrUnknownAlgorithm = errors.New("invalid algorithm")

// ErrUnknownNode is returned when a start or goal node does not exist in the maze.
var ErrUnknownNode = errors.New("unknown node")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrPlaybackAborted is reported when a renderer fails mid-playback.
var ErrPlaybackAborted = errors.New("playback aborted")

// ErrNoTrace is returned when playback is requested for a session that was never solved.
var ErrNoTrace = errors.New("session has no trace")
