package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/frontier"
	"github.com/aretw0/frontier/pkg/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "frontier version "+frontier.Version+"\n", out)
}

func TestTraceCommand(t *testing.T) {
	out, err := run(t, "trace", "--algorithm", "dfs", "--json")
	require.NoError(t, err)

	var tr domain.Trace
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	assert.Equal(t, domain.AlgorithmDFS, tr.Algorithm)
	assert.Len(t, tr.Explored, 22)
}

func TestTraceCommand_BadAlgorithm(t *testing.T) {
	_, err := run(t, "trace", "--algorithm", "greedy", "--json=false")
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestGraphCommand(t *testing.T) {
	out, err := run(t, "graph", "--overlay", "--algorithm", "astar")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph LR\n"))
	assert.Contains(t, out, "class n_B current;")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, `Maze "classroom" is valid: 23 nodes`)

	path := filepath.Join(t.TempDir(), "island.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  S: {G: 1}\n  X: {}\n  G: {}\n"), 0644))
	out, err = run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Warning: unreachable from S: X")
}

func TestSessionCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "session", "solve", "demo", "--store-dir", dir, "--algorithm", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "Session 'demo': bfs explored 23 nodes")

	out, err = run(t, "session", "ls", "--store-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "- demo")

	out, err = run(t, "session", "inspect", "demo", "--store-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "demo"`)

	out, err = run(t, "session", "rm", "demo", "--store-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed session 'demo'")

	_, err = run(t, "session", "inspect", "demo", "--store-dir", dir)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
