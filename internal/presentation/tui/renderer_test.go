package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/maze"
	"github.com/aretw0/frontier/pkg/ports/tests"
)

func TestRenderer_Contract(t *testing.T) {
	var buf bytes.Buffer
	tests.RendererContractTest(t, NewRenderer(&buf, maze.Default()))
}

func lastFrame(out string) string {
	frames := strings.Split(out, "Frontier: ")
	return frames[len(frames)-1]
}

func TestRenderer_Frame(t *testing.T) {
	var buf bytes.Buffer
	m := maze.Default()
	r := NewRenderer(&buf, m, WithProfile(termenv.Ascii))

	require.NoError(t, r.HighlightNode("A", domain.StyleExplored))
	require.NoError(t, r.ShowNarration([]string{"Initialize queue with A", "Expand A: enqueue 1"}))
	assert.Zero(t, buf.Len(), "nothing is drawn before the frontier")

	require.NoError(t, r.ShowFrontier([]string{"1"}))
	assert.Equal(t, 1, r.Frames())

	out := buf.String()
	lines := strings.Split(out, "\n")
	rows, cols := m.Grid.Dims()
	require.Greater(t, len(lines), rows)
	assert.Equal(t, "A  ", lines[6][:3], "A sits at row 6, column 0")
	assert.Len(t, []rune(lines[0]), len(m.Grid[0])*3)
	assert.LessOrEqual(t, len(m.Grid[0]), cols)

	assert.Contains(t, out, "Frontier: [1]\n")
	assert.Contains(t, out, "Initialize queue with A\nExpand A: enqueue 1\n")
	assert.NotContains(t, out, "Robot:")
	assert.NotContains(t, out, "\x1b[", "ascii profile writes no escape codes")
}

func TestRenderer_TokenAndClear(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, maze.Default())

	require.NoError(t, r.MoveToken("B"))
	require.NoError(t, r.ShowFrontier(nil))
	assert.Contains(t, buf.String(), "Frontier: []\nRobot: B\n")

	buf.Reset()
	require.NoError(t, r.ClearVisuals())
	assert.NotContains(t, buf.String(), "Robot:")
	assert.Equal(t, 2, r.Frames())
}

func TestRenderer_History(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, nil, WithHistory(2))

	require.NoError(t, r.ShowNarration([]string{"one", "two", "three"}))
	require.NoError(t, r.ShowFrontier([]string{"X", "Y(f=2)"}))

	frame := lastFrame(buf.String())
	assert.Equal(t, "[X, Y(f=2)]\n\ntwo\nthree\n", frame)
}

func TestRenderer_Markdown(t *testing.T) {
	var buf bytes.Buffer
	var got string
	md := func(s string) (string, error) {
		got = s
		return "rendered\n", nil
	}
	r := NewRenderer(&buf, nil, WithMarkdown(md))

	require.NoError(t, r.ShowNarration([]string{"Pop A from queue"}))
	require.NoError(t, r.ShowFrontier(nil))
	assert.Equal(t, "- Pop A from queue\n", got)
	assert.Contains(t, buf.String(), "rendered\n")

	boom := errors.New("bad markdown")
	r = NewRenderer(&buf, nil, WithMarkdown(func(string) (string, error) { return "", boom }))
	require.NoError(t, r.ShowNarration([]string{"x"}))
	assert.ErrorIs(t, r.ShowFrontier(nil), boom)
}

func TestRenderer_ClearScreen(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, nil, WithClearScreen(true))
	require.NoError(t, r.ClearVisuals())
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b["), "frame starts with a clear sequence")
}

func TestNewMarkdownRenderer(t *testing.T) {
	render, err := NewMarkdownRenderer()
	require.NoError(t, err)
	out, err := render("- Goal B reached\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Goal B reached")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii)
	assert.Contains(t, buf.String(), "|_|  |_|")
	assert.NotContains(t, buf.String(), "\x1b[")
}
