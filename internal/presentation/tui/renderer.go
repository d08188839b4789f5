package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/maze"
	"github.com/aretw0/frontier/pkg/ports"
)

// DefaultHistory is how many narration lines stay on screen.
const DefaultHistory = 8

// Palette.
const (
	colorWall     = "#4b5563"
	colorNode     = "#e5e7eb"
	colorExplored = "#60a5fa"
	colorPath     = "#34d399"
	colorToken    = "#f472b6"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer draws the maze grid, the frontier and the narration on a terminal.
// A frame is written on every ShowFrontier and ClearVisuals.
type Renderer struct {
	mu sync.Mutex

	out      io.Writer
	profile  termenv.Profile
	grid     maze.Grid
	clear    bool
	history  int
	markdown func(string) (string, error)

	styles    map[string]string
	token     string
	narration []string
	frontier  []string
	frames    int
}

// Option configures the Renderer.
type Option func(*Renderer)

// WithProfile forces a colour profile; termenv.Ascii gives plain text.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = p
	}
}

// WithClearScreen clears the terminal before every frame.
func WithClearScreen(clear bool) Option {
	return func(r *Renderer) {
		r.clear = clear
	}
}

// WithHistory sets how many narration lines are kept.
func WithHistory(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.history = n
		}
	}
}

// WithMarkdown renders the narration through fn (see NewMarkdownRenderer).
func WithMarkdown(fn func(string) (string, error)) Option {
	return func(r *Renderer) {
		r.markdown = fn
	}
}

// NewRenderer returns a Renderer writing frames of m to out.
func NewRenderer(out io.Writer, m *maze.Maze, opts ...Option) *Renderer {
	r := &Renderer{
		out:     out,
		profile: termenv.Ascii,
		history: DefaultHistory,
		styles:  make(map[string]string),
	}
	if m != nil {
		r.grid = m.Grid
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) HighlightNode(node, style string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles[node] = style
	return nil
}

func (r *Renderer) MoveToken(node string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = node
	return nil
}

func (r *Renderer) ShowNarration(lines []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.narration = append(r.narration, lines...)
	if over := len(r.narration) - r.history; over > 0 {
		r.narration = r.narration[over:]
	}
	return nil
}

func (r *Renderer) ShowFrontier(tokens []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frontier = append(r.frontier[:0], tokens...)
	return r.drawLocked()
}

func (r *Renderer) ClearVisuals() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles = make(map[string]string)
	r.token = ""
	r.narration = nil
	r.frontier = nil
	return r.drawLocked()
}

// Frames is the number of frames written so far.
func (r *Renderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *Renderer) drawLocked() error {
	var sb strings.Builder

	for _, row := range r.grid {
		for _, cell := range row {
			sb.WriteString(r.cell(cell))
		}
		sb.WriteString("\n")
	}
	if len(r.grid) > 0 {
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Frontier: [%s]\n", strings.Join(r.frontier, ", "))
	if r.token != "" {
		fmt.Fprintf(&sb, "Robot: %s\n", r.token)
	}
	sb.WriteString("\n")

	narration, err := r.narrationBlock()
	if err != nil {
		return fmt.Errorf("failed to render narration: %w", err)
	}
	sb.WriteString(narration)

	if r.clear {
		termenv.NewOutput(r.out, termenv.WithProfile(r.profile)).ClearScreen()
	}
	if _, err := io.WriteString(r.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	r.frames++
	return nil
}

func (r *Renderer) narrationBlock() (string, error) {
	if len(r.narration) == 0 {
		return "", nil
	}
	if r.markdown == nil {
		return strings.Join(r.narration, "\n") + "\n", nil
	}
	var md strings.Builder
	for _, l := range r.narration {
		md.WriteString("- " + l + "\n")
	}
	return r.markdown(md.String())
}

func (r *Renderer) cell(c maze.Cell) string {
	switch c.Kind {
	case maze.CellWall:
		return r.paint("███", colorWall, false)
	case maze.CellNode:
		label := fmt.Sprintf("%-3s", c.Node)
		if len(c.Node) > 3 {
			label = c.Node[:3]
		}
		if c.Node == r.token {
			return r.profile.String(label).Background(r.profile.Color(colorToken)).Bold().String()
		}
		switch r.styles[c.Node] {
		case domain.StylePath:
			return r.paint(label, colorPath, true)
		case domain.StyleExplored:
			return r.paint(label, colorExplored, false)
		}
		return r.paint(label, colorNode, false)
	default:
		return "   "
	}
}

func (r *Renderer) paint(s, color string, bold bool) string {
	st := r.profile.String(s).Foreground(r.profile.Color(color))
	if bold {
		st = st.Bold()
	}
	return st.String()
}
