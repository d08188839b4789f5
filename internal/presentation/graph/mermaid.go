package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/maze"
)

// GraphOverlay contains search results to visualize on the graph.
type GraphOverlay struct {
	Explored    []string
	Path        []string
	CurrentNode string
}

// OverlayFromTrace highlights what a trace explored and the path it found.
func OverlayFromTrace(tr domain.Trace) *GraphOverlay {
	o := &GraphOverlay{Explored: tr.Explored, Path: tr.Path}
	if len(tr.Path) > 0 {
		o.CurrentNode = tr.Path[len(tr.Path)-1]
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart of the maze graph.
// It applies semantic styling:
// - Start: ((Circle))
// - Goal: (((Double circle)))
// - Default: [Rectangle]
// Symmetric edges are drawn once as undirected links; weights other than
// the default are used as labels.
func GenerateMermaid(m *maze.Maze, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	nodes := m.Graph.Nodes()
	for _, id := range nodes {
		opener, closer := "[", "]"
		switch id {
		case m.Start:
			opener, closer = "((", "))"
		case m.Goal:
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(id), opener, id, closer))
	}

	drawn := make(map[[2]string]bool)
	for _, from := range nodes {
		for _, e := range m.Graph.Neighbors(from) {
			if drawn[[2]string{from, e.To}] {
				continue
			}
			back, ok := m.Graph.Weight(e.To, from)
			undirected := ok && back == e.Weight
			if undirected {
				drawn[[2]string{e.To, from}] = true
			}

			arrow := "-->"
			if undirected {
				arrow = "---"
			}
			if e.Weight != maze.DefaultWeight {
				arrow = fmt.Sprintf("-- \"%s\" %s", domain.FormatCost(e.Weight), arrow)
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(from), arrow, sanitizeMermaidID(e.To)))
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef explored fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef path fill:#c8e6c9,stroke:#2e7d32,stroke-width:3px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		onPath := make(map[string]bool)
		for _, id := range overlay.Path {
			onPath[id] = true
		}

		seen := make(map[string]bool)
		for _, id := range overlay.Explored {
			if seen[id] || onPath[id] || !m.Graph.Has(id) {
				continue
			}
			seen[id] = true
			sb.WriteString(fmt.Sprintf("    class %s explored;\n", sanitizeMermaidID(id)))
		}
		for _, id := range overlay.Path {
			if seen[id] || id == overlay.CurrentNode || !m.Graph.Has(id) {
				continue
			}
			seen[id] = true
			sb.WriteString(fmt.Sprintf("    class %s path;\n", sanitizeMermaidID(id)))
		}

		if overlay.CurrentNode != "" && m.Graph.Has(overlay.CurrentNode) {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode)))
		}
	}

	return sb.String()
}

// sanitizeMermaidID prefixes ids so numeric node names stay valid.
func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return "n_" + s
}
