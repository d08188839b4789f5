package tests

import (
	"testing"

	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/ports"
)

// RendererContractTest drives a renderer through one complete playback and
// checks that every instruction is accepted, including repeated clears.
func RendererContractTest(t *testing.T, r ports.Renderer) {
	t.Helper()

	t.Run("ExploreTick", func(t *testing.T) {
		if err := r.HighlightNode("A", domain.StyleExplored); err != nil {
			t.Fatalf("HighlightNode: %v", err)
		}
		if err := r.ShowNarration([]string{"Initialize queue with A", "Expand A: enqueue B"}); err != nil {
			t.Fatalf("ShowNarration: %v", err)
		}
		if err := r.ShowFrontier([]string{"B"}); err != nil {
			t.Fatalf("ShowFrontier: %v", err)
		}
	})

	t.Run("PathTick", func(t *testing.T) {
		if err := r.HighlightNode("B", domain.StylePath); err != nil {
			t.Fatalf("HighlightNode: %v", err)
		}
		if err := r.MoveToken("B"); err != nil {
			t.Fatalf("MoveToken: %v", err)
		}
		if err := r.ShowNarration([]string{"Move robot to B"}); err != nil {
			t.Fatalf("ShowNarration: %v", err)
		}
	})

	t.Run("EmptyInputs", func(t *testing.T) {
		if err := r.ShowNarration(nil); err != nil {
			t.Errorf("ShowNarration(nil): %v", err)
		}
		if err := r.ShowFrontier(nil); err != nil {
			t.Errorf("ShowFrontier(nil): %v", err)
		}
	})

	t.Run("ClearTwice", func(t *testing.T) {
		if err := r.ClearVisuals(); err != nil {
			t.Fatalf("ClearVisuals: %v", err)
		}
		if err := r.ClearVisuals(); err != nil {
			t.Fatalf("second ClearVisuals: %v", err)
		}
	})
}
