package tetris

import (
	"strings"
	"testing"

	"github.com/nuno-faria/tetris/internal/core"
)

func renderToString(g *Game) string {
	screen := core.NewScreen(ScreenSize(g.Config()))
	g.Render(screen)
	return screen.String()
}

func TestRenderHUD(t *testing.T) {
	g := NewGame(DefaultConfig(), 1, t0)
	g.state.Score = 1200
	g.state.Lines = 14

	out := renderToString(g)
	if !strings.Contains(out, "Score: 1200") {
		t.Error("HUD does not show the score")
	}
	if !strings.Contains(out, "Lines: 14") {
		t.Error("HUD does not show the line count")
	}
	if !strings.Contains(out, "Level: 2") {
		t.Error("HUD does not show the level")
	}
	if !strings.Contains(out, "Next:") {
		t.Error("preview label missing")
	}
}

func TestRenderActivePieceCells(t *testing.T) {
	g := newTestGame(t, ShapeO)
	screen := core.NewScreen(ScreenSize(g.Config()))
	g.Render(screen)

	// The O spawns at rows 0-1, columns 4-5; each cell is two runes wide
	// and the field interior starts at (1, hudHeight+1).
	for _, pos := range [][2]int{{0, 4}, {0, 5}, {1, 4}, {1, 5}} {
		x := 1 + pos[1]*cellWidth
		y := hudHeight + 1 + pos[0]
		cell := screen.GetCell(x, y)
		if cell.Rune != runeBlock {
			t.Errorf("cell (%d,%d): rune %q, want block", pos[0], pos[1], cell.Rune)
		}
		if cell.Color != shapeColors[ShapeO] {
			t.Errorf("cell (%d,%d): color %v, want %v", pos[0], pos[1], cell.Color, shapeColors[ShapeO])
		}
	}
}

func TestRenderGhostAtRest(t *testing.T) {
	g := newTestGame(t, ShapeO)
	screen := core.NewScreen(ScreenSize(g.Config()))
	g.Render(screen)

	// Ghost cells sit MaxDrop rows below the active piece.
	y := hudHeight + 1 + g.state.MaxDrop
	x := 1 + 4*cellWidth
	if cell := screen.GetCell(x, y); cell.Rune != runeGhost {
		t.Fatalf("ghost cell rune = %q, want ghost shade", cell.Rune)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := NewGame(DefaultConfig(), 1, t0)

	g.state.Paused = true
	if out := renderToString(g); !strings.Contains(out, "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.state.Paused = false
	g.state.GameOver = true
	g.state.Score = 700
	out := renderToString(g)
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game-over overlay missing")
	}
	if !strings.Contains(out, "Final score: 700") {
		t.Error("game-over overlay does not show the final score")
	}
}

func TestScreenSize(t *testing.T) {
	w, h := ScreenSize(DefaultConfig())
	if w != 10*cellWidth+2+previewWidth {
		t.Errorf("width = %d", w)
	}
	if h != 20+2+hudHeight {
		t.Errorf("height = %d", h)
	}
}
