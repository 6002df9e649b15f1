package tetris

import (
	"fmt"

	"github.com/nuno-faria/tetris/internal/core"
)

// Each board cell is drawn two runes wide so the playfield looks square in
// a terminal.
const cellWidth = 2

const (
	runeBlock = '█'
	runeGhost = '░'
)

// shapeColors maps each tetromino to its classic color.
var shapeColors = [ShapeCount]core.Color{
	ShapeI: core.ColorCyan,
	ShapeO: core.ColorYellow,
	ShapeT: core.ColorMagenta,
	ShapeS: core.ColorGreen,
	ShapeZ: core.ColorRed,
	ShapeJ: core.ColorBlue,
	ShapeL: core.ColorOrange,
}

// ScreenSize returns the buffer dimensions needed to render a game with
// the given configuration: playfield plus border, HUD rows on top, and the
// next-piece preview to the right.
func ScreenSize(cfg Config) (w, h int) {
	w = cfg.Width*cellWidth + 2 + previewWidth
	h = cfg.Height + 2 + hudHeight
	return w, h
}

const (
	hudHeight    = 2
	previewWidth = 14
)

// Render draws the current state into the screen buffer: HUD, bordered
// playfield with locked cells, ghost piece, active piece, and the
// next-piece preview. It reads the state and never mutates it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.state
	cfg := g.cfg

	g.renderHUD(dst, s)

	fieldX := 0
	fieldY := hudHeight
	dst.DrawBox(core.NewRect(fieldX, fieldY, cfg.Width*cellWidth+2, cfg.Height+2))

	// Locked cells
	for idx, occupied := range s.Board {
		col := idx % cfg.stride()
		if !occupied || col == cfg.Width {
			continue
		}
		row := idx / cfg.stride()
		drawCell(dst, fieldX, fieldY, row, col, runeBlock, core.ColorWhite)
	}

	// Ghost piece below the active one, then the active piece over it.
	if s.MaxDrop > 0 {
		ghost := g.catalog.Cells(s.Active.Shape, s.Active.Rot, s.Active.Origin+s.MaxDrop*cfg.stride())
		g.drawPiece(dst, fieldX, fieldY, ghost, runeGhost, core.ColorGray)
	}
	if !s.GameOver {
		cells := g.catalog.Cells(s.Active.Shape, s.Active.Rot, s.Active.Origin)
		g.drawPiece(dst, fieldX, fieldY, cells, runeBlock, shapeColors[s.Active.Shape])
	}

	g.renderPreview(dst, s)

	if s.GameOver {
		g.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Final score: %d", s.Score))
	} else if s.Paused {
		g.renderOverlay(dst, "PAUSED", "Any move resumes")
	}
}

// renderHUD draws the status lines above the playfield.
func (g *Game) renderHUD(dst *core.Screen, s State) {
	hud := fmt.Sprintf(" Score: %d  Lines: %d  Level: %d", s.Score, s.Lines, s.Level(g.cfg))
	if s.Paused {
		hud += "  [PAUSED]"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderPreview draws the queued piece at its rotation-0 spawn shape.
func (g *Game) renderPreview(dst *core.Screen, s State) {
	x := g.cfg.Width*cellWidth + 4
	y := hudHeight + 1
	dst.DrawText(x, y, "Next:")

	grid := Preview(s.Next)
	color := shapeColors[s.Next]
	for row := range grid {
		for col, occupied := range grid[row] {
			if !occupied {
				continue
			}
			for i := 0; i < cellWidth; i++ {
				dst.SetColored(x+col*cellWidth+i, y+2+row, runeBlock, color)
			}
		}
	}
}

// drawPiece draws 4 absolute board cells, skipping any that fall in the
// sentinel column.
func (g *Game) drawPiece(dst *core.Screen, fieldX, fieldY int, cells [4]int, r rune, c core.Color) {
	for _, idx := range cells {
		col := idx % g.cfg.stride()
		if col == g.cfg.Width {
			continue
		}
		drawCell(dst, fieldX, fieldY, idx/g.cfg.stride(), col, r, c)
	}
}

// drawCell fills one board cell (cellWidth runes) inside the field border.
func drawCell(dst *core.Screen, fieldX, fieldY, row, col int, r rune, c core.Color) {
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(fieldX+1+col*cellWidth+i, fieldY+1+row, r, c)
	}
}

// renderOverlay draws a centered two-line message box over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := g.cfg.Width*cellWidth + 2
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 4
	boxX := (w - boxW) / 2
	boxY := hudHeight + (g.cfg.Height+2-boxH)/2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+2, line2)
}
