package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 3 // Height of each cell (including top border)
	hudHeight  = 4
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Calculate board position (centered)
	boardW := BoardSize*cellWidth + 1  // +1 for right border
	boardH := BoardSize*cellHeight + 1 // +1 for bottom border

	boardX := core.Max((g.screenW-boardW)/2, 0)
	boardY := hudHeight

	board := core.NewRect(boardX, boardY, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderOverlays(dst, board)

	dst.DrawTextCentered(core.Clamp(board.Bottom()+1, 0, g.screenH-1), g.Controls())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score, best tile and undo availability.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawTextColor(board.X+(board.W-len(title))/2, 0, title, core.ColorYellow)

	scoreStr := fmt.Sprintf("Score: %d", g.engine.Score())
	dst.DrawText(board.X, 1, scoreStr)

	maxStr := fmt.Sprintf("Best tile: %d", g.engine.MaxTile())
	dst.DrawText(core.Max(board.Right()-len(maxStr), board.X), 1, maxStr)

	undoStr := "Undo: -"
	undoColor := core.ColorGray
	if g.engine.CanUndo() {
		undoStr = fmt.Sprintf("Undo: %d", g.engine.HistoryLen())
		undoColor = core.ColorCyan
	}
	dst.DrawTextColor(board.X, 2, undoStr, undoColor)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	// Grid lines
	for i := 0; i < BoardSize+1; i++ {
		dst.DrawHLine(board.X, board.Y+i*cellHeight, board.W, '─')
		dst.DrawVLine(board.X+i*cellWidth, board.Y, board.H, '│')
	}

	// Intersections
	for y := 0; y < BoardSize+1; y++ {
		for x := 0; x < BoardSize+1; x++ {
			dst.Set(board.X+x*cellWidth, board.Y+y*cellHeight, gridJoint(x, y))
		}
	}

	// Tiles
	cells := g.engine.Board()
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			val := cells[r][c]
			color := core.TileColor(val)

			inner := core.NewRect(
				board.X+c*cellWidth+1,
				board.Y+r*cellHeight+1,
				cellWidth-1,
				cellHeight-1,
			)
			dst.DrawRect(inner, ' ', color)

			if val == Empty {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := core.Max((inner.W-len(valStr))/2, 0)
			_, cy := inner.Center()
			dst.DrawTextColor(inner.X+padLeft, cy, valStr, color)
		}
	}
}

// gridJoint returns the box-drawing rune for grid intersection (x, y).
func gridJoint(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == BoardSize:
		return '┐'
	case y == BoardSize && x == 0:
		return '└'
	case y == BoardSize && x == BoardSize:
		return '┘'
	case y == 0:
		return '┬'
	case y == BoardSize:
		return '┴'
	case x == 0:
		return '├'
	case x == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.engine.GameOver() {
		maxStr := fmt.Sprintf("Best tile: %d", g.engine.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "U: undo  R: new game")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | U: Undo | R: New | P: Pause | Q: Quit"
}
