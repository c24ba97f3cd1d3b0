package crunch

import (
	"fmt"

	"github.com/vovakirdan/cookie-crunch/internal/core"
	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/board"
)

// Layout constants, in screen cells.
const (
	cellWidth  = 3 // Each board cell is drawn as " x "
	hudRows    = 3 // Title, score line, blank
	footerRows = 2 // Flash message, key help
)

// pieceColors maps piece types to screen colours.
var pieceColors = map[board.PieceType]core.Color{
	board.Croissant:   core.ColorBrightYellow,
	board.Cupcake:     core.ColorPink,
	board.Danish:      core.ColorOrange,
	board.Donut:       core.ColorBrown,
	board.Macaroon:    core.ColorBrightGreen,
	board.SugarCookie: core.ColorBrightWhite,
}

const helpText = "arrows move  space select  x cancel  ? hint  z shuffle  p pause  q quit"

// Resize updates the layout for a new terminal size without resetting the game.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.calculateLayout()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.board == nil {
		g.renderFailure(dst)
		return
	}

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	frame := g.boardFrame(dst)
	g.renderBoard(dst, frame)
	g.renderFooter(dst)
	g.renderOverlay(dst, frame)
}

func (g *Game) renderFailure(dst *core.Screen) {
	dst.DrawTextCenteredColor(dst.Height()/2-1, "Cookie Crunch could not start", core.ColorRed)
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	title := fmt.Sprintf("%s  %s", g.Title(), g.level.Title())
	dst.DrawTextCenteredColor(0, title, core.ColorBrightYellow)

	status := fmt.Sprintf("Score %d / %d   Moves %d", g.score, g.target, g.movesLeft)
	if g.mode == ModeEndless {
		status += fmt.Sprintf("   Stage %d", g.stage)
	}
	dst.DrawTextCentered(1, status)
}

// boardFrame returns the box around the board, centered below the HUD.
func (g *Game) boardFrame(dst *core.Screen) core.Rect {
	w := g.board.Columns()*cellWidth + 2
	h := g.board.Rows() + 2
	area := dst.Height() - hudRows - footerRows
	r := core.CenteredRect(dst.Width(), area, w, h)
	r.Y += hudRows
	return r
}

func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	dst.DrawBox(frame, core.ColorGray)

	var hinted [2]Pos
	if g.hint != nil {
		for i, id := range []board.CookieID{g.hint.A, g.hint.B} {
			if ck, ok := g.board.Cookie(id); ok {
				hinted[i] = Pos{ck.Column, ck.Row}
			}
		}
	}

	rows := g.board.Rows()
	for row := 0; row < rows; row++ {
		y := frame.Y + 1 + (rows - 1 - row)
		for column := 0; column < g.board.Columns(); column++ {
			x := frame.X + 1 + column*cellWidth
			p := Pos{column, row}
			if !g.board.TileAt(column, row) {
				continue
			}

			glyph, color := '.', core.ColorGray
			if ck, ok := g.board.CookieAt(column, row); ok {
				glyph, color = ck.Type.Glyph(), pieceColors[ck.Type]
			}
			dst.SetColor(x+1, y, glyph, color)

			switch {
			case g.selection != nil && *g.selection == p:
				dst.SetColor(x, y, '<', core.ColorBrightCyan)
				dst.SetColor(x+2, y, '>', core.ColorBrightCyan)
			case g.cursor == p:
				dst.SetColor(x, y, '[', core.ColorWhite)
				dst.SetColor(x+2, y, ']', core.ColorWhite)
			case g.hint != nil && (hinted[0] == p || hinted[1] == p):
				dst.SetColor(x, y, '*', core.ColorBrightMagenta)
				dst.SetColor(x+2, y, '*', core.ColorBrightMagenta)
			}
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	if g.flash != "" {
		dst.DrawTextCenteredColor(dst.Height()-2, g.flash, core.ColorBrightCyan)
	}
	dst.DrawTextCenteredColor(dst.Height()-1, helpText, core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen, frame core.Rect) {
	var lines []string
	color := core.ColorBrightWhite
	switch g.state {
	case StatePaused:
		lines = []string{"PAUSED", "press p to resume"}
	case StateCleared:
		lines = []string{"LEVEL CLEARED", fmt.Sprintf("score %d in %d moves", g.score, g.movesUsed), "r restart  b menu"}
		color = core.ColorBrightGreen
	case StateOutOfMoves:
		lines = []string{"OUT OF MOVES", fmt.Sprintf("score %d", g.score), "r restart  b menu"}
		color = core.ColorBrightRed
	case StateFailed:
		lines = []string{"BOARD ERROR", "r restart  b menu"}
		color = core.ColorRed
	default:
		return
	}

	y := frame.Y + frame.H/2 - len(lines)/2
	for i, line := range lines {
		dst.DrawTextCenteredColor(y+i, " "+line+" ", color)
	}
}
