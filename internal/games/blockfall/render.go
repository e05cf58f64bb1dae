package blockfall

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// Board geometry on screen
const (
	cellW      = 2  // columns per grid cell
	hudHeight  = 1  // title line above the board
	sidebarGap = 2  // columns between board and sidebar
	sidebarW   = 22 // sidebar width
)

// layout places the board and sidebar on the screen.
type layout struct {
	boardX, boardY int // top-left of the board border
	boardW, boardH int // including the border
	sideX          int
	needW, needH   int
	fits           bool
}

func computeLayout(w, h, screenW, screenH int) layout {
	l := layout{
		boardW: w*cellW + 2,
		boardH: h + 2,
	}
	l.needW = l.boardW + sidebarGap + sidebarW
	l.needH = hudHeight + l.boardH
	l.fits = screenW >= l.needW && screenH >= l.needH

	l.boardX = max(0, (screenW-l.needW)/2)
	l.boardY = hudHeight
	l.sideX = l.boardX + l.boardW + sidebarGap
	return l
}

// blockColors maps normal block ids to their colour.
var blockColors = map[engine.BlockID]core.Color{
	engine.BlockT: core.ColorMagenta,
	engine.BlockO: core.ColorYellow,
	engine.BlockL: core.ColorOrange,
	engine.BlockJ: core.ColorBlue,
	engine.BlockI: core.ColorCyan,
	engine.BlockS: core.ColorGreen,
	engine.BlockZ: core.ColorRed,
}

// glyph returns the two runes and colour used to draw a cell. fuse is the
// bomb timer, or 0 for bombs still on the falling piece.
func glyph(id engine.BlockID, fuse int) ([cellW]rune, core.Color) {
	switch id {
	case engine.Empty:
		return [cellW]rune{' ', '.'}, core.ColorGray
	case engine.Bomb:
		if fuse <= 0 {
			return [cellW]rune{'●', '●'}, core.ColorBrightRed
		}
		d := '9'
		if fuse < 10 {
			d = rune('0' + fuse)
		}
		return [cellW]rune{'●', d}, core.ColorBrightRed
	case engine.Laser:
		return [cellW]rune{'═', '═'}, core.ColorBrightWhite
	case engine.Extruder:
		return [cellW]rune{'▒', '▒'}, core.ColorPink
	default:
		c, ok := blockColors[id]
		if !ok {
			c = core.ColorDefault
		}
		return [cellW]rune{'█', '█'}, c
	}
}

// Render draws the board, the falling piece, the sidebar and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	snap := g.session.Snapshot()

	g.renderHUD(dst, snap)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Resize to %dx%d", g.layout.needW, g.layout.needH))
		return
	}

	g.renderBoard(dst, snap)
	g.renderSidebar(dst, snap)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the title line.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	hud := fmt.Sprintf(" %s | Score: %d  Lines: %d", g.Title(), snap.Score, snap.Lines)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
}

// renderBoard draws the border, the settled cells and the active piece.
func (g *Game) renderBoard(dst *core.Screen, snap engine.Snapshot) {
	l := g.layout
	dst.DrawBoxColor(core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH), core.ColorGray)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			id, fuse := snap.Cells[y][x], snap.Timers[y][x]
			if p := snap.PieceAt(x, y); p != engine.Empty {
				id, fuse = p, 0
			}
			runes, c := glyph(id, fuse)
			sx := l.boardX + 1 + x*cellW
			sy := l.boardY + 1 + y
			for i, r := range runes {
				dst.SetColor(sx+i, sy, r, c)
			}
		}
	}
}

// renderSidebar draws stats, upcoming special guarantees and the legend.
func (g *Game) renderSidebar(dst *core.Screen, snap engine.Snapshot) {
	x, y := g.layout.sideX, g.layout.boardY+1

	line := func(text string, c core.Color) {
		dst.DrawTextColor(x, y, text, c)
		y++
	}

	line(fmt.Sprintf("Score    %d", snap.Score), core.ColorBrightWhite)
	line(fmt.Sprintf("Lines    %d", snap.Lines), core.ColorWhite)
	line(fmt.Sprintf("Pieces   %d", snap.Pieces), core.ColorWhite)
	line(fmt.Sprintf("Top-outs %d", snap.TopOuts), core.ColorWhite)
	line(fmt.Sprintf("Drop     %dms", snap.DropInterval.Milliseconds()), core.ColorWhite)
	y++

	area := strconv.Itoa(2*g.rules.BlastRadius + 1)
	area += "x" + area
	specials := []struct {
		id     engine.BlockID
		name   string
		p      float64
		since  int
		legend []string
	}{
		{engine.Bomb, "Bomb", g.rules.BombProbability, snap.SinceBomb,
			[]string{"Bomb: clears " + area, "  after " + strconv.Itoa(g.rules.BombTimer) + " pieces"}},
		{engine.Laser, "Laser", g.rules.LaserProbability, snap.SinceLaser,
			[]string{"Laser: empties row"}},
		{engine.Extruder, "Extruder", g.rules.ExtruderProbability, snap.SinceExtruder,
			[]string{"Extruder: fills " + area}},
	}

	var legend []string
	for _, s := range specials {
		if s.p <= 0 {
			continue
		}
		if legend == nil {
			line("Specials", core.ColorBrightWhite)
		}
		runes, c := glyph(s.id, 0)
		dst.DrawTextColor(x, y, string(runes[:]), c)
		dst.DrawTextColor(x+cellW+1, y, fmt.Sprintf("%-8s %s", s.name, guaranteedIn(s.p, s.since)), core.ColorWhite)
		y++
		legend = append(legend, s.legend...)
	}
	if legend == nil {
		line("No special blocks", core.ColorGray)
		return
	}

	y++
	for _, text := range legend {
		line(text, core.ColorGray)
	}
}

// guaranteedIn formats how many pieces remain until a special is forced.
func guaranteedIn(p float64, since int) string {
	left := engine.GuaranteedInterval(p) - since
	if left <= 1 {
		return "next"
	}
	return "<= " + strconv.Itoa(left)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
