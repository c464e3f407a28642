package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/Shake-N-Baker/ADyingWorld/internal/tile"
	"github.com/Shake-N-Baker/ADyingWorld/internal/world"
)

const HUDRows = 3

var sentinel = Cell{Ch: '\x00', FgR: 255, BgB: 255, Bold: true}

// CharacterInfo is the minimal character data the renderer needs.
type CharacterInfo struct {
	ID        string
	Name      string
	X, Y      int
	Color     int // index into PlayerBGColors
	Villager  bool
	DebugView bool
}

// FrameInfo carries the clock and population shown in the HUD.
type FrameInfo struct {
	Tick        uint64
	Turn        int
	TurnsPerDay int
	Online      int
}

// Engine is a per-session double-buffer diff renderer.
type Engine struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{
		width:      width,
		height:     height,
		firstFrame: true,
	}
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	return e
}

// Resize adjusts the renderer for a new terminal size.
func (e *Engine) Resize(width, height int) {
	e.width = width
	e.height = height
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.firstFrame = true
}

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := 0; y < e.height; y++ {
		buf[y] = make([]Cell, e.width)
		for x := 0; x < e.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Render produces the ANSI byte output for the current frame. The caller
// must hold read access to w for the duration of the call.
func (e *Engine) Render(viewerID string, w *world.World, chars []CharacterInfo, frame FrameInfo, termW, termH int) string {
	if termW != e.width || termH != e.height {
		e.Resize(termW, termH)
	}

	viewer := CharacterInfo{Name: viewerID}
	viewer.X, viewer.Y = w.Spawn()
	for _, c := range chars {
		if c.ID == viewerID {
			viewer = c
			break
		}
	}

	viewH := termH - HUDRows
	if viewH < 0 {
		viewH = 0
	}
	vp := NewViewport(viewer.X, viewer.Y, termW/TileWidth, viewH, w.Width(), w.Height())
	dayTint := world.DayTimeTint(frame.Turn, frame.TurnsPerDay)

	// --- Pass 1: tiles, keeping roofs and canopies for later ---
	type pendingOver struct {
		col, row int
		cells    [TileWidth]Cell
	}
	var overs []pendingOver

	void := Cell{Ch: ' ', BgR: voidBG[0], BgG: voidBG[1], BgB: voidBG[2]}
	for row := 0; row < e.height; row++ {
		for x := 0; x < e.width; x++ {
			e.next[row][x] = void
		}
	}
	for row := 0; row < vp.ViewH; row++ {
		for col := 0; col < vp.ViewW; col++ {
			t := w.At(vp.ScreenToWorld(col, row))
			if t == nil {
				continue
			}
			tint := TileTint(t, dayTint)
			tc := Cells(t)
			for i := range tc.Base {
				e.next[row][col*TileWidth+i] = Shade(tc.Base[i], tint)
			}
			if tc.HasOver {
				for i := range tc.Over {
					tc.Over[i] = Shade(tc.Over[i], tint)
				}
				overs = append(overs, pendingOver{col, row, tc.Over})
			}
		}
	}

	// --- Pass 2: characters ---
	for _, c := range chars {
		if c.ID == viewerID {
			continue
		}
		e.drawCharacter(vp, w, c, dayTint, false)
	}

	// --- Pass 3: overhead layers (on top of characters) ---
	for _, o := range overs {
		for i, cell := range o.cells {
			e.next[o.row][o.col*TileWidth+i] = cell
		}
	}

	// The viewer is never hidden under a roof.
	e.drawCharacter(vp, w, viewer, dayTint, true)

	e.drawHUD(viewer, w, frame, dayTint)

	// Diff current vs next, emit only changed cells
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	// Swap buffers
	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}

// TileTint is the color multiplier for t: the brighter of daylight and
// the tile's own light.
func TileTint(t *tile.Tile, dayTint float64) float64 {
	return math.Max(dayTint, world.LightTint(t.LightLevel))
}

func (e *Engine) drawCharacter(vp Viewport, w *world.World, c CharacterInfo, dayTint float64, self bool) {
	col, row := vp.WorldToScreen(c.X, c.Y)
	if col < 0 {
		return
	}
	sx := col * TileWidth
	bg := e.next[row][sx]

	var cells [TileWidth]Cell
	if c.Villager {
		fg := VillagerColor
		cells[0] = Cell{Ch: '☺', FgR: fg[0], FgG: fg[1], FgB: fg[2], BgR: bg.BgR, BgG: bg.BgG, BgB: bg.BgB}
		cells[1] = Cell{Ch: ' ', BgR: bg.BgR, BgG: bg.BgG, BgB: bg.BgB}
		if t := w.At(c.X, c.Y); t != nil {
			tint := TileTint(t, dayTint)
			cells[0], cells[1] = Shade(cells[0], tint), Shade(cells[1], tint)
		}
	} else {
		pc := PlayerBGColors[c.Color%len(PlayerBGColors)]
		initial := ' '
		for _, r := range c.Name {
			initial = r
			break
		}
		cells[0] = Cell{Ch: '@', FgR: 255, FgG: 255, FgB: 255, BgR: pc[0], BgG: pc[1], BgB: pc[2], Bold: self}
		cells[1] = Cell{Ch: initial, FgR: 255, FgG: 255, FgB: 255, BgR: pc[0], BgG: pc[1], BgB: pc[2], Bold: self}
	}
	for i, cell := range cells {
		if sx+i < e.width {
			e.next[row][sx+i] = cell
		}
	}
}

// ClockTime converts a turn count into a day number (from 1) and the time
// of day. Midnight falls at the middle of the night floor of DayTimeTint,
// so turn 0 is dawn.
func ClockTime(turn, turnsPerDay int) (day, hour, minute int) {
	if turnsPerDay <= 0 {
		return 1, 12, 0
	}
	shifted := turn + turnsPerDay/4
	phase := ((shifted % turnsPerDay) + turnsPerDay) % turnsPerDay
	mins := phase * 24 * 60 / turnsPerDay
	return (shifted-phase)/turnsPerDay + 1, mins / 60, mins % 60
}

// --- HUD ---

func (e *Engine) drawHUD(viewer CharacterInfo, w *world.World, frame FrameInfo, dayTint float64) {
	hudY := e.height - HUDRows
	if hudY < 0 {
		return
	}
	bgR, bgG, bgB := uint8(15), uint8(18), uint8(30)

	// Row 0: separator, brighter by day
	for x := 0; x < e.width; x++ {
		v := uint8(40 + 60*dayTint)
		e.next[hudY][x] = Cell{Ch: '━', FgR: v, FgG: v + 20, FgB: v + 40, BgR: bgR, BgG: bgG, BgB: bgB}
	}
	for row := 1; row < HUDRows; row++ {
		for x := 0; x < e.width; x++ {
			e.next[hudY+row][x] = Cell{Ch: ' ', BgR: bgR, BgG: bgG, BgB: bgB}
		}
	}

	pc := PlayerBGColors[viewer.Color%len(PlayerBGColors)]
	pR, pG, pB := pc[0]+(255-pc[0])/3, pc[1]+(255-pc[1])/3, pc[2]+(255-pc[2])/3

	// Row 1: name, clock, online count
	day, hour, minute := ClockTime(frame.Turn, frame.TurnsPerDay)
	row1 := hudY + 1
	col := e.writeText(row1, 1, e.width, viewer.Name, pR, pG, pB, bgR, bgG, bgB, true)
	col = e.writeText(row1, col, e.width, "  │  ", 60, 65, 85, bgR, bgG, bgB, false)
	col = e.writeText(row1, col, e.width, fmt.Sprintf("Day %d  %02d:%02d", day, hour, minute), 220, 200, 140, bgR, bgG, bgB, false)
	col = e.writeText(row1, col, e.width, "  │  ", 60, 65, 85, bgR, bgG, bgB, false)
	e.writeText(row1, col, e.width, fmt.Sprintf("%d Online", frame.Online), 180, 180, 195, bgR, bgG, bgB, false)

	// Row 2: controls, or tile details in debug view
	row2 := hudY + 2
	if !viewer.DebugView {
		e.writeText(row2, 1, e.width, "←↑↓→/WASD Move  │  T Tile info  │  Q Quit", 130, 130, 145, bgR, bgG, bgB, false)
		return
	}
	info := fmt.Sprintf("(%d,%d)  light %d  tint %.2f", viewer.X, viewer.Y, w.LightLevel(viewer.X, viewer.Y),
		math.Max(dayTint, world.LightTint(w.LightLevel(viewer.X, viewer.Y))))
	if z, ok := w.ZoneAt(viewer.X, viewer.Y); ok {
		info += fmt.Sprintf("  %s zone (%d,%d)", z.Biome, z.Region.X/z.Region.W, z.Region.Y/z.Region.H)
	}
	for _, l := range tile.Layers[1:] {
		if s := w.Tile(l, viewer.X, viewer.Y); s != tile.None {
			info += fmt.Sprintf("  %s=%d", l, s)
		}
	}
	e.writeText(row2, 1, e.width, info, 150, 200, 150, bgR, bgG, bgB, false)
}

// writeText writes colored text into a bounded region [col, maxCol). Returns the next column position.
func (e *Engine) writeText(row, col, maxCol int, text string, fgR, fgG, fgB, bgR, bgG, bgB uint8, bold bool) int {
	for _, r := range text {
		if col >= maxCol || col >= e.width {
			break
		}
		if row >= 0 && row < e.height && col >= 0 {
			e.next[row][col] = Cell{Ch: r, FgR: fgR, FgG: fgG, FgB: fgB, BgR: bgR, BgG: bgG, BgB: bgB, Bold: bold}
		}
		col++
	}
	return col
}
