package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/Shake-N-Baker/ADyingWorld/internal/tile"
	"github.com/Shake-N-Baker/ADyingWorld/internal/world"
)

const (
	testTermW = 40
	testTermH = 20 + HUDRows
)

func testWorld(t *testing.T) *world.World {
	t.Helper()
	cfg := world.Config{TilesWide: 64, TilesHigh: 64, ZoneWide: 32, ZoneHigh: 32}
	w, err := world.New(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	return w
}

func viewerAtSpawn(w *world.World) CharacterInfo {
	x, y := w.Spawn()
	return CharacterInfo{ID: "ann", Name: "ann", X: x, Y: y}
}

func TestRenderDiffs(t *testing.T) {
	w := testWorld(t)
	e := NewEngine(testTermW, testTermH)
	chars := []CharacterInfo{viewerAtSpawn(w)}
	frame := FrameInfo{Turn: 0, TurnsPerDay: 360, Online: 1}

	first := e.Render("ann", w, chars, frame, testTermW, testTermH)
	if !strings.Contains(first, "@") || !strings.HasSuffix(first, Reset) {
		t.Fatalf("first frame missing viewer or reset")
	}
	if again := e.Render("ann", w, chars, frame, testTermW, testTermH); again != "" {
		t.Errorf("unchanged frame emitted %d bytes", len(again))
	}

	chars[0].Y++
	moved := e.Render("ann", w, chars, frame, testTermW, testTermH)
	if moved == "" {
		t.Error("move emitted nothing")
	}
}

func TestRenderPlacesViewerWithYUp(t *testing.T) {
	w := testWorld(t)
	e := NewEngine(testTermW, testTermH)
	v := viewerAtSpawn(w)
	e.Render("ann", w, []CharacterInfo{v}, FrameInfo{TurnsPerDay: 360}, testTermW, testTermH)

	vp := NewViewport(v.X, v.Y, testTermW/TileWidth, testTermH-HUDRows, w.Width(), w.Height())
	col, row := vp.WorldToScreen(v.X, v.Y)
	if got := e.current[row][col*TileWidth].Ch; got != '@' {
		t.Fatalf("viewer cell = %q", got)
	}
	if got := e.current[row][col*TileWidth+1].Ch; got != 'a' {
		t.Errorf("viewer initial = %q, want 'a'", got)
	}

	// The tile north of the viewer is one row up on screen.
	north := w.At(v.X, v.Y+1)
	want := Cells(north)
	cells := want.Base
	if want.HasOver {
		cells = want.Over
	}
	if got := e.current[row-1][col*TileWidth]; got.Ch != cells[0].Ch {
		t.Errorf("tile north of viewer drawn as %q, want %q", got.Ch, cells[0].Ch)
	}
}

func TestRenderOverheadHidesOthers(t *testing.T) {
	w := testWorld(t)
	v := viewerAtSpawn(w)
	w.At(v.X+2, v.Y).Update(tile.Set(tile.DecorationOverhead, 45))
	w.At(v.X, v.Y).Update(tile.Set(tile.Roof, 22))

	e := NewEngine(testTermW, testTermH)
	villager := CharacterInfo{ID: "villager-1", Name: "Villager 1", X: v.X + 2, Y: v.Y, Villager: true}
	e.Render("ann", w, []CharacterInfo{v, villager}, FrameInfo{TurnsPerDay: 360}, testTermW, testTermH)

	vp := NewViewport(v.X, v.Y, testTermW/TileWidth, testTermH-HUDRows, w.Width(), w.Height())
	col, row := vp.WorldToScreen(v.X+2, v.Y)
	if got := e.current[row][col*TileWidth].Ch; got != '♠' {
		t.Errorf("villager under canopy drawn as %q, want canopy", got)
	}
	col, row = vp.WorldToScreen(v.X, v.Y)
	if got := e.current[row][col*TileWidth].Ch; got != '@' {
		t.Errorf("viewer under roof drawn as %q, want '@'", got)
	}
}

func TestRenderTintsByDayAndLight(t *testing.T) {
	w := testWorld(t)
	v := viewerAtSpawn(w)
	e := NewEngine(testTermW, testTermH)
	e.Render("ann", w, []CharacterInfo{v}, FrameInfo{Turn: 270, TurnsPerDay: 360}, testTermW, testTermH)

	vp := NewViewport(v.X, v.Y, testTermW/TileWidth, testTermH-HUDRows, w.Width(), w.Height())
	for _, sc := range [][2]int{{0, 0}, {3, 5}, {vp.ViewW - 1, vp.ViewH - 1}} {
		wx, wy := vp.ScreenToWorld(sc[0], sc[1])
		tl := w.At(wx, wy)
		tc := Cells(tl)
		cells := tc.Base
		if tc.HasOver {
			cells = tc.Over
		}
		want := Shade(cells[0], TileTint(tl, world.NightTint))
		if got := e.current[sc[1]][sc[0]*TileWidth]; got != want {
			t.Errorf("screen %v (world %d,%d light %d) = %+v, want %+v", sc, wx, wy, tl.LightLevel, got, want)
		}
	}
}

func TestTileTint(t *testing.T) {
	dark := tile.New(80)
	lit := tile.New(80)
	lit.LightLevel = 9
	if got := TileTint(&dark, 0.4); got != 0.4 {
		t.Errorf("unlit tile at night = %v, want 0.4", got)
	}
	if got := TileTint(&lit, 0.4); got != world.LightTint(9) {
		t.Errorf("lit tile at night = %v, want %v", got, world.LightTint(9))
	}
	if got := TileTint(&lit, 1.0); got != 1.0 {
		t.Errorf("lit tile by day = %v, want 1", got)
	}
}

func TestShade(t *testing.T) {
	c := Shade(Cell{Ch: 'x', FgR: 200, FgG: 100, BgB: 51}, 0.5)
	if c.FgR != 100 || c.FgG != 50 || c.BgB != 26 || c.Ch != 'x' {
		t.Errorf("Shade = %+v", c)
	}
	if c := Shade(Cell{FgR: 200}, 3); c.FgR != 200 {
		t.Errorf("Shade above 1 brightened: %d", c.FgR)
	}
}

func TestClockTime(t *testing.T) {
	tests := []struct {
		turn, perDay            int
		wantDay, wantH, wantMin int
	}{
		{0, 360, 1, 6, 0},
		{90, 360, 1, 12, 0},
		{269, 360, 1, 23, 56},
		{270, 360, 2, 0, 0},
		{5, 0, 1, 12, 0},
	}
	for _, tt := range tests {
		d, h, m := ClockTime(tt.turn, tt.perDay)
		if d != tt.wantDay || h != tt.wantH || m != tt.wantMin {
			t.Errorf("ClockTime(%d, %d) = day %d %02d:%02d, want day %d %02d:%02d",
				tt.turn, tt.perDay, d, h, m, tt.wantDay, tt.wantH, tt.wantMin)
		}
	}
}

func rowText(e *Engine, row int) string {
	var sb strings.Builder
	for _, c := range e.current[row] {
		sb.WriteRune(c.Ch)
	}
	return sb.String()
}

func TestHUDShowsClockAndDebug(t *testing.T) {
	w := testWorld(t)
	v := viewerAtSpawn(w)
	v.DebugView = true
	e := NewEngine(80, 24)
	e.Render("ann", w, []CharacterInfo{v}, FrameInfo{Turn: 90, TurnsPerDay: 360, Online: 3}, 80, 24)

	clock := rowText(e, 24-HUDRows+1)
	for _, want := range []string{"ann", "Day 1  12:00", "3 Online"} {
		if !strings.Contains(clock, want) {
			t.Errorf("clock row %q missing %q", clock, want)
		}
	}
	if info := rowText(e, 24-HUDRows+2); !strings.Contains(info, "town zone") {
		t.Errorf("debug row = %q", info)
	}

	v.DebugView = false
	e.Render("ann", w, []CharacterInfo{v}, FrameInfo{Turn: 90, TurnsPerDay: 360, Online: 3}, 80, 24)
	if help := rowText(e, 24-HUDRows+2); !strings.Contains(help, "Q Quit") {
		t.Errorf("help row = %q", help)
	}
}
