package game

import (
	"math/rand"
	"testing"

	"github.com/Shake-N-Baker/ADyingWorld/internal/logger"
	"github.com/Shake-N-Baker/ADyingWorld/internal/tile"
	"github.com/Shake-N-Baker/ADyingWorld/internal/world"
)

func newTestLoop(t *testing.T, villagers int) *GameLoop {
	t.Helper()
	w, err := world.New(world.DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	opts := DefaultOptions()
	opts.Villagers = villagers
	return NewGameLoop(w, opts, rand.New(rand.NewSource(2)), logger.Discard())
}

func TestVillagersSpawnInTown(t *testing.T) {
	gl := newTestLoop(t, 6)
	if len(gl.villagers) != 6 {
		t.Fatalf("%d villagers, want 6", len(gl.villagers))
	}
	town := gl.world.TownZone().Region
	seen := map[[2]int]bool{}
	for _, v := range gl.villagers {
		if !town.Contains(v.X, v.Y) {
			t.Errorf("%s at (%d,%d) outside the town", v.ID, v.X, v.Y)
		}
		if gl.world.PathBlocked(v.X, v.Y) {
			t.Errorf("%s spawned on a blocked tile", v.ID)
		}
		if seen[[2]int{v.X, v.Y}] {
			t.Errorf("two villagers share (%d,%d)", v.X, v.Y)
		}
		seen[[2]int{v.X, v.Y}] = true
	}
}

func TestPlayerSpawnAndReconnect(t *testing.T) {
	gl := newTestLoop(t, 0)
	sx, sy := gl.world.Spawn()

	id, _ := gl.AddPlayer("ann")
	p := gl.players[id]
	if p.X != sx || p.Y != sy {
		t.Fatalf("spawned at (%d,%d), want (%d,%d)", p.X, p.Y, sx, sy)
	}

	gl.processInput(InputEvent{PlayerID: id, Action: ActionUp})
	gl.RemovePlayer(id)

	id, _ = gl.AddPlayer("ann")
	p = gl.players[id]
	if p.X != sx || p.Y != sy+1 {
		t.Errorf("reconnected at (%d,%d), want (%d,%d)", p.X, p.Y, sx, sy+1)
	}

	dup, _ := gl.AddPlayer("ann")
	if dup == id {
		t.Error("second session with the same name reused the player ID")
	}
	if d := gl.players[dup]; d.X == p.X && d.Y == p.Y {
		t.Errorf("second session stacked on the first at (%d,%d)", d.X, d.Y)
	}
}

func TestJoinsNeverStack(t *testing.T) {
	gl := newTestLoop(t, 2)
	sx, sy := gl.world.Spawn()
	place := func(c *Character, x, y int) {
		c.X, c.Y, c.NewX, c.NewY = x, y, x, y
	}
	place(gl.villagers[0], sx, sy)
	place(gl.villagers[1], sx-1, sy)

	seen := map[[2]int]string{{sx, sy}: "villager", {sx - 1, sy}: "villager"}
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		id, _ := gl.AddPlayer(name)
		p := gl.players[id]
		k := [2]int{p.X, p.Y}
		if other, ok := seen[k]; ok {
			t.Fatalf("%s joined on (%d,%d) held by %s", id, p.X, p.Y, other)
		}
		if gl.world.PathBlocked(p.X, p.Y) {
			t.Errorf("%s joined on a blocked tile", id)
		}
		if d := abs(p.X-sx) + abs(p.Y-sy); d > 2 {
			t.Errorf("%s joined %d steps from spawn", id, d)
		}
		seen[k] = id
	}

	// A reconnect whose saved tile was taken moves aside instead of stacking.
	pa := gl.players["a"]
	ax, ay := pa.X, pa.Y
	gl.RemovePlayer("a")
	place(gl.villagers[0], ax, ay)
	id, _ := gl.AddPlayer("a")
	if p := gl.players[id]; gl.occupied(p.X, p.Y, &p.Character) {
		t.Errorf("reconnect stacked at (%d,%d)", p.X, p.Y)
	}
}

func TestPlayerMovement(t *testing.T) {
	gl := newTestLoop(t, 0)
	sx, sy := gl.world.Spawn()
	a, _ := gl.AddPlayer("a")
	b, _ := gl.AddPlayer("b")

	if p := gl.players[b]; p.X != sx-1 || p.Y != sy {
		t.Fatalf("b joined at (%d,%d), want (%d,%d)", p.X, p.Y, sx-1, sy)
	}

	tests := []struct {
		name   string
		id     string
		action Action
		wantX  int
		wantY  int
	}{
		{"up is y+1", a, ActionUp, sx, sy + 1},
		{"down is y-1", a, ActionDown, sx, sy},
		{"blocked by another player", b, ActionRight, sx - 1, sy},
		{"right", a, ActionRight, sx + 1, sy},
		{"step onto freed cell", b, ActionRight, sx, sy},
		{"left", b, ActionLeft, sx - 1, sy},
	}
	for _, tt := range tests {
		gl.processInput(InputEvent{PlayerID: tt.id, Action: tt.action})
		p := gl.players[tt.id]
		if p.X != tt.wantX || p.Y != tt.wantY {
			t.Errorf("%s: at (%d,%d), want (%d,%d)", tt.name, p.X, p.Y, tt.wantX, tt.wantY)
		}
	}

	gl.world.At(sx-1, sy+1).Update(tile.Blocked())
	gl.processInput(InputEvent{PlayerID: b, Action: ActionUp})
	if p := gl.players[b]; p.Y != sy {
		t.Errorf("walked onto a blocked tile: (%d,%d)", p.X, p.Y)
	}

	gl.processInput(InputEvent{PlayerID: b, Action: ActionDebug})
	if !gl.players[b].DebugView {
		t.Error("debug toggle ignored")
	}
	gl.processInput(InputEvent{PlayerID: "nobody", Action: ActionUp})
}

func TestTurnAndAnimationClock(t *testing.T) {
	gl := newTestLoop(t, 3)
	gl.world.At(1, 1).Update(tile.Set(tile.WallTableDecoration, 359))

	for i := 0; i < 10; i++ {
		gl.tick()
	}
	if got := gl.world.Tile(tile.WallTableDecoration, 1, 1); got != 360 {
		t.Errorf("after one animation interval sprite = %d, want 360", got)
	}
	if gl.Turn() != 0 {
		t.Errorf("turn = %d before a full turn interval", gl.Turn())
	}

	for i := 0; i < 30; i++ {
		gl.tick()
	}
	if gl.Turn() != 2 {
		t.Errorf("turn = %d after 40 ticks, want 2", gl.Turn())
	}
	if got := gl.world.Tile(tile.WallTableDecoration, 1, 1); got != 359 {
		t.Errorf("after four animation intervals sprite = %d, want 359", got)
	}
	for _, v := range gl.villagers {
		if gl.world.PathBlocked(v.X, v.Y) {
			t.Errorf("%s wandered onto a blocked tile", v.ID)
		}
	}
}

func TestVillagersNeverStack(t *testing.T) {
	gl := newTestLoop(t, 12)
	for turn := 0; turn < 200; turn++ {
		gl.advanceTurn()
		seen := map[[2]int]string{}
		for _, v := range gl.villagers {
			k := [2]int{v.X, v.Y}
			if other, ok := seen[k]; ok {
				t.Fatalf("turn %d: %s and %s share (%d,%d)", turn, other, v.ID, v.X, v.Y)
			}
			seen[k] = v.ID
		}
	}
}

func TestBroadcast(t *testing.T) {
	gl := newTestLoop(t, 2)
	sx, sy := gl.world.Spawn()
	for i, v := range gl.villagers {
		v.X, v.Y = sx-3-i, sy
		v.NewX, v.NewY = v.X, v.Y
	}
	id, ch := gl.AddPlayer("viewer")
	gl.InputChan() <- InputEvent{PlayerID: id, Action: ActionRight}
	gl.tick()

	state := <-ch
	if state.Tick != 1 || state.TurnsPerDay != 360 {
		t.Errorf("state = tick %d, day %d", state.Tick, state.TurnsPerDay)
	}
	if len(state.Characters) != 3 {
		t.Fatalf("%d characters in snapshot, want 3", len(state.Characters))
	}
	first := state.Characters[0]
	if !first.IsPlayer || first.ID != id || first.X != sx+1 {
		t.Errorf("player snapshot = %+v", first)
	}
	if state.DayTint() != 1.0 {
		t.Errorf("turn 0 tint = %v, want full daylight", state.DayTint())
	}

	gl.RemovePlayer(id)
	if _, ok := <-ch; ok {
		t.Error("render channel left open after RemovePlayer")
	}
}
