package game

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Shake-N-Baker/ADyingWorld/internal/world"
)

const InputChanSize = 256

// GameState is a snapshot sent to each session for rendering.
type GameState struct {
	Characters  []CharacterSnapshot
	Tick        uint64
	Turn        int
	TurnsPerDay int
}

// DayTint is the ambient brightness for the snapshot's turn.
func (s GameState) DayTint() float64 {
	return world.DayTimeTint(s.Turn, s.TurnsPerDay)
}

// RenderChan is the per-session channel that receives game state snapshots.
type RenderChan chan GameState

// savedState holds persisted player data for reconnecting players.
type savedState struct {
	X, Y  int
	Color int
}

// GameLoop is the central game loop singleton. It owns the world: tile
// animations and villager moves happen on the loop goroutine, and readers
// go through ReadWorld.
type GameLoop struct {
	world   *world.World
	opts    Options
	rng     *rand.Rand
	log     logrus.FieldLogger
	inputCh chan InputEvent

	turnTicks int
	animTicks int

	mu          sync.RWMutex
	tickCount   uint64
	turn        int
	nextColor   int
	players     map[string]*Player
	villagers   []*Character
	renderChans map[string]RenderChan
	saved       map[string]savedState // keyed by username

	stopCh chan struct{}
}

// NewGameLoop creates a game loop over w and populates the town with villagers.
func NewGameLoop(w *world.World, opts Options, rng *rand.Rand, log logrus.FieldLogger) *GameLoop {
	opts = opts.withDefaults()
	gl := &GameLoop{
		world:       w,
		opts:        opts,
		rng:         rng,
		log:         log,
		inputCh:     make(chan InputEvent, InputChanSize),
		turnTicks:   SecsToTicks(opts.TurnInterval, opts.TickRate),
		animTicks:   SecsToTicks(opts.AnimationInterval, opts.TickRate),
		players:     make(map[string]*Player),
		renderChans: make(map[string]RenderChan),
		saved:       make(map[string]savedState),
		stopCh:      make(chan struct{}),
	}
	gl.spawnVillagers(opts.Villagers)
	return gl
}

// spawnVillagers places up to n villagers on free tiles of the town zone.
func (gl *GameLoop) spawnVillagers(n int) {
	town := gl.world.TownZone().Region
	for attempts := 0; len(gl.villagers) < n && attempts < n*100; attempts++ {
		x := town.X + gl.rng.Intn(town.W)
		y := town.Y + gl.rng.Intn(town.H)
		if gl.world.PathBlocked(x, y) || gl.occupied(x, y, nil) {
			continue
		}
		id := fmt.Sprintf("villager-%d", len(gl.villagers)+1)
		gl.villagers = append(gl.villagers, &Character{
			ID:       id,
			Name:     fmt.Sprintf("Villager %d", len(gl.villagers)+1),
			X:        x,
			Y:        y,
			NewX:     x,
			NewY:     y,
			Behavior: BehaviorVillager,
		})
	}
	if len(gl.villagers) < n {
		gl.log.WithFields(logrus.Fields{"want": n, "got": len(gl.villagers)}).Warn("town too crowded for all villagers")
	}
	gl.log.WithField("villagers", len(gl.villagers)).Debug("villagers spawned")
}

// InputChan returns the shared input channel for sessions to send events.
func (gl *GameLoop) InputChan() chan<- InputEvent {
	return gl.inputCh
}

// AddPlayer registers a player using their username as identity.
// If the username was seen before, position and color are restored.
// Returns the effective player ID and the render channel.
func (gl *GameLoop) AddPlayer(name string) (string, RenderChan) {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	// If this username is already online, add a suffix
	id := name
	if _, online := gl.players[id]; online {
		id = fmt.Sprintf("%s_%04d", name, time.Now().UnixNano()%10000)
	}

	player := &Player{Character: Character{ID: id, Name: name}}
	x, y := gl.world.Spawn()
	if ss, ok := gl.saved[name]; ok {
		x, y, player.Color = ss.X, ss.Y, ss.Color
	} else {
		player.Color = gl.nextColor % NumPlayerColors
		gl.nextColor++
	}
	player.X, player.Y = gl.freeTileNear(x, y)
	player.NewX, player.NewY = player.X, player.Y

	gl.players[id] = player
	ch := make(RenderChan, 2)
	gl.renderChans[id] = ch
	gl.log.WithFields(logrus.Fields{"player": id, "x": player.X, "y": player.Y}).Debug("player joined")
	return id, ch
}

// RemovePlayer saves the player's state and unregisters them.
func (gl *GameLoop) RemovePlayer(id string) {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	if p, ok := gl.players[id]; ok {
		gl.saved[p.Name] = savedState{X: p.X, Y: p.Y, Color: p.Color}
		delete(gl.players, id)
	}
	if ch, ok := gl.renderChans[id]; ok {
		close(ch)
		delete(gl.renderChans, id)
	}
}

// ReadWorld runs fn with shared access to the world. fn must not retain w.
func (gl *GameLoop) ReadWorld(fn func(w *world.World)) {
	gl.mu.RLock()
	defer gl.mu.RUnlock()
	fn(gl.world)
}

// Turn returns the number of turns taken so far.
func (gl *GameLoop) Turn() int {
	gl.mu.RLock()
	defer gl.mu.RUnlock()
	return gl.turn
}

// Run starts the game loop. Blocks until Stop is called.
func (gl *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(gl.opts.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-gl.stopCh:
			return
		case <-ticker.C:
			gl.tick()
		}
	}
}

// Stop shuts down the game loop.
func (gl *GameLoop) Stop() {
	close(gl.stopCh)
}

func (gl *GameLoop) tick() {
	gl.mu.Lock()
	// Drain all pending input events
	for {
		select {
		case ev := <-gl.inputCh:
			gl.processInput(ev)
		default:
			goto drained
		}
	}
drained:

	gl.tickCount++
	if gl.tickCount%uint64(gl.turnTicks) == 0 {
		gl.advanceTurn()
	}
	if gl.tickCount%uint64(gl.animTicks) == 0 {
		gl.world.ChangeTileAnimations()
	}
	gl.mu.Unlock()

	// Build snapshot and broadcast
	gl.mu.RLock()
	state := gl.snapshot()
	// Non-blocking send to each render channel
	for _, ch := range gl.renderChans {
		select {
		case ch <- state:
		default:
			// Drop frame for slow client
		}
	}
	gl.mu.RUnlock()
}

// advanceTurn moves the clock forward and lets every villager act. All
// villagers plan against the current positions before any of them move.
func (gl *GameLoop) advanceTurn() {
	gl.turn++
	all := gl.characters()
	for _, v := range gl.villagers {
		v.Plan(gl.world, all, gl.rng)
	}
	for _, v := range gl.villagers {
		v.Apply()
	}
	if gl.turn%gl.opts.TurnsPerDay == 0 {
		gl.log.WithField("day", gl.turn/gl.opts.TurnsPerDay).Info("a new day dawns")
	}
}

func (gl *GameLoop) processInput(ev InputEvent) {
	player, ok := gl.players[ev.PlayerID]
	if !ok {
		return
	}

	newX, newY := player.X, player.Y
	switch ev.Action {
	case ActionUp:
		newY++
	case ActionDown:
		newY--
	case ActionLeft:
		newX--
	case ActionRight:
		newX++
	case ActionDebug:
		player.DebugView = !player.DebugView
		return
	default:
		return
	}

	if gl.world.PathBlocked(newX, newY) || gl.occupied(newX, newY, &player.Character) {
		return
	}
	player.X, player.Y = newX, newY
	player.NewX, player.NewY = newX, newY
}

// characters lists players then villagers. Callers hold gl.mu.
func (gl *GameLoop) characters() []*Character {
	all := make([]*Character, 0, len(gl.players)+len(gl.villagers))
	for _, p := range gl.players {
		all = append(all, &p.Character)
	}
	return append(all, gl.villagers...)
}

// occupied reports whether a character other than self stands on (x, y).
func (gl *GameLoop) occupied(x, y int, self *Character) bool {
	for _, c := range gl.characters() {
		if c != self && c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// maxPlacementRadius bounds the search for a free tile around a spawn point.
const maxPlacementRadius = 16

// freeTileNear returns the closest walkable, unoccupied tile to (x, y) by
// orthogonal steps, scanning each ring left to right. It falls back to
// (x, y) when the whole search area is taken. Callers hold gl.mu.
func (gl *GameLoop) freeTileNear(x, y int) (int, int) {
	for r := 0; r <= maxPlacementRadius; r++ {
		for dx := -r; dx <= r; dx++ {
			dy := r - abs(dx)
			for _, ny := range []int{y - dy, y + dy} {
				nx := x + dx
				if !gl.world.PathBlocked(nx, ny) && !gl.occupied(nx, ny, nil) {
					return nx, ny
				}
				if dy == 0 {
					break
				}
			}
		}
	}
	return x, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// snapshot copies the render state. Callers hold gl.mu.
func (gl *GameLoop) snapshot() GameState {
	state := GameState{
		Characters:  make([]CharacterSnapshot, 0, len(gl.players)+len(gl.villagers)),
		Tick:        gl.tickCount,
		Turn:        gl.turn,
		TurnsPerDay: gl.opts.TurnsPerDay,
	}
	for _, p := range gl.players {
		state.Characters = append(state.Characters, p.Snapshot())
	}
	sort.Slice(state.Characters, func(i, j int) bool {
		return state.Characters[i].ID < state.Characters[j].ID
	})
	for _, v := range gl.villagers {
		state.Characters = append(state.Characters, v.Snapshot())
	}
	return state
}
