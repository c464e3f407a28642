package game

import "math/rand"

// Behavior selects how a character acts each turn.
type Behavior int

const (
	BehaviorNone Behavior = iota
	BehaviorVillager
)

func (b Behavior) String() string {
	switch b {
	case BehaviorNone:
		return "none"
	case BehaviorVillager:
		return "villager"
	}
	return "unknown"
}

// Terrain is the part of the world a character needs to plan a move.
type Terrain interface {
	PathBlocked(x, y int) bool
}

// Character is anything standing on the map: a connected player or a
// villager. NewX/NewY hold the move planned for the current turn.
type Character struct {
	ID         string
	Name       string
	X, Y       int
	NewX, NewY int
	Behavior   Behavior
	Color      int // index into the render color palette
}

// Plan picks this turn's destination. Villagers wander: 15% each way,
// 40% stay put. A move onto a cell another character has planned for,
// or onto blocked terrain, is dropped.
func (c *Character) Plan(t Terrain, others []*Character, rng *rand.Rand) {
	if c.Behavior != BehaviorVillager {
		return
	}
	dx, dy := c.X, c.Y
	switch r := rng.Intn(100); {
	case r < 15:
		dx++
	case r < 30:
		dx--
	case r < 45:
		dy++
	case r < 60:
		dy--
	}
	for _, o := range others {
		if o == c {
			continue
		}
		if o.NewX == dx && o.NewY == dy {
			dx, dy = c.X, c.Y
			break
		}
	}
	if t.PathBlocked(dx, dy) {
		dx, dy = c.X, c.Y
	}
	c.NewX, c.NewY = dx, dy
}

// Apply commits the planned move.
func (c *Character) Apply() {
	c.X, c.Y = c.NewX, c.NewY
}

// CharacterSnapshot is a read-only copy of a character for rendering.
type CharacterSnapshot struct {
	ID        string
	Name      string
	X, Y      int
	Color     int
	Behavior  Behavior
	IsPlayer  bool
	DebugView bool
}

// Snapshot returns a read-only copy of the character.
func (c *Character) Snapshot() CharacterSnapshot {
	return CharacterSnapshot{
		ID:       c.ID,
		Name:     c.Name,
		X:        c.X,
		Y:        c.Y,
		Color:    c.Color,
		Behavior: c.Behavior,
	}
}
