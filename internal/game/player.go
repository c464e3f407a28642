package game

// Action represents a player input action.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionQuit
	ActionDebug
)

// InputEvent carries a player action into the game loop.
type InputEvent struct {
	PlayerID string
	Action   Action
}

// Player is a connected user's character.
type Player struct {
	Character
	DebugView bool
}

// Snapshot returns a read-only copy of the player.
func (p *Player) Snapshot() CharacterSnapshot {
	s := p.Character.Snapshot()
	s.IsPlayer = true
	s.DebugView = p.DebugView
	return s
}

// NumPlayerColors is the size of the rotating player palette.
const NumPlayerColors = 6
