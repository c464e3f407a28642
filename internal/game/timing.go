package game

const DefaultTickRate = 20 // ticks per second

// SecsToTicks converts a duration in seconds to game ticks at rate ticks per second.
func SecsToTicks(s float64, rate int) int {
	t := int(s * float64(rate))
	if t < 1 {
		t = 1
	}
	return t
}

// Options tunes the game loop clock and population.
type Options struct {
	TickRate          int     // ticks per second
	TurnsPerDay       int     // length of one day/night cycle
	TurnInterval      float64 // seconds per turn
	AnimationInterval float64 // seconds between tile animation frames
	Villagers         int     // villagers spawned in the town
}

// DefaultOptions returns a 20 Hz loop with one turn per second and a
// 360-turn day.
func DefaultOptions() Options {
	return Options{
		TickRate:          DefaultTickRate,
		TurnsPerDay:       360,
		TurnInterval:      1.0,
		AnimationInterval: 0.5,
		Villagers:         6,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TickRate <= 0 {
		o.TickRate = d.TickRate
	}
	if o.TurnsPerDay <= 0 {
		o.TurnsPerDay = d.TurnsPerDay
	}
	if o.TurnInterval <= 0 {
		o.TurnInterval = d.TurnInterval
	}
	if o.AnimationInterval <= 0 {
		o.AnimationInterval = d.AnimationInterval
	}
	if o.Villagers < 0 {
		o.Villagers = 0
	}
	return o
}
