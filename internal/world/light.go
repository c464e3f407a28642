package world

// MaxLightTint is the brightness at and above which light no longer darkens a tile.
const MaxLightTint = 9

// Night floor and day plateau of DayTimeTint.
const (
	NightTint = 0.4
	DayTint   = 1.0
)

type lightStep struct {
	x, y, brightness int
}

var neighbors = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// PlaceLight floods brightness out from (x, y), losing one level per
// orthogonal step. A tile keeps the brightest light that ever reached it,
// so the result does not depend on the order lights are placed in.
// Off-map sources are ignored.
func (w *World) PlaceLight(x, y, brightness int) {
	if !w.InBounds(x, y) {
		return
	}
	queue := []lightStep{{x, y, brightness}}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		t := &w.tiles[s.y*w.width+s.x]
		if s.brightness <= t.LightLevel {
			continue
		}
		t.LightLevel = s.brightness
		if s.brightness <= 1 {
			continue
		}
		for _, d := range neighbors {
			nx, ny := s.x+d[0], s.y+d[1]
			if w.InBounds(nx, ny) {
				queue = append(queue, lightStep{nx, ny, s.brightness - 1})
			}
		}
	}
}

// LightTint maps a light level to a color multiplier: 0 for unlit tiles,
// 0.46..0.94 for levels 1..9 and 1 above that.
func LightTint(brightness int) float64 {
	switch {
	case brightness < 1:
		return 0
	case brightness > MaxLightTint:
		return 1
	}
	return 0.4 + 0.06*float64(brightness)
}

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Gray returns an opaque gray of intensity v.
func Gray(v float64) Color {
	return Color{R: v, G: v, B: v, A: 1}
}

// LightTintColor is LightTint as an opaque gray.
func LightTintColor(brightness int) Color {
	return Gray(LightTint(brightness))
}

// DayTimeTint returns the ambient brightness for turn in a day of
// turnsPerDay turns. The cycle is shifted a quarter day so turn 0 falls
// in the daylight plateau. Over the shifted phase it holds the night floor
// for the first eighth, ramps up over the second, stays at full daylight
// for the middle half, ramps down over the seventh eighth and holds the
// floor again for the last.
func DayTimeTint(turn, turnsPerDay int) float64 {
	if turnsPerDay <= 0 {
		return DayTint
	}
	phase := float64(((turn+turnsPerDay/4)%turnsPerDay + turnsPerDay) % turnsPerDay)
	eighth := float64(turnsPerDay) / 8
	switch {
	case phase < eighth:
		return NightTint
	case phase < 2*eighth:
		return NightTint + (DayTint-NightTint)*(phase-eighth)/eighth
	case phase < 6*eighth:
		return DayTint
	case phase < 7*eighth:
		return DayTint - (DayTint-NightTint)*(phase-6*eighth)/eighth
	}
	return NightTint
}
