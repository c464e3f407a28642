package zone

import "github.com/Shake-N-Baker/ADyingWorld/internal/tile"

// Road sprites on the OverGround layer, named by the directions they join.
const (
	RoadRightDown   = 146
	RoadLeftDown    = 147
	RoadUpRight     = 148
	RoadUpLeft      = 149
	RoadLeftRightDn = 150
	RoadLeftRightUp = 153
	RoadVertical    = 154
	RoadHorizontal  = 155
)

// IsRoad reports whether sprite is one of the town road tiles.
func IsRoad(sprite int) bool {
	switch sprite {
	case RoadRightDown, RoadLeftDown, RoadUpRight, RoadUpLeft,
		RoadLeftRightDn, RoadLeftRightUp, RoadVertical, RoadHorizontal:
		return true
	}
	return false
}

// Corner is one of the four zone corners a building can be anchored to.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "TL"
	case TopRight:
		return "TR"
	case BottomLeft:
		return "BL"
	case BottomRight:
		return "BR"
	}
	return "?"
}

func (c Corner) top() bool   { return c == TopLeft || c == TopRight }
func (c Corner) right() bool { return c == TopRight || c == BottomRight }

// Placement records where a building was stamped, in zone-local tiles.
type Placement struct {
	Building     *Building
	Corner       Corner
	X, Y         int
	DoorX, DoorY int
}

type door struct {
	x, y int
	ok   bool
}

func (z *zone) buildTown() []Placement {
	for y := 0; y < z.region.H; y++ {
		for x := 0; x < z.region.W; x++ {
			z.placeGround(x, y)
		}
	}

	corners := []Corner{TopLeft, TopRight, BottomLeft, BottomRight}
	var doors [4]door
	placements := make([]Placement, 0, len(TownBuildings))
	for _, b := range TownBuildings {
		if len(corners) == 0 {
			break
		}
		offX := 1 + z.rng.Intn(5)
		offY := 1 + z.rng.Intn(5)
		r := z.rng.Intn(len(corners))
		c := corners[r]
		corners[r] = corners[len(corners)-1]
		corners = corners[:len(corners)-1]

		p := z.stamp(b, c, offX, offY)
		doors[c] = door{x: p.DoorX, y: p.DoorY, ok: true}
		placements = append(placements, p)
	}

	z.layRoads(doors)
	return placements
}

// stamp writes b into the corner c, offX/offY tiles in from the zone edges.
func (z *zone) stamp(b *Building, c Corner, offX, offY int) Placement {
	x, y := offX, offY+b.Height
	if c.top() {
		y = z.region.H - b.Inset - offY
	}
	if c.right() {
		x = z.region.W - b.Inset - b.Width - offX
	}
	x = clamp(x, 0, z.region.W-b.Width)
	y = clamp(y, b.Height, z.region.H-1)

	for _, cell := range b.Cells {
		z.update(x+cell.DX, y+cell.DY, cell.Patch)
	}
	for _, l := range b.Lights {
		z.placeLight(x+l.DX, y+l.DY, l.Brightness)
	}
	return Placement{
		Building: b,
		Corner:   c,
		X:        x,
		Y:        y,
		DoorX:    x + b.DoorDX,
		DoorY:    y + b.DoorDY,
	}
}

// layRoads joins every door to a horizontal road below its row of
// buildings, and both rows to each other down the center column.
func (z *zone) layRoads(doors [4]door) {
	centerX := z.region.W / 2
	topY := lowestDoor(doors[TopLeft], doors[TopRight])
	botY := lowestDoor(doors[BottomLeft], doors[BottomRight])

	z.roadBranch(doors[TopLeft], topY, centerX, true)
	z.roadBranch(doors[TopRight], topY, centerX, false)
	z.roadBranch(doors[BottomLeft], botY, centerX, true)
	z.roadBranch(doors[BottomRight], botY, centerX, false)

	switch {
	case doors[TopLeft].ok && doors[TopRight].ok:
		z.update(centerX, topY, tile.Set(tile.OverGround, RoadLeftRightDn))
	case doors[TopLeft].ok:
		z.update(centerX, topY, tile.Set(tile.OverGround, RoadLeftDown))
	default:
		z.update(centerX, topY, tile.Set(tile.OverGround, RoadRightDown))
	}
	switch {
	case doors[BottomLeft].ok && doors[BottomRight].ok:
		z.update(centerX, botY, tile.Set(tile.OverGround, RoadLeftRightUp))
	case doors[BottomLeft].ok:
		z.update(centerX, botY, tile.Set(tile.OverGround, RoadUpLeft))
	default:
		z.update(centerX, botY, tile.Set(tile.OverGround, RoadUpRight))
	}

	for y := topY - 1; y > botY; y-- {
		z.update(centerX, y, tile.Set(tile.OverGround, RoadVertical))
	}
}

// roadBranch runs a road down from d to row y, then sideways toward centerX.
func (z *zone) roadBranch(d door, y, centerX int, fromLeft bool) {
	if !d.ok {
		return
	}
	for ry := d.y; ry > y; ry-- {
		z.update(d.x, ry, tile.Set(tile.OverGround, RoadVertical))
	}
	if fromLeft {
		z.update(d.x, y, tile.Set(tile.OverGround, RoadUpRight))
		for rx := d.x + 1; rx < centerX; rx++ {
			z.update(rx, y, tile.Set(tile.OverGround, RoadHorizontal))
		}
		return
	}
	z.update(d.x, y, tile.Set(tile.OverGround, RoadUpLeft))
	for rx := d.x - 1; rx > centerX; rx-- {
		z.update(rx, y, tile.Set(tile.OverGround, RoadHorizontal))
	}
}

// lowestDoor returns the smaller y of the doors that exist, or -1.
func lowestDoor(a, b door) int {
	switch {
	case a.ok && b.ok:
		return min(a.y, b.y)
	case a.ok:
		return a.y
	case b.ok:
		return b.y
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
