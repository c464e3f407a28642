// Package zone generates the contents of one rectangular zone of the world
// grid. Generation is a one-shot pass that mutates the shared grid in place.
package zone

import (
	"math/rand"

	"github.com/Shake-N-Baker/ADyingWorld/internal/tile"
)

// MinSize is the smallest zone edge the town layout fits in without the
// buildings overlapping each other or the center road.
const MinSize = 32

// Biome selects the generator run for a zone.
type Biome string

const (
	Town   Biome = "town"
	Forest Biome = "forest"
)

// Grid is the world storage a zone writes into. Coordinates are world
// coordinates; At returns nil off the map.
type Grid interface {
	At(x, y int) *tile.Tile
	PlaceLight(x, y, brightness int)
}

// Region is a zone's rectangle in world tiles. Y grows upward, so the
// bottom row of a region is Y and the top row is Y+H-1.
type Region struct {
	X, Y int
	W, H int
}

// Contains reports whether the world tile (x, y) lies inside r.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the world coordinate of the region's center tile.
func (r Region) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Borders records which region edges lie on the edge of the world.
type Borders struct {
	Left, Right, Top, Bottom bool
}

// BordersOf computes the world-edge flags of r in a worldW x worldH map.
func BordersOf(r Region, worldW, worldH int) Borders {
	return Borders{
		Left:   r.X == 0,
		Right:  r.X+r.W == worldW,
		Bottom: r.Y == 0,
		Top:    r.Y+r.H == worldH,
	}
}

// zone is the transient generator state for one Generate call.
type zone struct {
	grid    Grid
	region  Region
	borders Borders
	rng     *rand.Rand
}

// Generate fills r with the given biome and returns the buildings it
// stamped, which only towns have. Unknown biomes leave the region
// untouched. Light placed by buildings may spill into neighboring zones.
func Generate(g Grid, r Region, biome Biome, b Borders, rng *rand.Rand) []Placement {
	z := &zone{grid: g, region: r, borders: b, rng: rng}
	switch biome {
	case Town:
		return z.buildTown()
	case Forest:
		z.buildForest()
	}
	return nil
}

// at returns the tile at zone-local (x, y).
func (z *zone) at(x, y int) *tile.Tile {
	if x < 0 || y < 0 || x >= z.region.W || y >= z.region.H {
		return nil
	}
	return z.grid.At(z.region.X+x, z.region.Y+y)
}

// update applies p to the tile at zone-local (x, y), if it exists.
func (z *zone) update(x, y int, p tile.Patch) {
	if t := z.at(x, y); t != nil {
		t.Update(p)
	}
}

// placeLight spreads light from zone-local (x, y) through the whole grid.
func (z *zone) placeLight(x, y, brightness int) {
	z.grid.PlaceLight(z.region.X+x, z.region.Y+y, brightness)
}

// Ground palette shared by every biome: mostly 81, some 80, rare 82.
var (
	groundSprites = []int{80, 81, 82}
	groundWeights = []int{44, 54, 2}
)

func (z *zone) placeGround(x, y int) {
	z.update(x, y, tile.Set(tile.Ground, groundSprites[RandomIndex(z.rng, groundWeights)]))
}
