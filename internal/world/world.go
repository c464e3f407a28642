// Package world owns the tile grid of the game map. It partitions the grid
// into zones at creation time, runs zone generation over each one and
// answers the tile, pathing and light queries the game loop and renderer
// make every frame.
//
// World is not safe for concurrent use; the game loop guards it.
package world

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Shake-N-Baker/ADyingWorld/internal/tile"
	"github.com/Shake-N-Baker/ADyingWorld/internal/zone"
)

// DefaultGround is the ground sprite every tile starts with.
const DefaultGround = 80

// ErrInvalidConfig is returned when the map cannot be partitioned into zones.
var ErrInvalidConfig = errors.New("invalid world config")

// Config fixes the map and zone dimensions, in tiles.
type Config struct {
	TilesWide int
	TilesHigh int
	ZoneWide  int
	ZoneHigh  int
}

// DefaultConfig returns a 256x256 map of 32x32 zones.
func DefaultConfig() Config {
	return Config{TilesWide: 256, TilesHigh: 256, ZoneWide: 32, ZoneHigh: 32}
}

// Validate checks that the map splits evenly into at least 2x2 zones that
// are each large enough for the town layout.
func (c Config) Validate() error {
	switch {
	case c.TilesWide <= 0 || c.TilesHigh <= 0:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidConfig, c.TilesWide, c.TilesHigh)
	case c.ZoneWide < zone.MinSize || c.ZoneHigh < zone.MinSize:
		return fmt.Errorf("%w: zone size %dx%d below minimum %d", ErrInvalidConfig, c.ZoneWide, c.ZoneHigh, zone.MinSize)
	case c.TilesWide%c.ZoneWide != 0 || c.TilesHigh%c.ZoneHigh != 0:
		return fmt.Errorf("%w: zone size %dx%d does not divide map %dx%d",
			ErrInvalidConfig, c.ZoneWide, c.ZoneHigh, c.TilesWide, c.TilesHigh)
	case c.TilesWide/c.ZoneWide < 2 || c.TilesHigh/c.ZoneHigh < 2:
		return fmt.Errorf("%w: need at least 2x2 zones, got %dx%d",
			ErrInvalidConfig, c.TilesWide/c.ZoneWide, c.TilesHigh/c.ZoneHigh)
	}
	return nil
}

// ZoneInfo describes one generated zone.
type ZoneInfo struct {
	Region  zone.Region
	Biome   zone.Biome
	Borders zone.Borders
	// Buildings lists the stamped buildings in zone-local tiles.
	Buildings []zone.Placement
}

// World is the tile grid plus its zone partition and spawn point.
// Tiles are stored row-major with y growing upward.
type World struct {
	width, height int
	tiles         []tile.Tile

	zoneW, zoneH         int
	zonesWide, zonesHigh int
	zones                []ZoneInfo
	town                 int // index into zones

	spawnX, spawnY int
}

// New validates cfg and generates a world, drawing all randomness from rng.
func New(cfg Config, rng *rand.Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := allocate(cfg)
	w.generate(rng)
	return w, nil
}

// Create generates a default-sized world from a time-based seed.
func Create() *World {
	w, err := New(DefaultConfig(), rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		panic(err) // DefaultConfig always validates
	}
	return w
}

// allocate builds the uniform, ungenerated grid.
func allocate(cfg Config) *World {
	w := &World{
		width:     cfg.TilesWide,
		height:    cfg.TilesHigh,
		tiles:     make([]tile.Tile, cfg.TilesWide*cfg.TilesHigh),
		zoneW:     cfg.ZoneWide,
		zoneH:     cfg.ZoneHigh,
		zonesWide: cfg.TilesWide / cfg.ZoneWide,
		zonesHigh: cfg.TilesHigh / cfg.ZoneHigh,
	}
	for i := range w.tiles {
		w.tiles[i] = tile.New(DefaultGround)
	}
	return w
}

// generate picks the town zone in the inner half of the zone grid, sets the
// spawn point at its center and runs every zone's generator.
func (w *World) generate(rng *rand.Rand) {
	townX := w.zonesWide/4 + rng.Intn(w.zonesWide/2)
	townY := w.zonesHigh/4 + rng.Intn(w.zonesHigh/2)

	w.zones = make([]ZoneInfo, 0, w.zonesWide*w.zonesHigh)
	for zy := 0; zy < w.zonesHigh; zy++ {
		for zx := 0; zx < w.zonesWide; zx++ {
			r := zone.Region{X: zx * w.zoneW, Y: zy * w.zoneH, W: w.zoneW, H: w.zoneH}
			info := ZoneInfo{Region: r, Biome: zone.Forest, Borders: zone.BordersOf(r, w.width, w.height)}
			if zx == townX && zy == townY {
				info.Biome = zone.Town
				w.town = len(w.zones)
				w.spawnX, w.spawnY = r.Center()
			}
			info.Buildings = zone.Generate(w, r, info.Biome, info.Borders, rng)
			w.zones = append(w.zones, info)
		}
	}
}

// Width returns the map width in tiles.
func (w *World) Width() int { return w.width }

// Height returns the map height in tiles.
func (w *World) Height() int { return w.height }

// InBounds reports whether (x, y) is on the map.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.width && y < w.height
}

// At returns the tile at (x, y), or nil off the map.
func (w *World) At(x, y int) *tile.Tile {
	if !w.InBounds(x, y) {
		return nil
	}
	return &w.tiles[y*w.width+x]
}

// Tile returns the sprite on layer l at (x, y). Off-map coordinates and
// unknown layers yield tile.None.
func (w *World) Tile(l tile.Layer, x, y int) int {
	t := w.At(x, y)
	if t == nil {
		return tile.None
	}
	return t.Sprite(l)
}

// TileByName is Tile with the layer given by name.
func (w *World) TileByName(layer string, x, y int) int {
	l, ok := tile.ParseLayer(layer)
	if !ok {
		return tile.None
	}
	return w.Tile(l, x, y)
}

// PathBlocked reports whether (x, y) cannot be entered. Off-map is blocked.
func (w *World) PathBlocked(x, y int) bool {
	t := w.At(x, y)
	return t == nil || t.PathingBlocked
}

// LightLevel returns the stored brightness at (x, y), or 0 off the map.
func (w *World) LightLevel(x, y int) int {
	t := w.At(x, y)
	if t == nil {
		return 0
	}
	return t.LightLevel
}

// Spawn returns the center tile of the town zone.
func (w *World) Spawn() (int, int) {
	return w.spawnX, w.spawnY
}

// Zones lists every zone in generation order, bottom row first.
func (w *World) Zones() []ZoneInfo {
	out := make([]ZoneInfo, len(w.zones))
	copy(out, w.zones)
	return out
}

// TownZone returns the zone generated as the town.
func (w *World) TownZone() ZoneInfo {
	return w.zones[w.town]
}

// ZoneAt returns the zone covering (x, y).
func (w *World) ZoneAt(x, y int) (ZoneInfo, bool) {
	if !w.InBounds(x, y) || len(w.zones) == 0 {
		return ZoneInfo{}, false
	}
	return w.zones[(y/w.zoneH)*w.zonesWide+x/w.zoneW], true
}
