package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Shake-N-Baker/ADyingWorld/internal/config"
	"github.com/Shake-N-Baker/ADyingWorld/internal/export"
	"github.com/Shake-N-Baker/ADyingWorld/internal/render"
	"github.com/Shake-N-Baker/ADyingWorld/internal/tile"
	"github.com/Shake-N-Baker/ADyingWorld/internal/world"
	"github.com/Shake-N-Baker/ADyingWorld/internal/zone"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (world section is used)")
	seed := flag.Int64("seed", 0, "random seed (0 = config seed, then random)")
	out := flag.String("out", "", "write a JSON dump (.zst suffix compresses)")
	viz := flag.Bool("viz", false, "draw the town zone as text")
	stats := flag.Bool("stats", false, "show sprite distribution and walkable %")
	validate := flag.Bool("validate", false, "check spawn and town reachability")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	wc := cfg.WorldConfig()
	if err := wc.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = cfg.World.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	fmt.Fprintf(os.Stderr, "Generating %dx%d world (seed %d)...\n", wc.TilesWide, wc.TilesHigh, *seed)
	w, err := world.New(wc, rand.New(rand.NewSource(*seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sx, sy := w.Spawn()
	fmt.Fprintf(os.Stderr, "Spawn: (%d, %d)\n", sx, sy)

	if *out != "" {
		if err := export.WriteFile(*out, export.FromWorld(w, *seed)); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing dump: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", *out)
	}
	if *viz {
		runViz(os.Stdout, w)
	}
	if *stats {
		runStats(os.Stdout, w)
	}
	if *validate {
		if problems := runValidate(w); len(problems) > 0 {
			for _, p := range problems {
				fmt.Printf("  ERROR: %s\n", p)
			}
			os.Exit(1)
		}
		fmt.Println("World valid")
	}
}

// --- viz ---

// vizRune picks one character per tile: the overhead glyph when present,
// else the base glyph, with roads and bare ground drawn as '.'.
func vizRune(t *tile.Tile) rune {
	tc := render.Cells(t)
	if tc.HasOver {
		return tc.Over[0].Ch
	}
	if ch := tc.Base[0].Ch; ch != ' ' {
		return ch
	}
	return '.'
}

// runViz draws the town zone with the highest row first, marking the spawn,
// then lists its buildings.
func runViz(out io.Writer, w *world.World) {
	r := w.TownZone().Region
	sx, sy := w.Spawn()
	fmt.Fprintf(out, "Town zone at (%d,%d) %dx%d\n", r.X, r.Y, r.W, r.H)
	var sb strings.Builder
	for y := r.Y + r.H - 1; y >= r.Y; y-- {
		sb.Reset()
		for x := r.X; x < r.X+r.W; x++ {
			if x == sx && y == sy {
				sb.WriteRune('@')
				continue
			}
			sb.WriteRune(vizRune(w.At(x, y)))
		}
		fmt.Fprintln(out, sb.String())
	}
	for _, p := range w.TownZone().Buildings {
		fmt.Fprintf(out, "%-10s %s corner, door (%d,%d)\n", p.Building.Name, p.Corner, r.X+p.DoorX, r.Y+p.DoorY)
	}
}

// --- stats ---

type statEntry struct {
	name  string
	count int
}

// collectStats counts biomes per zone and non-empty sprites per layer.
func collectStats(w *world.World) (biomes, sprites []statEntry, walkable, lit int) {
	bc := make(map[string]int)
	for _, z := range w.Zones() {
		bc[string(z.Biome)]++
	}
	sc := make(map[string]int)
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			t := w.At(x, y)
			for _, l := range tile.Layers {
				if s := t.Sprite(l); s != tile.None {
					sc[fmt.Sprintf("%s:%d", l, s)]++
				}
			}
			if !t.PathingBlocked {
				walkable++
			}
			if t.LightLevel > 0 {
				lit++
			}
		}
	}
	return sortedEntries(bc), sortedEntries(sc), walkable, lit
}

func sortedEntries(m map[string]int) []statEntry {
	var sorted []statEntry
	for name, count := range m {
		sorted = append(sorted, statEntry{name, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].name < sorted[j].name
	})
	return sorted
}

func runStats(out io.Writer, w *world.World) {
	total := w.Width() * w.Height()
	biomes, sprites, walkable, lit := collectStats(w)

	fmt.Fprintf(out, "%dx%d = %d tiles, %d zones\n\nBiomes:\n", w.Width(), w.Height(), total, len(w.Zones()))
	for _, e := range biomes {
		fmt.Fprintf(out, "  %-10s %4d\n", e.name, e.count)
	}
	fmt.Fprintln(out, "\nSprites:")
	for _, e := range sprites {
		pct := float64(e.count) / float64(total) * 100
		bar := strings.Repeat("█", int(pct/2))
		fmt.Fprintf(out, "  %-26s %6d (%5.1f%%) %s\n", e.name, e.count, pct, bar)
	}
	fmt.Fprintf(out, "\nWalkable: %d/%d (%.1f%%)\n", walkable, total, float64(walkable)/float64(total)*100)
	fmt.Fprintf(out, "Lit:      %d\n", lit)
}

// --- validate ---

type point struct{ x, y int }

// floodFill returns the set of walkable tiles reachable from (sx, sy).
func floodFill(w *world.World, sx, sy int) map[point]bool {
	region := make(map[point]bool)
	if w.PathBlocked(sx, sy) {
		return region
	}

	stack := []point{{sx, sy}}
	region[point{sx, sy}] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			np := point{p.x + d[0], p.y + d[1]}
			if region[np] || w.PathBlocked(np.x, np.y) {
				continue
			}
			region[np] = true
			stack = append(stack, np)
		}
	}
	return region
}

// runValidate checks that the spawn is walkable, the town has exactly one
// zone and every road tile of the town is reachable from the spawn.
func runValidate(w *world.World) []string {
	var problems []string
	sx, sy := w.Spawn()
	if w.PathBlocked(sx, sy) {
		problems = append(problems, fmt.Sprintf("spawn (%d,%d) is not walkable", sx, sy))
	}

	towns := 0
	for _, z := range w.Zones() {
		if z.Biome == zone.Town {
			towns++
		}
	}
	if towns != 1 {
		problems = append(problems, fmt.Sprintf("%d town zones, want 1", towns))
	}

	reach := floodFill(w, sx, sy)
	r := w.TownZone().Region
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if zone.IsRoad(w.Tile(tile.OverGround, x, y)) && !reach[point{x, y}] {
				problems = append(problems, fmt.Sprintf("road (%d,%d) unreachable from spawn", x, y))
			}
		}
	}
	return problems
}
