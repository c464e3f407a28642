// Package export writes generated worlds to JSON dumps for inspection and
// tooling. Files ending in .zst are zstd compressed.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/Shake-N-Baker/ADyingWorld/internal/tile"
	"github.com/Shake-N-Baker/ADyingWorld/internal/world"
)

// Dump is the on-disk form of a world. Per-tile arrays are row-major with
// index y*width+x.
type Dump struct {
	Seed    int64            `json:"seed"`
	Width   int              `json:"width"`
	Height  int              `json:"height"`
	SpawnX  int              `json:"spawn_x"`
	SpawnY  int              `json:"spawn_y"`
	Zones   []Zone           `json:"zones"`
	Layers  map[string][]int `json:"layers"`
	Blocked []bool           `json:"blocked"`
	Light   []int            `json:"light"`
}

type Zone struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	W     int    `json:"w"`
	H     int    `json:"h"`
	Biome string `json:"biome"`
}

// FromWorld captures every tile of w.
func FromWorld(w *world.World, seed int64) Dump {
	n := w.Width() * w.Height()
	d := Dump{
		Seed:    seed,
		Width:   w.Width(),
		Height:  w.Height(),
		Layers:  make(map[string][]int, tile.NumLayers),
		Blocked: make([]bool, n),
		Light:   make([]int, n),
	}
	d.SpawnX, d.SpawnY = w.Spawn()
	for _, z := range w.Zones() {
		d.Zones = append(d.Zones, Zone{X: z.Region.X, Y: z.Region.Y, W: z.Region.W, H: z.Region.H, Biome: string(z.Biome)})
	}
	for _, l := range tile.Layers {
		d.Layers[l.String()] = make([]int, n)
	}
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			i := y*w.Width() + x
			t := w.At(x, y)
			for _, l := range tile.Layers {
				d.Layers[l.String()][i] = t.Sprite(l)
			}
			d.Blocked[i] = t.PathingBlocked
			d.Light[i] = t.LightLevel
		}
	}
	return d
}

// Compressed reports whether path names a zstd dump.
func Compressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zst")
}

// Write encodes d as JSON, zstd compressed when compress is set.
func Write(out io.Writer, d Dump, compress bool) error {
	if !compress {
		return json.NewEncoder(out).Encode(d)
	}
	enc, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := json.NewEncoder(enc).Encode(d); err != nil {
		enc.Close()
		return fmt.Errorf("encode dump: %w", err)
	}
	return enc.Close()
}

// WriteFile writes d to path, compressing when the name ends in .zst.
func WriteFile(path string, d Dump) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(f, 256*1024)
	if err := Write(bw, d, Compressed(path)); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read decodes a dump written by Write.
func Read(r io.Reader, compressed bool) (Dump, error) {
	var d Dump
	if compressed {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return d, err
		}
		defer dec.Close()
		r = dec
	}
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return d, fmt.Errorf("decode dump: %w", err)
	}
	return d, nil
}

// ReadFile reads a dump written by WriteFile.
func ReadFile(path string) (Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dump{}, err
	}
	defer f.Close()
	return Read(bufio.NewReaderSize(f, 256*1024), Compressed(path))
}
