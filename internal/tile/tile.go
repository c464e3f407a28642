package tile

// None marks a sprite layer with nothing drawn on it.
const None = -1

// Layer identifies one of the fixed sprite layers of a tile, bottom to top.
type Layer int

const (
	Ground Layer = iota
	OverGround
	Wall
	DecorationBase
	WallTableDecoration
	Roof
	DecorationOverhead

	NumLayers = 7
)

var layerNames = [NumLayers]string{
	"Ground",
	"OverGround",
	"Wall",
	"DecorationBase",
	"WallTableDecoration",
	"Roof",
	"DecorationOverhead",
}

// Layers lists every layer in draw order.
var Layers = [NumLayers]Layer{Ground, OverGround, Wall, DecorationBase, WallTableDecoration, Roof, DecorationOverhead}

func (l Layer) String() string {
	if l < 0 || l >= NumLayers {
		return "Unknown"
	}
	return layerNames[l]
}

// Valid reports whether l is one of the fixed layers.
func (l Layer) Valid() bool {
	return l >= 0 && l < NumLayers
}

// ParseLayer resolves a layer by its name ("Ground", "Roof", ...).
func ParseLayer(name string) (Layer, bool) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), true
		}
	}
	return 0, false
}

// Tile holds the sprite index of every layer plus gameplay state for one grid cell.
type Tile struct {
	Sprites        [NumLayers]int
	PathingBlocked bool
	LightLevel     int
}

// New returns an unlit, unblocked tile with only the given ground sprite.
func New(ground int) Tile {
	t := Tile{}
	for i := range t.Sprites {
		t.Sprites[i] = None
	}
	t.Sprites[Ground] = ground
	return t
}

// Sprite returns the sprite on layer l, or None for an unknown layer.
func (t *Tile) Sprite(l Layer) int {
	if !l.Valid() {
		return None
	}
	return t.Sprites[l]
}

// IsEmpty reports whether the tile holds nothing but ground and over-ground
// sprites and does not block pathing.
func (t *Tile) IsEmpty() bool {
	return t.Sprites[Wall] == None &&
		t.Sprites[DecorationBase] == None &&
		t.Sprites[WallTableDecoration] == None &&
		t.Sprites[Roof] == None &&
		t.Sprites[DecorationOverhead] == None &&
		!t.PathingBlocked
}

// Update applies the fields set in p and leaves the others untouched.
func (t *Tile) Update(p Patch) {
	for _, l := range Layers {
		if p.set&(1<<uint(l)) != 0 {
			t.Sprites[l] = p.sprites[l]
		}
	}
	switch p.pathing {
	case PathingBlock:
		t.PathingBlocked = true
	case PathingClear:
		t.PathingBlocked = false
	}
	if p.setLight {
		t.LightLevel = p.light
	}
}
