package zone

import "github.com/Shake-N-Baker/ADyingWorld/internal/tile"

// EdgeSprite is the impassable decoration lining the world border.
const EdgeSprite = 6

// CanopyOffset maps a tree trunk sprite to its canopy sprite one row up.
const CanopyOffset = 30

var (
	treeSprites    = []int{15, 17, 21, 16, 18, 20, 19}
	treeWeights    = []int{38, 26, 7, 4, 15, 9, 1}
	shrubSprites   = []int{22, 23, 24, 25, 26, 27, 117, 118}
	shrubWeights   = []int{40, 6, 22, 8, 8, 8, 4, 4}
	foliageSprites = []int{32, 33, 37, 38, 39, 40}
	foliageWeights = []int{46, 46, 2, 2, 2, 2}
)

func (z *zone) buildForest() {
	for y := 0; y < z.region.H; y++ {
		for x := 0; x < z.region.W; x++ {
			if z.onWorldEdge(x, y) {
				z.update(x, y, tile.Set(tile.DecorationBase, EdgeSprite).Block())
				continue
			}
			z.placeGround(x, y)
			if t := z.at(x, y); t == nil || !t.IsEmpty() {
				continue
			}
			r := z.rng.Intn(100)
			switch {
			case r < 16 && y < z.region.H-1:
				z.placeTree(x, y)
			case r < 18:
				z.placeShrub(x, y)
			case r < 23:
				z.placeFoliage(x, y)
			}
		}
	}
}

func (z *zone) onWorldEdge(x, y int) bool {
	return (x == 0 && z.borders.Left) ||
		(x == z.region.W-1 && z.borders.Right) ||
		(y == 0 && z.borders.Bottom) ||
		(y == z.region.H-1 && z.borders.Top)
}

// placeTree puts a trunk at (x, y) and its canopy over the tile above.
func (z *zone) placeTree(x, y int) {
	s := treeSprites[RandomIndex(z.rng, treeWeights)]
	z.update(x, y, tile.Set(tile.DecorationBase, s).Block())
	z.update(x, y+1, tile.Set(tile.DecorationOverhead, s+CanopyOffset))
}

func (z *zone) placeShrub(x, y int) {
	s := shrubSprites[RandomIndex(z.rng, shrubWeights)]
	z.update(x, y, tile.Set(tile.DecorationBase, s).Block())
}

func (z *zone) placeFoliage(x, y int) {
	s := foliageSprites[RandomIndex(z.rng, foliageWeights)]
	z.update(x, y, tile.Set(tile.DecorationBase, s))
}
