package world

import "github.com/Shake-N-Baker/ADyingWorld/internal/tile"

// animationFrames pairs the two frames of each animated table decoration.
var animationFrames = map[int]int{
	359: 360, // forge
	360: 359,
	529: 530, // candle
	530: 529,
}

// ChangeTileAnimations advances every animated tile by one frame.
func (w *World) ChangeTileAnimations() {
	for i := range w.tiles {
		s := &w.tiles[i].Sprites[tile.WallTableDecoration]
		if next, ok := animationFrames[*s]; ok {
			*s = next
		}
	}
}
