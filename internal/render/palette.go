package render

import (
	"github.com/Shake-N-Baker/ADyingWorld/internal/tile"
	"github.com/Shake-N-Baker/ADyingWorld/internal/zone"
)

// Glyph is how one sprite is drawn: a character for each of the tile's two
// columns and a foreground color.
type Glyph struct {
	Left, Right rune
	Fg          [3]uint8
}

// TileCells is one world tile as screen cells. Over holds the roof and
// overhead layers, which are drawn above characters.
type TileCells struct {
	Base    [TileWidth]Cell
	Over    [TileWidth]Cell
	HasOver bool
}

var voidBG = [3]uint8{10, 10, 15}

var groundBG = map[int][3]uint8{
	80: {46, 84, 38},
	81: {52, 92, 42},
	82: {72, 88, 40},
}

var roadBG = [3]uint8{112, 90, 58}

var roadGlyphs = map[int]Glyph{
	zone.RoadRightDown:   {'┌', '─', [3]uint8{170, 140, 95}},
	zone.RoadLeftDown:    {'┐', ' ', [3]uint8{170, 140, 95}},
	zone.RoadUpRight:     {'└', '─', [3]uint8{170, 140, 95}},
	zone.RoadUpLeft:      {'┘', ' ', [3]uint8{170, 140, 95}},
	zone.RoadLeftRightDn: {'┬', '─', [3]uint8{170, 140, 95}},
	zone.RoadLeftRightUp: {'┴', '─', [3]uint8{170, 140, 95}},
	zone.RoadVertical:    {'│', ' ', [3]uint8{170, 140, 95}},
	zone.RoadHorizontal:  {'─', '─', [3]uint8{170, 140, 95}},
}

// GroundBG returns the background color of a ground sprite.
func GroundBG(sprite int) [3]uint8 {
	if bg, ok := groundBG[sprite]; ok {
		return bg
	}
	return [3]uint8{40, 40, 40}
}

// LayerGlyph returns the glyph of sprite on layer l. ok is false for empty
// layers and for the ground, which only colors the background.
func LayerGlyph(l tile.Layer, sprite int) (Glyph, bool) {
	if sprite == tile.None {
		return Glyph{}, false
	}
	switch l {
	case tile.OverGround:
		if g, ok := roadGlyphs[sprite]; ok {
			return g, true
		}
		return Glyph{'░', '░', [3]uint8{140, 120, 80}}, true
	case tile.Wall:
		return wallGlyph(sprite), true
	case tile.DecorationBase:
		return decorationGlyph(sprite), true
	case tile.WallTableDecoration:
		return tableGlyph(sprite), true
	case tile.Roof:
		return Glyph{'▒', '▒', [3]uint8{160, 64, 52}}, true
	case tile.DecorationOverhead:
		if isCanopy(sprite) {
			return Glyph{'♠', '♠', [3]uint8{36, 122, 48}}, true
		}
		return Glyph{'▔', '▔', [3]uint8{120, 84, 60}}, true
	}
	return Glyph{}, false
}

func wallGlyph(sprite int) Glyph {
	switch {
	case sprite >= 41 && sprite <= 43:
		return Glyph{'▒', '▒', [3]uint8{150, 190, 220}} // window
	case sprite >= 67 && sprite <= 90:
		return Glyph{'█', '█', [3]uint8{118, 118, 124}} // stone
	}
	return Glyph{'█', '█', [3]uint8{140, 104, 70}} // timber
}

func decorationGlyph(sprite int) Glyph {
	switch {
	case sprite == zone.EdgeSprite:
		return Glyph{'▓', '▓', [3]uint8{62, 70, 60}}
	case sprite >= 15 && sprite <= 21:
		return Glyph{'♣', ' ', [3]uint8{28, 104, 36}}
	case (sprite >= 22 && sprite <= 27) || sprite == 117 || sprite == 118:
		return Glyph{'*', ' ', [3]uint8{60, 140, 60}}
	case sprite >= 32 && sprite <= 40:
		return Glyph{',', ' ', [3]uint8{96, 150, 64}}
	}
	return Glyph{'•', ' ', [3]uint8{180, 160, 120}}
}

func tableGlyph(sprite int) Glyph {
	switch sprite {
	case 359:
		return Glyph{'≈', '≈', [3]uint8{255, 96, 32}}
	case 360:
		return Glyph{'≈', '≈', [3]uint8{255, 150, 48}}
	case 529:
		return Glyph{'i', ' ', [3]uint8{255, 210, 90}}
	case 530:
		return Glyph{'¡', ' ', [3]uint8{255, 170, 50}}
	case 233:
		return Glyph{'▐', '▌', [3]uint8{90, 60, 30}} // door
	}
	return Glyph{'▪', ' ', [3]uint8{200, 180, 140}}
}

// isCanopy reports whether an overhead sprite is a tree canopy.
func isCanopy(sprite int) bool {
	trunk := sprite - zone.CanopyOffset
	return trunk >= 15 && trunk <= 21
}

// Cells composes a tile's layers into screen cells, untinted. The topmost
// non-empty base layer supplies the glyph; ground and roads supply the
// background.
func Cells(t *tile.Tile) TileCells {
	bg := GroundBG(t.Sprite(tile.Ground))
	if zone.IsRoad(t.Sprite(tile.OverGround)) {
		bg = roadBG
	}

	var tc TileCells
	base := Glyph{' ', ' ', bg}
	for _, l := range []tile.Layer{tile.OverGround, tile.Wall, tile.DecorationBase, tile.WallTableDecoration} {
		if g, ok := LayerGlyph(l, t.Sprite(l)); ok {
			base = g
		}
	}
	tc.Base = glyphCells(base, bg)

	for _, l := range []tile.Layer{tile.Roof, tile.DecorationOverhead} {
		if g, ok := LayerGlyph(l, t.Sprite(l)); ok {
			tc.Over = glyphCells(g, bg)
			tc.HasOver = true
		}
	}
	return tc
}

func glyphCells(g Glyph, bg [3]uint8) [TileWidth]Cell {
	mk := func(ch rune) Cell {
		return Cell{Ch: ch, FgR: g.Fg[0], FgG: g.Fg[1], FgB: g.Fg[2], BgR: bg[0], BgG: bg[1], BgB: bg[2]}
	}
	return [TileWidth]Cell{mk(g.Left), mk(g.Right)}
}
