package render

import (
	"testing"

	"github.com/Shake-N-Baker/ADyingWorld/internal/tile"
	"github.com/Shake-N-Baker/ADyingWorld/internal/zone"
)

func TestCells(t *testing.T) {
	tests := []struct {
		name     string
		patch    tile.Patch
		wantCh   rune
		wantBG   [3]uint8
		wantOver rune
	}{
		{"bare ground", tile.Patch{}, ' ', groundBG[81], 0},
		{"vertical road", tile.Set(tile.OverGround, zone.RoadVertical), '│', roadBG, 0},
		{"road corner", tile.Set(tile.OverGround, zone.RoadUpRight), '└', roadBG, 0},
		{"tree trunk", tile.Set(tile.DecorationBase, 15).Block(), '♣', groundBG[81], 0},
		{"world edge", tile.Set(tile.DecorationBase, zone.EdgeSprite).Block(), '▓', groundBG[81], 0},
		{"canopy over ground", tile.Set(tile.DecorationOverhead, 15+zone.CanopyOffset), ' ', groundBG[81], '♠'},
		{"candle on wall", tile.Set(tile.Wall, 21).With(tile.WallTableDecoration, 529), 'i', groundBG[81], 0},
		{"roof over wall", tile.Set(tile.Wall, 21).With(tile.Roof, 26), '█', groundBG[81], '▒'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := tile.New(81)
			tl.Update(tt.patch)
			tc := Cells(&tl)
			got := tc.Base[0]
			if got.Ch != tt.wantCh {
				t.Errorf("glyph = %q, want %q", got.Ch, tt.wantCh)
			}
			if bg := [3]uint8{got.BgR, got.BgG, got.BgB}; bg != tt.wantBG {
				t.Errorf("bg = %v, want %v", bg, tt.wantBG)
			}
			if tc.HasOver != (tt.wantOver != 0) {
				t.Fatalf("HasOver = %v", tc.HasOver)
			}
			if tc.HasOver && tc.Over[0].Ch != tt.wantOver {
				t.Errorf("over glyph = %q, want %q", tc.Over[0].Ch, tt.wantOver)
			}
		})
	}
}

func TestAnimationFramesLookDifferent(t *testing.T) {
	for _, pair := range [][2]int{{359, 360}, {529, 530}} {
		a, _ := LayerGlyph(tile.WallTableDecoration, pair[0])
		b, _ := LayerGlyph(tile.WallTableDecoration, pair[1])
		if a == b {
			t.Errorf("frames %d and %d render identically", pair[0], pair[1])
		}
	}
}

func TestLayerGlyphEmpty(t *testing.T) {
	for _, l := range tile.Layers {
		if _, ok := LayerGlyph(l, tile.None); ok {
			t.Errorf("layer %s: empty sprite has a glyph", l)
		}
	}
	if _, ok := LayerGlyph(tile.Ground, 80); ok {
		t.Error("ground should only color the background")
	}
}
