package zone

import "github.com/Shake-N-Baker/ADyingWorld/internal/tile"

// Cell is one stamped tile of a building, offset from the building anchor.
// The anchor is the top-left tile, so DY is zero or negative.
type Cell struct {
	DX, DY int
	Patch  tile.Patch
}

// Light is a light source placed when a building is stamped.
type Light struct {
	DX, DY     int
	Brightness int
}

// Building is a hand-authored multi-tile structure.
type Building struct {
	Name          string
	Width, Height int
	// Inset keeps extra tiles between the building and the top/right zone edges.
	Inset int
	// DoorDX/DoorDY locate the tile the town road starts from.
	DoorDX, DoorDY int
	Cells          []Cell
	Lights         []Light
}

// Short constructors keep the tables below readable.
func ovh(s int) tile.Patch { return tile.Set(tile.DecorationOverhead, s) }
func roof(s int) tile.Patch { return tile.Set(tile.Roof, s).Block() }
func ovhB(s int) tile.Patch { return ovh(s).Block() }
func wall(s int) tile.Patch { return tile.Set(tile.Wall, s).Block() }
func wallRoof(w, r int) tile.Patch { return wall(w).With(tile.Roof, r) }
func wallOvh(w, o int) tile.Patch { return wall(w).With(tile.DecorationOverhead, o) }
func wallTbl(w, d int) tile.Patch { return wall(w).With(tile.WallTableDecoration, d) }
func deco(s int) tile.Patch { return tile.Set(tile.DecorationBase, s).Block() }
func path(s int) tile.Patch { return tile.Set(tile.OverGround, s) }

// Inn is the 9x7 two-storey inn with two candle-lit windows.
var Inn = Building{
	Name:   "Inn",
	Width:  9,
	Height: 7,
	Inset:  1,
	DoorDX: 4, DoorDY: -7,
	Cells: []Cell{
		{1, 0, ovh(105)},

		{0, -1, ovhB(25)},
		{1, -1, roof(22)}, {2, -1, roof(22)}, {3, -1, roof(22)}, {4, -1, roof(22)}, {5, -1, roof(22)},
		{6, -1, ovhB(26)},

		{0, -2, roof(24)},
		{1, -2, roof(29)}, {2, -2, roof(29)}, {3, -2, roof(29)}, {4, -2, roof(29)}, {5, -2, roof(29)},
		{6, -2, roof(25).With(tile.DecorationOverhead, 104)},

		{0, -3, wallRoof(21, 31)},
		{1, -3, wallRoof(21, 26)},
		{2, -3, wallRoof(43, 26)},
		{3, -3, wallRoof(21, 26)}, {4, -3, wallRoof(21, 26)}, {5, -3, wallRoof(21, 26)},
		{6, -3, wallRoof(21, 32)},
		{7, -3, roof(22)},
		{8, -3, ovhB(26)},

		{0, -4, wallOvh(25, 54)},
		{1, -4, wallOvh(26, 55)}, {2, -4, wallOvh(26, 55)}, {3, -4, wallOvh(26, 55)},
		{4, -4, wallOvh(26, 55)}, {5, -4, wallOvh(26, 55)},
		{6, -4, wallOvh(27, 57)},
		{7, -4, wallRoof(26, 26)},
		{8, -4, wallRoof(27, 32)},

		{0, -5, wallOvh(25, 58)},
		{1, -5, wallTbl(26, 278)},
		{2, -5, wall(26)},
		{3, -5, wallTbl(26, 279)},
		{4, -5, wall(26)},
		{5, -5, wallTbl(26, 279)},
		{6, -5, wallOvh(27, 60)},
		{7, -5, wallTbl(21, 404)},
		{8, -5, wall(24)},

		{0, -6, wallOvh(22, 58)},
		{1, -6, wall(21)},
		{2, -6, wallTbl(21, 529)},
		{3, -6, wall(21)},
		{4, -6, wallTbl(21, 233)},
		{5, -6, wall(21)},
		{6, -6, wallTbl(24, 529).With(tile.DecorationOverhead, 60)},
	},
	Lights: []Light{
		{2, -6, 13},
		{6, -6, 13},
	},
}

// Blacksmith is the 7x6 smithy with a forge glow.
var Blacksmith = Building{
	Name:   "Blacksmith",
	Width:  7,
	Height: 6,
	DoorDX: 1, DoorDY: -6,
	Cells: []Cell{
		{0, 0, ovhB(25)}, {1, 0, roof(22)}, {2, 0, ovhB(26)},
		{4, 0, roof(21)}, {5, 0, roof(22)}, {6, 0, roof(23)},

		{0, -1, roof(24)}, {1, -1, roof(29)},
		{2, -1, roof(25).With(tile.DecorationOverhead, 100)},
		{3, -1, wall(79)},
		{4, -1, roof(35)}, {5, -1, roof(36)}, {6, -1, roof(37)},

		{0, -2, wallRoof(68, 31)}, {1, -2, wallRoof(67, 26)}, {2, -2, wallRoof(70, 32)},
		{3, -2, wall(72)}, {4, -2, wall(71)}, {5, -2, wall(72)}, {6, -2, wall(73)},

		{0, -3, wallOvh(71, 54)},
		{1, -3, wallOvh(72, 55).With(tile.WallTableDecoration, 576)},
		{2, -3, wallOvh(73, 57)},
		{3, -3, wall(67)}, {4, -3, wall(71)},
		{5, -3, wallTbl(72, 359)},
		{6, -3, wall(73)},

		{0, -4, wallOvh(68, 58)},
		{1, -4, wallTbl(67, 233)},
		{2, -4, wallOvh(70, 60)},
		{3, -4, deco(119)},
		{4, -4, wall(88)}, {5, -4, wall(67)}, {6, -4, wall(90)},

		{1, -5, path(154)},
		{2, -5, deco(120)},
		{6, -5, deco(196)},
	},
	Lights: []Light{
		{5, -3, 15},
	},
}

// Apothecary is the 6x7 herbalist's shop.
var Apothecary = Building{
	Name:   "Apothecary",
	Width:  6,
	Height: 7,
	DoorDX: 4, DoorDY: -7,
	Cells: []Cell{
		{0, 0, ovhB(25)}, {1, 0, roof(22)}, {2, 0, ovhB(26)},

		{0, -1, roof(24)}, {1, -1, roof(29)}, {2, -1, roof(25)},

		{0, -2, wallRoof(26, 31)}, {1, -2, wallRoof(26, 26)}, {2, -2, wallRoof(26, 32)},
		{3, -2, roof(22)}, {4, -2, roof(22)}, {5, -2, roof(23)},

		{0, -3, wall(25)}, {1, -3, wall(41)}, {2, -3, wall(27)},
		{3, -3, roof(36)}, {4, -3, roof(36)}, {5, -3, roof(37)},

		{0, -4, wall(25)},
		{1, -4, wallTbl(26, 317)},
		{2, -4, wall(26)},
		{3, -4, wallTbl(26, 1)},
		{4, -4, wallTbl(26, 529)},
		{5, -4, wallTbl(27, 3)},

		{0, -5, wall(42)}, {1, -5, wall(21)}, {2, -5, wall(21)}, {3, -5, wall(43)},
		{4, -5, wallTbl(21, 233)},
		{5, -5, wall(24)},

		{1, -6, deco(110)}, {2, -6, deco(26)}, {3, -6, deco(9)},
		{4, -6, path(154)},
	},
	Lights: []Light{
		{4, -4, 13},
	},
}

// TownBuildings are stamped in order, each into its own corner.
var TownBuildings = []*Building{&Inn, &Blacksmith, &Apothecary}
