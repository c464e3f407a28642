package tile

// Pathing is the tri-state pathing change carried by a Patch.
type Pathing int8

const (
	PathingKeep Pathing = iota
	PathingBlock
	PathingClear
)

// Patch is a partial tile update. The zero value changes nothing; only the
// layers named through Set/With are written.
type Patch struct {
	set      uint8
	sprites  [NumLayers]int
	pathing  Pathing
	light    int
	setLight bool
}

// Set starts a patch that writes sprite on layer l.
func Set(l Layer, sprite int) Patch {
	return Patch{}.With(l, sprite)
}

// Blocked starts a patch that only marks the tile as blocking pathing.
func Blocked() Patch {
	return Patch{pathing: PathingBlock}
}

// With adds a sprite write for layer l. Unknown layers are ignored.
func (p Patch) With(l Layer, sprite int) Patch {
	if !l.Valid() {
		return p
	}
	p.set |= 1 << uint(l)
	p.sprites[l] = sprite
	return p
}

// Block marks the tile as blocking pathing.
func (p Patch) Block() Patch {
	p.pathing = PathingBlock
	return p
}

// Clear marks the tile as walkable.
func (p Patch) Clear() Patch {
	p.pathing = PathingClear
	return p
}

// Light overwrites the stored light level. Use World.PlaceLight to spread light.
func (p Patch) Light(level int) Patch {
	p.light = level
	p.setLight = true
	return p
}

// Pathing returns the pathing change carried by the patch.
func (p Patch) Pathing() Pathing {
	return p.pathing
}

// Sprite returns the sprite written on layer l and whether the patch writes it.
func (p Patch) Sprite(l Layer) (int, bool) {
	if !l.Valid() || p.set&(1<<uint(l)) == 0 {
		return 0, false
	}
	return p.sprites[l], true
}
