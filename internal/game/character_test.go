package game

import (
	"math"
	"math/rand"
	"testing"
)

// openField blocks nothing but the listed cells.
type openField map[[2]int]bool

func (f openField) PathBlocked(x, y int) bool { return f[[2]int{x, y}] }

type wall struct{}

func (wall) PathBlocked(x, y int) bool { return true }

func villager(x, y int) *Character {
	return &Character{ID: "v", X: x, Y: y, NewX: x, NewY: y, Behavior: BehaviorVillager}
}

func TestVillagerWanders(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const draws = 20000
	moves := map[[2]int]int{}
	for i := 0; i < draws; i++ {
		c := villager(10, 10)
		c.Plan(openField{}, []*Character{c}, rng)
		moves[[2]int{c.NewX - c.X, c.NewY - c.Y}]++
		if c.X != 10 || c.Y != 10 {
			t.Fatal("Plan moved the character before Apply")
		}
	}
	want := map[[2]int]float64{
		{1, 0}: 0.15, {-1, 0}: 0.15, {0, 1}: 0.15, {0, -1}: 0.15, {0, 0}: 0.40,
	}
	if len(moves) != len(want) {
		t.Fatalf("unexpected moves: %v", moves)
	}
	for d, p := range want {
		if got := float64(moves[d]) / draws; math.Abs(got-p) > 0.02 {
			t.Errorf("move %v frequency %.3f, want %.2f", d, got, p)
		}
	}
}

func TestVillagerAvoidsBlockedAndClaimedCells(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		c := villager(3, 3)
		c.Plan(wall{}, []*Character{c}, rng)
		if c.NewX != 3 || c.NewY != 3 {
			t.Fatalf("walked into a wall: (%d,%d)", c.NewX, c.NewY)
		}
	}

	// Neighbours have already planned moves onto every cell around (3,3).
	others := []*Character{
		{NewX: 4, NewY: 3}, {NewX: 2, NewY: 3}, {NewX: 3, NewY: 4}, {NewX: 3, NewY: 2},
	}
	for i := 0; i < 500; i++ {
		c := villager(3, 3)
		c.Plan(openField{}, append([]*Character{c}, others...), rng)
		if c.NewX != 3 || c.NewY != 3 {
			t.Fatalf("moved onto a claimed cell: (%d,%d)", c.NewX, c.NewY)
		}
	}
}

func TestNoBehaviorStays(t *testing.T) {
	c := &Character{X: 1, Y: 2, NewX: 1, NewY: 2}
	c.Plan(openField{}, nil, rand.New(rand.NewSource(1)))
	c.Apply()
	if c.X != 1 || c.Y != 2 {
		t.Errorf("BehaviorNone moved to (%d,%d)", c.X, c.Y)
	}
}

func TestApply(t *testing.T) {
	c := villager(0, 0)
	c.NewX, c.NewY = 0, 1
	c.Apply()
	if c.X != 0 || c.Y != 1 {
		t.Errorf("Apply = (%d,%d), want (0,1)", c.X, c.Y)
	}
}

func TestSecsToTicks(t *testing.T) {
	tests := []struct {
		secs float64
		rate int
		want int
	}{
		{1.0, 20, 20},
		{0.5, 20, 10},
		{0.01, 20, 1},
		{0, 20, 1},
		{2.0, 30, 60},
	}
	for _, tt := range tests {
		if got := SecsToTicks(tt.secs, tt.rate); got != tt.want {
			t.Errorf("SecsToTicks(%v, %d) = %d, want %d", tt.secs, tt.rate, got, tt.want)
		}
	}
}
