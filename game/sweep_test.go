package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var unitBlock = Box(0, 0, 0, 1, 1, 1)

func TestCollideZeroDisplacement(t *testing.T) {
	tests := []struct {
		name   string
		moving AABB
	}{
		{name: "separated", moving: Box(2, 0, 0, 3, 1, 1)},
		{name: "touching", moving: Box(1, 0, 0, 2, 1, 1)},
		{name: "overlapping", moving: Box(0.5, 0.5, 0.5, 1.5, 1.5, 1.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Collide(tt.moving, mgl64.Vec3{}, unitBlock)
			if c.Hit() {
				t.Fatalf("expected no collision without displacement, got %+v", c)
			}
			if c != NoCollision {
				t.Fatalf("expected NoCollision, got %+v", c)
			}
		})
	}
}

func TestCollideZeroAxisWithOverlap(t *testing.T) {
	// The box shares the Y/Z range with the block and only moves on X.
	moving := Box(-1.5, 0.25, 0.25, -0.5, 0.75, 0.75)
	c := Collide(moving, mgl64.Vec3{1, 0, 0}, unitBlock)
	if !c.Hit() {
		t.Fatalf("expected collision")
	}
	if !Float64ApproxEq(c.Time, 0.5, 1e-12) {
		t.Fatalf("expected entry time 0.5, got %v", c.Time)
	}
	if c.Normal != [3]int8{-1, 0, 0} {
		t.Fatalf("expected west face normal, got %v", c.Normal)
	}
}

func TestCollideZeroAxisSeparatedShortCircuits(t *testing.T) {
	// The Y range never overlaps, so motion on X cannot produce a collision.
	moving := Box(-1.5, 2, 0, -0.5, 3, 1)
	if c := Collide(moving, mgl64.Vec3{5, 0, 0}, unitBlock); c.Hit() {
		t.Fatalf("expected no collision, got %+v", c)
	}
}

func TestCollideEntryTime(t *testing.T) {
	tests := []struct {
		name   string
		moving AABB
		delta  mgl64.Vec3
		time   float64
		normal [3]int8
	}{
		{name: "positive x", moving: Box(-2, 0, 0, -1, 1, 1), delta: mgl64.Vec3{4, 0, 0}, time: 0.25, normal: [3]int8{-1, 0, 0}},
		{name: "negative x", moving: Box(3, 0, 0, 4, 1, 1), delta: mgl64.Vec3{-4, 0, 0}, time: 0.5, normal: [3]int8{1, 0, 0}},
		{name: "falling", moving: Box(0.25, 3, 0.25, 0.75, 4, 0.75), delta: mgl64.Vec3{0, -4, 0}, time: 0.5, normal: [3]int8{0, 1, 0}},
		{name: "rising", moving: Box(0, -2, 0, 1, -1, 1), delta: mgl64.Vec3{0, 2, 0}, time: 0.5, normal: [3]int8{0, -1, 0}},
		{name: "positive z", moving: Box(0, 0, -1.5, 1, 1, -0.5), delta: mgl64.Vec3{0, 0, 1}, time: 0.5, normal: [3]int8{0, 0, -1}},
		{name: "diagonal reaching x first", moving: Box(-1.5, 0, -1.25, -0.5, 1, -0.25), delta: mgl64.Vec3{1, 0, 1}, time: 0.5, normal: [3]int8{-1, 0, 0}},
		{name: "touching at start", moving: Box(-1, 0, 0, 0, 1, 1), delta: mgl64.Vec3{0.5, 0, 0}, time: 0, normal: [3]int8{-1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Collide(tt.moving, tt.delta, unitBlock)
			if !c.Hit() {
				t.Fatalf("expected collision")
			}
			if !Float64ApproxEq(c.Time, tt.time, 1e-9) {
				t.Fatalf("expected entry time %v, got %v", tt.time, c.Time)
			}
			if c.Normal != tt.normal {
				t.Fatalf("expected normal %v, got %v", tt.normal, c.Normal)
			}
		})
	}
}

func TestCollideStepBoundary(t *testing.T) {
	moving := Box(-2, 0, 0, -1, 1, 1)
	if c := Collide(moving, mgl64.Vec3{1, 0, 0}, unitBlock); !c.Hit() || c.Time != 1 {
		t.Fatalf("expected a collision exactly at the end of the step, got %+v", c)
	}
	if c := Collide(moving, mgl64.Vec3{0.999, 0, 0}, unitBlock); c.Hit() {
		t.Fatalf("expected no collision when falling short of the block, got %+v", c)
	}
}

func TestCollideCornerTies(t *testing.T) {
	t.Run("two axes", func(t *testing.T) {
		moving := Box(-2, 0, -2, -1, 1, -1)
		c := Collide(moving, mgl64.Vec3{2, 0, 2}, unitBlock)
		if !c.Hit() || !Float64ApproxEq(c.Time, 0.5, 1e-12) {
			t.Fatalf("expected collision at 0.5, got %+v", c)
		}
		if c.Normal != [3]int8{-1, 0, -1} {
			t.Fatalf("expected both X and Z to be reported, got %v", c.Normal)
		}
	})
	t.Run("three axes", func(t *testing.T) {
		moving := Box(2, 2, 2, 3, 3, 3)
		c := Collide(moving, mgl64.Vec3{-2, -2, -2}, unitBlock)
		if !c.Hit() || !Float64ApproxEq(c.Time, 0.5, 1e-12) {
			t.Fatalf("expected collision at 0.5, got %+v", c)
		}
		if c.Normal != [3]int8{1, 1, 1} {
			t.Fatalf("expected all axes to be reported, got %v", c.Normal)
		}
	})
}

func TestCollideGrazing(t *testing.T) {
	// The box reaches the block on X at the same instant it leaves its Z range, so it only
	// brushes the edge: entry time equals exit time and the contact is still reported.
	moving := Box(-2, 0, 0.5, -1, 1, 1.5)
	c := Collide(moving, mgl64.Vec3{2, 0, 1}, unitBlock)
	if !c.Hit() {
		t.Fatalf("expected grazing contact to be reported, got %+v", c)
	}
	if !Float64ApproxEq(c.Time, 0.5, 1e-12) || c.Normal != [3]int8{-1, 0, 0} {
		t.Fatalf("expected west face at 0.5, got %+v", c)
	}
}

func TestCollideNegativeEntryOnOtherAxis(t *testing.T) {
	// Already overlapping on X (negative entry time) while closing in on Y.
	moving := Box(0.5, 2, 0, 1.5, 3, 1)
	c := Collide(moving, mgl64.Vec3{0.5, -2, 0}, unitBlock)
	if !c.Hit() {
		t.Fatalf("expected collision")
	}
	if !Float64ApproxEq(c.Time, 0.5, 1e-12) || c.Normal != [3]int8{0, 1, 0} {
		t.Fatalf("expected top face at 0.5, got %+v", c)
	}
}

func TestCollideMovingAway(t *testing.T) {
	moving := Box(2, 0, 0, 3, 1, 1)
	if c := Collide(moving, mgl64.Vec3{1, 1, 1}, unitBlock); c.Hit() {
		t.Fatalf("expected no collision when moving away, got %+v", c)
	}
}

func TestCollideMissesPastBlock(t *testing.T) {
	// Crosses the block's X range while already above it.
	moving := Box(-2, 1.5, 0, -1, 2.5, 1)
	if c := Collide(moving, mgl64.Vec3{4, 0.1, 0}, unitBlock); c.Hit() {
		t.Fatalf("expected no collision, got %+v", c)
	}
}

func TestCollideNeverProducesNaN(t *testing.T) {
	boxes := []AABB{unitBlock, Box(0, 0, 0, 0, 0, 0), Box(-1, -1, -1, 2, 2, 2)}
	deltas := []mgl64.Vec3{{}, {1, 0, 0}, {0, -1, 0}, {0, 0, 1e-300}, {-1e-300, 0, 0}}
	for _, a := range boxes {
		for _, d := range deltas {
			c := Collide(a.Translate(mgl64.Vec3{-1.5, 0, 0}), d, unitBlock)
			if math.IsNaN(c.Time) || math.IsInf(c.Time, 0) {
				t.Fatalf("unexpected time %v for %v %v", c.Time, a, d)
			}
		}
	}
}
