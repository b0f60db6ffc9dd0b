package utils

import (
	"slices"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/entsim/game"
)

func contains(min, max, pos cube.Pos) bool {
	for i := range 3 {
		if pos[i] < min[i] || pos[i] > max[i] {
			return false
		}
	}
	return true
}

func TestScanRangeCoversStartAndEnd(t *testing.T) {
	box := game.Box(0.2, 0.2, 0.2, 0.8, 0.8, 0.8)
	delta := mgl64.Vec3{3.5, -2.5, 0}
	min, max := ScanRange(box, delta)

	for _, pos := range []cube.Pos{{0, 0, 0}, {3, -2, 0}, {4, -3, 0}, {1, -1, 0}} {
		if !contains(min, max, pos) {
			t.Fatalf("expected %v to be inside the range %v..%v", pos, min, max)
		}
	}
	if max[0] <= 4 {
		t.Fatalf("expected an extra cell on the approach side of X, got max %v", max)
	}
	if min[1] >= -3 {
		t.Fatalf("expected an extra cell on the approach side of Y, got min %v", min)
	}
}

func TestScanRangeNegativeCoordinates(t *testing.T) {
	box := game.Box(-0.75, 10, -0.75, -0.25, 10.5, -0.25)
	min, max := ScanRange(box, mgl64.Vec3{})
	if !contains(min, max, cube.Pos{-1, 10, -1}) {
		t.Fatalf("expected the cell under the box to be scanned, got %v..%v", min, max)
	}
}

func TestSweptCellsOrderAndBudget(t *testing.T) {
	box := game.Box(0, 0, 0, 0.5, 0.5, 0.5)
	var cells []cube.Pos
	for err, pos := range SweptCells(box, mgl64.Vec3{}) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cells = append(cells, pos)
	}
	sorted := slices.SortedFunc(slices.Values(cells), func(a, b cube.Pos) int {
		for i := range 3 {
			if a[i] != b[i] {
				return a[i] - b[i]
			}
		}
		return 0
	})
	if !slices.Equal(cells, sorted) {
		t.Fatalf("expected cells in ascending x, y, z order")
	}

	huge := game.Box(0, 0, 0, 1, 1, 1)
	var errored bool
	for err := range SweptCells(huge, mgl64.Vec3{100, 100, 0}) {
		if err != nil {
			errored = true
			break
		}
	}
	if !errored {
		t.Fatalf("expected the scan budget to be reported")
	}
}

func TestSweptCellsTunneling(t *testing.T) {
	// A tiny box moving 1.5 blocks in a single step must still visit the cell it passes through.
	box := game.Box(0.499, 0.499, 0.499, 0.501, 0.501, 0.501)
	found := false
	for _, pos := range SweptCells(box, mgl64.Vec3{1.5, 0, 0}) {
		if pos == (cube.Pos{1, 0, 0}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the cell in the path to be scanned")
	}
}

func TestBlocksIntersecting(t *testing.T) {
	if got := BlocksIntersecting(game.Box(0, 0, 0, 1, 1, 1)); !slices.Equal(got, []cube.Pos{{0, 0, 0}}) {
		t.Fatalf("expected a single block, got %v", got)
	}

	got := BlocksIntersecting(game.Box(0.5, 0.5, 0.5, 1.5, 1.5, 1.5))
	want := []cube.Pos{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
