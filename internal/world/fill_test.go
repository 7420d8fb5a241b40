package world

import (
	"testing"

	"chunk-mesh/internal/voxel"
)

func countSolid(g voxel.Grid, fill Filler) int {
	n := 0
	for i := 0; i < g.Size(); i++ {
		if fill(g, i) {
			n++
		}
	}
	return n
}

func TestShellFill(t *testing.T) {
	g := voxel.MustGrid(4)
	// 4^3 minus the 2^3 interior
	if got := countSolid(g, ShellFill); got != 64-8 {
		t.Fatalf("shell has %d solid blocks, want 56", got)
	}
	if ShellFill(g, g.Encode(voxel.Coord{X: 1, Y: 2, Z: 1})) {
		t.Fatalf("interior block is solid")
	}
}

func TestRandomFillDeterministic(t *testing.T) {
	g := voxel.MustGrid(5)
	a, b := RandomFill(42, 0.3), RandomFill(42, 0.3)
	for i := 0; i < g.Size(); i++ {
		if a(g, i) != b(g, i) {
			t.Fatalf("block %d differs for the same seed", i)
		}
	}
	if countSolid(g, RandomFill(1, 0)) != 0 {
		t.Fatalf("density 0 produced solid blocks")
	}
	if countSolid(g, RandomFill(1, 1)) != g.Size() {
		t.Fatalf("density 1 left empty blocks")
	}
}

func TestNoiseFillDependsOnCell(t *testing.T) {
	g := voxel.MustGrid(6)
	fill := NoiseFill(8, 0.5)
	for i := g.Size() - 1; i >= 0; i-- {
		if fill(g, i) != fill(g, i) {
			t.Fatalf("noise fill not a function of the cell at %d", i)
		}
	}
	if countSolid(g, NoiseFill(8, 1.1)) != 0 {
		t.Fatalf("threshold above 1 produced solid blocks")
	}
}

func TestFillByName(t *testing.T) {
	for _, name := range FillNames() {
		if _, err := FillByName(name, 1, 0.5); err != nil {
			t.Errorf("FillByName(%q): %v", name, err)
		}
	}
	if _, err := FillByName("checkerboard", 1, 0.5); err == nil {
		t.Fatalf("unknown pattern accepted")
	}
}
