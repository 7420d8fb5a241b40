package world

import (
	"math"
	"math/rand"
	"testing"

	"chunk-mesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

func numberedBlocks(g voxel.Grid, rng *rand.Rand) []voxel.Block {
	blocks := make([]voxel.Block, g.Size())
	for i := range blocks {
		blocks[i] = voxel.Block{Solid: rng.Intn(2) == 0, Num: uint16(i)}
	}
	return blocks
}

func TestSortFarthestFirst(t *testing.T) {
	g := voxel.MustGrid(5)
	rng := rand.New(rand.NewSource(11))
	for _, viewer := range []mgl32.Vec3{{}, {3, 7, -2}, {100, 0, 0}} {
		blocks := numberedBlocks(g, rng)
		scratch := make([]keyedBlock, len(blocks))
		sortByDistance(g, mgl32.Vec3{}, viewer, blocks, scratch)

		for i := 0; i+1 < len(scratch); i++ {
			if scratch[i].dist < scratch[i+1].dist {
				t.Fatalf("viewer %v: dist[%d]=%f < dist[%d]=%f", viewer, i, scratch[i].dist, i+1, scratch[i+1].dist)
			}
		}
		for i, b := range blocks {
			if int(b.Num) != i {
				t.Fatalf("viewer %v: block %d has Num %d", viewer, i, b.Num)
			}
		}
	}
}

// Each block's key is the distance of the cell it came from.
func TestSortMovesFlagsWithKeys(t *testing.T) {
	g := voxel.MustGrid(3)
	anchor := mgl32.Vec3{-1, 4, 2}
	viewer := mgl32.Vec3{9, -3, 5}
	blocks := make([]voxel.Block, g.Size())
	farthest, best := 0, float32(-1)
	for i := range blocks {
		blocks[i].Num = uint16(i)
		if d := DistanceSquared(g.WorldPos(anchor, i), viewer); d > best {
			farthest, best = i, d
		}
	}
	blocks[farthest].Solid = true

	SortByDistance(g, anchor, viewer, blocks)
	if !blocks[0].Solid {
		t.Fatalf("flag from the farthest cell %d did not move to slot 0", farthest)
	}
}

func TestSortPreservesSolidCount(t *testing.T) {
	g := voxel.MustGrid(6)
	blocks := numberedBlocks(g, rand.New(rand.NewSource(5)))
	before := 0
	for _, b := range blocks {
		if b.Solid {
			before++
		}
	}
	SortByDistance(g, mgl32.Vec3{}, mgl32.Vec3{1, 2, 3}, blocks)
	after := 0
	for _, b := range blocks {
		if b.Solid {
			after++
		}
	}
	if before != after {
		t.Fatalf("solid count %d -> %d", before, after)
	}
}

func TestSortNaNViewerCompletes(t *testing.T) {
	g := voxel.MustGrid(4)
	nan := float32(math.NaN())
	blocks := numberedBlocks(g, rand.New(rand.NewSource(1)))
	SortByDistance(g, mgl32.Vec3{}, mgl32.Vec3{nan, 0, 0}, blocks)
	for i, b := range blocks {
		if int(b.Num) != i {
			t.Fatalf("block %d has Num %d", i, b.Num)
		}
	}
}

func TestCompareFarthestFirst(t *testing.T) {
	nan := float32(math.NaN())
	cases := []struct {
		a, b float32
		want int
	}{
		{2, 1, -1},
		{1, 2, 1},
		{3, 3, 0},
		{nan, 1, 0},
		{1, nan, 0},
		{nan, nan, 0},
	}
	for _, tc := range cases {
		got := compareFarthestFirst(keyedBlock{dist: tc.a}, keyedBlock{dist: tc.b})
		if got != tc.want {
			t.Errorf("compare(%v,%v)=%d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDistanceSquared(t *testing.T) {
	if d := DistanceSquared(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 6, 3}); d != 25 {
		t.Fatalf("DistanceSquared=%f, want 25", d)
	}
}
