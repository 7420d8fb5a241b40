package meshing

import (
	"testing"

	"chunk-mesh/internal/voxel"
)

func TestFaceVisibleRule(t *testing.T) {
	cases := []struct {
		solid, hasNeighbor, neighborSolid bool
		want                              bool
	}{
		{false, false, false, false},
		{false, true, false, false},
		{false, true, true, false},
		{true, false, false, true},
		{true, true, false, true},
		{true, true, true, false},
	}
	for _, tc := range cases {
		got := FaceVisible(tc.solid, tc.hasNeighbor, tc.neighborSolid)
		if got != tc.want {
			t.Errorf("FaceVisible(%v,%v,%v)=%v, want %v", tc.solid, tc.hasNeighbor, tc.neighborSolid, got, tc.want)
		}
	}
}

func solidBlocks(g voxel.Grid, solid func(voxel.Coord) bool) []voxel.Block {
	blocks := make([]voxel.Block, g.Size())
	for n := range blocks {
		blocks[n] = voxel.Block{Solid: solid(g.Decode(n)), Num: uint16(n)}
	}
	return blocks
}

func TestVisibleFacesFullyOccluded(t *testing.T) {
	g := voxel.MustGrid(3)
	blocks := solidBlocks(g, func(voxel.Coord) bool { return true })
	center := g.Encode(voxel.Coord{X: 1, Y: 1, Z: 1})
	if m := VisibleFaces(g, blocks, center); m != 0 {
		t.Fatalf("enclosed block has visible faces %06b", m)
	}
}

func TestVisibleFacesIsolated(t *testing.T) {
	g := voxel.MustGrid(3)
	center := voxel.Coord{X: 1, Y: 1, Z: 1}
	blocks := solidBlocks(g, func(c voxel.Coord) bool { return c == center })
	if m := VisibleFaces(g, blocks, g.Encode(center)); m != AllFaces {
		t.Fatalf("isolated block faces %06b, want all", m)
	}
}

func TestVisibleFacesEmptyBlock(t *testing.T) {
	g := voxel.MustGrid(3)
	center := voxel.Coord{X: 1, Y: 1, Z: 1}
	blocks := solidBlocks(g, func(c voxel.Coord) bool { return c != center })
	if m := VisibleFaces(g, blocks, g.Encode(center)); m != 0 {
		t.Fatalf("empty block has visible faces %06b", m)
	}
}

// A corner block of a full chunk sees three boundaries and three solid
// neighbors; only the boundary faces are drawn.
func TestVisibleFacesBoundary(t *testing.T) {
	g := voxel.MustGrid(2)
	blocks := solidBlocks(g, func(voxel.Coord) bool { return true })
	m := VisibleFaces(g, blocks, 0)
	want := FaceMask(0).With(voxel.NegX).With(voxel.NegY).With(voxel.NegZ)
	if m != want {
		t.Fatalf("corner faces %06b, want %06b", m, want)
	}
}

// Culling must treat all three axes alike.
func TestVisibleFacesSymmetricAxes(t *testing.T) {
	g := voxel.MustGrid(3)
	center := voxel.Coord{X: 1, Y: 1, Z: 1}
	for _, d := range voxel.Directions {
		nb := center.Add(d.Offset())
		blocks := solidBlocks(g, func(c voxel.Coord) bool { return c == center || c == nb })
		m := VisibleFaces(g, blocks, g.Encode(center))
		if m.Has(d) {
			t.Errorf("%v: face toward solid neighbor drawn", d)
		}
		if m.Count() != voxel.NumDirections-1 {
			t.Errorf("%v: %d faces drawn, want 5", d, m.Count())
		}
	}
}
