package world

import (
	"slices"

	"chunk-mesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// keyedBlock pairs a block with its sort key so distances are computed once per rebuild.
type keyedBlock struct {
	block voxel.Block
	dist  float32
}

// DistanceSquared returns |a-b|².
func DistanceSquared(a, b mgl32.Vec3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

// compareFarthestFirst orders larger distances first. Pairs that are neither
// greater nor smaller (equal, or NaN on either side) compare as equal, so the
// sort always completes.
func compareFarthestFirst(a, b keyedBlock) int {
	switch {
	case a.dist > b.dist:
		return -1
	case a.dist < b.dist:
		return 1
	default:
		return 0
	}
}

// SortByDistance reorders blocks farthest-first from viewer, using each
// block's position as given by its current Num, then rewrites Num to the new
// array offset. The sort is unstable.
func SortByDistance(g voxel.Grid, anchor, viewer mgl32.Vec3, blocks []voxel.Block) {
	sortByDistance(g, anchor, viewer, blocks, make([]keyedBlock, len(blocks)))
}

// sortByDistance is SortByDistance with a caller-owned scratch slice of at
// least len(blocks) entries, reused across rebuilds.
func sortByDistance(g voxel.Grid, anchor, viewer mgl32.Vec3, blocks []voxel.Block, scratch []keyedBlock) {
	scratch = scratch[:len(blocks)]
	for i, b := range blocks {
		scratch[i] = keyedBlock{
			block: b,
			dist:  DistanceSquared(g.WorldPos(anchor, int(b.Num)), viewer),
		}
	}

	slices.SortFunc(scratch, compareFarthestFirst)

	for i := range blocks {
		blocks[i] = scratch[i].block
		blocks[i].Num = uint16(i)
	}
}
