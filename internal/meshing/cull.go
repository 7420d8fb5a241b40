package meshing

import "chunk-mesh/internal/voxel"

// FaceMask is a set of visible faces indexed by voxel.Direction.
type FaceMask uint8

// AllFaces has every face visible.
const AllFaces FaceMask = 1<<voxel.NumDirections - 1

// Has reports whether face d is in the mask.
func (m FaceMask) Has(d voxel.Direction) bool {
	return m&(1<<d) != 0
}

// With returns m with face d added.
func (m FaceMask) With(d voxel.Direction) FaceMask {
	return m | 1<<d
}

// Count returns the number of visible faces.
func (m FaceMask) Count() int {
	n := 0
	for _, d := range voxel.Directions {
		if m.Has(d) {
			n++
		}
	}
	return n
}

// FaceVisible decides whether one face of a block is drawn. An empty block
// draws nothing; a solid block hides a face only behind an existing solid
// neighbor. Boundary faces (no neighbor) are always drawn.
func FaceVisible(solid, hasNeighbor, neighborSolid bool) bool {
	if !solid {
		return false
	}
	return !(hasNeighbor && neighborSolid)
}

// VisibleFaces applies FaceVisible to all six faces of the block at array
// position n. Cells are identified by array position, not by Block.Num.
func VisibleFaces(g voxel.Grid, blocks []voxel.Block, n int) FaceMask {
	if n < 0 || n >= len(blocks) || !blocks[n].Solid {
		return 0
	}
	var mask FaceMask
	for _, d := range voxel.Directions {
		m, ok := g.Neighbor(n, d)
		neighborSolid := ok && m < len(blocks) && blocks[m].Solid
		if FaceVisible(true, ok, neighborSolid) {
			mask = mask.With(d)
		}
	}
	return mask
}
