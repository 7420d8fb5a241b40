package physics

import (
	"math"

	"chunk-mesh/internal/profiling"
	"chunk-mesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 128.0
)

// Occupancy is a solid/empty lookup over a grid placed at an anchor.
// *world.Chunk satisfies it.
type Occupancy interface {
	Grid() voxel.Grid
	Anchor() mgl32.Vec3
	Solid(n int) bool
}

// RaycastResult stores the result of a raycast operation. Indices are grid
// cell indices; AdjacentIndex is voxel.NoNeighbor when the ray entered the
// hit cell from outside the grid.
type RaycastResult struct {
	HitIndex      int
	AdjacentIndex int
	Distance      float32
	Hit           bool
}

// CellAt maps a world position to the grid cell containing it.
func CellAt(g voxel.Grid, anchor, pos mgl32.Vec3) (int, bool) {
	rel := pos.Sub(anchor)
	c := voxel.Coord{
		X: cellCoord(rel.X()),
		Y: cellCoord(rel.Y()),
		Z: cellCoord(rel.Z()),
	}
	if !g.Contains(c) {
		return voxel.NoNeighbor, false
	}
	return g.Encode(c), true
}

// block centers sit at multiples of BlockSize, so cell k spans [2k-1, 2k+1)
func cellCoord(v float32) int {
	return int(math.Floor(float64(v+voxel.BlockHalfExtent) / voxel.BlockSize))
}

// Raycast marches from start along direction and reports the first solid cell
// between minDist and maxDist.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, occ Occupancy) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	if direction.Len() == 0 {
		return RaycastResult{HitIndex: voxel.NoNeighbor, AdjacentIndex: voxel.NoNeighbor}
	}
	direction = direction.Normalize()

	g, anchor := occ.Grid(), occ.Anchor()
	stepSize := float32(0.02)
	steps := int(maxDist / stepSize)

	lastEmpty := voxel.NoNeighbor
	result := RaycastResult{HitIndex: voxel.NoNeighbor, AdjacentIndex: voxel.NoNeighbor}

	for i := 0; i <= steps; i++ {
		dist := float32(i) * stepSize
		if dist < minDist {
			continue
		}

		n, inside := CellAt(g, anchor, start.Add(direction.Mul(dist)))
		if !inside {
			lastEmpty = voxel.NoNeighbor
			continue
		}
		if occ.Solid(n) {
			result.HitIndex = n
			result.AdjacentIndex = lastEmpty
			result.Distance = dist
			result.Hit = true
			return result
		}
		lastEmpty = n
	}

	return result
}
