package voxel

// Direction identifies one of the six axis-aligned faces of a block.
// The order matches the face slots of a block's vertex range.
type Direction uint8

const (
	PosZ Direction = iota // top
	NegZ                  // bottom
	PosX                  // right
	NegX                  // left
	PosY                  // front
	NegY                  // back

	NumDirections = 6
)

// NoNeighbor marks a chunk-boundary face in Neighbors results.
const NoNeighbor = -1

// Directions lists every direction in face-slot order.
var Directions = [NumDirections]Direction{PosZ, NegZ, PosX, NegX, PosY, NegY}

var directionOffsets = [NumDirections]Coord{
	PosZ: {0, 0, 1},
	NegZ: {0, 0, -1},
	PosX: {1, 0, 0},
	NegX: {-1, 0, 0},
	PosY: {0, 1, 0},
	NegY: {0, -1, 0},
}

var directionNames = [NumDirections]string{
	PosZ: "+z",
	NegZ: "-z",
	PosX: "+x",
	NegX: "-x",
	PosY: "+y",
	NegY: "-y",
}

// Offset returns the unit cell step for d.
func (d Direction) Offset() Coord {
	return directionOffsets[d]
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

func (d Direction) String() string {
	if int(d) >= NumDirections {
		return "?"
	}
	return directionNames[d]
}

// stride is the linear index step for one cell along d.
func (g Grid) stride(d Direction) int {
	o := d.Offset()
	return o.X + g.axis*(o.Y+g.axis*o.Z)
}

// Neighbor returns the linear index of the cell next to n in direction d.
// Plain index arithmetic wraps across rows and layers, so the candidate is
// only accepted when decoding shows a single step along d's axis.
func (g Grid) Neighbor(n int, d Direction) (int, bool) {
	if !g.InRange(n) || int(d) >= NumDirections {
		return NoNeighbor, false
	}
	cand := n + g.stride(d)
	if !g.InRange(cand) {
		return NoNeighbor, false
	}

	src := g.Decode(n)
	dst := g.Decode(cand)
	if dst != src.Add(d.Offset()) {
		return NoNeighbor, false
	}
	return cand, true
}

// Neighbors returns the neighbor index for every direction, NoNeighbor at the boundary.
func (g Grid) Neighbors(n int) [NumDirections]int {
	var out [NumDirections]int
	for _, d := range Directions {
		out[d], _ = g.Neighbor(n, d)
	}
	return out
}
