package voxel

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// BlockSize is the edge length of one block in world units.
	BlockSize = 2.0
	// BlockHalfExtent is the distance from a block center to each of its faces.
	BlockHalfExtent = BlockSize / 2

	// DefaultAxis is the number of blocks along one chunk axis.
	DefaultAxis = 8

	// MaxVertices is the number of vertices addressable with 16-bit indices.
	MaxVertices = 1 << 16
	// VerticesPerBlock is the fixed vertex footprint of one block (4 per face).
	VerticesPerBlock = 24
	// MaxBlocks is the largest chunk volume whose vertices fit 16-bit indices.
	MaxBlocks = MaxVertices / VerticesPerBlock
)

// ErrCapacity is returned when a chunk volume does not fit 16-bit indices.
var ErrCapacity = errors.New("chunk volume exceeds 16-bit index capacity")

// Coord is an integer cell coordinate inside a chunk.
type Coord struct {
	X, Y, Z int
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Grid maps linear block indices to cell coordinates for a cubic chunk.
// Indices are row-major with x varying fastest: n = x + A*(y + A*z).
type Grid struct {
	axis int
	size int
}

// NewGrid validates the axis length and returns the grid for it.
func NewGrid(axis int) (Grid, error) {
	if axis <= 0 {
		return Grid{}, fmt.Errorf("invalid chunk axis %d", axis)
	}
	size := axis * axis * axis
	if size > MaxBlocks {
		return Grid{}, fmt.Errorf("axis %d gives %d blocks (max %d): %w", axis, size, MaxBlocks, ErrCapacity)
	}
	return Grid{axis: axis, size: size}, nil
}

// MustGrid is NewGrid for axis values known to be valid.
func MustGrid(axis int) Grid {
	g, err := NewGrid(axis)
	if err != nil {
		panic(err)
	}
	return g
}

// Axis returns the number of blocks along one axis.
func (g Grid) Axis() int { return g.axis }

// Size returns the number of blocks in the chunk.
func (g Grid) Size() int { return g.size }

// Decode converts a linear index into its cell coordinate.
func (g Grid) Decode(n int) Coord {
	a := g.axis
	return Coord{
		X: n % a,
		Y: (n / a) % a,
		Z: n / (a * a),
	}
}

// Encode converts a cell coordinate into its linear index.
func (g Grid) Encode(c Coord) int {
	return c.X + g.axis*(c.Y+g.axis*c.Z)
}

// Contains reports whether c lies inside the chunk.
func (g Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.axis &&
		c.Y >= 0 && c.Y < g.axis &&
		c.Z >= 0 && c.Z < g.axis
}

// InRange reports whether n is a valid linear index.
func (g Grid) InRange(n int) bool {
	return n >= 0 && n < g.size
}

// RelPos returns the block center relative to the chunk anchor.
func (g Grid) RelPos(n int) mgl32.Vec3 {
	c := g.Decode(n)
	return mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)}.Mul(BlockSize)
}

// WorldPos returns the block center in world space.
func (g Grid) WorldPos(anchor mgl32.Vec3, n int) mgl32.Vec3 {
	return anchor.Add(g.RelPos(n))
}
