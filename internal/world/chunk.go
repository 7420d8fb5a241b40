package world

import (
	"fmt"

	"chunk-mesh/internal/meshing"
	"chunk-mesh/internal/profiling"
	"chunk-mesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// Chunk owns a cubic block array and the vertex/index buffers derived from it.
//
// Buffer lengths are fixed at construction (Size*24 vertices, Size*36
// indices); rebuilds overwrite their contents in place. A Chunk is not safe
// for concurrent use.
type Chunk struct {
	grid   voxel.Grid
	anchor mgl32.Vec3
	blocks []voxel.Block

	vertices []meshing.Vertex
	indices  []uint16

	scratch []keyedBlock
}

// New builds a chunk anchored at anchor with the initial solidity from fill,
// then meshes it as seen from the origin. The initial build keeps the fill's
// layout; reordering starts with the first UpdateGraphics call.
func New(g voxel.Grid, anchor mgl32.Vec3, fill Filler) *Chunk {
	size := g.Size()
	c := &Chunk{
		grid:     g,
		anchor:   anchor,
		blocks:   make([]voxel.Block, size),
		vertices: make([]meshing.Vertex, size*meshing.VerticesPerBlock),
		indices:  make([]uint16, size*meshing.IndicesPerBlock),
		scratch:  make([]keyedBlock, size),
	}
	for n := range c.blocks {
		c.blocks[n] = voxel.Block{Num: uint16(n)}
		if fill != nil {
			c.blocks[n].Solid = fill(g, n)
		}
	}
	c.Rebuild()
	return c
}

// UpdateGraphics reorders the blocks farthest-first from viewer and
// regenerates both buffers. Views returned by Vertices and Indices before the
// call see the new contents afterwards.
func (c *Chunk) UpdateGraphics(viewer mgl32.Vec3) {
	c.sort(viewer)
	c.Rebuild()
}

// Rebuild regenerates both buffers from the current block order.
func (c *Chunk) Rebuild() {
	c.updateVertices()
	c.updateIndices()
}

func (c *Chunk) sort(viewer mgl32.Vec3) {
	defer profiling.Track("chunk.Sort")()
	sortByDistance(c.grid, c.anchor, viewer, c.blocks, c.scratch)
}

func (c *Chunk) updateVertices() {
	defer profiling.Track("chunk.Vertices")()
	for i := range c.blocks {
		faces := meshing.VisibleFaces(c.grid, c.blocks, i)
		center := c.grid.WorldPos(c.anchor, i)
		start := i * meshing.VerticesPerBlock
		meshing.EmitBlockVertices(c.vertices[start:start+meshing.VerticesPerBlock], center, faces)
	}
}

func (c *Chunk) updateIndices() {
	defer profiling.Track("chunk.Indices")()
	for i := range c.blocks {
		start := i * meshing.IndicesPerBlock
		meshing.EmitBlockIndices(c.indices[start:start+meshing.IndicesPerBlock], i)
	}
}

// Vertices returns the vertex buffer. The slice is owned by the chunk and is
// overwritten by the next rebuild; callers must not modify or retain it.
func (c *Chunk) Vertices() []meshing.Vertex { return c.vertices }

// Indices returns the 16-bit triangle-list index buffer, with the same
// ownership rules as Vertices.
func (c *Chunk) Indices() []uint16 { return c.indices }

// Grid returns the chunk's coordinate grid.
func (c *Chunk) Grid() voxel.Grid { return c.grid }

// Anchor returns the world-space origin of the chunk.
func (c *Chunk) Anchor() mgl32.Vec3 { return c.anchor }

// Blocks returns a copy of the blocks in display order.
func (c *Chunk) Blocks() []voxel.Block {
	out := make([]voxel.Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Solid reports whether the block in slot n is solid.
func (c *Chunk) Solid(n int) bool {
	return c.grid.InRange(n) && c.blocks[n].Solid
}

// SetSolid changes the solidity of the block currently in slot n. Buffers are
// not touched until the next Rebuild or UpdateGraphics.
func (c *Chunk) SetSolid(n int, solid bool) error {
	if !c.grid.InRange(n) {
		return fmt.Errorf("block %d out of range [0,%d)", n, c.grid.Size())
	}
	c.blocks[n].Solid = solid
	return nil
}

// SolidCount returns the number of solid blocks.
func (c *Chunk) SolidCount() int {
	n := 0
	for _, b := range c.blocks {
		if b.Solid {
			n++
		}
	}
	return n
}

// VisibleFaceCount returns the number of faces the current block state draws.
func (c *Chunk) VisibleFaceCount() int {
	n := 0
	for i := range c.blocks {
		n += meshing.VisibleFaces(c.grid, c.blocks, i).Count()
	}
	return n
}
