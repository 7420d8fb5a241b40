package meshing

import (
	"chunk-mesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved vertex: position followed by texture coordinate.
// The struct is tightly packed (20 bytes) and can be uploaded as-is.
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Vertex buffer layout consumed by the renderer.
const (
	VertexSize         = 20
	PositionOffset     = 0
	PositionComponents = 3
	TexCoordOffset     = 12
	TexCoordComponents = 2
)

const (
	VerticesPerFace  = 4
	VerticesPerBlock = VerticesPerFace * voxel.NumDirections
	IndicesPerFace   = 6
	IndicesPerBlock  = IndicesPerFace * voxel.NumDirections
)

// ZeroVertex is the degenerate vertex written for suppressed geometry.
var ZeroVertex = Vertex{}

type corner struct {
	offset mgl32.Vec3
	uv     mgl32.Vec2
}

// faceCorners holds the four corners of each face of a unit-half-extent cube.
// Corners are ordered counter-clockwise when seen from outside, so the
// triangles (0,1,2) and (2,3,0) face outward.
var faceCorners = [voxel.NumDirections][VerticesPerFace]corner{
	voxel.PosZ: {
		{mgl32.Vec3{-1, -1, 1}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{1, -1, 1}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{1, 1, 1}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{-1, 1, 1}, mgl32.Vec2{0, 1}},
	},
	voxel.NegZ: {
		{mgl32.Vec3{-1, 1, -1}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{1, 1, -1}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{1, -1, -1}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{-1, -1, -1}, mgl32.Vec2{0, 1}},
	},
	voxel.PosX: {
		{mgl32.Vec3{1, -1, -1}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{1, 1, -1}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{1, 1, 1}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{1, -1, 1}, mgl32.Vec2{0, 1}},
	},
	voxel.NegX: {
		{mgl32.Vec3{-1, -1, 1}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{-1, 1, 1}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{-1, 1, -1}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{-1, -1, -1}, mgl32.Vec2{0, 1}},
	},
	voxel.PosY: {
		{mgl32.Vec3{1, 1, -1}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{-1, 1, -1}, mgl32.Vec2{0, 1}},
		{mgl32.Vec3{-1, 1, 1}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{1, 1, 1}, mgl32.Vec2{1, 0}},
	},
	voxel.NegY: {
		{mgl32.Vec3{1, -1, 1}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{-1, -1, 1}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{-1, -1, -1}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{1, -1, -1}, mgl32.Vec2{0, 1}},
	},
}

// FaceVertices returns the four corners of face d for a block centered at center.
func FaceVertices(center mgl32.Vec3, d voxel.Direction) [VerticesPerFace]Vertex {
	var out [VerticesPerFace]Vertex
	for i, c := range faceCorners[d] {
		out[i] = Vertex{
			Position: center.Add(c.offset.Mul(voxel.BlockHalfExtent)),
			TexCoord: c.uv,
		}
	}
	return out
}
