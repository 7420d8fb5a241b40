package meshing

import (
	"chunk-mesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// EmitBlockVertices writes the 24 vertices of one block into dst, which must
// hold at least VerticesPerBlock entries. Each face owns a fixed 4-vertex slot
// in voxel.Direction order; faces missing from the mask are written as
// ZeroVertex so the block keeps its full width.
func EmitBlockVertices(dst []Vertex, center mgl32.Vec3, faces FaceMask) {
	dst = dst[:VerticesPerBlock]
	for _, d := range voxel.Directions {
		slot := dst[int(d)*VerticesPerFace : (int(d)+1)*VerticesPerFace]
		if !faces.Has(d) {
			for i := range slot {
				slot[i] = ZeroVertex
			}
			continue
		}
		quad := FaceVertices(center, d)
		copy(slot, quad[:])
	}
}

// EmitBlockIndices writes the 36 indices for the block at array position pos.
// The pattern does not depend on visibility: culled faces still reference
// their (degenerate) vertices.
func EmitBlockIndices(dst []uint16, pos int) {
	dst = dst[:IndicesPerBlock]
	base := uint16(pos * VerticesPerBlock)
	for s := 0; s < voxel.NumDirections; s++ {
		v := base + uint16(s*VerticesPerFace)
		i := s * IndicesPerFace
		dst[i+0] = v
		dst[i+1] = v + 1
		dst[i+2] = v + 2
		dst[i+3] = v + 2
		dst[i+4] = v + 3
		dst[i+5] = v
	}
}
