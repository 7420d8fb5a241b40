package meshing

import (
	"testing"
	"unsafe"

	"chunk-mesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVertexLayout(t *testing.T) {
	var v Vertex
	if got := unsafe.Sizeof(v); got != VertexSize {
		t.Fatalf("sizeof(Vertex)=%d, want %d", got, VertexSize)
	}
	if got := unsafe.Offsetof(v.Position); got != PositionOffset {
		t.Fatalf("position offset %d, want %d", got, PositionOffset)
	}
	if got := unsafe.Offsetof(v.TexCoord); got != TexCoordOffset {
		t.Fatalf("tex coord offset %d, want %d", got, TexCoordOffset)
	}
}

// Each quad's first triangle must wind counter-clockwise seen from outside,
// i.e. its geometric normal points along the face direction.
func TestFaceWindingOutward(t *testing.T) {
	center := mgl32.Vec3{4, -2, 6}
	for _, d := range voxel.Directions {
		q := FaceVertices(center, d)
		o := d.Offset()
		out := mgl32.Vec3{float32(o.X), float32(o.Y), float32(o.Z)}

		n1 := q[1].Position.Sub(q[0].Position).Cross(q[2].Position.Sub(q[0].Position))
		n2 := q[3].Position.Sub(q[2].Position).Cross(q[0].Position.Sub(q[2].Position))
		if n1.Dot(out) <= 0 || n2.Dot(out) <= 0 {
			t.Errorf("%v: triangles face inward (n1=%v n2=%v)", d, n1, n2)
		}
		for i, v := range q {
			if got := v.Position.Sub(center).Dot(out); got != voxel.BlockHalfExtent {
				t.Errorf("%v corner %d: not on the face plane (%v)", d, i, got)
			}
		}
	}
}

func TestEmitBlockVerticesAllFaces(t *testing.T) {
	center := mgl32.Vec3{2, 0, 0}
	dst := make([]Vertex, VerticesPerBlock)
	EmitBlockVertices(dst, center, AllFaces)

	min := mgl32.Vec3{1, -1, -1}
	max := mgl32.Vec3{3, 1, 1}
	for i, v := range dst {
		if v.Position == (mgl32.Vec3{}) {
			t.Fatalf("vertex %d is zero", i)
		}
		for k := 0; k < 3; k++ {
			if v.Position[k] != min[k] && v.Position[k] != max[k] {
				t.Fatalf("vertex %d %v not a cube corner", i, v.Position)
			}
		}
	}
}

func TestEmitBlockVerticesMaskedFaces(t *testing.T) {
	dst := make([]Vertex, VerticesPerBlock)
	for i := range dst {
		dst[i].Position = mgl32.Vec3{9, 9, 9}
	}
	mask := FaceMask(0).With(voxel.PosX).With(voxel.NegY)
	EmitBlockVertices(dst, mgl32.Vec3{}, mask)

	for _, d := range voxel.Directions {
		slot := dst[int(d)*VerticesPerFace : (int(d)+1)*VerticesPerFace]
		for i, v := range slot {
			zero := v == ZeroVertex
			if mask.Has(d) == zero {
				t.Errorf("%v vertex %d: zero=%v with face visible=%v", d, i, zero, mask.Has(d))
			}
		}
	}
}

func TestEmitBlockIndices(t *testing.T) {
	dst := make([]uint16, IndicesPerBlock)
	EmitBlockIndices(dst, 3)
	base := uint16(3 * VerticesPerBlock)
	want := []uint16{0, 1, 2, 2, 3, 0}
	for s := 0; s < voxel.NumDirections; s++ {
		for k, off := range want {
			got := dst[s*IndicesPerFace+k]
			exp := base + uint16(s*VerticesPerFace) + off
			if got != exp {
				t.Fatalf("slot %d index %d: got %d, want %d", s, k, got, exp)
			}
		}
	}
}

func TestEmitBlockIndicesLastBlockFits(t *testing.T) {
	g := voxel.MustGrid(13)
	dst := make([]uint16, IndicesPerBlock)
	last := g.Size() - 1
	EmitBlockIndices(dst, last)
	if int(dst[0]) != last*VerticesPerBlock {
		t.Fatalf("base index wrapped: %d", dst[0])
	}
	if int(dst[IndicesPerBlock-2]) != last*VerticesPerBlock+23 {
		t.Fatalf("last vertex index wrapped: %d", dst[IndicesPerBlock-2])
	}
}
