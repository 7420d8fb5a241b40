package graphics

import (
	"fmt"
	"image"
	"log"

	"chunk-mesh/internal/meshing"
	"chunk-mesh/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// MeshSource is anything that exposes a chunk's vertex and index buffers.
// *world.Chunk satisfies it.
type MeshSource interface {
	Vertices() []meshing.Vertex
	Indices() []uint16
}

// ChunkRenderer draws one chunk mesh. GPU buffers are sized once from the
// first upload and refreshed in place every frame; the buffer lengths of a
// chunk never change.
type ChunkRenderer struct {
	shader  *Shader
	texture uint32

	vao, vbo, ebo uint32
	vertexCount   int
	indexCount    int
}

// NewChunkRenderer compiles the chunk program and uploads the block texture.
// A nil texture selects FallbackBlockImage.
func NewChunkRenderer(texture *image.RGBA) (*ChunkRenderer, error) {
	shader, err := NewShader(chunkVertexShader, chunkFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("chunk shader: %w", err)
	}
	if texture == nil {
		texture = FallbackBlockImage()
	}

	r := &ChunkRenderer{shader: shader, texture: UploadTexture(texture)}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, meshing.PositionComponents, gl.FLOAT, false, meshing.VertexSize, meshing.PositionOffset)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, meshing.TexCoordComponents, gl.FLOAT, false, meshing.VertexSize, meshing.TexCoordOffset)

	gl.BindVertexArray(0)
	return r, nil
}

// Upload copies the current mesh into the GPU buffers.
func (r *ChunkRenderer) Upload(mesh MeshSource) {
	defer profiling.Track("render.Upload")()

	vertices := mesh.Vertices()
	indices := mesh.Indices()
	if len(vertices) == 0 || len(indices) == 0 {
		return
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(vertices) != r.vertexCount {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*meshing.VertexSize, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
		if r.vertexCount != 0 {
			log.Printf("chunk renderer: vertex buffer resized %d -> %d", r.vertexCount, len(vertices))
		}
		r.vertexCount = len(vertices)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*meshing.VertexSize, gl.Ptr(vertices))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	if len(indices) != r.indexCount {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.DYNAMIC_DRAW)
		r.indexCount = len(indices)
	} else {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*2, gl.Ptr(indices))
	}
	gl.BindVertexArray(0)
}

// Render draws the last uploaded mesh. Depth testing stays off: blocks arrive
// sorted farthest-first, and back faces are culled.
func (r *ChunkRenderer) Render(viewProj mgl32.Mat4) {
	if r.indexCount == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r.shader.Use()
	r.shader.SetMatrix4("viewProj", viewProj)
	r.shader.SetInt("diffuse", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)

	gl.BindVertexArray(r.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(r.indexCount), gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
}

// Dispose releases GPU resources.
func (r *ChunkRenderer) Dispose() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteTextures(1, &r.texture)
	r.shader.Delete()
}
