package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera looks from Eye toward Target and builds the view-projection matrix
// the chunk shader consumes.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	AspectRatio float32
	FOV         float32 // vertical, degrees
	NearPlane   float32
	FarPlane    float32
}

func New(eye, target mgl32.Vec3, fov float32, width, height int) *Camera {
	c := &Camera{
		Eye:       eye,
		Target:    target,
		Up:        mgl32.Vec3{0, 1, 0},
		FOV:       fov,
		NearPlane: 0.1,
		FarPlane:  1000.0,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio; zero heights are ignored (minimised window).
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewProjection returns projection * view. GL clip space is used directly,
// so no depth-range conversion matrix is applied.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
}

func (c *Camera) forward() mgl32.Vec3 {
	f := c.Target.Sub(c.Eye)
	if f.Len() == 0 {
		return mgl32.Vec3{}
	}
	return f.Normalize()
}

// MoveForward moves the eye toward the target, stopping short of it.
func (c *Camera) MoveForward(dist float32) {
	f := c.Target.Sub(c.Eye)
	if f.Len() <= dist+c.NearPlane {
		return
	}
	c.Eye = c.Eye.Add(f.Normalize().Mul(dist))
}

// MoveBackward moves the eye away from the target.
func (c *Camera) MoveBackward(dist float32) {
	c.Eye = c.Eye.Sub(c.forward().Mul(dist))
}

// Orbit rotates the eye around the target about the up axis by angle radians,
// keeping the distance to the target.
func (c *Camera) Orbit(angle float32) {
	rel := c.Eye.Sub(c.Target)
	rot := mgl32.HomogRotate3D(angle, c.Up.Normalize())
	c.Eye = c.Target.Add(mgl32.TransformCoordinate(rel, rot))
}

// MoveUp shifts eye and target along the up axis.
func (c *Camera) MoveUp(dist float32) {
	d := c.Up.Normalize().Mul(dist)
	c.Eye = c.Eye.Add(d)
	c.Target = c.Target.Add(d)
}
