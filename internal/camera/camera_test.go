package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestViewProjectionCentersTarget(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, 45, 800, 600)
	clip := c.ViewProjection().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if clip.W() <= 0 {
		t.Fatalf("target behind camera: w=%f", clip.W())
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if !near(ndc.X(), 0) || !near(ndc.Y(), 0) {
		t.Fatalf("target not centered: %v", ndc)
	}
	if ndc.Z() < -1 || ndc.Z() > 1 {
		t.Fatalf("target outside depth range: %v", ndc)
	}
}

func TestSetViewportIgnoresZero(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, 45, 800, 400)
	c.SetViewport(0, 0)
	if c.AspectRatio != 2 {
		t.Fatalf("aspect %f, want 2", c.AspectRatio)
	}
}

func TestOrbitKeepsDistance(t *testing.T) {
	c := New(mgl32.Vec3{10, 3, 0}, mgl32.Vec3{}, 45, 1, 1)
	before := c.Eye.Sub(c.Target).Len()
	c.Orbit(mgl32.DegToRad(90))
	if after := c.Eye.Sub(c.Target).Len(); !near(before, after) {
		t.Fatalf("distance %f -> %f", before, after)
	}
	if !near(c.Eye.Y(), 3) {
		t.Fatalf("orbit changed height: %v", c.Eye)
	}
}

func TestMoveForwardStopsBeforeTarget(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, 45, 1, 1)
	c.MoveForward(2)
	if !near(c.Eye.Z(), 3) {
		t.Fatalf("eye %v, want z=3", c.Eye)
	}
	c.MoveForward(10)
	if !near(c.Eye.Z(), 3) {
		t.Fatalf("eye passed the target: %v", c.Eye)
	}
	c.MoveBackward(1)
	if !near(c.Eye.Z(), 4) {
		t.Fatalf("eye %v, want z=4", c.Eye)
	}
}
