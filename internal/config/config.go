package config

import "sync"

// RenderSettings holds settings the render loop reads every frame.
type RenderSettings struct {
	mu          sync.RWMutex
	fpsLimit    int     // 0 = unlimited
	cameraSpeed float32 // world units per second
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:    DefaultFPSLimit,
	cameraSpeed: DefaultCameraSpeed,
}

const (
	DefaultFPSLimit    = 60
	DefaultCameraSpeed = 10.0

	maxFPSLimit    = 1000
	minCameraSpeed = 0.1
	maxCameraSpeed = 500
)

// GetFPSLimit returns the frame cap, 0 when unlimited.
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Negative values mean unlimited.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > maxFPSLimit {
		limit = maxFPSLimit
	}
	globalRenderSettings.fpsLimit = limit
}

// GetCameraSpeed returns the camera movement speed.
func GetCameraSpeed() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.cameraSpeed
}

// SetCameraSpeed sets the camera movement speed, clamped to a usable range.
func SetCameraSpeed(speed float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if speed < minCameraSpeed {
		speed = minCameraSpeed
	}
	if speed > maxCameraSpeed {
		speed = maxCameraSpeed
	}
	globalRenderSettings.cameraSpeed = speed
}
