package game

import "chunk-mesh/internal/config"

// cameraStep converts a frame time into a camera travel distance at the
// configured speed. Long hitches are capped so one stalled frame cannot fling
// the camera through the chunk.
func cameraStep(dt float32) float32 {
	const maxStep = 0.1
	if dt <= 0 {
		return 0
	}
	if dt > maxStep {
		dt = maxStep
	}
	return dt * config.GetCameraSpeed()
}
