package main

import (
	"chunk-mesh/internal/camera"
	"chunk-mesh/internal/game"
	"chunk-mesh/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, im *input.InputManager, cam *camera.Camera, app *game.App) {
	im.Attach(window)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		cam.SetViewport(width, height)
		// resizing blocks the main loop on some platforms
		app.RefreshRender()
	})
}
