package game

import (
	"log"
	"time"

	"chunk-mesh/internal/camera"
	"chunk-mesh/internal/graphics"
	"chunk-mesh/internal/input"
	"chunk-mesh/internal/physics"
	"chunk-mesh/internal/profiling"
	"chunk-mesh/internal/voxel"
	"chunk-mesh/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// orbitSpeed is the orbit rate in radians per second.
const orbitSpeed = 1.2

// Scene is what the app draws: one chunk seen through one camera.
type Scene struct {
	Chunk      *world.Chunk
	Camera     *camera.Camera
	ClearColor mgl32.Vec3
}

// Regenerator builds a fresh chunk for the given seed.
type Regenerator func(seed int64) (*world.Chunk, error)

// App drives the per-frame loop of the chunk viewer.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	renderer     *graphics.ChunkRenderer

	scene Scene
	regen Regenerator
	seed  int64

	frozen        bool // skip reordering, keep the last mesh
	showProfiling bool

	fpsLimiter       *FPSLimiter
	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

func NewApp(window *glfw.Window, im *input.InputManager, r *graphics.ChunkRenderer, scene Scene, regen Regenerator, seed int64) *App {
	now := time.Now()
	return &App{
		window:           window,
		inputManager:     im,
		renderer:         r,
		scene:            scene,
		regen:            regen,
		seed:             seed,
		fpsLimiter:       NewFPSLimiter(),
		lastFPSCheckTime: now,
		lastTime:         now,
	}
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.handleInputActions()
	applyCameraInput(a.scene.Camera, a.inputManager, float32(dt))

	if !a.frozen {
		a.scene.Chunk.UpdateGraphics(a.scene.Camera.Eye)
		a.renderer.Upload(a.scene.Chunk)
	}

	a.renderFrame()

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	processingDuration := time.Since(startTick)
	if processingDuration > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	a.frames++
	if time.Since(a.lastFPSCheckTime) >= time.Second {
		if a.showProfiling {
			log.Printf("FPS: %d, last frame: %s", a.frames, profiling.TopN(5))
		}
		a.frames = 0
		a.lastFPSCheckTime = time.Now()
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait()
}

func (a *App) handleInputActions() {
	im := a.inputManager
	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleSort) {
		a.frozen = !a.frozen
		log.Printf("reordering frozen: %v", a.frozen)
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		a.showProfiling = !a.showProfiling
	}
	if im.JustPressed(input.ActionBreakBlock) {
		a.editBlock(false)
	}
	if im.JustPressed(input.ActionPlaceBlock) {
		a.editBlock(true)
	}
	if im.JustPressed(input.ActionRegenerate) && a.regen != nil {
		a.seed++
		c, err := a.regen(a.seed)
		if err != nil {
			log.Printf("regenerate seed %d: %v", a.seed, err)
			return
		}
		a.scene.Chunk = c
		// a frozen view still needs the new mesh once
		a.renderer.Upload(c)
		log.Printf("regenerated chunk with seed %d: %d solid blocks", a.seed, c.SolidCount())
	}
}

// editBlock clears the block under the view center, or fills the empty cell
// in front of it when place is set.
func (a *App) editBlock(place bool) {
	cam, c := a.scene.Camera, a.scene.Chunk
	hit := physics.Raycast(cam.Eye, cam.Target.Sub(cam.Eye), physics.MinReachDistance, physics.MaxReachDistance, c)
	if !hit.Hit {
		return
	}
	n := hit.HitIndex
	if place {
		n = hit.AdjacentIndex
		if n == voxel.NoNeighbor {
			return
		}
	}
	if err := c.SetSolid(n, place); err != nil {
		log.Printf("edit block: %v", err)
		return
	}
	if a.frozen {
		c.Rebuild()
		a.renderer.Upload(c)
	}
}

func applyCameraInput(cam *camera.Camera, im *input.InputManager, dt float32) {
	dist := cameraStep(dt)
	if im.IsActive(input.ActionMoveForward) {
		cam.MoveForward(dist)
	}
	if im.IsActive(input.ActionMoveBackward) {
		cam.MoveBackward(dist)
	}
	if im.IsActive(input.ActionOrbitLeft) {
		cam.Orbit(-orbitSpeed * dt)
	}
	if im.IsActive(input.ActionOrbitRight) {
		cam.Orbit(orbitSpeed * dt)
	}
	if im.IsActive(input.ActionMoveUp) {
		cam.MoveUp(dist)
	}
	if im.IsActive(input.ActionMoveDown) {
		cam.MoveUp(-dist)
	}
}

func (a *App) renderFrame() {
	defer profiling.Track("render.Frame")()
	c := a.scene.ClearColor
	gl.ClearColor(c.X(), c.Y(), c.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	a.renderer.Render(a.scene.Camera.ViewProjection())
}

// RefreshRender repaints the last mesh; used while the window is being resized.
func (a *App) RefreshRender() {
	a.renderFrame()
	a.window.SwapBuffers()
}
