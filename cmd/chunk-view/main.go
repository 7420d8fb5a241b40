package main

import (
	"flag"
	"log"
	"runtime"
	"strings"
	"time"

	"chunk-mesh/internal/camera"
	"chunk-mesh/internal/config"
	"chunk-mesh/internal/game"
	"chunk-mesh/internal/graphics"
	"chunk-mesh/internal/input"
	"chunk-mesh/internal/profiling"
	"chunk-mesh/internal/voxel"
	"chunk-mesh/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file (built-in defaults when empty)")
	axis := flag.Int("axis", 0, "override chunk.axis (1-13)")
	fill := flag.String("fill", "", "override chunk.fill: "+strings.Join(world.FillNames(), ", "))
	seed := flag.Int64("seed", 0, "override chunk.seed")
	flag.Parse()

	// closer exits the process once its cleanups ran; it must be the outermost defer
	defer closer.Close()

	cfg := loadConfig(*configPath)
	if *axis != 0 {
		cfg.Chunk.Axis = *axis
	}
	if *fill != "" {
		cfg.Chunk.Fill = *fill
	}
	if *seed != 0 {
		cfg.Chunk.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		closer.Fatalln(err)
	}
	config.Apply(cfg)

	grid, err := voxel.NewGrid(cfg.Chunk.Axis)
	if err != nil {
		closer.Fatalln(err)
	}
	anchor := mgl32.Vec3(cfg.Chunk.Anchor)
	regen := func(s int64) (*world.Chunk, error) {
		filler, err := world.FillByName(cfg.Chunk.Fill, s, cfg.Chunk.Density)
		if err != nil {
			return nil, err
		}
		return world.New(grid, anchor, filler), nil
	}

	start := time.Now()
	chunk, err := regen(cfg.Chunk.Seed)
	if err != nil {
		closer.Fatalln(err)
	}
	log.Printf("chunk %d³ (%d blocks) fill=%s seed=%d: %d solid, %d visible faces, built in %v",
		grid.Axis(), grid.Size(), cfg.Chunk.Fill, cfg.Chunk.Seed,
		chunk.SolidCount(), chunk.VisibleFaceCount(), time.Since(start))

	closer.Bind(func() {
		log.Printf("shutdown; last frame: %s", profiling.TopN(5))
	})

	if err := glfw.Init(); err != nil {
		closer.Fatalln(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Render.Width, cfg.Render.Height)
	if err != nil {
		closer.Fatalln(err)
	}
	defer window.Destroy()

	cam := camera.New(
		mgl32.Vec3(cfg.Camera.Eye),
		mgl32.Vec3(cfg.Camera.Target),
		cfg.Camera.FovY,
		cfg.Render.Width, cfg.Render.Height,
	)

	texture := graphics.FallbackBlockImage()
	if cfg.Render.Texture != "" {
		img, err := graphics.LoadBlockImage(cfg.Render.Texture)
		if err != nil {
			log.Printf("texture: %v; using built-in texture", err)
		} else {
			texture = img
		}
	}

	r, err := graphics.NewChunkRenderer(texture)
	if err != nil {
		closer.Fatalln(err)
	}
	defer r.Dispose()
	r.Upload(chunk)

	im := input.NewInputManager()
	app := game.NewApp(window, im, r, game.Scene{
		Chunk:      chunk,
		Camera:     cam,
		ClearColor: mgl32.Vec3(cfg.Render.ClearColor),
	}, regen, cfg.Chunk.Seed)

	setupInputHandlers(window, im, cam, app)
	app.Run()
}

func loadConfig(path string) config.File {
	if path == "" {
		log.Printf("no config file given, using defaults")
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		closer.Fatalln(err)
	}
	log.Printf("loaded config %s", path)
	return cfg
}
