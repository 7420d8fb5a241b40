package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// File is the on-disk configuration of the chunk viewer.
type File struct {
	Chunk  ChunkConfig  `yaml:"chunk"`
	Camera CameraConfig `yaml:"camera"`
	Render RenderConfig `yaml:"render"`
}

type ChunkConfig struct {
	Axis    int        `yaml:"axis"`
	Anchor  [3]float32 `yaml:"anchor"`
	Fill    string     `yaml:"fill"`
	Density float64    `yaml:"density"`
	Seed    int64      `yaml:"seed"`
}

type CameraConfig struct {
	Eye    [3]float32 `yaml:"eye"`
	Target [3]float32 `yaml:"target"`
	FovY   float32    `yaml:"fovy"` // degrees
	Speed  float32    `yaml:"speed"`
}

type RenderConfig struct {
	FPSLimit   int        `yaml:"fps_limit"`
	Texture    string     `yaml:"texture"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	ClearColor [3]float32 `yaml:"clear_color"`
}

// Default returns the built-in configuration: an 8³ randomly filled chunk
// viewed from outside its far corner.
func Default() File {
	return File{
		Chunk: ChunkConfig{
			Axis:    8,
			Fill:    "random",
			Density: 0.5,
			Seed:    1,
		},
		Camera: CameraConfig{
			Eye:    [3]float32{40, 36, 40},
			Target: [3]float32{7, 7, 7},
			FovY:   45,
			Speed:  DefaultCameraSpeed,
		},
		Render: RenderConfig{
			FPSLimit:   DefaultFPSLimit,
			Width:      900,
			Height:     600,
			ClearColor: [3]float32{0.1, 0.2, 0.3},
		},
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default values.
func Load(path string) (File, error) {
	f := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Validate checks ranges that would otherwise fail deep inside setup.
// Chunk volume capacity is checked again when the grid is built.
func (f File) Validate() error {
	if f.Chunk.Axis < 1 || f.Chunk.Axis > 13 {
		return fmt.Errorf("%w: chunk.axis %d outside [1,13]", ErrInvalid, f.Chunk.Axis)
	}
	if f.Chunk.Density < 0 || f.Chunk.Density > 1 {
		return fmt.Errorf("%w: chunk.density %g outside [0,1]", ErrInvalid, f.Chunk.Density)
	}
	if f.Chunk.Fill == "" {
		return fmt.Errorf("%w: chunk.fill is empty", ErrInvalid)
	}
	if f.Camera.FovY <= 0 || f.Camera.FovY >= 180 {
		return fmt.Errorf("%w: camera.fovy %g outside (0,180)", ErrInvalid, f.Camera.FovY)
	}
	if f.Camera.Eye == f.Camera.Target {
		return fmt.Errorf("%w: camera.eye equals camera.target", ErrInvalid)
	}
	if f.Render.Width <= 0 || f.Render.Height <= 0 {
		return fmt.Errorf("%w: render size %dx%d", ErrInvalid, f.Render.Width, f.Render.Height)
	}
	return nil
}

// Apply pushes the per-frame settings into the runtime globals.
func Apply(f File) {
	SetFPSLimit(f.Render.FPSLimit)
	SetCameraSpeed(f.Camera.Speed)
}
