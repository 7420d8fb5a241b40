package world

import (
	"fmt"
	"math/rand"
	"sort"

	"chunk-mesh/internal/voxel"
)

// Filler decides the initial solidity of the cell at linear index n.
type Filler func(g voxel.Grid, n int) bool

// SolidFill makes every block solid.
func SolidFill(voxel.Grid, int) bool { return true }

// EmptyFill makes every block empty.
func EmptyFill(voxel.Grid, int) bool { return false }

// ShellFill makes the outer layer of the chunk solid and leaves the inside hollow.
func ShellFill(g voxel.Grid, n int) bool {
	c := g.Decode(n)
	last := g.Axis() - 1
	return c.X == 0 || c.Y == 0 || c.Z == 0 || c.X == last || c.Y == last || c.Z == last
}

// SingleFill makes only the block at c solid.
func SingleFill(c voxel.Coord) Filler {
	return func(g voxel.Grid, n int) bool {
		return g.Decode(n) == c
	}
}

// RandomFill marks each block solid with probability density, deterministic
// for a given seed as long as blocks are filled in index order.
func RandomFill(seed int64, density float64) Filler {
	rng := rand.New(rand.NewSource(seed))
	return func(voxel.Grid, int) bool {
		return rng.Float64() < density
	}
}

// NoiseFill marks blocks solid where 3D value noise exceeds threshold.
// Unlike RandomFill the result depends only on the cell, so neighboring
// cells tend to share solidity.
func NoiseFill(seed int64, threshold float64) Filler {
	const (
		scale       = 0.35
		octaves     = 3
		persistence = 0.5
		lacunarity  = 2.0
	)
	return func(g voxel.Grid, n int) bool {
		c := g.Decode(n)
		v := octaveNoise3D(float64(c.X)*scale, float64(c.Y)*scale, float64(c.Z)*scale, seed, octaves, persistence, lacunarity)
		return v > threshold
	}
}

// Fill pattern names accepted by FillByName.
const (
	FillRandom = "random"
	FillNoise  = "noise"
	FillSolid  = "solid"
	FillEmpty  = "empty"
	FillShell  = "shell"
)

var fillNames = map[string]bool{
	FillRandom: true,
	FillNoise:  true,
	FillSolid:  true,
	FillEmpty:  true,
	FillShell:  true,
}

// FillNames returns the accepted pattern names in sorted order.
func FillNames() []string {
	names := make([]string, 0, len(fillNames))
	for k := range fillNames {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// FillByName resolves a named pattern. density is the solid probability for
// "random" and 1-threshold for "noise"; other patterns ignore it.
func FillByName(name string, seed int64, density float64) (Filler, error) {
	switch name {
	case FillRandom:
		return RandomFill(seed, density), nil
	case FillNoise:
		return NoiseFill(seed, 1-density), nil
	case FillSolid:
		return SolidFill, nil
	case FillEmpty:
		return EmptyFill, nil
	case FillShell:
		return ShellFill, nil
	}
	return nil, fmt.Errorf("unknown fill pattern %q (want one of %v)", name, FillNames())
}
