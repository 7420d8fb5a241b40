package world

import "math"

// Deterministic 3D value noise over an integer lattice, used by NoiseFill.

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash3 is a SplitMix64-style hash, stable across runs for the same inputs.
// Each axis gets its own odd multiplier so axes are not interchangeable.
func hash3(x, y, z int64, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// latticeValue maps a lattice point to [0,1].
func latticeValue(x, y, z int64, seed int64) float64 {
	return float64(hash3(x, y, z, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise3D(x, y, z float64, seed int64) float64 {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	ix, iy, iz := int64(x0), int64(y0), int64(z0)

	fx := fade(x - x0)
	fy := fade(y - y0)
	fz := fade(z - z0)

	corner := func(dx, dy, dz int64) float64 {
		return latticeValue(ix+dx, iy+dy, iz+dz, seed)
	}

	// trilinear: x, then y, then z
	i00 := lerp(corner(0, 0, 0), corner(1, 0, 0), fx)
	i10 := lerp(corner(0, 1, 0), corner(1, 1, 0), fx)
	i01 := lerp(corner(0, 0, 1), corner(1, 0, 1), fx)
	i11 := lerp(corner(0, 1, 1), corner(1, 1, 1), fx)

	return lerp(lerp(i00, i10, fy), lerp(i01, i11, fy), fz)
}

// octaveNoise3D sums octaves of value noise, normalised to [0,1].
func octaveNoise3D(x, y, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise3D(x*frequency, y*frequency, z*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
