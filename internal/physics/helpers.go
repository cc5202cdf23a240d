package physics

import (
	"golang.org/x/exp/constraints"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clamp restricts a value to a range
func Clamp[T constraints.Float | constraints.Integer](v, min, max T) T {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampVector clamps each component of v to [min, max]
func ClampVector(v, min, max rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: Clamp(v.X, min.X, max.X),
		Y: Clamp(v.Y, min.Y, max.Y),
		Z: Clamp(v.Z, min.Z, max.Z),
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
