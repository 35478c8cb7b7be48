package common

import (
	"math"
	"math/rand/v2"
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func Lerp64(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize returns the unit vector of (x, y), or zero for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// DirectionTo returns the unit direction from (fx, fy) to (tx, ty) and the
// distance between them.
func DirectionTo(fx, fy, tx, ty float64) (dx, dy, dist float64) {
	dx, dy = tx-fx, ty-fy
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}

// AngleBetween is the angle of the vector from (fx, fy) to (tx, ty).
func AngleBetween(fx, fy, tx, ty float64) float64 {
	return math.Atan2(ty-fy, tx-fx)
}

// RandomInRadius returns a point uniformly distributed in a disc of radius r
// centered on the origin.
func RandomInRadius(rng *rand.Rand, r float64) (float64, float64) {
	t := 2 * math.Pi * rng.Float64()
	d := r * math.Sqrt(rng.Float64())
	return d * math.Cos(t), d * math.Sin(t)
}

// MoveFromDeadzone pushes each axis away from zero by deadzone, keeping its
// sign. Zero is pushed towards positive.
func MoveFromDeadzone(x, y, deadzone float64) (float64, float64) {
	push := func(v float64) float64 {
		if v < 0 {
			return v - deadzone
		}
		return v + deadzone
	}
	return push(x), push(y)
}
