package common

import "math"

// Vec3 is a world-space position. Grids lie on the XZ plane; Y is carried
// through from the grid center.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func Distance(a, b Vec3) float64 {
	return b.Sub(a).Length()
}

// MoveTowards moves current in a straight line towards target without
// overshooting it.
func MoveTowards(current, target Vec3, maxDelta float64) Vec3 {
	delta := target.Sub(current)
	dist := delta.Length()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(delta.Scale(maxDelta / dist))
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RoundToInt rounds half to even.
func RoundToInt(v float64) int {
	return int(math.RoundToEven(v))
}

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
