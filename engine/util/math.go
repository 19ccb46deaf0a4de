package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func EucledianDistance3D(one, two mgl32.Vec3) float32 {
	return float32(math.Sqrt(float64((one.X()-two.X())*(one.X()-two.X()) + (one.Y()-two.Y())*(one.Y()-two.Y()) + (one.Z()-two.Z())*(one.Z()-two.Z()))))
}

func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}
