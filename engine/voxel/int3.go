package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) Sub(other Int3) Int3 {
	return Int3{i.X - other.X, i.Y - other.Y, i.Z - other.Z}
}

func (i Int3) Mul(factor int32) Int3 {
	i.X *= factor
	i.Y *= factor
	i.Z *= factor
	return i
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

func (i Int3) ToString() string {
	return fmt.Sprintf("(%d, %d, %d)", i.X, i.Y, i.Z)
}
