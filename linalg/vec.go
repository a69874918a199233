// seehuhn.de/go/sketch - a 2D scene transformation and clipping library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package linalg

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Vec3 is a vector with three components.  It is used both for points in
// 3D space and for homogeneous 2D coordinates (x, y, w), in which case Z
// holds the weight.
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a homogeneous 3D coordinate.
type Vec4 struct {
	X, Y, Z, W float64
}

// Homogeneous returns the homogeneous coordinate (p.X, p.Y, 1).
func Homogeneous(p vec.Vec2) Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: 1}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Mul returns the scalar multiple a·v.
func (v Vec3) Mul(a float64) Vec3 {
	return Vec3{a * v.X, a * v.Y, a * v.Z}
}

// Dot returns the scalar product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// XY drops the third component.
func (v Vec3) XY() vec.Vec2 {
	return vec.Vec2{X: v.X, Y: v.Y}
}

// Dehomogenize interprets v as a homogeneous 2D coordinate and divides by
// the weight.  A zero weight is treated as 1.
func (v Vec3) Dehomogenize() vec.Vec2 {
	if v.Z == 0 || v.Z == 1 {
		return vec.Vec2{X: v.X, Y: v.Y}
	}
	return vec.Vec2{X: v.X / v.Z, Y: v.Y / v.Z}
}

// IsFinite reports whether all components of v are finite.
func (v Vec3) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

// Finite2 reports whether both coordinates of p are finite.
func Finite2(p vec.Vec2) bool {
	return finite(p.X) && finite(p.Y)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
