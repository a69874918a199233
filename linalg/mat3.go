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

// Package linalg implements homogeneous coordinates and affine
// transformation matrices in two and three dimensions.
//
// All matrices act on row vectors: a point p is mapped to p·M.  With this
// convention A.Mul(B) is the transformation which first applies A and then
// B, so that a sequence of transformations T1, T2, ..., Tn is composed as
//
//	T1.Mul(T2)...Mul(Tn)
//
// This is the convention used by PDF and by [seehuhn.de/go/geom/matrix].
// In column-vector notation the same product reads Tn·...·T2·T1.
package linalg

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidTransform indicates a singular or non-finite transformation.
var ErrInvalidTransform = errors.New("linalg: invalid transform")

// singularThreshold is the relative size below which a determinant or a
// pivot is treated as zero.  Determinants are compared to the product of
// the row lengths, which bounds |det| and scales the same way.
const singularThreshold = 1e-12

// Mat3 is a 3×3 matrix acting on homogeneous 2D coordinates (x, y, w).
// The entries are stored in row-major order:
//
//	/ M[0] M[1] M[2] \
//	| M[3] M[4] M[5] |
//	\ M[6] M[7] M[8] /
//
// For an affine map the last column is (0, 0, 1) and the translation
// is stored in M[6] and M[7].
type Mat3 [9]float64

// Identity3 is the 2D identity transformation.
var Identity3 = Mat3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Translate returns the translation by (dx, dy).
func Translate(dx, dy float64) Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		dx, dy, 1,
	}
}

// Scale returns the scaling by sx and sy about the origin.
func Scale(sx, sy float64) Mat3 {
	return Mat3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// RotateDeg returns the counter-clockwise rotation about the origin
// by the given angle in degrees.
func RotateDeg(deg float64) Mat3 {
	s, c := sinCosDeg(deg)
	return Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// RotateAboutDeg returns the counter-clockwise rotation by deg degrees
// about the pivot point p.
func RotateAboutDeg(p vec.Vec2, deg float64) Mat3 {
	return Translate(-p.X, -p.Y).Mul(RotateDeg(deg)).Mul(Translate(p.X, p.Y))
}

// ScaleAbout returns the scaling by sx and sy which keeps the point p fixed.
func ScaleAbout(p vec.Vec2, sx, sy float64) Mat3 {
	return Translate(-p.X, -p.Y).Mul(Scale(sx, sy)).Mul(Translate(p.X, p.Y))
}

// Mul returns the product A·B, i.e. the transformation which first
// applies A and then B.
func (A Mat3) Mul(B Mat3) Mat3 {
	var C Mat3
	for i := range 3 {
		for j := range 3 {
			C[3*i+j] = A[3*i]*B[j] + A[3*i+1]*B[3+j] + A[3*i+2]*B[6+j]
		}
	}
	return C
}

// ApplyH maps the homogeneous coordinate v to v·A without normalising w.
func (A Mat3) ApplyH(v Vec3) Vec3 {
	return Vec3{
		X: v.X*A[0] + v.Y*A[3] + v.Z*A[6],
		Y: v.X*A[1] + v.Y*A[4] + v.Z*A[7],
		Z: v.X*A[2] + v.Y*A[5] + v.Z*A[8],
	}
}

// Apply maps the point p (with w = 1) and returns the result with w
// normalised back to 1.
func (A Mat3) Apply(p vec.Vec2) vec.Vec2 {
	h := A.ApplyH(Vec3{X: p.X, Y: p.Y, Z: 1})
	if h.Z == 1 || h.Z == 0 {
		return vec.Vec2{X: h.X, Y: h.Y}
	}
	return vec.Vec2{X: h.X / h.Z, Y: h.Y / h.Z}
}

// ApplyAll maps every point of ps and returns the results in a new slice.
func (A Mat3) ApplyAll(ps []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(ps))
	for i, p := range ps {
		out[i] = A.Apply(p)
	}
	return out
}

// Det returns the determinant of A.
func (A Mat3) Det() float64 {
	return A[0]*(A[4]*A[8]-A[5]*A[7]) -
		A[1]*(A[3]*A[8]-A[5]*A[6]) +
		A[2]*(A[3]*A[7]-A[4]*A[6])
}

// Inv returns the inverse of A.  If A is singular or contains non-finite
// entries, [ErrInvalidTransform] is returned.
func (A Mat3) Inv() (Mat3, error) {
	if !A.IsFinite() {
		return Mat3{}, ErrInvalidTransform
	}
	det := A.Det()
	bound := math.Hypot(math.Hypot(A[0], A[1]), A[2]) *
		math.Hypot(math.Hypot(A[3], A[4]), A[5]) *
		math.Hypot(math.Hypot(A[6], A[7]), A[8])
	if math.Abs(det) <= singularThreshold*bound || math.IsNaN(det) {
		return Mat3{}, ErrInvalidTransform
	}
	invDet := 1 / det
	return Mat3{
		(A[4]*A[8] - A[5]*A[7]) * invDet,
		(A[2]*A[7] - A[1]*A[8]) * invDet,
		(A[1]*A[5] - A[2]*A[4]) * invDet,

		(A[5]*A[6] - A[3]*A[8]) * invDet,
		(A[0]*A[8] - A[2]*A[6]) * invDet,
		(A[2]*A[3] - A[0]*A[5]) * invDet,

		(A[3]*A[7] - A[4]*A[6]) * invDet,
		(A[1]*A[6] - A[0]*A[7]) * invDet,
		(A[0]*A[4] - A[1]*A[3]) * invDet,
	}, nil
}

// IsFinite reports whether all entries of A are finite.
func (A Mat3) IsFinite() bool {
	for _, x := range A {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether all entries of A and B differ by at most tol.
func (A Mat3) ApproxEqual(B Mat3, tol float64) bool {
	for i := range A {
		if math.Abs(A[i]-B[i]) > tol {
			return false
		}
	}
	return true
}

// Affine converts A to the six-element affine matrix used by the
// seehuhn.de/go/geom and PDF libraries.  The projective column of A is
// ignored.
func (A Mat3) Affine() matrix.Matrix {
	return matrix.Matrix{A[0], A[1], A[3], A[4], A[6], A[7]}
}

// FromAffine converts a six-element affine matrix to a Mat3.
func FromAffine(M matrix.Matrix) Mat3 {
	return Mat3{
		M[0], M[1], 0,
		M[2], M[3], 0,
		M[4], M[5], 1,
	}
}

func sinCosDeg(deg float64) (float64, float64) {
	// exact values for multiples of 90° keep repeated quarter turns clean
	switch math.Mod(deg, 360) {
	case 0:
		return 0, 1
	case 90, -270:
		return 1, 0
	case 180, -180:
		return 0, -1
	case 270, -90:
		return -1, 0
	}
	return math.Sincos(deg * math.Pi / 180)
}
