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

import "math"

// Mat4 is a 4×4 matrix acting on homogeneous 3D coordinates, stored in
// row-major order.  Like [Mat3] it acts on row vectors, and the
// translation part lives in the last row (entries 12, 13 and 14).
type Mat4 [16]float64

// Identity4 is the 3D identity transformation.
var Identity4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Translate3 returns the translation by (dx, dy, dz).
func Translate3(dx, dy, dz float64) Mat4 {
	M := Identity4
	M[12], M[13], M[14] = dx, dy, dz
	return M
}

// Scale3 returns the scaling by sx, sy and sz about the origin.
func Scale3(sx, sy, sz float64) Mat4 {
	M := Identity4
	M[0], M[5], M[10] = sx, sy, sz
	return M
}

// RotateXDeg returns the rotation by deg degrees about the x-axis.
// Positive angles rotate y towards z.
func RotateXDeg(deg float64) Mat4 {
	s, c := sinCosDeg(deg)
	M := Identity4
	M[5], M[6] = c, s
	M[9], M[10] = -s, c
	return M
}

// RotateYDeg returns the rotation by deg degrees about the y-axis.
// Positive angles rotate z towards x.
func RotateYDeg(deg float64) Mat4 {
	s, c := sinCosDeg(deg)
	M := Identity4
	M[0], M[2] = c, -s
	M[8], M[10] = s, c
	return M
}

// RotateZDeg returns the rotation by deg degrees about the z-axis.
// Positive angles rotate x towards y.  On the plane z = 0 this agrees
// with [RotateDeg].
func RotateZDeg(deg float64) Mat4 {
	s, c := sinCosDeg(deg)
	M := Identity4
	M[0], M[1] = c, s
	M[4], M[5] = -s, c
	return M
}

// RotateAxisDeg returns the rotation by deg degrees about the line through
// a and b.  Looking from b towards a, positive angles are counter-clockwise.
// If a and b coincide, [ErrInvalidTransform] is returned.
func RotateAxisDeg(a, b Vec3, deg float64) (Mat4, error) {
	d := b.Sub(a)
	l := d.Length()
	if l <= singularThreshold || !finite(l) || !finite(deg) {
		return Mat4{}, ErrInvalidTransform
	}
	u := d.Mul(1 / l)
	s, c := sinCosDeg(deg)
	t := 1 - c

	// Rodrigues' formula, transposed for row vectors
	R := Mat4{
		c + t*u.X*u.X, t*u.X*u.Y + s*u.Z, t*u.X*u.Z - s*u.Y, 0,
		t*u.X*u.Y - s*u.Z, c + t*u.Y*u.Y, t*u.Y*u.Z + s*u.X, 0,
		t*u.X*u.Z + s*u.Y, t*u.Y*u.Z - s*u.X, c + t*u.Z*u.Z, 0,
		0, 0, 0, 1,
	}
	return Translate3(-a.X, -a.Y, -a.Z).Mul(R).Mul(Translate3(a.X, a.Y, a.Z)), nil
}

// Lift embeds the 2D transformation A into 3D space.  The result acts on
// x and y as A does and leaves z unchanged.
func Lift(A Mat3) Mat4 {
	return Mat4{
		A[0], A[1], 0, A[2],
		A[3], A[4], 0, A[5],
		0, 0, 1, 0,
		A[6], A[7], 0, A[8],
	}
}

// Mul returns the product A·B, i.e. the transformation which first
// applies A and then B.
func (A Mat4) Mul(B Mat4) Mat4 {
	var C Mat4
	for i := range 4 {
		for j := range 4 {
			var sum float64
			for k := range 4 {
				sum += A[4*i+k] * B[4*k+j]
			}
			C[4*i+j] = sum
		}
	}
	return C
}

// ApplyH maps the homogeneous coordinate v to v·A.
func (A Mat4) ApplyH(v Vec4) Vec4 {
	return Vec4{
		X: v.X*A[0] + v.Y*A[4] + v.Z*A[8] + v.W*A[12],
		Y: v.X*A[1] + v.Y*A[5] + v.Z*A[9] + v.W*A[13],
		Z: v.X*A[2] + v.Y*A[6] + v.Z*A[10] + v.W*A[14],
		W: v.X*A[3] + v.Y*A[7] + v.Z*A[11] + v.W*A[15],
	}
}

// Apply maps the point p and normalises the result.
func (A Mat4) Apply(p Vec3) Vec3 {
	h := A.ApplyH(Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	if h.W == 1 || h.W == 0 {
		return Vec3{h.X, h.Y, h.Z}
	}
	return Vec3{h.X / h.W, h.Y / h.W, h.Z / h.W}
}

// Row returns row i of A.
func (A Mat4) Row(i int) Vec4 {
	return Vec4{A[4*i], A[4*i+1], A[4*i+2], A[4*i+3]}
}

// Transpose returns the transpose of A.
func (A Mat4) Transpose() Mat4 {
	var T Mat4
	for i := range 4 {
		for j := range 4 {
			T[4*j+i] = A[4*i+j]
		}
	}
	return T
}

// Inv returns the inverse of A, computed by Gauss-Jordan elimination with
// partial pivoting.
func (A Mat4) Inv() (Mat4, error) {
	if !A.IsFinite() {
		return Mat4{}, ErrInvalidTransform
	}

	// Rows are scaled to unit maximum, so that the pivot test is
	// independent of the scale of A.  Starting R with the same scaling
	// makes the result the inverse of A itself.
	M := A
	var R Mat4
	for row := range 4 {
		s := 0.0
		for k := range 4 {
			s = max(s, math.Abs(M[4*row+k]))
		}
		if s == 0 {
			return Mat4{}, ErrInvalidTransform
		}
		for k := range 4 {
			M[4*row+k] /= s
		}
		R[4*row+row] = 1 / s
	}
	for col := range 4 {
		pivot := col
		for row := col + 1; row < 4; row++ {
			if math.Abs(M[4*row+col]) > math.Abs(M[4*pivot+col]) {
				pivot = row
			}
		}
		if math.Abs(M[4*pivot+col]) <= singularThreshold {
			return Mat4{}, ErrInvalidTransform
		}
		if pivot != col {
			for k := range 4 {
				M[4*col+k], M[4*pivot+k] = M[4*pivot+k], M[4*col+k]
				R[4*col+k], R[4*pivot+k] = R[4*pivot+k], R[4*col+k]
			}
		}

		f := 1 / M[4*col+col]
		for k := range 4 {
			M[4*col+k] *= f
			R[4*col+k] *= f
		}
		for row := range 4 {
			if row == col {
				continue
			}
			g := M[4*row+col]
			if g == 0 {
				continue
			}
			for k := range 4 {
				M[4*row+k] -= g * M[4*col+k]
				R[4*row+k] -= g * R[4*col+k]
			}
		}
	}
	return R, nil
}

// IsFinite reports whether all entries of A are finite.
func (A Mat4) IsFinite() bool {
	for _, x := range A {
		if !finite(x) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether all entries of A and B differ by at most tol.
func (A Mat4) ApproxEqual(B Mat4, tol float64) bool {
	for i := range A {
		if math.Abs(A[i]-B[i]) > tol {
			return false
		}
	}
	return true
}
