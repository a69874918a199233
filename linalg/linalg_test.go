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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

const eps = 1e-9

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func near3(a, b Vec3) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func TestBasicMaps(t *testing.T) {
	cases := []struct {
		name string
		M    Mat3
		in   vec.Vec2
		want vec.Vec2
	}{
		{"identity", Identity3, vec.Vec2{X: 3, Y: -4}, vec.Vec2{X: 3, Y: -4}},
		{"translate", Translate(2, 3), vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 3, Y: 4}},
		{"scale", Scale(2, -1), vec.Vec2{X: 1, Y: 5}, vec.Vec2{X: 2, Y: -5}},
		{"rotate90", RotateDeg(90), vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 1}},
		{"rotate-90", RotateDeg(-90), vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: -1}},
		{"rotate45", RotateDeg(45), vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 0, Y: math.Sqrt2}},
		{"rotateAbout", RotateAboutDeg(vec.Vec2{X: 1, Y: 1}, 180), vec.Vec2{X: 2, Y: 1}, vec.Vec2{X: 0, Y: 1}},
		{"scaleAbout", ScaleAbout(vec.Vec2{X: 1, Y: 1}, 2, 3), vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 3, Y: 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.M.Apply(c.in)
			if !near(got, c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

// TestComposeOrder checks that A.Mul(B) applies A first.
func TestComposeOrder(t *testing.T) {
	p := vec.Vec2{X: 1, Y: 0}

	got := Translate(1, 0).Mul(Scale(2, 2)).Apply(p)
	if want := (vec.Vec2{X: 4, Y: 0}); !near(got, want) {
		t.Errorf("translate then scale: got %v, want %v", got, want)
	}

	got = Scale(2, 2).Mul(Translate(1, 0)).Apply(p)
	if want := (vec.Vec2{X: 3, Y: 0}); !near(got, want) {
		t.Errorf("scale then translate: got %v, want %v", got, want)
	}
}

func TestMulAssociative(t *testing.T) {
	A := RotateDeg(30).Mul(Translate(1, 2))
	B := Scale(2, 0.5)
	C := RotateAboutDeg(vec.Vec2{X: -3, Y: 4}, 77)
	left := A.Mul(B).Mul(C)
	right := A.Mul(B.Mul(C))
	if !left.ApproxEqual(right, eps) {
		t.Errorf("(AB)C = %v, A(BC) = %v", left, right)
	}
}

func TestFullTurn(t *testing.T) {
	M := Identity3
	for range 4 {
		M = M.Mul(RotateDeg(90))
	}
	if M != Identity3 {
		t.Errorf("four quarter turns: got %v", M)
	}

	M = Identity3
	for range 12 {
		M = M.Mul(RotateDeg(30))
	}
	if !M.ApproxEqual(Identity3, eps) {
		t.Errorf("twelve 30° turns: got %v", M)
	}
}

func TestInverse(t *testing.T) {
	mats := []Mat3{
		Identity3,
		Translate(5, -7),
		Scale(3, 0.25),
		RotateAboutDeg(vec.Vec2{X: 2, Y: 1}, 33),
		ScaleAbout(vec.Vec2{X: -1, Y: 4}, -2, 5).Mul(Translate(0.5, 0.5)),
	}
	for i, M := range mats {
		inv, err := M.Inv()
		if err != nil {
			t.Fatalf("%d: unexpected error %v", i, err)
		}
		if P := M.Mul(inv); !P.ApproxEqual(Identity3, eps) {
			t.Errorf("%d: M·M⁻¹ = %v", i, P)
		}
	}
}

func TestInverseScaleInvariant(t *testing.T) {
	for _, s := range []float64{1e-7, 1e-20, 1e9, 1e20} {
		M := Scale(s, s).Mul(RotateDeg(30)).Mul(Translate(3, -2))
		inv, err := M.Inv()
		if err != nil {
			t.Fatalf("scale %g: %v", s, err)
		}
		if P := inv.Mul(M); !P.ApproxEqual(Identity3, eps) {
			t.Errorf("scale %g: M⁻¹·M = %v", s, P)
		}

		M4 := Scale3(s, s, s).Mul(Translate3(1, 2, 3))
		inv4, err := M4.Inv()
		if err != nil {
			t.Fatalf("3D scale %g: %v", s, err)
		}
		if P := inv4.Mul(M4); !P.ApproxEqual(Identity4, eps) {
			t.Errorf("3D scale %g: M⁻¹·M = %v", s, P)
		}
	}
}

func TestInverseSingular(t *testing.T) {
	bad := []Mat3{
		Scale(0, 1),
		{1, 2, 0, 2, 4, 0, 0, 0, 1},
		{1e-9, 2e-9, 0, 2e-9, 4e-9, 0, 5, 5, 1},
		{math.NaN(), 0, 0, 0, 1, 0, 0, 0, 1},
		{math.Inf(1), 0, 0, 0, 1, 0, 0, 0, 1},
	}
	for i, M := range bad {
		if _, err := M.Inv(); !errors.Is(err, ErrInvalidTransform) {
			t.Errorf("%d: got %v, want ErrInvalidTransform", i, err)
		}
	}
}

// TestAffine checks that Affine produces a matrix which maps points the
// same way under the PDF convention x' = a x + c y + e, y' = b x + d y + f.
func TestAffine(t *testing.T) {
	M := RotateAboutDeg(vec.Vec2{X: 1, Y: 2}, 21).Mul(Scale(2, 3)).Mul(Translate(-4, 5))
	A := M.Affine()
	for _, p := range []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -3, Y: 7}} {
		want := M.Apply(p)
		got := vec.Vec2{
			X: A[0]*p.X + A[2]*p.Y + A[4],
			Y: A[1]*p.X + A[3]*p.Y + A[5],
		}
		if !near(got, want) {
			t.Errorf("%v: got %v, want %v", p, got, want)
		}
	}

	if back := FromAffine(A); !back.ApproxEqual(M, eps) {
		t.Errorf("FromAffine(Affine(M)) = %v, want %v", back, M)
	}
	if got := FromAffine(matrix.Identity); got != Identity3 {
		t.Errorf("FromAffine(Identity) = %v", got)
	}
}

func TestApplyHomogeneous(t *testing.T) {
	// a projective matrix: w' = x + 1
	M := Mat3{
		1, 0, 1,
		0, 1, 0,
		0, 0, 1,
	}
	got := M.Apply(vec.Vec2{X: 1, Y: 4})
	if want := (vec.Vec2{X: 0.5, Y: 2}); !near(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	h := M.ApplyH(Homogeneous(vec.Vec2{X: 1, Y: 4}))
	if h.Z != 2 {
		t.Errorf("weight: got %g, want 2", h.Z)
	}
	if got := h.Dehomogenize(); !near(got, vec.Vec2{X: 0.5, Y: 2}) {
		t.Errorf("Dehomogenize: got %v", got)
	}
}

func TestRotate3(t *testing.T) {
	cases := []struct {
		name string
		M    Mat4
		in   Vec3
		want Vec3
	}{
		{"x", RotateXDeg(90), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y", RotateYDeg(90), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"z", RotateZDeg(90), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"translate", Translate3(1, 2, 3), Vec3{1, 1, 1}, Vec3{2, 3, 4}},
		{"scale", Scale3(2, 3, 4), Vec3{1, 1, 1}, Vec3{2, 3, 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.M.Apply(c.in); !near3(got, c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestRotateAxis(t *testing.T) {
	// about the z-axis this must agree with RotateZDeg
	M, err := RotateAxisDeg(Vec3{}, Vec3{0, 0, 1}, 37)
	if err != nil {
		t.Fatal(err)
	}
	if !M.ApproxEqual(RotateZDeg(37), eps) {
		t.Errorf("z-axis: got %v", M)
	}

	// an oblique axis through (1, 2, 3)
	a := Vec3{1, 2, 3}
	b := Vec3{2, 4, 5}
	M, err = RotateAxisDeg(a, b, 71)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Vec3{a, b, a.Add(b.Sub(a).Mul(2.5))} {
		if got := M.Apply(p); !near3(got, p) {
			t.Errorf("point %v on the axis moved to %v", p, got)
		}
	}
	u := b.Sub(a).Mul(1 / b.Sub(a).Length())
	p := Vec3{-1, 0, 7}
	q := M.Apply(p)
	dist := func(x Vec3) float64 {
		d := x.Sub(a)
		return d.Sub(u.Mul(d.Dot(u))).Length()
	}
	if math.Abs(dist(p)-dist(q)) > eps {
		t.Errorf("distance to axis changed: %g -> %g", dist(p), dist(q))
	}

	full := Identity4
	for range 4 {
		full = full.Mul(func() Mat4 { R, _ := RotateAxisDeg(a, b, 90); return R }())
	}
	if !full.ApproxEqual(Identity4, eps) {
		t.Errorf("four quarter turns: got %v", full)
	}

	if _, err := RotateAxisDeg(a, a, 10); !errors.Is(err, ErrInvalidTransform) {
		t.Errorf("degenerate axis: got %v", err)
	}
}

func TestInverse4(t *testing.T) {
	R, _ := RotateAxisDeg(Vec3{1, 0, 0}, Vec3{0, 1, 1}, 25)
	M := R.Mul(Scale3(2, 3, 0.5)).Mul(Translate3(4, -1, 2))
	inv, err := M.Inv()
	if err != nil {
		t.Fatal(err)
	}
	if P := M.Mul(inv); !P.ApproxEqual(Identity4, eps) {
		t.Errorf("M·M⁻¹ = %v", P)
	}
	if _, err := Scale3(1, 0, 1).Inv(); !errors.Is(err, ErrInvalidTransform) {
		t.Errorf("singular: got %v", err)
	}
	if T := M.Transpose().Transpose(); T != M {
		t.Errorf("double transpose changed the matrix")
	}
}

func TestLift(t *testing.T) {
	A := RotateAboutDeg(vec.Vec2{X: 3, Y: -1}, 50).Mul(Scale(2, 2))
	L := Lift(A)
	for _, p := range []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: -5, Y: 3}} {
		want := A.Apply(p)
		got := L.Apply(Vec3{p.X, p.Y, 7})
		if !near(got.XY(), want) || math.Abs(got.Z-7) > eps {
			t.Errorf("%v: got %v, want %v with z=7", p, got, want)
		}
	}
}

func BenchmarkMul(b *testing.B) {
	A := RotateAboutDeg(vec.Vec2{X: 1, Y: 2}, 13)
	B := ScaleAbout(vec.Vec2{X: -1, Y: 0}, 2, 3)
	for b.Loop() {
		_ = A.Mul(B)
	}
}
