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

package object

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/linalg"
)

const eps = 1e-9

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func square() []vec.Vec2 {
	return []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
}

func TestValidate(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name string
		s    Shape
		ok   bool
	}{
		{"point", Point{At: vec.Vec2{X: 1, Y: 2}}, true},
		{"point NaN", Point{At: vec.Vec2{X: nan, Y: 2}}, false},
		{"line", Line{A: vec.Vec2{}, B: vec.Vec2{X: 1}}, true},
		{"zero-length line", Line{}, true},
		{"line Inf", Line{B: vec.Vec2{Y: math.Inf(-1)}}, false},
		{"triangle", Polygon{Vertices: square()[:3]}, true},
		{"two vertices", Polygon{Vertices: square()[:2]}, false},
		{"open two vertices", Polygon{Vertices: square()[:2], Open: true}, false},
		{"bezier 4", Curve{Kind: Bezier, Control: square()}, true},
		{"bezier 5", Curve{Kind: Bezier, Control: append(square(), vec.Vec2{})}, false},
		{"bezier 7", Curve{Kind: Bezier, Control: append(square(), square()[:3]...)}, true},
		{"bezier 3", Curve{Kind: Bezier, Control: square()[:3]}, false},
		{"bspline 5", Curve{Kind: BSpline, Control: append(square(), vec.Vec2{})}, true},
		{"bspline 3", Curve{Kind: BSpline, Control: square()[:3]}, false},
		{"unknown curve", Curve{Kind: 7, Control: square()}, false},
		{"wireframe", Wireframe{Vertices: []linalg.Vec3{{}, {X: 1}}, Edges: [][2]int{{0, 1}}}, true},
		{"wireframe bad edge", Wireframe{Vertices: []linalg.Vec3{{}, {X: 1}}, Edges: [][2]int{{0, 2}}}, false},
		{"empty wireframe", Wireframe{}, false},
		{"nil", nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate(c.s)
			if c.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			} else if !c.ok && !errors.Is(err, ErrInvalidObject) {
				t.Errorf("got %v, want ErrInvalidObject", err)
			}
		})
	}
}

func TestConstructorsCopy(t *testing.T) {
	vs := square()
	p, err := NewPolygon(vs, false, true)
	if err != nil {
		t.Fatal(err)
	}
	vs[0] = vec.Vec2{X: 100, Y: 100}
	if p.Vertices[0] != (vec.Vec2{}) {
		t.Errorf("polygon aliases its input")
	}
	if !p.Filled {
		t.Errorf("closed polygon lost its fill flag")
	}

	open, err := NewPolygon(square(), true, true)
	if err != nil {
		t.Fatal(err)
	}
	if open.Filled {
		t.Errorf("open polygon must not be filled")
	}
}

func TestCentroidAndBounds(t *testing.T) {
	s := Polygon{Vertices: square()}
	if got := Centroid(s); !near(got, vec.Vec2{X: 1, Y: 1}) {
		t.Errorf("centroid: got %v", got)
	}
	want := rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 2}
	if got := Bounds(s); got != want {
		t.Errorf("bounds: got %v, want %v", got, want)
	}
	w := Wireframe{Vertices: []linalg.Vec3{{X: 0, Y: 0, Z: 5}, {X: 4, Y: 2, Z: -5}}}
	if got := Centroid(w); !near(got, vec.Vec2{X: 2, Y: 1}) {
		t.Errorf("wireframe centroid: got %v", got)
	}
	if got := Centroid3(w); got != (linalg.Vec3{X: 2, Y: 1, Z: 0}) {
		t.Errorf("wireframe centroid3: got %v", got)
	}
}

func TestTransformCopies(t *testing.T) {
	orig := Polygon{Vertices: square()}
	moved := Transform(orig, linalg.Translate(1, 1)).(Polygon)
	if orig.Vertices[0] != (vec.Vec2{}) {
		t.Errorf("Transform modified its input")
	}
	if !near(moved.Vertices[2], vec.Vec2{X: 3, Y: 3}) {
		t.Errorf("got %v", moved.Vertices[2])
	}

	w := Wireframe{Vertices: []linalg.Vec3{{X: 1, Y: 0, Z: 3}}}
	rw := Transform(w, linalg.RotateDeg(90)).(Wireframe)
	if got := rw.Vertices[0]; math.Abs(got.X) > eps || math.Abs(got.Y-1) > eps || got.Z != 3 {
		t.Errorf("wireframe: got %v", got)
	}

	if _, err := Transform3(orig, linalg.Identity4); !errors.Is(err, ErrInvalidObject) {
		t.Errorf("Transform3 on polygon: got %v", err)
	}
}

func TestSampleBezier(t *testing.T) {
	c := Curve{
		Kind:    Bezier,
		Control: []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}},
	}
	pts := Sample(c, 10)
	if len(pts) != 11 {
		t.Fatalf("got %d points, want 11", len(pts))
	}
	if !near(pts[0], c.Control[0]) || !near(pts[10], c.Control[3]) {
		t.Errorf("end points: %v, %v", pts[0], pts[10])
	}
	// at t = 1/2 the curve is (P0 + 3P1 + 3P2 + P3)/8
	if want := (vec.Vec2{X: 0.5, Y: 0.75}); !near(pts[5], want) {
		t.Errorf("midpoint: got %v, want %v", pts[5], want)
	}

	two := Curve{Kind: Bezier, Control: append(c.Control, vec.Vec2{X: 1, Y: -1}, vec.Vec2{X: 2, Y: -1}, vec.Vec2{X: 2, Y: 0})}
	pts = Sample(two, 4)
	if len(pts) != 9 {
		t.Fatalf("two spans: got %d points, want 9", len(pts))
	}
	if pts[4] != c.Control[3] {
		t.Errorf("shared end point: got %v", pts[4])
	}
}

func TestSampleBSpline(t *testing.T) {
	ctrl := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}, {X: 3, Y: 1}, {X: 5, Y: 0}}
	c := Curve{Kind: BSpline, Control: ctrl}
	pts := Sample(c, 8)
	if len(pts) != 2*8+1 {
		t.Fatalf("got %d points, want 17", len(pts))
	}

	// direct evaluation of the uniform cubic B-spline
	eval := func(g []vec.Vec2, t float64) vec.Vec2 {
		u := 1 - t
		b0 := u * u * u / 6
		b1 := (3*t*t*t - 6*t*t + 4) / 6
		b2 := (-3*t*t*t + 3*t*t + 3*t + 1) / 6
		b3 := t * t * t / 6
		return g[0].Mul(b0).Add(g[1].Mul(b1)).Add(g[2].Mul(b2)).Add(g[3].Mul(b3))
	}
	for i := 0; i <= 8; i++ {
		want := eval(ctrl[0:4], float64(i)/8)
		if !near(pts[i], want) {
			t.Errorf("span 0, step %d: got %v, want %v", i, pts[i], want)
		}
	}
	for i := 1; i <= 8; i++ {
		want := eval(ctrl[1:5], float64(i)/8)
		if got := pts[8+i]; !near(got, want) {
			t.Errorf("span 1, step %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSampleDegenerate(t *testing.T) {
	if pts := Sample(Curve{Kind: BSpline, Control: square()[:3]}, 10); pts != nil {
		t.Errorf("too few control points: got %v", pts)
	}
	pts := Sample(Curve{Kind: Bezier, Control: square()}, 0)
	if len(pts) != 2 {
		t.Errorf("segments=0: got %d points, want 2", len(pts))
	}
}

func TestCurveKindText(t *testing.T) {
	for _, k := range []CurveKind{Bezier, BSpline} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back CurveKind
		if err := back.UnmarshalText(text); err != nil || back != k {
			t.Errorf("%v: got %v, %v", k, back, err)
		}
	}
	var k CurveKind
	if err := k.UnmarshalText([]byte("nurbs")); err == nil {
		t.Errorf("expected an error for an unknown kind")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(Curve{}); got != "curve" {
		t.Errorf("got %q", got)
	}
	if got := KindOf(nil); got != "unknown" {
		t.Errorf("got %q", got)
	}
}
