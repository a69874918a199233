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

package transform

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/linalg"
	"seehuhn.de/go/sketch/object"
)

const eps = 1e-9

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func samePoints(t *testing.T, got, want []vec.Vec2) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range got {
		if !near(got[i], want[i]) {
			t.Errorf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func triangle() *object.Object {
	return &object.Object{
		ID:   1,
		Name: "tri",
		Shape: object.Polygon{Vertices: []vec.Vec2{
			{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 1, Y: 5},
		}},
	}
}

func TestTranslate(t *testing.T) {
	o := triangle()
	if err := Apply(o, Translate{DX: -1, DY: 2}); err != nil {
		t.Fatal(err)
	}
	samePoints(t, object.ControlPoints(o.Shape), []vec.Vec2{
		{X: 0, Y: 3}, {X: 3, Y: 3}, {X: 0, Y: 7},
	})
}

func TestTinyScales(t *testing.T) {
	cases := [][]Op{
		{Scale{SX: 1e-4, SY: 1e-4}, Scale{SX: 1e-4, SY: 1e-4}},
		{Scale{SX: 1e-7, SY: 1e-7, Pivot: Origin}},
		{Scale{SX: 1e-6, SY: 2}, Rotate{Deg: 45}, Scale{SX: 1e-6, SY: 1e-6}},
	}
	for i, ops := range cases {
		o := triangle()
		if err := Apply(o, ops...); err != nil {
			t.Errorf("%d: %v", i, err)
		}
	}

	o := &object.Object{Shape: object.Line{B: vec.Vec2{X: 1, Y: 1}}}
	if err := Apply(o, Scale{SX: 1e-5, SY: 1e-5, Pivot: Origin}, Scale{SX: 1e5, SY: 1e5, Pivot: Origin}); err != nil {
		t.Fatal(err)
	}
	samePoints(t, object.ControlPoints(o.Shape), []vec.Vec2{{}, {X: 1, Y: 1}})
}

func TestOverflow(t *testing.T) {
	o := triangle()
	before := object.ControlPoints(o.Shape)
	err := Apply(o, Scale{SX: 1e200, SY: 1e200}, Scale{SX: 1e200, SY: 1e200})
	if !errors.Is(err, ErrInvalidTransform) {
		t.Errorf("got %v, want ErrInvalidTransform", err)
	}
	samePoints(t, object.ControlPoints(o.Shape), before)
}

func TestScaleAboutCenter(t *testing.T) {
	o := &object.Object{Shape: object.Line{A: vec.Vec2{X: 0, Y: 0}, B: vec.Vec2{X: 2, Y: 2}}}
	if err := Apply(o, Scale{SX: 2, SY: 2}); err != nil {
		t.Fatal(err)
	}
	samePoints(t, object.ControlPoints(o.Shape), []vec.Vec2{{X: -1, Y: -1}, {X: 3, Y: 3}})
}

func TestPivots(t *testing.T) {
	p := vec.Vec2{X: 2, Y: 0}
	cases := []struct {
		name string
		op   Op
		want vec.Vec2
	}{
		{"origin", Rotate{Deg: 90, Pivot: Origin}, vec.Vec2{X: 0, Y: 2}},
		{"point", Rotate{Deg: 90, Pivot: About(vec.Vec2{X: 1, Y: 0})}, vec.Vec2{X: 1, Y: 1}},
		{"center", Rotate{Deg: 90}, p},
		{"scale origin", Scale{SX: 3, SY: 1, Pivot: Origin}, vec.Vec2{X: 6, Y: 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := &object.Object{Shape: object.Point{At: p}}
			if err := Apply(o, c.op); err != nil {
				t.Fatal(err)
			}
			if got := o.Shape.(object.Point).At; !near(got, c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

// TestPivotFixed checks that the pivot of a rotation stays in place.
func TestPivotFixed(t *testing.T) {
	pivot := vec.Vec2{X: -3, Y: 7}
	o := &object.Object{Shape: object.Polygon{Vertices: []vec.Vec2{pivot, {X: 0, Y: 0}, {X: 5, Y: 1}}}}
	if err := Apply(o, Rotate{Deg: 123, Pivot: About(pivot)}); err != nil {
		t.Fatal(err)
	}
	if got := o.Shape.(object.Polygon).Vertices[0]; !near(got, pivot) {
		t.Errorf("pivot moved to %v", got)
	}
}

func TestFullRotation(t *testing.T) {
	o := triangle()
	before := object.ControlPoints(o.Shape)
	if err := Apply(o, Rotate{Deg: 360}); err != nil {
		t.Fatal(err)
	}
	samePoints(t, object.ControlPoints(o.Shape), before)

	for range 36 {
		if err := Apply(o, Rotate{Deg: 10, Pivot: About(vec.Vec2{X: 10, Y: -2})}); err != nil {
			t.Fatal(err)
		}
	}
	samePoints(t, object.ControlPoints(o.Shape), before)
}

// TestComposeMatchesSequence checks that one composed application gives
// the same result as applying the operations one at a time.
func TestComposeMatchesSequence(t *testing.T) {
	ops := []Op{
		Translate{DX: 3, DY: -1},
		Rotate{Deg: 30},
		Scale{SX: 2, SY: 0.5},
		Rotate{Deg: -75, Pivot: Origin},
		Scale{SX: -1, SY: 1, Pivot: About(vec.Vec2{X: 1, Y: 1})},
	}

	once := triangle()
	if err := Apply(once, ops...); err != nil {
		t.Fatal(err)
	}
	seq := triangle()
	for _, op := range ops {
		if err := Apply(seq, op); err != nil {
			t.Fatal(err)
		}
	}
	samePoints(t, object.ControlPoints(once.Shape), object.ControlPoints(seq.Shape))
}

func TestInverseRestores(t *testing.T) {
	ops := []Op{
		Scale{SX: 3, SY: -2},
		Rotate{Deg: 47},
		Translate{DX: 10, DY: 20},
		Rotate{Deg: 13, Pivot: About(vec.Vec2{X: 1, Y: 2})},
	}
	o := triangle()
	before := object.ControlPoints(o.Shape)
	inv, err := Inverse(o.Shape, ops...)
	if err != nil {
		t.Fatal(err)
	}
	if err := Apply(o, ops...); err != nil {
		t.Fatal(err)
	}
	if err := Apply(o, inv...); err != nil {
		t.Fatal(err)
	}
	samePoints(t, object.ControlPoints(o.Shape), before)

	// the same via the composed matrix
	M, err := Compose(triangle().Shape, ops...)
	if err != nil {
		t.Fatal(err)
	}
	Minv, err := M.Inv()
	if err != nil {
		t.Fatal(err)
	}
	round := object.Transform(object.Transform(triangle().Shape, M), Minv)
	samePoints(t, object.ControlPoints(round), before)
}

func TestRejectedLeavesObject(t *testing.T) {
	cases := []struct {
		name string
		ops  []Op
		want error
	}{
		{"zero sx", []Op{Scale{SX: 0, SY: 1}}, ErrInvalidScale},
		{"zero sy", []Op{Translate{DX: 1}, Scale{SX: 1, SY: 0}}, ErrInvalidScale},
		{"NaN", []Op{Translate{DX: math.NaN()}}, ErrInvalidTransform},
		{"Inf angle", []Op{Rotate{Deg: math.Inf(1)}}, ErrInvalidTransform},
		{"tiny scale", []Op{Scale{SX: 1e-8, SY: 1e-8}}, ErrInvalidTransform},
		{"nil op", []Op{nil}, ErrInvalidTransform},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := triangle()
			before := object.ControlPoints(o.Shape)
			err := Apply(o, c.ops...)
			if !errors.Is(err, c.want) {
				t.Fatalf("got %v, want %v", err, c.want)
			}
			samePoints(t, object.ControlPoints(o.Shape), before)
		})
	}
}

func TestCurveControlPoints(t *testing.T) {
	ctrl := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 0}}
	o := &object.Object{Shape: object.Curve{Kind: object.Bezier, Control: ctrl}}
	if err := Apply(o, Rotate{Deg: 180}); err != nil {
		t.Fatal(err)
	}
	// a half turn about the centroid (2, 1) maps p to (4, 2) - p
	got := o.Shape.(object.Curve).Control
	for i, p := range ctrl {
		want := vec.Vec2{X: 4 - p.X, Y: 2 - p.Y}
		if !near(got[i], want) {
			t.Errorf("%d: got %v, want %v", i, got[i], want)
		}
	}
}

func wireCube() *object.Object {
	var vs []linalg.Vec3
	for _, z := range []float64{0, 2} {
		vs = append(vs, linalg.Vec3{X: 0, Y: 0, Z: z}, linalg.Vec3{X: 2, Y: 0, Z: z},
			linalg.Vec3{X: 2, Y: 2, Z: z}, linalg.Vec3{X: 0, Y: 2, Z: z})
	}
	return &object.Object{Shape: object.Wireframe{
		Vertices: vs,
		Edges:    [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}},
	}}
}

func TestApply3(t *testing.T) {
	o := wireCube()
	if err := Apply3(o, Rotate3D{AZ: 90}); err != nil {
		t.Fatal(err)
	}
	w := o.Shape.(object.Wireframe)
	// rotating about the centre (1, 1, 1) maps (0, 0, 0) to (2, 0, 0)
	if got := w.Vertices[0]; math.Abs(got.X-2) > eps || math.Abs(got.Y) > eps || math.Abs(got.Z) > eps {
		t.Errorf("got %v", got)
	}

	o = wireCube()
	err := Apply3(o,
		Translate3D{DZ: 5},
		Scale3D{SX: 2, SY: 2, SZ: 2, Pivot: Pivot3{Kind: PivotOrigin}},
		RotateAxis{From: linalg.Vec3{}, To: linalg.Vec3{Z: 1}, Deg: 360},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := o.Shape.(object.Wireframe).Vertices[6]; math.Abs(got.X-4) > eps || math.Abs(got.Y-4) > eps || math.Abs(got.Z-14) > eps {
		t.Errorf("got %v", got)
	}
}

func TestApply3Errors(t *testing.T) {
	if err := Apply3(triangle(), Translate3D{DX: 1}); !errors.Is(err, object.ErrInvalidObject) {
		t.Errorf("polygon: got %v", err)
	}
	o := wireCube()
	before := o.Shape.(object.Wireframe).Vertices[1]
	if err := Apply3(o, Translate3D{DX: 1}, Scale3D{SX: 1, SY: 1, SZ: 0}); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("zero scale: got %v", err)
	}
	if err := Apply3(o, RotateAxis{Deg: 10}); !errors.Is(err, ErrInvalidTransform) {
		t.Errorf("zero axis: got %v", err)
	}
	if got := o.Shape.(object.Wireframe).Vertices[1]; got != before {
		t.Errorf("rejected operation moved vertex to %v", got)
	}
}

// TestWireframe2D checks that 2D operations act on the xy-plane of a
// wireframe and keep z.
func TestWireframe2D(t *testing.T) {
	o := wireCube()
	if err := Apply(o, Translate{DX: 1, DY: 1}); err != nil {
		t.Fatal(err)
	}
	got := o.Shape.(object.Wireframe).Vertices[4]
	if got != (linalg.Vec3{X: 1, Y: 1, Z: 2}) {
		t.Errorf("got %v", got)
	}
}

func BenchmarkCompose(b *testing.B) {
	s := triangle().Shape
	ops := []Op{Translate{DX: 1, DY: 2}, Rotate{Deg: 30}, Scale{SX: 2, SY: 3}}
	for b.Loop() {
		_, _ = Compose(s, ops...)
	}
}
