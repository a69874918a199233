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

// Package object defines the geometric objects which make up a scene.
//
// A [Shape] is one of [Point], [Line], [Polygon], [Curve] or [Wireframe].
// The set of shapes is closed; code which processes shapes uses a type
// switch over these five types.  All coordinates are world coordinates.
package object

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/linalg"
)

// ErrInvalidObject indicates a malformed shape.
var ErrInvalidObject = errors.New("object: invalid object")

// ID identifies an object within a scene.
type ID uint64

func (id ID) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}

// Object is a named shape stored in a scene.
type Object struct {
	ID    ID
	Name  string
	Shape Shape
}

// Clone returns a deep copy of o.
func (o Object) Clone() Object {
	o.Shape = Clone(o.Shape)
	return o
}

// Shape is the geometry of an object.
type Shape interface {
	isShape()
}

// Point is a single point.
type Point struct {
	At vec.Vec2
}

// Line is the straight line segment from A to B.
type Line struct {
	A, B vec.Vec2
}

// Polygon is a sequence of at least three vertices.  Unless Open is set,
// the last vertex is joined to the first.  Filled only applies to closed
// polygons.
type Polygon struct {
	Vertices []vec.Vec2
	Open     bool
	Filled   bool
}

// Curve is a piecewise cubic curve given by its control points.
type Curve struct {
	Control []vec.Vec2
	Kind    CurveKind
}

// Wireframe is a 3D object made of straight edges between vertices.
// For display, the z coordinate is dropped.
type Wireframe struct {
	Vertices []linalg.Vec3
	Edges    [][2]int
}

func (Point) isShape()     {}
func (Line) isShape()      {}
func (Polygon) isShape()   {}
func (Curve) isShape()     {}
func (Wireframe) isShape() {}

// KindOf returns a short lower-case name for the type of s.
func KindOf(s Shape) string {
	switch s.(type) {
	case Point:
		return "point"
	case Line:
		return "line"
	case Polygon:
		return "polygon"
	case Curve:
		return "curve"
	case Wireframe:
		return "wireframe"
	default:
		return "unknown"
	}
}

// NewPoint returns a point shape at p.
func NewPoint(p vec.Vec2) (Point, error) {
	s := Point{At: p}
	return s, Validate(s)
}

// NewLine returns the line segment from a to b.
func NewLine(a, b vec.Vec2) (Line, error) {
	s := Line{A: a, B: b}
	return s, Validate(s)
}

// NewPolygon returns a polygon through the given vertices.
// The vertex slice is copied.
func NewPolygon(vertices []vec.Vec2, open, filled bool) (Polygon, error) {
	s := Polygon{
		Vertices: append([]vec.Vec2(nil), vertices...),
		Open:     open,
		Filled:   filled && !open,
	}
	return s, Validate(s)
}

// NewCurve returns a curve with the given control points.
// The control point slice is copied.
func NewCurve(kind CurveKind, control []vec.Vec2) (Curve, error) {
	s := Curve{
		Control: append([]vec.Vec2(nil), control...),
		Kind:    kind,
	}
	return s, Validate(s)
}

// NewWireframe returns a wireframe object.  Both slices are copied.
func NewWireframe(vertices []linalg.Vec3, edges [][2]int) (Wireframe, error) {
	s := Wireframe{
		Vertices: append([]linalg.Vec3(nil), vertices...),
		Edges:    append([][2]int(nil), edges...),
	}
	return s, Validate(s)
}

// Validate checks that s is well-formed.  All errors wrap
// [ErrInvalidObject].
func Validate(s Shape) error {
	switch s := s.(type) {
	case Point:
		return checkFinite(s.At)
	case Line:
		return checkFinite(s.A, s.B)
	case Polygon:
		if len(s.Vertices) < 3 {
			return fmt.Errorf("%w: polygon needs at least 3 vertices, got %d",
				ErrInvalidObject, len(s.Vertices))
		}
		return checkFinite(s.Vertices...)
	case Curve:
		n := len(s.Control)
		switch s.Kind {
		case Bezier:
			if n < 4 || (n-1)%3 != 0 {
				return fmt.Errorf("%w: Bezier curve needs 3n+1 control points, got %d",
					ErrInvalidObject, n)
			}
		case BSpline:
			if n < 4 {
				return fmt.Errorf("%w: B-spline needs at least 4 control points, got %d",
					ErrInvalidObject, n)
			}
		default:
			return fmt.Errorf("%w: unknown curve kind %d", ErrInvalidObject, int(s.Kind))
		}
		return checkFinite(s.Control...)
	case Wireframe:
		if len(s.Vertices) == 0 {
			return fmt.Errorf("%w: empty wireframe", ErrInvalidObject)
		}
		for _, v := range s.Vertices {
			if !v.IsFinite() {
				return fmt.Errorf("%w: non-finite vertex %v", ErrInvalidObject, v)
			}
		}
		for _, e := range s.Edges {
			if e[0] < 0 || e[0] >= len(s.Vertices) || e[1] < 0 || e[1] >= len(s.Vertices) {
				return fmt.Errorf("%w: edge %v out of range", ErrInvalidObject, e)
			}
		}
		return nil
	case nil:
		return fmt.Errorf("%w: missing shape", ErrInvalidObject)
	default:
		return fmt.Errorf("%w: unsupported shape %T", ErrInvalidObject, s)
	}
}

func checkFinite(ps ...vec.Vec2) error {
	for _, p := range ps {
		if !linalg.Finite2(p) {
			return fmt.Errorf("%w: non-finite coordinate %v", ErrInvalidObject, p)
		}
	}
	return nil
}

// ControlPoints returns a copy of the points which define s.  For a
// wireframe these are the vertices projected onto the xy-plane.
func ControlPoints(s Shape) []vec.Vec2 {
	switch s := s.(type) {
	case Point:
		return []vec.Vec2{s.At}
	case Line:
		return []vec.Vec2{s.A, s.B}
	case Polygon:
		return append([]vec.Vec2(nil), s.Vertices...)
	case Curve:
		return append([]vec.Vec2(nil), s.Control...)
	case Wireframe:
		res := make([]vec.Vec2, len(s.Vertices))
		for i, v := range s.Vertices {
			res[i] = v.XY()
		}
		return res
	}
	return nil
}

// Centroid returns the arithmetic mean of the control points of s.
func Centroid(s Shape) vec.Vec2 {
	ps := ControlPoints(s)
	if len(ps) == 0 {
		return vec.Vec2{}
	}
	var sum vec.Vec2
	for _, p := range ps {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(ps)))
}

// Centroid3 returns the mean of the vertices of a wireframe.
func Centroid3(w Wireframe) linalg.Vec3 {
	if len(w.Vertices) == 0 {
		return linalg.Vec3{}
	}
	var sum linalg.Vec3
	for _, v := range w.Vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1 / float64(len(w.Vertices)))
}

// Bounds returns the bounding box of the control points of s.
// Since Bezier and B-spline curves lie inside the convex hull of their
// control points, the result contains the whole shape.
func Bounds(s Shape) rect.Rect {
	ps := ControlPoints(s)
	if len(ps) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: ps[0].X, LLy: ps[0].Y, URx: ps[0].X, URy: ps[0].Y}
	for _, p := range ps[1:] {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}

// Clone returns a deep copy of s.
func Clone(s Shape) Shape {
	switch s := s.(type) {
	case Polygon:
		s.Vertices = append([]vec.Vec2(nil), s.Vertices...)
		return s
	case Curve:
		s.Control = append([]vec.Vec2(nil), s.Control...)
		return s
	case Wireframe:
		s.Vertices = append([]linalg.Vec3(nil), s.Vertices...)
		s.Edges = append([][2]int(nil), s.Edges...)
		return s
	}
	return s
}

// Transform returns a copy of s with the 2D transformation M applied to
// every control point.  Wireframes are transformed in their xy-plane.
func Transform(s Shape, M linalg.Mat3) Shape {
	switch s := s.(type) {
	case Point:
		return Point{At: M.Apply(s.At)}
	case Line:
		return Line{A: M.Apply(s.A), B: M.Apply(s.B)}
	case Polygon:
		s.Vertices = M.ApplyAll(s.Vertices)
		return s
	case Curve:
		s.Control = M.ApplyAll(s.Control)
		return s
	case Wireframe:
		return transformWireframe(s, linalg.Lift(M))
	}
	return s
}

// Transform3 returns a copy of the wireframe s with the 3D transformation
// M applied to every vertex.  Other shapes are rejected.
func Transform3(s Shape, M linalg.Mat4) (Shape, error) {
	w, ok := s.(Wireframe)
	if !ok {
		return nil, fmt.Errorf("%w: 3D transformation of a %s", ErrInvalidObject, KindOf(s))
	}
	return transformWireframe(w, M), nil
}

func transformWireframe(w Wireframe, M linalg.Mat4) Wireframe {
	vs := make([]linalg.Vec3, len(w.Vertices))
	for i, v := range w.Vertices {
		vs[i] = M.Apply(v)
	}
	return Wireframe{
		Vertices: vs,
		Edges:    append([][2]int(nil), w.Edges...),
	}
}
