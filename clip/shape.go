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

package clip

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/display"
	"seehuhn.de/go/sketch/object"
)

// DefaultCurveSegments is the number of line segments per curve span used
// when Options.CurveSegments is not set.
const DefaultCurveSegments = 20

// Options control how [Shape] clips an object.
type Options struct {
	// Bounds is the clip rectangle.  The zero value selects [Unit].
	Bounds rect.Rect

	// CurveSegments is the number of line segments used to approximate
	// each span of a curve.  Zero selects [DefaultCurveSegments].
	CurveSegments int

	// Line is the algorithm used for lines, polylines and curves.
	Line Method
}

func (o Options) bounds() rect.Rect {
	if o.Bounds == (rect.Rect{}) {
		return Unit
	}
	return o.Bounds
}

// Shape clips s and returns its visible parts.  The shape must already be
// given in the coordinate system of the clip rectangle.  An invisible
// shape gives an empty result.
//
// Curves are approximated by polylines before clipping.  Since the curve
// bases are affinely invariant, sampling after the shape was mapped into
// clip coordinates gives the same points as sampling in world space.
func Shape(s object.Shape, opts Options) []display.Primitive {
	r := opts.bounds()
	line := opts.Line.Func()

	switch s := s.(type) {
	case object.Point:
		if PointVisible(s.At, r) {
			return []display.Primitive{{Kind: display.Point, Points: []vec.Vec2{s.At}}}
		}
	case object.Line:
		if a, b, ok := line(s.A, s.B, r); ok {
			return []display.Primitive{{Kind: display.Segment, Points: []vec.Vec2{a, b}}}
		}
	case object.Polygon:
		if s.Open {
			return runs(Polyline(s.Vertices, r, line))
		}
		if vs := Polygon(s.Vertices, r); vs != nil {
			return []display.Primitive{{Kind: display.ClosedPolygon, Points: vs, Filled: s.Filled}}
		}
	case object.Curve:
		segments := opts.CurveSegments
		if segments <= 0 {
			segments = DefaultCurveSegments
		}
		return runs(Polyline(object.Sample(s, segments), r, line))
	case object.Wireframe:
		var res []display.Primitive
		for _, e := range s.Edges {
			a, b, ok := line(s.Vertices[e[0]].XY(), s.Vertices[e[1]].XY(), r)
			if ok {
				res = append(res, display.Primitive{Kind: display.Segment, Points: []vec.Vec2{a, b}})
			}
		}
		return res
	}
	return nil
}

func runs(rs [][]vec.Vec2) []display.Primitive {
	if len(rs) == 0 {
		return nil
	}
	res := make([]display.Primitive, len(rs))
	for i, r := range rs {
		res[i] = display.Primitive{Kind: display.Polyline, Points: r}
	}
	return res
}
