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
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/linalg"
)

// CurveKind selects the basis used to interpret the control points of a
// [Curve].
type CurveKind int

const (
	// Bezier curves consist of cubic segments sharing end points.  They
	// need 3n+1 control points for n segments.
	Bezier CurveKind = iota

	// BSpline curves are uniform cubic B-splines.  They need at least four
	// control points; n control points give n-3 spans.
	BSpline
)

func (k CurveKind) String() string {
	switch k {
	case Bezier:
		return "bezier"
	case BSpline:
		return "bspline"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (k CurveKind) MarshalText() ([]byte, error) {
	switch k {
	case Bezier, BSpline:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("object: unknown curve kind %d", int(k))
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (k *CurveKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "bezier":
		*k = Bezier
	case "bspline", "b-spline":
		*k = BSpline
	default:
		return fmt.Errorf("object: unknown curve kind %q", text)
	}
	return nil
}

// Coefficient matrices of the cubic basis functions.  Multiplying a
// geometry vector (P0, P1, P2, P3) by one of these gives the polynomial
// coefficients for t³, t², t and 1.
var (
	bezierBasis = linalg.Mat4{
		-1, 3, -3, 1,
		3, -6, 3, 0,
		-3, 3, 0, 0,
		1, 0, 0, 0,
	}
	bsplineBasis = linalg.Mat4{
		-1.0 / 6, 3.0 / 6, -3.0 / 6, 1.0 / 6,
		3.0 / 6, -6.0 / 6, 3.0 / 6, 0,
		-3.0 / 6, 0, 3.0 / 6, 0,
		1.0 / 6, 4.0 / 6, 1.0 / 6, 0,
	}
)

// coefficients returns B·G for the basis B and the four points G.
func coefficients(B linalg.Mat4, g []vec.Vec2) [4]vec.Vec2 {
	var c [4]vec.Vec2
	for i := range 4 {
		for j := range 4 {
			c[i] = c[i].Add(g[j].Mul(B[4*i+j]))
		}
	}
	return c
}

// Spans returns the number of cubic pieces of c.
func (c Curve) Spans() int {
	n := len(c.Control)
	switch c.Kind {
	case Bezier:
		if n < 4 {
			return 0
		}
		return (n - 1) / 3
	case BSpline:
		return max(n-3, 0)
	}
	return 0
}

// Sample approximates c by a polyline.  Every span of the curve is
// divided into the given number of segments; values smaller than 1 are
// treated as 1.  The result has Spans()·segments + 1 points, and is nil
// if c has no complete span.
func Sample(c Curve, segments int) []vec.Vec2 {
	segments = max(segments, 1)
	spans := c.Spans()
	if spans == 0 {
		return nil
	}

	res := make([]vec.Vec2, 0, spans*segments+1)
	switch c.Kind {
	case Bezier:
		for k := range spans {
			co := coefficients(bezierBasis, c.Control[3*k:3*k+4])
			start := 1
			if k == 0 {
				start = 0
			}
			for i := start; i <= segments; i++ {
				t := float64(i) / float64(segments)
				if i == segments {
					// land exactly on the shared end point
					res = append(res, c.Control[3*k+3])
					continue
				}
				p := co[3].Add(co[2].Mul(t)).Add(co[1].Mul(t * t)).Add(co[0].Mul(t * t * t))
				res = append(res, p)
			}
		}
	case BSpline:
		for k := range spans {
			co := coefficients(bsplineBasis, c.Control[k:k+4])
			pts := forwardDifferences(co, segments)
			if k > 0 {
				pts = pts[1:]
			}
			res = append(res, pts...)
		}
	}
	return res
}

// forwardDifferences evaluates the cubic polynomial with coefficients co
// at n+1 equally spaced parameter values in [0, 1], using only additions
// inside the loop.
func forwardDifferences(co [4]vec.Vec2, n int) []vec.Vec2 {
	d := 1 / float64(n)
	d2 := d * d
	d3 := d2 * d

	f := co[3]
	df := co[0].Mul(d3).Add(co[1].Mul(d2)).Add(co[2].Mul(d))
	d2f := co[0].Mul(6 * d3).Add(co[1].Mul(2 * d2))
	d3f := co[0].Mul(6 * d3)

	res := make([]vec.Vec2, 0, n+1)
	res = append(res, f)
	for range n {
		f = f.Add(df)
		df = df.Add(d2f)
		d2f = d2f.Add(d3f)
		res = append(res, f)
	}
	return res
}
