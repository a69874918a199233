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

// Package clip removes the invisible parts of geometry.
//
// All functions clip against an axis-aligned rectangle, normally [Unit],
// the normalised window square.  The boundary is inclusive: a point lying
// exactly on an edge of the rectangle is visible.  The functions never
// modify their arguments.
package clip

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Unit is the normalised window square [-1,1]×[-1,1].
var Unit = rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}

// Outcode describes the position of a point relative to a clip rectangle.
// A zero outcode means the point is inside.
type Outcode uint8

// Outcode bits.
const (
	Left   Outcode = 1
	Right  Outcode = 2
	Bottom Outcode = 4
	Top    Outcode = 8
)

// Code returns the outcode of p with respect to r.
func Code(p vec.Vec2, r rect.Rect) Outcode {
	var c Outcode
	if p.X < r.LLx {
		c |= Left
	} else if p.X > r.URx {
		c |= Right
	}
	if p.Y < r.LLy {
		c |= Bottom
	} else if p.Y > r.URy {
		c |= Top
	}
	return c
}

// PointVisible reports whether p lies inside r or on its boundary.
func PointVisible(p vec.Vec2, r rect.Rect) bool {
	return Code(p, r) == 0
}

// LineFunc clips the segment from a to b against r.  It returns the
// visible part and true, or false if no part is visible.
type LineFunc func(a, b vec.Vec2, r rect.Rect) (vec.Vec2, vec.Vec2, bool)

// CohenSutherland clips the segment from a to b against r using outcodes.
// A segment which only touches the boundary is visible.
func CohenSutherland(a, b vec.Vec2, r rect.Rect) (vec.Vec2, vec.Vec2, bool) {
	ca := Code(a, r)
	cb := Code(b, r)
	// each round moves one end point onto a boundary line and clears at
	// least one bit, so eight rounds always suffice
	for range 8 {
		if ca|cb == 0 {
			return a, b, true
		}
		if ca&cb != 0 {
			return a, b, false
		}

		out := ca
		if out == 0 {
			out = cb
		}

		var p vec.Vec2
		switch {
		case out&Top != 0:
			p = vec.Vec2{X: a.X + (b.X-a.X)*(r.URy-a.Y)/(b.Y-a.Y), Y: r.URy}
		case out&Bottom != 0:
			p = vec.Vec2{X: a.X + (b.X-a.X)*(r.LLy-a.Y)/(b.Y-a.Y), Y: r.LLy}
		case out&Right != 0:
			p = vec.Vec2{X: r.URx, Y: a.Y + (b.Y-a.Y)*(r.URx-a.X)/(b.X-a.X)}
		case out&Left != 0:
			p = vec.Vec2{X: r.LLx, Y: a.Y + (b.Y-a.Y)*(r.LLx-a.X)/(b.X-a.X)}
		}

		if out == ca {
			a = p
			ca = Code(a, r)
		} else {
			b = p
			cb = Code(b, r)
		}
	}
	return a, b, ca|cb == 0
}

// LiangBarsky clips the segment from a to b against r using the
// parametric form of the line.
func LiangBarsky(a, b vec.Vec2, r rect.Rect) (vec.Vec2, vec.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0

	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{a.X - r.LLx, r.URx - a.X, a.Y - r.LLy, r.URy - a.Y}
	for i := range 4 {
		if p[i] == 0 {
			if q[i] < 0 {
				return a, b, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}

	a2, b2 := a, b
	if t0 > 0 {
		a2 = a.Add(d.Mul(t0))
	}
	if t1 < 1 {
		b2 = a.Add(d.Mul(t1))
	}
	return a2, b2, true
}

// Method selects a line clipping algorithm.
type Method int

const (
	// MethodCohenSutherland selects [CohenSutherland].
	MethodCohenSutherland Method = iota

	// MethodLiangBarsky selects [LiangBarsky].
	MethodLiangBarsky
)

// Func returns the clipping function for m.
func (m Method) Func() LineFunc {
	if m == MethodLiangBarsky {
		return LiangBarsky
	}
	return CohenSutherland
}

func (m Method) String() string {
	switch m {
	case MethodCohenSutherland:
		return "cohen-sutherland"
	case MethodLiangBarsky:
		return "liang-barsky"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Method) MarshalText() ([]byte, error) {
	switch m {
	case MethodCohenSutherland, MethodLiangBarsky:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("clip: unknown method %d", int(m))
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *Method) UnmarshalText(text []byte) error {
	switch string(text) {
	case "cohen-sutherland", "cs":
		*m = MethodCohenSutherland
	case "liang-barsky", "lb":
		*m = MethodLiangBarsky
	default:
		return fmt.Errorf("clip: unknown method %q", text)
	}
	return nil
}
