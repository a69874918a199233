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

// Package display defines the display list, the visible device-space
// geometry of one frame.
//
// A display list is all a renderer ever sees: it never receives world
// coordinates or unclipped geometry.
package display

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/object"
)

// Kind is the type of a display primitive.
type Kind int

const (
	// Point is a single dot.  Points has length 1.
	Point Kind = iota

	// Segment is a straight line.  Points has length 2.
	Segment

	// Polyline is an open chain of line segments.  Points has length 2
	// or more.
	Polyline

	// ClosedPolygon is a closed outline, optionally filled.  Points has
	// length 3 or more; the last point is joined to the first.
	ClosedPolygon
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Segment:
		return "segment"
	case Polyline:
		return "polyline"
	case ClosedPolygon:
		return "polygon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Primitive is one visible piece of an object.
type Primitive struct {
	Kind   Kind
	Points []vec.Vec2
	Filled bool
}

// Path converts p to a path.  Points become an empty subpath consisting
// of a single move-to, which renderers draw as a dot.
func (p Primitive) Path() *path.Data {
	res := &path.Data{}
	if len(p.Points) == 0 {
		return res
	}
	res = res.MoveTo(p.Points[0])
	for _, q := range p.Points[1:] {
		res = res.LineTo(q)
	}
	if p.Kind == ClosedPolygon {
		res = res.Close()
	}
	return res
}

// Map returns a copy of p with f applied to every point.
func (p Primitive) Map(f func(vec.Vec2) vec.Vec2) Primitive {
	pts := make([]vec.Vec2, len(p.Points))
	for i, q := range p.Points {
		pts[i] = f(q)
	}
	p.Points = pts
	return p
}

// Item holds the visible primitives of one object.
type Item struct {
	ID         object.ID
	Name       string
	Primitives []Primitive
}

// List is the display list of a frame, in drawing order.
type List []Item

// Len returns the total number of primitives in l.
func (l List) Len() int {
	n := 0
	for _, it := range l {
		n += len(it.Primitives)
	}
	return n
}

// Bounds returns the bounding box of all points in l.  The second return
// value is false if l contains no points.
func (l List) Bounds() (rect.Rect, bool) {
	var r rect.Rect
	found := false
	for _, it := range l {
		for _, p := range it.Primitives {
			for _, q := range p.Points {
				if !found {
					r = rect.Rect{LLx: q.X, LLy: q.Y, URx: q.X, URy: q.Y}
					found = true
					continue
				}
				r.LLx = min(r.LLx, q.X)
				r.LLy = min(r.LLy, q.Y)
				r.URx = max(r.URx, q.X)
				r.URy = max(r.URy, q.Y)
			}
		}
	}
	return r, found
}

// Find returns the item for the object id.
func (l List) Find(id object.ID) (Item, bool) {
	for _, it := range l {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
