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
)

// edge is one of the four half-planes bounding a clip rectangle.
type edge struct {
	inside    func(p vec.Vec2) bool
	intersect func(a, b vec.Vec2) vec.Vec2
}

// edges returns the half-planes of r in the order left, right, bottom, top.
func edges(r rect.Rect) [4]edge {
	atX := func(x float64) func(a, b vec.Vec2) vec.Vec2 {
		return func(a, b vec.Vec2) vec.Vec2 {
			t := (x - a.X) / (b.X - a.X)
			return vec.Vec2{X: x, Y: a.Y + t*(b.Y-a.Y)}
		}
	}
	atY := func(y float64) func(a, b vec.Vec2) vec.Vec2 {
		return func(a, b vec.Vec2) vec.Vec2 {
			t := (y - a.Y) / (b.Y - a.Y)
			return vec.Vec2{X: a.X + t*(b.X-a.X), Y: y}
		}
	}
	return [4]edge{
		{func(p vec.Vec2) bool { return p.X >= r.LLx }, atX(r.LLx)},
		{func(p vec.Vec2) bool { return p.X <= r.URx }, atX(r.URx)},
		{func(p vec.Vec2) bool { return p.Y >= r.LLy }, atY(r.LLy)},
		{func(p vec.Vec2) bool { return p.Y <= r.URy }, atY(r.URy)},
	}
}

// Polygon clips the closed polygon with vertices vs against r, using the
// Sutherland-Hodgman algorithm.  The result has consecutive duplicate
// vertices removed.  If fewer than three vertices remain, nil is returned:
// the polygon is not visible.
func Polygon(vs []vec.Vec2, r rect.Rect) []vec.Vec2 {
	if len(vs) == 0 {
		return nil
	}
	in := append([]vec.Vec2(nil), vs...)
	var out []vec.Vec2
	for _, e := range edges(r) {
		out = out[:0:0]
		n := len(in)
		for i := range n {
			cur := in[i]
			prev := in[(i+n-1)%n]
			curIn, prevIn := e.inside(cur), e.inside(prev)
			switch {
			case curIn && prevIn:
				out = append(out, cur)
			case curIn && !prevIn:
				out = append(out, e.intersect(prev, cur), cur)
			case !curIn && prevIn:
				out = append(out, e.intersect(prev, cur))
			}
		}
		if len(out) == 0 {
			return nil
		}
		in = out
	}
	out = dedup(out)
	if len(out) < 3 {
		return nil
	}
	return out
}

// dedup removes consecutive duplicate vertices of a closed polygon,
// including a last vertex equal to the first.
func dedup(vs []vec.Vec2) []vec.Vec2 {
	res := vs[:0]
	for _, v := range vs {
		if len(res) > 0 && res[len(res)-1] == v {
			continue
		}
		res = append(res, v)
	}
	for len(res) > 1 && res[len(res)-1] == res[0] {
		res = res[:len(res)-1]
	}
	return res
}

// Polyline clips the open chain of segments through vs against r.  The
// result is the list of visible runs, each with at least two vertices.
// A chain which leaves r and enters it again gives several runs.
func Polyline(vs []vec.Vec2, r rect.Rect, line LineFunc) [][]vec.Vec2 {
	if line == nil {
		line = CohenSutherland
	}
	var runs [][]vec.Vec2
	var cur []vec.Vec2
	cont := false
	for i := 1; i < len(vs); i++ {
		a, b, ok := line(vs[i-1], vs[i], r)
		if !ok {
			cont = false
			continue
		}
		if !cont || a != vs[i-1] {
			if len(cur) >= 2 {
				runs = append(runs, cur)
			}
			cur = []vec.Vec2{a}
		}
		if b != cur[len(cur)-1] {
			cur = append(cur, b)
		}
		cont = b == vs[i]
	}
	if len(cur) >= 2 {
		runs = append(runs, cur)
	}
	return runs
}
