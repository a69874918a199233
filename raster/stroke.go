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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke draws the outline of p using Width, Cap and Join.
//
// The stroke is built as a union of convex pieces: one rectangle per
// segment, plus caps and joins.  All pieces have the same orientation and
// are filled together with the nonzero rule, so overlaps are not painted
// twice.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	if !(r.Width > 0) {
		return
	}
	hw := r.Width / 2

	r.flatten(p)
	for i, start := range r.starts {
		end := len(r.outline)
		if i+1 < len(r.starts) {
			end = r.starts[i+1]
		}
		pts := r.outline[start:end]
		closed := r.closed[i]

		if len(pts) == 1 {
			switch r.Cap {
			case graphics.LineCapRound:
				r.addCircle(pts[0], hw)
			case graphics.LineCapSquare:
				c := pts[0]
				r.addPolygon(
					c.Add(vec.Vec2{X: -hw, Y: -hw}), c.Add(vec.Vec2{X: hw, Y: -hw}),
					c.Add(vec.Vec2{X: hw, Y: hw}), c.Add(vec.Vec2{X: -hw, Y: hw}))
			}
			continue
		}

		n := len(pts)
		segs := n - 1
		if closed {
			segs = n
		}
		for j := range segs {
			a, b := pts[j], pts[(j+1)%n]
			t := unit(b.Sub(a))
			nv := vec.Vec2{X: -t.Y, Y: t.X}.Mul(hw)
			r.addPolygon(a.Sub(nv), b.Sub(nv), b.Add(nv), a.Add(nv))
		}

		if closed {
			for j := range n {
				r.addJoin(pts[(j+n-1)%n], pts[j], pts[(j+1)%n], hw)
			}
			continue
		}
		for j := 1; j < n-1; j++ {
			r.addJoin(pts[j-1], pts[j], pts[j+1], hw)
		}
		r.addCap(pts[0], unit(pts[0].Sub(pts[1])), hw)
		r.addCap(pts[n-1], unit(pts[n-1].Sub(pts[n-2])), hw)
	}

	r.sweep(nonZero, emit)
}

// Dot fills a disc of the given radius around c.
func (r *Rasteriser) Dot(c vec.Vec2, radius float64, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	if !(radius > 0) {
		return
	}
	r.addCircle(c, radius)
	r.sweep(nonZero, emit)
}

// flatten splits p into polylines, stored in r.outline, r.starts and
// r.closed.  Repeated points are removed.
func (r *Rasteriser) flatten(p *path.Data) {
	r.outline = r.outline[:0]
	r.starts = r.starts[:0]
	r.closed = r.closed[:0]

	open := false
	add := func(q vec.Vec2) {
		if !open {
			r.starts = append(r.starts, len(r.outline))
			r.closed = append(r.closed, false)
			r.outline = append(r.outline, q)
			open = true
			return
		}
		if r.outline[len(r.outline)-1] != q {
			r.outline = append(r.outline, q)
		}
	}

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			open = false
			cur = p.Coords[k]
			start = cur
			add(cur)
			k++
		case path.CmdLineTo:
			if !open {
				add(cur)
			}
			cur = p.Coords[k]
			add(cur)
			k++
		case path.CmdQuadTo:
			if !open {
				add(cur)
			}
			c, end := p.Coords[k], p.Coords[k+1]
			r.sampleCubic(cur, cur.Add(c.Sub(cur).Mul(2.0/3)), end.Add(c.Sub(end).Mul(2.0/3)), end, add)
			cur = end
			k += 2
		case path.CmdCubeTo:
			if !open {
				add(cur)
			}
			r.sampleCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], add)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if open {
				last := len(r.starts) - 1
				pts := r.outline[r.starts[last]:]
				if len(pts) > 1 && pts[len(pts)-1] == pts[0] {
					r.outline = r.outline[:len(r.outline)-1]
				}
				r.closed[last] = len(r.outline)-r.starts[last] > 1
			}
			open = false
			cur = start
		}
	}
}

// sampleCubic calls add for points along a cubic Bézier curve, excluding
// the start point.
func (r *Rasteriser) sampleCubic(p0, p1, p2, p3 vec.Vec2, add func(vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := max(1, int(math.Ceil(math.Sqrt(3*max(d1, d2)/(4*flatness)))))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		add(p0.Mul(s * s * s).Add(p1.Mul(3 * s * s * t)).Add(p2.Mul(3 * s * t * t)).Add(p3.Mul(t * t * t)))
	}
}

// addJoin adds the corner piece at b, between the segments a-b and b-c.
func (r *Rasteriser) addJoin(a, b, c vec.Vec2, hw float64) {
	t1 := unit(b.Sub(a))
	t2 := unit(c.Sub(b))
	cross := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(cross) < collinearThreshold && t1.Dot(t2) > 0 {
		return
	}
	if r.Join == graphics.LineJoinRound {
		r.addCircle(b, hw)
		return
	}

	// on the outer side of the turn
	side := hw
	if cross > 0 {
		side = -hw
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side)

	if r.Join == graphics.LineJoinMiter {
		// The miter length, relative to the line width, is 1/sin(φ/2)
		// where φ is the angle between the two segments.
		sinHalf := math.Sqrt((1 + t1.Dot(t2)) / 2)
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+miterEpsilon {
			bisector := unit(n1.Add(n2))
			tip := b.Add(bisector.Mul(hw / sinHalf))
			r.addPolygon(b, b.Add(n1), tip, b.Add(n2))
			return
		}
	}
	r.addPolygon(b, b.Add(n1), b.Add(n2))
}

// addCap adds the cap at the end point p of an open subpath.  The vector
// out points away from the path.
func (r *Rasteriser) addCap(p, out vec.Vec2, hw float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, hw)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -out.Y, Y: out.X}.Mul(hw)
		e := out.Mul(hw)
		r.addPolygon(p.Sub(n), p.Sub(n).Add(e), p.Add(n).Add(e), p.Add(n))
	}
}

// addCircle adds a regular polygon approximating the circle of radius
// rad around c.  The number of corners depends on the size in device
// space.
func (r *Rasteriser) addCircle(c vec.Vec2, rad float64) {
	scale := math.Sqrt(math.Abs(r.CTM[0]*r.CTM[3] - r.CTM[1]*r.CTM[2]))
	devRad := rad * scale
	n := 8
	if devRad > flatness {
		step := 2 * math.Acos(1-flatness/devRad)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}
	n = min(n, 1024)

	var corners [1024]vec.Vec2
	pts := corners[:n]
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = c.Add(vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}.Mul(rad))
	}
	r.addPolygon(pts...)
}

// addPolygon adds a closed polygon with positive orientation.
func (r *Rasteriser) addPolygon(vs ...vec.Vec2) {
	var area float64
	for i, a := range vs {
		b := vs[(i+1)%len(vs)]
		area += a.X*b.Y - a.Y*b.X
	}
	if area == 0 {
		return
	}
	n := len(vs)
	for i := range n {
		if area > 0 {
			r.addSegment(vs[i], vs[(i+1)%n])
		} else {
			r.addSegment(vs[(i+1)%n], vs[i])
		}
	}
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{X: 1}
	}
	return v.Mul(1 / l)
}

const (
	// collinearThreshold is the largest sine of the turning angle for
	// which two segments count as collinear.
	collinearThreshold = 1e-6

	// miterEpsilon admits miters exactly at the limit despite rounding.
	miterEpsilon = 1e-10
)
