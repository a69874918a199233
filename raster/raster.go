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

// Package raster turns display lists into anti-aliased pixels.
//
// The [Rasteriser] computes, for every pixel, the exact area covered by a
// path.  Coverage is delivered one scanline at a time through a callback,
// so that callers can composite into any pixel format.
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline.  coverage[i] is the
// coverage of pixel (xMin+i, y), in the range [0, 1].  The slice is only
// valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasteriser converts paths to pixel coverage values.
//
// A Rasteriser can be reused for many paths.  Internal buffers grow as
// needed and are kept between calls.
type Rasteriser struct {
	// CTM maps path coordinates to device pixels.
	CTM matrix.Matrix

	// Clip is the device area which receives output.  The coordinates
	// must be integers.
	Clip rect.Rect

	// Width is the line width used by [Rasteriser.Stroke], in path units.
	Width float64

	// Cap is the shape of the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape of corners.
	Join graphics.LineJoinStyle

	// MiterLimit caps the length of miter joins, relative to the line
	// width.  Longer miters are drawn as bevels.  Must be at least 1.
	MiterLimit float64

	// largeArea is the bounding box area, in pixels, above which the
	// scanline sweep is used instead of a full-area accumulation buffer.
	largeArea int

	edges   []edge
	active  []int
	cells   cells
	rows    []bool
	scratch []float64

	// outline buffers used by Stroke and Dot
	outline []vec.Vec2
	starts  []int
	closed  []bool

	bboxEmpty                  bool
	bboxX0, bboxX1, bbY0, bbY1 float64
}

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// NewRasteriser returns a rasteriser with the identity CTM, a line width
// of 1 and butt caps with round joins.  The miter limit is 10.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default settings, keeping the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinRound
	r.MiterLimit = defaultMiterLimit
	r.largeArea = largeAreaThreshold
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	r.addPath(p)
	r.sweep(nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	r.addPath(p)
	r.sweep(evenOdd, emit)
}

// addPath adds the edges of all subpaths of p.  Open subpaths are closed
// implicitly.
func (r *Rasteriser) addPath(p *path.Data) {
	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.addSegment(cur, start)
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addSegment(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			c, end := p.Coords[k], p.Coords[k+1]
			// raise to cubic
			r.addCubic(cur, cur.Add(c.Sub(cur).Mul(2.0/3)), end.Add(c.Sub(end).Mul(2.0/3)), end)
			cur = end
			k += 2
		case path.CmdCubeTo:
			r.addCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.addSegment(cur, start)
			cur = start
		}
	}
	r.addSegment(cur, start)
}

// addCubic flattens a cubic Bézier curve.  The number of segments follows
// Wang's formula for the device space tolerance [flatness].
func (r *Rasteriser) addCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := max(1, int(math.Ceil(math.Sqrt(3*max(d1, d2)/(4*flatness)))))

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).Add(p1.Mul(3 * s * s * t)).Add(p2.Mul(3 * s * t * t)).Add(p3.Mul(t * t * t))
		r.addSegment(prev, q)
		prev = q
	}
}

// linear applies the linear part of the CTM.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// device maps a point to device space.
func (r *Rasteriser) device(p vec.Vec2) vec.Vec2 {
	return r.linear(p).Add(vec.Vec2{X: r.CTM[4], Y: r.CTM[5]})
}

// addSegment maps a segment to device space and records it.
func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	if a == b {
		return
	}
	a = r.device(a)
	b = r.device(b)
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y, dxdy: (b.X - a.X) / dy})

	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	if r.bboxEmpty {
		r.bboxX0, r.bboxX1, r.bbY0, r.bbY1 = x0, x1, y0, y1
		r.bboxEmpty = false
		return
	}
	r.bboxX0 = min(r.bboxX0, x0)
	r.bboxX1 = max(r.bboxX1, x1)
	r.bbY0 = min(r.bbY0, y0)
	r.bbY1 = max(r.bbY1, y1)
}

// pixelBounds returns the integer bounding box of the collected edges,
// clipped to r.Clip.
func (r *Rasteriser) pixelBounds() (x0, x1, y0, y1 int, ok bool) {
	if r.bboxEmpty || len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	x0 = max(int(math.Floor(r.bboxX0)), int(r.Clip.LLx))
	x1 = min(int(math.Floor(r.bboxX1))+1, int(r.Clip.URx))
	y0 = max(int(math.Floor(r.bbY0)), int(r.Clip.LLy))
	y1 = min(int(math.Floor(r.bbY1))+1, int(r.Clip.URy))
	return x0, x1, y0, y1, x0 < x1 && y0 < y1
}

const (
	// flatness is the maximal distance, in pixels, between a curve and
	// its polygonal approximation.
	flatness = 0.25

	// horizontalThreshold is the smallest vertical extent of an edge
	// which can contribute coverage.
	horizontalThreshold = 1e-10

	largeAreaThreshold = 1 << 16

	// defaultMiterLimit matches the PDF default.
	defaultMiterLimit = 10.0
)
