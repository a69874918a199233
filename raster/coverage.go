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
	"cmp"
	"math"
	"slices"
)

// Coverage is computed by signed area accumulation.  For every pixel we
// record two numbers:
//
//	cover: the signed height of all edge pieces inside the pixel
//	area:  the same heights, weighted by the part of the pixel which lies
//	       to the right of the edge
//
// Summing cover from the left edge of the scanline gives the winding
// number at the start of each pixel; adding area gives the winding
// number averaged over the pixel.

type rule int

const (
	nonZero rule = iota
	evenOdd
)

// cells holds the accumulation buffers.  A buffer holds either one
// scanline or a whole bounding box.
type cells struct {
	cover []float32
	area  []float32
}

func (c *cells) resize(n int) {
	c.cover = slices.Grow(c.cover[:0], n)[:n]
	c.area = slices.Grow(c.area[:0], n)[:n]
	clear(c.cover)
	clear(c.area)
}

// sweep converts the collected edges into coverage.  Small paths are
// accumulated into a buffer covering the whole bounding box.  Large paths
// use an active edge list, so that only one scanline is held in memory.
func (r *Rasteriser) sweep(fr rule, emit EmitFunc) {
	x0, x1, y0, y1, ok := r.pixelBounds()
	if !ok {
		return
	}
	if (x1-x0)*(y1-y0) < r.largeArea {
		r.sweepBox(x0, x1, y0, y1, fr, emit)
	} else {
		r.sweepRows(x0, x1, y0, y1, fr, emit)
	}
}

func (r *Rasteriser) sweepBox(x0, x1, y0, y1 int, fr rule, emit EmitFunc) {
	w, h := x1-x0, y1-y0
	r.cells.resize(w * h)
	r.rows = slices.Grow(r.rows[:0], h)[:h]
	clear(r.rows)

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(e.top())), y0)
		last := min(int(math.Floor(e.bottom()))+1, y1)
		for y := first; y < last; y++ {
			row := y - y0
			lo, hi := row*w, (row+1)*w
			if accumulate(e, y, r.cells.cover[lo:hi], r.cells.area[lo:hi], x0, x1, &r.scratch) {
				r.rows[row] = true
			}
		}
	}

	for row := range h {
		if !r.rows[row] {
			continue
		}
		lo, hi := row*w, (row+1)*w
		out := integrate(r.cells.cover[lo:hi], r.cells.area[lo:hi], fr)
		if cov, off := trim(out); cov != nil {
			emit(y0+row, x0+off, cov)
		}
	}
}

func (r *Rasteriser) sweepRows(x0, x1, y0, y1 int, fr rule, emit EmitFunc) {
	w := x1 - x0
	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := y0; y < y1; y++ {
		yTop, yBot := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].top() < yBot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		r.cells.resize(w)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= yTop {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if accumulate(e, y, r.cells.cover, r.cells.area, x0, x1, &r.scratch) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		out := integrate(r.cells.cover, r.cells.area, fr)
		if cov, off := trim(out); cov != nil {
			emit(y, x0+off, cov)
		}
	}
}

// accumulate adds the part of e inside scanline y to the buffers, which
// cover the pixel columns x0 to x1-1.  Pieces left of the buffer are
// added to its first pixel, since they change the winding number of the
// whole scanline.  The return value reports whether any contribution was
// made.
func accumulate(e *edge, y int, cover, area []float32, x0, x1 int, ys *[]float64) bool {
	top := max(float64(y), e.top())
	bot := min(float64(y+1), e.bottom())
	if bot <= top {
		return false
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(top), e.xAt(bot)
	if xa > xb {
		xa, xb = xb, xa
	}
	left, right := int(math.Floor(xa)), int(math.Floor(xb))
	if left >= x1 {
		return false
	}

	// Split the piece wherever it crosses a pixel boundary.
	*ys = append((*ys)[:0], top, bot)
	for x := left + 1; x <= right; x++ {
		yx := e.y0 + (float64(x)-e.x0)/e.dxdy
		if yx > top && yx < bot {
			*ys = append(*ys, yx)
		}
	}
	slices.Sort(*ys)

	for i := 1; i < len(*ys); i++ {
		ya, yb := (*ys)[i-1], (*ys)[i]
		if yb <= ya {
			continue
		}
		c := sign * float32(yb-ya)
		xm := e.xAt((ya + yb) / 2)
		px := int(math.Floor(xm))
		switch {
		case px < x0:
			cover[0] += c
			area[0] += c
		case px < x1:
			cover[px-x0] += c
			area[px-x0] += c * float32(1-(xm-float64(px)))
		}
	}
	return true
}

// integrate turns accumulated cover and area into coverage, in place.
func integrate(cover, area []float32, fr rule) []float32 {
	var winding float32
	for i := range cover {
		v := winding + area[i]
		winding += cover[i]
		if v < 0 {
			v = -v
		}
		if fr == evenOdd {
			v -= 2 * float32(math.Floor(float64(v/2)))
			if v > 1 {
				v = 2 - v
			}
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
	return cover
}

// trim removes zero coverage from both ends of a scanline.
func trim(cov []float32) ([]float32, int) {
	lo, hi := 0, len(cov)
	for lo < hi && cov[lo] == 0 {
		lo++
	}
	for hi > lo && cov[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return cov[lo:hi], lo
}
