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

package tui

import (
	"math"
	"slices"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// canvas is a dot matrix drawn with braille characters.  Every terminal
// cell holds 2×4 dots.
type canvas struct {
	w, h int       // in cells
	dots [][]uint8 // per-cell braille mask
	mark [][]bool  // cells showing the selected object
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h}
	c.dots = make([][]uint8, h)
	c.mark = make([][]bool, h)
	for i := range c.dots {
		c.dots[i] = make([]uint8, w)
		c.mark[i] = make([]bool, w)
	}
	return c
}

// brailleBits maps the position of a dot inside its cell to a bit of the
// braille code point.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// set turns on the dot at (x, y).  Dots outside the canvas are ignored.
func (c *canvas) set(x, y int, marked bool) {
	if x < 0 || y < 0 || x >= 2*c.w || y >= 4*c.h {
		return
	}
	cx, cy := x/2, y/4
	c.dots[cy][cx] |= brailleBits[y%4][x%2]
	if marked {
		c.mark[cy][cx] = true
	}
}

// dot converts a device position to dot coordinates.  Points on the
// right and bottom edge of the viewport belong to the last dot.
func (c *canvas) dot(p vec.Vec2) (int, int) {
	x := min(int(math.Floor(p.X)), 2*c.w-1)
	y := min(int(math.Floor(p.Y)), 4*c.h-1)
	return x, y
}

// line draws a straight line using Bresenham's algorithm.
func (c *canvas) line(a, b vec.Vec2, marked bool) {
	x0, y0 := c.dot(a)
	x1, y1 := c.dot(b)
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.set(x0, y0, marked)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fill sets all dots whose centre is inside the polygon, using the
// even-odd rule.
func (c *canvas) fill(vs []vec.Vec2, marked bool) {
	var xs []float64
	for y := range 4 * c.h {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for i, a := range vs {
			b := vs[(i+1)%len(vs)]
			if (a.Y <= yc) == (b.Y <= yc) {
				continue
			}
			xs = append(xs, a.X+(yc-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Floor(xs[i+1] - 0.5))
			for x := max(x0, 0); x <= x1; x++ {
				c.set(x, y, marked)
			}
		}
	}
}

// lines returns the canvas as text.  Cells showing the selected object
// are rendered with the given function.
func (c *canvas) lines(highlight func(string) string) []string {
	out := make([]string, c.h)
	var sb strings.Builder
	for y := range c.h {
		sb.Reset()
		for x := range c.w {
			r := ' '
			if mask := c.dots[y][x]; mask != 0 {
				r = rune(0x2800 + int(mask))
			}
			if c.mark[y][x] && highlight != nil {
				sb.WriteString(highlight(string(r)))
			} else {
				sb.WriteRune(r)
			}
		}
		out[y] = sb.String()
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
