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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch/display"
)

// approaches lists thresholds which force each of the two sweep
// implementations.
var approaches = []struct {
	name      string
	threshold int
}{
	{"box", 1 << 30},
	{"rows", 0},
}

// grid collects coverage values into a w×h array.
type grid struct {
	w, h int
	v    []float32
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, v: make([]float32, w*h)}
}

func (g *grid) emit(y, xMin int, coverage []float32) {
	copy(g.v[y*g.w+xMin:], coverage)
}

func (g *grid) at(x, y int) float32 {
	return g.v[y*g.w+x]
}

func (g *grid) sum() float64 {
	var s float64
	for _, c := range g.v {
		s += float64(c)
	}
	return s
}

func newTestRasteriser(w, h, threshold int) *Rasteriser {
	r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	r.largeArea = threshold
	return r
}

func rectPath(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10, so
// pixel x has coverage (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			g := newGrid(10, 1)
			newTestRasteriser(10, 1, a.threshold).FillNonZero(triangle, g.emit)
			for x := range 10 {
				want := float32(2*x+1) / 20
				if got := g.at(x, 0); math.Abs(float64(got-want)) > 1e-6 {
					t.Errorf("pixel %d: got %.4f, want %.4f", x, got, want)
				}
			}
		})
	}
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	p := rectPath(0, 0, 10, 10)
	inner := rectPath(3, 3, 7, 7)
	p.Cmds = append(p.Cmds, inner.Cmds...)
	p.Coords = append(p.Coords, inner.Coords...)

	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			nz := newGrid(10, 10)
			eo := newGrid(10, 10)
			r := newTestRasteriser(10, 10, a.threshold)
			r.FillNonZero(p, nz.emit)
			r.FillEvenOdd(p, eo.emit)

			if got := nz.at(5, 5); got != 1 {
				t.Errorf("nonzero centre = %g, want 1", got)
			}
			if got := eo.at(5, 5); got != 0 {
				t.Errorf("even-odd centre = %g, want 0", got)
			}
			if nz.at(1, 1) != 1 || eo.at(1, 1) != 1 {
				t.Errorf("ring pixel: nonzero %g, even-odd %g", nz.at(1, 1), eo.at(1, 1))
			}
			if got, want := eo.sum(), 100.0-16; math.Abs(got-want) > 1e-4 {
				t.Errorf("even-odd area = %g, want %g", got, want)
			}
		})
	}
}

func TestApproachesAgree(t *testing.T) {
	star := &path.Data{}
	for i := range 5 {
		phi := math.Pi/2 + float64(i)*4*math.Pi/5
		q := vec.Vec2{X: 32 + 28*math.Cos(phi), Y: 32 + 28*math.Sin(phi)}
		if i == 0 {
			star = star.MoveTo(q)
		} else {
			star = star.LineTo(q)
		}
	}
	star = star.Close()

	paths := map[string]*path.Data{
		"star":   star,
		"circle": circlePath(32, 32, 20.5, false),
		"O":      oPath(32, 32, 28, 18),
	}
	for name, p := range paths {
		t.Run(name, func(t *testing.T) {
			for _, fill := range []string{"nonzero", "evenodd"} {
				var gs [2]*grid
				for i, a := range approaches {
					gs[i] = newGrid(64, 64)
					r := newTestRasteriser(64, 64, a.threshold)
					if fill == "nonzero" {
						r.FillNonZero(p, gs[i].emit)
					} else {
						r.FillEvenOdd(p, gs[i].emit)
					}
				}
				for i := range gs[0].v {
					if d := math.Abs(float64(gs[0].v[i] - gs[1].v[i])); d > 1e-4 {
						t.Fatalf("%s: pixel %d differs: %g vs %g", fill, i, gs[0].v[i], gs[1].v[i])
					}
				}
			}
		})
	}
}

func TestCircleArea(t *testing.T) {
	g := newGrid(40, 40)
	r := newTestRasteriser(40, 40, 1<<30)
	r.FillNonZero(circlePath(20, 20, 15, true), g.emit)

	// The flattened curve lies within flatness of the true circle.
	got := g.sum()
	lo, hi := math.Pi*(15-flatness)*(15-flatness), math.Pi*15.01*15.01
	if got < lo || got > hi {
		t.Errorf("area = %g, want in [%g, %g]", got, lo, hi)
	}
}

func TestCTM(t *testing.T) {
	g := newGrid(20, 20)
	r := newTestRasteriser(20, 20, 1<<30)
	r.CTM = matrix.Matrix{2, 0, 0, 2, 4, 6}
	r.FillNonZero(rectPath(0, 0, 3, 2), g.emit)
	if got := g.sum(); math.Abs(got-24) > 1e-4 {
		t.Errorf("area = %g, want 24", got)
	}
	if g.at(4, 6) != 1 || g.at(9, 9) != 1 || g.at(10, 9) != 0 || g.at(3, 6) != 0 {
		t.Errorf("rectangle not at (4,6)-(10,10)")
	}
}

func TestClip(t *testing.T) {
	g := newGrid(10, 10)
	r := newTestRasteriser(10, 10, 1<<30)
	r.FillNonZero(rectPath(-5, -5, 5, 20), g.emit)
	if got := g.sum(); math.Abs(got-50) > 1e-4 {
		t.Errorf("clipped area = %g, want 50", got)
	}

	r.FillNonZero(rectPath(12, 0, 15, 5), func(y, xMin int, _ []float32) {
		t.Errorf("emit called for invisible path at row %d", y)
	})
}

func TestStroke(t *testing.T) {
	line := (&path.Data{}).MoveTo(vec.Vec2{X: 2, Y: 5}).LineTo(vec.Vec2{X: 18, Y: 5})

	cases := []struct {
		cap  graphics.LineCapStyle
		area float64
		tol  float64
	}{
		{graphics.LineCapButt, 32, 1e-4},
		{graphics.LineCapSquare, 36, 1e-4},
		// unit circles are drawn as octagons
		{graphics.LineCapRound, 32 + 2*math.Sqrt2, 1e-3},
	}
	for _, c := range cases {
		for _, a := range approaches {
			t.Run(fmt.Sprintf("%d-%s", c.cap, a.name), func(t *testing.T) {
				g := newGrid(20, 10)
				r := newTestRasteriser(20, 10, a.threshold)
				r.Width = 2
				r.Cap = c.cap
				r.Stroke(line, g.emit)

				if got := g.sum(); math.Abs(got-c.area) > c.tol {
					t.Errorf("area = %g, want %g", got, c.area)
				}
				for x := 2; x < 18; x++ {
					if g.at(x, 4) < 0.9999 || g.at(x, 5) < 0.9999 {
						t.Errorf("pixel column %d not covered", x)
					}
					if g.at(x, 3) != 0 || g.at(x, 6) != 0 {
						t.Errorf("pixel column %d painted outside the line", x)
					}
				}
			})
		}
	}
}

func TestStrokeClosed(t *testing.T) {
	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinRound, graphics.LineJoinBevel, graphics.LineJoinMiter} {
		t.Run(fmt.Sprint(join), func(t *testing.T) {
			g := newGrid(20, 20)
			r := newTestRasteriser(20, 20, 1<<30)
			r.Width = 2
			r.Join = join
			r.Stroke(rectPath(5, 5, 15, 15), g.emit)

			if got := g.at(10, 10); got != 0 {
				t.Errorf("interior painted: %g", got)
			}
			for _, p := range [][2]int{{4, 10}, {5, 10}, {10, 14}, {14, 5}} {
				if got := g.at(p[0], p[1]); got < 0.9999 {
					t.Errorf("edge pixel %v = %g", p, got)
				}
			}
			for i, c := range g.v {
				if c > 1 {
					t.Fatalf("pixel %d has coverage %g", i, c)
				}
			}
			// the corners are at least bevelled
			if got := g.at(4, 4); got < 0.4 {
				t.Errorf("corner pixel = %g", got)
			}
		})
	}
}

func TestStrokeJoins(t *testing.T) {
	// a right angle with the outer corner at (10, 10)-(11, 11)
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 2})
	// a 30° turn back, with a miter length of 1/sin(15°) ≈ 3.86
	sharp := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 10}).
		LineTo(vec.Vec2{X: 12, Y: 10}).
		LineTo(vec.Vec2{X: 12 - 10*math.Cos(math.Pi/6), Y: 10 - 10*math.Sin(math.Pi/6)})

	cases := []struct {
		name  string
		path  *path.Data
		join  graphics.LineJoinStyle
		limit float64
		area  float64
	}{
		{"miter", corner, graphics.LineJoinMiter, 10, 32},
		{"bevel", corner, graphics.LineJoinBevel, 10, 31.5},
		{"miter at limit", corner, graphics.LineJoinMiter, math.Sqrt2, 32},
		{"miter over limit", corner, graphics.LineJoinMiter, 1.4, 31.5},
	}
	for _, c := range cases {
		for _, a := range approaches {
			t.Run(c.name+"-"+a.name, func(t *testing.T) {
				g := newGrid(20, 20)
				r := newTestRasteriser(20, 20, a.threshold)
				r.Width = 2
				r.Join = c.join
				r.MiterLimit = c.limit
				r.Stroke(c.path, g.emit)
				if got := g.sum(); math.Abs(got-c.area) > 1e-4 {
					t.Errorf("area = %g, want %g", got, c.area)
				}
			})
		}
	}

	// The sharp turn only gets a miter if the limit allows it.
	area := func(join graphics.LineJoinStyle, limit float64) float64 {
		g := newGrid(20, 20)
		r := newTestRasteriser(20, 20, 1<<30)
		r.Width = 2
		r.Join = join
		r.MiterLimit = limit
		r.Stroke(sharp, g.emit)
		return g.sum()
	}
	bevel := area(graphics.LineJoinBevel, 10)
	if got := area(graphics.LineJoinMiter, 3); math.Abs(got-bevel) > 1e-4 {
		t.Errorf("miter over limit: area %g, want bevel area %g", got, bevel)
	}
	if got := area(graphics.LineJoinMiter, 4); got < bevel+0.5 {
		t.Errorf("miter within limit: area %g, bevel area %g", got, bevel)
	}
}

func TestDot(t *testing.T) {
	g := newGrid(20, 20)
	r := newTestRasteriser(20, 20, 1<<30)
	r.Dot(vec.Vec2{X: 10, Y: 10}, 5, g.emit)
	got := g.sum()
	lo, hi := math.Pi*(5-flatness)*(5-flatness), math.Pi*25
	if got < lo || got > hi {
		t.Errorf("area = %g, want in [%g, %g]", got, lo, hi)
	}

	r.Dot(vec.Vec2{X: 10, Y: 10}, 0, func(int, int, []float32) {
		t.Error("zero radius dot painted")
	})
}

func TestDrawList(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	list := display.List{
		{ID: 1, Primitives: []display.Primitive{{
			Kind:   display.ClosedPolygon,
			Points: []vec.Vec2{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}},
			Filled: true,
		}}},
		{ID: 2, Primitives: []display.Primitive{{
			Kind:   display.Point,
			Points: []vec.Vec2{{X: 2, Y: 2}},
		}}},
	}
	r := NewRasteriser(rect.Rect{})
	r.DrawList(img, list, DefaultStyle)

	if got := img.GrayAt(10, 10).Y; got != DefaultStyle.Fill.Y {
		t.Errorf("fill = %d, want %d", got, DefaultStyle.Fill.Y)
	}
	if got := img.GrayAt(18, 18).Y; got != 255 {
		t.Errorf("background = %d, want 255", got)
	}
	if got := img.GrayAt(1, 1).Y; got > 5 {
		t.Errorf("point = %d, want black", got)
	}
	if got := img.GrayAt(10, 4).Y; got > 140 {
		t.Errorf("outline = %d, want dark", got)
	}
}

func TestDrawListOffset(t *testing.T) {
	full := image.NewGray(image.Rect(0, 0, 30, 30))
	img := full.SubImage(image.Rect(10, 10, 30, 30)).(*image.Gray)

	list := display.List{{ID: 1, Primitives: []display.Primitive{{
		Kind:   display.Point,
		Points: []vec.Vec2{{X: 3, Y: 3}},
	}}}}
	r := NewRasteriser(rect.Rect{})
	r.DrawList(img, list, Style{Ink: color.Gray{Y: 255}, PointRadius: 2})

	if got := full.GrayAt(13, 13).Y; got < 250 {
		t.Errorf("point not drawn at sub-image position: %d", got)
	}
	if got := full.GrayAt(3, 3).Y; got != 0 {
		t.Errorf("point drawn at absolute position: %d", got)
	}
}

// circlePath returns a circle made of four cubic Bézier curves.
func circlePath(cx, cy, r float64, clockwise bool) *path.Data {
	const k = 0.5522847498
	kr := k * r
	s := 1.0
	if clockwise {
		s = -1
	}
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: cx + x, Y: cy + s*y} }
	return (&path.Data{}).
		MoveTo(pt(r, 0)).
		CubeTo(pt(r, kr), pt(kr, r), pt(0, r)).
		CubeTo(pt(-kr, r), pt(-r, kr), pt(-r, 0)).
		CubeTo(pt(-r, -kr), pt(-kr, -r), pt(0, -r)).
		CubeTo(pt(kr, -r), pt(r, -kr), pt(r, 0)).
		Close()
}

// oPath returns an "O" shape: outer circle counter-clockwise, inner
// circle clockwise.
func oPath(cx, cy, outer, inner float64) *path.Data {
	p := circlePath(cx, cy, outer, false)
	q := circlePath(cx, cy, inner, true)
	p.Cmds = append(p.Cmds, q.Cmds...)
	p.Coords = append(p.Coords, q.Coords...)
	return p
}

func BenchmarkRasteriserO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			c := float64(size) / 2
			p := oPath(c, c, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				r.FillEvenOdd(p, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range coverage {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with x/image/vector, as a
// baseline.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			c := float64(size) / 2
			p := oPath(c, c, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addToVector(r, p)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func addToVector(r *vector.Rasterizer, p *path.Data) {
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			q := p.Coords[k]
			r.MoveTo(float32(q.X), float32(q.Y))
			k++
		case path.CmdLineTo:
			q := p.Coords[k]
			r.LineTo(float32(q.X), float32(q.Y))
			k++
		case path.CmdCubeTo:
			q1, q2, q3 := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			r.CubeTo(float32(q1.X), float32(q1.Y), float32(q2.X), float32(q2.Y), float32(q3.X), float32(q3.Y))
			k += 3
		case path.CmdClose:
			r.ClosePath()
		}
	}
}

func BenchmarkDrawList(b *testing.B) {
	img := image.NewGray(image.Rect(0, 0, 400, 300))
	var list display.List
	for i := range 50 {
		x := float64(i%10)*40 + 5
		y := float64(i/10)*60 + 5
		list = append(list, display.Item{Primitives: []display.Primitive{{
			Kind:   display.ClosedPolygon,
			Points: []vec.Vec2{{X: x, Y: y}, {X: x + 30, Y: y}, {X: x + 15, Y: y + 50}},
			Filled: i%2 == 0,
		}}})
	}
	r := NewRasteriser(rect.Rect{})

	for b.Loop() {
		r.DrawList(img, list, DefaultStyle)
	}
}
