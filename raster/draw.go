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
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sketch/display"
)

// Style selects the colours used by [Rasteriser.DrawList].
type Style struct {
	Ink         color.Gray // lines and points
	Fill        color.Gray // interior of filled polygons
	PointRadius float64
}

// DefaultStyle draws black lines and light grey fills.
var DefaultStyle = Style{
	Ink:         color.Gray{Y: 0},
	Fill:        color.Gray{Y: 0xC0},
	PointRadius: 2,
}

// DrawList paints a display list onto img.  The list must be in device
// coordinates, with the origin of the device space at the top-left pixel
// of img.  Lines are drawn with the current Width, Cap and Join; the CTM
// is replaced by the identity.
func (r *Rasteriser) DrawList(img *image.Gray, list display.List, st Style) {
	b := img.Bounds()
	r.CTM = matrix.Identity
	r.Clip = rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())}

	ink := painter(img, st.Ink.Y)
	fill := painter(img, st.Fill.Y)
	for _, item := range list {
		for _, prim := range item.Primitives {
			if len(prim.Points) == 0 {
				continue
			}
			if prim.Kind == display.Point {
				r.Dot(prim.Points[0], st.PointRadius, ink)
				continue
			}
			p := prim.Path()
			if prim.Filled {
				r.FillNonZero(p, fill)
			}
			r.Stroke(p, ink)
		}
	}
}

// painter returns an EmitFunc which blends the grey level v into img.
// Coverage coordinates are relative to the top-left corner of img.
func painter(img *image.Gray, v uint8) EmitFunc {
	b := img.Bounds()
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(b.Min.X+xMin, b.Min.Y+y):]
		for i, c := range coverage {
			d := float32(row[i])
			row[i] = uint8(d + (float32(v)-d)*c + 0.5)
		}
	}
}
