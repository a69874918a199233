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

package export

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sketch/display"
	"seehuhn.de/go/sketch/window"
)

// WritePDF writes a frame as a single page PDF file.  One device unit
// becomes one PDF point.
func WritePDF(fname string, list display.List, vp window.Viewport, opt *Options) error {
	if err := vp.Validate(); err != nil {
		return err
	}
	st := opt.style()

	paper := &pdf.Rectangle{URx: vp.Width, URy: vp.Height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, device space is top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, vp.Height})

	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinRound)
	page.SetFillColor(pdfcolor.DeviceGray(gray(st.Fill)))
	page.SetStrokeColor(pdfcolor.DeviceGray(gray(st.Ink)))

	for _, item := range list {
		for _, prim := range item.Primitives {
			if len(prim.Points) == 0 {
				continue
			}
			if prim.Kind == display.Point {
				// a zero-length line with round caps is a dot
				q := prim.Points[0]
				page.SetLineWidth(2 * st.PointRadius)
				page.SetLineCap(graphics.LineCapRound)
				page.MoveTo(q.X, q.Y)
				page.LineTo(q.X, q.Y)
				page.Stroke()
				page.SetLineWidth(1)
				page.SetLineCap(graphics.LineCapButt)
				continue
			}

			if prim.Filled {
				tracePrimitive(page, prim)
				page.Fill()
			}
			tracePrimitive(page, prim)
			page.Stroke()
		}
	}

	return page.Close()
}

// pathBuilder is the part of a PDF content stream writer used to
// construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func tracePrimitive(page pathBuilder, prim display.Primitive) {
	for i, q := range prim.Points {
		if i == 0 {
			page.MoveTo(q.X, q.Y)
		} else {
			page.LineTo(q.X, q.Y)
		}
	}
	if prim.Kind == display.ClosedPolygon {
		page.ClosePath()
	}
}

// gray converts a grey level to the range [0, 1].
func gray(c color.Gray) float64 {
	return float64(c.Y) / 255
}
