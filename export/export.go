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

// Package export writes rendered frames to image files.
//
// A frame is a [display.List] in device coordinates, as produced by
// [seehuhn.de/go/sketch.Render].  PNG output is rasterised with
// [raster.Rasteriser]; PDF output keeps the geometry as vector graphics.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/sketch/display"
	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/window"
)

// ErrFormat is returned by [WriteFile] for unsupported file extensions.
var ErrFormat = errors.New("export: unsupported file type")

// Options control the appearance of exported frames.  A nil *Options
// selects [raster.DefaultStyle] without labels.
type Options struct {
	Style raster.Style

	// Labels enables drawing object names next to the first point of
	// each object.  Labels are only drawn in PNG output.
	Labels bool
}

func (o *Options) style() raster.Style {
	if o == nil {
		return raster.DefaultStyle
	}
	return o.Style
}

// Image renders list onto a new white image of the size of vp.
func Image(list display.List, vp window.Viewport, opt *Options) *image.Gray {
	w := int(math.Ceil(vp.Width))
	h := int(math.Ceil(vp.Height))
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	st := opt.style()
	r := raster.NewRasteriser(vp.Rect())
	r.DrawList(img, list, st)

	if opt != nil && opt.Labels {
		drawLabels(img, list, st)
	}
	return img
}

// drawLabels writes the name of every item next to its first point.
func drawLabels(img *image.Gray, list display.List, st raster.Style) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(st.Ink),
		Face: basicfont.Face7x13,
	}
	for _, item := range list {
		if item.Name == "" || len(item.Primitives) == 0 || len(item.Primitives[0].Points) == 0 {
			continue
		}
		p := item.Primitives[0].Points[0]
		d.Dot = fixed.P(int(math.Round(p.X))+4, int(math.Round(p.Y))-4)
		d.DrawString(item.Name)
	}
}

// WritePNG renders list and writes it to w in PNG format.
func WritePNG(w io.Writer, list display.List, vp window.Viewport, opt *Options) error {
	if err := vp.Validate(); err != nil {
		return err
	}
	return png.Encode(w, Image(list, vp, opt))
}

// WriteFile writes a frame to the named file.  The format is chosen by
// the file name extension, which must be ".png" or ".pdf".
func WriteFile(fname string, list display.List, vp window.Viewport, opt *Options) error {
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".pdf":
		return WritePDF(fname, list, vp, opt)
	case ".png":
		f, err := os.Create(fname)
		if err != nil {
			return err
		}
		err = WritePNG(f, list, vp, opt)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return err
	default:
		return fmt.Errorf("%w: %q", ErrFormat, ext)
	}
}
