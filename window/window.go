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

// Package window maps world coordinates to device coordinates.
//
// The mapping happens in two steps.  First, the [Window] is mapped onto
// the normalised square [-1,1]×[-1,1], undoing its position, rotation
// and size.  Then the normalised square is mapped onto the [Viewport].
// Device coordinates have their origin in the top-left corner of the
// viewport, with y increasing downwards.
package window

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/linalg"
)

var (
	// ErrInvalidZoom indicates a zoom factor which is not positive.
	ErrInvalidZoom = errors.New("window: invalid zoom factor")

	// ErrInvalidWindow indicates a window with non-positive or non-finite
	// dimensions.
	ErrInvalidWindow = errors.New("window: invalid window")

	// ErrInvalidViewport indicates a viewport with non-positive or
	// non-finite dimensions.
	ErrInvalidViewport = errors.New("window: invalid viewport")
)

// Window is the region of world space which is shown in the viewport.
type Window struct {
	Center vec.Vec2

	// HalfWidth and HalfHeight are the distances from the centre to the
	// edges, measured along the window's own axes.  Both must be positive.
	HalfWidth, HalfHeight float64

	// Angle is the counter-clockwise rotation of the window's axes
	// against the world axes, in degrees.
	Angle float64
}

// FromRect returns the unrotated window covering r.
func FromRect(r rect.Rect) Window {
	return Window{
		Center:     vec.Vec2{X: (r.LLx + r.URx) / 2, Y: (r.LLy + r.URy) / 2},
		HalfWidth:  (r.URx - r.LLx) / 2,
		HalfHeight: (r.URy - r.LLy) / 2,
	}
}

// Validate checks that w has positive, finite dimensions.
func (w Window) Validate() error {
	for _, x := range []float64{w.Center.X, w.Center.Y, w.HalfWidth, w.HalfHeight, w.Angle} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: non-finite value %g", ErrInvalidWindow, x)
		}
	}
	if w.HalfWidth <= 0 || w.HalfHeight <= 0 {
		return fmt.Errorf("%w: half-size %g×%g", ErrInvalidWindow, w.HalfWidth, w.HalfHeight)
	}
	return nil
}

// Normalize returns the matrix which maps the window onto [-1,1]×[-1,1].
// The window centre maps to the origin and the window's local axes map
// to the coordinate axes.
func (w Window) Normalize() linalg.Mat3 {
	return linalg.Translate(-w.Center.X, -w.Center.Y).
		Mul(linalg.RotateDeg(-w.Angle)).
		Mul(linalg.Scale(1/w.HalfWidth, 1/w.HalfHeight))
}

// Denormalize returns the inverse of [Window.Normalize].
func (w Window) Denormalize() linalg.Mat3 {
	return linalg.Scale(w.HalfWidth, w.HalfHeight).
		Mul(linalg.RotateDeg(w.Angle)).
		Mul(linalg.Translate(w.Center.X, w.Center.Y))
}

// Corners returns the world coordinates of the window corners, in
// counter-clockwise order starting at the bottom left.
func (w Window) Corners() [4]vec.Vec2 {
	D := w.Denormalize()
	return [4]vec.Vec2{
		D.Apply(vec.Vec2{X: -1, Y: -1}),
		D.Apply(vec.Vec2{X: 1, Y: -1}),
		D.Apply(vec.Vec2{X: 1, Y: 1}),
		D.Apply(vec.Vec2{X: -1, Y: 1}),
	}
}

// Bounds returns the axis-aligned world bounding box of the window.
func (w Window) Bounds() rect.Rect {
	cs := w.Corners()
	r := rect.Rect{LLx: cs[0].X, LLy: cs[0].Y, URx: cs[0].X, URy: cs[0].Y}
	for _, c := range cs[1:] {
		r.LLx = min(r.LLx, c.X)
		r.LLy = min(r.LLy, c.Y)
		r.URx = max(r.URx, c.X)
		r.URy = max(r.URy, c.Y)
	}
	return r
}

// Viewport is the device area onto which the window is mapped.  The origin
// is at the top-left corner and y increases downwards.
type Viewport struct {
	Width, Height float64
}

// Validate checks that v has positive, finite dimensions.
func (v Viewport) Validate() error {
	if !(v.Width > 0 && v.Height > 0) || math.IsInf(v.Width, 0) || math.IsInf(v.Height, 0) {
		return fmt.Errorf("%w: %g×%g", ErrInvalidViewport, v.Width, v.Height)
	}
	return nil
}

// Matrix returns the map from normalised coordinates to device
// coordinates.  The point (-1, 1) maps to (0, 0) and (1, -1) maps to
// (Width, Height).
func (v Viewport) Matrix() linalg.Mat3 {
	return linalg.Scale(v.Width/2, -v.Height/2).Mul(linalg.Translate(v.Width/2, v.Height/2))
}

// Unmatrix returns the inverse of [Viewport.Matrix].
func (v Viewport) Unmatrix() linalg.Mat3 {
	return linalg.Translate(-v.Width/2, -v.Height/2).Mul(linalg.Scale(2/v.Width, -2/v.Height))
}

// CTM returns [Viewport.Matrix] in the form used by rasterisers and PDF
// content streams.
func (v Viewport) CTM() matrix.Matrix {
	return v.Matrix().Affine()
}

// Rect returns the device rectangle covered by v.
func (v Viewport) Rect() rect.Rect {
	return rect.Rect{URx: v.Width, URy: v.Height}
}

// Transform returns the complete map from world to device coordinates.
func Transform(w Window, v Viewport) linalg.Mat3 {
	return w.Normalize().Mul(v.Matrix())
}

// WorldToNormalized maps a world point into normalised window coordinates.
func WorldToNormalized(p vec.Vec2, w Window) vec.Vec2 {
	return w.Normalize().Apply(p)
}

// NormalizedToViewport maps a normalised point into device coordinates.
func NormalizedToViewport(p vec.Vec2, v Viewport) vec.Vec2 {
	return vec.Vec2{
		X: (p.X + 1) / 2 * v.Width,
		Y: (1 - p.Y) / 2 * v.Height,
	}
}

// WorldToViewport maps a world point into device coordinates.
func WorldToViewport(p vec.Vec2, w Window, v Viewport) vec.Vec2 {
	return NormalizedToViewport(WorldToNormalized(p, w), v)
}

// ViewportToWorld maps a device point back into world coordinates.
func ViewportToWorld(p vec.Vec2, w Window, v Viewport) (vec.Vec2, error) {
	if err := w.Validate(); err != nil {
		return vec.Vec2{}, err
	}
	if err := v.Validate(); err != nil {
		return vec.Vec2{}, err
	}
	inv, err := Transform(w, v).Inv()
	if err != nil {
		return vec.Vec2{}, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	return inv.Apply(p), nil
}
