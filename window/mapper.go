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

package window

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/linalg"
)

// DefaultMinHalfSize is the smallest half-width or half-height a window
// can be zoomed down to, unless configured otherwise.
const DefaultMinHalfSize = 1e-6

// Mapper holds the current window and viewport and implements the
// interactive window operations.  All operations validate their
// arguments first and leave the state unchanged on error.
type Mapper struct {
	win     Window
	initial Window
	vp      Viewport
	minHalf float64
}

// NewMapper returns a mapper showing the window w in the viewport v.
// Zooming never shrinks the window below minHalf; a non-positive value
// selects [DefaultMinHalfSize].
func NewMapper(w Window, v Viewport, minHalf float64) (*Mapper, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if !(minHalf > 0) || math.IsInf(minHalf, 0) {
		minHalf = DefaultMinHalfSize
	}
	w.Angle = normalizeAngle(w.Angle)
	return &Mapper{win: w, initial: w, vp: v, minHalf: minHalf}, nil
}

// Window returns the current window.
func (m *Mapper) Window() Window {
	return m.win
}

// Viewport returns the current viewport.
func (m *Mapper) Viewport() Viewport {
	return m.vp
}

// MinHalfSize returns the zoom limit of the mapper.
func (m *Mapper) MinHalfSize() float64 {
	return m.minHalf
}

// SetWindow replaces the current window.
func (m *Mapper) SetWindow(w Window) error {
	if err := w.Validate(); err != nil {
		return err
	}
	w.Angle = normalizeAngle(w.Angle)
	m.win = w
	return nil
}

// SetViewport replaces the viewport, for example after the host display
// was resized.
func (m *Mapper) SetViewport(v Viewport) error {
	if err := v.Validate(); err != nil {
		return err
	}
	m.vp = v
	return nil
}

// Pan moves the window by dx along its own horizontal axis and by dy along
// its own vertical axis, in world units.  If the window is rotated, "up"
// is the window's up direction, not the world's.
func (m *Mapper) Pan(dx, dy float64) error {
	if !finite(dx) || !finite(dy) {
		return fmt.Errorf("%w: pan by (%g, %g)", ErrInvalidWindow, dx, dy)
	}
	delta := linalg.RotateDeg(m.win.Angle).Apply(vec.Vec2{X: dx, Y: dy})
	w := m.win
	w.Center = w.Center.Add(delta)
	if err := w.Validate(); err != nil {
		return err
	}
	m.win = w
	return nil
}

// Zoom multiplies both half-sizes of the window by f.  Factors below 1
// zoom in.  The factor is limited so that neither half-size drops below
// the configured minimum; the aspect ratio is always preserved.
func (m *Mapper) Zoom(f float64) error {
	w, err := m.zoomed(f)
	if err != nil {
		return err
	}
	m.win = w
	return nil
}

// ZoomAt zooms by the factor f, keeping the world point under the device
// position p in place.
func (m *Mapper) ZoomAt(p vec.Vec2, f float64) error {
	before, err := ViewportToWorld(p, m.win, m.vp)
	if err != nil {
		return err
	}
	w, err := m.zoomed(f)
	if err != nil {
		return err
	}
	after, err := ViewportToWorld(p, w, m.vp)
	if err != nil {
		return err
	}
	w.Center = w.Center.Add(before.Sub(after))
	if err := w.Validate(); err != nil {
		return err
	}
	m.win = w
	return nil
}

func (m *Mapper) zoomed(f float64) (Window, error) {
	if !(f > 0) || math.IsInf(f, 0) {
		return Window{}, fmt.Errorf("%w: %g", ErrInvalidZoom, f)
	}
	w := m.win
	if cur := min(w.HalfWidth, w.HalfHeight); f < 1 && cur*f < m.minHalf {
		if cur <= m.minHalf {
			return w, nil
		}
		f = m.minHalf / cur
	}
	w.HalfWidth *= f
	w.HalfHeight *= f
	if err := w.Validate(); err != nil {
		return Window{}, fmt.Errorf("%w: %v", ErrInvalidZoom, err)
	}
	return w, nil
}

// Rotate turns the window counter-clockwise by deg degrees.  The stored
// angle is kept in the range [0, 360).
func (m *Mapper) Rotate(deg float64) error {
	if !finite(deg) {
		return fmt.Errorf("%w: rotate by %g", ErrInvalidWindow, deg)
	}
	m.win.Angle = normalizeAngle(m.win.Angle + deg)
	return nil
}

// Reset restores the window the mapper was created with.
func (m *Mapper) Reset() {
	m.win = m.initial
}

// Fit centres the window on the world rectangle r and resizes it so that
// r is fully visible, with the given relative margin on every side.  The
// window angle and aspect ratio are kept.
func (m *Mapper) Fit(r rect.Rect, margin float64) error {
	for _, x := range []float64{r.LLx, r.LLy, r.URx, r.URy, margin} {
		if !finite(x) {
			return fmt.Errorf("%w: fit to %v", ErrInvalidWindow, r)
		}
	}
	if r.URx < r.LLx || r.URy < r.LLy {
		return fmt.Errorf("%w: empty rectangle %v", ErrInvalidWindow, r)
	}
	w := m.win
	w.Center = vec.Vec2{X: (r.LLx + r.URx) / 2, Y: (r.LLy + r.URy) / 2}

	// extent of r along the window axes
	R := linalg.RotateDeg(-w.Angle)
	var ex, ey float64
	for _, c := range []vec.Vec2{{X: r.LLx, Y: r.LLy}, {X: r.URx, Y: r.LLy}, {X: r.URx, Y: r.URy}, {X: r.LLx, Y: r.URy}} {
		q := R.Apply(c.Sub(w.Center))
		ex = max(ex, math.Abs(q.X))
		ey = max(ey, math.Abs(q.Y))
	}
	ex *= 1 + max(margin, 0)
	ey *= 1 + max(margin, 0)

	aspect := m.win.HalfWidth / m.win.HalfHeight
	hw := max(ex, ey*aspect, m.minHalf*max(aspect, 1))
	w.HalfWidth = hw
	w.HalfHeight = hw / aspect
	if err := w.Validate(); err != nil {
		return err
	}
	m.win = w
	return nil
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
