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

package sketch

import (
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/clip"
	"seehuhn.de/go/sketch/display"
	"seehuhn.de/go/sketch/object"
	"seehuhn.de/go/sketch/objfile"
	"seehuhn.de/go/sketch/transform"
	"seehuhn.de/go/sketch/window"
)

// Manager owns a scene together with its window and viewport.
//
// A Manager is not safe for concurrent use.  Every method which changes
// the state validates its arguments first; if an error is returned, the
// state is unchanged.
type Manager struct {
	objects []object.Object
	nextID  object.ID
	mapper  *window.Mapper
	opts    RenderOptions
}

// New returns a scene manager with an empty scene.
func New(cfg Config) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mapper, err := window.NewMapper(cfg.Window.Window(), cfg.Viewport.Viewport(), cfg.MinHalfSize)
	if err != nil {
		return nil, err
	}
	return &Manager{
		nextID: 1,
		mapper: mapper,
		opts: RenderOptions{
			CurveSegments: cfg.CurveSegments,
			LineClipper:   cfg.LineClipper,
		},
	}, nil
}

// AddObject adds a shape to the front of the scene and returns the
// identifier of the new object.  The shape is copied.  The name must be
// acceptable to [objfile.CheckName], so that the scene can be saved.
func (m *Manager) AddObject(name string, s object.Shape) (object.ID, error) {
	if err := object.Validate(s); err != nil {
		return 0, err
	}
	if err := objfile.CheckName(name); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidObject, err)
	}
	id := m.nextID
	m.nextID++
	m.objects = append(m.objects, object.Object{ID: id, Name: name, Shape: object.Clone(s)})
	Logger().Debug("object added", "id", id, "name", name, "kind", object.KindOf(s))
	return id, nil
}

// RemoveObject deletes an object from the scene.
func (m *Manager) RemoveObject(id object.ID) error {
	i, err := m.index(id)
	if err != nil {
		return err
	}
	m.objects = slices.Delete(m.objects, i, i+1)
	Logger().Debug("object removed", "id", id)
	return nil
}

func (m *Manager) index(id object.ID) (int, error) {
	for i := range m.objects {
		if m.objects[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrObjectNotFound, id)
}

// Object returns a copy of the object with the given identifier.
func (m *Manager) Object(id object.ID) (object.Object, error) {
	i, err := m.index(id)
	if err != nil {
		return object.Object{}, err
	}
	return m.objects[i].Clone(), nil
}

// Objects returns copies of all objects, in display order.
func (m *Manager) Objects() []object.Object {
	res := make([]object.Object, len(m.objects))
	for i, o := range m.objects {
		res[i] = o.Clone()
	}
	return res
}

// Len returns the number of objects in the scene.
func (m *Manager) Len() int {
	return len(m.objects)
}

// Clear removes all objects.  Identifiers are not reused.
func (m *Manager) Clear() {
	m.objects = nil
	Logger().Debug("scene cleared")
}

// Raise moves an object one step towards the front of the display order.
func (m *Manager) Raise(id object.ID) error {
	i, err := m.index(id)
	if err != nil {
		return err
	}
	if i < len(m.objects)-1 {
		m.objects[i], m.objects[i+1] = m.objects[i+1], m.objects[i]
	}
	return nil
}

// Lower moves an object one step towards the back of the display order.
func (m *Manager) Lower(id object.ID) error {
	i, err := m.index(id)
	if err != nil {
		return err
	}
	if i > 0 {
		m.objects[i], m.objects[i-1] = m.objects[i-1], m.objects[i]
	}
	return nil
}

// LoadScene replaces all objects by the content of a scene file.  If the
// file specifies a window, it becomes the current window and the target
// of [Manager.ResetWindow].  Previously used identifiers are not reused.
func (m *Manager) LoadScene(sc *objfile.Scene) error {
	for _, o := range sc.Objects {
		if err := object.Validate(o.Shape); err != nil {
			return fmt.Errorf("object %q: %w", o.Name, err)
		}
		if err := objfile.CheckName(o.Name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidObject, err)
		}
	}
	if sc.Window != nil {
		mapper, err := window.NewMapper(*sc.Window, m.mapper.Viewport(), m.mapper.MinHalfSize())
		if err != nil {
			return err
		}
		m.mapper = mapper
	}

	objects := make([]object.Object, len(sc.Objects))
	for i, o := range sc.Objects {
		objects[i] = object.Object{ID: m.nextID, Name: o.Name, Shape: object.Clone(o.Shape)}
		m.nextID++
	}
	m.objects = objects
	Logger().Info("scene replaced", "objects", len(objects))
	return nil
}

// SceneFile returns the current scene in a form which can be written with
// [objfile.Encode].
func (m *Manager) SceneFile() *objfile.Scene {
	w := m.mapper.Window()
	sc := &objfile.Scene{Window: &w}
	for _, o := range m.objects {
		sc.Objects = append(sc.Objects, objfile.Object{Name: o.Name, Shape: object.Clone(o.Shape)})
	}
	return sc
}

// Translate moves an object by (dx, dy).
func (m *Manager) Translate(id object.ID, dx, dy float64) error {
	return m.Transform(id, transform.Translate{DX: dx, DY: dy})
}

// Scale scales an object about the given pivot.
func (m *Manager) Scale(id object.ID, sx, sy float64, pivot transform.Pivot) error {
	return m.Transform(id, transform.Scale{SX: sx, SY: sy, Pivot: pivot})
}

// Rotate turns an object counter-clockwise about the given pivot.
func (m *Manager) Rotate(id object.ID, deg float64, pivot transform.Pivot) error {
	return m.Transform(id, transform.Rotate{Deg: deg, Pivot: pivot})
}

// Transform applies a sequence of operations to an object, as one
// composed transformation.
func (m *Manager) Transform(id object.ID, ops ...transform.Op) error {
	i, err := m.index(id)
	if err != nil {
		return err
	}
	if err := transform.Apply(&m.objects[i], ops...); err != nil {
		Logger().Debug("transform rejected", "id", id, "err", err)
		return err
	}
	Logger().Debug("object transformed", "id", id, "ops", ops)
	return nil
}

// Transform3 applies a sequence of 3D operations to a wireframe object.
func (m *Manager) Transform3(id object.ID, ops ...transform.Op3) error {
	i, err := m.index(id)
	if err != nil {
		return err
	}
	if err := transform.Apply3(&m.objects[i], ops...); err != nil {
		Logger().Debug("transform rejected", "id", id, "err", err)
		return err
	}
	Logger().Debug("object transformed", "id", id, "ops", ops)
	return nil
}

// Window returns the current window.
func (m *Manager) Window() window.Window {
	return m.mapper.Window()
}

// SetWindow replaces the current window.
func (m *Manager) SetWindow(w window.Window) error {
	return m.logWindow("set", m.mapper.SetWindow(w))
}

// Viewport returns the viewport.
func (m *Manager) Viewport() window.Viewport {
	return m.mapper.Viewport()
}

// SetViewport changes the size of the viewport.
func (m *Manager) SetViewport(v window.Viewport) error {
	return m.logWindow("viewport", m.mapper.SetViewport(v))
}

// Pan moves the window along its own axes.
func (m *Manager) Pan(dx, dy float64) error {
	return m.logWindow("pan", m.mapper.Pan(dx, dy))
}

// Zoom scales the window by f.  Factors below 1 zoom in.
func (m *Manager) Zoom(f float64) error {
	return m.logWindow("zoom", m.mapper.Zoom(f))
}

// ZoomAt zooms by f, keeping the world point under the device position p
// in place.
func (m *Manager) ZoomAt(p vec.Vec2, f float64) error {
	return m.logWindow("zoom", m.mapper.ZoomAt(p, f))
}

// RotateWindow turns the window counter-clockwise by deg degrees.
func (m *Manager) RotateWindow(deg float64) error {
	return m.logWindow("rotate", m.mapper.Rotate(deg))
}

// ResetWindow restores the initial window.
func (m *Manager) ResetWindow() {
	m.mapper.Reset()
	m.logWindow("reset", nil)
}

// FitWindow centres the window on the scene and resizes it so that all
// objects are visible.  An empty scene leaves the window unchanged.
func (m *Manager) FitWindow(margin float64) error {
	if len(m.objects) == 0 {
		return nil
	}
	r := object.Bounds(m.objects[0].Shape)
	for _, o := range m.objects[1:] {
		b := object.Bounds(o.Shape)
		r = rect.Rect{
			LLx: math.Min(r.LLx, b.LLx),
			LLy: math.Min(r.LLy, b.LLy),
			URx: math.Max(r.URx, b.URx),
			URy: math.Max(r.URy, b.URy),
		}
	}
	return m.logWindow("fit", m.mapper.Fit(r, margin))
}

func (m *Manager) logWindow(op string, err error) error {
	if err != nil {
		Logger().Debug("window change rejected", "op", op, "err", err)
		return err
	}
	w := m.mapper.Window()
	Logger().Debug("window changed", "op", op,
		"center", w.Center, "half_width", w.HalfWidth, "half_height", w.HalfHeight, "angle", w.Angle)
	return nil
}

// DeviceToWorld maps a device position, for example a mouse click, back
// into world coordinates.
func (m *Manager) DeviceToWorld(p vec.Vec2) (vec.Vec2, error) {
	return window.ViewportToWorld(p, m.mapper.Window(), m.mapper.Viewport())
}

// LineClipper returns the current line clipping algorithm.
func (m *Manager) LineClipper() clip.Method {
	return m.opts.LineClipper
}

// SetLineClipper selects the line clipping algorithm.
func (m *Manager) SetLineClipper(method clip.Method) error {
	if _, err := method.MarshalText(); err != nil {
		return err
	}
	m.opts.LineClipper = method
	return nil
}

// Session returns a snapshot of the state the rendering pipeline depends
// on.  The snapshot shares no memory with m.
func (m *Manager) Session() Session {
	return Session{
		Objects:  m.Objects(),
		Window:   m.mapper.Window(),
		Viewport: m.mapper.Viewport(),
	}
}

// RenderFrame returns the display list for the current state.
func (m *Manager) RenderFrame() display.List {
	s := Session{
		Objects:  m.objects,
		Window:   m.mapper.Window(),
		Viewport: m.mapper.Viewport(),
	}
	return Render(s, m.opts)
}

// Pick returns the front-most object which has a visible part within tol
// device units of the device position p.  Filled polygons also match
// anywhere inside.
func (m *Manager) Pick(p vec.Vec2, tol float64) (object.ID, bool) {
	list := m.RenderFrame()
	for i := len(list) - 1; i >= 0; i-- {
		for _, prim := range list[i].Primitives {
			if hits(prim, p, tol) {
				return list[i].ID, true
			}
		}
	}
	return 0, false
}

func hits(prim display.Primitive, p vec.Vec2, tol float64) bool {
	pts := prim.Points
	switch prim.Kind {
	case display.Point:
		return pts[0].Sub(p).Length() <= tol
	case display.ClosedPolygon:
		if prim.Filled && inside(pts, p) {
			return true
		}
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	for i := 1; i < len(pts); i++ {
		if segmentDistance(pts[i-1], pts[i], p) <= tol {
			return true
		}
	}
	return false
}

func segmentDistance(a, b, p vec.Vec2) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := min(max(p.Sub(a).Dot(d)/l2, 0), 1)
	return p.Sub(a.Add(d.Mul(t))).Length()
}

// inside implements the even-odd point-in-polygon test.
func inside(vs []vec.Vec2, p vec.Vec2) bool {
	in := false
	j := len(vs) - 1
	for i := range vs {
		a, b := vs[i], vs[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}
