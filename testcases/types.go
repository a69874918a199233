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

// Package testcases holds a catalogue of reference scenes.
//
// The scenes are used by the tests and benchmarks of the other packages,
// and by the commands in the subdirectories, which write the scenes and
// their rendered frames to testdata/.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/linalg"
	"seehuhn.de/go/sketch/object"
	"seehuhn.de/go/sketch/objfile"
	"seehuhn.de/go/sketch/window"
)

// Scene defines a single reference scene.
type Scene struct {
	Name     string           // lowercase a-z and _ only
	Objects  []objfile.Object // the scene, in drawing order
	Window   window.Window    // zero value means DefaultWindow
	Viewport window.Viewport  // zero value means DefaultViewport
	Commands []string         // editing commands, applied before rendering
	Want     Expect
}

// Expect describes the display list of a scene, after all commands have
// been applied.
type Expect struct {
	Items      int // number of visible objects
	Primitives int // total number of primitives
}

// DefaultWindow shows the world rectangle [-20,20]×[-15,15].
var DefaultWindow = window.Window{HalfWidth: 20, HalfHeight: 15}

// DefaultViewport is the device area used by most scenes.
var DefaultViewport = window.Viewport{Width: 160, Height: 120}

// Win returns the initial window of s.
func (s Scene) Win() window.Window {
	if s.Window == (window.Window{}) {
		return DefaultWindow
	}
	return s.Window
}

// View returns the viewport of s.
func (s Scene) View() window.Viewport {
	if s.Viewport == (window.Viewport{}) {
		return DefaultViewport
	}
	return s.Viewport
}

// File returns s in the form used by scene files.
func (s Scene) File() *objfile.Scene {
	w := s.Win()
	return &objfile.Scene{Objects: s.Objects, Window: &w}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// pts converts a flat list of coordinates into points.
func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(xy)/2)
	for i := range res {
		res[i] = pt(xy[2*i], xy[2*i+1])
	}
	return res
}

func point(name string, x, y float64) objfile.Object {
	return objfile.Object{Name: name, Shape: object.Point{At: pt(x, y)}}
}

func line(name string, x0, y0, x1, y1 float64) objfile.Object {
	return objfile.Object{Name: name, Shape: object.Line{A: pt(x0, y0), B: pt(x1, y1)}}
}

func polygon(name string, filled bool, xy ...float64) objfile.Object {
	return objfile.Object{Name: name, Shape: object.Polygon{Vertices: pts(xy...), Filled: filled}}
}

func polyline(name string, xy ...float64) objfile.Object {
	return objfile.Object{Name: name, Shape: object.Polygon{Vertices: pts(xy...), Open: true}}
}

func curve(name string, kind object.CurveKind, xy ...float64) objfile.Object {
	return objfile.Object{Name: name, Shape: object.Curve{Kind: kind, Control: pts(xy...)}}
}

// tetrahedron returns a wireframe with apex (x, y, 10) over the base
// triangle (x-10, y-10), (x+10, y-10), (x, y+10).
func tetrahedron(name string, x, y float64) objfile.Object {
	return objfile.Object{Name: name, Shape: object.Wireframe{
		Vertices: []linalg.Vec3{
			{X: x - 10, Y: y - 10},
			{X: x + 10, Y: y - 10},
			{X: x, Y: y + 10},
			{X: x, Y: y, Z: 10},
		},
		Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
	}}
}
