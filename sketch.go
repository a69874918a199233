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

// Package sketch implements the core of a 2D vector graphics editor.
//
// A [Manager] owns a scene of objects, a window into world space and a
// viewport.  Objects are transformed in world space.  To produce a frame,
// every object is mapped into normalised window coordinates, clipped
// against the square [-1,1]×[-1,1] and mapped to device coordinates.  The
// result is a [display.List], which is all a renderer needs.
//
// The pipeline itself is the pure function [Render], which only depends
// on an explicit [Session] value.
package sketch

//go:generate go run ./testcases/export

import (
	"errors"

	"seehuhn.de/go/sketch/clip"
	"seehuhn.de/go/sketch/display"
	"seehuhn.de/go/sketch/linalg"
	"seehuhn.de/go/sketch/object"
	"seehuhn.de/go/sketch/transform"
	"seehuhn.de/go/sketch/window"
)

// Errors returned by the scene manager.  Use [errors.Is] to test for them.
var (
	ErrInvalidTransform = linalg.ErrInvalidTransform
	ErrInvalidScale     = transform.ErrInvalidScale
	ErrInvalidZoom      = window.ErrInvalidZoom
	ErrInvalidObject    = object.ErrInvalidObject
	ErrObjectNotFound   = errors.New("sketch: object not found")
	ErrInvalidCommand   = errors.New("sketch: invalid command")
)

// Session is the complete state the rendering pipeline depends on.
type Session struct {
	Objects  []object.Object
	Window   window.Window
	Viewport window.Viewport
}

// RenderOptions control the clipping stage of [Render].
type RenderOptions struct {
	CurveSegments int
	LineClipper   clip.Method
}

// Render produces the display list for s.  Objects are processed in
// order; objects without visible parts are left out.  Render does not
// modify s.  If the window or the viewport of s is invalid, the result
// is empty.
func Render(s Session, opts RenderOptions) display.List {
	if err := s.Window.Validate(); err != nil {
		Logger().Debug("render skipped", "err", err)
		return nil
	}
	if err := s.Viewport.Validate(); err != nil {
		Logger().Debug("render skipped", "err", err)
		return nil
	}

	N := s.Window.Normalize()
	V := s.Viewport.Matrix()
	clipOpts := clip.Options{
		CurveSegments: opts.CurveSegments,
		Line:          opts.LineClipper,
	}

	var res display.List
	for _, o := range s.Objects {
		prims := clip.Shape(object.Transform(o.Shape, N), clipOpts)
		if len(prims) == 0 {
			continue
		}
		for i := range prims {
			prims[i] = prims[i].Map(V.Apply)
		}
		res = append(res, display.Item{ID: o.ID, Name: o.Name, Primitives: prims})
	}
	return res
}
