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

// Package objfile reads and writes scenes in a subset of the Wavefront OBJ
// format.
//
// The following statements are understood:
//
//	v x y [z]            vertex
//	o name               start a new object
//	p i                  point
//	l i j                line segment
//	l i j k ... i        closed polygon (first index repeated at the end)
//	l i j k ...          Bezier curve with 3n+1 control points,
//	                     otherwise open polygon
//	usemtl filled        closed polygons of the current object are filled
//	cstype bezier        following l statements are curves
//	cstype bspline
//	cstype polyline      following l statements are open polygons
//	cstype wireframe     following l statements are edges of one 3D
//	                     object, p statements are its isolated vertices
//	w i j [angle]        window, given by two opposite corners
//	# ...                comment
//
// Vertex indices start at 1.  Negative indices count back from the most
// recently defined vertex.  The usemtl and cstype settings apply until the
// next o statement.
//
// Object names extend to the end of the line.  They cannot contain "#"
// or line breaks, see [CheckName].
package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/linalg"
	"seehuhn.de/go/sketch/object"
	"seehuhn.de/go/sketch/window"
)

// ErrFormat is returned when a scene file cannot be parsed.
var ErrFormat = errors.New("objfile: invalid scene file")

// ErrName is returned for object names which cannot be stored in a scene
// file.
var ErrName = errors.New("objfile: invalid object name")

// CheckName reports whether name survives a round trip through a scene
// file.  Names must not contain "#" or line breaks, and must not start or
// end with white space.
func CheckName(name string) error {
	if strings.ContainsAny(name, "#\n\r") || strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q", ErrName, name)
	}
	return nil
}

// Object is a named shape in a scene file.
type Object struct {
	Name  string
	Shape object.Shape
}

// Scene is the content of a scene file.
type Scene struct {
	Objects []Object

	// Window is nil if the file does not specify a window.
	Window *window.Window
}

type elementKind int

const (
	plainElements elementKind = iota
	bezierElements
	bsplineElements
	polylineElements
	wireframeElements
)

type decoder struct {
	vertices []linalg.Vec3
	scene    *Scene

	name   string
	filled bool
	kind   elementKind

	// edges and isolated vertices of the pending wireframe, as global
	// vertex indices
	edges    [][2]int
	isolated []int
	wire     bool
}

// Decode reads a scene from r.
func Decode(r io.Reader) (*Scene, error) {
	d := &decoder{scene: &Scene{}}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "o" {
			// names may contain runs of white space
			line = strings.TrimSpace(line)
			fields = []string{"o", strings.TrimSpace(line[1:])}
		}
		if err := d.statement(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := d.flush(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo, err)
	}
	return d.scene, nil
}

func (d *decoder) statement(fields []string) error {
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "v":
		if len(args) < 2 || len(args) > 4 {
			return fmt.Errorf("%w: v needs 2 to 4 coordinates", ErrFormat)
		}
		var xyz [3]float64
		for i := range min(len(args), 3) {
			x, err := strconv.ParseFloat(args[i], 64)
			if err != nil {
				return fmt.Errorf("%w: invalid coordinate %q", ErrFormat, args[i])
			}
			xyz[i] = x
		}
		d.vertices = append(d.vertices, linalg.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})

	case "o":
		if err := d.flush(); err != nil {
			return err
		}
		d.name = args[0]
		d.filled = false
		d.kind = plainElements

	case "usemtl":
		if len(args) != 1 {
			return fmt.Errorf("%w: usemtl needs one argument", ErrFormat)
		}
		d.filled = args[0] == "filled"

	case "cstype":
		if len(args) != 1 {
			return fmt.Errorf("%w: cstype needs one argument", ErrFormat)
		}
		kind := plainElements
		switch args[0] {
		case "bezier":
			kind = bezierElements
		case "bspline":
			kind = bsplineElements
		case "polyline":
			kind = polylineElements
		case "wireframe":
			kind = wireframeElements
		default:
			return fmt.Errorf("%w: unknown cstype %q", ErrFormat, args[0])
		}
		if d.kind == wireframeElements && kind != wireframeElements {
			if err := d.flush(); err != nil {
				return err
			}
		}
		d.kind = kind

	case "p":
		if len(args) != 1 {
			return fmt.Errorf("%w: p needs one index", ErrFormat)
		}
		idx, err := d.indices(args)
		if err != nil {
			return err
		}
		if d.kind == wireframeElements {
			d.isolated = append(d.isolated, idx[0])
			d.wire = true
			return nil
		}
		return d.add(object.NewPoint(d.vertices[idx[0]].XY()))

	case "l":
		idx, err := d.indices(args)
		if err != nil {
			return err
		}
		return d.element(idx)

	case "w":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("%w: w needs two indices and an optional angle", ErrFormat)
		}
		idx, err := d.indices(args[:2])
		if err != nil {
			return err
		}
		a, b := d.vertices[idx[0]].XY(), d.vertices[idx[1]].XY()
		w := window.FromRect(rect.Rect{
			LLx: min(a.X, b.X), LLy: min(a.Y, b.Y),
			URx: max(a.X, b.X), URy: max(a.Y, b.Y),
		})
		if len(args) == 3 {
			w.Angle, err = strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("%w: invalid angle %q", ErrFormat, args[2])
			}
		}
		if err := w.Validate(); err != nil {
			return err
		}
		d.scene.Window = &w

	default:
		// Other OBJ statements (vt, vn, f, g, s, ...) carry nothing we can
		// display.
	}
	return nil
}

// element interprets the vertex list of an l statement.
func (d *decoder) element(idx []int) error {
	if len(idx) < 2 {
		return fmt.Errorf("%w: l needs at least two indices", ErrFormat)
	}

	switch d.kind {
	case wireframeElements:
		for i := 1; i < len(idx); i++ {
			d.edges = append(d.edges, [2]int{idx[i-1], idx[i]})
		}
		d.wire = true
		return nil
	case bezierElements:
		return d.add(object.NewCurve(object.Bezier, d.points(idx)))
	case bsplineElements:
		return d.add(object.NewCurve(object.BSpline, d.points(idx)))
	case polylineElements:
		return d.add(object.NewPolygon(d.points(idx), true, false))
	}

	n := len(idx)
	switch {
	case n == 2:
		ps := d.points(idx)
		return d.add(object.NewLine(ps[0], ps[1]))
	case idx[0] == idx[n-1]:
		return d.add(object.NewPolygon(d.points(idx[:n-1]), false, d.filled))
	case (n-1)%3 == 0:
		return d.add(object.NewCurve(object.Bezier, d.points(idx)))
	default:
		return d.add(object.NewPolygon(d.points(idx), true, false))
	}
}

// flush emits the pending wireframe, if any.  Vertices keep the order
// in which they appear in the file.
func (d *decoder) flush() error {
	if !d.wire {
		return nil
	}
	used := make(map[int]int)
	for _, e := range d.edges {
		used[e[0]] = 0
		used[e[1]] = 0
	}
	for _, k := range d.isolated {
		used[k] = 0
	}
	globals := slices.Sorted(maps.Keys(used))
	vs := make([]linalg.Vec3, len(globals))
	for k, g := range globals {
		used[g] = k
		vs[k] = d.vertices[g]
	}
	var edges [][2]int
	for _, e := range d.edges {
		edges = append(edges, [2]int{used[e[0]], used[e[1]]})
	}
	d.edges = nil
	d.isolated = nil
	d.wire = false
	return d.add(object.NewWireframe(vs, edges))
}

func (d *decoder) add(s object.Shape, err error) error {
	if err != nil {
		return err
	}
	d.scene.Objects = append(d.scene.Objects, Object{Name: d.name, Shape: s})
	return nil
}

// indices converts OBJ vertex references into 0-based indices.
func (d *decoder) indices(args []string) ([]int, error) {
	res := make([]int, len(args))
	for i, a := range args {
		// Face statements may carry texture and normal indices as in
		// "3/1/2"; only the vertex index is used.
		if j := strings.IndexByte(a, '/'); j >= 0 {
			a = a[:j]
		}
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid index %q", ErrFormat, a)
		}
		if k < 0 {
			k += len(d.vertices)
		} else {
			k--
		}
		if k < 0 || k >= len(d.vertices) {
			return nil, fmt.Errorf("%w: vertex index %s out of range", ErrFormat, args[i])
		}
		res[i] = k
	}
	return res, nil
}

func (d *decoder) points(idx []int) []vec.Vec2 {
	res := make([]vec.Vec2, len(idx))
	for i, k := range idx {
		res[i] = d.vertices[k].XY()
	}
	return res
}
