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

package objfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/linalg"
	"seehuhn.de/go/sketch/object"
)

// Encode writes sc to w.  All vertices are written first, followed by the
// objects which refer to them.
func Encode(w io.Writer, sc *Scene) error {
	e := &encoder{}

	if win := sc.Window; win != nil {
		if err := win.Validate(); err != nil {
			return err
		}
		a := e.vertex2(vec.Vec2{X: win.Center.X - win.HalfWidth, Y: win.Center.Y - win.HalfHeight})
		b := e.vertex2(vec.Vec2{X: win.Center.X + win.HalfWidth, Y: win.Center.Y + win.HalfHeight})
		e.obj("o window")
		if win.Angle != 0 {
			e.obj("w %d %d %s", a, b, num(win.Angle))
		} else {
			e.obj("w %d %d", a, b)
		}
	}

	for _, o := range sc.Objects {
		if err := object.Validate(o.Shape); err != nil {
			return fmt.Errorf("object %q: %w", o.Name, err)
		}
		if err := CheckName(o.Name); err != nil {
			return err
		}
		e.obj("o %s", o.Name)

		switch s := o.Shape.(type) {
		case object.Point:
			e.obj("p %d", e.vertex2(s.At))
		case object.Line:
			e.obj("l %d %d", e.vertex2(s.A), e.vertex2(s.B))
		case object.Polygon:
			idx := e.vertices2(s.Vertices)
			if s.Open {
				e.obj("cstype polyline")
				e.obj("l %s", joinInts(idx))
				break
			}
			if s.Filled {
				e.obj("usemtl filled")
			}
			e.obj("l %s %d", joinInts(idx), idx[0])
		case object.Curve:
			e.obj("cstype %s", s.Kind)
			e.obj("l %s", joinInts(e.vertices2(s.Control)))
		case object.Wireframe:
			base := len(e.vertices) + 1
			for _, v := range s.Vertices {
				e.vertex3(v)
			}
			e.obj("cstype wireframe")
			used := make([]bool, len(s.Vertices))
			for _, edge := range s.Edges {
				e.obj("l %d %d", base+edge[0], base+edge[1])
				used[edge[0]] = true
				used[edge[1]] = true
			}
			for i, u := range used {
				if !u {
					e.obj("p %d", base+i)
				}
			}
		}
	}

	bw := bufio.NewWriter(w)
	for _, line := range e.vertices {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	for _, line := range e.objects {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

type encoder struct {
	vertices []string
	objects  []string
}

func (e *encoder) vertex2(p vec.Vec2) int {
	e.vertices = append(e.vertices, "v "+num(p.X)+" "+num(p.Y))
	return len(e.vertices)
}

func (e *encoder) vertex3(p linalg.Vec3) int {
	e.vertices = append(e.vertices, "v "+num(p.X)+" "+num(p.Y)+" "+num(p.Z))
	return len(e.vertices)
}

func (e *encoder) vertices2(ps []vec.Vec2) []int {
	idx := make([]int, len(ps))
	for i, p := range ps {
		idx[i] = e.vertex2(p)
	}
	return idx
}

func (e *encoder) obj(format string, args ...any) {
	e.objects = append(e.objects, strings.TrimRight(fmt.Sprintf(format, args...), " "))
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
