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

package testcases

import (
	"seehuhn.de/go/sketch/object"
	"seehuhn.de/go/sketch/objfile"
)

var curveCases = []Scene{
	{
		Name:    "bezier",
		Objects: []objfile.Object{curve("s", object.Bezier, -10, 0, -5, 10, 5, -10, 10, 0)},
		Want:    Expect{Items: 1, Primitives: 1},
	},
	{
		Name: "bezier_two_spans",
		Objects: []objfile.Object{curve("wave", object.Bezier,
			-15, 0, -12, 8, -8, 8, -5, 0,
			-2, -8, 2, -8, 5, 0)},
		Want: Expect{Items: 1, Primitives: 1},
	},
	{
		// the curve leaves through the top of the window and comes back
		Name:    "bezier_exit",
		Objects: []objfile.Object{curve("arch", object.Bezier, -10, 0, 0, 40, 0, 40, 10, 0)},
		Want:    Expect{Items: 1, Primitives: 2},
	},
	{
		Name:    "bspline",
		Objects: []objfile.Object{curve("wiggle", object.BSpline, -10, 0, -5, 5, 0, -5, 5, 5, 10, 0)},
		Want:    Expect{Items: 1, Primitives: 1},
	},
	{
		Name:    "bspline_outside",
		Objects: []objfile.Object{curve("far", object.BSpline, 30, 0, 35, 5, 40, -5, 45, 0)},
		Want:    Expect{Items: 0, Primitives: 0},
	},
}
