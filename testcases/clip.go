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
	"seehuhn.de/go/sketch/objfile"
	"seehuhn.de/go/sketch/window"
)

var clipCases = []Scene{
	{
		Name: "inside",
		Objects: []objfile.Object{
			polygon("square", true, -5, -5, 5, -5, 5, 5, -5, 5),
			line("axis", -10, 0, 10, 0),
		},
		Want: Expect{Items: 2, Primitives: 2},
	},
	{
		Name: "crossing",
		Objects: []objfile.Object{
			line("long", -30, 0, 30, 0),
			line("away", -30, -30, -25, -25),
			polygon("wedge", false, 0, 0, 40, 0, 0, 40),
		},
		Want: Expect{Items: 2, Primitives: 2},
	},
	{
		Name: "outside",
		Objects: []objfile.Object{
			polygon("far", true, 30, 30, 40, 30, 40, 40),
			point("dot", 100, 100),
		},
		Want: Expect{Items: 0, Primitives: 0},
	},
	{
		Name: "enclosing",
		Objects: []objfile.Object{
			polygon("huge", true, -50, -50, 50, -50, 50, 50, -50, 50),
		},
		Want: Expect{Items: 1, Primitives: 1},
	},
	{
		// the middle segment is above the window
		Name: "polyline_split",
		Objects: []objfile.Object{
			polyline("arch", -10, 0, -10, 20, 10, 20, 10, 0),
		},
		Want: Expect{Items: 1, Primitives: 2},
	},
	{
		// the window boundary belongs to the window
		Name:   "boundary",
		Window: window.Window{HalfWidth: 16, HalfHeight: 8},
		Objects: []objfile.Object{
			point("corner", 16, 8),
			line("top", -16, 8, 16, 8),
			point("beyond", 16.5, 0),
		},
		Want: Expect{Items: 2, Primitives: 2},
	},
}
