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

import "seehuhn.de/go/sketch/objfile"

var windowCases = []Scene{
	{
		Name:     "pan_away",
		Objects:  []objfile.Object{polygon("square", true, -5, -5, 5, -5, 5, 5, -5, 5)},
		Commands: []string{"pan 100 0"},
		Want:     Expect{Items: 0, Primitives: 0},
	},
	{
		Name: "zoom_in",
		Objects: []objfile.Object{
			line("axis", -10, 0, 10, 0),
			point("dot", 12, 0),
		},
		Commands: []string{"zoom 0.5"},
		Want:     Expect{Items: 1, Primitives: 1},
	},
	{
		// the window is taller than wide after the rotation
		Name: "rotate_window",
		Objects: []objfile.Object{
			point("wide", 18, 13),
			point("tall", 0, 18),
		},
		Commands: []string{"wrotate 90"},
		Want:     Expect{Items: 1, Primitives: 1},
	},
	{
		Name:     "fit",
		Objects:  []objfile.Object{polygon("far", true, 100, 100, 110, 100, 110, 110, 100, 110)},
		Commands: []string{"fit 0.1"},
		Want:     Expect{Items: 1, Primitives: 1},
	},
	{
		Name:     "reset",
		Objects:  []objfile.Object{polygon("square", true, -5, -5, 5, -5, 5, 5, -5, 5)},
		Commands: []string{"pan 100 0", "zoom 4", "wrotate 30", "reset"},
		Want:     Expect{Items: 1, Primitives: 1},
	},
}
