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

var transformCases = []Scene{
	{
		Name:     "translate_out",
		Objects:  []objfile.Object{polygon("square", true, -5, -5, 5, -5, 5, 5, -5, 5)},
		Commands: []string{"translate 1 100 0"},
		Want:     Expect{Items: 0, Primitives: 0},
	},
	{
		Name:     "translate_in",
		Objects:  []objfile.Object{polygon("triangle", false, 98, -2, 102, -2, 100, 2)},
		Commands: []string{"translate #1 -100 0"},
		Want:     Expect{Items: 1, Primitives: 1},
	},
	{
		Name:     "scale_grow",
		Objects:  []objfile.Object{polygon("square", true, -5, -5, 5, -5, 5, 5, -5, 5)},
		Commands: []string{"scale 1 10 10 center"},
		Want:     Expect{Items: 1, Primitives: 1},
	},
	{
		// rotated onto the y axis, then moved to the right edge
		Name:     "rotate_translate",
		Objects:  []objfile.Object{line("spoke", 0, 0, 30, 0)},
		Commands: []string{"rotate 1 90 origin", "translate 1 25 0"},
		Want:     Expect{Items: 0, Primitives: 0},
	},
	{
		Name: "order",
		Objects: []objfile.Object{
			polygon("back", true, -10, -10, 0, -10, 0, 0, -10, 0),
			polygon("front", true, -5, -5, 5, -5, 5, 5, -5, 5),
			curve("gone", object.Bezier, 0, 0, 1, 1, 2, 1, 3, 0),
		},
		Commands: []string{"raise 1", "remove 3", "lower 2"},
		Want:     Expect{Items: 2, Primitives: 2},
	},
}
