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

var wireframeCases = []Scene{
	{
		Name:    "tetrahedron",
		Objects: []objfile.Object{tetrahedron("tetra", 0, 0)},
		Want:    Expect{Items: 1, Primitives: 6},
	},
	{
		// three edges reach into the window from the right
		Name:    "tetrahedron_partial",
		Objects: []objfile.Object{tetrahedron("tetra", 25, 0)},
		Want:    Expect{Items: 1, Primitives: 3},
	},
	{
		Name:     "tetrahedron_moved",
		Objects:  []objfile.Object{tetrahedron("tetra", 0, 0)},
		Commands: []string{"translate 1 0 -40"},
		Want:     Expect{Items: 0, Primitives: 0},
	},
}
