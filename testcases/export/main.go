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

// Command export writes the reference scenes to testdata/, as scene files
// together with a JSON index of the expected results.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/sketch/objfile"
	"seehuhn.de/go/sketch/testcases"
)

const outDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			name := category + "_" + s.Name
			fname := filepath.Join(outDir, name+".obj")
			if err := writeScene(fname, s); err != nil {
				panic(err)
			}
			out.Scenes = append(out.Scenes, toJSON(name, s))
		}
	}

	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func writeScene(fname string, s testcases.Scene) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = objfile.Encode(f, s.File())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

type jsonScene struct {
	Name       string    `json:"name"`
	File       string    `json:"file"`
	Viewport   []float64 `json:"viewport"`
	Commands   []string  `json:"commands,omitempty"`
	Items      int       `json:"items"`
	Primitives int       `json:"primitives"`
}

func toJSON(name string, s testcases.Scene) jsonScene {
	vp := s.View()
	return jsonScene{
		Name:       name,
		File:       name + ".obj",
		Viewport:   []float64{vp.Width, vp.Height},
		Commands:   s.Commands,
		Items:      s.Want.Items,
		Primitives: s.Want.Primitives,
	}
}
