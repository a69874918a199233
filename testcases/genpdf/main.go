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

// Command genpdf generates reference images for the scene catalogue.
// Every scene is loaded into a scene manager, its commands are applied
// and the resulting frame is written as PDF and PNG.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/export"
	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	opt := &export.Options{Style: raster.DefaultStyle, Labels: true}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			name := category + "_" + s.Name
			if err := generate(s, name, opt); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(s testcases.Scene, name string, opt *export.Options) error {
	cfg := sketch.DefaultConfig()
	vp := s.View()
	cfg.Viewport = sketch.ViewportConfig{Width: vp.Width, Height: vp.Height}
	m, err := sketch.New(cfg)
	if err != nil {
		return err
	}
	if err := m.LoadScene(s.File()); err != nil {
		return err
	}
	for _, line := range s.Commands {
		cmd, err := sketch.ParseCommand(line)
		if err != nil {
			return err
		}
		if err := m.Exec(cmd); err != nil {
			return err
		}
	}

	frame := m.RenderFrame()
	for _, ext := range []string{".pdf", ".png"} {
		fname := filepath.Join(refDir, name+ext)
		if err := export.WriteFile(fname, frame, m.Viewport(), opt); err != nil {
			return err
		}
	}
	return nil
}
