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

// Command sketch applies editing commands to a scene and writes the
// result.
//
// Usage:
//
//	sketch [-config file.toml] [-scene in.obj] [-c command]... [-o out.png|out.pdf|out.obj] [-labels=false] [-v]
//	sketch [-config file.toml] -dump-config
//
// Commands use the syntax of [sketch.ParseCommand], for example
// "rotate 1 45 center" or "zoom 0.5".  After all commands have been
// applied, a summary of the visible objects is printed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/display"
	"seehuhn.de/go/sketch/export"
	"seehuhn.de/go/sketch/objfile"
	"seehuhn.de/go/sketch/raster"
)

// commandList collects the values of a repeated flag.
type commandList []string

func (c *commandList) String() string { return strings.Join(*c, "; ") }

func (c *commandList) Set(s string) error {
	*c = append(*c, s)
	return nil
}

type options struct {
	configFile string
	sceneFile  string
	outFile    string
	commands   commandList
	labels     bool
	dumpConfig bool
}

func main() {
	var opt options
	flag.StringVar(&opt.configFile, "config", "", "read settings from this TOML `file`")
	flag.StringVar(&opt.sceneFile, "scene", "", "load the scene from this `file`")
	flag.StringVar(&opt.outFile, "o", "", "write the result to this `file` (.png, .pdf or .obj)")
	flag.Var(&opt.commands, "c", "apply this `command`; may be repeated")
	flag.BoolVar(&opt.labels, "labels", true, "draw object names in PNG output")
	flag.BoolVar(&opt.dumpConfig, "dump-config", false, "print the effective settings and exit")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		sketch.SetLogger(slog.New(h))
	}

	if err := run(os.Stdout, opt); err != nil {
		fmt.Fprintln(os.Stderr, "sketch:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, opt options) error {
	cfg := sketch.DefaultConfig()
	if opt.configFile != "" {
		var err error
		cfg, err = sketch.LoadConfig(opt.configFile)
		if err != nil {
			return err
		}
	}
	if opt.dumpConfig {
		return sketch.WriteConfig(w, cfg)
	}

	mgr, err := sketch.New(cfg)
	if err != nil {
		return err
	}
	if opt.sceneFile != "" {
		if err := loadScene(mgr, opt.sceneFile); err != nil {
			return err
		}
	}

	for _, line := range opt.commands {
		cmd, err := sketch.ParseCommand(line)
		if err != nil {
			return err
		}
		if err := mgr.Exec(cmd); err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
	}

	frame := mgr.RenderFrame()
	summarize(w, mgr, frame)

	if opt.outFile == "" {
		return nil
	}
	if strings.EqualFold(filepath.Ext(opt.outFile), ".obj") {
		return saveScene(mgr, opt.outFile)
	}
	eo := &export.Options{Style: raster.DefaultStyle, Labels: opt.labels}
	return export.WriteFile(opt.outFile, frame, mgr.Viewport(), eo)
}

func loadScene(mgr *sketch.Manager, fname string) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	sc, err := objfile.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return mgr.LoadScene(sc)
}

func saveScene(mgr *sketch.Manager, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = objfile.Encode(f, mgr.SceneFile())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// summarize prints one line per visible object.
func summarize(w io.Writer, mgr *sketch.Manager, frame display.List) {
	win := mgr.Window()
	fmt.Fprintf(w, "window: center (%g, %g), half size %g×%g, angle %g°\n",
		win.Center.X, win.Center.Y, win.HalfWidth, win.HalfHeight, win.Angle)
	fmt.Fprintf(w, "%d of %d objects visible, %d primitives\n", len(frame), mgr.Len(), frame.Len())
	for _, item := range frame {
		points := 0
		kinds := make([]string, len(item.Primitives))
		for i, p := range item.Primitives {
			points += len(p.Points)
			kinds[i] = p.Kind.String()
		}
		fmt.Fprintf(w, "  %s %-12s %d points: %s\n", item.ID, item.Name, points, strings.Join(kinds, ", "))
	}
}
