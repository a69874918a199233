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

// Command sketchview is an interactive terminal viewer and editor for
// scene files.
//
// Usage:
//
//	sketchview [-config file.toml] [-log file] [scene.obj]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/internal/tui"
	"seehuhn.de/go/sketch/objfile"
)

func main() {
	configFile := flag.String("config", "", "read settings from this TOML `file`")
	logFile := flag.String("log", "", "write debug messages to this `file`")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [scene.obj]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configFile, *logFile, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "sketchview:", err)
		os.Exit(1)
	}
}

func run(configFile, logFile, sceneFile string) error {
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return err
		}
		defer f.Close()
		h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
		sketch.SetLogger(slog.New(h))
	}

	cfg := sketch.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = sketch.LoadConfig(configFile)
		if err != nil {
			return err
		}
	}
	mgr, err := sketch.New(cfg)
	if err != nil {
		return err
	}

	if sceneFile != "" {
		f, err := os.Open(sceneFile)
		if err != nil {
			return err
		}
		sc, err := objfile.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", sceneFile, err)
		}
		if err := mgr.LoadScene(sc); err != nil {
			return fmt.Errorf("%s: %w", sceneFile, err)
		}
	}

	_, err = tea.NewProgram(tui.New(mgr), tea.WithAltScreen()).Run()
	return err
}
