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

package sketch

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/clip"
	"seehuhn.de/go/sketch/window"
)

// Config holds the settings of a scene manager.
//
// A configuration file is written in TOML, for example:
//
//	curve_segments = 32
//	line_clipper = "liang-barsky"
//
//	[viewport]
//	width = 1024
//	height = 768
//
//	[window]
//	center = [0.0, 0.0]
//	half_width = 16.0
//	half_height = 12.0
//	angle = 0.0
type Config struct {
	Viewport ViewportConfig `toml:"viewport"`
	Window   WindowConfig   `toml:"window"`

	// CurveSegments is the number of line segments used for each span
	// of a curve.
	CurveSegments int `toml:"curve_segments"`

	// MinHalfSize limits how far the window can be zoomed in.
	MinHalfSize float64 `toml:"min_half_size"`

	// LineClipper selects the line clipping algorithm.
	LineClipper clip.Method `toml:"line_clipper"`
}

// ViewportConfig is the size of the device area, in device units.
type ViewportConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// WindowConfig describes the initial window.
type WindowConfig struct {
	Center     [2]float64 `toml:"center"`
	HalfWidth  float64    `toml:"half_width"`
	HalfHeight float64    `toml:"half_height"`
	Angle      float64    `toml:"angle"`
}

// Window converts c to a [window.Window].
func (c WindowConfig) Window() window.Window {
	return window.Window{
		Center:     vec.Vec2{X: c.Center[0], Y: c.Center[1]},
		HalfWidth:  c.HalfWidth,
		HalfHeight: c.HalfHeight,
		Angle:      c.Angle,
	}
}

// Viewport converts c to a [window.Viewport].
func (c ViewportConfig) Viewport() window.Viewport {
	return window.Viewport{Width: c.Width, Height: c.Height}
}

// DefaultConfig returns the default settings: an 800×600 viewport showing
// the world rectangle [-20,20]×[-15,15].
func DefaultConfig() Config {
	return Config{
		Viewport: ViewportConfig{Width: 800, Height: 600},
		Window: WindowConfig{
			HalfWidth:  20,
			HalfHeight: 15,
		},
		CurveSegments: clip.DefaultCurveSegments,
		MinHalfSize:   window.DefaultMinHalfSize,
		LineClipper:   clip.MethodCohenSutherland,
	}
}

// Validate checks that c describes a usable scene manager.
func (c Config) Validate() error {
	if err := c.Viewport.Viewport().Validate(); err != nil {
		return err
	}
	if err := c.Window.Window().Validate(); err != nil {
		return err
	}
	if c.CurveSegments < 1 {
		return fmt.Errorf("sketch: curve_segments must be positive, got %d", c.CurveSegments)
	}
	if !(c.MinHalfSize > 0) {
		return fmt.Errorf("sketch: min_half_size must be positive, got %g", c.MinHalfSize)
	}
	if _, err := c.LineClipper.MarshalText(); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads a TOML configuration file.  Settings missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ReadConfig(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Info("configuration loaded", "path", path)
	return cfg, nil
}

// ReadConfig decodes a TOML configuration from r.  Unknown keys are an
// error.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteConfig encodes c as TOML.
func WriteConfig(w io.Writer, c Config) error {
	return toml.NewEncoder(w).Encode(c)
}
