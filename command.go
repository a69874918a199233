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
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/clip"
	"seehuhn.de/go/sketch/object"
	"seehuhn.de/go/sketch/transform"
)

// Command is an edit request from a host program.
// This is a sealed interface - only types in this package implement it.
type Command interface {
	isCommand()
	fmt.Stringer
}

// CmdTranslate moves an object.
type CmdTranslate struct {
	ID     object.ID
	DX, DY float64
}

// CmdScale scales an object about a pivot.
type CmdScale struct {
	ID     object.ID
	SX, SY float64
	Pivot  transform.Pivot
}

// CmdRotate rotates an object about a pivot.
type CmdRotate struct {
	ID    object.ID
	Deg   float64
	Pivot transform.Pivot
}

// CmdRemove deletes an object.
type CmdRemove struct {
	ID object.ID
}

// CmdRaise moves an object towards the front.
type CmdRaise struct {
	ID object.ID
}

// CmdLower moves an object towards the back.
type CmdLower struct {
	ID object.ID
}

// CmdPan moves the window.
type CmdPan struct {
	DX, DY float64
}

// CmdZoom scales the window.
type CmdZoom struct {
	Factor float64
}

// CmdRotateWindow rotates the window.
type CmdRotateWindow struct {
	Deg float64
}

// CmdResetWindow restores the initial window.
type CmdResetWindow struct{}

// CmdFit fits the window to the scene.
type CmdFit struct {
	Margin float64
}

// CmdClipper selects the line clipping algorithm.
type CmdClipper struct {
	Method clip.Method
}

func (CmdTranslate) isCommand()    {}
func (CmdScale) isCommand()        {}
func (CmdRotate) isCommand()       {}
func (CmdRemove) isCommand()       {}
func (CmdRaise) isCommand()        {}
func (CmdLower) isCommand()        {}
func (CmdPan) isCommand()          {}
func (CmdZoom) isCommand()         {}
func (CmdRotateWindow) isCommand() {}
func (CmdResetWindow) isCommand()  {}
func (CmdFit) isCommand()          {}
func (CmdClipper) isCommand()      {}

func (c CmdTranslate) String() string {
	return fmt.Sprintf("translate %d %g %g", c.ID, c.DX, c.DY)
}

func (c CmdScale) String() string {
	return fmt.Sprintf("scale %d %g %g %s", c.ID, c.SX, c.SY, pivotArgs(c.Pivot))
}

func (c CmdRotate) String() string {
	return fmt.Sprintf("rotate %d %g %s", c.ID, c.Deg, pivotArgs(c.Pivot))
}

func (c CmdRemove) String() string      { return fmt.Sprintf("remove %d", c.ID) }
func (c CmdRaise) String() string       { return fmt.Sprintf("raise %d", c.ID) }
func (c CmdLower) String() string       { return fmt.Sprintf("lower %d", c.ID) }
func (c CmdPan) String() string         { return fmt.Sprintf("pan %g %g", c.DX, c.DY) }
func (c CmdZoom) String() string        { return fmt.Sprintf("zoom %g", c.Factor) }
func (c CmdRotateWindow) String() string { return fmt.Sprintf("wrotate %g", c.Deg) }
func (CmdResetWindow) String() string   { return "reset" }
func (c CmdFit) String() string         { return fmt.Sprintf("fit %g", c.Margin) }
func (c CmdClipper) String() string     { return "clipper " + c.Method.String() }

func pivotArgs(p transform.Pivot) string {
	switch p.Kind {
	case transform.PivotOrigin:
		return "origin"
	case transform.PivotPoint:
		return fmt.Sprintf("%g %g", p.At.X, p.At.Y)
	default:
		return "center"
	}
}

// Exec carries out a command.
func (m *Manager) Exec(cmd Command) error {
	var err error
	switch c := cmd.(type) {
	case CmdTranslate:
		err = m.Translate(c.ID, c.DX, c.DY)
	case CmdScale:
		err = m.Scale(c.ID, c.SX, c.SY, c.Pivot)
	case CmdRotate:
		err = m.Rotate(c.ID, c.Deg, c.Pivot)
	case CmdRemove:
		err = m.RemoveObject(c.ID)
	case CmdRaise:
		err = m.Raise(c.ID)
	case CmdLower:
		err = m.Lower(c.ID)
	case CmdPan:
		err = m.Pan(c.DX, c.DY)
	case CmdZoom:
		err = m.Zoom(c.Factor)
	case CmdRotateWindow:
		err = m.RotateWindow(c.Deg)
	case CmdResetWindow:
		m.ResetWindow()
	case CmdFit:
		err = m.FitWindow(c.Margin)
	case CmdClipper:
		err = m.SetLineClipper(c.Method)
	default:
		err = fmt.Errorf("%w: %v", ErrInvalidCommand, cmd)
	}
	if err != nil {
		Logger().Debug("command rejected", "cmd", cmd, "err", err)
	}
	return err
}

// ParseCommand parses the textual form of a command, as typed by a user.
//
// The recognised commands are:
//
//	translate ID DX DY
//	scale ID SX SY [center|origin|X Y]
//	rotate ID DEG [center|origin|X Y]
//	remove ID
//	raise ID
//	lower ID
//	pan DX DY
//	zoom F
//	wrotate DEG
//	reset
//	fit [MARGIN]
//	clipper cohen-sutherland|liang-barsky
//
// Object identifiers may be written with or without a leading "#".
func ParseCommand(s string) (Command, error) {
	p := &cmdParser{src: s, args: strings.Fields(s)}
	if len(p.args) == 0 {
		return nil, fmt.Errorf("%w: empty command", ErrInvalidCommand)
	}
	verb := strings.ToLower(p.args[0])
	p.args = p.args[1:]

	var cmd Command
	switch verb {
	case "translate", "move":
		cmd = CmdTranslate{ID: p.id(), DX: p.num(), DY: p.num()}
	case "scale":
		cmd = CmdScale{ID: p.id(), SX: p.num(), SY: p.num(), Pivot: p.pivot()}
	case "rotate":
		cmd = CmdRotate{ID: p.id(), Deg: p.num(), Pivot: p.pivot()}
	case "remove", "delete":
		cmd = CmdRemove{ID: p.id()}
	case "raise":
		cmd = CmdRaise{ID: p.id()}
	case "lower":
		cmd = CmdLower{ID: p.id()}
	case "pan":
		cmd = CmdPan{DX: p.num(), DY: p.num()}
	case "zoom":
		cmd = CmdZoom{Factor: p.num()}
	case "wrotate":
		cmd = CmdRotateWindow{Deg: p.num()}
	case "reset":
		cmd = CmdResetWindow{}
	case "fit":
		var margin float64
		if len(p.args) > 0 {
			margin = p.num()
		}
		cmd = CmdFit{Margin: margin}
	case "clipper":
		var c CmdClipper
		if a := p.next(); a != "" {
			if err := c.Method.UnmarshalText([]byte(a)); err != nil {
				p.fail(err.Error())
			}
		}
		cmd = c
	default:
		return nil, fmt.Errorf("%w: unknown command %q", ErrInvalidCommand, verb)
	}
	if p.err == nil && len(p.args) > 0 {
		p.fail("unexpected " + strconv.Quote(p.args[0]))
	}
	if p.err != nil {
		return nil, p.err
	}
	return cmd, nil
}

// cmdParser consumes arguments left to right.  After the first error all
// further calls return zero values.
type cmdParser struct {
	src  string
	args []string
	err  error
}

func (p *cmdParser) fail(msg string) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %q: %s", ErrInvalidCommand, p.src, msg)
	}
}

func (p *cmdParser) next() string {
	if p.err != nil {
		return ""
	}
	if len(p.args) == 0 {
		p.fail("missing argument")
		return ""
	}
	a := p.args[0]
	p.args = p.args[1:]
	return a
}

func (p *cmdParser) num() float64 {
	a := p.next()
	if p.err != nil {
		return 0
	}
	x, err := strconv.ParseFloat(a, 64)
	if err != nil {
		p.fail("invalid number " + strconv.Quote(a))
		return 0
	}
	return x
}

func (p *cmdParser) id() object.ID {
	a := p.next()
	if p.err != nil {
		return 0
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(a, "#"), 10, 64)
	if err != nil || n == 0 {
		p.fail("invalid object id " + strconv.Quote(a))
		return 0
	}
	return object.ID(n)
}

func (p *cmdParser) pivot() transform.Pivot {
	if p.err != nil || len(p.args) == 0 {
		return transform.Center
	}
	switch strings.ToLower(p.args[0]) {
	case "center", "centre":
		p.args = p.args[1:]
		return transform.Center
	case "origin":
		p.args = p.args[1:]
		return transform.Origin
	}
	x := p.num()
	y := p.num()
	return transform.About(vec.Vec2{X: x, Y: y})
}
