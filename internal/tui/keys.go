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

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the key bindings of the viewer.
type keyMap struct {
	PanLeft, PanRight, PanUp, PanDown key.Binding
	ZoomIn, ZoomOut                   key.Binding
	RotateLeft, RotateRight           key.Binding
	Reset, Fit                        key.Binding

	Next                 key.Binding
	MoveLeft, MoveRight  key.Binding
	MoveUp, MoveDown     key.Binding
	TurnLeft, TurnRight  key.Binding
	Grow, Shrink         key.Binding
	Raise, Lower, Remove key.Binding
	Command, Help, Quit  key.Binding
}

var defaultKeys = keyMap{
	PanLeft:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "pan left")),
	PanRight:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "pan right")),
	PanUp:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "pan up")),
	PanDown:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "pan down")),
	ZoomIn:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
	ZoomOut:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
	RotateLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "turn window")),
	RotateRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "turn window back")),
	Reset:       key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset window")),
	Fit:         key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fit scene")),

	Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "select next")),
	MoveLeft:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "move left")),
	MoveRight: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "move right")),
	MoveUp:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "move up")),
	MoveDown:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "move down")),
	TurnLeft:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rotate")),
	TurnRight: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "rotate back")),
	Grow:      key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "grow")),
	Shrink:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shrink")),
	Raise:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "raise")),
	Lower:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "lower")),
	Remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),

	Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PanUp, k.ZoomIn, k.ZoomOut, k.Next, k.Command, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PanLeft, k.PanRight, k.PanUp, k.PanDown},
		{k.ZoomIn, k.ZoomOut, k.RotateLeft, k.RotateRight, k.Reset, k.Fit},
		{k.Next, k.MoveLeft, k.MoveRight, k.MoveUp, k.MoveDown},
		{k.TurnLeft, k.TurnRight, k.Grow, k.Shrink, k.Raise, k.Lower, k.Remove},
		{k.Command, k.Help, k.Quit},
	}
}
