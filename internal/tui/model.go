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

// Package tui implements an interactive terminal viewer for a scene.
//
// The scene is drawn with braille characters, so that every terminal cell
// shows 2×4 device pixels.  All edits go through [sketch.Command] values,
// either bound to keys or typed at a command prompt.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/linalg"
	"seehuhn.de/go/sketch/object"
	"seehuhn.de/go/sketch/transform"
	"seehuhn.de/go/sketch/window"
)

const (
	sidebarWidth = 24
	headerHeight = 1
	footerHeight = 2

	panStep    = 0.1  // fraction of the window half width
	moveStep   = 0.05 // fraction of the window half width
	zoomStep   = 1.25
	turnStep   = 15 // degrees
	scaleStep  = 1.1
	windowTurn = 15 // degrees
)

// Model is the bubbletea model of the viewer.
type Model struct {
	mgr *sketch.Manager

	keys    keyMap
	help    help.Model
	objects list.Model
	prompt  textinput.Model

	prompting bool
	width     int
	height    int

	status    string
	statusErr bool
}

// objectItem is an entry of the object list.
type objectItem struct {
	obj object.Object
}

func (it objectItem) Title() string {
	name := it.obj.Name
	if name == "" {
		name = "(unnamed)"
	}
	return it.obj.ID.String() + " " + name
}

func (it objectItem) Description() string { return object.KindOf(it.obj.Shape) }
func (it objectItem) FilterValue() string { return it.obj.Name }

// New returns a viewer for the scene held by mgr.
func New(mgr *sketch.Manager) Model {
	m := Model{
		mgr:    mgr,
		keys:   defaultKeys,
		help:   help.New(),
		status: "ready",
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.objects = list.New(nil, d, sidebarWidth-1, 10)
	m.objects.Title = "Objects"
	m.objects.SetShowHelp(false)
	m.objects.SetShowStatusBar(false)
	m.objects.SetFilteringEnabled(false)

	m.prompt = textinput.New()
	m.prompt.Prompt = ":"
	m.prompt.Placeholder = "translate 1 2 0"
	m.prompt.CharLimit = 256

	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompting = false
		m.prompt.Blur()
		m.setStatus("cancelled", false)
		return m, nil
	case tea.KeyEnter:
		line := m.prompt.Value()
		m.prompting = false
		m.prompt.Blur()
		m.prompt.SetValue("")
		cmd, err := sketch.ParseCommand(line)
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.exec(cmd)
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	win := m.mgr.Window()
	pan := panStep * win.HalfWidth
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, k.Command):
		m.prompting = true
		return m, m.prompt.Focus()

	case key.Matches(msg, k.PanLeft):
		m.exec(sketch.CmdPan{DX: -pan})
	case key.Matches(msg, k.PanRight):
		m.exec(sketch.CmdPan{DX: pan})
	case key.Matches(msg, k.PanUp):
		m.exec(sketch.CmdPan{DY: pan})
	case key.Matches(msg, k.PanDown):
		m.exec(sketch.CmdPan{DY: -pan})
	case key.Matches(msg, k.ZoomIn):
		m.exec(sketch.CmdZoom{Factor: 1 / zoomStep})
	case key.Matches(msg, k.ZoomOut):
		m.exec(sketch.CmdZoom{Factor: zoomStep})
	case key.Matches(msg, k.RotateLeft):
		m.exec(sketch.CmdRotateWindow{Deg: windowTurn})
	case key.Matches(msg, k.RotateRight):
		m.exec(sketch.CmdRotateWindow{Deg: -windowTurn})
	case key.Matches(msg, k.Reset):
		m.exec(sketch.CmdResetWindow{})
		m.resize()
	case key.Matches(msg, k.Fit):
		m.exec(sketch.CmdFit{Margin: 0.05})

	case key.Matches(msg, k.Next):
		if n := len(m.objects.Items()); n > 0 {
			m.objects.Select((m.objects.Index() + 1) % n)
		}

	default:
		id, ok := m.selected()
		if !ok {
			return m, nil
		}
		step := moveStep * win.HalfWidth
		var cmd sketch.Command
		switch {
		case key.Matches(msg, k.MoveLeft):
			cmd = m.move(id, -step, 0)
		case key.Matches(msg, k.MoveRight):
			cmd = m.move(id, step, 0)
		case key.Matches(msg, k.MoveUp):
			cmd = m.move(id, 0, step)
		case key.Matches(msg, k.MoveDown):
			cmd = m.move(id, 0, -step)
		case key.Matches(msg, k.TurnLeft):
			cmd = sketch.CmdRotate{ID: id, Deg: turnStep}
		case key.Matches(msg, k.TurnRight):
			cmd = sketch.CmdRotate{ID: id, Deg: -turnStep}
		case key.Matches(msg, k.Grow):
			cmd = sketch.CmdScale{ID: id, SX: scaleStep, SY: scaleStep, Pivot: transform.Center}
		case key.Matches(msg, k.Shrink):
			cmd = sketch.CmdScale{ID: id, SX: 1 / scaleStep, SY: 1 / scaleStep, Pivot: transform.Center}
		case key.Matches(msg, k.Raise):
			cmd = sketch.CmdRaise{ID: id}
		case key.Matches(msg, k.Lower):
			cmd = sketch.CmdLower{ID: id}
		case key.Matches(msg, k.Remove):
			cmd = sketch.CmdRemove{ID: id}
		}
		if cmd != nil {
			m.exec(cmd)
		}
	}
	return m, nil
}

// move returns a command which moves the object id by (dx, dy) in screen
// directions, taking the rotation of the window into account.
func (m *Model) move(id object.ID, dx, dy float64) sketch.Command {
	d := linalg.RotateDeg(m.mgr.Window().Angle).Apply(vec.Vec2{X: dx, Y: dy})
	return sketch.CmdTranslate{ID: id, DX: d.X, DY: d.Y}
}

// exec runs a command and reports the result in the status line.
func (m *Model) exec(cmd sketch.Command) {
	if err := m.mgr.Exec(cmd); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(cmd.String(), false)
	m.refresh()
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// selected returns the ID of the object selected in the sidebar.
func (m *Model) selected() (object.ID, bool) {
	it, ok := m.objects.SelectedItem().(objectItem)
	if !ok {
		return 0, false
	}
	return it.obj.ID, true
}

// refresh updates the object list, keeping the selection where possible.
func (m *Model) refresh() {
	sel, hasSel := m.selected()
	idx := m.objects.Index()

	objs := m.mgr.Objects()
	items := make([]list.Item, len(objs))
	for i, o := range objs {
		items[i] = objectItem{obj: o}
		if hasSel && o.ID == sel {
			idx = i
		}
	}
	m.objects.SetItems(items)
	if len(items) > 0 {
		m.objects.Select(min(idx, len(items)-1))
	}
}

// canvasSize returns the size of the drawing area in terminal cells.
func (m *Model) canvasSize() (int, int) {
	w := max(m.width-sidebarWidth, 1)
	h := max(m.height-headerHeight-footerHeight, 1)
	return w, h
}

// resize adapts the viewport to the terminal size.  The window keeps its
// width; its height is changed so that the scene is not distorted.
func (m *Model) resize() {
	cw, ch := m.canvasSize()
	m.objects.SetSize(sidebarWidth-1, ch)
	m.help.Width = m.width

	vp := window.Viewport{Width: float64(2 * cw), Height: float64(4 * ch)}
	if err := m.mgr.SetViewport(vp); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	w := m.mgr.Window()
	w.HalfHeight = w.HalfWidth * vp.Height / vp.Width
	if err := m.mgr.SetWindow(w); err != nil {
		m.setStatus(err.Error(), true)
	}
}
