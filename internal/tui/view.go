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

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seehuhn.de/go/sketch/display"
	"seehuhn.de/go/sketch/object"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	cw, ch := m.canvasSize()

	win := m.mgr.Window()
	header := titleStyle.Render(" sketch ") + dimStyle.Render(fmt.Sprintf(
		" window %.4g×%.4g at (%.4g, %.4g), %.4g°, %d objects",
		2*win.HalfWidth, 2*win.HalfHeight, win.Center.X, win.Center.Y, win.Angle, m.mgr.Len()))

	var main string
	if m.help.ShowAll {
		main = lipgloss.Place(cw, ch, lipgloss.Left, lipgloss.Top, m.help.View(m.keys))
	} else {
		sel, _ := m.selected()
		c := newCanvas(cw, ch)
		drawFrame(c, m.mgr.RenderFrame(), sel)
		main = strings.Join(c.lines(selectedStyle.Render), "\n")
	}
	sidebar := sidebarStyle.Width(sidebarWidth - 1).Height(ch).Render(m.objects.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)

	var status string
	switch {
	case m.prompting:
		status = m.prompt.View()
	case m.statusErr:
		status = errorStyle.Render(m.status)
	default:
		status = dimStyle.Render(m.status)
	}
	footer := lipgloss.JoinVertical(lipgloss.Left, status, m.help.ShortHelpView(m.keys.ShortHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).Height(m.height).Render(ui)
}

// drawFrame draws a display list onto c.  The list must be in device
// coordinates of a viewport with one device unit per dot.
func drawFrame(c *canvas, list display.List, sel object.ID) {
	for _, item := range list {
		marked := item.ID == sel
		for _, prim := range item.Primitives {
			pts := prim.Points
			if len(pts) == 0 {
				continue
			}
			switch prim.Kind {
			case display.Point:
				x, y := c.dot(pts[0])
				c.set(x, y, marked)
			case display.ClosedPolygon:
				if prim.Filled {
					c.fill(pts, marked)
				}
				for i, a := range pts {
					c.line(a, pts[(i+1)%len(pts)], marked)
				}
			default:
				for i := 1; i < len(pts); i++ {
					c.line(pts[i-1], pts[i], marked)
				}
			}
		}
	}
}
