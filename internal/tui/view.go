package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sonograph/internal/geometry"
)

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	l := m.layout()

	base := newBrailleBuf(l.w, l.h)
	hl := newBrailleBuf(l.w, l.h)
	for _, s := range m.list.Snapshot() {
		trace(base, l, s.Geometry)
		if m.inCanvas && s.ID == m.frame.ShapeID {
			trace(hl, l, s.Geometry)
		}
	}
	// canvas edge
	cw, ch := l.canvasCells()
	if cw < l.w {
		base.drawLineMicro(cw*2-1, 0, cw*2-1, ch*4-1)
	}
	if ch < l.h {
		base.drawLineMicro(0, ch*4-1, cw*2-1, ch*4-1)
	}

	style := nearStyle
	if m.frame.State == geometry.Inside {
		style = insideStyle
	}
	mapView := boxStyle.Render(strings.Join(base.overlay(hl, style), "\n"))

	header := titleStyle.Render("sonograph") + dimStyle.Render("  shapes you can hear")
	status := m.status
	if m.err != "" {
		status += "  " + errStyle.Render(m.err)
	}
	footer := lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, mapView, footer))
}
