package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sonograph/internal/engine"
	"sonograph/internal/geometry"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.eng.Leave()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Mute):
			m.muted = !m.muted
			if m.muted {
				m.leave()
				m.status = "muted"
			} else {
				m.status = "unmuted"
			}
		}
		return m, nil

	case tea.MouseMsg:
		return m.hover(msg.X, msg.Y), nil
	}
	return m, nil
}

// hover sonifies the pointer at terminal cell (cx, cy).
func (m Model) hover(cx, cy int) Model {
	if m.muted || m.width == 0 {
		return m
	}
	x, y, ok := m.layout().toScene(cx, cy)
	if !ok {
		if m.inCanvas {
			m.leave()
			m.status = "outside the canvas"
		}
		return m
	}
	if !m.inCanvas {
		m.eng.Enter()
		m.inCanvas = true
	}

	size := int(m.canvasSize)
	frame, err := m.eng.Motion(engine.MotionEvent{X: x, Y: y, Width: size, Height: size})
	m.frame = frame
	m.err = ""
	if err != nil {
		m.err = err.Error()
	}
	m.status = m.describe()
	return m
}

func (m *Model) leave() {
	m.eng.Leave()
	m.inCanvas = false
	m.frame.State = geometry.Outside
	m.frame.ShapeID = ""
}

func (m Model) describe() string {
	where := "nothing"
	if m.frame.ShapeID != "" {
		where = m.frame.State.String() + " " + m.names[m.frame.ShapeID]
	}
	return fmt.Sprintf("%s  %.1f Hz  (%.2f, %.2f)", where, m.frame.PointerHz, m.frame.XProp, m.frame.YProp)
}
