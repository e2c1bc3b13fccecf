// Package tui is a terminal front end for the sonification engine: the
// demo scene drawn in braille, sonified under the mouse.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"sonograph/internal/engine"
	"sonograph/internal/mixer"
	"sonograph/internal/scene"
)

// Sonifier is the part of the engine the terminal drives.
type Sonifier interface {
	Motion(ev engine.MotionEvent) (mixer.Frame, error)
	Enter()
	Leave()
}

type Model struct {
	width  int
	height int

	eng        Sonifier
	list       *scene.List
	names      map[string]string // shape ID -> item name
	canvasSize float64

	keys keyMap
	help help.Model

	muted    bool
	inCanvas bool
	frame    mixer.Frame
	status   string
	err      string
}

// New returns a model sonifying list through eng. items name the shapes
// for the status bar; canvasSize is the side of the scene in pixels.
func New(eng Sonifier, list *scene.List, items []scene.DemoItem, canvasSize float64) Model {
	names := make(map[string]string, len(items))
	for _, it := range items {
		names[it.Shape.ID] = it.Name
	}
	return Model{
		eng:        eng,
		list:       list,
		names:      names,
		canvasSize: canvasSize,
		keys:       defaultKeys(),
		help:       help.New(),
		status:     "move the mouse over the canvas",
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) layout() mapLayout {
	return newMapLayout(m.width, m.height, m.canvasSize)
}
