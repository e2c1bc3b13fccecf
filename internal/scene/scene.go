// Package scene holds the display list: the shapes on a canvas in draw
// order, each optionally carrying a sound.
package scene

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"sonograph/internal/geometry"
	"sonograph/internal/sound"
)

var ErrUnknownShape = errors.New("scene: unknown shape")

// Shape is a drawn geometry. A larger Order is drawn later, on top.
type Shape struct {
	ID       string
	Order    int64
	Geometry geometry.Geometry
	Sound    *sound.Source
}

// HasSound reports whether the shape is audible to the hit tester.
func (s *Shape) HasSound() bool { return s != nil && s.Sound != nil }

// List is a display list safe for concurrent use.
type List struct {
	mu     sync.RWMutex
	shapes map[string]*Shape
	next   int64
}

func NewList() *List {
	return &List{shapes: make(map[string]*Shape)}
}

// Attach draws g on top of every existing shape and returns it. snd may be
// nil for a silent shape.
func (l *List) Attach(g geometry.Geometry, snd *sound.Source) *Shape {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next++
	s := &Shape{
		ID:       uuid.NewString(),
		Order:    l.next,
		Geometry: g,
		Sound:    snd,
	}
	l.shapes[s.ID] = s
	return s
}

// Detach removes a shape. Removing an unknown id is not an error.
func (l *List) Detach(id string) {
	l.mu.Lock()
	delete(l.shapes, id)
	l.mu.Unlock()
}

// Raise moves a shape above every other shape.
func (l *List) Raise(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.shapes[id]
	if !ok {
		return ErrUnknownShape
	}
	l.next++
	raised := *s
	raised.Order = l.next
	l.shapes[id] = &raised
	return nil
}

// SetSound replaces the sound attached to a shape.
func (l *List) SetSound(id string, snd *sound.Source) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.shapes[id]
	if !ok {
		return ErrUnknownShape
	}
	changed := *s
	changed.Sound = snd
	l.shapes[id] = &changed
	return nil
}

// Get returns the shape with the given id.
func (l *List) Get(id string) (*Shape, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.shapes[id]
	return s, ok
}

// Snapshot returns the shapes in draw order, bottom first. Shapes are never
// mutated in place, so the snapshot stays valid while the list changes.
func (l *List) Snapshot() []*Shape {
	l.mu.RLock()
	out := make([]*Shape, 0, len(l.shapes))
	for _, s := range l.shapes {
		out = append(out, s)
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.shapes)
}
