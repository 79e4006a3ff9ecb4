// Package scene owns the committed triangles, the points of the triangle
// being built and the editing selection. Every mutation is followed by a full
// re-render through the configured Renderer while the scene lock is held.
package scene

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/example/trishade/internal/geom"
)

// ErrIndexOutOfRange reports a triangle or vertex index outside the current
// scene. Indexes always come from the current triangle list, so this is a
// caller bug rather than a user error.
var ErrIndexOutOfRange = errors.New("index out of range")

// NoSelection is the selected index when nothing is selected.
const NoSelection = -1

// Renderer redraws the whole scene. It is called with the scene lock held.
type Renderer interface {
	Render(triangles []geom.Triangle)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(triangles []geom.Triangle)

// Render implements Renderer.
func (f RendererFunc) Render(triangles []geom.Triangle) { f(triangles) }

// Scene is the model for one drawing session.
type Scene struct {
	mu        sync.Mutex
	triangles []geom.Triangle
	pending   []geom.Point
	selected  int
	version   uint64

	defaultVertex geom.RGB
	defaultEdge   geom.RGB
	renderer      Renderer
	observers     []func(version uint64)
	logger        *log.Logger
}

// Option modifies a Scene during creation.
type Option func(*Scene)

// WithRenderer sets the renderer invoked after every visible mutation.
func WithRenderer(r Renderer) Option { return func(s *Scene) { s.renderer = r } }

// WithDefaultEdge sets the edge color given to newly committed triangles.
func WithDefaultEdge(c geom.RGB) Option { return func(s *Scene) { s.defaultEdge = c } }

// WithDefaultVertex sets the vertex color given to newly committed triangles.
func WithDefaultVertex(c geom.RGB) Option { return func(s *Scene) { s.defaultVertex = c } }

// WithObserver registers fn to run after every mutation, including the ones
// that do not render. fn runs with the scene locked and must not call back
// into the Scene.
func WithObserver(fn func(version uint64)) Option {
	return func(s *Scene) { s.observers = append(s.observers, fn) }
}

// WithLogger sets the logger used for commit and delete messages.
func WithLogger(l *log.Logger) Option { return func(s *Scene) { s.logger = l } }

// New creates an empty scene.
func New(opts ...Option) *Scene {
	s := &Scene{
		selected:      NoSelection,
		defaultVertex: geom.Black,
		defaultEdge:   geom.Black,
	}
	for _, o := range opts {
		o(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	return s
}

// Snapshot is a copy of the scene state at one version.
type Snapshot struct {
	Triangles []geom.Triangle
	Pending   []geom.Point
	Selected  int
	Version   uint64
}

// HasSelection reports whether a triangle is selected.
func (s Snapshot) HasSelection() bool { return s.Selected != NoSelection }

// Snapshot returns a copy of the current state.
func (s *Scene) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Triangles: append([]geom.Triangle(nil), s.triangles...),
		Pending:   append([]geom.Point(nil), s.pending...),
		Selected:  s.selected,
		Version:   s.version,
	}
}

// Triangles returns a copy of the committed triangles in insertion order.
func (s *Scene) Triangles() []geom.Triangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]geom.Triangle(nil), s.triangles...)
}

// Len returns the number of committed triangles.
func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.triangles)
}

// Pending returns a copy of the points of the triangle under construction.
func (s *Scene) Pending() []geom.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]geom.Point(nil), s.pending...)
}

// Selected returns the selected index and whether there is one.
func (s *Scene) Selected() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.selected != NoSelection
}

// Version increases on every mutation.
func (s *Scene) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// AddPoint appends a click to the pending buffer. The third point commits a
// new triangle, empties the buffer and redraws; it reports true in that case.
func (s *Scene) AddPoint(p geom.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.notifySince(s.version)
	s.version++
	if len(s.pending) < 2 {
		s.pending = append(s.pending, p)
		return false
	}
	t := geom.NewTriangle(s.pending[0], s.pending[1], p, s.defaultEdge)
	for i := range t.Vertices {
		t.Vertices[i].Color = s.defaultVertex
	}
	s.pending = s.pending[:0]
	s.triangles = append(s.triangles, t)
	s.logger.Printf("committed triangle %d (%s)", len(s.triangles)-1, t.ID)
	s.renderLocked()
	return true
}

// Clear removes every triangle and pending point and clears the surface.
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.notifySince(s.version)
	s.triangles = nil
	s.pending = nil
	s.selected = NoSelection
	s.version++
	s.logger.Printf("cleared scene")
	s.renderLocked()
}

// DeleteTriangle removes the triangle at index. The remaining triangles keep
// their relative order. A selection on the deleted triangle is dropped and a
// selection after it moves down with its triangle.
func (s *Scene) DeleteTriangle(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.notifySince(s.version)
	if err := s.checkTriangle(index); err != nil {
		return err
	}
	id := s.triangles[index].ID
	s.triangles = append(s.triangles[:index:index], s.triangles[index+1:]...)
	switch {
	case s.selected == index:
		s.selected = NoSelection
	case s.selected > index:
		s.selected--
	}
	s.version++
	s.logger.Printf("deleted triangle %d (%s)", index, id)
	s.renderLocked()
	return nil
}

// SetVertexColor changes one vertex color of one triangle and redraws.
func (s *Scene) SetVertexColor(triangle, vertex int, c geom.RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.notifySince(s.version)
	if err := s.checkTriangle(triangle); err != nil {
		return err
	}
	if vertex < 0 || vertex > 2 {
		return fmt.Errorf("vertex %d: %w", vertex, ErrIndexOutOfRange)
	}
	s.triangles[triangle].Vertices[vertex].Color = c
	s.version++
	s.renderLocked()
	return nil
}

// SetEdgeColor changes a triangle's edge color and redraws.
func (s *Scene) SetEdgeColor(triangle int, c geom.RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.notifySince(s.version)
	if err := s.checkTriangle(triangle); err != nil {
		return err
	}
	s.triangles[triangle].Edge = c
	s.triangles[triangle].EdgeSet = true
	s.version++
	s.renderLocked()
	return nil
}

// Select marks a triangle for editing; NoSelection clears it. Selection is
// editing state only and does not redraw.
func (s *Scene) Select(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.notifySince(s.version)
	if index != NoSelection {
		if err := s.checkTriangle(index); err != nil {
			return err
		}
	}
	if s.selected != index {
		s.selected = index
		s.version++
	}
	return nil
}

// Redraw replays the scene onto the renderer without changing it.
func (s *Scene) Redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderLocked()
}

func (s *Scene) checkTriangle(index int) error {
	if index < 0 || index >= len(s.triangles) {
		return fmt.Errorf("triangle %d of %d: %w", index, len(s.triangles), ErrIndexOutOfRange)
	}
	return nil
}

// notifySince runs the observers if the version moved past before. Mutations
// defer it after taking the lock so observers see the rendered state.
func (s *Scene) notifySince(before uint64) {
	if s.version == before {
		return
	}
	for _, fn := range s.observers {
		fn(s.version)
	}
}

func (s *Scene) renderLocked() {
	if s.renderer == nil {
		return
	}
	s.renderer.Render(append([]geom.Triangle(nil), s.triangles...))
}
