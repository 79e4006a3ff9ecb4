// Package render rasterizes triangles onto a drawing surface: per-pixel fill
// from the blended vertex colors followed by the edge stroke.
package render

import (
	"sync"

	"github.com/example/trishade/internal/geom"
)

// DefaultStrokeWidth is the edge width used when none is configured.
const DefaultStrokeWidth = 1

// Renderer replays a whole scene onto a Surface.
type Renderer struct {
	Surface       Surface
	DefaultStroke geom.RGB
	StrokeWidth   int
}

// NewRenderer returns a Renderer drawing onto s with the stock defaults.
func NewRenderer(s Surface) *Renderer {
	return &Renderer{Surface: s, DefaultStroke: geom.Blue, StrokeWidth: DefaultStrokeWidth}
}

// Render clears the surface and draws every triangle in order, fill first and
// edges second. If the surface is a sync.Locker it is held for the pass.
func (r *Renderer) Render(triangles []geom.Triangle) {
	if r == nil || r.Surface == nil {
		return
	}
	if l, ok := r.Surface.(sync.Locker); ok {
		l.Lock()
		defer l.Unlock()
	}
	width := r.StrokeWidth
	if width < 1 {
		width = DefaultStrokeWidth
	}
	r.Surface.ClearRegion(r.Surface.Bounds())
	for _, t := range triangles {
		Paint(r.Surface, t)
		StrokeEdges(r.Surface, t, r.DefaultStroke, width)
	}
}
