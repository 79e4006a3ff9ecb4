package appstate

import (
	"fmt"

	"github.com/example/trishade/internal/geom"
	"github.com/example/trishade/internal/scene"
)

var targetNames = [targetCount]string{"vertex A", "vertex B", "vertex C", "edge"}

// editor turns panel and canvas clicks into scene commands. target is the
// swatch the palette currently recolors.
type editor struct {
	scene  *scene.Scene
	target int
}

// apply performs the action for h and returns a status message, empty when
// there is nothing worth reporting.
func (ed *editor) apply(h hit, paletteColor func(int) geom.RGB) (string, error) {
	switch h.kind {
	case hitCanvas:
		if ed.scene.AddPoint(h.point) {
			return fmt.Sprintf("added Triangle %d", ed.scene.Len()), nil
		}
		return "", nil
	case hitRow:
		if sel, ok := ed.scene.Selected(); ok && sel == h.index {
			return "", ed.scene.Select(scene.NoSelection)
		}
		return "", ed.scene.Select(h.index)
	case hitSwatch:
		if h.index < 0 || h.index >= targetCount {
			return "", fmt.Errorf("swatch %d: %w", h.index, scene.ErrIndexOutOfRange)
		}
		ed.target = h.index
		return "editing " + targetNames[ed.target], nil
	case hitDelete:
		return ed.deleteSelected()
	case hitPalette:
		sel, ok := ed.scene.Selected()
		if !ok {
			return "select a triangle first", nil
		}
		c := paletteColor(h.index)
		if ed.target == edgeTarget {
			return "", ed.scene.Dispatch(scene.SetEdgeColor{Triangle: sel, Color: c})
		}
		return "", ed.scene.Dispatch(scene.SetVertexColor{Triangle: sel, Vertex: ed.target, Color: c})
	}
	return "", nil
}

func (ed *editor) deleteSelected() (string, error) {
	sel, ok := ed.scene.Selected()
	if !ok {
		return "nothing selected", nil
	}
	if err := ed.scene.DeleteTriangle(sel); err != nil {
		return "", err
	}
	return fmt.Sprintf("deleted Triangle %d", sel+1), nil
}

func (ed *editor) deselect() {
	_ = ed.scene.Select(scene.NoSelection)
}
