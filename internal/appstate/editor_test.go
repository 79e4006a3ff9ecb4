package appstate

import (
	"testing"

	"github.com/example/trishade/internal/geom"
	"github.com/example/trishade/internal/scene"
)

func testPalette(i int) geom.RGB { return geom.RGB{R: uint8(i), G: 100, B: 200} }

func newEditor(t *testing.T, triangles int) *editor {
	t.Helper()
	ed := &editor{scene: scene.New()}
	for i := 0; i < triangles; i++ {
		for _, p := range []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}} {
			if _, err := ed.apply(hit{kind: hitCanvas, point: p}, testPalette); err != nil {
				t.Fatal(err)
			}
		}
	}
	return ed
}

func TestEditorCanvasClicksCommit(t *testing.T) {
	ed := newEditor(t, 0)
	for i, p := range []geom.Point{{X: 10, Y: 10}, {X: 100, Y: 10}} {
		msg, err := ed.apply(hit{kind: hitCanvas, point: p}, testPalette)
		if err != nil || msg != "" {
			t.Fatalf("click %d: %q %v", i, msg, err)
		}
	}
	msg, err := ed.apply(hit{kind: hitCanvas, point: geom.Pt(50, 100)}, testPalette)
	if err != nil || msg != "added Triangle 1" {
		t.Fatalf("commit: %q %v", msg, err)
	}
}

func TestEditorRowTogglesSelection(t *testing.T) {
	ed := newEditor(t, 2)
	if _, err := ed.apply(hit{kind: hitRow, index: 1}, testPalette); err != nil {
		t.Fatal(err)
	}
	if sel, ok := ed.scene.Selected(); !ok || sel != 1 {
		t.Fatalf("selected %d %v", sel, ok)
	}
	if _, err := ed.apply(hit{kind: hitRow, index: 1}, testPalette); err != nil {
		t.Fatal(err)
	}
	if _, ok := ed.scene.Selected(); ok {
		t.Fatal("second click should deselect")
	}
}

func TestEditorPaletteRecolorsTarget(t *testing.T) {
	ed := newEditor(t, 2)
	msg, _ := ed.apply(hit{kind: hitPalette, index: 3}, testPalette)
	if msg != "select a triangle first" {
		t.Fatalf("unexpected message %q", msg)
	}

	_, _ = ed.apply(hit{kind: hitRow, index: 1}, testPalette)
	if msg, _ := ed.apply(hit{kind: hitSwatch, index: 2}, testPalette); msg != "editing vertex C" {
		t.Fatalf("swatch message %q", msg)
	}
	if _, err := ed.apply(hit{kind: hitPalette, index: 7}, testPalette); err != nil {
		t.Fatal(err)
	}
	_, _ = ed.apply(hit{kind: hitSwatch, index: edgeTarget}, testPalette)
	if _, err := ed.apply(hit{kind: hitPalette, index: 9}, testPalette); err != nil {
		t.Fatal(err)
	}

	tris := ed.scene.Triangles()
	if tris[1].Vertices[2].Color != testPalette(7) {
		t.Fatalf("vertex C color %v", tris[1].Vertices[2].Color)
	}
	if tris[1].Edge != testPalette(9) {
		t.Fatalf("edge color %v", tris[1].Edge)
	}
	if tris[0].Vertices[2].Color != geom.Black || tris[0].Edge != geom.Black {
		t.Fatal("unselected triangle changed")
	}
}

func TestEditorDelete(t *testing.T) {
	ed := newEditor(t, 3)
	if msg, _ := ed.apply(hit{kind: hitDelete}, testPalette); msg != "nothing selected" {
		t.Fatalf("unexpected message %q", msg)
	}
	_, _ = ed.apply(hit{kind: hitRow, index: 0}, testPalette)
	msg, err := ed.apply(hit{kind: hitDelete}, testPalette)
	if err != nil || msg != "deleted Triangle 1" {
		t.Fatalf("delete: %q %v", msg, err)
	}
	if ed.scene.Len() != 2 {
		t.Fatalf("len %d", ed.scene.Len())
	}
	if _, ok := ed.scene.Selected(); ok {
		t.Fatal("deleted triangle still selected")
	}
}

func TestEditorBadSwatch(t *testing.T) {
	ed := newEditor(t, 0)
	if _, err := ed.apply(hit{kind: hitSwatch, index: 9}, testPalette); err == nil {
		t.Fatal("expected error")
	}
}
