package appstate

import (
	"image"
	"testing"

	"github.com/example/trishade/internal/geom"
)

func center(r image.Rectangle) (float64, float64) {
	c := r.Min.Add(r.Max).Div(2)
	return float64(c.X), float64(c.Y)
}

func TestFitZoom(t *testing.T) {
	tests := []struct {
		name    string
		surface image.Point
		w, h    int
		want    float64
	}{
		{"fits", image.Pt(800, 600), 1000, 700, 1},
		{"too wide", image.Pt(800, 600), 400, 600, 0.5},
		{"too tall", image.Pt(800, 600), 800, 150, 0.25},
		{"no room", image.Pt(800, 600), 0, 0, minCanvasZoom},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fitZoom(tc.surface, tc.w, tc.h); got != tc.want {
				t.Fatalf("fitZoom = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPanelLayoutRegions(t *testing.T) {
	l := panelLayout(800+panelWidth, 600+bottomHeight, image.Pt(800, 600), 3, -1, 0, 16)
	if l.zoom != 1 || l.canvas != image.Rect(0, 0, 800, 600) {
		t.Fatalf("canvas %v zoom %v", l.canvas, l.zoom)
	}
	if l.panel.Min.X != 800 || l.bar.Min.Y != 600 {
		t.Fatalf("panel %v bar %v", l.panel, l.bar)
	}
	if len(l.rows) != 3 || l.detail {
		t.Fatalf("rows %d detail %v", len(l.rows), l.detail)
	}
	if len(l.palette) != 16 {
		t.Fatalf("palette cells %d", len(l.palette))
	}
	for _, r := range l.palette {
		if !r.In(l.panel) {
			t.Fatalf("palette cell %v outside panel %v", r, l.panel)
		}
		for _, row := range l.rows {
			if r.Overlaps(row.rect) {
				t.Fatalf("palette cell %v overlaps row %v", r, row.rect)
			}
		}
	}
}

func TestPanelLayoutSelectedDetail(t *testing.T) {
	l := panelLayout(1020, 624, image.Pt(800, 600), 3, 1, 0, 16)
	if !l.detail {
		t.Fatal("selected entry should expand")
	}
	if l.rows[2].rect.Min.Y < l.deleteBtn.Max.Y {
		t.Fatalf("row after the selection %v overlaps its detail %v", l.rows[2].rect, l.deleteBtn)
	}
	for i, s := range l.swatches {
		if s.Min.Y < l.rows[1].rect.Max.Y || s.Max.Y > l.rows[2].rect.Min.Y {
			t.Fatalf("swatch %d %v outside the detail area", i, s)
		}
		if s.Overlaps(l.deleteBtn) {
			t.Fatalf("swatch %d overlaps delete button", i)
		}
	}
}

func TestPanelLayoutScrollAndOverflow(t *testing.T) {
	l := panelLayout(1020, 624, image.Pt(800, 600), 200, -1, 500, 16)
	if l.scroll != 199 {
		t.Fatalf("scroll clamped to %d, want 199", l.scroll)
	}
	l = panelLayout(1020, 624, image.Pt(800, 600), 200, -1, 0, 16)
	if len(l.rows) == 0 || len(l.rows) >= 200 {
		t.Fatalf("expected a partial list, got %d rows", len(l.rows))
	}
	last := l.rows[len(l.rows)-1].rect
	if last.Max.Y > l.palette[0].Min.Y {
		t.Fatalf("rows run into the palette: %v", last)
	}
}

func TestHitPanel(t *testing.T) {
	l := panelLayout(1020, 624, image.Pt(800, 600), 2, 0, 0, 16)

	x, y := center(l.rows[1].rect)
	if h := hitPanel(l, x, y); h.kind != hitRow || h.index != 1 {
		t.Fatalf("row hit %+v", h)
	}
	x, y = center(l.swatches[edgeTarget])
	if h := hitPanel(l, x, y); h.kind != hitSwatch || h.index != edgeTarget {
		t.Fatalf("swatch hit %+v", h)
	}
	x, y = center(l.deleteBtn)
	if h := hitPanel(l, x, y); h.kind != hitDelete {
		t.Fatalf("delete hit %+v", h)
	}
	x, y = center(l.palette[5])
	if h := hitPanel(l, x, y); h.kind != hitPalette || h.index != 5 {
		t.Fatalf("palette hit %+v", h)
	}
	if h := hitPanel(l, 10.5, 20.25); h.kind != hitCanvas || h.point != geom.Pt(10.5, 20.25) {
		t.Fatalf("canvas hit %+v", h)
	}
	if h := hitPanel(l, 10, 610); h.kind != hitNone {
		t.Fatalf("shortcut bar should not hit the canvas: %+v", h)
	}
	if h := hitPanel(l, -1, 5); h.kind != hitNone {
		t.Fatalf("negative coordinates hit %+v", h)
	}
}

func TestSurfaceMappingWithZoom(t *testing.T) {
	l := panelLayout(400+panelWidth, 300+bottomHeight, image.Pt(800, 600), 0, -1, 0, 16)
	if l.zoom != 0.5 {
		t.Fatalf("zoom %v", l.zoom)
	}
	h := hitPanel(l, 50, 100)
	if h.kind != hitCanvas || h.point != geom.Pt(100, 200) {
		t.Fatalf("scaled canvas hit %+v", h)
	}
	if p := toWindow(l, geom.Pt(100, 200)); p != image.Pt(50, 100) {
		t.Fatalf("toWindow %v", p)
	}
}
