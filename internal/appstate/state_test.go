package appstate

import (
	"bytes"
	"errors"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/trishade/internal/geom"
	"github.com/example/trishade/internal/scene"
)

func TestNewWiresSceneToCanvas(t *testing.T) {
	a := New(WithSurfaceSize(40, 30), WithBackground(color.White))
	if got := a.Canvas.Bounds().Size(); got.X != 40 || got.Y != 30 {
		t.Fatalf("surface size %v", got)
	}
	for _, p := range []geom.Point{{X: 2, Y: 2}, {X: 30, Y: 2}, {X: 2, Y: 25}} {
		a.Scene.AddPoint(p)
	}
	img := a.Canvas.Clone()
	if got := img.RGBAAt(8, 8); got != (color.RGBA{A: 255}) {
		t.Fatalf("inside pixel %v, want black fill", got)
	}
	select {
	case <-a.updateCh:
	default:
		t.Fatal("mutation did not request a repaint")
	}
}

func TestNewAppliesSceneOptions(t *testing.T) {
	red := geom.RGB{R: 255}
	a := New(WithSurfaceSize(20, 20), WithSceneOptions(scene.WithDefaultEdge(red)), WithStroke(geom.RGB{G: 1}, 3))
	if a.Renderer.StrokeWidth != 3 || a.Renderer.DefaultStroke != (geom.RGB{G: 1}) {
		t.Fatalf("stroke not applied: %+v", a.Renderer)
	}
	for _, p := range []geom.Point{{X: 1, Y: 1}, {X: 10, Y: 1}, {X: 1, Y: 10}} {
		a.Scene.AddPoint(p)
	}
	if a.Scene.Triangles()[0].Edge != red {
		t.Fatal("scene option not applied")
	}
}

func TestPerformSaveClearDelete(t *testing.T) {
	out := filepath.Join(t.TempDir(), "scene.png")
	a := New(WithSurfaceSize(30, 30), WithOutput(out))
	for i := 0; i < 2; i++ {
		for _, p := range []geom.Point{{X: 1, Y: 1}, {X: 20, Y: 1}, {X: 1, Y: 20}} {
			a.Scene.AddPoint(p)
		}
	}

	msg, err := a.perform("save")
	if err != nil || msg != "saved "+out {
		t.Fatalf("save: %q %v", msg, err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output not written: %v", err)
	}

	if err := a.Scene.Select(1); err != nil {
		t.Fatal(err)
	}
	if msg, err := a.perform("delete"); err != nil || msg != "deleted Triangle 2" {
		t.Fatalf("delete: %q %v", msg, err)
	}
	if _, err := a.perform("clear"); err != nil || a.Scene.Len() != 0 {
		t.Fatalf("clear: %v len=%d", err, a.Scene.Len())
	}
	if _, err := a.perform("bogus"); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestPerformSaveBadExtension(t *testing.T) {
	a := New(WithSurfaceSize(5, 5), WithOutput(filepath.Join(t.TempDir(), "scene.bmp")))
	if _, err := a.perform("save"); err == nil {
		t.Fatal("expected error")
	}
}

func TestLayoutShortcutsInsideBar(t *testing.T) {
	l := panelLayout(1020, 624, DefaultSurface(), 0, -1, 0, paletteLen())
	scs := layoutShortcuts(l.bar)
	if len(scs) != len(bottomShortcuts) {
		t.Fatalf("got %d shortcuts", len(scs))
	}
	for i, sc := range scs {
		if !sc.rect.In(l.bar) {
			t.Fatalf("shortcut %q at %v outside bar %v", sc.label, sc.rect, l.bar)
		}
		if i > 0 && sc.rect.Min.X <= scs[i-1].rect.Max.X {
			t.Fatalf("shortcut %q overlaps previous", sc.label)
		}
	}
}

func TestEnsurePaletteColor(t *testing.T) {
	n := len(PaletteColors())
	if idx := EnsurePaletteColor(color.RGBA{255, 0, 0, 255}, ""); PaletteColors()[idx].Name != "Red" {
		t.Fatalf("existing color should keep its entry, got index %d", idx)
	}
	if len(PaletteColors()) != n {
		t.Fatalf("palette grew for an existing color")
	}
	idx := EnsurePaletteColor(color.RGBA{1, 2, 3, 255}, "")
	t.Cleanup(func() {
		paletteMu.Lock()
		palette = palette[:n]
		paletteNames = paletteNames[:n]
		paletteMu.Unlock()
	})
	if idx != n {
		t.Fatalf("new color index %d, want %d", idx, n)
	}
	if got := PaletteColors()[idx].Name; got != "#010203" {
		t.Fatalf("new color name %q", got)
	}
	if got := paletteRGB(idx); got != (geom.RGB{R: 1, G: 2, B: 3}) {
		t.Fatalf("paletteRGB %v", got)
	}
}

func TestAnnounceLogsOnce(t *testing.T) {
	tests := []struct {
		name  string
		msg   string
		err   error
		want  string
		lines int
	}{
		{name: "message", msg: "saved out.png", want: "saved out.png", lines: 1},
		{name: "error wins", msg: "ignored", err: errors.New("save: boom"), want: "save: boom", lines: 1},
		{name: "silent", lines: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got := announce(log.New(&buf, "", 0), tt.msg, tt.err)
			if got != tt.want {
				t.Fatalf("status %q, want %q", got, tt.want)
			}
			if n := strings.Count(buf.String(), "\n"); n != tt.lines {
				t.Fatalf("logged %d lines, want %d: %q", n, tt.lines, buf.String())
			}
		})
	}
}
