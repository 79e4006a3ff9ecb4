package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 6), uint8(y * 8), 90, 255})
		}
	}
	return img
}

func TestWritePNGRoundTrip(t *testing.T) {
	src := testImage()
	var buf bytes.Buffer
	if err := WritePNG(&buf, src); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Bounds() != src.Bounds() {
		t.Fatalf("bounds %v, want %v", got.Bounds(), src.Bounds())
	}
	r, g, b, _ := got.At(10, 20).RGBA()
	if uint8(r>>8) != 60 || uint8(g>>8) != 160 || uint8(b>>8) != 90 {
		t.Fatalf("pixel mismatch: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, testImage(), "scene"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("missing pdf header: %q", buf.Bytes()[:8])
	}
	if !bytes.Contains(buf.Bytes(), []byte("/MediaBox [0 0 40.00 30.00]")) {
		t.Fatalf("page not sized to the image")
	}
}

func TestWritePDFEmptyImage(t *testing.T) {
	if err := WritePDF(&bytes.Buffer{}, image.NewRGBA(image.Rect(0, 0, 0, 0)), ""); err == nil {
		t.Fatal("expected error for empty image")
	}
}

func TestSaveByExtension(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		prefix string
	}{
		{"out.png", "\x89PNG"},
		{"out.PDF", "%PDF-"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := Save(path, testImage()); err != nil {
				t.Fatalf("save: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte(tc.prefix)) {
				t.Fatalf("unexpected header %q", data[:5])
			}
		})
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := Save(path, testImage()); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("file created for unknown format")
	}
}
