// Package export writes a rendered scene to PNG or PDF.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// ErrUnknownFormat is returned by Save for extensions other than .png and .pdf.
var ErrUnknownFormat = errors.New("unknown export format")

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePDF writes a single page PDF whose page is exactly the image size in
// points, with img embedded at full size.
func WritePDF(w io.Writer, img image.Image, title string) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("write pdf: empty image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	wd, ht := float64(b.Dx()), float64(b.Dy())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	if title != "" {
		pdf.SetTitle(title, true)
	}
	pdf.SetCreator("trishade", true)
	pdf.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("scene", opts, &buf)
	pdf.ImageOptions("scene", 0, 0, wd, ht, false, opts, 0, "")
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// Save writes img to path, choosing the format from the file extension.
func Save(path string, img image.Image) error {
	var write func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		write = func(w io.Writer) error { return WritePNG(w, img) }
	case ".pdf":
		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		write = func(w io.Writer) error { return WritePDF(w, img, title) }
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
