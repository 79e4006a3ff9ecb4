package appstate

import (
	"image"

	"github.com/example/trishade/internal/geom"
)

const (
	panelWidth   = 220
	bottomHeight = 24
	titleHeight  = 24
	rowHeight    = 22
	detailHeight = 56
	pad          = 6

	swatchSize    = 18
	swatchStep    = 44
	deleteWidth   = 70
	deleteHeight  = 20
	paletteCell   = 20
	paletteStep   = 24
	paletteCols   = 8
	edgeTarget    = 3
	targetCount   = 4
	minCanvasZoom = 0.05
)

// rowRect is one visible "Triangle N" entry of the panel.
type rowRect struct {
	index int
	rect  image.Rectangle
}

// layout is the geometry of one frame. Everything is in window pixels.
type layout struct {
	canvas image.Rectangle
	zoom   float64
	panel  image.Rectangle
	bar    image.Rectangle

	rows   []rowRect
	scroll int

	// Valid only when detail is true: swatches for vertices A, B, C then
	// the edge, and the Delete button of the selected entry.
	detail    bool
	swatches  [targetCount]image.Rectangle
	deleteBtn image.Rectangle

	palette []image.Rectangle
}

// fitZoom scales the surface down to fit the space left of the panel. The
// surface is never enlarged so clicks map to whole surface pixels.
func fitZoom(surface image.Point, availW, availH int) float64 {
	if surface.X <= 0 || surface.Y <= 0 {
		return 1
	}
	zx := float64(availW) / float64(surface.X)
	zy := float64(availH) / float64(surface.Y)
	z := zx
	if zy < z {
		z = zy
	}
	if z > 1 {
		z = 1
	}
	if z < minCanvasZoom {
		z = minCanvasZoom
	}
	return z
}

// panelLayout computes the frame geometry for a window of winW×winH showing a
// surface of the given size and count triangles. selected is the selected
// index or -1; scroll is the index of the first listed triangle and is
// clamped into range.
func panelLayout(winW, winH int, surface image.Point, count, selected, scroll int, paletteLen int) layout {
	var l layout
	l.bar = image.Rect(0, winH-bottomHeight, winW, winH)
	px := winW - panelWidth
	if px < 0 {
		px = 0
	}
	l.panel = image.Rect(px, 0, winW, l.bar.Min.Y)

	l.zoom = fitZoom(surface, px, l.bar.Min.Y)
	l.canvas = image.Rect(0, 0, int(float64(surface.X)*l.zoom), int(float64(surface.Y)*l.zoom))

	// Palette sits at the bottom of the panel.
	paletteRows := (paletteLen + paletteCols - 1) / paletteCols
	top := l.panel.Max.Y - pad - paletteRows*paletteStep
	for i := 0; i < paletteLen; i++ {
		x := l.panel.Min.X + pad + (i%paletteCols)*paletteStep
		y := top + (i/paletteCols)*paletteStep
		l.palette = append(l.palette, image.Rect(x, y, x+paletteCell, y+paletteCell))
	}
	listBottom := top - pad

	if scroll > count-1 {
		scroll = count - 1
	}
	if scroll < 0 {
		scroll = 0
	}
	l.scroll = scroll

	y := l.panel.Min.Y + titleHeight
	for i := scroll; i < count; i++ {
		h := rowHeight
		if i == selected {
			h += detailHeight
		}
		if y+h > listBottom {
			break
		}
		row := image.Rect(l.panel.Min.X+pad, y, l.panel.Max.X-pad, y+rowHeight)
		l.rows = append(l.rows, rowRect{index: i, rect: row})
		if i == selected {
			l.detail = true
			sy := row.Max.Y + 4
			for t := 0; t < targetCount; t++ {
				sx := row.Min.X + t*swatchStep
				l.swatches[t] = image.Rect(sx, sy, sx+swatchSize, sy+swatchSize)
			}
			dy := sy + swatchSize + 8
			l.deleteBtn = image.Rect(row.Min.X, dy, row.Min.X+deleteWidth, dy+deleteHeight)
		}
		y += h
	}
	return l
}

type hitKind int

const (
	hitNone hitKind = iota
	hitCanvas
	hitRow
	hitSwatch
	hitDelete
	hitPalette
)

// hit is the result of a click. index is the triangle for hitRow, the edit
// target for hitSwatch and the palette entry for hitPalette. point is the
// surface position for hitCanvas.
type hit struct {
	kind  hitKind
	index int
	point geom.Point
}

// hitPanel resolves a click at window position (x, y).
func hitPanel(l layout, x, y float64) hit {
	p := image.Pt(int(x), int(y))
	if x < 0 || y < 0 {
		return hit{kind: hitNone}
	}
	if p.In(l.panel) {
		for i, r := range l.palette {
			if p.In(r) {
				return hit{kind: hitPalette, index: i}
			}
		}
		if l.detail {
			if p.In(l.deleteBtn) {
				return hit{kind: hitDelete}
			}
			for t, r := range l.swatches {
				if p.In(r) {
					return hit{kind: hitSwatch, index: t}
				}
			}
		}
		for _, r := range l.rows {
			if p.In(r.rect) {
				return hit{kind: hitRow, index: r.index}
			}
		}
		return hit{kind: hitNone}
	}
	if p.In(l.canvas) {
		return hit{kind: hitCanvas, point: toSurface(l, x, y)}
	}
	return hit{kind: hitNone}
}

// toSurface maps a window position over the canvas to surface coordinates.
func toSurface(l layout, x, y float64) geom.Point {
	return geom.Pt((x-float64(l.canvas.Min.X))/l.zoom, (y-float64(l.canvas.Min.Y))/l.zoom)
}

// toWindow maps a surface position to window pixels.
func toWindow(l layout, p geom.Point) image.Point {
	return image.Pt(l.canvas.Min.X+int(p.X*l.zoom), l.canvas.Min.Y+int(p.Y*l.zoom))
}

// DefaultSurface is the surface size used when none is configured.
func DefaultSurface() image.Point { return image.Pt(DefaultWidth, DefaultHeight) }
