package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"
)

// Surface is the set of paint primitives the renderer issues. Implementations
// clip to their own bounds.
type Surface interface {
	Bounds() image.Rectangle
	ClearRegion(r image.Rectangle)
	FillRect(r image.Rectangle, col color.Color)
	StrokeLine(pts []image.Point, col color.Color, width int)
}

// Canvas is a Surface backed by an *image.RGBA. A render pass holds the
// Canvas lock for its whole duration, so readers using Clone never observe a
// half drawn frame.
type Canvas struct {
	mu         sync.RWMutex
	img        *image.RGBA
	background color.RGBA
}

// NewCanvas returns a canvas of the given size cleared to background.
func NewCanvas(width, height int, background color.Color) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: color.RGBAModel.Convert(background).(color.RGBA),
	}
	c.ClearRegion(c.img.Bounds())
	return c
}

// Lock and Unlock bracket a render pass.
func (c *Canvas) Lock()   { c.mu.Lock() }
func (c *Canvas) Unlock() { c.mu.Unlock() }

// Bounds implements Surface.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Background returns the color ClearRegion paints with.
func (c *Canvas) Background() color.RGBA { return c.background }

// ClearRegion implements Surface.
func (c *Canvas) ClearRegion(r image.Rectangle) {
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(c.background), image.Point{}, draw.Src)
}

// FillRect implements Surface.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	if r.Dx() == 1 && r.Dy() == 1 {
		c.img.SetRGBA(r.Min.X, r.Min.Y, color.RGBAModel.Convert(col).(color.RGBA))
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// StrokeLine implements Surface. Consecutive points are joined with straight
// segments; the path is not closed implicitly.
func (c *Canvas) StrokeLine(pts []image.Point, col color.Color, width int) {
	if len(pts) == 1 {
		setThickPixel(c.img, pts[0].X, pts[0].Y, width, col)
		return
	}
	for i := 1; i < len(pts); i++ {
		drawLine(c.img, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, col, width)
	}
}

// Image exposes the backing image. Callers must hold the lock.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clone returns a copy of the current pixels.
func (c *Canvas) Clone() *image.RGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
