package render

import (
	"image"
	"math"

	"github.com/example/trishade/internal/geom"
)

// Pixel is one filled pixel produced by the rasterizer.
type Pixel struct {
	X, Y  int
	Color geom.RGB
}

// noClip covers every pixel an int32 coordinate can address.
var noClip = image.Rect(math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32)

// FillFunc scans the integer pixels of t's bounding box row by row, top to
// bottom and left to right, and calls fn for each pixel inside t with its
// blended color. Work is proportional to the bounding box area.
func FillFunc(t geom.Triangle, fn func(x, y int, c geom.RGB)) {
	FillWithin(t, noClip, fn)
}

// FillWithin is FillFunc restricted to the pixels of clip. Only the part of
// the bounding box inside clip is scanned.
func FillWithin(t geom.Triangle, clip image.Rectangle, fn func(x, y int, c geom.RGB)) {
	lo, hi := geom.Bounds(t)
	if !finite(lo) || !finite(hi) || clip.Empty() {
		return
	}
	x0f := math.Max(math.Ceil(lo.X), float64(clip.Min.X))
	x1f := math.Min(math.Floor(hi.X), float64(clip.Max.X-1))
	y0f := math.Max(math.Ceil(lo.Y), float64(clip.Min.Y))
	y1f := math.Min(math.Floor(hi.Y), float64(clip.Max.Y-1))
	if x0f > x1f || y0f > y1f {
		return
	}
	x0, x1, y0, y1 := int(x0f), int(x1f), int(y0f), int(y1f)
	for y := y0; y <= y1; y++ {
		fy := float64(y)
		for x := x0; x <= x1; x++ {
			fx := float64(x)
			if geom.Contains(fx, fy, t) {
				fn(x, y, geom.Blend(fx, fy, t))
			}
		}
	}
}

// Fill returns every pixel FillFunc would emit, in scan order.
func Fill(t geom.Triangle) []Pixel {
	var out []Pixel
	FillFunc(t, func(x, y int, c geom.RGB) {
		out = append(out, Pixel{X: x, Y: y, Color: c})
	})
	return out
}

// Paint fills the part of t that lies on s one 1x1 rectangle at a time.
func Paint(s Surface, t geom.Triangle) {
	FillWithin(t, s.Bounds(), func(x, y int, c geom.RGB) {
		s.FillRect(image.Rect(x, y, x+1, y+1), c.RGBA8())
	})
}

// StrokeEdges draws A->B->C->A in stored order using the triangle's edge
// color, or fallback when the triangle has none. Edges reaching past the
// surface are cut at its border, widened by the stroke width.
func StrokeEdges(s Surface, t geom.Triangle, fallback geom.RGB, width int) {
	pts := t.Points()
	for _, p := range pts {
		if !finite(p) {
			return
		}
	}
	col := t.EdgeColor(fallback).RGBA8()
	area := s.Bounds().Inset(-width)
	if within(pts[0], area) && within(pts[1], area) && within(pts[2], area) {
		s.StrokeLine([]image.Point{
			roundPoint(pts[0]),
			roundPoint(pts[1]),
			roundPoint(pts[2]),
			roundPoint(pts[0]),
		}, col, width)
		return
	}
	for i := range pts {
		a, b, ok := clipSegment(pts[i], pts[(i+1)%3], area)
		if !ok {
			continue
		}
		s.StrokeLine([]image.Point{roundPoint(a), roundPoint(b)}, col, width)
	}
}

// clipSegment cuts a-b to r (Liang-Barsky) and reports whether anything is
// left.
func clipSegment(a, b geom.Point, r image.Rectangle) (geom.Point, geom.Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - float64(r.Min.X)},
		{dx, float64(r.Max.X) - a.X},
		{-dy, a.Y - float64(r.Min.Y)},
		{dy, float64(r.Max.Y) - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return geom.Pt(a.X+t0*dx, a.Y+t0*dy), geom.Pt(a.X+t1*dx, a.Y+t1*dy), true
}

func roundPoint(p geom.Point) image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

func within(p geom.Point, r image.Rectangle) bool {
	return p.X >= float64(r.Min.X) && p.X <= float64(r.Max.X) &&
		p.Y >= float64(r.Min.Y) && p.Y <= float64(r.Max.Y)
}

func finite(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
