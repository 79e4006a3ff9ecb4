// Package geom holds the triangle model together with the point-in-triangle
// test and the inverse-squared-distance color blend used to shade it.
package geom

import (
	"math"

	"github.com/google/uuid"
)

// Point is a location in surface pixel coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Vertex is a triangle corner with its own fill color.
type Vertex struct {
	Point
	Color RGB
}

// Triangle is three vertices in click order plus an edge color. The shape is
// fixed once built; only the colors change afterwards. Winding is whatever the
// clicks produced and is never normalised.
type Triangle struct {
	ID       string
	Vertices [3]Vertex
	Edge     RGB
	EdgeSet  bool
}

// NewTriangle builds a triangle with black vertices and the given edge color.
func NewTriangle(a, b, c Point, edge RGB) Triangle {
	return Triangle{
		ID: uuid.NewString(),
		Vertices: [3]Vertex{
			{Point: a},
			{Point: b},
			{Point: c},
		},
		Edge:    edge,
		EdgeSet: true,
	}
}

// Points returns the three vertex positions in stored order.
func (t Triangle) Points() [3]Point {
	return [3]Point{t.Vertices[0].Point, t.Vertices[1].Point, t.Vertices[2].Point}
}

// EdgeColor returns the triangle's own edge color, or fallback when none is set.
func (t Triangle) EdgeColor(fallback RGB) RGB {
	if t.EdgeSet {
		return t.Edge
	}
	return fallback
}

// Bounds returns the inclusive axis-aligned bounding box of the triangle.
func Bounds(t Triangle) (lo, hi Point) {
	lo = t.Vertices[0].Point
	hi = lo
	for _, v := range t.Vertices[1:] {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
	}
	return lo, hi
}

// Contains reports whether (px, py) lies inside t. The test works on the two
// edge vectors leaving vertex A and accepts u >= 0, v >= 0, u+v < 1, so the
// edge opposite A is excluded. Degenerate (zero area) triangles contain no
// points.
func Contains(px, py float64, t Triangle) bool {
	a, b, c := t.Vertices[0], t.Vertices[1], t.Vertices[2]

	v0x, v0y := c.X-a.X, c.Y-a.Y
	v1x, v1y := b.X-a.X, b.Y-a.Y
	v2x, v2y := px-a.X, py-a.Y

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 || math.IsNaN(denom) || math.IsInf(denom, 0) {
		return false
	}
	inv := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv
	return u >= 0 && v >= 0 && u+v < 1
}

// Blend computes the fill color at (px, py) by weighting each vertex color by
// the inverse square of its distance to the point. A point sitting exactly on
// a vertex takes that vertex's color.
func Blend(px, py float64, t Triangle) RGB {
	var w [3]float64
	var sum float64
	for i, v := range t.Vertices {
		dx, dy := px-v.X, py-v.Y
		d2 := dx*dx + dy*dy
		if d2 == 0 {
			return v.Color
		}
		w[i] = 1 / d2
		if math.IsInf(w[i], 0) {
			return v.Color
		}
		sum += w[i]
	}
	if sum == 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		return nearest(px, py, t)
	}
	var r, g, b float64
	for i, v := range t.Vertices {
		wn := w[i] / sum
		r += float64(v.Color.R) * wn
		g += float64(v.Color.G) * wn
		b += float64(v.Color.B) * wn
	}
	return RGB{R: channel(r), G: channel(g), B: channel(b)}
}

// nearest picks the closest vertex color; used when the weights cannot be
// normalised (all distances huge, or the sum overflows).
func nearest(px, py float64, t Triangle) RGB {
	best := 0
	bestD := math.Inf(1)
	for i, v := range t.Vertices {
		d := math.Hypot(px-v.X, py-v.Y)
		if d < bestD {
			best, bestD = i, d
		}
	}
	return t.Vertices[best].Color
}

// channel rounds half up and saturates to a byte.
func channel(f float64) uint8 {
	if math.IsNaN(f) {
		return 0
	}
	f = math.Floor(f + 0.5)
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}
