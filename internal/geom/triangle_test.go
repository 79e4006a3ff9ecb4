package geom

import (
	"errors"
	"math"
	"testing"
)

func rgbTriangle() Triangle {
	t := NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10), Black)
	t.Vertices[0].Color = RGB{R: 255}
	t.Vertices[1].Color = RGB{G: 255}
	t.Vertices[2].Color = RGB{B: 255}
	return t
}

func TestContains(t *testing.T) {
	tri := NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10), Black)
	tests := []struct {
		name   string
		x, y   float64
		inside bool
	}{
		{"vertex A", 0, 0, true},
		{"interior", 2, 2, true},
		{"edge AB", 5, 0, true},
		{"edge AC", 0, 5, true},
		{"far edge excluded", 5, 5, false},
		{"vertex B on far edge", 10, 0, false},
		{"outside left", -1, 2, false},
		{"outside beyond hypotenuse", 8, 8, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Contains(tc.x, tc.y, tri); got != tc.inside {
				t.Fatalf("Contains(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.inside)
			}
		})
	}
}

func TestContainsEitherWinding(t *testing.T) {
	cw := NewTriangle(Pt(10, 10), Pt(100, 10), Pt(50, 100), Black)
	ccw := NewTriangle(Pt(10, 10), Pt(50, 100), Pt(100, 10), Black)
	for _, p := range []Point{{50, 40}, {30, 20}, {70, 30}} {
		if !Contains(p.X, p.Y, cw) || !Contains(p.X, p.Y, ccw) {
			t.Fatalf("point %v should be inside both windings", p)
		}
	}
}

func TestContainsIdempotent(t *testing.T) {
	tri := NewTriangle(Pt(3, 7), Pt(40, 12), Pt(9, 33), Black)
	for y := 0.0; y < 40; y++ {
		for x := 0.0; x < 45; x++ {
			if Contains(x, y, tri) != Contains(x, y, tri) {
				t.Fatalf("Contains not stable at (%v, %v)", x, y)
			}
		}
	}
}

func TestContainsDegenerate(t *testing.T) {
	cases := map[string]Triangle{
		"collinear": NewTriangle(Pt(0, 0), Pt(10, 10), Pt(20, 20), Black),
		"duplicate": NewTriangle(Pt(5, 5), Pt(5, 5), Pt(9, 1), Black),
		"point":     NewTriangle(Pt(1, 1), Pt(1, 1), Pt(1, 1), Black),
	}
	for name, tri := range cases {
		t.Run(name, func(t *testing.T) {
			for y := -1.0; y <= 21; y++ {
				for x := -1.0; x <= 21; x++ {
					if Contains(x, y, tri) {
						t.Fatalf("degenerate triangle contains (%v, %v)", x, y)
					}
				}
			}
		})
	}
}

func TestContainsNaN(t *testing.T) {
	tri := NewTriangle(Pt(0, 0), Pt(10, 0), Pt(0, 10), Black)
	if Contains(math.NaN(), 1, tri) {
		t.Fatal("NaN query point should be outside")
	}
}

func TestBlendAtVertexReturnsExactColor(t *testing.T) {
	tri := rgbTriangle()
	for i, v := range tri.Vertices {
		if got := Blend(v.X, v.Y, tri); got != v.Color {
			t.Fatalf("vertex %d: got %v want %v", i, got, v.Color)
		}
	}
}

func TestBlendCentroidIsMixed(t *testing.T) {
	tri := rgbTriangle()
	got := Blend(3, 3, tri)
	for name, ch := range map[string]uint8{"r": got.R, "g": got.G, "b": got.B} {
		if ch == 0 || ch == 255 {
			t.Fatalf("channel %s at an extreme: %v", name, got)
		}
	}
}

func TestBlendNextToVertexIsDominated(t *testing.T) {
	tri := rgbTriangle()
	got := Blend(1, 0, tri)
	if got.R <= got.G || got.R <= got.B {
		t.Fatalf("pixel next to A should be red dominated, got %v", got)
	}
}

func TestBlendInverseSquareWeights(t *testing.T) {
	tri := NewTriangle(Pt(0, 0), Pt(4, 0), Pt(0, 4), Black)
	tri.Vertices[0].Color = RGB{R: 200}
	// Distances from (1,0): 1, 3, sqrt(17). Weights 1, 1/9, 1/17.
	sum := 1 + 1.0/9 + 1.0/17
	want := uint8(math.Floor(200/sum + 0.5))
	if got := Blend(1, 0, tri); got.R != want || got.G != 0 || got.B != 0 {
		t.Fatalf("got %v want R=%d", got, want)
	}
}

func TestBlendUniformColor(t *testing.T) {
	tri := NewTriangle(Pt(0, 0), Pt(30, 0), Pt(0, 30), Black)
	c := RGB{R: 17, G: 128, B: 250}
	for i := range tri.Vertices {
		tri.Vertices[i].Color = c
	}
	for _, p := range []Point{{1, 1}, {10, 5}, {3, 20}} {
		if got := Blend(p.X, p.Y, tri); got != c {
			t.Fatalf("uniform blend at %v: got %v want %v", p, got, c)
		}
	}
}

func TestChannelRoundsHalfUpAndSaturates(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0.5, 1},
		{1.49, 1},
		{254.5, 255},
		{300, 255},
		{-3, 0},
		{math.NaN(), 0},
	}
	for _, tc := range tests {
		if got := channel(tc.in); got != tc.want {
			t.Errorf("channel(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestBounds(t *testing.T) {
	tri := NewTriangle(Pt(10, 40), Pt(3.5, 7), Pt(22, 12), Black)
	lo, hi := Bounds(tri)
	if lo != Pt(3.5, 7) || hi != Pt(22, 40) {
		t.Fatalf("unexpected bounds %v %v", lo, hi)
	}
}

func TestNewTriangleDefaults(t *testing.T) {
	tri := NewTriangle(Pt(10, 10), Pt(100, 10), Pt(50, 100), Black)
	if tri.ID == "" {
		t.Fatal("expected an id")
	}
	for i, v := range tri.Vertices {
		if v.Color != Black {
			t.Fatalf("vertex %d not black: %v", i, v.Color)
		}
	}
	if got := tri.EdgeColor(Blue); got != Black {
		t.Fatalf("edge color %v, want black", got)
	}
	var bare Triangle
	if got := bare.EdgeColor(Blue); got != Blue {
		t.Fatalf("unset edge should fall back, got %v", got)
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#FF0000", RGB{R: 255}, false},
		{"#00ff7f", RGB{G: 255, B: 127}, false},
		{"#123456", RGB{R: 0x12, G: 0x34, B: 0x56}, false},
		{"FF0000", RGB{}, true},
		{"#FFF", RGB{}, true},
		{"#GG0000", RGB{}, true},
		{"#FF00001", RGB{}, true},
		{"", RGB{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRGB(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrMalformedColor) {
					t.Fatalf("expected ErrMalformedColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			if back, _ := ParseRGB(got.Hex()); back != got {
				t.Fatalf("hex round trip changed %v to %v", got, back)
			}
		})
	}
}
