package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/example/trishade/internal/config"
	"github.com/example/trishade/internal/geom"
	"github.com/example/trishade/internal/render"
	"github.com/example/trishade/internal/scene"
)

// surfaceFlags are the drawing surface settings shared by the commands that
// build a scene. Defaults come from the loaded config.
type surfaceFlags struct {
	width       int
	height      int
	background  string
	edgeColor   string
	defaultEdge string
	strokeWidth int
}

func (s *surfaceFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	if cfg == nil {
		cfg = config.New()
	}
	fs.IntVar(&s.width, "width", cfg.Width, "surface width in pixels")
	fs.IntVar(&s.height, "height", cfg.Height, "surface height in pixels")
	fs.StringVar(&s.background, "background", cfg.Background, "surface background color name or hex value")
	fs.StringVar(&s.edgeColor, "edge-color", cfg.EdgeColor, "stroke color for triangles without an edge color")
	fs.StringVar(&s.defaultEdge, "default-edge", cfg.DefaultEdge, "edge color given to new triangles")
	fs.IntVar(&s.strokeWidth, "stroke-width", cfg.StrokeWidth, "edge width in pixels")
}

// surfaceSettings is the parsed form of surfaceFlags.
type surfaceSettings struct {
	width, height int
	background    geom.RGB
	edgeColor     geom.RGB
	defaultEdge   geom.RGB
	strokeWidth   int
}

func (s *surfaceFlags) resolve() (surfaceSettings, error) {
	out := surfaceSettings{width: s.width, height: s.height, strokeWidth: s.strokeWidth}
	if s.width <= 0 || s.height <= 0 {
		return out, fmt.Errorf("surface size must be positive, got %dx%d", s.width, s.height)
	}
	if out.strokeWidth < 1 {
		out.strokeWidth = render.DefaultStrokeWidth
	}
	var err error
	if out.background, err = parseColor(s.background); err != nil {
		return out, fmt.Errorf("background: %w", err)
	}
	if out.edgeColor, err = parseColor(s.edgeColor); err != nil {
		return out, fmt.Errorf("edge color: %w", err)
	}
	if out.defaultEdge, err = parseColor(s.defaultEdge); err != nil {
		return out, fmt.Errorf("default edge: %w", err)
	}
	return out, nil
}

// headless is a scene rendering onto an off-screen canvas.
type headless struct {
	scene  *scene.Scene
	canvas *render.Canvas
}

func newHeadless(s surfaceSettings, logger *log.Logger) *headless {
	canvas := render.NewCanvas(s.width, s.height, s.background)
	r := render.NewRenderer(canvas)
	r.DefaultStroke = s.edgeColor
	r.StrokeWidth = s.strokeWidth
	sc := scene.New(
		scene.WithRenderer(r),
		scene.WithDefaultEdge(s.defaultEdge),
		scene.WithLogger(logger),
	)
	return &headless{scene: sc, canvas: canvas}
}
