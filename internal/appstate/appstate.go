// Package appstate runs the interactive triangle editor window: the drawing
// surface on the left, the triangle list and palette on the right and a bar
// of shortcuts along the bottom.
package appstate

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"golang.org/x/exp/shiny/screen"

	"github.com/example/trishade/internal/geom"
	"github.com/example/trishade/internal/scene"
	"github.com/example/trishade/internal/theme"
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

const (
	markerSize      = 3
	messageDuration = 2 * time.Second
)

// PaletteColor is a palette entry with its display name.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

var (
	paletteMu sync.RWMutex
	palette   = []color.RGBA{
		{0, 0, 0, 255},       // black
		{255, 255, 255, 255}, // white
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 0, 255},
		{0, 255, 255, 255},
		{255, 0, 255, 255},
		{128, 0, 0, 255},
		{0, 128, 0, 255},
		{0, 0, 128, 255},
		{128, 128, 0, 255},
		{0, 128, 128, 255},
		{128, 0, 128, 255},
		{192, 192, 192, 255},
		{128, 128, 128, 255},
	}
	paletteNames = []string{
		"Black",
		"White",
		"Red",
		"Lime",
		"Blue",
		"Yellow",
		"Cyan",
		"Magenta",
		"Maroon",
		"Green",
		"Navy",
		"Olive",
		"Teal",
		"Purple",
		"Silver",
		"Gray",
	}
)

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 32, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// PaletteColors returns palette entries annotated with their display names.
func PaletteColors() []PaletteColor {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	out := make([]PaletteColor, len(palette))
	for i := range palette {
		out[i] = PaletteColor{Name: paletteNames[i], Color: palette[i]}
	}
	return out
}

// EnsurePaletteColor makes sure col is present in the palette and returns its index.
func EnsurePaletteColor(col color.RGBA, name string) int {
	paletteMu.Lock()
	defer paletteMu.Unlock()
	for idx, existing := range palette {
		if existing == col {
			if name != "" && paletteNames[idx] == "" {
				paletteNames[idx] = name
			}
			return idx
		}
	}
	if name == "" {
		name = fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)
	}
	palette = append(palette, col)
	paletteNames = append(paletteNames, name)
	return len(palette) - 1
}

func paletteLen() int {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return len(palette)
}

func paletteRGB(idx int) geom.RGB {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	if len(palette) == 0 {
		return geom.Black
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return geom.FromColor(palette[idx])
}

// ButtonState describes the visual state of a button.
type ButtonState int

// Button states.
const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Shortcut is a clickable label in the bottom bar.
type Shortcut struct {
	label  string
	action string
	rect   image.Rectangle
}

// Draw paints the shortcut button in the given state.
func (s *Shortcut) Draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	col := th.ButtonBackground
	switch state {
	case StateHover:
		col = shade(col, 20)
	case StatePressed:
		col = shade(col, 50)
	}
	draw.Draw(dst, s.rect, &image.Uniform{col}, image.Point{}, draw.Src)
	drawRect(dst, s.rect, th.ButtonBorder)
	drawLabel(dst, s.label, s.rect.Min.X+2, s.rect.Min.Y+14, th.ButtonText)
}

// shade darkens c by amount per channel.
func shade(c color.RGBA, amount uint8) color.RGBA {
	sub := func(v uint8) uint8 {
		if v < amount {
			return 0
		}
		return v - amount
	}
	return color.RGBA{sub(c.R), sub(c.G), sub(c.B), c.A}
}

func drawLabel(dst *image.RGBA, s string, x, y int, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: basicfont.Face7x13, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

func drawRect(dst *image.RGBA, r image.Rectangle, col color.Color) {
	u := &image.Uniform{col}
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}

func fill(dst *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(dst, r, &image.Uniform{col}, image.Point{}, draw.Src)
}

var bottomShortcuts = []Shortcut{
	{label: "^S:save", action: "save"},
	{label: "^C:copy", action: "copy"},
	{label: "^L:clear", action: "clear"},
	{label: "Del:delete", action: "delete"},
	{label: "Esc:deselect", action: "deselect"},
	{label: "^Q:quit", action: "quit"},
}

// layoutShortcuts places the bottom bar labels left to right.
func layoutShortcuts(bar image.Rectangle) []Shortcut {
	out := make([]Shortcut, len(bottomShortcuts))
	copy(out, bottomShortcuts)
	x := bar.Min.X + 6
	y := bar.Min.Y + 16
	meas := &font.Drawer{Face: basicfont.Face7x13}
	for i := range out {
		w := meas.MeasureString(out[i].label).Ceil()
		out[i].rect = image.Rect(x-2, y-14, x+w+2, y+4)
		x = out[i].rect.Max.X + 8
	}
	return out
}

type paintState struct {
	width, height int
	snap          scene.Snapshot
	surface       *image.RGBA
	layout        layout
	shortcuts     []Shortcut
	hoverShortcut int
	target        int
	theme         *theme.Theme
	message       string
	messageUntil  time.Time
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	dst := b.RGBA()
	th := st.theme
	l := st.layout

	fill(dst, dst.Bounds(), th.Background)
	if st.layout.zoom == 1 {
		draw.Draw(dst, l.canvas, st.surface, st.surface.Bounds().Min, draw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(dst, l.canvas, st.surface, st.surface.Bounds(), draw.Src, nil)
	}
	if ctx.Err() != nil {
		return
	}

	for _, p := range st.snap.Pending {
		c := toWindow(l, p)
		fill(dst, image.Rect(c.X-markerSize, c.Y-markerSize, c.X+markerSize+1, c.Y+markerSize+1), th.PendingMarker)
	}
	if ctx.Err() != nil {
		return
	}

	drawPanel(dst, st)
	if ctx.Err() != nil {
		return
	}

	fill(dst, l.bar, th.BarBackground)
	for i := range st.shortcuts {
		state := StateDefault
		if i == st.hoverShortcut {
			state = StateHover
		}
		st.shortcuts[i].Draw(dst, th, state)
	}
	status := fmt.Sprintf("%d triangles", len(st.snap.Triangles))
	if n := len(st.snap.Pending); n > 0 {
		status = fmt.Sprintf("%s, point %d of 3", status, n)
	}
	meas := &font.Drawer{Face: basicfont.Face7x13}
	drawLabel(dst, status, l.bar.Max.X-meas.MeasureString(status).Ceil()-8, l.bar.Min.Y+16, th.BarText)

	if ctx.Err() != nil {
		return
	}

	if st.message != "" && time.Now().Before(st.messageUntil) {
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: messageFace}
		wmsg := d.MeasureString(st.message).Ceil()
		ascent := messageFace.Metrics().Ascent.Ceil()
		descent := messageFace.Metrics().Descent.Ceil()
		px := (l.panel.Min.X - wmsg) / 2
		py := (l.bar.Min.Y-ascent-descent)/2 + ascent
		rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
		draw.Draw(dst, rect, &image.Uniform{withAlpha(th.Background, 230)}, image.Point{}, draw.Over)
		drawRect(dst, rect, th.Foreground)
		d.Dot = fixed.P(px, py)
		d.DrawString(st.message)
	}

	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// color.RGBA is premultiplied.
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}

func drawPanel(dst *image.RGBA, st paintState) {
	th := st.theme
	l := st.layout
	fill(dst, l.panel, th.PanelBackground)
	drawLabel(dst, fmt.Sprintf("Triangles (%d)", len(st.snap.Triangles)), l.panel.Min.X+pad, l.panel.Min.Y+16, th.PanelText)

	for _, row := range l.rows {
		bg := th.ItemBackground
		if row.index == st.snap.Selected {
			bg = th.ItemSelected
		}
		fill(dst, row.rect, bg)
		drawLabel(dst, fmt.Sprintf("Triangle %d", row.index+1), row.rect.Min.X+4, row.rect.Min.Y+15, th.ItemText)
	}

	if l.detail && st.snap.HasSelection() && st.snap.Selected < len(st.snap.Triangles) {
		t := st.snap.Triangles[st.snap.Selected]
		cols := [targetCount]color.Color{t.Vertices[0].Color, t.Vertices[1].Color, t.Vertices[2].Color, t.Edge}
		labels := [targetCount]string{"A", "B", "C", "E"}
		for i, r := range l.swatches {
			fill(dst, r, cols[i])
			border := th.SwatchBorder
			if i == st.target {
				border = th.SwatchActive
				drawRect(dst, r.Inset(-2), border)
			}
			drawRect(dst, r, border)
			drawLabel(dst, labels[i], r.Max.X+4, r.Min.Y+13, th.PanelText)
		}
		fill(dst, l.deleteBtn, th.DeleteBackground)
		drawRect(dst, l.deleteBtn, th.ButtonBorder)
		drawLabel(dst, "Delete", l.deleteBtn.Min.X+14, l.deleteBtn.Min.Y+14, th.DeleteText)
	}

	for i, r := range l.palette {
		fill(dst, r, paletteRGB(i))
		drawRect(dst, r, th.SwatchBorder)
	}
}
