package appstate

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/trishade/internal/clipboard"
	"github.com/example/trishade/internal/export"
	"github.com/example/trishade/internal/geom"
	"github.com/example/trishade/internal/notify"
	"github.com/example/trishade/internal/render"
	"github.com/example/trishade/internal/scene"
	"github.com/example/trishade/internal/theme"
)

// Default surface size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// AppState holds the scene being edited and the window configuration.
type AppState struct {
	Scene    *scene.Scene
	Canvas   *render.Canvas
	Renderer *render.Renderer
	Output   string
	Theme    *theme.Theme
	Notifier *notify.Notifier

	width, height int
	background    color.Color
	stroke        geom.RGB
	strokeWidth   int
	sceneOpts     []scene.Option

	editor   *editor
	updateCh chan struct{}

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithSurfaceSize sets the drawing surface size in pixels.
func WithSurfaceSize(width, height int) Option {
	return func(a *AppState) { a.width, a.height = width, height }
}

// WithBackground sets the color the surface is cleared to.
func WithBackground(c color.Color) Option { return func(a *AppState) { a.background = c } }

// WithStroke sets the stroke color for triangles without an edge color and
// the edge width.
func WithStroke(fallback geom.RGB, width int) Option {
	return func(a *AppState) { a.stroke, a.strokeWidth = fallback, width }
}

// WithSceneOptions passes extra options to the scene, such as default colors.
func WithSceneOptions(opts ...scene.Option) Option {
	return func(a *AppState) { a.sceneOpts = append(a.sceneOpts, opts...) }
}

// WithOutput sets the file written by the save shortcut.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithTheme sets the chrome colors.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithNotifier sets the notifier used for save and copy.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options. The scene renders onto
// the canvas after every mutation and requests a repaint of the window.
func New(opts ...Option) *AppState {
	a := &AppState{
		Output:      "trishade.png",
		width:       DefaultWidth,
		height:      DefaultHeight,
		background:  color.White,
		stroke:      geom.Blue,
		strokeWidth: render.DefaultStrokeWidth,
		updateCh:    make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	a.Canvas = render.NewCanvas(a.width, a.height, a.background)
	a.Renderer = render.NewRenderer(a.Canvas)
	a.Renderer.DefaultStroke = a.stroke
	a.Renderer.StrokeWidth = a.strokeWidth
	sceneOpts := append([]scene.Option{
		scene.WithRenderer(a.Renderer),
		scene.WithObserver(func(uint64) { a.NotifySceneChanged() }),
	}, a.sceneOpts...)
	a.Scene = scene.New(sceneOpts...)
	a.editor = &editor{scene: a.Scene}
	return a
}

// NotifySceneChanged requests a repaint of the UI.
func (a *AppState) NotifySceneChanged() {
	if a.updateCh == nil {
		return
	}
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// perform runs a named shortcut action and returns a status message.
func (a *AppState) perform(action string) (string, error) {
	switch action {
	case "save":
		img := a.Canvas.Clone()
		if err := export.Save(a.Output, img); err != nil {
			return "", fmt.Errorf("save: %w", err)
		}
		a.Notifier.Save(a.Output)
		return fmt.Sprintf("saved %s", a.Output), nil
	case "copy":
		img := a.Canvas.Clone()
		if err := clipboard.WriteImage(img); err != nil {
			return "", fmt.Errorf("copy: %w", err)
		}
		a.Notifier.Copy("scene", img)
		return "image copied to clipboard", nil
	case "copyscript":
		var sb strings.Builder
		if err := scene.WriteScript(&sb, a.Scene.Triangles()); err != nil {
			return "", err
		}
		if err := clipboard.WriteText(sb.String()); err != nil {
			return "", fmt.Errorf("copy script: %w", err)
		}
		a.Notifier.Copy("script", nil)
		return "script copied to clipboard", nil
	case "clear":
		a.Scene.Clear()
		return "cleared", nil
	case "delete":
		return a.editor.deleteSelected()
	case "deselect":
		a.editor.deselect()
		return "", nil
	}
	return "", fmt.Errorf("unknown action %q", action)
}

func (a *AppState) layout(width, height, scroll int) (layout, scene.Snapshot) {
	snap := a.Scene.Snapshot()
	l := panelLayout(width, height, a.Canvas.Bounds().Size(), len(snap.Triangles), snap.Selected, scroll, paletteLen())
	return l, snap
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// announce logs the outcome of an action once and returns the status text
// to show, the error text when err is set.
func announce(l *log.Logger, msg string, err error) string {
	if err != nil {
		msg = err.Error()
	}
	if msg != "" {
		l.Print(msg)
	}
	return msg
}

// Main opens the editor window on s and runs its event loop until the window
// closes or quit is chosen.
func (a *AppState) Main(s screen.Screen) {
	surface := a.Canvas.Bounds().Size()
	width := surface.X + panelWidth
	height := surface.Y + bottomHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "trishade"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	defer a.notifyClose()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-a.updateCh:
				w.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	var message string
	var messageUntil time.Time
	scroll := 0
	hoverShortcut := -1
	var shortcuts []Shortcut

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()
	defer close(paintCh)

	stopPainting := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}

	say := func(msg string, err error) {
		msg = announce(log.Default(), msg, err)
		if msg == "" {
			return
		}
		message = msg
		messageUntil = time.Now().Add(messageDuration)
		time.AfterFunc(messageDuration, a.NotifySceneChanged)
	}

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				stopPainting()
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil {
				if dropCount < frameDropThreshold {
					paintCancel()
					dropCount++
				}
			}
			paintMu.Unlock()
			l, snap := a.layout(width, height, scroll)
			scroll = l.scroll
			shortcuts = layoutShortcuts(l.bar)
			st := paintState{
				width:         width,
				height:        height,
				snap:          snap,
				surface:       a.Canvas.Clone(),
				layout:        l,
				shortcuts:     shortcuts,
				hoverShortcut: hoverShortcut,
				target:        a.editor.target,
				theme:         a.Theme,
				message:       message,
				messageUntil:  messageUntil,
			}
			select {
			case paintCh <- st:
			default:
				select {
				case <-paintCh:
				default:
				}
				paintCh <- st
			}
		case mouse.Event:
			p := image.Pt(int(e.X), int(e.Y))
			switch {
			case e.Button == mouse.ButtonWheelUp || e.Button == mouse.ButtonWheelDown:
				if e.Direction == mouse.DirRelease {
					continue
				}
				if e.Button == mouse.ButtonWheelUp {
					scroll--
				} else {
					scroll++
				}
				if scroll < 0 {
					scroll = 0
				}
				w.Send(paint.Event{})
			case e.Direction == mouse.DirNone:
				hover := -1
				for i, sc := range shortcuts {
					if p.In(sc.rect) {
						hover = i
						break
					}
				}
				if hover != hoverShortcut {
					hoverShortcut = hover
					w.Send(paint.Event{})
				}
			case e.Direction == mouse.DirPress && e.Button == mouse.ButtonLeft:
				if message != "" && time.Now().Before(messageUntil) {
					messageUntil = time.Time{}
				}
				if p.Y >= height-bottomHeight {
					for _, sc := range shortcuts {
						if !p.In(sc.rect) {
							continue
						}
						if sc.action == "quit" {
							stopPainting()
							return
						}
						say(a.perform(sc.action))
						break
					}
					w.Send(paint.Event{})
					continue
				}
				l, _ := a.layout(width, height, scroll)
				say(a.editor.apply(hitPanel(l, float64(e.X), float64(e.Y)), paletteRGB))
				w.Send(paint.Event{})
			}
		case key.Event:
			action, ok := matchShortcut(e)
			if !ok {
				continue
			}
			if action == "quit" {
				stopPainting()
				return
			}
			say(a.perform(action))
			w.Send(paint.Event{})
		}
	}
}
