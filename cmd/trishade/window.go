package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/example/trishade/internal/appstate"
	"github.com/example/trishade/internal/scene"
)

type windowCmd struct {
	*root
	fs      *flag.FlagSet
	output  string
	script  string
	surface surfaceFlags
}

func (c *windowCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseWindowCmd(args []string, r *root) (*windowCmd, error) {
	fs := flag.NewFlagSet("window", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	c := &windowCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.output, "output", r.config.Output, "file written by the save shortcut (.png or .pdf)")
	fs.StringVar(&c.script, "script", "", "command script to load before opening the window")
	c.surface.register(fs, r.config)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

// newState builds the window state without opening it.
func (c *windowCmd) newState() (*appstate.AppState, error) {
	settings, err := c.surface.resolve()
	if err != nil {
		return nil, err
	}
	// Configured colors are offered in the palette next to the stock ones.
	appstate.EnsurePaletteColor(settings.defaultEdge.RGBA8(), "")
	appstate.EnsurePaletteColor(settings.edgeColor.RGBA8(), "")
	st := appstate.New(
		appstate.WithSurfaceSize(settings.width, settings.height),
		appstate.WithBackground(settings.background),
		appstate.WithStroke(settings.edgeColor, settings.strokeWidth),
		appstate.WithSceneOptions(
			scene.WithDefaultEdge(settings.defaultEdge),
			scene.WithLogger(log.New(c.stderr, "", log.LstdFlags)),
		),
		appstate.WithOutput(c.output),
		appstate.WithTheme(c.activeTheme),
		appstate.WithNotifier(c.notifier),
	)
	if c.script != "" {
		f, err := os.Open(c.script)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := st.Scene.Run(f); err != nil {
			return nil, fmt.Errorf("script %s: %w", c.script, err)
		}
	}
	return st, nil
}

func (c *windowCmd) Run() error {
	st, err := c.newState()
	if err != nil {
		return err
	}
	st.Run()
	return nil
}
