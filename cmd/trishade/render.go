package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/example/trishade/internal/clipboard"
	"github.com/example/trishade/internal/export"
)

// renderCmd runs a command script against an off-screen surface and writes the
// result.
type renderCmd struct {
	*root
	fs          *flag.FlagSet
	script      string
	output      string
	toClipboard bool
	verbose     bool
	surface     surfaceFlags
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	c := &renderCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.script, "script", "", "command script to run (- for stdin)")
	fs.StringVar(&c.output, "output", r.config.Output, "output file (.png or .pdf, - for PNG on stdout)")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&c.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	fs.BoolVar(&c.verbose, "v", false, "log scene changes to stderr")
	c.surface.register(fs, r.config)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.script == "" && fs.NArg() == 1 {
		c.script = fs.Arg(0)
	} else if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.script == "" {
		return nil, fmt.Errorf("a script is required (-script file or - for stdin)")
	}
	if c.output == "" && !c.toClipboard {
		return nil, fmt.Errorf("nothing to do: set -output or -to-clipboard")
	}
	return c, nil
}

func (c *renderCmd) Run() error {
	settings, err := c.surface.resolve()
	if err != nil {
		return err
	}
	var logger *log.Logger
	if c.verbose {
		logger = log.New(c.stderr, "", 0)
	}
	h := newHeadless(settings, logger)

	src, closeSrc, err := c.openScript()
	if err != nil {
		return err
	}
	defer closeSrc()
	if err := h.scene.Run(src); err != nil {
		return fmt.Errorf("script %s: %w", c.script, err)
	}

	img := h.canvas.Clone()
	switch c.output {
	case "":
	case "-":
		if err := export.WritePNG(c.stdout, img); err != nil {
			return fmt.Errorf("failed to write image: %w", err)
		}
	default:
		if err := export.Save(c.output, img); err != nil {
			return fmt.Errorf("failed to save %s: %w", c.output, err)
		}
		fmt.Fprintf(c.stderr, "saved %s (%d triangles)\n", c.output, h.scene.Len())
		c.notifySave(c.output)
	}
	if c.toClipboard {
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		c.notifyCopy("rendered scene", img)
	}
	return nil
}

func (c *renderCmd) openScript() (io.Reader, func(), error) {
	if c.script == "-" {
		return c.stdin, func() {}, nil
	}
	f, err := os.Open(c.script)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
