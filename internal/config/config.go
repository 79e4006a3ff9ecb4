package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/trishade/internal/theme"
)

// Defaults applied when neither the rc file nor the environment set a value.
const (
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultBackground  = "#FFFFFF"
	DefaultEdgeColor   = "#0000FF" // stroke for triangles without an edge color
	DefaultNewEdge     = "#000000" // edge color given to new triangles
	DefaultStrokeWidth = 1
	DefaultOutput      = "trishade.png"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme       string
	Width       int
	Height      int
	Background  string
	EdgeColor   string
	DefaultEdge string
	StrokeWidth int
	Output      string
	Notify      Notify
	Themes      map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:       "", // Default to empty to allow fallback to Env/Default
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Background:  DefaultBackground,
		EdgeColor:   DefaultEdgeColor,
		DefaultEdge: DefaultNewEdge,
		StrokeWidth: DefaultStrokeWidth,
		Output:      DefaultOutput,
		Themes:      make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	fmt.Fprintf(&sb, "background = %s\n", c.Background)
	fmt.Fprintf(&sb, "edge_color = %s\n", c.EdgeColor)
	fmt.Fprintf(&sb, "default_edge = %s\n", c.DefaultEdge)
	fmt.Fprintf(&sb, "stroke_width = %d\n", c.StrokeWidth)
	if c.Output != "" {
		fmt.Fprintf(&sb, "output = %s\n", c.Output)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		_ = c.Themes[name].Format(&sb)
		sb.WriteString("\n")
	}

	return sb.String()
}
