package main

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/trishade/internal/appstate"
	"github.com/example/trishade/internal/geom"
)

// parseColor accepts an SVG color name, a palette name or "#RRGGBB".
func parseColor(s string) (geom.RGB, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return geom.RGB{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[name]; ok {
		return geom.FromColor(c), nil
	}
	for _, entry := range appstate.PaletteColors() {
		if strings.EqualFold(entry.Name, name) {
			return geom.FromColor(entry.Color), nil
		}
	}
	c, err := geom.ParseRGB(name)
	if err != nil {
		return geom.RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
