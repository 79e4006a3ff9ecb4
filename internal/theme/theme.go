package theme

import (
	"image/color"
)

// Theme defines the colors of the editor chrome. The drawing surface keeps
// its own background so exported images do not depend on the theme.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background around the canvas
	Foreground color.RGBA // Main text color

	// Triangle list panel
	PanelBackground color.RGBA
	PanelText       color.RGBA
	ItemBackground  color.RGBA // Unselected "Triangle N" row
	ItemSelected    color.RGBA
	ItemText        color.RGBA

	// Buttons and swatches
	ButtonBackground color.RGBA
	ButtonText       color.RGBA
	ButtonBorder     color.RGBA
	DeleteBackground color.RGBA
	DeleteText       color.RGBA
	SwatchBorder     color.RGBA
	SwatchActive     color.RGBA // Border of the swatch being edited

	// Canvas overlay
	PendingMarker color.RGBA

	// Shortcut bar and status line
	BarBackground color.RGBA
	BarText       color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:             "Default",
		Background:       color.RGBA{220, 220, 220, 255},
		Foreground:       color.RGBA{0, 0, 0, 255},
		PanelBackground:  color.RGBA{235, 235, 235, 255},
		PanelText:        color.RGBA{0, 0, 0, 255},
		ItemBackground:   color.RGBA{245, 245, 245, 255},
		ItemSelected:     color.RGBA{190, 210, 240, 255},
		ItemText:         color.RGBA{0, 0, 0, 255},
		ButtonBackground: color.RGBA{200, 200, 200, 255},
		ButtonText:       color.RGBA{0, 0, 0, 255},
		ButtonBorder:     color.RGBA{0, 0, 0, 255},
		DeleteBackground: color.RGBA{200, 60, 60, 255},
		DeleteText:       color.RGBA{255, 255, 255, 255},
		SwatchBorder:     color.RGBA{80, 80, 80, 255},
		SwatchActive:     color.RGBA{255, 140, 0, 255},
		PendingMarker:    color.RGBA{255, 0, 0, 255},
		BarBackground:    color.RGBA{220, 220, 220, 255},
		BarText:          color.RGBA{0, 0, 0, 255},
	}
}

// ColorFields lists the color keys of a Theme in declaration order.
func ColorFields() []string {
	return colorFieldNames
}
