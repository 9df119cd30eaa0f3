package entity

import "strings"

type Color string

const (
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
	ColorWhite  Color = "white"
)

var palette = []Color{ColorYellow, ColorBlue, ColorGreen, ColorRed, ColorPurple}

// Palette lists the colors a note can be created with.
func Palette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette)
	return out
}

// ParseColor falls back to ColorWhite for anything outside the palette.
func ParseColor(s string) Color {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	for _, p := range palette {
		if p == c {
			return c
		}
	}
	return ColorWhite
}
