package render

import "github.com/gdamore/tcell/v2"

// Grayed returns a neutral gray with the average luminance of c. Colors
// that are not RGB become tcell.ColorGray.
func Grayed(c tcell.Color) tcell.Color {
	if !c.IsRGB() {
		return tcell.ColorGray
	}
	r, g, b := c.RGB()
	gray := (r + g + b) / 3
	return tcell.NewRGBColor(gray, gray, gray)
}

// GrayedStyle grays out the foreground of s. A style without a foreground
// is returned unchanged.
func GrayedStyle(s tcell.Style) tcell.Style {
	fg, _, _ := s.Decompose()
	if fg == tcell.ColorDefault {
		return s
	}
	return s.Foreground(Grayed(fg))
}
