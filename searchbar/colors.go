package searchbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Platform colors used when a style field is not set. The values follow the iOS
// system palette so embedders moving between the two get the same look.
var (
	LabelColor            = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	SecondaryLabelColor   = lipgloss.AdaptiveColor{Light: "#C7C7CC", Dark: "#48484A"} // systemGray3
	FieldBackgroundColor  = lipgloss.AdaptiveColor{Light: "#F2F2F7", Dark: "#1C1C1E"} // systemGray6
	SystemBackgroundColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}
	LinkColor             = lipgloss.AdaptiveColor{Light: "#007AFF", Dark: "#0A84FF"}
)

// placeholderOpacity is the opacity applied to the text color for the
// placeholder and the field buttons
const placeholderOpacity = 0.3

// Fade returns fg drawn at the given opacity over bg.
// Colors that can't be resolved to RGB are returned unchanged.
func Fade(fg, bg lipgloss.TerminalColor, opacity float64) lipgloss.TerminalColor {
	fgLight, fgDark, ok := adaptive(fg)
	if !ok {
		return fg
	}
	bgLight, bgDark, ok := adaptive(bg)
	if !ok {
		return fg
	}

	light, okLight := blend(fgLight, bgLight, opacity)
	dark, okDark := blend(fgDark, bgDark, opacity)
	if !okLight || !okDark {
		return fg
	}

	if light == dark {
		return lipgloss.Color(light)
	}
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// adaptive splits a color into its light and dark variants
func adaptive(c lipgloss.TerminalColor) (light, dark string, ok bool) {
	switch c := c.(type) {
	case lipgloss.Color:
		return string(c), string(c), true
	case lipgloss.ANSIColor:
		code := strconv.FormatUint(uint64(c), 10)
		return code, code, true
	case lipgloss.AdaptiveColor:
		return c.Light, c.Dark, true
	case lipgloss.CompleteColor:
		best := complete(c)
		return best, best, best != ""
	case lipgloss.CompleteAdaptiveColor:
		light, dark := complete(c.Light), complete(c.Dark)
		return light, dark, light != "" && dark != ""
	default:
		return "", "", false
	}
}

// complete picks the richest variant of a CompleteColor
func complete(c lipgloss.CompleteColor) string {
	switch {
	case c.TrueColor != "":
		return c.TrueColor
	case c.ANSI256 != "":
		return c.ANSI256
	default:
		return c.ANSI
	}
}

// blend mixes two color strings and returns the result as a hex color
func blend(fg, bg string, opacity float64) (string, bool) {
	fc, ok := toRGB(fg)
	if !ok {
		return "", false
	}
	bc, ok := toRGB(bg)
	if !ok {
		return "", false
	}
	return fc.BlendRgb(bc, 1-opacity).Clamped().Hex(), true
}

// toRGB resolves a lipgloss color string: "#rrggbb" or an ANSI / ANSI256 code
func toRGB(s string) (colorful.Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorful.Color{}, false
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return colorful.Color{}, false
	}
	if n < 16 {
		return termenv.ConvertToRGB(termenv.ANSIColor(n)), true
	}
	return termenv.ConvertToRGB(termenv.ANSI256Color(n)), true
}
