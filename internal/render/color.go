package render

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Color modes accepted by the display.color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidColorModes returns the accepted display.color values.
func ValidColorModes() []string {
	return []string{ColorAuto, ColorAlways, ColorNever}
}

// UseColor resolves a color mode for output going to f. In auto mode color is
// used only when f is a terminal and NO_COLOR is unset.
func UseColor(mode string, f *os.File) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}
