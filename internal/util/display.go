package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Terminal control sequences
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// ColorEnabled reports whether ANSI colours should be written to f. NO_COLOR
// disables them.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(f)
}

// GetDisplayWidth calculates the actual display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight pads text with spaces up to the display width.
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}

// PadLeft right-aligns text within the display width.
func PadLeft(text string, width int) string {
	return runewidth.FillLeft(text, width)
}

// Truncate shortens text to the display width, ending with an ellipsis.
func Truncate(text string, width int) string {
	return runewidth.Truncate(text, width, "…")
}

// FormatSheetTitle formats a worksheet title (Cyan + Bold) when color is set.
func FormatSheetTitle(title string, color bool) string {
	if !color {
		return title
	}
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorCyan, title, ColorReset)
}

// FormatWarning formats a warning line (Yellow) when color is set.
func FormatWarning(text string, color bool) string {
	if !color {
		return text
	}
	return fmt.Sprintf("%s%s%s", ColorYellow, text, ColorReset)
}

// FormatSectionSeparator creates a separator line of the given width.
func FormatSectionSeparator(width int) string {
	return strings.Repeat("─", width)
}
