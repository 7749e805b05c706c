// Package output provides formatting and display utilities for ufccards.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// ANSI color codes
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	Red       = "\033[31m"
	Green     = "\033[32m"
	Yellow    = "\033[33m"
	Blue      = "\033[34m"
	Magenta   = "\033[35m"
	Cyan      = "\033[36m"
	White     = "\033[37m"
	BoldRed   = "\033[1;31m"
	BoldGreen = "\033[1;32m"
	BoldGold  = "\033[1;33m"
)

var (
	useColor   = true
	forceColor = false
)

// DisableColor disables colored output.
func DisableColor() {
	useColor = false
	forceColor = false
}

// EnableColor enables colored output when stdout is a terminal.
func EnableColor() {
	useColor = true
	forceColor = false
}

// ForceColor enables colored output regardless of the terminal.
func ForceColor() {
	useColor = true
	forceColor = true
}

// IsColorEnabled returns whether color output is enabled.
func IsColorEnabled() bool {
	if !useColor {
		return false
	}
	return forceColor || isTerminal(os.Stdout)
}

// isTerminal checks if f is a terminal.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Color applies a color to text if color is enabled.
func Color(text, color string) string {
	if !IsColorEnabled() {
		return text
	}
	return color + text + Reset
}

// RatingColor returns the color for a 0-100 attribute rating.
func RatingColor(rating float64) string {
	switch {
	case rating >= 90:
		return BoldGreen
	case rating >= 80:
		return Green
	case rating >= 70:
		return Yellow
	default:
		return Red
	}
}

// FormatRating formats a rating with color.
func FormatRating(rating float64) string {
	return Color(fmt.Sprintf("%.0f", rating), RatingColor(rating))
}

// Bar renders value against max as a fixed-width bar, e.g. [████░░░░].
func Bar(value, max float64, width int) string {
	if width <= 0 {
		return ""
	}
	percent := 0.0
	if max > 0 {
		percent = value / max * 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return Color("["+bar+"]", RatingColor(percent))
}

// FormatRank formats a rank as "#N", or "NR" when unranked.
func FormatRank(rank int) string {
	if rank <= 0 || rank >= 999 {
		return Color("NR", Dim)
	}
	label := fmt.Sprintf("#%d", rank)
	if rank == 1 {
		return Color(label, BoldGold)
	}
	return label
}

// Header creates a formatted header line.
func Header(text string, width int) string {
	return Color(rule(text, width, "="), Bold)
}

// SubHeader creates a formatted subheader line.
func SubHeader(text string, width int) string {
	return Color(rule(text, width, "-"), Dim)
}

func rule(text string, width int, fill string) string {
	textWidth := runewidth.StringWidth(text)
	padding := (width - textWidth - 2) / 2
	if padding < 0 {
		padding = 0
	}
	line := strings.Repeat(fill, padding) + " " + text + " " + strings.Repeat(fill, padding)
	if w := runewidth.StringWidth(line); w < width {
		line += strings.Repeat(fill, width-w)
	}
	return line
}

// Checkmark returns a colored checkmark or X.
func Checkmark(ok bool) string {
	if ok {
		return Color("✓", Green)
	}
	return Color("✗", Red)
}

// Truncate truncates text to a maximum display width with ellipsis.
func Truncate(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(text, maxWidth, "")
	}
	return runewidth.Truncate(text, maxWidth, "...")
}

// PadRight pads text to a minimum display width.
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}

// PadLeft pads text to a minimum display width.
func PadLeft(text string, width int) string {
	return runewidth.FillLeft(text, width)
}

// Center centers text in a given display width.
func Center(text string, width int) string {
	textWidth := runewidth.StringWidth(text)
	if textWidth >= width {
		return text
	}
	leftPad := (width - textWidth) / 2
	rightPad := width - textWidth - leftPad
	return strings.Repeat(" ", leftPad) + text + strings.Repeat(" ", rightPad)
}
