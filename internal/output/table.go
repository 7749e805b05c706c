package output

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align is a column alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Table represents an ASCII table for formatted output.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
	aligns  []Align
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	t := &Table{
		headers: headers,
		widths:  make([]int, len(headers)),
		aligns:  make([]Align, len(headers)),
	}
	for i, h := range headers {
		t.widths[i] = displayWidth(h)
	}
	return t
}

// SetAlign sets the alignment of column col.
func (t *Table) SetAlign(col int, align Align) *Table {
	if col >= 0 && col < len(t.aligns) {
		t.aligns[col] = align
	}
	return t
}

// AddRow adds a row to the table. Extra cells are dropped and missing
// cells are left empty.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
	for i, cell := range row {
		if w := displayWidth(cell); w > t.widths[i] {
			t.widths[i] = w
		}
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render returns the table with a separator after every row.
func (t *Table) Render() string {
	return t.render(true)
}

// RenderCompact returns the table without row separators (only header separator).
func (t *Table) RenderCompact() string {
	return t.render(false)
}

func (t *Table) render(rowSeparators bool) string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteString("\n")
	}

	line(t.renderSeparator("-", "+"))
	line(t.renderRow(t.headers, false))
	line(t.renderSeparator("=", "+"))

	for _, row := range t.rows {
		line(t.renderRow(row, true))
		if rowSeparators {
			line(t.renderSeparator("-", "+"))
		}
	}

	if !rowSeparators {
		line(t.renderSeparator("-", "+"))
	}

	return sb.String()
}

// renderSeparator creates a line like +-----+-----+
func (t *Table) renderSeparator(fill, corner string) string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat(fill, w+2)
	}
	return corner + strings.Join(parts, corner) + corner
}

// renderRow creates a line like | val | val |
func (t *Table) renderRow(cells []string, aligned bool) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		var padded string
		if aligned && t.aligns[i] == AlignRight {
			padded = padLeftToWidth(cell, t.widths[i])
		} else {
			padded = padToWidth(cell, t.widths[i])
		}
		parts[i] = " " + padded + " "
	}
	return "|" + strings.Join(parts, "|") + "|"
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*[a-zA-Z]")

// displayWidth returns the terminal width of a string, ignoring ANSI codes.
func displayWidth(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}

// stripANSI removes ANSI escape codes from a string.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// padToWidth pads a string to the given display width, handling ANSI codes.
func padToWidth(s string, width int) string {
	if w := displayWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLeftToWidth(s string, width int) string {
	if w := displayWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// TruncateCell truncates text for a table cell. Colored text that needs
// truncating loses its ANSI codes.
func TruncateCell(text string, maxWidth int) string {
	if displayWidth(text) <= maxWidth {
		return text
	}
	stripped := stripANSI(text)
	if maxWidth <= 3 {
		return runewidth.Truncate(stripped, maxWidth, "")
	}
	return runewidth.Truncate(stripped, maxWidth, "...")
}
