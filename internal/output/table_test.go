package output

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable("A", "B", "C")
	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable("Name", "Rank")
	table.AddRow("Jon Jones", "1")
	table.AddRow("Tom Aspinall")
	table.AddRow("Stipe Miocic", "3", "ignored")

	if table.Len() != 3 {
		t.Errorf("Expected 3 rows, got %d", table.Len())
	}
	if table.rows[1][1] != "" {
		t.Errorf("Missing cell should be empty, got %q", table.rows[1][1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Extra cells should be dropped, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("#", "Name", "Class")
	table.AddRow("1", "Islam Makhachev", "lightweight")
	table.AddRow("2", "Jon Jones", "heavyweight")

	output := table.Render()

	expectedElements := []string{
		"+---+",
		"| # |",
		"+===+",
		"| 1 |",
		"| 2 |",
		"| Jon Jones       |",
	}

	for _, element := range expectedElements {
		if !strings.Contains(output, element) {
			t.Errorf("Expected %q in output:\n%s", element, output)
		}
	}

	// top, header, header sep, then row + sep per row
	if lines := strings.Count(output, "\n"); lines != 7 {
		t.Errorf("Expected 7 lines, got %d:\n%s", lines, output)
	}
}

func TestTableRenderCompact(t *testing.T) {
	table := NewTable("A", "B")
	table.AddRow("1", "2")
	table.AddRow("3", "4")

	output := table.RenderCompact()

	// top border, header, header sep, row1, row2, bottom border
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 6 {
		t.Errorf("Expected 6 lines for compact table, got %d:\n%s", len(lines), output)
	}
}

func TestTableAlignRight(t *testing.T) {
	table := NewTable("Name", "Rank").SetAlign(1, AlignRight)
	table.AddRow("Jon Jones", "1")
	table.AddRow("Derrick Lewis", "12")

	output := table.RenderCompact()

	if !strings.Contains(output, "| Rank |") {
		t.Errorf("Header should stay left-aligned:\n%s", output)
	}
	if !strings.Contains(output, "|    1 |") {
		t.Errorf("Expected right-aligned rank:\n%s", output)
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Expected empty render, got %q", got)
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"hello", 5},
		{"✓", 1},
		{"\033[32mgreen\033[0m", 5},
		{"張偉麗", 6},
		{"", 0},
	}

	for _, tt := range tests {
		got := displayWidth(tt.input)
		if got != tt.expected {
			t.Errorf("displayWidth(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{"\033[32mgreen\033[0m", "green"},
		{"\033[1;31mred bold\033[0m", "red bold"},
	}

	for _, tt := range tests {
		got := stripANSI(tt.input)
		if got != tt.expected {
			t.Errorf("stripANSI(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTruncateCell(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		expected string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"\033[32mgreen\033[0m", 5, "\033[32mgreen\033[0m"},
		{"\033[32mgreenery\033[0m", 6, "gre..."},
	}

	for _, tt := range tests {
		got := TruncateCell(tt.input, tt.maxWidth)
		if got != tt.expected {
			t.Errorf("TruncateCell(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.expected)
		}
	}
}
