// Package testutil provides test utilities and fixtures for ufccards testing.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ufccards/ufccards/internal/config"
	"github.com/ufccards/ufccards/internal/roster"
)

// DefaultHeaders are the columns written by NewCSV when none are given.
var DefaultHeaders = []string{
	roster.ColName,
	roster.ColNickname,
	roster.ColRank,
	roster.ColPFPRank,
	roster.ColMainDivision,
	roster.ColWins,
	roster.ColLosses,
	roster.ColDraws,
	roster.ColStriking,
}

// CSV builds delimited fixture text.
type CSV struct {
	delim   string
	headers []string
	rows    [][]string
}

// NewCSV starts a comma-delimited document with the given headers.
func NewCSV(headers ...string) *CSV {
	if len(headers) == 0 {
		headers = DefaultHeaders
	}
	return &CSV{delim: ",", headers: headers}
}

// Delimiter switches the field separator.
func (c *CSV) Delimiter(d string) *CSV {
	c.delim = d
	return c
}

// Row appends a record. Missing trailing cells are written empty.
func (c *CSV) Row(cells ...string) *CSV {
	row := make([]string, len(c.headers))
	copy(row, cells)
	c.rows = append(c.rows, row)
	return c
}

// Len returns the number of data rows.
func (c *CSV) Len() int {
	return len(c.rows)
}

// String renders the document.
func (c *CSV) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(c.headers, c.delim))
	b.WriteString("\n")
	for _, row := range c.rows {
		b.WriteString(strings.Join(row, c.delim))
		b.WriteString("\n")
	}
	return b.String()
}

// Bytes renders the document as bytes.
func (c *CSV) Bytes() []byte {
	return []byte(c.String())
}

// SampleCSV returns a small dataset spanning several weight classes.
// Rows are deliberately out of rank order.
func SampleCSV() *CSV {
	return NewCSV().
		Row("Islam Makhachev", "", "1", "1", "lightweight", "26", "1", "0", "88").
		Row("Jon Jones", "Bones", "2", "2", "heavyweight", "27", "1", "0", "92").
		Row("Alexandre Pantoja", "The Cannibal", "4", "1", "flyweight", "28", "5", "0", "80").
		Row("Alex Pereira", "Poatan", "3", "1", "light heavyweight", "12", "2", "0", "97").
		Row("Zhang Weili", "Magnum", "5", "1", "women's strawweight", "25", "3", "0", "86")
}

// GeneratedCSV returns n rows of one weight class with ranks 1..n.
func GeneratedCSV(n int, weightClass string) *CSV {
	c := NewCSV()
	for i := 1; i <= n; i++ {
		c.Row(
			fmt.Sprintf("Fighter %03d", i),
			"",
			fmt.Sprint(i),
			fmt.Sprint(i),
			weightClass,
			"10", "2", "0", "75",
		)
	}
	return c
}

// FighterOption configures a test fighter.
type FighterOption func(*roster.Fighter)

// NewTestFighter creates a fighter at position with optional configuration.
func NewTestFighter(name string, position int, opts ...FighterOption) roster.Fighter {
	f := roster.NewFighter(position)
	f.Name = name

	for _, opt := range opts {
		opt(&f)
	}

	return f
}

// WithNickname sets the nickname.
func WithNickname(nickname string) FighterOption {
	return func(f *roster.Fighter) {
		f.Nickname = nickname
	}
}

// WithRank sets the division rank.
func WithRank(rank int) FighterOption {
	return func(f *roster.Fighter) {
		f.Rank = rank
	}
}

// WithPFPRank sets the pound-for-pound rank.
func WithPFPRank(rank int) FighterOption {
	return func(f *roster.Fighter) {
		f.PFPRank = rank
	}
}

// WithWeightClass sets the main division.
func WithWeightClass(weightClass string) FighterOption {
	return func(f *roster.Fighter) {
		f.WeightClass = weightClass
	}
}

// WithOverall sets the overall rating.
func WithOverall(overall float64) FighterOption {
	return func(f *roster.Fighter) {
		f.Overall = &overall
	}
}

// ConfigOption configures a test config.
type ConfigOption func(*config.Config)

// NewTestConfig creates a config for testing with optional configuration.
func NewTestConfig(t *testing.T, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.UFCCards.AdvanceDelay = 0

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSource sets the data source in the config.
func WithSource(source string) ConfigOption {
	return func(c *config.Config) {
		c.UFCCards.Source = source
	}
}

// WithBatchSize sets the pagination step in the config.
func WithBatchSize(n int) ConfigOption {
	return func(c *config.Config) {
		c.UFCCards.BatchSize = n
	}
}

// WithDefaultClass sets the startup weight class in the config.
func WithDefaultClass(weightClass string) ConfigOption {
	return func(c *config.Config) {
		c.UFCCards.DefaultClass = weightClass
	}
}

// TempProject creates a temporary directory with ufccards structure for testing.
// Returns the directory path and a cleanup function.
func TempProject(t *testing.T) (string, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "ufccards-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	for _, sub := range []string{".ufccards", "data"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			os.RemoveAll(dir)
			t.Fatalf("Failed to create %s directory: %v", sub, err)
		}
	}

	cleanup := func() {
		os.RemoveAll(dir)
	}

	return dir, cleanup
}

// TempProjectWithConfig creates a temp project with a config file.
func TempProjectWithConfig(t *testing.T, cfg *config.Config) (string, func()) {
	t.Helper()

	dir, cleanup := TempProject(t)

	configPath := filepath.Join(dir, ".ufccards", "config.yaml")
	if err := cfg.Save(configPath); err != nil {
		cleanup()
		t.Fatalf("Failed to write config: %v", err)
	}

	return dir, cleanup
}

// TempProjectWithData creates a temp project whose default source holds data.
func TempProjectWithData(t *testing.T, data *CSV) (string, func()) {
	t.Helper()

	dir, cleanup := TempProject(t)
	WriteData(t, filepath.Join(dir, "data", "fighters.csv"), data)

	return dir, cleanup
}

// TempProjectFull creates a temp project with both config and data.
func TempProjectFull(t *testing.T, cfg *config.Config, data *CSV) (string, func()) {
	t.Helper()

	dir, cleanup := TempProjectWithConfig(t, cfg)
	WriteData(t, cfg.SourcePath(dir), data)

	return dir, cleanup
}

// WriteData writes fixture text to path, creating parent directories.
func WriteData(t *testing.T, path string, data *CSV) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create data directory: %v", err)
	}
	if err := os.WriteFile(path, data.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write data: %v", err)
	}
}
