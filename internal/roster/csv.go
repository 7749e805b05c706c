package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Delimiters are the candidate separators, tried in order.
var Delimiters = []rune{',', '\t', '|', ';'}

// sampleSize is how many non-blank lines delimiter detection inspects.
const sampleSize = 10

// RawRow maps a trimmed header to the cell found under it.
type RawRow map[string]Value

// Get returns the cell for key, or Empty when the column is absent.
func (r RawRow) Get(key string) Value {
	return r[key]
}

// ParseCSV parses delimited text into header-keyed rows.
func ParseCSV(text string) ([]RawRow, error) {
	return ReadCSV(strings.NewReader(text))
}

// ReadCSV reads delimited text from r. The header row comes first;
// blank lines are skipped and row order is preserved.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	text := strings.TrimPrefix(string(data), "\ufeff")
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Err: ErrNoHeader}
	}

	delim, err := DetectDelimiter(text)
	if err != nil {
		return nil, err
	}

	reader := newReader(text, delim)

	// Read header
	var header []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil, &ParseError{Err: ErrNoHeader}
		}
		if err != nil {
			return nil, wrapCSVError(err)
		}
		if !isBlank(record) {
			header = record
			break
		}
	}

	// Duplicate trimmed headers resolve to their last column.
	columns := make(map[string]int, len(header))
	for i, col := range header {
		if key := strings.TrimSpace(col); key != "" {
			columns[key] = i
		}
	}

	// Read rows
	rows := make([]RawRow, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err)
		}
		if isBlank(record) {
			continue
		}

		row := make(RawRow, len(columns))
		for key, i := range columns {
			if i < len(record) {
				row[key] = ParseValue(record[i])
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// DetectDelimiter returns the first candidate delimiter that splits the
// leading non-blank lines into the same number of columns (more than one).
// Single-column text falls back to comma.
func DetectDelimiter(text string) (rune, error) {
	for _, delim := range Delimiters {
		if width, ok := consistentWidth(text, delim); ok && width > 1 {
			return delim, nil
		}
	}
	if width, ok := consistentWidth(text, ','); ok && width == 1 {
		return ',', nil
	}
	return 0, &ParseError{Err: ErrInconsistentDelimiter}
}

// consistentWidth reports the column count shared by every sampled line.
func consistentWidth(text string, delim rune) (int, bool) {
	reader := newReader(text, delim)

	width := 0
	sampled := 0
	for sampled < sampleSize {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, false
		}
		if isBlank(record) {
			continue
		}
		if sampled == 0 {
			width = len(record)
		} else if len(record) != width {
			return 0, false
		}
		sampled++
	}

	return width, sampled > 0
}

func newReader(text string, delim rune) *csv.Reader {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delim
	reader.FieldsPerRecord = -1 // Allow variable fields
	reader.LazyQuotes = true
	return reader
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func wrapCSVError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Err: err}
}
