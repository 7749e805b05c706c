package roster

import (
	"strings"
	"testing"
)

// FuzzParseCSV ensures malformed input never panics and that anything
// that parses normalizes into well-formed records.
func FuzzParseCSV(f *testing.F) {
	f.Add("name,rank,striking\nJon Jones,1,95\n")
	f.Add("name\trank\nJon Jones\t1\n")
	f.Add("name|rank|ufcnocon\nA|2|1\nB||\n")
	f.Add("name;rank\n\"Quoted; Name\";3\n")
	f.Add("name,rank\n" + strings.Repeat("A", 10000) + ",1\n")
	f.Add(`name,rank
"unclosed quote`)
	f.Add("")
	f.Add("\x00\x00\x00")
	f.Add("invalid header only")

	f.Fuzz(func(t *testing.T, data string) {
		rows, err := ParseCSV(data)
		if err != nil {
			return
		}

		fighters := Normalize(rows)
		for i, fighter := range fighters {
			if strings.TrimSpace(fighter.Name) == "" {
				t.Errorf("fighter %d has empty name", i)
			}
			if i > 0 && fighters[i-1].SortRank() > fighter.SortRank() {
				t.Errorf("fighters not sorted at %d", i)
			}
		}

		_ = Filter(fighters, "a", AllWeightClasses)
	})
}
