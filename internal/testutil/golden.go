package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var updateGolden = flag.Bool("update", false, "update golden files")

// Update returns true if golden files should be updated.
// Use with: go test -update
func Update() bool {
	return *updateGolden
}

// Golden compares actual output against testdata/<name>.golden, relative to
// the test's package directory. With -update the file is rewritten instead.
//
//	func TestList(t *testing.T) {
//	    out := render()
//	    testutil.Golden(t, "list_default", out)
//	}
func Golden(t *testing.T, name string, actual []byte) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name+".golden")

	if Update() {
		if err := os.MkdirAll("testdata", 0755); err != nil {
			t.Fatalf("Failed to create testdata directory: %v", err)
		}

		if err := os.WriteFile(goldenPath, actual, 0644); err != nil {
			t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("Golden file %s does not exist. Run with -update to create it.", goldenPath)
		}
		t.Fatalf("Failed to read golden file %s: %v", goldenPath, err)
	}

	if diff := cmp.Diff(splitLines(string(expected)), splitLines(string(actual))); diff != "" {
		t.Errorf("Output does not match golden file %s (-want +got):\n%s\n"+
			"To update the golden file, run: go test -update ./...",
			goldenPath, diff)
	}
}

// GoldenString is a convenience wrapper for Golden that accepts a string.
func GoldenString(t *testing.T, name string, actual string) {
	t.Helper()
	Golden(t, name, []byte(actual))
}

// GoldenPlain strips ANSI codes before comparing, so golden files do not
// depend on terminal colour support.
func GoldenPlain(t *testing.T, name string, actual string) {
	t.Helper()
	Golden(t, name, []byte(StripANSIString(actual)))
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*[a-zA-Z]")

// StripANSI removes ANSI escape codes from a byte slice.
func StripANSI(data []byte) []byte {
	return ansiPattern.ReplaceAll(data, nil)
}

// StripANSIString removes ANSI escape codes from a string.
func StripANSIString(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
