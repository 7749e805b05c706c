package test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ufccards/ufccards/internal/testutil"
)

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "ufccards.exe"
	}
	return "ufccards"
}

// buildCLI compiles cmd/ufccards into a temp directory.
func buildCLI(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	binaryPath := filepath.Join(t.TempDir(), binaryName())

	wd, _ := os.Getwd()
	projectRoot := filepath.Dir(wd)
	if _, err := os.Stat(filepath.Join(projectRoot, "cmd", "ufccards")); err != nil {
		projectRoot = wd
	}

	buildCmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ufccards")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build CLI: %v\n%s", err, output)
	}
	return binaryPath
}

// runCLI runs the binary in dir and returns combined output and exit code.
func runCLI(t *testing.T, binary, dir string, stdin string, args ...string) (string, int) {
	t.Helper()

	cmd := exec.Command(binary, append([]string{"--no-color"}, args...)...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "UFCCARDS_SOURCE=")
	cmd.Stdin = strings.NewReader(stdin)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out.String(), exitErr.ExitCode()
	}
	if err != nil {
		t.Fatalf("Failed to run %v: %v", args, err)
	}
	return out.String(), 0
}

func TestCLI(t *testing.T) {
	binary := buildCLI(t)

	dir, cleanup := testutil.TempProjectFull(t, testutil.NewTestConfig(t), testutil.SampleCSV())
	defer cleanup()

	t.Run("version", func(t *testing.T) {
		out, code := runCLI(t, binary, dir, "", "version")
		if code != 0 {
			t.Fatalf("version exited %d\n%s", code, out)
		}
		if !strings.Contains(out, "ufccards version") {
			t.Errorf("version output missing header: %s", out)
		}
	})

	t.Run("help_shows_commands", func(t *testing.T) {
		out, _ := runCLI(t, binary, dir, "", "--help")
		for _, name := range []string{"browse", "classes", "config", "init", "list", "show"} {
			if !strings.Contains(out, name) {
				t.Errorf("Help missing command: %s", name)
			}
		}
	})

	t.Run("list_from_project", func(t *testing.T) {
		out, code := runCLI(t, binary, dir, "", "list", "-c", "heavyweight")
		if code != 0 {
			t.Fatalf("list exited %d\n%s", code, out)
		}
		if !strings.Contains(out, "Jon Jones") {
			t.Errorf("list output missing fighter: %s", out)
		}
	})

	t.Run("browse_reads_stdin", func(t *testing.T) {
		out, code := runCLI(t, binary, dir, "/s magnum\nquit\n", "browse")
		if code != 0 {
			t.Fatalf("browse exited %d\n%s", code, out)
		}
		if !strings.Contains(out, "Zhang Weili") {
			t.Errorf("browse output missing search result: %s", out)
		}
	})

	t.Run("show_not_found_exit_code", func(t *testing.T) {
		out, code := runCLI(t, binary, dir, "", "show", "nobody")
		if code != 3 {
			t.Errorf("show exit code = %d, want 3\n%s", code, out)
		}
		if !strings.Contains(out, "Error:") {
			t.Errorf("missing error line: %s", out)
		}
	})

	t.Run("missing_source_exit_code", func(t *testing.T) {
		out, code := runCLI(t, binary, dir, "", "--source", "nowhere.csv", "list")
		if code != 2 {
			t.Errorf("list exit code = %d, want 2\n%s", code, out)
		}
		if !strings.Contains(out, "Failed to load fighter data") {
			t.Errorf("missing user message: %s", out)
		}
	})
}
