package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalogYAML = `
schemaVersion: 1
entries:
  - extension: rv_zba
    name: sh1add
    encoding: "0010000----------010-----0110011"
  - extension: rv_a
    name: sc.w
    match: "0x1800202f"
    mask: "0xf800707f"
`

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalogYAML), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()

	// Command flag variables are package-level state; reset them so one
	// subtest's flags cannot leak into the next.
	checkEncoding, checkMatch, checkMask, checkCatalog = "", "", "", ""
	checkStrict = false
	parseMatch, parseMask = "", ""
	catalogPath = ""
	jsonOutput = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCheckCommand(t *testing.T) {
	catalogPath := writeTestCatalog(t)

	t.Run("no conflicts", func(t *testing.T) {
		err := execute(t, "check",
			"--encoding", "0000000----------111-----0110011",
			"--catalog", catalogPath)
		if err != nil {
			t.Errorf("Execute() error = %v", err)
		}
	})

	t.Run("conflicts found is not an error", func(t *testing.T) {
		err := execute(t, "check",
			"--encoding", "0010000----------010-----0110011",
			"--catalog", catalogPath)
		if err != nil {
			t.Errorf("Execute() error = %v", err)
		}
	})

	t.Run("strict mode fails on conflicts", func(t *testing.T) {
		err := execute(t, "check",
			"--encoding", "0010000----------010-----0110011",
			"--catalog", catalogPath,
			"--strict")
		if err == nil {
			t.Fatal("expected error in strict mode with conflicts")
		}
		if !strings.Contains(err.Error(), "conflicting") {
			t.Errorf("error = %v, want it to mention conflicting encodings", err)
		}
	})

	t.Run("strict mode passes without conflicts", func(t *testing.T) {
		err := execute(t, "check",
			"--encoding", "0000000----------111-----0110011",
			"--catalog", catalogPath,
			"--strict")
		if err != nil {
			t.Errorf("Execute() error = %v", err)
		}
	})

	t.Run("explicit match/mask form", func(t *testing.T) {
		err := execute(t, "check",
			"--match", "0x1800202f",
			"--mask", "0xf800707f",
			"--catalog", catalogPath)
		if err != nil {
			t.Errorf("Execute() error = %v", err)
		}
	})

	t.Run("missing encoding", func(t *testing.T) {
		err := execute(t, "check", "--catalog", catalogPath)
		if err == nil {
			t.Fatal("expected error when no encoding is supplied")
		}
		if !strings.Contains(err.Error(), "encoding is required") {
			t.Errorf("error = %v, want it to say an encoding is required", err)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		err := execute(t, "check",
			"--encoding", "not-a-real-token",
			"--catalog", catalogPath)
		if err == nil {
			t.Fatal("expected error for invalid token")
		}
		if !strings.Contains(err.Error(), "32 characters") {
			t.Errorf("error = %v, want a length complaint", err)
		}
	})

	t.Run("match without mask", func(t *testing.T) {
		err := execute(t, "check",
			"--match", "0x1800202f",
			"--catalog", catalogPath)
		if err == nil {
			t.Fatal("expected error for half a match/mask pair")
		}
		if !strings.Contains(err.Error(), "together") {
			t.Errorf("error = %v, want it to require the pair together", err)
		}
	})

	t.Run("disagreeing token and pair", func(t *testing.T) {
		err := execute(t, "check",
			"--encoding", "0010000----------010-----0110011",
			"--match", "0x00002033",
			"--mask", "0x0000707f",
			"--catalog", catalogPath)
		if err == nil {
			t.Fatal("expected error for disagreeing sources")
		}
		if !strings.Contains(err.Error(), "disagrees") {
			t.Errorf("error = %v, want a consistency complaint", err)
		}
	})

	t.Run("missing catalog file", func(t *testing.T) {
		err := execute(t, "check",
			"--encoding", "0010000----------010-----0110011",
			"--catalog", filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Error("expected error for missing catalog file")
		}
	})
}
