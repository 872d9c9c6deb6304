package kalorie

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	out := runCLI(t, "--help")
	for _, sub := range []string{"profile", "log", "search", "today", "week", "weight", "export"} {
		if !strings.Contains(out, sub) {
			t.Fatalf("help output missing %q:\n%s", sub, out)
		}
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kalorie.db")
	for i := 0; i < 2; i++ {
		out := runCLI(t, "--store", path, "init")
		if !strings.Contains(out, path) {
			t.Fatalf("init run %d output %q", i+1, out)
		}
	}
}

func TestSearchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kalorie.db")
	out := runCLI(t, "--store", path, "search", "chicken", "breast")
	if !strings.Contains(out, "Chicken Breast, Raw") {
		t.Fatalf("search output missing match:\n%s", out)
	}
	if strings.Contains(out, "Banana") {
		t.Fatalf("search output leaked unrelated foods:\n%s", out)
	}
}

func TestProfileAndLogFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kalorie.db")

	out := runCLI(t, "--store", path, "profile", "set",
		"--name", "Mia", "--weight", "80", "--height", "180", "--age", "30", "--sex", "male")
	if !strings.Contains(out, "TDEE") {
		t.Fatalf("profile set output missing energy summary:\n%s", out)
	}

	out = runCLI(t, "--store", path, "log", "add", "Banana, Raw", "--amount", "150", "--meal", "snack")
	if !strings.Contains(out, "Banana") {
		t.Fatalf("log add output:\n%s", out)
	}

	out = runCLI(t, "--store", path, "today")
	if !strings.Contains(out, "Banana") || !strings.Contains(out, "Remaining") {
		t.Fatalf("today output:\n%s", out)
	}
}

func TestWeightFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kalorie.db")

	runCLI(t, "--store", path, "weight", "log", "80", "--date", "01.03.2026")
	runCLI(t, "--store", path, "weight", "log", "79.2", "--date", "08.03.2026")
	out := runCLI(t, "--store", path, "weight", "list")
	if !strings.Contains(out, "79.2") || !strings.Contains(out, "-0.8") {
		t.Fatalf("weight list output:\n%s", out)
	}
	if !strings.Contains(out, "Total change") {
		t.Fatalf("weight list missing delta:\n%s", out)
	}
}

func TestExportImportCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kalorie.db")
	backup := filepath.Join(dir, "backup.json")

	runCLI(t, "--store", path, "log", "add", "Banana, Raw", "--amount", "100", "--meal", "snack")
	runCLI(t, "--store", path, "export", "--out", backup)

	freshPath := filepath.Join(dir, "fresh.db")
	out := runCLI(t, "--store", freshPath, "import", "--file", backup)
	if !strings.Contains(out, "kalorie_entries") {
		t.Fatalf("import output missing applied key:\n%s", out)
	}
	out = runCLI(t, "--store", freshPath, "log", "list")
	if !strings.Contains(out, "Banana") {
		t.Fatalf("imported entries not visible:\n%s", out)
	}
}
