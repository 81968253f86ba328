package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitUnder_CreatesProgramDir(t *testing.T) {
	home := t.TempDir()

	if err := initUnder(home); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(filepath.Join(home, ".ytcli"))
	if err != nil {
		t.Fatalf("program dir was not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected a directory")
	}
	if DBFilePath != filepath.Join(home, ".ytcli", "ytcli.db") {
		t.Errorf("unexpected DB path %q", DBFilePath)
	}
	if YtcliLogFilePath != filepath.Join(home, ".ytcli", "ytcli.log") {
		t.Errorf("unexpected log path %q", YtcliLogFilePath)
	}
}

func TestInitUnder_ExistingDirIsKept(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".ytcli")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	marker := filepath.Join(dir, "keep")
	if err := os.WriteFile(marker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := initUnder(home); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(marker); err != nil {
		t.Fatalf("existing contents were disturbed: %v", err)
	}
}
