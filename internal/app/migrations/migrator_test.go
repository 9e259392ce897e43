package migrations

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMigrationVersion(t *testing.T) {
	tests := map[string]string{
		"001_create_faculty.sql":            "001",
		"/srv/migrations/010_add_index.sql": "010",
		"002.sql":                           "002.sql",
	}
	for in, want := range tests {
		if got := MigrationVersion(in); got != want {
			t.Errorf("MigrationVersion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPendingFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "README.md", "010_c.sql"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "003_dir.sql"), 0o700); err != nil {
		t.Fatal(err)
	}

	files, err := PendingFiles(dir)
	if err != nil {
		t.Fatalf("PendingFiles: %v", err)
	}

	want := []string{"001_a.sql", "002_b.sql", "010_c.sql"}
	if len(files) != len(want) {
		t.Fatalf("got %v, want %v", files, want)
	}
	for i, name := range want {
		if filepath.Base(files[i]) != name {
			t.Errorf("files[%d] = %s, want %s", i, files[i], name)
		}
	}
}

func TestPendingFilesMissingDirectory(t *testing.T) {
	if _, err := PendingFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestShippedMigrationsArePresent(t *testing.T) {
	files, err := PendingFiles(filepath.Join("..", "..", "..", "migrations"))
	if err != nil {
		t.Fatalf("PendingFiles: %v", err)
	}
	if len(files) == 0 || MigrationVersion(files[0]) != "001" {
		t.Errorf("expected 001 migration first, got %v", files)
	}
}
