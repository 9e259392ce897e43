package filestorage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newStorage(t *testing.T) (*LocalStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	ls, err := NewLocalStorage(dir, "uploads/")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return ls, dir
}

func TestSaveAndDelete(t *testing.T) {
	ls, dir := newStorage(t)
	ctx := context.Background()

	publicPath, err := ls.Save(ctx, "Resume.PDF", strings.NewReader("cv"), "faculty-1")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(publicPath, "/uploads/faculty-1/") || !strings.HasSuffix(publicPath, ".pdf") {
		t.Errorf("public path = %q", publicPath)
	}

	stored := filepath.Join(dir, "faculty-1", filepath.Base(publicPath))
	content, err := os.ReadFile(stored)
	if err != nil || string(content) != "cv" {
		t.Fatalf("stored content = %q, err %v", content, err)
	}

	if err := ls.Delete(ctx, publicPath); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(stored); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file still present: %v", err)
	}
	// Deleting again is a no-op
	if err := ls.Delete(ctx, publicPath); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestSaveKeepsSubPathInsideRoot(t *testing.T) {
	ls, dir := newStorage(t)

	publicPath, err := ls.Save(context.Background(), "a.txt", strings.NewReader("x"), "../../etc")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(publicPath, "/uploads/etc/") {
		t.Errorf("public path = %q", publicPath)
	}
	if _, err := os.Stat(filepath.Join(dir, "etc", filepath.Base(publicPath))); err != nil {
		t.Errorf("file not under root: %v", err)
	}
}

func TestDeleteRejectsForeignPaths(t *testing.T) {
	ls, _ := newStorage(t)
	for _, p := range []string{"/etc/passwd", "/uploads/../etc/passwd", "/uploads/", "https://cdn.example.com/x.pdf"} {
		if err := ls.Delete(context.Background(), p); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Delete(%q) = %v, want ErrInvalidPath", p, err)
		}
	}
}
