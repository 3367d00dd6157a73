package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"mediathek/internal/fileutil"
)

func TestMoveFileCreatesParents(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "src.mp4")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	dst := filepath.Join(base, "lib", "Familie", "2024", "dst.mp4")

	if err := fileutil.MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatal("source should be gone after move")
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected contents: %q", data)
	}
}

func TestMoveFileOverwritesDestination(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "src.jpg")
	dst := filepath.Join(base, "dst.jpg")
	if err := os.WriteFile(src, []byte("new"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	if err := os.WriteFile(dst, []byte("old"), 0o644); err != nil {
		t.Fatalf("write destination: %v", err)
	}

	if err := fileutil.MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}
	data, _ := os.ReadFile(dst)
	if string(data) != "new" {
		t.Fatalf("destination not replaced: %q", data)
	}
}

func TestCopyFileVerified(t *testing.T) {
	base := t.TempDir()
	src := filepath.Join(base, "a.bin")
	dst := filepath.Join(base, "b.bin")
	if err := os.WriteFile(src, []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := fileutil.CopyFileVerified(src, dst); err != nil {
		t.Fatalf("CopyFileVerified: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "0123456789" {
		t.Fatalf("unexpected copy result: %q %v", data, err)
	}
}

func TestCopyFileVerifiedMissingSource(t *testing.T) {
	base := t.TempDir()
	if err := fileutil.CopyFileVerified(filepath.Join(base, "missing"), filepath.Join(base, "out")); err == nil {
		t.Fatal("expected error for missing source")
	}
}
