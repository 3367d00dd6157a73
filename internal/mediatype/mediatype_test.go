package mediatype_test

import (
	"os"
	"path/filepath"
	"testing"

	"mediathek/internal/mediatype"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestClassifyMovieExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mp4", "b.M4V", "c.mov", "d.QT"} {
		path := filepath.Join(dir, name)
		touch(t, path)
		kind, err := mediatype.Classify(path)
		if err != nil {
			t.Fatalf("Classify(%s): %v", name, err)
		}
		if kind != mediatype.KindMovie {
			t.Errorf("Classify(%s) = %s, want movie", name, kind)
		}
	}
}

func TestClassifyImageWithSiblingMovieIsFanart(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "2024-02-16 Zermatt.m4v"))
	image := filepath.Join(dir, "2024-02-16 Zermatt.jpg")
	touch(t, image)

	kind, err := mediatype.Classify(image)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if kind != mediatype.KindFanart {
		t.Fatalf("Classify = %s, want fanart", kind)
	}
}

func TestClassifyFanartSuffixMatchesSibling(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "2024-02-16 Zermatt.m4v"))
	image := filepath.Join(dir, "2024-02-16 Zermatt-fanart.jpg")
	touch(t, image)

	kind, err := mediatype.Classify(image)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if kind != mediatype.KindFanart {
		t.Fatalf("Classify = %s, want fanart", kind)
	}
}

func TestClassifyFanartSuffixWithoutSiblingIsFanart(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "2024-02-16 Zermatt-fanart.jpg")
	touch(t, image)

	kind, err := mediatype.Classify(image)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if kind != mediatype.KindFanart {
		t.Fatalf("Classify = %s, want fanart", kind)
	}
}

func TestClassifyLoneImageIsCover(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "2024-02-16 Zermatt.jpeg")
	touch(t, image)

	kind, err := mediatype.Classify(image)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if kind != mediatype.KindCover {
		t.Fatalf("Classify = %s, want cover", kind)
	}
}

func TestClassifyUnsupportedIsTyped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	touch(t, path)

	kind, err := mediatype.Classify(path)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if kind != mediatype.KindNotSupported {
		t.Fatalf("Classify = %s, want not-supported", kind)
	}
}

func TestStripFanart(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-02-16 X-fanart", "2024-02-16 X"},
		{"2024-02-16 X-FANART", "2024-02-16 X"},
		{"2024-02-16 X", "2024-02-16 X"},
		{"-fanart", ""},
	}
	for _, tt := range tests {
		if got := mediatype.StripFanart(tt.in); got != tt.want {
			t.Errorf("StripFanart(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
