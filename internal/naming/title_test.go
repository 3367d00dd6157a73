package naming_test

import (
	"errors"
	"testing"

	"mediathek/internal/naming"
	"mediathek/internal/pipeline"
)

func TestDatePosition(t *testing.T) {
	tests := []struct {
		base    string
		matched string
		want    naming.Position
	}{
		{"2021-12-31 example_file", "2021-12-31", naming.PositionStart},
		{"Silvester 31.12.2021", "31.12.2021", naming.PositionEnd},
		{"Ausflug 2021-12-31 Willisau", "2021-12-31", naming.PositionMiddle},
		{"Ausflug Willisau", "2021-12-31", naming.PositionNone},
		{"Ausflug", "", naming.PositionNone},
	}
	for _, tt := range tests {
		if got := naming.DatePosition(tt.base, tt.matched); got != tt.want {
			t.Errorf("DatePosition(%q, %q) = %s, want %s", tt.base, tt.matched, got, tt.want)
		}
	}
}

func TestExtractTitleDateAtStart(t *testing.T) {
	title, err := naming.ExtractTitle("2021-12-31 example_file.txt", "2021-12-31")
	if err != nil {
		t.Fatalf("ExtractTitle: %v", err)
	}
	if title != "example_file" {
		t.Fatalf("unexpected title: %q", title)
	}
}

func TestExtractTitleDateAtEnd(t *testing.T) {
	title, err := naming.ExtractTitle("Silvester - 31.12.2021.mp4", "31.12.2021")
	if err != nil {
		t.Fatalf("ExtractTitle: %v", err)
	}
	if title != "Silvester" {
		t.Fatalf("unexpected title: %q", title)
	}
}

func TestExtractTitleDateInMiddleFails(t *testing.T) {
	_, err := naming.ExtractTitle("Ausflug 2021-12-31 Willisau.mp4", "2021-12-31")
	if err == nil {
		t.Fatal("expected error for embedded date")
	}
	if !errors.Is(err, pipeline.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
}

func TestExtractTitleNoDateUsesBaseName(t *testing.T) {
	title, err := naming.ExtractTitle("Ausflug nach Willisau.mp4", "")
	if err != nil {
		t.Fatalf("ExtractTitle: %v", err)
	}
	if title != "Ausflug nach Willisau" {
		t.Fatalf("unexpected title: %q", title)
	}
}

func TestExtractTitleEmptyRemainderFallsBack(t *testing.T) {
	// Removing the date leaves only separators; the full base name wins.
	title, err := naming.ExtractTitle("2021-12-31.mp4", "2021-12-31")
	if err != nil {
		t.Fatalf("ExtractTitle: %v", err)
	}
	if title != "2021-12-31" {
		t.Fatalf("unexpected title: %q", title)
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ausflug_nach_willisau", "Ausflug Nach Willisau"},
		{"familien-fest", "Familien Fest"},
		{"Zermatt", "Zermatt"},
	}
	for _, tt := range tests {
		if got := naming.DisplayTitle(tt.in); got != tt.want {
			t.Errorf("DisplayTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
