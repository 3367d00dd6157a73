package groupid_test

import (
	"errors"
	"testing"

	"mediathek/internal/groupid"
	"mediathek/internal/pipeline"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"2024-02-16 Zermatt", true},
		{"2024-21-03 Ausflug nach Willisau", true}, // shape check, not calendar
		{"2024-02-16", false},                      // no title
		{"2024-02-16 ", false},
		{"Zermatt 2024-02-16", false}, // date must lead
		{"2024-02-16 Bad|Title", false},
		{"24-02-16 Zermatt", false},
	}
	for _, tt := range tests {
		err := groupid.Validate(tt.id)
		if (err == nil) != tt.valid {
			t.Errorf("Validate(%q) = %v, want valid=%v", tt.id, err, tt.valid)
		}
		if err != nil && !errors.Is(err, pipeline.ErrValidation) {
			t.Errorf("Validate(%q): expected validation marker, got %v", tt.id, err)
		}
	}
}

func TestFromFileName(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"2024-02-16 X.m4v", "2024-02-16 X"},
		{"2024-02-16 X-fanart.jpg", "2024-02-16 X"},
		{"/library/Familie/2024/2024-02-16 X.mp4", "2024-02-16 X"},
	}
	for _, tt := range tests {
		got, err := groupid.FromFileName(tt.file)
		if err != nil {
			t.Errorf("FromFileName(%q): %v", tt.file, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromFileName(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}

func TestFromFileNameRejectsTrailingDate(t *testing.T) {
	if _, err := groupid.FromFileName("Zermatt 2024-02-16.m4v"); err == nil {
		t.Fatal("a date at the end of the name is not a group id")
	}
}

func TestMatches(t *testing.T) {
	if !groupid.Matches("2024-02-16 X-fanart.jpg", "2024-02-16 X") {
		t.Fatal("fanart sibling should match its group")
	}
	if groupid.Matches("2024-02-16 X-fanart.jpg", "2024-02-16 Y") {
		t.Fatal("different titles must not match")
	}
	// Prefix alone is not membership; "2024-02-16 X Y" is another group.
	if groupid.Matches("2024-02-16 X Y.m4v", "2024-02-16 X") {
		t.Fatal("longer titles must not match a shorter id")
	}
}

func TestCompose(t *testing.T) {
	id, err := groupid.Compose("2024-02-16", "Zermatt")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if id != "2024-02-16 Zermatt" {
		t.Fatalf("unexpected id: %q", id)
	}
	if groupid.Year(id) != 2024 {
		t.Fatalf("unexpected year: %d", groupid.Year(id))
	}
}

func TestComposeRejectsEmptyTitle(t *testing.T) {
	if _, err := groupid.Compose("2024-02-16", "  "); err == nil {
		t.Fatal("expected validation error")
	}
}
