package dates_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mediathek/internal/dates"
)

func TestExtractPriorityOrder(t *testing.T) {
	// Contains both a full ISO date and a bare year; the ISO rule must win.
	got, ok := dates.Extract("2021-06-07 Text.mp4")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Source != dates.SourceISO {
		t.Fatalf("expected iso source, got %s", got.Source)
	}
	if got.ISO() != "2021-06-07" || got.Matched != "2021-06-07" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestExtractGermanDates(t *testing.T) {
	tests := []struct {
		text    string
		iso     string
		matched string
	}{
		{"Ausflug 7.6.2021 Willisau", "2021-06-07", "7.6.2021"},
		{"Ausflug 07.06.2021", "2021-06-07", "07.06.2021"},
		{"Silvester 31.12.99", "1999-12-31", "31.12.99"},
		{"Geburtstag 1.5.04", "2004-05-01", "1.5.04"},
	}
	for _, tt := range tests {
		got, ok := dates.Extract(tt.text)
		if !ok {
			t.Errorf("Extract(%q): no match", tt.text)
			continue
		}
		if got.Source != dates.SourceGerman {
			t.Errorf("Extract(%q): source %s", tt.text, got.Source)
		}
		if got.ISO() != tt.iso || got.Matched != tt.matched {
			t.Errorf("Extract(%q) = %s %q, want %s %q", tt.text, got.ISO(), got.Matched, tt.iso, tt.matched)
		}
	}
}

func TestExtractMonthForms(t *testing.T) {
	tests := []struct {
		text   string
		iso    string
		source dates.Source
	}{
		{"Ferien 2021-06", "2021-06-01", dates.SourceMonth},
		{"Ferien Juni 2021", "2021-06-01", dates.SourceMonth},
		{"Holiday June 2021", "2021-06-01", dates.SourceMonth},
		{"Wanderung März 2019", "2019-03-01", dates.SourceMonth},
		{"Wanderung Oktober 2019", "2019-10-01", dates.SourceMonth},
	}
	for _, tt := range tests {
		got, ok := dates.Extract(tt.text)
		if !ok {
			t.Errorf("Extract(%q): no match", tt.text)
			continue
		}
		if got.Source != tt.source || got.ISO() != tt.iso {
			t.Errorf("Extract(%q) = %s %s, want %s %s", tt.text, got.ISO(), got.Source, tt.iso, tt.source)
		}
	}
}

func TestExtractSeasons(t *testing.T) {
	tests := []struct {
		text string
		iso  string
	}{
		{"Frühling 2020", "2020-04-01"},
		{"Spring 2020", "2020-04-01"},
		{"Sommer 2020", "2020-07-01"},
		{"Herbst 2020", "2020-10-01"},
		{"Fall 2020", "2020-10-01"},
		{"Winter 2020", "2020-01-01"},
	}
	for _, tt := range tests {
		got, ok := dates.Extract(tt.text)
		if !ok {
			t.Errorf("Extract(%q): no match", tt.text)
			continue
		}
		if got.Source != dates.SourceSeason || got.ISO() != tt.iso {
			t.Errorf("Extract(%q) = %s %s, want %s season", tt.text, got.ISO(), got.Source, tt.iso)
		}
	}
}

func TestExtractBareYear(t *testing.T) {
	got, ok := dates.Extract("Hochzeit 1998")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Source != dates.SourceYear || got.ISO() != "1998-12-31" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestExtractInvalidCalendarDateFallsThrough(t *testing.T) {
	// Month 21 is not a calendar date; the year rule picks up 2024 instead.
	got, ok := dates.Extract("2024-21-03 Ausflug nach Willisau")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Source != dates.SourceYear || got.Year() != 2024 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestExtractNoMatch(t *testing.T) {
	if _, ok := dates.Extract("Ausflug nach Willisau"); ok {
		t.Fatal("expected no match")
	}
}

func TestFromKeywordsReturnsEarliest(t *testing.T) {
	got, err := dates.FromKeywords([]string{"Zermatt", "12.7.2021", "2020-02-16", "Ferien 2018"})
	if err != nil {
		t.Fatalf("FromKeywords: %v", err)
	}
	// "Ferien 2018" must not count: bare years are excluded from keyword scans.
	if got.ISO() != "2020-02-16" {
		t.Fatalf("expected earliest full date, got %s", got.ISO())
	}
}

func TestFromKeywordsFailsWithoutFullDate(t *testing.T) {
	if _, err := dates.FromKeywords([]string{"Sommer 2020", "Zermatt"}); err == nil {
		t.Fatal("expected failure when no keyword holds a full date")
	}
}

func TestFromFileTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	stamp := time.Date(2023, time.August, 9, 14, 30, 0, 0, time.UTC)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	got, err := dates.FromFileTimestamp(path)
	if err != nil {
		t.Fatalf("FromFileTimestamp: %v", err)
	}
	if got.Source != dates.SourceFileTimestamp {
		t.Fatalf("unexpected source: %s", got.Source)
	}
	if got.ISO() != "2023-08-09" {
		t.Fatalf("unexpected date: %s", got.ISO())
	}
	if got.Matched != "" {
		t.Fatalf("timestamp fallback must not claim a matched substring: %q", got.Matched)
	}
}

func TestFromFileTimestampMissingFile(t *testing.T) {
	if _, err := dates.FromFileTimestamp(filepath.Join(t.TempDir(), "missing.mp4")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
