// Package metadata reads the embedded tags the pipeline may prefer over
// filename conventions: title, album (used as the category list), and a
// recording date.
//
// Reads are best effort. Media in the wild carries broken or absent tags, so
// every failure degrades to "no metadata" and the filename strategies take
// over; a tag read never fails a placement.
package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
	"github.com/rwcarlsen/goexif/exif"

	"mediathek/internal/mediatype"
)

// Fields carries the optional pre-extracted metadata the placement engine
// consumes. Zero values mean "not present"; the engine falls back to
// filename and directory conventions per field.
type Fields struct {
	// RecordingDate is free text holding a date claim, run through the same
	// date grammars as filenames.
	RecordingDate string
	// Categories is the comma-separated category/album field.
	Categories string
	// Title overrides the filename-derived title when present.
	Title string
}

// Empty reports whether no field is set.
func (f Fields) Empty() bool {
	return strings.TrimSpace(f.RecordingDate) == "" &&
		strings.TrimSpace(f.Categories) == "" &&
		strings.TrimSpace(f.Title) == ""
}

// Read extracts metadata fields from the file at path based on its extension.
// Unsupported extensions return empty fields and no error.
func Read(path string) (Fields, error) {
	ext := filepath.Ext(path)
	switch {
	case mediatype.IsMovieExt(ext):
		return readMovie(path)
	case mediatype.IsImageExt(ext):
		return readImage(path)
	default:
		return Fields{}, nil
	}
}

func readMovie(path string) (Fields, error) {
	file, err := os.Open(path)
	if err != nil {
		return Fields{}, fmt.Errorf("open for tag read: %w", err)
	}
	defer file.Close()

	meta, err := tag.ReadFrom(file)
	if err != nil {
		return Fields{}, fmt.Errorf("read tags: %w", err)
	}

	fields := Fields{
		Title:      strings.TrimSpace(meta.Title()),
		Categories: strings.TrimSpace(meta.Album()),
	}
	if day := rawDay(meta); day != "" {
		fields.RecordingDate = day
	} else if year := meta.Year(); year > 0 {
		fields.RecordingDate = strconv.Itoa(year)
	}
	return fields, nil
}

// rawDay digs the full release/recording date atom out of the raw tag map;
// Year() alone loses month and day.
func rawDay(meta tag.Metadata) string {
	for _, key := range []string{"\xa9day", "©day", "day", "date"} {
		if value, ok := meta.Raw()[key]; ok {
			if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func readImage(path string) (Fields, error) {
	file, err := os.Open(path)
	if err != nil {
		return Fields{}, fmt.Errorf("open for exif read: %w", err)
	}
	defer file.Close()

	x, err := exif.Decode(file)
	if err != nil {
		return Fields{}, fmt.Errorf("decode exif: %w", err)
	}
	taken, err := x.DateTime()
	if err != nil {
		return Fields{}, nil
	}
	return Fields{RecordingDate: taken.Format("2006-01-02")}, nil
}
