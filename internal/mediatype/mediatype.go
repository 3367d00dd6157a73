// Package mediatype classifies files by extension into the media kinds the
// library understands, and tells cover images apart from fanart.
package mediatype

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind is the media classification of a single file.
type Kind int

const (
	KindNotSupported Kind = iota
	KindMovie
	KindCover
	KindFanart
)

func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindCover:
		return "cover"
	case KindFanart:
		return "fanart"
	default:
		return "not-supported"
	}
}

// FanartSuffix marks background images belonging to a movie file.
const FanartSuffix = "-fanart"

var movieExtensions = map[string]struct{}{
	".mp4": {},
	".m4v": {},
	".mov": {},
	".qt":  {},
}

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".jpe":  {},
	".jif":  {},
	".jfif": {},
	".jfi":  {},
}

// IsMovieExt reports whether ext names a supported movie container.
func IsMovieExt(ext string) bool {
	_, ok := movieExtensions[strings.ToLower(ext)]
	return ok
}

// IsImageExt reports whether ext names a supported image format.
func IsImageExt(ext string) bool {
	_, ok := imageExtensions[strings.ToLower(ext)]
	return ok
}

// StripFanart removes a trailing fanart marker from a base name, case-insensitively.
func StripFanart(baseName string) string {
	if len(baseName) >= len(FanartSuffix) && strings.EqualFold(baseName[len(baseName)-len(FanartSuffix):], FanartSuffix) {
		return baseName[:len(baseName)-len(FanartSuffix)]
	}
	return baseName
}

// Classify determines the media kind of path. Images carrying the fanart
// marker are always fanart; unmarked images are fanart when a movie file with
// the same base name sits next to them, covers otherwise. Unsupported
// extensions yield KindNotSupported, not an error; the error return covers
// only sibling-probe I/O.
func Classify(path string) (Kind, error) {
	ext := filepath.Ext(path)
	switch {
	case IsMovieExt(ext):
		return KindMovie, nil
	case IsImageExt(ext):
		return classifyImage(path, ext)
	default:
		return KindNotSupported, nil
	}
}

func classifyImage(path, ext string) (Kind, error) {
	base := strings.TrimSuffix(filepath.Base(path), ext)
	stripped := StripFanart(base)
	// An explicit marker decides on its own; the matching movie may already
	// sit in the library rather than beside the image.
	if stripped != base {
		return KindFanart, nil
	}
	stem := strings.ToLower(stripped)

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		return KindNotSupported, fmt.Errorf("probe image siblings: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		siblingExt := filepath.Ext(name)
		if !IsMovieExt(siblingExt) {
			continue
		}
		siblingStem := strings.ToLower(strings.TrimSuffix(name, siblingExt))
		if siblingStem == stem {
			return KindFanart, nil
		}
	}
	return KindCover, nil
}
