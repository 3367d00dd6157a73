// Package groupid defines the stable identity key correlating the files of
// one media group.
//
// An identity has the shape "YYYY-MM-DD Title" and doubles as a directory and
// file name prefix, so it must also be free of reserved filesystem
// characters. Validation is by shape, not by calendar: an id is an equality
// key, and re-validating historic names against calendar rules would orphan
// files already in the library.
package groupid

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"mediathek/internal/mediatype"
	"mediathek/internal/pipeline"
	"mediathek/internal/textutil"
)

var idPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} .+$`)

// Validate checks id against the identity shape and the reserved character set.
func Validate(id string) error {
	if !idPattern.MatchString(id) {
		return pipeline.Wrap(pipeline.ErrValidation, "identifying", "validate id",
			fmt.Sprintf("%q does not match the required YYYY-MM-DD Title shape", id), nil)
	}
	if !textutil.ValidFileName(id) {
		return pipeline.Wrap(pipeline.ErrValidation, "identifying", "validate id",
			fmt.Sprintf("%q contains reserved filesystem characters", id), nil)
	}
	return nil
}

// FromFileName derives the identity from a file's base name with the fanart
// marker and extension stripped.
func FromFileName(fileName string) (string, error) {
	base := filepath.Base(fileName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSpace(mediatype.StripFanart(base))
	if err := Validate(base); err != nil {
		return "", err
	}
	return base, nil
}

// Matches reports whether fileName belongs to the group identified by id.
func Matches(fileName, id string) bool {
	derived, err := FromFileName(fileName)
	if err != nil {
		return false
	}
	return derived == id
}

// Compose builds and validates an identity from an ISO date and a title.
func Compose(isoDate, title string) (string, error) {
	id := strings.TrimSpace(isoDate) + " " + strings.TrimSpace(title)
	if err := Validate(id); err != nil {
		return "", err
	}
	return id, nil
}

// Year returns the identity's leading four digits. Validate first; Year
// assumes the shape holds.
func Year(id string) int {
	year, _ := strconv.Atoi(id[:4])
	return year
}
