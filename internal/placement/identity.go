package placement

import (
	"path/filepath"
	"strings"

	"mediathek/internal/dates"
	"mediathek/internal/groupid"
	"mediathek/internal/metadata"
	"mediathek/internal/naming"
	"mediathek/internal/textutil"
)

// identity is the resolved group key for one incoming file.
type identity struct {
	id   string
	year int
	rec  dates.RecordingDate
	// verbatim is set when the base name already carried a valid group id and
	// was kept as-is, in which case rec is zero and year comes from the id.
	verbatim bool
}

// resolveIdentity computes the media group identity for source. A base name
// already shaped like a group id is authoritative; otherwise date and title
// are resolved (metadata first, then filename grammars, then the file
// timestamp) and composed into a fresh id.
func resolveIdentity(source string, fields metadata.Fields) (identity, error) {
	if id, err := groupid.FromFileName(source); err == nil {
		return identity{id: id, year: groupid.Year(id), verbatim: true}, nil
	}

	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))

	rec, fromName, err := resolveDate(source, base, fields)
	if err != nil {
		return identity{}, err
	}

	title, err := resolveTitle(source, base, fields, rec, fromName)
	if err != nil {
		return identity{}, err
	}

	id, err := groupid.Compose(rec.ISO(), title)
	if err != nil {
		return identity{}, err
	}
	return identity{id: id, year: rec.Year(), rec: rec}, nil
}

// resolveDate prefers an explicit metadata date claim, then the filename, and
// finally the file's modification timestamp. The bool reports whether the
// matched substring came out of the filename.
func resolveDate(source, base string, fields metadata.Fields) (dates.RecordingDate, bool, error) {
	if claim := strings.TrimSpace(fields.RecordingDate); claim != "" {
		if rec, ok := dates.Extract(claim); ok {
			return rec, false, nil
		}
	}
	if rec, ok := dates.Extract(base); ok {
		return rec, true, nil
	}
	rec, err := dates.FromFileTimestamp(source)
	return rec, false, err
}

// resolveTitle prefers a usable metadata title; otherwise the filename with
// any recognized date substring cut out. Even when the authoritative date
// came from metadata, a date embedded in the filename is still stripped so it
// does not leak into the title.
func resolveTitle(source, base string, fields metadata.Fields, rec dates.RecordingDate, fromName bool) (string, error) {
	if title := strings.TrimSpace(fields.Title); title != "" && textutil.ValidFileName(title) {
		return title, nil
	}

	matched := ""
	if fromName {
		matched = rec.Matched
	} else if nameRec, ok := dates.Extract(base); ok {
		matched = nameRec.Matched
	}
	return naming.ExtractTitle(filepath.Base(source), matched)
}
