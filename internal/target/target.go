// Package target computes the relative library location for a classified
// file. Build is a pure function: identical inputs always produce identical
// paths, which keeps re-processing idempotent.
package target

import (
	"path/filepath"
	"strconv"
	"strings"

	"mediathek/internal/mediatype"
)

// Placement is a computed (directory, file name) pair relative to the library
// root. Derived data only; nothing persists it.
type Placement struct {
	Dir      string
	FileName string
}

// RelPath joins the placement into a single library-relative path.
func (p Placement) RelPath() string {
	return filepath.Join(p.Dir, p.FileName)
}

// Build combines category segments, the resolved year, the canonical name
// (group id, or title when no id applies), the media kind, and the original
// extension into a placement. Fanart images receive the fanart marker unless
// the name already ends with it.
func Build(segments []string, year int, name string, kind mediatype.Kind, ext string) Placement {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, segments...)
	parts = append(parts, strconv.Itoa(year))

	return Placement{
		Dir:      filepath.Join(parts...),
		FileName: FileName(name, kind, ext),
	}
}

// FileName renders the canonical file name for a kind, never doubling the
// fanart marker.
func FileName(name string, kind mediatype.Kind, ext string) string {
	if kind == mediatype.KindFanart && !hasFanartSuffix(name) {
		name += mediatype.FanartSuffix
	}
	return name + ext
}

func hasFanartSuffix(name string) bool {
	return len(name) >= len(mediatype.FanartSuffix) &&
		strings.EqualFold(name[len(name)-len(mediatype.FanartSuffix):], mediatype.FanartSuffix)
}
