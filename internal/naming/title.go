package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mediathek/internal/pipeline"
	"mediathek/internal/textutil"
)

// Position describes where a matched date substring sits within a base name.
type Position int

const (
	PositionNone Position = iota
	PositionStart
	PositionEnd
	PositionMiddle
)

func (p Position) String() string {
	switch p {
	case PositionStart:
		return "start"
	case PositionEnd:
		return "end"
	case PositionMiddle:
		return "middle"
	default:
		return "none"
	}
}

// DatePosition locates matched within the trimmed base name (no extension).
func DatePosition(baseName, matched string) Position {
	base := strings.TrimSpace(baseName)
	if matched == "" || base == "" {
		return PositionNone
	}
	switch {
	case strings.HasPrefix(base, matched):
		return PositionStart
	case strings.HasSuffix(base, matched):
		return PositionEnd
	case strings.Contains(base, matched):
		return PositionMiddle
	default:
		return PositionNone
	}
}

// ExtractTitle removes the matched date substring from fileName and returns
// the canonical title. A date in the middle of the name is unsupported and
// returns a validation error. When removal leaves nothing usable, the whole
// base name is the title.
func ExtractTitle(fileName, matched string) (string, error) {
	base := strings.TrimSpace(fileName)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	switch DatePosition(base, matched) {
	case PositionMiddle:
		return "", pipeline.Wrap(pipeline.ErrValidation, "titling", "locate date",
			fmt.Sprintf("Date %q sits inside the name %q; splitting a title around a date is unsupported", matched, base), nil)
	case PositionStart:
		return fallbackIfInvalid(strings.TrimPrefix(base, matched), base), nil
	case PositionEnd:
		return fallbackIfInvalid(strings.TrimSuffix(base, matched), base), nil
	default:
		return base, nil
	}
}

func fallbackIfInvalid(candidate, base string) string {
	candidate = textutil.TrimSeparators(candidate)
	if !textutil.ValidFileName(candidate) {
		return base
	}
	return candidate
}

// DisplayTitle renders a title for human-facing output: separator runs become
// single spaces and words are title-cased. The canonical on-disk title is
// never altered by this.
func DisplayTitle(title string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	result := strings.TrimSpace(cleaned.String())
	if result == "" {
		return title
	}
	return cases.Title(language.Und).String(result)
}
