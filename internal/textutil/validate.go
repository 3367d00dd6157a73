package textutil

import "strings"

// reservedChars are the characters rejected in file and directory names.
const reservedChars = `<>:"|?*` + "/\\"

// IsReservedChar reports whether r may not appear in a filesystem name.
func IsReservedChar(r rune) bool {
	if r < 0x20 {
		return true
	}
	return strings.ContainsRune(reservedChars, r)
}

// ValidFileName reports whether name is non-empty after trimming and free of
// reserved characters.
func ValidFileName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, r := range name {
		if IsReservedChar(r) {
			return false
		}
	}
	return true
}

// ValidPathSegment reports whether segment is usable as a single directory
// level. Identical to ValidFileName today; kept separate so the two rule sets
// can diverge without touching callers.
func ValidPathSegment(segment string) bool {
	return ValidFileName(segment)
}

// TrimSeparators removes leading and trailing whitespace and separator
// punctuation (dashes, underscores, dots, commas) from s. Used after cutting
// a matched substring out of a filename.
func TrimSeparators(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		switch r {
		case '-', '_', '.', ',', ' ', '\t':
			return true
		}
		return false
	})
}

// Ternary is a generic conditional helper that returns a if cond is true, b otherwise.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
