package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation     = errors.New("validation error")
	ErrConfiguration  = errors.New("configuration error")
	ErrNotFound       = errors.New("not found")
	ErrNoDate         = errors.New("no recording date found")
	ErrAmbiguousGroup = errors.New("ambiguous media group")
	ErrIO             = errors.New("io failure")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later result classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind maps a pipeline error to the short result label reported per file.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrNotFound):
		return "not-found"
	case errors.Is(err, ErrNoDate):
		return "no-date"
	case errors.Is(err, ErrAmbiguousGroup):
		return "ambiguous-group"
	default:
		return "io"
	}
}

// Fatal reports whether an error should abort a batch run instead of being
// recorded as a per-file failure. Only root-level misconfiguration qualifies.
func Fatal(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
