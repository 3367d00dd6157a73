// Package category resolves the ordered category segments a file belongs
// under, preferring embedded metadata over directory structure.
package category

import (
	"fmt"
	"path/filepath"
	"strings"

	"mediathek/internal/pipeline"
	"mediathek/internal/textutil"
)

// FromMetadata splits a comma-separated category field into trimmed, unique
// segments, keeping first occurrence order. The second return is false when
// the field is empty.
func FromMetadata(raw string) ([]string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	seen := map[string]struct{}{}
	var segments []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		segments = append(segments, part)
	}
	if len(segments) == 0 {
		return nil, false
	}
	return segments, true
}

// FromDirectory derives category segments from the file's parent directory
// relative to root. A file directly under root carries no category. The file
// must live inside root.
func FromDirectory(root, filePath string) ([]string, error) {
	dir := filepath.Dir(filePath)
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrValidation, "categorizing", "relativize directory",
			fmt.Sprintf("Cannot relate %q to root %q", dir, root), err)
	}
	if rel == "." {
		return nil, nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, pipeline.Wrap(pipeline.ErrValidation, "categorizing", "relativize directory",
			fmt.Sprintf("File %q lies outside root %q", filePath, root), nil)
	}
	segments := strings.Split(rel, string(filepath.Separator))
	return segments, nil
}

// Resolve applies the category precedence: a non-empty metadata field is
// authoritative, otherwise the directory structure decides. Every segment is
// validated against the reserved character set.
func Resolve(root, filePath, metadataCategories string) ([]string, error) {
	segments, ok := FromMetadata(metadataCategories)
	if !ok {
		var err error
		segments, err = FromDirectory(root, filePath)
		if err != nil {
			return nil, err
		}
	}
	for _, segment := range segments {
		if !textutil.ValidPathSegment(segment) {
			return nil, pipeline.Wrap(pipeline.ErrValidation, "categorizing", "validate segment",
				fmt.Sprintf("Category segment %q contains reserved characters", segment), nil)
		}
	}
	return segments, nil
}
