package placement

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mediathek/internal/category"
	"mediathek/internal/dates"
	"mediathek/internal/mediatype"
	"mediathek/internal/metadata"
	"mediathek/internal/pipeline"
	"mediathek/internal/target"
)

// Report describes where a file would land without moving anything.
type Report struct {
	Source   string
	Kind     mediatype.Kind
	GroupID  string
	Title    string
	Date     dates.RecordingDate
	Segments []string
	// TargetPath is the destination the file would be moved to. It is empty
	// when the group is ambiguous.
	TargetPath string
	// GroupDirs lists library directories already holding files of this group.
	// More than one entry means the library needs manual repair before the
	// file can be placed.
	GroupDirs []string
}

// Inspect runs the placement decision for source as a dry run: metadata is
// read, identity and target resolved, the library searched, but no file is
// touched.
func (e *Engine) Inspect(ctx context.Context, source string) (Report, error) {
	fields, err := metadata.Read(source)
	if err != nil {
		fields = metadata.Fields{}
	}
	return e.InspectFields(ctx, source, fields)
}

// InspectFields is Inspect with caller-supplied metadata fields.
func (e *Engine) InspectFields(ctx context.Context, source string, fields metadata.Fields) (Report, error) {
	report := Report{Source: source}

	if _, err := os.Stat(source); err != nil {
		return report, pipeline.Wrap(pipeline.ErrNotFound, "inspecting", "stat source",
			fmt.Sprintf("Source file %q unavailable", source), err)
	}

	kind, err := mediatype.Classify(source)
	if err != nil {
		return report, pipeline.Wrap(pipeline.ErrIO, "inspecting", "classify media",
			fmt.Sprintf("Cannot classify %q", source), err)
	}
	report.Kind = kind

	ident, err := resolveIdentity(source, fields)
	if err != nil {
		return report, err
	}
	report.GroupID = ident.id
	report.Title = groupTitle(ident.id)
	report.Date = ident.rec

	segments, err := category.Resolve(e.categoryRootFor(source), source, fields.Categories)
	if err != nil {
		return report, err
	}
	report.Segments = segments

	ext := filepath.Ext(source)
	libraryRoot := strings.TrimSpace(e.cfg.Paths.LibraryDir)
	if _, err := os.Stat(libraryRoot); err == nil {
		report.GroupDirs, err = findGroupDirs(ctx, libraryRoot, ident.id)
		if err != nil {
			return report, err
		}
	}

	switch len(report.GroupDirs) {
	case 0:
		rel := target.Build(segments, ident.year, ident.id, kind, ext)
		report.TargetPath = filepath.Join(libraryRoot, rel.Dir, rel.FileName)
	case 1:
		report.TargetPath = filepath.Join(report.GroupDirs[0], target.FileName(ident.id, kind, ext))
	}
	return report, nil
}

// groupTitle returns the title half of a group id.
func groupTitle(id string) string {
	if len(id) > 11 {
		return id[11:]
	}
	return id
}
