package placement

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/google/uuid"

	"mediathek/internal/category"
	"mediathek/internal/config"
	"mediathek/internal/fileutil"
	"mediathek/internal/logging"
	"mediathek/internal/mediatype"
	"mediathek/internal/metadata"
	"mediathek/internal/pipeline"
	"mediathek/internal/target"
	"mediathek/internal/textutil"
)

// Engine decides where incoming files land in the library and moves them there.
type Engine struct {
	cfg    *config.Config
	logger *slog.Logger
	locks  *keyedMutex
}

// Result is the per-file outcome of a placement.
type Result struct {
	Source    string
	GroupID   string
	Kind      mediatype.Kind
	FinalPath string
	Err       error
}

// NewEngine constructs a placement engine for the configured library.
func NewEngine(cfg *config.Config, logger *slog.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "placement"),
		locks:  newKeyedMutex(),
	}
}

// PlaceFile reads embedded metadata on a best-effort basis and places source.
func (e *Engine) PlaceFile(ctx context.Context, source string) (Result, error) {
	fields, err := metadata.Read(source)
	if err != nil {
		logging.WithContext(ctx, e.logger).Debug(
			"metadata read failed; falling back to filename conventions",
			logging.String(logging.FieldSource, source),
			logging.Error(err),
		)
		fields = metadata.Fields{}
	}
	return e.Place(ctx, source, fields)
}

// Place classifies source, resolves its media group identity, and moves it
// into the library. The returned Result always carries the source, kind, and
// group id as far as they were resolved; Result.Err mirrors the error return
// so batch callers can collect both.
func (e *Engine) Place(ctx context.Context, source string, fields metadata.Fields) (Result, error) {
	return e.place(ctx, source, fields, e.categoryRootFor(source))
}

func (e *Engine) place(ctx context.Context, source string, fields metadata.Fields, categoryRoot string) (Result, error) {
	result := Result{Source: source}
	fail := func(err error) (Result, error) {
		result.Err = err
		return result, err
	}

	if _, ok := pipeline.RequestIDFromContext(ctx); !ok {
		ctx = pipeline.WithRequestID(ctx, uuid.NewString())
	}
	ctx = pipeline.WithSource(ctx, source)
	ctx = pipeline.WithStage(ctx, "placing")
	logger := logging.WithContext(ctx, e.logger)

	if _, err := os.Stat(source); err != nil {
		return fail(pipeline.Wrap(pipeline.ErrNotFound, "placing", "stat source",
			fmt.Sprintf("Source file %q unavailable", source), err))
	}
	libraryRoot := strings.TrimSpace(e.cfg.Paths.LibraryDir)
	if info, err := os.Stat(libraryRoot); err != nil || !info.IsDir() {
		return fail(pipeline.Wrap(pipeline.ErrNotFound, "placing", "stat library root",
			fmt.Sprintf("Library root %q unavailable", libraryRoot), err))
	}

	kind, err := mediatype.Classify(source)
	if err != nil {
		return fail(pipeline.Wrap(pipeline.ErrIO, "placing", "classify media",
			fmt.Sprintf("Cannot classify %q", source), err))
	}
	result.Kind = kind

	ident, err := resolveIdentity(source, fields)
	if err != nil {
		return fail(err)
	}
	result.GroupID = ident.id
	logger = logger.With(logging.String(logging.FieldGroupID, ident.id))

	segments, err := category.Resolve(categoryRoot, source, fields.Categories)
	if err != nil {
		return fail(err)
	}

	ext := filepath.Ext(source)

	// Serialize the search-then-create sequence per group so concurrent
	// first-time files of one group converge on a single directory.
	e.locks.Lock(ident.id)
	defer e.locks.Unlock(ident.id)

	dirs, err := findGroupDirs(ctx, libraryRoot, ident.id)
	if err != nil {
		return fail(err)
	}

	var destDir string
	switch len(dirs) {
	case 0:
		rel := target.Build(segments, ident.year, ident.id, kind, ext)
		destDir = filepath.Join(libraryRoot, rel.Dir)
	case 1:
		destDir = dirs[0]
	default:
		return fail(pipeline.Wrap(pipeline.ErrAmbiguousGroup, "placing", "verify group directory",
			fmt.Sprintf("Group %q found under %d directories (%s); the library needs manual repair",
				ident.id, len(dirs), strings.Join(dirs, ", ")), nil))
	}
	logger.Info(
		"placement decision",
		logging.String("decision_result", textutil.Ternary(len(dirs) == 1, "merge", "create")),
		logging.String("decision_options", "merge, create"),
		logging.String("target_dir", destDir),
		logging.String("kind", kind.String()),
		logging.String("date_source", string(ident.rec.Source)),
		logging.Bool("id_verbatim", ident.verbatim),
	)

	destPath := filepath.Join(destDir, target.FileName(ident.id, kind, ext))
	if !e.cfg.Library.OverwriteExisting && source != destPath {
		if _, err := os.Stat(destPath); err == nil {
			return fail(pipeline.Wrap(pipeline.ErrValidation, "placing", "check destination",
				fmt.Sprintf("Destination %q already exists and library.overwrite_existing is false", destPath), nil))
		}
	}

	if err := fileutil.MoveFile(source, destPath); err != nil {
		return fail(pipeline.Wrap(pipeline.ErrIO, "placing", "move into library",
			fmt.Sprintf("Failed to move %q into the library", source), err))
	}

	result.FinalPath = destPath
	logger.Info("placement completed", logging.String("final_file", destPath))
	return result, nil
}

// PlaceAll walks inputDir and places every file in it, nested directories
// included. Individual failures are recorded per file and the walk continues;
// a missing input directory or library root aborts before any mutation.
func (e *Engine) PlaceAll(ctx context.Context, inputDir string) ([]Result, error) {
	if info, err := os.Stat(inputDir); err != nil || !info.IsDir() {
		return nil, pipeline.Wrap(pipeline.ErrConfiguration, "placing", "stat input directory",
			fmt.Sprintf("Input directory %q unavailable", inputDir), err)
	}
	libraryRoot := strings.TrimSpace(e.cfg.Paths.LibraryDir)
	if info, err := os.Stat(libraryRoot); err != nil || !info.IsDir() {
		return nil, pipeline.Wrap(pipeline.ErrConfiguration, "placing", "stat library root",
			fmt.Sprintf("Library root %q unavailable", libraryRoot), err)
	}

	var results []Result
	walkErr := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			results = append(results, Result{
				Source: path,
				Err: pipeline.Wrap(pipeline.ErrIO, "placing", "walk input directory",
					fmt.Sprintf("Cannot read %q", path), err),
			})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		fields, readErr := metadata.Read(path)
		if readErr != nil {
			fields = metadata.Fields{}
		}
		res, _ := e.place(ctx, path, fields, inputDir)
		results = append(results, res)
		return ctx.Err()
	})
	if walkErr != nil {
		return results, pipeline.Wrap(pipeline.ErrIO, "placing", "walk input directory",
			"Batch placement interrupted", walkErr)
	}
	return results, nil
}

// categoryRootFor picks the root directory categories are derived against:
// the configured incoming directory when source lies under it, otherwise the
// file's own directory (which yields an empty category).
func (e *Engine) categoryRootFor(source string) string {
	root := strings.TrimSpace(e.cfg.Paths.IncomingDir)
	if root != "" {
		if rel, err := filepath.Rel(root, filepath.Dir(source)); err == nil &&
			rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return root
		}
	}
	return filepath.Dir(source)
}
