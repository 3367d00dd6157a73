package logging

import (
	"context"
	"log/slog"

	"mediathek/internal/pipeline"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSource is the standardized structured logging key for the source file path.
	FieldSource = "source"
	// FieldStage is the standardized structured logging key for pipeline stage names.
	FieldStage = "stage"
	// FieldGroupID is the standardized structured logging key for media group identifiers.
	FieldGroupID = "group_id"
	// FieldCorrelationID is the standardized structured logging key for request correlation identifiers.
	FieldCorrelationID = "correlation_id"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if src, ok := pipeline.SourceFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSource, src))
	}
	if stage, ok := pipeline.StageFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldStage, stage))
	}
	if rid, ok := pipeline.RequestIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, rid))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
