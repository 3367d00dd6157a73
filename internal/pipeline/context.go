package pipeline

import "context"

type contextKey string

const (
	sourceKey    contextKey = "source"
	stageKey     contextKey = "stage"
	requestIDKey contextKey = "request_id"
)

// WithSource annotates context with the source file being processed.
func WithSource(ctx context.Context, path string) context.Context {
	if path == "" {
		return ctx
	}
	return context.WithValue(ctx, sourceKey, path)
}

// SourceFromContext extracts the source file path if present.
func SourceFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(sourceKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithStage annotates context with the pipeline stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// StageFromContext returns the stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(stageKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
