// Package logging constructs the application logger and provides the typed
// attribute helpers used throughout the pipeline.
//
// Loggers are log/slog instances writing to stdout plus an optional log file,
// in either text (console) or JSON format. Context-derived fields (source
// path, stage, correlation id) are attached through WithContext so every
// record emitted while a file moves through the pipeline carries the same
// identifiers.
package logging
