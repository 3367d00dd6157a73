// Package pipeline defines shared utilities consumed by the classification
// and placement stages.
//
// Key responsibilities:
//   - Context helpers that stamp source paths, stage names, and correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper that translate failures
//     into the per-file result kinds reported to callers.
//
// Use these helpers when wiring new stage logic so operational behaviour
// (error handling, observability) stays uniform across the pipeline.
package pipeline
