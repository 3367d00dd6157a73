// Package config loads, normalizes, and validates mediathek configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and validates the result. The Config type
// centralizes every knob the CLI and watch service need, allowing incoming and
// library directories, watched extensions, and logging settings to be
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
