// Package testsupport provides shared fixtures for package tests: per-test
// configurations seeded with unique temp directories and helpers for laying
// out incoming and library trees.
package testsupport

import (
	"path/filepath"
	"testing"

	"mediathek/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.IncomingDir = filepath.Join(base, "incoming")
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithOverwrite sets the destination-exists policy on the test config.
func WithOverwrite(overwrite bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Library.OverwriteExisting = overwrite
	}
}

// WithQueueSize overrides the watch queue bound on the test config.
func WithQueueSize(size int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Watch.QueueSize = size
	}
}

// WithSettleSeconds overrides the watch settle delay on the test config.
func WithSettleSeconds(seconds int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Watch.SettleSeconds = seconds
	}
}
