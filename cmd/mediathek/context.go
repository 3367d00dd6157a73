package main

import (
	"path/filepath"
	"strings"
	"sync"

	"log/slog"

	"github.com/spf13/cobra"

	"mediathek/internal/config"
	"mediathek/internal/logging"
	"mediathek/internal/placement"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// fileLogger builds a logger writing to the configured log directory. One-shot
// commands report to the terminal themselves; the log file keeps the
// structured trail.
func (c *commandContext) fileLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{filepath.Join(cfg.Paths.LogDir, "mediathek.log")},
	})
}

func (c *commandContext) engine() (*placement.Engine, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.fileLogger()
	if err != nil {
		return nil, err
	}
	return placement.NewEngine(cfg, logger), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
