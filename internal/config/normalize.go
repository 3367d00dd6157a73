package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeWatch()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.IncomingDir, err = expandPath(c.Paths.IncomingDir); err != nil {
		return fmt.Errorf("paths.incoming_dir: %w", err)
	}
	if c.Paths.LibraryDir, err = expandPath(c.Paths.LibraryDir); err != nil {
		return fmt.Errorf("paths.library_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeWatch() {
	normalized := make([]string, 0, len(c.Watch.Extensions))
	seen := map[string]struct{}{}
	for _, ext := range c.Watch.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		normalized = append(normalized, ext)
	}
	if len(normalized) == 0 {
		normalized = defaultWatchExtensions()
	}
	c.Watch.Extensions = normalized

	if c.Watch.QueueSize <= 0 {
		c.Watch.QueueSize = defaultWatchQueueSize
	}
	if c.Watch.SettleSeconds <= 0 {
		c.Watch.SettleSeconds = defaultWatchSettleSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
