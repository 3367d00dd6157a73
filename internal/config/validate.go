package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.IncomingDir == "" {
		return errors.New("paths.incoming_dir must be set")
	}
	if c.Paths.LibraryDir == "" {
		return errors.New("paths.library_dir must be set")
	}
	if c.Paths.IncomingDir == c.Paths.LibraryDir {
		return errors.New("paths.incoming_dir and paths.library_dir must differ")
	}
	return nil
}

func (c *Config) validateWatch() error {
	if c.Watch.QueueSize < 1 {
		return errors.New("watch.queue_size must be positive")
	}
	if c.Watch.SettleSeconds < 1 {
		return errors.New("watch.settle_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
