package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	IncomingDir string `toml:"incoming_dir"`
	LibraryDir  string `toml:"library_dir"`
	LogDir      string `toml:"log_dir"`
}

// Watch contains configuration for the incoming-directory watch service.
type Watch struct {
	// Extensions limits which files raise placement events. Entries are
	// matched case-insensitively and include the leading dot.
	Extensions []string `toml:"extensions"`
	// QueueSize bounds the event channel between the watcher and the
	// placement consumer.
	QueueSize int `toml:"queue_size"`
	// SettleSeconds is how long a file must be unchanged before it is placed,
	// so partially copied files are not picked up.
	SettleSeconds int `toml:"settle_seconds"`
}

// Library contains configuration for the destination media library.
type Library struct {
	// OverwriteExisting controls the destination-exists policy. When true
	// (the default) a file already sitting at the destination is replaced;
	// when false the placement fails instead.
	OverwriteExisting bool `toml:"overwrite_existing"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for mediathek.
//
// Configuration sections by subsystem:
//   - Paths: incoming, library, and log directories
//   - Watch: watched extensions and event queue bounds
//   - Library: destination overwrite policy
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Watch   Watch   `toml:"watch"`
	Library Library `toml:"library"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/mediathek/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("mediathek.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the watch service needs.
// LibraryDir is created on a best-effort basis so the service can start when
// external storage is temporarily unavailable.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.IncomingDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if strings.TrimSpace(c.Paths.LibraryDir) != "" {
		_ = os.MkdirAll(c.Paths.LibraryDir, 0o755)
	}
	return nil
}

// WatchesExtension reports whether ext (with leading dot, any case) is on the
// watched extension list.
func (c *Config) WatchesExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimSpace(ext))
	for _, candidate := range c.Watch.Extensions {
		if strings.ToLower(strings.TrimSpace(candidate)) == ext {
			return true
		}
	}
	return false
}

// SampleConfig returns the embedded sample configuration file contents.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
