package config

const (
	defaultIncomingDir        = "~/mediathek/incoming"
	defaultLibraryDir         = "~/mediathek/library"
	defaultLogDir             = "~/.local/share/mediathek/logs"
	defaultWatchQueueSize     = 64
	defaultWatchSettleSeconds = 2
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

func defaultWatchExtensions() []string {
	return []string{".mp4", ".m4v", ".mov", ".qt", ".jpg", ".jpeg"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			IncomingDir: defaultIncomingDir,
			LibraryDir:  defaultLibraryDir,
			LogDir:      defaultLogDir,
		},
		Watch: Watch{
			Extensions:    defaultWatchExtensions(),
			QueueSize:     defaultWatchQueueSize,
			SettleSeconds: defaultWatchSettleSeconds,
		},
		Library: Library{
			OverwriteExisting: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
