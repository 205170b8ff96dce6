package types

// AppConfig is the unified application configuration, populated by viper
// from the config file, environment variables, and defaults.
type AppConfig struct {
	Project ProjectConfig `mapstructure:"project"`
	Data    DataConfig    `mapstructure:"data"`
	Lock    LockConfig    `mapstructure:"lock"`
	Verbose bool          `mapstructure:"verbose"`
}

// ProjectConfig describes where the task repository lives on disk.
type ProjectConfig struct {
	// RootDir is the base directory holding the task file and the lock file.
	RootDir string `mapstructure:"rootDir" validate:"required"`
	// TemplatesDir holds user prompt overrides. Empty disables overrides.
	TemplatesDir string `mapstructure:"templatesDir"`
}

// DataConfig describes the task data file.
type DataConfig struct {
	// File is the task file name inside Project.RootDir, one record per line.
	File string `mapstructure:"file" validate:"required"`
}

// LockConfig configures lock acquisition.
type LockConfig struct {
	// TimeoutMs is the maximum time to wait for the exclusive lock, in
	// milliseconds. Zero selects the store default (10s).
	TimeoutMs int64 `mapstructure:"timeoutMs" validate:"gte=0"`
}
