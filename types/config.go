/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose"`
	Config  string        `mapstructure:"config"`
	Project ProjectConfig `mapstructure:"project" validate:"required"`
	Data    DataConfig    `mapstructure:"data" validate:"required"`
	Locale  LocaleConfig  `mapstructure:"locale"`
	Notify  NotifyConfig  `mapstructure:"notify"`
}

// ProjectConfig holds project-related settings
type ProjectConfig struct {
	RootDir string `mapstructure:"rootDir" validate:"required"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	File   string `mapstructure:"file" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json yaml toml"`
}

// LocaleConfig controls locale-sensitive output such as month names.
// Priority boundaries and the retention window are absolute and unaffected.
type LocaleConfig struct {
	Tag string `mapstructure:"tag" validate:"omitempty,bcp47_language_tag"`
}

// NotifyConfig holds notification scheduler settings.
type NotifyConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// ThrottleDB is the path to the notification throttle database,
	// relative to the project root dir unless absolute.
	ThrottleDB string `mapstructure:"throttleDB" validate:"omitempty"`
}
