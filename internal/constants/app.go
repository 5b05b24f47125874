// Package constants provides shared constants for the wallshift application
package constants

const (
	// AppName is the canonical application name, used for config paths and task labels
	AppName = "wallshift"

	// EnvPrefix is the prefix for environment variable overrides of settings
	EnvPrefix = "WALLSHIFT_"

	// SettingsEnv names the environment variable pointing at an alternate settings file
	SettingsEnv = "WALLSHIFT_SETTINGS"

	// SettingsFileName is the default settings file name under the user config directory
	SettingsFileName = "wallshift.toml"

	// ProfilesDirName is the default directory for named profile documents
	ProfilesDirName = "profiles"
)
