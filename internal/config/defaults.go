package config

const (
	defaultConfigPath       = "~/.config/syslang/config.toml"
	defaultPreferencesFile  = "~/.config/syslang/preferences.toml"
	defaultSocketPath       = "~/.local/share/syslang/syslang.sock"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 14
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			PreferencesFile: defaultPreferencesFile,
			SocketPath:      defaultSocketPath,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
