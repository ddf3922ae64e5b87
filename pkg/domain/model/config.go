package model

// Config represents the application configuration
type Config struct {
	// CustomFolders holds untrusted action records; each one is validated
	// with ParseAction before it is registered.
	CustomFolders  []any  `yaml:"customFolders,omitempty" toml:"customFolders,omitempty"`
	DisablePresets bool   `yaml:"disablePresets,omitempty" toml:"disablePresets,omitempty"`
	Shell          string `yaml:"shell,omitempty" toml:"shell,omitempty"`
}
