package config

// NodeConfig stores node settings
type NodeConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// PathConfig stores path settings
type PathConfig struct {
	Data string `yaml:"data"`
	Log  string `yaml:"logs"`
}

// LoggingConfig stores logging settings
type LoggingConfig struct {
	LogLevel          string `yaml:"log_level"`
	LogFormat         string `yaml:"log_format"`
	DisableFileOutput bool   `yaml:"disable_file_output"`
}

// ConfigsConfig stores settings about the config files themselves
type ConfigsConfig struct {
	AutoReload bool `yaml:"auto_reload"`
}

// SystemConfig is a high priority config, init from the environment or startup, can't be changed on the fly, need to restart to make config apply
type SystemConfig struct {
	ConfigFile string

	NodeConfig NodeConfig `yaml:"node"`

	PathConfig PathConfig `yaml:"path"`

	LoggingConfig LoggingConfig `yaml:"log"`

	Configs ConfigsConfig `yaml:"configs"`

	AllowMultiInstance bool `yaml:"allow_multi_instance"`
}
