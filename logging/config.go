package logging

import "github.com/grovetools/selfpath/config"

func init() {
	config.RegisterExtension("logging", &Config{})
}

// Config defines the logging section of selfpath.yml.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	// Can be overridden by the SELFPATH_LOG_LEVEL environment variable.
	Level string `yaml:"level,omitempty" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=warning,enum=error,description=Minimum log level"`

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	// Can be enabled with the SELFPATH_LOG_CALLER=true environment variable.
	ReportCaller bool `yaml:"report_caller,omitempty" jsonschema:"description=Include caller file and line in log entries"`

	File FileSinkConfig `yaml:"file,omitempty"`

	Format FormatConfig `yaml:"format,omitempty"`
}

// FileSinkConfig configures the file logging sink.
type FileSinkConfig struct {
	Enabled bool `yaml:"enabled,omitempty"`
	// Path is the full path to the log file. A leading ~ is expanded. Empty
	// means logs/selfpath.log under the state directory.
	Path string `yaml:"path,omitempty"`
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset           string `yaml:"preset,omitempty" jsonschema:"enum=default,enum=simple,enum=json"`
	DisableTimestamp bool   `yaml:"disable_timestamp,omitempty"`
	DisableComponent bool   `yaml:"disable_component,omitempty"`
	// StructuredToStderr controls when logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string `yaml:"structured_to_stderr,omitempty" jsonschema:"enum=auto,enum=always,enum=never"`
}
