package cli

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/selfpath/config"
	"github.com/grovetools/selfpath/logging"
)

const cliComponent = "selfpath-cli"

// LoggerOption represents a function that configures a logger
type LoggerOption func(*logrus.Logger)

// WithOutput sets the logger output
func WithOutput(w io.Writer) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithLevel sets the log level
func WithLevel(level logrus.Level) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetLevel(level)
	}
}

// WithFormatter sets the log formatter
func WithFormatter(formatter logrus.Formatter) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetFormatter(formatter)
	}
}

// NewLogger builds a new, uncached logger for component from a logging section,
// with console output on stderr, then applies opts.
func NewLogger(component string, logCfg logging.Config, stderr io.Writer, opts ...LoggerOption) *logrus.Entry {
	entry := logging.NewLoggerWithConfigTo(component, logCfg, stderr)
	for _, opt := range opts {
		opt(entry.Logger)
	}
	return entry
}

type loggerKey struct{}

// GetLogger returns the logger built for cmd by the standard pre-run hook. When
// the hook has not run, a logger is built from the command's flags and defaults.
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	if ctx := cmd.Context(); ctx != nil {
		if entry, ok := ctx.Value(loggerKey{}).(*logrus.Entry); ok {
			return entry
		}
	}
	return newCommandLogger(cmd, Config(cmd))
}

// newCommandLogger applies the logging section of cfg and the command's flags:
// --verbose forces debug output on the command's stderr and --json switches to
// JSON records. Each command gets its own logger, so flags never outlive a run.
func newCommandLogger(cmd *cobra.Command, cfg *config.Config) *logrus.Entry {
	var logCfg logging.Config
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		logrus.Warnf("Failed to parse 'logging' config: %v", err)
	}

	opts := GetOptions(cmd)
	var options []LoggerOption
	if opts.Verbose {
		logCfg.Format.StructuredToStderr = "always"
		options = append(options, WithLevel(logrus.DebugLevel))
	}
	if opts.JSONOutput {
		options = append(options, WithFormatter(&logrus.JSONFormatter{}))
	}

	return NewLogger(cliComponent, logCfg, cmd.ErrOrStderr(), options...)
}

// bootstrapLogger is used while the configuration itself is loaded, so it only
// honours the environment and --verbose.
func bootstrapLogger(cmd *cobra.Command) *logrus.Entry {
	var logCfg logging.Config
	var options []LoggerOption
	if GetOptions(cmd).Verbose {
		logCfg.Format.StructuredToStderr = "always"
		options = append(options, WithLevel(logrus.DebugLevel))
	}
	return NewLogger("selfpath-config", logCfg, cmd.ErrOrStderr(), options...)
}
