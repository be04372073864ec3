package logging

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/selfpath/config"
	"github.com/grovetools/selfpath/theme"
)

func TestNewLoggerIsCachedPerComponent(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SELFPATH_HOME", t.TempDir())

	logger := NewLogger("test-component")
	require.NotNil(t, logger)
	assert.Equal(t, "test-component", logger.Data["component"])
	assert.Same(t, logger, NewLogger("test-component"))
	assert.NotSame(t, logger, NewLogger("other-component"))
}

func TestNewLoggerWithConfigLevel(t *testing.T) {
	t.Setenv("SELFPATH_LOG_LEVEL", "")

	entry := NewLoggerWithConfig("lvl", Config{Level: "debug"})
	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())

	entry = NewLoggerWithConfig("lvl", Config{Level: "nonsense"})
	assert.Equal(t, logrus.InfoLevel, entry.Logger.GetLevel())

	t.Setenv("SELFPATH_LOG_LEVEL", "error")
	entry = NewLoggerWithConfig("lvl", Config{Level: "debug"})
	assert.Equal(t, logrus.ErrorLevel, entry.Logger.GetLevel())
}

func TestNewLoggerWithConfigFileSink(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "selfpath.log")

	entry := NewLoggerWithConfig("file", Config{
		File:   FileSinkConfig{Enabled: true, Path: logPath},
		Format: FormatConfig{Preset: "json", StructuredToStderr: "never"},
	})
	entry.WithField("path", "/bin/app").Info("resolved")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &record))
	assert.Equal(t, "resolved", record["msg"])
	assert.Equal(t, "file", record["component"])
	assert.Equal(t, "/bin/app", record["path"])
}

func TestFileSinkDefaultsToStateDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SELFPATH_HOME", home)

	entry := NewLoggerWithConfig("file", Config{
		File:   FileSinkConfig{Enabled: true},
		Format: FormatConfig{StructuredToStderr: "never"},
	})
	entry.Info("written")

	data, err := os.ReadFile(filepath.Join(home, "state", "logs", "selfpath.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}

func TestLoggingSectionFromConfig(t *testing.T) {
	cfg, err := config.LoadFromBytes([]byte(`
logging:
  level: warn
  format:
    preset: simple
`), config.FormatYAML)
	require.NoError(t, err)

	var logCfg Config
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "warn", logCfg.Level)
	assert.Equal(t, "simple", logCfg.Format.Preset)

	_, err = config.LoadFromBytes([]byte("logging:\n  level: loud\n"), config.FormatYAML)
	assert.Error(t, err, "logging section is validated by the registered schema")
}

func TestShouldLogToStderr(t *testing.T) {
	assert.True(t, shouldLogToStderr("always", logrus.InfoLevel))
	assert.False(t, shouldLogToStderr("never", logrus.DebugLevel))
	assert.True(t, shouldLogToStderr("auto", logrus.DebugLevel))
}

func TestTextFormatter(t *testing.T) {
	theme.Use("terminal")
	t.Cleanup(func() { theme.Use("") })

	tests := []struct {
		name    string
		config  FormatConfig
		data    logrus.Fields
		want    []string
		notWant []string
	}{
		{
			name:   "default",
			config: FormatConfig{},
			data:   logrus.Fields{"component": "exe", "status": "success"},
			want:   []string{"2024-01-02 03:04:05", "[INFO]", "exe", "hello", "status=success"},
		},
		{
			name:    "no timestamp or component",
			config:  FormatConfig{DisableTimestamp: true, DisableComponent: true},
			data:    logrus.Fields{"component": "exe"},
			want:    []string{"[INFO] hello"},
			notWant: []string{"2024-01-02", "exe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &TextFormatter{Config: tt.config}
			entry := &logrus.Entry{
				Logger:  logrus.New(),
				Data:    tt.data,
				Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
				Level:   logrus.InfoLevel,
				Message: "hello",
			}
			out, err := f.Format(entry)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, string(out), w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, string(out), nw)
			}
			assert.True(t, strings.HasSuffix(string(out), "\n"))
		})
	}
}

func TestTextFormatterWarnLevelAndFieldOrder(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true, DisableComponent: true}}
	out, err := f.Format(&logrus.Entry{
		Logger:  logrus.New(),
		Data:    logrus.Fields{"b": 2, "a": 1},
		Level:   logrus.WarnLevel,
		Message: "careful",
	})
	require.NoError(t, err)
	assert.Equal(t, "[WARN] careful a=1 b=2\n", string(out))
}

func TestTextFormatterQuotesValues(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true}}
	out, err := f.Format(&logrus.Entry{
		Logger: logrus.New(),
		Data: logrus.Fields{
			"component": "abs",
			"path":      "/opt/my app",
			"empty":     "",
			"error":     stderrors.New("no such file"),
		},
		Level:   logrus.ErrorLevel,
		Message: "unresolved",
	})
	require.NoError(t, err)
	assert.Equal(t, `[ERROR] [abs] unresolved empty="" error="no such file" path="/opt/my app"`+"\n", string(out))
}
