package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/selfpath/errors"
	"github.com/grovetools/selfpath/pkg/paths"
	"github.com/grovetools/selfpath/schema"
)

// Format is the syntax of a configuration file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// configNames lists the file names searched for, in order of precedence.
var configNames = []string{
	"selfpath.yml",
	"selfpath.yaml",
	"selfpath.toml",
	".selfpath.yml",
	".selfpath.yaml",
	".selfpath.toml",
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads and parses a configuration file. The format follows the file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data, FormatFor(path))
	if err != nil {
		if spErr, ok := err.(*errors.SelfPathError); ok {
			return nil, spErr.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadDefault finds and loads the configuration starting from the working directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom finds and loads the configuration starting from startDir.
func LoadFrom(startDir string) (*Config, error) {
	return LoadFromWithLogger(startDir, nil)
}

// LoadFromWithLogger is LoadFrom with debug logging of the file chosen. A nil
// logger disables logging.
func LoadFromWithLogger(startDir string, logger *logrus.Entry) (*Config, error) {
	path, err := FindConfigFile(startDir)
	if err != nil {
		if logger != nil {
			logger.WithField("start", startDir).Debug("No configuration file found")
		}
		return nil, err
	}

	if logger != nil {
		logger.WithField("path", path).Debug("Loading configuration")
	}
	return Load(path)
}

// LoadFromBytes parses, validates and defaults a configuration document.
func LoadFromBytes(data []byte, format Format) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	raw := map[string]interface{}{}
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(expanded, &raw)
	default:
		err = yaml.Unmarshal(expanded, &raw)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse configuration").
			WithDetail("format", string(format))
	}

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create validator")
	}
	if err := validator.Validate(raw); err != nil {
		spErr := errors.Wrap(err, errors.ErrCodeConfigInvalid, "schema validation failed")
		var verr *schema.ValidationError
		if stderrors.As(err, &verr) {
			spErr = spErr.WithDetail("fields", verr.Pointers())
		}
		return nil, spErr
	}

	var cfg Config
	decoder, err := newDecoder(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode configuration")
	}

	cfg.Extensions = make(map[string]interface{})
	for key, value := range raw {
		if !coreKeys[key] {
			cfg.Extensions[key] = value
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.SetDefaults()

	return &cfg, nil
}

// FormatFor returns the format implied by a file name.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// FindConfigFile searches for a configuration file with the following precedence:
// 1. startDir up to the filesystem root
// 2. The user config directory (see paths.ConfigDir)
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		if path := findIn(dir); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if userDir := paths.ConfigDir(); userDir != "" {
		if path := findIn(userDir); path != "" {
			return path, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

func findIn(dir string) string {
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value, ok := os.LookupEnv(varName); ok && value != "" {
			return value
		}
		return defaultValue
	})
}
