package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/grovetools/selfpath/errors"
	"github.com/grovetools/selfpath/pkg/pathbuf"
)

// Output formats accepted by the output setting.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the selfpath configuration file.
type Config struct {
	Version string `yaml:"version,omitempty" jsonschema:"description=Configuration version (e.g. '1.0')"`

	// BufferSize is the default capacity, in bytes, of the buffer used by the exe and dir commands.
	BufferSize int `yaml:"buffer_size,omitempty" jsonschema:"minimum=0,description=Default buffer capacity in bytes for executable path queries"`

	// Strict makes the abs command stop at the first path that cannot be resolved.
	Strict bool `yaml:"strict,omitempty" jsonschema:"description=Stop at the first unresolved path"`

	Output string `yaml:"output,omitempty" jsonschema:"enum=text,enum=json,description=Default output format"`

	Theme string `yaml:"theme,omitempty" jsonschema:"description=Color theme for CLI output (kanagawa or terminal)"`

	// Extensions holds every top-level section not declared above, keyed by
	// section name. Packages decode their own section with UnmarshalExtension.
	Extensions map[string]interface{} `yaml:"-" jsonschema:"-"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.BufferSize == 0 {
		c.BufferSize = pathbuf.MaxPathLength
	}
	if c.Output == "" {
		c.Output = OutputText
	}
}

// Validate checks semantic constraints that the schema cannot express.
func (c *Config) Validate() error {
	if c.BufferSize < 0 {
		return errors.ConfigInvalid("buffer_size must not be negative").
			WithDetail("buffer_size", c.BufferSize)
	}
	switch c.Output {
	case "", OutputText, OutputJSON:
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown output format %q", c.Output)).
			WithDetail("output", c.Output)
	}
	return nil
}

// UnmarshalExtension decodes the named top-level section into target, which
// must be a pointer. A missing section leaves target untouched.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := newDecoder(target)
	if err != nil {
		return err
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// newDecoder builds a mapstructure decoder keyed on yaml tags, so YAML and TOML
// documents decode through the same struct tags.
func newDecoder(target interface{}) (*mapstructure.Decoder, error) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	return decoder, nil
}
