// Package config loads defaults for the infix command from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format int

const (
	// FormatTOML is TOML.
	FormatTOML Format = iota
	// FormatYAML is YAML.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the settings of the infix command.
type Config struct {
	// Format is the fmt verb used to print results.
	Format string `toml:"format" yaml:"format"`
	// Lines makes each input line a separate expression.
	Lines bool `toml:"lines" yaml:"lines"`
	// Echo prints the grouped form of each expression before its result.
	Echo bool `toml:"echo" yaml:"echo"`
	// ErrorPrefix is printed before error messages.
	ErrorPrefix string `toml:"error_prefix" yaml:"error_prefix"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Format:      "%g",
		Lines:       true,
		ErrorPrefix: "Error: ",
	}
}

// ErrUnknownFormat is returned for files whose extension names no supported
// format.
var ErrUnknownFormat = errors.New("unknown config format")

// DetectFormat determines the format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads a configuration file. Settings missing from the file keep their
// defaults.
func Load(path string) (Config, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return Config{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	c, err := Parse(b, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes configuration content in the given format on top of the
// defaults. Unknown keys are errors.
func Parse(content []byte, format Format) (Config, error) {
	c := Default()
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), &c)
		if err != nil {
			return Config{}, fmt.Errorf("TOML parse error: %w", err)
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return Config{}, fmt.Errorf("unknown config key %q", extra[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		// An empty document decodes as io.EOF and leaves the defaults.
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if !strings.Contains(c.Format, "%") {
		return fmt.Errorf("result format %q has no formatting verb", c.Format)
	}
	return nil
}
