package sepstr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigFormat names a configuration file syntax.
type ConfigFormat string

const (
	ConfigYAML ConfigFormat = "yaml"
	ConfigTOML ConfigFormat = "toml"
)

// ConfigFormatFromPath picks the syntax from the file extension.
func ConfigFormatFromPath(path string) (ConfigFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ConfigYAML, nil
	case ".toml":
		return ConfigTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, path)
	}
}

// LoadConfig decodes a configuration from r on top of [DefaultConfig], so
// keys missing from the input keep their defaults. An empty document
// yields the defaults.
func LoadConfig(r io.Reader, f ConfigFormat) (Config, error) {
	return decodeConfig(r, f, DefaultConfig())
}

// LoadConfigFile reads the configuration stored at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := ConfigFormatFromPath(path)
	if err != nil {
		return Config{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()
	return LoadConfig(file, f)
}

// Overlay decodes r on top of b's configuration and returns the result.
func (b Builder) Overlay(r io.Reader, f ConfigFormat) (Builder, error) {
	cfg, err := decodeConfig(r, f, b.cfg)
	if err != nil {
		return b, err
	}
	b.cfg = cfg
	return b, nil
}

func decodeConfig(r io.Reader, f ConfigFormat, base Config) (Config, error) {
	cfg := base
	var err error
	switch f {
	case ConfigYAML:
		err = yaml.NewDecoder(r).Decode(&cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case ConfigTOML:
		err = toml.NewDecoder(r).Decode(&cfg)
	default:
		return base, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, f)
	}
	if err != nil {
		return base, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// MarshalConfig encodes cfg in the given syntax. Per-type formatters are
// not part of the encoded form.
func MarshalConfig(cfg Config, f ConfigFormat) ([]byte, error) {
	switch f {
	case ConfigYAML:
		return yaml.Marshal(cfg)
	case ConfigTOML:
		return toml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, f)
	}
}
