package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files whose extension is
// neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// ParseError wraps a config file parse failure with its source path.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the configuration file at path, applies environment
// overrides and normalizes the result. A missing file is not an error;
// defaults are used.
func Load(path string) (Options, error) {
	opts := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to env overrides.
		case err != nil:
			return opts, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := unmarshal(path, data, &opts); err != nil {
				return opts, err
			}
		}
	}

	ApplyEnv(&opts)
	opts.Normalize()
	return opts, nil
}

// unmarshal decodes data into opts based on the file extension. Fields
// absent from the file keep their current values.
func unmarshal(path string, data []byte, opts *Options) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, opts); err != nil {
			return &ParseError{Path: path, Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, opts); err != nil {
			return &ParseError{Path: path, Err: err}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}

// DefaultPath returns the conventional config file location, or an empty
// string when the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vimdown", "config.toml")
}
