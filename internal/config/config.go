// Package config loads the settings of the sexpr command from a TOML or YAML
// file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the format of a configuration file
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota
	// FormatTOML represents TOML format
	FormatTOML
	// FormatYAML represents YAML format
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	}
	return "unknown"
}

// Output formats
const (
	OutputSexpr = "sexpr"
	OutputTree  = "tree"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputXML   = "xml"
)

var outputFormats = []string{OutputSexpr, OutputTree, OutputJSON, OutputYAML, OutputXML}

var (
	ErrUnknownFormat  = errors.New("unknown configuration format")
	ErrInvalidSetting = errors.New("invalid setting")
)

// Config holds the settings of the sexpr command.
type Config struct {
	Format string `toml:"format" yaml:"format"`
	Open   string `toml:"open" yaml:"open"`
	Close  string `toml:"close" yaml:"close"`
	Jobs   int    `toml:"jobs" yaml:"jobs"`

	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		Format:    OutputSexpr,
		Open:      "(",
		Close:     ")",
		Jobs:      4,
		LogLevel:  "warning",
		LogFormat: "text",
	}
}

// DetectFormat returns the format that matches the extension of path.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads the file at path on top of the default settings.
func Load(path string) (*Config, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(buf, format)
}

// Decode parses buf on top of the default settings.
func Decode(buf []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(buf), cfg); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all settings have usable values.
func (c *Config) Validate() error {
	if !isOutputFormat(c.Format) {
		return fmt.Errorf("%w: format %q, expecting one of %s", ErrInvalidSetting, c.Format, strings.Join(outputFormats, ", "))
	}
	if err := validateDelimiter("open", c.Open); err != nil {
		return err
	}
	if err := validateDelimiter("close", c.Close); err != nil {
		return err
	}
	if c.Open == c.Close {
		return fmt.Errorf("%w: open and close delimiters must differ", ErrInvalidSetting)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be at least 1", ErrInvalidSetting)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidSetting, c.LogFormat)
	}
	return nil
}

// Delimiters returns the open and close delimiters.
func (c *Config) Delimiters() (rune, rune) {
	open, _ := utf8.DecodeRuneInString(c.Open)
	close, _ := utf8.DecodeRuneInString(c.Close)
	return open, close
}

func validateDelimiter(name, value string) error {
	if utf8.RuneCountInString(value) != 1 {
		return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidSetting, name, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if unicode.IsSpace(r) {
		return fmt.Errorf("%w: %s can't be whitespace", ErrInvalidSetting, name)
	}
	return nil
}

func isOutputFormat(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}
