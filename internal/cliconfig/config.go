package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/implement/pkg/codec"
	"github.com/bft-labs/implement/pkg/implement"
	"github.com/bft-labs/implement/pkg/modload"
)

// Output formats accepted by --format.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// cliCallerName is the pseudo file placed in the working directory when no
// --from is given, so specifiers resolve relative to the working directory.
const cliCallerName = "implement-cli"

// Config holds CLI configuration for implement.
type Config struct {
	// From is the source file the specifier is resolved against.
	From string

	Suffix string
	Format string
	Symbol string
	Codecs []string

	LogLevel string
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Suffix:   implement.DefaultSuffix,
		Format:   FormatJSON,
		Symbol:   codec.DefaultGoSymbol,
		LogLevel: "info",
		Debounce: modload.DefaultDebounceDelay,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.From == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		c.From = filepath.Join(wd, cliCallerName)
	}
	if !filepath.IsAbs(c.From) {
		abs, err := filepath.Abs(c.From)
		if err != nil {
			return fmt.Errorf("from: %w", err)
		}
		c.From = abs
	}

	if c.Suffix == "" {
		c.Suffix = implement.DefaultSuffix
	}
	if c.Symbol == "" {
		c.Symbol = codec.DefaultGoSymbol
	}

	switch c.Format {
	case FormatJSON, FormatTOML, FormatYAML:
	default:
		return fmt.Errorf("format must be one of json, toml, yaml (got %q)", c.Format)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}

	if _, err := c.BuildCodecs(); err != nil {
		return err
	}
	return nil
}

// BuildCodecs returns the enabled codecs in the configured order. An empty
// list enables every built-in codec.
func (c *Config) BuildCodecs() ([]codec.Codec, error) {
	goSource := &codec.GoSource{Symbol: c.Symbol}
	if len(c.Codecs) == 0 {
		all := codec.Default()
		all[0] = goSource
		return all, nil
	}

	codecs := make([]codec.Codec, 0, len(c.Codecs))
	for _, name := range c.Codecs {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "go":
			codecs = append(codecs, goSource)
		case "cue":
			codecs = append(codecs, codec.NewCUE())
		case "toml":
			codecs = append(codecs, codec.NewTOML())
		case "yaml", "yml":
			codecs = append(codecs, codec.NewYAML())
		case "json":
			codecs = append(codecs, codec.NewJSON())
		default:
			return nil, fmt.Errorf("unknown codec %q", name)
		}
	}
	return codecs, nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list if non-empty and flag not changed.
func (s *configSetter) setStrings(flag string, values []string, dst *[]string) {
	if len(values) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), values...)
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// splitList splits a comma-separated environment value, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
