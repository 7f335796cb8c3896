package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	From     string   `toml:"from"`
	Suffix   string   `toml:"suffix"`
	Format   string   `toml:"format"`
	Symbol   string   `toml:"symbol"`
	Codecs   []string `toml:"codecs"`
	LogLevel string   `toml:"log_level"`
	Debounce string   `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.implement/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".implement", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("from", fc.From, &cfg.From)
	s.setString("suffix", fc.Suffix, &cfg.Suffix)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("symbol", fc.Symbol, &cfg.Symbol)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setStrings("codecs", fc.Codecs, &cfg.Codecs)

	return s.setDuration("debounce", fc.Debounce, &cfg.Debounce)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
