package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (IMPLEMENT_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("from", os.Getenv("IMPLEMENT_FROM"), &cfg.From)
	s.setString("suffix", os.Getenv("IMPLEMENT_SUFFIX"), &cfg.Suffix)
	s.setString("format", os.Getenv("IMPLEMENT_FORMAT"), &cfg.Format)
	s.setString("symbol", os.Getenv("IMPLEMENT_SYMBOL"), &cfg.Symbol)
	s.setString("log-level", os.Getenv("IMPLEMENT_LOG_LEVEL"), &cfg.LogLevel)
	s.setStrings("codecs", splitList(os.Getenv("IMPLEMENT_CODECS")), &cfg.Codecs)

	return s.setDuration("debounce", os.Getenv("IMPLEMENT_DEBOUNCE"), &cfg.Debounce)
}
