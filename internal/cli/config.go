package cli

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults read from the XDG config file. Explicit flags
// always win over config values.
type Config struct {
	// Values appends scalar source text to leaf labels (--values).
	Values bool `toml:"values"`

	// Indices labels sequence items [0], [1], ... (--indices).
	Indices bool `toml:"indices"`

	// Format is the default output format: text, dot, or svg (--format).
	Format string `toml:"format"`
}

// defaultConfig returns the built-in defaults used when no config file
// exists. Index labels are on, matching the JSON converter's output.
func defaultConfig() Config {
	return Config{
		Indices: true,
		Format:  "text",
	}
}

// loadConfig reads ~/.config/treemark/config.toml (or the XDG override).
// A missing file is not an error; it yields the defaults.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	return cfg, nil
}
