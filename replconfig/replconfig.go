/*
File    : gomatch/replconfig/replconfig.go
*/

// Package replconfig loads the REPL's optional YAML configuration file,
// controlling the prompt string, ANSI color, and readline history path.
package replconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultPrompt  = "gomatch> "
	defaultHistory = ".gomatch_history"
	defaultFile    = ".gomatchrc.yaml"
	envVar         = "GOMATCH_CONFIG"
)

// Config holds everything the REPL reads back from the loaded file. Zero
// value fields are filled in by Load with the defaults above, so callers
// never need to nil-check.
type Config struct {
	Prompt      string `yaml:"prompt"`
	Color       *bool  `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

// ColorEnabled reports whether color output is on: it is false only when
// c's Color field is set and false; absence (nil) means color defaults on.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Load reads the config file named by $GOMATCH_CONFIG, falling back to
// .gomatchrc.yaml in the working directory. A missing file is not an
// error: Load returns the defaults. A present-but-malformed file is.
func Load() (*Config, error) {
	path := os.Getenv(envVar)
	if path == "" {
		path = defaultFile
	}

	cfg := &Config{Prompt: defaultPrompt, HistoryFile: defaultHistory}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = defaultHistory
	}
	return cfg, nil
}
