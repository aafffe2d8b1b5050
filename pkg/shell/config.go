package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
	"gopkg.in/yaml.v3"

	"src.tish.sh/pkg/prog"
	"src.tish.sh/pkg/sig"
)

// Config is the content of rc.yaml.
type Config struct {
	// Prompt is printed before each input line.
	Prompt string `yaml:"prompt"`
	// HistoryDB is the path to the command history database. Empty
	// disables history.
	HistoryDB string `yaml:"history-db"`
	// IgnoreSignals names the signals the shell ignores while running,
	// like "SIGTSTP". Empty means the default set.
	IgnoreSignals []string `yaml:"ignore-signals"`
}

var defaultConfig = Config{Prompt: "> "}

// loadConfig reads rc.yaml, honoring the -norc, -rc and -db flags.
// A missing default rc file is not an error.
func loadConfig(f *prog.Flags) (Config, error) {
	cfg := defaultConfig
	if !f.NoRc {
		path := f.RC
		if path == "" {
			dir, err := os.UserConfigDir()
			if err == nil {
				path = filepath.Join(dir, "tish", "rc.yaml")
			}
		}
		if path != "" {
			data, err := os.ReadFile(path)
			if err == nil {
				if err := yaml.Unmarshal(data, &cfg); err != nil {
					return Config{}, fmt.Errorf("parse %s: %v", path, err)
				}
			} else if f.RC != "" || !os.IsNotExist(err) {
				return Config{}, err
			}
		}
	}
	if f.DB != "" {
		cfg.HistoryDB = f.DB
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultConfig.Prompt
	}
	return cfg, nil
}

// ignoredSignals resolves the configured signal names, or returns the
// default set when none are configured.
func (cfg Config) ignoredSignals() ([]sig.Signal, error) {
	if len(cfg.IgnoreSignals) == 0 {
		return defaultIgnored, nil
	}
	signals := make([]sig.Signal, len(cfg.IgnoreSignals))
	for i, name := range cfg.IgnoreSignals {
		s := unix.SignalNum(name)
		if !sig.Valid(sig.Signal(s)) {
			return nil, fmt.Errorf("unknown signal in ignore-signals: %q", name)
		}
		signals[i] = sig.Signal(s)
	}
	return signals, nil
}
