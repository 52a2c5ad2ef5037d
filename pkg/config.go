package gitrelease

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ConfigFileName is looked up in the repository root.
const ConfigFileName = ".gitrelease.toml"

// DefaultRemote is pushed to when neither config nor flags name a remote.
const DefaultRemote = "origin"

// Config holds per-repository release settings.
type Config struct {
	Remote   string `toml:"remote"`
	Branch   string `toml:"branch"`
	LogLevel string `toml:"log_level"`
	// BumpFiles are relative to the repository root.
	BumpFiles []string `toml:"bump_files"`
}

// DefaultConfig returns the settings used when no config file exists.
// Branch is left empty so the current branch is used.
func DefaultConfig() Config {
	return Config{Remote: DefaultRemote}
}

// LoadConfig reads ConfigFileName from root on fs. A missing file yields
// DefaultConfig; keys absent from the file keep their defaults. The result
// is not validated, call Validate once flag overrides are applied.
func LoadConfig(fs afero.Fs, root string) (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(root, ConfigFileName)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, nil
}

var logLevels = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Remote == "" {
		result = multierror.Append(result, errors.New("remote must not be empty"))
	}
	if strings.ContainsAny(c.Remote, " \t\n") {
		result = multierror.Append(result, errors.Errorf("remote %q contains whitespace", c.Remote))
	}
	if strings.ContainsAny(c.Branch, " \t\n") {
		result = multierror.Append(result, errors.Errorf("branch %q contains whitespace", c.Branch))
	}
	for _, f := range c.BumpFiles {
		if strings.TrimSpace(f) == "" {
			result = multierror.Append(result, errors.New("bump_files contains an empty path"))
		}
	}
	if !logLevels[c.LogLevel] {
		result = multierror.Append(result, errors.Errorf("unknown log level %q", c.LogLevel))
	}
	return result.ErrorOrNil()
}
