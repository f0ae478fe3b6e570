// Package config loads openmodules configuration with koanf,
// layering built-in defaults, the root openmodules.toml, and
// OPENMODULES_* environment variables.
package config

import (
	"os"
	"strings"

	"github.com/Alb-O/openmodules/pkg/errors"
	"github.com/Alb-O/openmodules/pkg/logging"
	ktoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix for environment overrides, e.g.
// OPENMODULES_INDEX_ENABLED=false
const envPrefix = "OPENMODULES_"

// Modules holds discovery settings
type Modules struct {
	// Ignore lists directory name patterns skipped during discovery
	Ignore []string `koanf:"ignore"`
}

// Index holds git-ref index settings
type Index struct {
	Enabled bool `koanf:"enabled"`
}

// Config is the main configuration structure
type Config struct {
	Modules Modules `koanf:"modules"`
	Index   Index   `koanf:"index"`
}

// defaults backs the lowest configuration layer
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"modules.ignore": []string{"node_modules", "dist", "target", "__pycache__"},
		"index.enabled":  true,
	}
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := fromKoanf(newKoanf(""))
	if err != nil {
		// The defaults map always unmarshals
		panic(err)
	}
	return cfg
}

// Load reads the effective configuration for a modules root. A
// missing openmodules.toml is fine; a malformed one is an error.
func Load(rootConfigPath string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	if rootConfigPath != "" {
		if _, err := os.Stat(rootConfigPath); err == nil {
			if err := k.Load(file.Provider(rootConfigPath), ktoml.Parser()); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse root config").
					WithDetail("path", rootConfigPath)
			}
			logger.Debug().Str("path", rootConfigPath).Msg("Loaded root config")
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment config")
	}

	return fromKoanf(k)
}

// envToKey maps OPENMODULES_INDEX_ENABLED to "index.enabled"
func envToKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	return strings.Replace(strings.ToLower(s), "_", ".", 1)
}

func newKoanf(rootConfigPath string) *koanf.Koanf {
	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), "."), nil)
	if rootConfigPath != "" {
		_ = k.Load(file.Provider(rootConfigPath), ktoml.Parser())
	}
	return k
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}
