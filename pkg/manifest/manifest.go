// Package manifest parses per-module manifests (module.toml) and
// adapts them into the normalized descriptor shape the matcher core
// consumes. The TOML surface uses hyphenated key names; the adapter
// here is the only place that raw shape is handled.
package manifest

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Alb-O/openmodules/pkg/errors"
	"github.com/Alb-O/openmodules/pkg/logging"
	"github.com/Alb-O/openmodules/pkg/paths"
	"github.com/Alb-O/openmodules/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// namePattern constrains module identifiers to lowercase alnum and
// hyphens, matching the SKILL.md naming convention.
var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// manifestFile is the raw TOML shape of module.toml. Trigger tables
// are pointers so that "section present but empty" is distinguishable
// from "section absent".
type manifestFile struct {
	Name        string         `toml:"name"`
	Description string         `toml:"description"`
	Triggers    *triggerTables `toml:"triggers"`
}

type triggerTables struct {
	Disclose *triggerTable `toml:"disclose"`
	Activate *triggerTable `toml:"activate"`
}

type triggerTable struct {
	AnyMsg   []string `toml:"any-msg"`
	UserMsg  []string `toml:"user-msg"`
	AgentMsg []string `toml:"agent-msg"`
}

// Load reads the manifest of the module at dir and returns its
// normalized descriptor. A missing manifest is not an error: the
// module simply carries no triggers and no description.
func Load(dir string) (*types.ModuleDescriptor, error) {
	logger := logging.GetLogger("manifest")

	name := filepath.Base(dir)
	manifestPath := filepath.Join(dir, paths.ManifestFile)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("module", name).Msg("No manifest, module is always visible")
			return descriptor(name, "", dir, nil), nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read module manifest").
			WithDetail("path", manifestPath)
	}

	var raw manifestFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "invalid manifest for module %q", name).
			WithDetail("path", manifestPath)
	}

	if raw.Name != "" {
		name = raw.Name
	}
	if !namePattern.MatchString(name) {
		return nil, errors.Newf(errors.ErrManifestInvalid,
			"module name %q must be lowercase letters, digits, and hyphens", name).
			WithDetail("path", manifestPath)
	}

	return descriptor(name, raw.Description, dir, raw.Triggers), nil
}

// descriptor assembles the normalized descriptor from the raw shape
func descriptor(name, description, dir string, tables *triggerTables) *types.ModuleDescriptor {
	mod := &types.ModuleDescriptor{
		Name:        name,
		Description: strings.TrimSpace(description),
		Path:        dir,
	}
	if tables != nil {
		mod.Disclose = adaptTable(name, "disclose", tables.Disclose)
		mod.Activate = adaptTable(name, "activate", tables.Activate)
	}
	return mod
}

// adaptTable normalizes one trigger table: pattern strings are
// trimmed, multiline entries are dropped with a warning, and a table
// that was present but ends up with no patterns is marked Explicit.
func adaptTable(module, policy string, table *triggerTable) *types.TriggerConfig {
	if table == nil {
		return nil
	}

	cfg := &types.TriggerConfig{
		AnyMsg:   cleanPatterns(module, policy, table.AnyMsg),
		UserMsg:  cleanPatterns(module, policy, table.UserMsg),
		AgentMsg: cleanPatterns(module, policy, table.AgentMsg),
	}
	cfg.Explicit = cfg.Empty()
	return cfg
}

func cleanPatterns(module, policy string, patterns []string) []string {
	logger := logging.GetLogger("manifest")

	var cleaned []string
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if strings.ContainsAny(pattern, "\r\n") {
			logger.Warn().
				Str("module", module).
				Str("policy", policy).
				Str("pattern", pattern).
				Msg("Dropping multiline trigger pattern")
			continue
		}
		cleaned = append(cleaned, pattern)
	}
	return cleaned
}
