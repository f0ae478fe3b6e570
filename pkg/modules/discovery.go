// Package modules discovers knowledge modules under the modules root
// and loads their manifests into normalized descriptors.
package modules

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Alb-O/openmodules/pkg/errors"
	"github.com/Alb-O/openmodules/pkg/logging"
	"github.com/Alb-O/openmodules/pkg/manifest"
	"github.com/Alb-O/openmodules/pkg/types"
)

// GetCandidates returns all potential module directories in the
// modules root. Hidden directories and entries matching an ignore
// pattern are skipped.
func GetCandidates(root string, ignorePatterns []string) ([]string, error) {
	logger := logging.GetLogger("modules.discovery")
	logger.Trace().Str("root", root).Msg("Getting module candidates")

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "modules root does not exist").
				WithDetail("path", root)
		}
		return nil, errors.Wrap(err, errors.ErrModuleAccess, "cannot access modules root").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "modules root is not a directory").
			WithDetail("path", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrModuleAccess, "cannot read modules root").
			WithDetail("path", root)
	}

	var candidates []string
	for _, entry := range entries {
		name := entry.Name()

		if strings.HasPrefix(name, ".") {
			logger.Trace().Str("name", name).Msg("Skipping hidden directory")
			continue
		}
		if shouldIgnore(name, ignorePatterns) {
			logger.Trace().Str("name", name).Msg("Skipping ignored pattern")
			continue
		}
		if !entry.IsDir() {
			continue
		}

		candidates = append(candidates, filepath.Join(root, name))
	}

	sort.Strings(candidates)
	logger.Debug().Int("count", len(candidates)).Msg("Found module candidates")
	return candidates, nil
}

func shouldIgnore(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Discover enumerates the modules root and loads every manifest,
// returning descriptors sorted by name. A module whose manifest fails
// to parse is skipped with a warning rather than failing discovery.
func Discover(root string, ignorePatterns []string) ([]types.ModuleDescriptor, error) {
	logger := logging.GetLogger("modules.discovery")

	candidates, err := GetCandidates(root, ignorePatterns)
	if err != nil {
		return nil, err
	}

	mods := make([]types.ModuleDescriptor, 0, len(candidates))
	for _, dir := range candidates {
		mod, err := manifest.Load(dir)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("path", dir).
				Msg("Skipping module with unreadable manifest")
			continue
		}
		mods = append(mods, *mod)
	}

	sort.Slice(mods, func(i, j int) bool {
		return mods[i].Name < mods[j].Name
	})

	logger.Info().Int("moduleCount", len(mods)).Msg("Discovered modules")
	return mods, nil
}

// Find returns the descriptor of the named module, or a
// MODULE_NOT_FOUND error.
func Find(root string, ignorePatterns []string, name string) (*types.ModuleDescriptor, error) {
	mods, err := Discover(root, ignorePatterns)
	if err != nil {
		return nil, err
	}
	for i := range mods {
		if mods[i].Name == name {
			return &mods[i], nil
		}
	}
	return nil, errors.Newf(errors.ErrModuleNotFound, "module %q not found", name).
		WithDetail("root", root)
}
