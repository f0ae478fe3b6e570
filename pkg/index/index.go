// Package index caches discovered module descriptors keyed by the
// modules root's git commit. When the root has not moved, module
// loading skips the manifest scan entirely; matching itself never
// depends on the index being present or fresh.
package index

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Alb-O/openmodules/pkg/errors"
	"github.com/Alb-O/openmodules/pkg/logging"
	"github.com/Alb-O/openmodules/pkg/modules"
	"github.com/Alb-O/openmodules/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// Index is the serialized cache: the git ref it was built at and the
// descriptors discovered then.
type Index struct {
	Ref     string                   `toml:"ref"`
	Modules []types.ModuleDescriptor `toml:"modules"`
}

// GitRef returns the current commit hash of the modules root, or a
// GIT_REF error when the root is not a git repository.
func GitRef(root string) (string, error) {
	cmd := exec.Command("git", "-C", root, "rev-parse", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrGitRef, "modules root is not a git repository").
			WithDetail("root", root)
	}
	return strings.TrimSpace(string(out)), nil
}

// Load returns the cached descriptors from indexPath when its stored
// ref matches the root's current ref. A missing file, unreadable
// file, or stale ref yields an INDEX_LOAD error so callers fall back
// to direct discovery.
func Load(root, indexPath string) (*Index, error) {
	logger := logging.GetLogger("index")

	ref, err := GitRef(root)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(indexPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIndexLoad, "cannot read index file").
			WithDetail("path", indexPath)
	}

	var idx Index
	if err := toml.Unmarshal(data, &idx); err != nil {
		return nil, errors.Wrap(err, errors.ErrIndexLoad, "corrupt index file").
			WithDetail("path", indexPath)
	}

	if idx.Ref != ref {
		logger.Debug().
			Str("indexRef", idx.Ref).
			Str("currentRef", ref).
			Msg("Index is stale")
		return nil, errors.New(errors.ErrIndexLoad, "index ref does not match modules root").
			WithDetail("indexRef", idx.Ref).
			WithDetail("currentRef", ref)
	}

	logger.Debug().Str("ref", ref).Int("moduleCount", len(idx.Modules)).Msg("Loaded module index")
	return &idx, nil
}

// Rebuild rediscovers all modules and writes a fresh index keyed by
// the root's current ref.
func Rebuild(root, indexPath string, ignorePatterns []string) (*Index, error) {
	logger := logging.GetLogger("index")

	ref, err := GitRef(root)
	if err != nil {
		return nil, err
	}

	mods, err := modules.Discover(root, ignorePatterns)
	if err != nil {
		return nil, err
	}

	idx := &Index{Ref: ref, Modules: mods}

	data, err := toml.Marshal(idx)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIndexWrite, "cannot serialize index")
	}
	if err := os.MkdirAll(filepath.Dir(indexPath), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrIndexWrite, "cannot create index directory").
			WithDetail("path", indexPath)
	}
	if err := os.WriteFile(indexPath, data, 0644); err != nil {
		return nil, errors.Wrap(err, errors.ErrIndexWrite, "cannot write index file").
			WithDetail("path", indexPath)
	}

	logger.Info().
		Str("ref", ref).
		Int("moduleCount", len(mods)).
		Str("path", indexPath).
		Msg("Rebuilt module index")
	return idx, nil
}

// Descriptors returns the cached descriptors when the index is fresh,
// rebuilding it otherwise. Roots without git fall back to plain
// discovery with no caching.
func Descriptors(root, indexPath string, ignorePatterns []string) ([]types.ModuleDescriptor, bool, error) {
	logger := logging.GetLogger("index")

	if _, err := GitRef(root); err != nil {
		logger.Debug().Str("root", root).Msg("No git ref, discovering without index")
		mods, derr := modules.Discover(root, ignorePatterns)
		return mods, false, derr
	}

	if idx, err := Load(root, indexPath); err == nil {
		return idx.Modules, true, nil
	}

	idx, err := Rebuild(root, indexPath, ignorePatterns)
	if err != nil {
		return nil, false, err
	}
	return idx.Modules, false, nil
}
