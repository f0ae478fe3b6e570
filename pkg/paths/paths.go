// Package paths provides centralized path handling for openmodules.
// It implements XDG Base Directory compliance and a consistent API for
// locating the modules root, manifests, and internal state files.
package paths

import (
	"os"
	"path/filepath"

	"github.com/Alb-O/openmodules/pkg/errors"
	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvModulesRoot is the primary environment variable for the
	// knowledge-modules location
	EnvModulesRoot = "OPENMODULES_ROOT"

	// EnvStateDir overrides the XDG state directory for openmodules
	EnvStateDir = "OPENMODULES_STATE_DIR"
)

// Well-known file and directory names. These define openmodules'
// internal layout and are not user-configurable.
const (
	// AppDirName is the directory name for openmodules-specific files
	AppDirName = "openmodules"

	// ManifestFile is the name of the per-module manifest
	ManifestFile = "module.toml"

	// RootConfigFile is the name of the root configuration file
	RootConfigFile = "openmodules.toml"

	// IndexFile is the name of the git-ref index file
	IndexFile = "index.toml"
)

// Paths resolves all file locations for a given modules root
type Paths struct {
	modulesRoot string
}

// New creates a Paths instance. An explicit root wins over the
// OPENMODULES_ROOT environment variable.
func New(root string) (*Paths, error) {
	if root == "" {
		root = os.Getenv(EnvModulesRoot)
	}
	if root == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"modules root not set; pass --root or set "+EnvModulesRoot)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve modules root").
			WithDetail("root", root)
	}

	return &Paths{modulesRoot: abs}, nil
}

// ModulesRoot returns the absolute path of the modules root directory
func (p *Paths) ModulesRoot() string {
	return p.modulesRoot
}

// RootConfig returns the path of the root configuration file
func (p *Paths) RootConfig() string {
	return filepath.Join(p.modulesRoot, RootConfigFile)
}

// ModuleDir returns the directory of the named module
func (p *Paths) ModuleDir(name string) string {
	return filepath.Join(p.modulesRoot, name)
}

// ManifestPath returns the manifest path of the named module
func (p *Paths) ManifestPath(name string) string {
	return filepath.Join(p.modulesRoot, name, ManifestFile)
}

// StateDir returns the directory for openmodules state files,
// honouring OPENMODULES_STATE_DIR over the XDG default.
func (p *Paths) StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// IndexPath returns the path of the git-ref index file
func (p *Paths) IndexPath() string {
	return filepath.Join(p.StateDir(), IndexFile)
}
