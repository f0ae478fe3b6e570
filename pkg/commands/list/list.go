// Package list implements the list command: enumerate all modules
// with their trigger posture.
package list

import (
	"path/filepath"

	"github.com/Alb-O/openmodules/pkg/docgen"
	"github.com/Alb-O/openmodules/pkg/index"
	"github.com/Alb-O/openmodules/pkg/logging"
	"github.com/Alb-O/openmodules/pkg/matchers"
	"github.com/Alb-O/openmodules/pkg/modules"
	"github.com/Alb-O/openmodules/pkg/types"
)

// Options defines the options for the ListModules command
type Options struct {
	// ModulesRoot is the path to the knowledge-modules directory
	ModulesRoot string

	// IndexPath is the location of the git-ref index file
	IndexPath string

	// UseIndex enables the git-ref index for lazy loading
	UseIndex bool

	// Ignore lists directory patterns skipped during discovery
	Ignore []string
}

// ListModules finds all modules and derives their visibility posture
func ListModules(opts Options) (*types.ListModulesResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListModules").Msg("Executing command")

	mods, fromIndex, err := loadDescriptors(opts)
	if err != nil {
		return nil, err
	}

	built := matchers.Build(mods)

	result := &types.ListModulesResult{
		Modules:   make([]types.ModuleInfo, len(mods)),
		FromIndex: fromIndex,
	}
	for i, mod := range mods {
		description := mod.Description
		if description == "" {
			// SKILL.md-style README frontmatter is the fallback
			if fm, _ := docgen.ReadFrontmatter(filepath.Join(mod.Path, "README.md")); fm != nil {
				description = fm.Description
			}
		}
		result.Modules[i] = types.ModuleInfo{
			Name:          mod.Name,
			Description:   description,
			Path:          mod.Path,
			AlwaysVisible: built[i].AlwaysVisible,
			HasDisclose:   built[i].Disclose.Active(),
			HasActivate:   built[i].Activate.Active(),
		}
	}

	log.Info().Str("command", "ListModules").Int("moduleCount", len(result.Modules)).Msg("Command finished")
	return result, nil
}

func loadDescriptors(opts Options) ([]types.ModuleDescriptor, bool, error) {
	if opts.UseIndex {
		return index.Descriptors(opts.ModulesRoot, opts.IndexPath, opts.Ignore)
	}
	mods, err := modules.Discover(opts.ModulesRoot, opts.Ignore)
	return mods, false, err
}
