// Package docs implements the docs command: render a module's
// oneliner file tree and, optionally, its README.
package docs

import (
	"os"
	"path/filepath"

	"github.com/Alb-O/openmodules/pkg/docgen"
	"github.com/Alb-O/openmodules/pkg/errors"
	"github.com/Alb-O/openmodules/pkg/logging"
	"github.com/Alb-O/openmodules/pkg/modules"
	"github.com/Alb-O/openmodules/pkg/types"
	"github.com/charmbracelet/glamour"
)

// Options defines the options for the GenDocs command
type Options struct {
	ModulesRoot string
	Ignore      []string

	// Module is the name of the module to document
	Module string

	// Render additionally renders the module README as styled
	// terminal markdown
	Render bool
}

// GenDocs produces the oneliner file tree for one module
func GenDocs(opts Options) (*types.DocsResult, error) {
	log := logging.GetLogger("commands.docs")
	log.Debug().Str("command", "GenDocs").Str("module", opts.Module).Msg("Executing command")

	mod, err := modules.Find(opts.ModulesRoot, opts.Ignore, opts.Module)
	if err != nil {
		return nil, err
	}

	entries, err := docgen.Scan(mod.Path)
	if err != nil {
		return nil, err
	}

	result := &types.DocsResult{
		Module: mod.Name,
		Tree:   docgen.RenderTree(mod.Name, entries),
	}

	if opts.Render {
		readme := filepath.Join(mod.Path, "README.md")
		content, err := os.ReadFile(readme)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileNotFound, "module has no README.md").
				WithDetail("path", readme)
		}
		rendered, err := glamour.Render(string(content), "auto")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to render README")
		}
		result.Rendered = rendered
	}

	log.Info().Str("command", "GenDocs").Int("entryCount", len(entries)).Msg("Command finished")
	return result, nil
}
