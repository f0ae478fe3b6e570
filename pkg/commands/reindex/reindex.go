// Package reindex implements the index command: rebuild the git-ref
// module index from the current state of the modules root.
package reindex

import (
	"github.com/Alb-O/openmodules/pkg/index"
	"github.com/Alb-O/openmodules/pkg/logging"
	"github.com/Alb-O/openmodules/pkg/types"
)

// Options defines the options for the RebuildIndex command
type Options struct {
	ModulesRoot string
	IndexPath   string
	Ignore      []string
}

// RebuildIndex rediscovers all modules and writes a fresh index
func RebuildIndex(opts Options) (*types.IndexResult, error) {
	log := logging.GetLogger("commands.reindex")
	log.Debug().Str("command", "RebuildIndex").Msg("Executing command")

	idx, err := index.Rebuild(opts.ModulesRoot, opts.IndexPath, opts.Ignore)
	if err != nil {
		return nil, err
	}

	result := &types.IndexResult{
		Ref:         idx.Ref,
		ModuleCount: len(idx.Modules),
		Path:        opts.IndexPath,
	}

	log.Info().
		Str("command", "RebuildIndex").
		Str("ref", idx.Ref).
		Int("moduleCount", result.ModuleCount).
		Msg("Command finished")
	return result, nil
}
