// Package compile implements the compile command: ad hoc
// pattern-to-regex inspection for authoring and debugging triggers.
package compile

import (
	"strings"

	"github.com/Alb-O/openmodules/pkg/logging"
	"github.com/Alb-O/openmodules/pkg/triggers"
	"github.com/Alb-O/openmodules/pkg/types"
)

// Options defines the options for the CompilePattern command
type Options struct {
	Pattern string
}

// CompilePattern expands and compiles a single trigger pattern,
// reporting the alternatives and the resulting regex sources.
func CompilePattern(opts Options) (*types.CompilePatternResult, error) {
	log := logging.GetLogger("commands.compile")
	log.Debug().Str("command", "CompilePattern").Str("pattern", opts.Pattern).Msg("Executing command")

	trimmed := strings.TrimSpace(opts.Pattern)

	result := &types.CompilePatternResult{
		Pattern:     trimmed,
		AlwaysMatch: trimmed == triggers.Wildcard,
	}
	if trimmed == "" || result.AlwaysMatch {
		return result, nil
	}

	result.Alternatives = triggers.Expand(trimmed)
	for _, re := range triggers.Compile(trimmed) {
		result.Regexes = append(result.Regexes, re.String())
	}
	return result, nil
}
