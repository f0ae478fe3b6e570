// Package match implements the match command: evaluate conversation
// text against every module's compiled triggers.
package match

import (
	"github.com/Alb-O/openmodules/pkg/hook"
	"github.com/Alb-O/openmodules/pkg/index"
	"github.com/Alb-O/openmodules/pkg/logging"
	"github.com/Alb-O/openmodules/pkg/matchers"
	"github.com/Alb-O/openmodules/pkg/modules"
	"github.com/Alb-O/openmodules/pkg/types"
)

// Options defines the options for the MatchConversation command
type Options struct {
	ModulesRoot string
	IndexPath   string
	UseIndex    bool
	Ignore      []string

	// UserText is the text attributed to the human user
	UserText string

	// AgentText is the text attributed to the agent
	AgentText string

	// IncludeHidden keeps modules whose outcome is "hidden" in the
	// result instead of filtering them out
	IncludeHidden bool
}

// MatchConversation builds all module matchers and decides each one
// against the given conversation streams.
func MatchConversation(opts Options) (*types.MatchResult, error) {
	log := logging.GetLogger("commands.match")
	log.Debug().Str("command", "MatchConversation").Msg("Executing command")

	mods, _, err := loadDescriptors(opts)
	if err != nil {
		return nil, err
	}

	var msgs []hook.Message
	if opts.UserText != "" {
		msgs = append(msgs, hook.Message{Role: hook.RoleUser, Text: opts.UserText})
	}
	if opts.AgentText != "" {
		msgs = append(msgs, hook.Message{Role: hook.RoleAgent, Text: opts.AgentText})
	}

	built := matchers.Build(mods)
	evaluated := hook.Evaluate(built, hook.Partition(msgs))

	descriptions := make(map[string]string, len(mods))
	for _, mod := range mods {
		descriptions[mod.Name] = mod.Description
	}

	result := &types.MatchResult{}
	for _, r := range evaluated {
		if r.Outcome == types.OutcomeHidden && !opts.IncludeHidden {
			continue
		}
		r.Description = descriptions[r.Name]
		result.Results = append(result.Results, r)
	}

	log.Info().
		Str("command", "MatchConversation").
		Int("moduleCount", len(built)).
		Int("resultCount", len(result.Results)).
		Msg("Command finished")
	return result, nil
}

func loadDescriptors(opts Options) ([]types.ModuleDescriptor, bool, error) {
	if opts.UseIndex {
		return index.Descriptors(opts.ModulesRoot, opts.IndexPath, opts.Ignore)
	}
	mods, err := modules.Discover(opts.ModulesRoot, opts.Ignore)
	return mods, false, err
}
