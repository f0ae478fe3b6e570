// Package matchers builds the runtime trigger matchers for knowledge
// modules. It feeds every pattern string of a module's trigger
// configurations through the pattern compiler and assembles the
// results into one immutable matcher per module.
package matchers

import (
	"regexp"
	"strings"

	"github.com/Alb-O/openmodules/pkg/logging"
	"github.com/Alb-O/openmodules/pkg/triggers"
	"github.com/Alb-O/openmodules/pkg/types"
)

// CompiledTriggerSet is the runtime form of one trigger configuration.
// Any single regex hit in the class matching the message stream
// triggers the set; order is irrelevant to matching.
type CompiledTriggerSet struct {
	AnyMsg   []*regexp.Regexp
	UserMsg  []*regexp.Regexp
	AgentMsg []*regexp.Regexp

	// AlwaysMatch is set when any source pattern was the bare
	// wildcard "*"; the set fires unconditionally.
	AlwaysMatch bool

	// NeverMatch is set when the configuration was explicitly present
	// but empty: the trigger exists, it just currently matches
	// nothing. Distinct from "not configured".
	NeverMatch bool
}

// Active reports whether the set carries a real trigger. An explicit
// but empty trigger still counts: it must not silently degrade into
// always-visible.
func (s *CompiledTriggerSet) Active() bool {
	return s.AlwaysMatch || s.NeverMatch ||
		len(s.AnyMsg) > 0 || len(s.UserMsg) > 0 || len(s.AgentMsg) > 0
}

// Matches evaluates the set against the three conversation streams:
// all text, user-only text, and agent-only text.
func (s *CompiledTriggerSet) Matches(anyText, userText, agentText string) bool {
	if s.NeverMatch {
		return false
	}
	if s.AlwaysMatch {
		return true
	}
	return matchesAny(s.AnyMsg, anyText) ||
		matchesAny(s.UserMsg, userText) ||
		matchesAny(s.AgentMsg, agentText)
}

func matchesAny(regexes []*regexp.Regexp, text string) bool {
	for _, re := range regexes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// ModuleMatcher holds the compiled trigger state for one module
type ModuleMatcher struct {
	// Name is the module's stable tool identifier
	Name string

	// Disclose controls revealing the module's name and description
	Disclose CompiledTriggerSet

	// Activate controls injecting the module's full content
	Activate CompiledTriggerSet

	// AlwaysVisible is derived: the module declared no trigger
	// behavior at all, so it is unconditionally shown
	AlwaysVisible bool
}

// CompileConfig compiles one trigger configuration into its runtime
// set. A nil configuration yields an inactive zero set.
func CompileConfig(cfg *types.TriggerConfig) CompiledTriggerSet {
	var set CompiledTriggerSet
	if cfg == nil {
		return set
	}

	set.AnyMsg = compilePatterns(cfg.AnyMsg)
	set.UserMsg = compilePatterns(cfg.UserMsg)
	set.AgentMsg = compilePatterns(cfg.AgentMsg)
	set.AlwaysMatch = hasWildcard(cfg.AnyMsg) || hasWildcard(cfg.UserMsg) || hasWildcard(cfg.AgentMsg)
	set.NeverMatch = cfg.Explicit && cfg.Empty()

	return set
}

// compilePatterns flattens the compiler output over every pattern in
// one message-class array, preserving order.
func compilePatterns(patterns []string) []*regexp.Regexp {
	var regexes []*regexp.Regexp
	for _, pattern := range patterns {
		regexes = append(regexes, triggers.Compile(pattern)...)
	}
	return regexes
}

func hasWildcard(patterns []string) bool {
	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == triggers.Wildcard {
			return true
		}
	}
	return false
}

// Build compiles one matcher per module descriptor, in input order.
// No module is ever dropped: a module whose patterns all failed to
// compile still appears, with its visibility computed from whatever
// remains.
func Build(mods []types.ModuleDescriptor) []ModuleMatcher {
	logger := logging.GetLogger("matchers.build")

	result := make([]ModuleMatcher, len(mods))
	for i, mod := range mods {
		disclose := CompileConfig(mod.Disclose)
		activate := CompileConfig(mod.Activate)

		result[i] = ModuleMatcher{
			Name:          mod.Name,
			Disclose:      disclose,
			Activate:      activate,
			AlwaysVisible: !disclose.Active() && !activate.Active(),
		}
	}

	logger.Debug().Int("moduleCount", len(result)).Msg("Built module trigger matchers")
	return result
}
