// Package hook evaluates compiled module matchers against
// conversation text. It is the consumer side of the matcher core:
// partition a transcript into user, agent, and combined streams, then
// decide per module whether to activate, disclose, show, or hide it.
package hook

import (
	"strings"

	"github.com/Alb-O/openmodules/pkg/matchers"
	"github.com/Alb-O/openmodules/pkg/types"
)

// Message roles. Anything that is not the user counts as agent text,
// including synthetic or generated content.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

// Message is one transcript entry
type Message struct {
	Role string
	Text string
}

// Parts holds the three independent text streams trigger patterns
// run against.
type Parts struct {
	All   string
	User  string
	Agent string
}

// Partition splits a transcript into the three matching streams.
// Message texts are joined with newlines; compiled trigger regexes
// match across newlines, so each stream behaves as a single blob.
func Partition(msgs []Message) Parts {
	var all, user, agent []string
	for _, msg := range msgs {
		if strings.TrimSpace(msg.Text) == "" {
			continue
		}
		all = append(all, msg.Text)
		if msg.Role == RoleUser {
			user = append(user, msg.Text)
		} else {
			agent = append(agent, msg.Text)
		}
	}
	return Parts{
		All:   strings.Join(all, "\n"),
		User:  strings.Join(user, "\n"),
		Agent: strings.Join(agent, "\n"),
	}
}

// Decide evaluates one matcher: activation wins over disclosure,
// disclosure over the always-visible fallback.
func Decide(m *matchers.ModuleMatcher, parts Parts) types.MatchOutcome {
	if m.Activate.Matches(parts.All, parts.User, parts.Agent) {
		return types.OutcomeActivate
	}
	if m.Disclose.Matches(parts.All, parts.User, parts.Agent) {
		return types.OutcomeDisclose
	}
	if m.AlwaysVisible {
		return types.OutcomeVisible
	}
	return types.OutcomeHidden
}

// Evaluate decides every matcher against the given streams, one
// result per matcher in input order.
func Evaluate(built []matchers.ModuleMatcher, parts Parts) []types.ModuleMatchResult {
	results := make([]types.ModuleMatchResult, len(built))
	for i := range built {
		results[i] = types.ModuleMatchResult{
			Name:    built[i].Name,
			Outcome: Decide(&built[i], parts),
		}
	}
	return results
}
