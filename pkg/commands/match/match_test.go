package match

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Alb-O/openmodules/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupModules(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(name, manifest string) {
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(dir, 0755))
		if manifest != "" {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "module.toml"), []byte(manifest), 0644))
		}
	}

	write("always-on", "")
	write("affinity-extractor", `
description = "Extract design assets"

[triggers.disclose]
any-msg = ["affinity"]

[triggers.activate]
user-msg = ["extract * assets"]
`)
	write("quiet", `
[triggers.disclose]
any-msg = ["nevermentioned"]
`)
	return root
}

func resultFor(t *testing.T, result *types.MatchResult, name string) *types.ModuleMatchResult {
	t.Helper()
	for i := range result.Results {
		if result.Results[i].Name == name {
			return &result.Results[i]
		}
	}
	return nil
}

func TestMatchConversationDisclosure(t *testing.T) {
	root := setupModules(t)

	result, err := MatchConversation(Options{
		ModulesRoot: root,
		AgentText:   "this looks like an affinity document",
	})
	require.NoError(t, err)

	affinity := resultFor(t, result, "affinity-extractor")
	require.NotNil(t, affinity)
	assert.Equal(t, types.OutcomeDisclose, affinity.Outcome)
	assert.Equal(t, "Extract design assets", affinity.Description)

	always := resultFor(t, result, "always-on")
	require.NotNil(t, always)
	assert.Equal(t, types.OutcomeVisible, always.Outcome)

	// Hidden modules are filtered out by default
	assert.Nil(t, resultFor(t, result, "quiet"))
}

func TestMatchConversationActivation(t *testing.T) {
	root := setupModules(t)

	result, err := MatchConversation(Options{
		ModulesRoot: root,
		UserText:    "please extract the design assets",
	})
	require.NoError(t, err)

	affinity := resultFor(t, result, "affinity-extractor")
	require.NotNil(t, affinity)
	assert.Equal(t, types.OutcomeActivate, affinity.Outcome)
}

func TestMatchConversationUserOnlyPatternIgnoresAgent(t *testing.T) {
	root := setupModules(t)

	result, err := MatchConversation(Options{
		ModulesRoot: root,
		AgentText:   "I will extract the design assets",
	})
	require.NoError(t, err)

	// The activation pattern is user-only; agent text can at most
	// hit the any-msg disclosure patterns
	affinity := resultFor(t, result, "affinity-extractor")
	assert.Nil(t, affinity)
}

func TestMatchConversationIncludeHidden(t *testing.T) {
	root := setupModules(t)

	result, err := MatchConversation(Options{
		ModulesRoot:   root,
		UserText:      "unrelated",
		IncludeHidden: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Results, 3)

	quiet := resultFor(t, result, "quiet")
	require.NotNil(t, quiet)
	assert.Equal(t, types.OutcomeHidden, quiet.Outcome)
}
