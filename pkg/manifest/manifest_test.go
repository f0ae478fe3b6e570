package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Alb-O/openmodules/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeModule creates a module directory with the given manifest body
func writeModule(t *testing.T, name, manifest string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "module.toml"), []byte(manifest), 0644))
	return dir
}

func TestLoadFullManifest(t *testing.T) {
	dir := writeModule(t, "affinity-extractor", `
name = "affinity-extractor"
description = "Extract design assets from Affinity Designer files"

[triggers.disclose]
any-msg = ["affinity", "*.af"]
user-msg = ["extract assets"]

[triggers.activate]
agent-msg = ["running extract_affinity"]
`)

	mod, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "affinity-extractor", mod.Name)
	assert.Equal(t, "Extract design assets from Affinity Designer files", mod.Description)
	assert.Equal(t, dir, mod.Path)

	require.NotNil(t, mod.Disclose)
	assert.Equal(t, []string{"affinity", "*.af"}, mod.Disclose.AnyMsg)
	assert.Equal(t, []string{"extract assets"}, mod.Disclose.UserMsg)
	assert.False(t, mod.Disclose.Explicit)

	require.NotNil(t, mod.Activate)
	assert.Equal(t, []string{"running extract_affinity"}, mod.Activate.AgentMsg)
}

func TestLoadMissingManifest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bare-module")
	require.NoError(t, os.MkdirAll(dir, 0755))

	mod, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "bare-module", mod.Name)
	assert.Nil(t, mod.Disclose)
	assert.Nil(t, mod.Activate)
}

func TestLoadNameDefaultsToDirectory(t *testing.T) {
	dir := writeModule(t, "implicit-name", `description = "no name key"`)

	mod, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "implicit-name", mod.Name)
}

func TestLoadExplicitEmptyTriggerTable(t *testing.T) {
	dir := writeModule(t, "switched-off", `
[triggers.disclose]
any-msg = []
`)

	mod, err := Load(dir)
	require.NoError(t, err)

	// Present-but-empty table: the explicit marker must survive so
	// the module does not degrade into always-visible
	require.NotNil(t, mod.Disclose)
	assert.True(t, mod.Disclose.Explicit)
	assert.True(t, mod.Disclose.Empty())
	assert.Nil(t, mod.Activate)
}

func TestLoadBareTriggerTableIsExplicit(t *testing.T) {
	dir := writeModule(t, "switched-off", `
[triggers.activate]
`)

	mod, err := Load(dir)
	require.NoError(t, err)

	require.NotNil(t, mod.Activate)
	assert.True(t, mod.Activate.Explicit)
}

func TestLoadTrimsAndDropsMultilinePatterns(t *testing.T) {
	dir := writeModule(t, "messy", `
[triggers.disclose]
any-msg = ["  padded  ", "multi\nline", ""]
`)

	mod, err := Load(dir)
	require.NoError(t, err)

	require.NotNil(t, mod.Disclose)
	assert.Equal(t, []string{"padded"}, mod.Disclose.AnyMsg)
	assert.False(t, mod.Disclose.Explicit)
}

func TestLoadInvalidName(t *testing.T) {
	dir := writeModule(t, "whatever", `name = "Not A Valid Name"`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestInvalid))
}

func TestLoadMalformedTOML(t *testing.T) {
	dir := writeModule(t, "broken", `name = [unclosed`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
}
