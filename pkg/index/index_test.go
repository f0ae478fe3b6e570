package index

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/Alb-O/openmodules/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gitRepo initializes a git repo with one module and one commit
func gitRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	root := t.TempDir()
	moduleDir := filepath.Join(root, "affinity-extractor")
	require.NoError(t, os.MkdirAll(moduleDir, 0755))
	manifest := `
name = "affinity-extractor"
description = "Extract design assets"

[triggers.disclose]
any-msg = ["affinity"]
`
	require.NoError(t, os.WriteFile(filepath.Join(moduleDir, "module.toml"), []byte(manifest), 0644))

	run := func(args ...string) {
		cmd := exec.Command("git", append([]string{"-C", root}, args...)...)
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}
	run("init")
	run("add", ".")
	run("commit", "-m", "initial")

	return root
}

func TestGitRefOutsideRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	_, err := GitRef(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrGitRef))
}

func TestRebuildAndLoad(t *testing.T) {
	root := gitRepo(t)
	indexPath := filepath.Join(t.TempDir(), "state", "index.toml")

	built, err := Rebuild(root, indexPath, nil)
	require.NoError(t, err)
	require.Len(t, built.Modules, 1)
	assert.NotEmpty(t, built.Ref)

	loaded, err := Load(root, indexPath)
	require.NoError(t, err)
	assert.Equal(t, built.Ref, loaded.Ref)
	require.Len(t, loaded.Modules, 1)

	mod := loaded.Modules[0]
	assert.Equal(t, "affinity-extractor", mod.Name)
	require.NotNil(t, mod.Disclose)
	assert.Equal(t, []string{"affinity"}, mod.Disclose.AnyMsg)
}

func TestLoadMissingIndex(t *testing.T) {
	root := gitRepo(t)

	_, err := Load(root, filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexLoad))
}

func TestLoadStaleIndex(t *testing.T) {
	root := gitRepo(t)
	indexPath := filepath.Join(t.TempDir(), "index.toml")

	_, err := Rebuild(root, indexPath, nil)
	require.NoError(t, err)

	// Move the root forward one commit; the stored ref no longer matches
	require.NoError(t, os.WriteFile(filepath.Join(root, "note.txt"), []byte("x"), 0644))
	run := func(args ...string) {
		cmd := exec.Command("git", append([]string{"-C", root}, args...)...)
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}
	run("add", ".")
	run("commit", "-m", "second")

	_, err = Load(root, indexPath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexLoad))
}

func TestDescriptorsFallsBackWithoutGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	root := t.TempDir()
	moduleDir := filepath.Join(root, "plain")
	require.NoError(t, os.MkdirAll(moduleDir, 0755))

	mods, fromIndex, err := Descriptors(root, filepath.Join(t.TempDir(), "index.toml"), nil)
	require.NoError(t, err)
	assert.False(t, fromIndex)
	require.Len(t, mods, 1)
	assert.Equal(t, "plain", mods[0].Name)
}

func TestDescriptorsUsesFreshIndex(t *testing.T) {
	root := gitRepo(t)
	indexPath := filepath.Join(t.TempDir(), "index.toml")

	// First call builds the index, second call reads it back
	_, fromIndex, err := Descriptors(root, indexPath, nil)
	require.NoError(t, err)
	assert.False(t, fromIndex)

	mods, fromIndex, err := Descriptors(root, indexPath, nil)
	require.NoError(t, err)
	assert.True(t, fromIndex)
	require.Len(t, mods, 1)
	assert.Equal(t, "affinity-extractor", mods[0].Name)
}
