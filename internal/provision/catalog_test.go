package provision

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norelnorel3/ubuntu-setup-script/internal/catalog"
	"github.com/norelnorel3/ubuntu-setup-script/internal/config"
	"github.com/norelnorel3/ubuntu-setup-script/internal/profile"
	"github.com/norelnorel3/ubuntu-setup-script/internal/shell"
	"github.com/norelnorel3/ubuntu-setup-script/internal/step"
)

func testDeps(t *testing.T) (*config.Config, *shell.Runner, *profile.Appender) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Home = dir
	cfg.ProfilePath = filepath.Join(dir, ".zshrc")
	return cfg, &shell.Runner{}, profile.NewAppender(cfg.ProfilePath)
}

func ids(steps []step.Step) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.ID)
	}
	return out
}

func TestBuildRegistry_BuiltinOrder(t *testing.T) {
	cfg, sh, prof := testDeps(t)

	reg, err := BuildRegistry(cfg, sh, prof, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"system-update", "common-packages", "zsh", "oh-my-zsh", "docker",
		"kubectl", "helm", "aws-cli", "azure-cli", "shell-profile",
	}, ids(reg.All()))
}

func TestBuildRegistry_ExtraEntriesAppendAfterBuiltin(t *testing.T) {
	cfg, sh, prof := testDeps(t)
	extra := []catalog.Entry{
		{ID: "tailscale", Prompt: "Install Tailscale", Command: "echo install"},
	}

	reg, err := BuildRegistry(cfg, sh, prof, extra)

	require.NoError(t, err)
	all := reg.All()
	assert.Equal(t, "tailscale", all[len(all)-1].ID)
}

func TestBuildRegistry_ExtraEntryCollidingWithBuiltin(t *testing.T) {
	cfg, sh, prof := testDeps(t)
	extra := []catalog.Entry{{ID: "docker", Prompt: "again", Command: "echo"}}

	_, err := BuildRegistry(cfg, sh, prof, extra)

	require.Error(t, err)
	assert.ErrorIs(t, err, step.ErrDuplicateID)
}

func TestProfileStep_AppendsAliasesIdempotently(t *testing.T) {
	cfg, sh, prof := testDeps(t)
	reg, err := BuildRegistry(cfg, sh, prof, nil)
	require.NoError(t, err)

	var profileStep step.Step
	for _, s := range reg.All() {
		if s.ID == "shell-profile" {
			profileStep = s
		}
	}
	require.NotNil(t, profileStep.Action)

	_, err = profileStep.Action(context.Background())
	require.NoError(t, err)
	_, err = profileStep.Action(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.ProfilePath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "alias k='kubectl'"))
}

func TestEntryStep_ProfileOnlyEntry(t *testing.T) {
	_, _, prof := testDeps(t)
	e := catalog.Entry{
		ID:      "prompt-tweaks",
		Prompt:  "Add prompt tweaks",
		Profile: &catalog.ProfileBlock{Name: "prompt-tweaks", Lines: []string{"export PROMPT_DIRTRIM=2"}},
	}

	s := entryStep(e, &shell.Runner{}, prof)
	diag, err := s.Action(context.Background())

	require.NoError(t, err)
	assert.Empty(t, diag)
	data, err := os.ReadFile(prof.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "export PROMPT_DIRTRIM=2")
}

func TestEntryStep_CommandThenProfileSkipsProfileOnFailure(t *testing.T) {
	_, sh, prof := testDeps(t)
	e := catalog.Entry{
		ID:      "broken",
		Prompt:  "broken",
		Command: "exit 1",
		Profile: &catalog.ProfileBlock{Name: "broken", Lines: []string{"export NOPE=1"}},
	}

	s := entryStep(e, sh, prof)
	_, err := s.Action(context.Background())

	require.Error(t, err)
	_, statErr := os.Stat(prof.Path())
	assert.True(t, os.IsNotExist(statErr))
}
