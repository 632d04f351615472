package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppender(t *testing.T) (*Appender, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".zshrc")
	return NewAppender(path), path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestEnsureBlock_CreatesFileAndBlock(t *testing.T) {
	a, path := testAppender(t)

	added, err := a.EnsureBlock("aliases", []string{"alias k='kubectl'"})

	require.NoError(t, err)
	assert.True(t, added)
	content := readFile(t, path)
	assert.Contains(t, content, Marker("aliases"))
	assert.Contains(t, content, "alias k='kubectl'")
}

func TestEnsureBlock_SecondRunIsNoop(t *testing.T) {
	a, path := testAppender(t)
	lines := []string{"alias k='kubectl'", "export EDITOR=vim"}

	added, err := a.EnsureBlock("aliases", lines)
	require.NoError(t, err)
	require.True(t, added)
	first := readFile(t, path)

	added, err = a.EnsureBlock("aliases", lines)
	require.NoError(t, err)
	assert.False(t, added)

	// Exactly one copy of the block after the second run.
	content := readFile(t, path)
	assert.Equal(t, first, content)
	assert.Equal(t, 1, strings.Count(content, Marker("aliases")))
	assert.Equal(t, 1, strings.Count(content, "export EDITOR=vim"))
}

func TestEnsureBlock_PreservesExistingContent(t *testing.T) {
	a, path := testAppender(t)
	require.NoError(t, os.WriteFile(path, []byte("# existing config\nexport PATH=$PATH:/opt/bin\n"), 0644))

	_, err := a.EnsureBlock("aliases", []string{"alias d='docker'"})

	require.NoError(t, err)
	content := readFile(t, path)
	assert.True(t, strings.HasPrefix(content, "# existing config\n"))
	assert.Contains(t, content, "alias d='docker'")
}

func TestEnsureBlock_MissingTrailingNewline(t *testing.T) {
	a, path := testAppender(t)
	require.NoError(t, os.WriteFile(path, []byte("export FOO=bar"), 0644))

	_, err := a.EnsureBlock("aliases", []string{"alias x='y'"})

	require.NoError(t, err)
	content := readFile(t, path)
	assert.Contains(t, content, "export FOO=bar\n"+Marker("aliases"))
}

func TestEnsureBlock_DistinctMarkersCoexist(t *testing.T) {
	a, path := testAppender(t)

	_, err := a.EnsureBlock("aliases", []string{"alias k='kubectl'"})
	require.NoError(t, err)
	added, err := a.EnsureBlock("nvm", []string{`export NVM_DIR="$HOME/.nvm"`})
	require.NoError(t, err)

	assert.True(t, added)
	content := readFile(t, path)
	assert.Contains(t, content, Marker("aliases"))
	assert.Contains(t, content, Marker("nvm"))
}
