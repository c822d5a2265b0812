package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	content := `nodes:
  - key: dermo
    display_name: Dermokozmetikë
  - key: dermo.face
    display_name: Fytyre
    parent: dermo
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	nodes, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "dermo", nodes[0].Key)
	assert.Equal(t, "dermo", nodes[1].ParentKey)
	assert.Equal(t, "Fytyre", nodes[1].DisplayName)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	registry, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, len(DefaultNodes()), registry.Len())
}

func TestLoadValidatesFileContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	content := `nodes:
  - key: orphan
    display_name: Jetim
    parent: missing
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
