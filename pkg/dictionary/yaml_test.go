package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
D:
  name: New Order - Single
  required: [35, 49, 56, 11, 55, 54]
"0":
  name: Heartbeat
AE:
  name: Trade Capture Report
`

func TestFromYAML(t *testing.T) {
	t.Run("loads a valid catalog", func(t *testing.T) {
		catalog, err := FromYAML([]byte(sampleCatalog))
		require.NoError(t, err)

		name, ok := catalog.TypeName("D")
		require.True(t, ok)
		assert.Equal(t, "New Order - Single", name)

		required, ok := catalog.RequiredTags("D")
		require.True(t, ok)
		assert.Equal(t, []int{35, 49, 56, 11, 55, 54}, required)

		_, ok = catalog.RequiredTags("0")
		assert.False(t, ok)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		_, err := FromYAML([]byte("not: valid: yaml: ["))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse catalog")
	})

	t.Run("rejects rules without a name", func(t *testing.T) {
		_, err := FromYAML([]byte("X:\n  required: [35]\n"))
		require.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("loads from disk", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0644))

		catalog, err := LoadFile(path)
		require.NoError(t, err)

		_, ok := catalog.TypeName("AE")
		assert.True(t, ok)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog file")
	})
}
