package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("merges mapping file over built-ins", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "mappings.yaml")
		content := "lwc: LightningComponentBundle\nreports: Report\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		r, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "LightningComponentBundle", r.TypeName("lwc"))
		assert.Equal(t, "Report", r.TypeName("reports"))
		assert.Equal(t, "ApexClass", r.TypeName("classes"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.True(t, errors.Is(err, ErrMappingNotFound))
	})
}

func TestLoadFromBytes(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadFromBytes([]byte("lwc: [unclosed"))
		assert.True(t, errors.Is(err, ErrInvalidMapping))
	})

	t.Run("empty type name rejected", func(t *testing.T) {
		_, err := LoadFromBytes([]byte(`lwc: ""`))
		assert.True(t, errors.Is(err, ErrEmptyType))
	})

	t.Run("empty folder name rejected", func(t *testing.T) {
		_, err := LoadFromBytes([]byte(`"": Report`))
		assert.True(t, errors.Is(err, ErrEmptyFolder))
	})

	t.Run("empty document keeps built-ins only", func(t *testing.T) {
		r, err := LoadFromBytes(nil)
		require.NoError(t, err)
		assert.Equal(t, New().Len(), r.Len())
	})
}
