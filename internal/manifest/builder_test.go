package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/domain"
	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/registry"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
}

func TestBuild(t *testing.T) {
	t.Run("one group per subfolder in listing order", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "classes", "Foo.cls"))
		writeFile(t, filepath.Join(root, "classes", "Bar.cls"))
		writeFile(t, filepath.Join(root, "pages", "Baz.page"))

		m, err := NewBuilder(BuilderOptions{}).Build(root)
		require.NoError(t, err)
		require.Len(t, m.Types, 2)

		assert.Equal(t, "ApexClass", m.Types[0].Name)
		assert.Equal(t, []string{"Bar", "Foo"}, m.Types[0].Members)
		assert.Equal(t, "ApexPage", m.Types[1].Name)
		assert.Equal(t, []string{"Baz"}, m.Types[1].Members)
	})

	t.Run("excludes txt log xml members", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "classes", "Foo.cls"))
		writeFile(t, filepath.Join(root, "classes", "notes.txt"))
		writeFile(t, filepath.Join(root, "classes", "debug.log"))
		writeFile(t, filepath.Join(root, "classes", "existing.xml"))

		m, err := NewBuilder(BuilderOptions{}).Build(root)
		require.NoError(t, err)
		require.Len(t, m.Types, 1)
		assert.Equal(t, []string{"Foo"}, m.Types[0].Members)
	})

	t.Run("unmapped folder keeps raw name", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "lwc", "card.js"))

		m, err := NewBuilder(BuilderOptions{}).Build(root)
		require.NoError(t, err)
		require.Len(t, m.Types, 1)
		assert.Equal(t, "lwc", m.Types[0].Name)
		assert.Equal(t, []string{"card"}, m.Types[0].Members)
	})

	t.Run("custom registry mapping applies", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "lwc", "card.js"))

		reg := registry.New().Merge(map[string]string{"lwc": "LightningComponentBundle"})
		m, err := NewBuilder(BuilderOptions{Registry: reg}).Build(root)
		require.NoError(t, err)
		assert.Equal(t, "LightningComponentBundle", m.Types[0].Name)
	})

	t.Run("empty subfolder still produces a group", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "triggers"), 0755))

		m, err := NewBuilder(BuilderOptions{}).Build(root)
		require.NoError(t, err)
		require.Len(t, m.Types, 1)
		assert.Equal(t, "ApexTrigger", m.Types[0].Name)
		assert.Empty(t, m.Types[0].Members)
	})

	t.Run("does not recurse into nested directories", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "classes", "Top.cls"))
		writeFile(t, filepath.Join(root, "classes", "nested", "Deep.cls"))

		m, err := NewBuilder(BuilderOptions{}).Build(root)
		require.NoError(t, err)
		assert.Equal(t, []string{"Top"}, m.Types[0].Members)
	})

	t.Run("version and namespace default when unset", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "classes"), 0755))

		m, err := NewBuilder(BuilderOptions{}).Build(root)
		require.NoError(t, err)
		assert.Equal(t, DefaultAPIVersion, m.Version)
		assert.Equal(t, DefaultNamespace, m.Xmlns)
	})

	t.Run("configured version and namespace carry through", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "classes"), 0755))

		m, err := NewBuilder(BuilderOptions{
			APIVersion: "58.0",
			Xmlns:      "http://example.com/metadata",
		}).Build(root)
		require.NoError(t, err)
		assert.Equal(t, "58.0", m.Version)
		assert.Equal(t, "http://example.com/metadata", m.Xmlns)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := NewBuilder(BuilderOptions{}).Build(filepath.Join(t.TempDir(), "nope"))
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("root with no subfolders yields empty manifest", func(t *testing.T) {
		m, err := NewBuilder(BuilderOptions{}).Build(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, m.Types)
		assert.Zero(t, m.MemberCount())
	})
}
