package inventory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, fs afero.Fs, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(name), 0644))
	}
}

func TestScan(t *testing.T) {
	t.Run("MissingDirectory", func(t *testing.T) {
		s := NewScanner(afero.NewMemMapFs(), nil)

		assets, err := s.Scan("emojis")
		require.NoError(t, err)
		assert.NotNil(t, assets)
		assert.Empty(t, assets)
	})

	t.Run("SortedAndFiltered", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, "emojis", "sad.png", "happy.gif", "list.json", "emojis.d.ts", ".gitkeep")
		require.NoError(t, fs.MkdirAll(filepath.Join("emojis", "nested.png"), 0755))

		names, err := NewScanner(fs, nil).ScanNames("emojis")
		require.NoError(t, err)
		assert.Equal(t, []string{"happy", "sad"}, names)
	})

	t.Run("CaseSensitiveNames", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, "emojis", "Wave.png", "wave.png")

		names, err := NewScanner(fs, nil).ScanNames("emojis")
		require.NoError(t, err)
		assert.Equal(t, []string{"Wave", "wave"}, names)
	})

	t.Run("IgnoreIsCaseInsensitive", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, "emojis", "LIST.JSON", "types.TS", "Notes.Json", "happy.PNG", "Draft-x.png")

		names, err := NewScanner(fs, []string{"*.json", "*.ts", "DRAFT-*"}).ScanNames("emojis")
		require.NoError(t, err)
		assert.Equal(t, []string{"happy"}, names)
	})

	t.Run("CollisionKeepsFirstExtension", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, "emojis", "happy.webp", "happy.png", "happy.gif")

		assets, err := NewScanner(fs, nil).Scan("emojis")
		require.NoError(t, err)
		require.Len(t, assets, 1)
		assert.Equal(t, Asset{
			Name:      "happy",
			Path:      filepath.Join("emojis", "happy.gif"),
			Extension: ".gif",
		}, assets[0])
	})

	t.Run("CustomIgnore", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, "emojis", "a.png", "draft-b.png", "c.json")

		names, err := NewScanner(fs, []string{"draft-*", " "}).ScanNames("emojis")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, names)
	})

	t.Run("DottedNames", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, "emojis", "thumbs.up.png")

		names, err := NewScanner(fs, nil).ScanNames("emojis")
		require.NoError(t, err)
		assert.Equal(t, []string{"thumbs.up"}, names)
	})
}

func TestReadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "emojis", "happy.png")
	s := NewScanner(fs, nil)

	data, err := s.ReadFile(Asset{Name: "happy", Path: filepath.Join("emojis", "happy.png")})
	require.NoError(t, err)
	assert.Equal(t, []byte("happy.png"), data)

	_, err = s.ReadFile(Asset{Name: "gone", Path: filepath.Join("emojis", "gone.png")})
	var ioErr *LocalIOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, filepath.Join("emojis", "gone.png"), ioErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
