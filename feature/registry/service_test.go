package registry

import (
	"path/filepath"
	"sync"
	"testing"

	"emoji-sync/core/discord"
	"emoji-sync/core/index"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Reload(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := NewService(fs, testDir, zap.NewNop())

	assert.Empty(t, svc.List())

	count, err := svc.Reload()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	writeIndex(t, fs, discord.Emoji{ID: "1", Name: "a"}, discord.Emoji{ID: "2", Name: "b"})
	count, err = svc.Reload()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	entry, ok := svc.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", entry.ID)
}

func TestService_ReloadKeepsPreviousOnError(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeIndex(t, fs, discord.Emoji{ID: "1", Name: "a"})
	svc := NewService(fs, testDir, zap.NewNop())
	_, err := svc.Reload()
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, index.ListFile), []byte("[{"), 0644))
	_, err = svc.Reload()
	assert.Error(t, err)

	_, ok := svc.Get("a")
	assert.True(t, ok)
}

func TestService_ConcurrentReads(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeIndex(t, fs, discord.Emoji{ID: "1", Name: "a"})
	svc := NewService(fs, testDir, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.Reload()
		}()
		go func() {
			defer wg.Done()
			_ = svc.List()
		}()
	}
	wg.Wait()

	_, ok := svc.Get("a")
	assert.True(t, ok)
}
