package cmd

import (
	"context"
	"testing"

	"emoji-sync/core/config"
	"emoji-sync/core/index"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewPublisher(t *testing.T) {
	cfg := &config.Config{}
	assert.Nil(t, newPublisher(cfg, zap.NewNop()))

	cfg.Storage.Enabled = true
	cfg.Storage.Endpoint = "http://localhost:9000"
	cfg.Storage.Bucket = "emojis"
	cfg.Storage.Prefix = "index"
	pub := newPublisher(cfg, zap.NewNop())
	require.NotNil(t, pub)

	p, ok := pub.(*index.Publisher)
	require.True(t, ok)
	assert.Equal(t, "index/list.json", p.ObjectName(index.ListFile))
}

func TestOpenHistory_Disabled(t *testing.T) {
	store, err := openHistory(context.Background(), &config.Config{})
	assert.NoError(t, err)
	assert.Nil(t, store)
	assert.Nil(t, newRecorder(context.Background(), &config.Config{}, zap.NewNop()))
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"sync", "setup", "serve", "history"} {
		assert.True(t, names[want], want)
	}
}
