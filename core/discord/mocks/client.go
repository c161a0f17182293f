package mocks

import (
	"context"

	"emoji-sync/core/discord"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of discord.Client
type Client struct {
	mock.Mock
}

func (m *Client) Identity(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *Client) List(ctx context.Context, appID string) ([]discord.Emoji, error) {
	args := m.Called(ctx, appID)
	if emojis, ok := args.Get(0).([]discord.Emoji); ok {
		return emojis, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Create(ctx context.Context, appID, name string, image []byte, mimeType string) (discord.Emoji, error) {
	args := m.Called(ctx, appID, name, image, mimeType)
	return args.Get(0).(discord.Emoji), args.Error(1)
}

func (m *Client) Delete(ctx context.Context, appID, emojiID string) error {
	args := m.Called(ctx, appID, emojiID)
	return args.Error(0)
}
