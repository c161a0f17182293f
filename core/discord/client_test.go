package discord_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"emoji-sync/core/discord"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) discord.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	server.Config.SetKeepAlivesEnabled(false)
	t.Cleanup(server.Close)

	return discord.NewClient(discord.Config{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
		UserAgent:      "emoji-sync-test",
	}, "secret")
}

func TestIdentity(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/users/@me", r.URL.Path)
			assert.Equal(t, "Bot secret", r.Header.Get("Authorization"))
			assert.Equal(t, "emoji-sync-test", r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte(`{"id":"42","username":"bot"}`))
		})

		id, err := client.Identity(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "42", id)
	})

	t.Run("Rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Identity(context.Background())
		require.Error(t, err)
		assert.True(t, discord.IsAuthError(err))
		assert.Equal(t, http.StatusUnauthorized, discord.StatusOf(err))
	})
}

func TestList(t *testing.T) {
	t.Run("Items", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/applications/42/emojis", r.URL.Path)
			_, _ = w.Write([]byte(`{"items":[{"id":"1","name":"happy","animated":false},{"id":"2","name":"dance","animated":true}]}`))
		})

		emojis, err := client.List(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, []discord.Emoji{
			{ID: "1", Name: "happy"},
			{ID: "2", Name: "dance", Animated: true},
		}, emojis)
	})

	t.Run("EmptyIsNotFailure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		emojis, err := client.List(context.Background(), "42")
		require.NoError(t, err)
		assert.NotNil(t, emojis)
		assert.Empty(t, emojis)
	})

	t.Run("ServerError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.List(context.Background(), "42")
		var remoteErr *discord.RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, http.StatusBadGateway, remoteErr.Status)
		assert.False(t, discord.IsAuthError(err))
	})
}

func TestCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "happy", body["name"])
			assert.Equal(t, "data:image/png;base64,AQID", body["image"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"7","name":"happy","animated":false}`))
		})

		emoji, err := client.Create(context.Background(), "42", "happy", []byte{1, 2, 3}, "image/png")
		require.NoError(t, err)
		assert.Equal(t, discord.Emoji{ID: "7", Name: "happy"}, emoji)
	})

	t.Run("SuccessWithoutID", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":"queued"}`))
		})

		_, err := client.Create(context.Background(), "42", "happy", []byte{1}, "image/png")
		var remoteErr *discord.RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, http.StatusOK, remoteErr.Status)
		assert.Contains(t, remoteErr.Body, "queued")
	})

	t.Run("BadRequest", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":50035,"message":"Invalid Form Body"}`))
		})

		_, err := client.Create(context.Background(), "42", "bad name", []byte{1}, "image/png")
		var remoteErr *discord.RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, http.StatusBadRequest, remoteErr.Status)
		assert.Contains(t, err.Error(), "Invalid Form Body")
	})

	t.Run("LongBodyIsTrimmed", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(strings.Repeat("x", 2048)))
		})

		_, err := client.Create(context.Background(), "42", "big", []byte{1}, "image/png")
		var remoteErr *discord.RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Len(t, remoteErr.Body, 512+len("..."))
	})

	t.Run("TrimKeepsRunesWhole", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(strings.Repeat("a", 511) + "é" + strings.Repeat("z", 100)))
		})

		_, err := client.Create(context.Background(), "42", "big", []byte{1}, "image/png")
		var remoteErr *discord.RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.True(t, utf8.ValidString(remoteErr.Body))
		assert.Equal(t, strings.Repeat("a", 511)+"...", remoteErr.Body)
	})

	t.Run("UndecodableSuccess", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("not json"))
		})

		_, err := client.Create(context.Background(), "42", "happy", []byte{1}, "image/png")
		var remoteErr *discord.RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, http.StatusCreated, remoteErr.Status)
		require.Error(t, remoteErr.Err)
		assert.Contains(t, err.Error(), "decode response")
		assert.Contains(t, err.Error(), "not json")

		var syntaxErr *json.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
	})
}

func TestDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/applications/42/emojis/7", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		assert.NoError(t, client.Delete(context.Background(), "42", "7"))
	})

	t.Run("NotFound", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		err := client.Delete(context.Background(), "42", "7")
		assert.Equal(t, http.StatusNotFound, discord.StatusOf(err))
	})
}

func TestDataURI(t *testing.T) {
	assert.Equal(t, "data:image/gif;base64,R0lG", discord.DataURI([]byte("GIF"), "image/gif"))
}
