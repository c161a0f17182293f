package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "emoji_sync",
			TimeoutSeconds: 2,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "Defaults timeout",
			cfg:  Config{Host: "db", Port: 3306, User: "root", Password: "", Name: "emoji_sync"},
			want: "root:@tcp(db:3306)/emoji_sync?charset=utf8mb4&parseTime=True&loc=UTC&timeout=30s&readTimeout=30s&writeTimeout=30s",
		},
		{
			name: "Encodes password",
			cfg:  Config{Host: "db", Port: 3307, User: "sync", Password: "p@ss/word", Name: "runs", TimeoutSeconds: 5},
			want: "sync:p%40ss%2Fword@tcp(db:3307)/runs?charset=utf8mb4&parseTime=True&loc=UTC&timeout=5s&readTimeout=5s&writeTimeout=5s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DSN(tt.cfg))
		})
	}
}
