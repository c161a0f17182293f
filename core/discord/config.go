package discord

// Config holds configuration for the Discord REST API client.
type Config struct {
	// BaseURL is the versioned API root, without a trailing slash.
	BaseURL string `mapstructure:"base_url" default:"https://discord.com/api/v10"`
	// TimeoutSeconds bounds connection setup and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"emoji-sync/1.0"`
}
