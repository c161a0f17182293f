// Package config provides configuration management for emoji-sync.
//
// It utilizes Viper for loading configuration from environment variables,
// a .env file and an optional emoji-sync.yaml.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Sync: emoji directory, index generation, bot token and ignore patterns
//   - Discord: API base URL, timeout and user agent
//   - Server: registry API port and API key
//   - Database: MySQL connection for the run history
//   - Storage: S3/MinIO settings for publishing the index
//   - Log: Logging level and format
//
// Environment variables map onto nested keys (SYNC_TOKEN -> sync.token). The
// legacy names TOKEN and EMOJIS_DIR are honored when the namespaced ones are unset.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.Dir)
package config
