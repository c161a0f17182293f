// Package server holds the HTTP server configuration for the registry API.
//
// While the serve command handles the server startup, this package defines
// the configuration structure and its validation.
//
// # Configuration
//
// The Config struct defines the HTTP port and the API key. An empty API key
// leaves the API unauthenticated.
package server
