// Package registry exposes the generated emoji index over HTTP.
//
// The Service wraps an index.Registry loaded from list.json and swaps it
// atomically on reload, so lookups never see a half-loaded registry.
//
// # HTTP Endpoints
//
//   - GET /emojis : all entries in list order
//   - GET /emojis/:name : one entry (404 when unknown)
//   - POST /emojis/reload : re-read list.json after a sync
package registry
