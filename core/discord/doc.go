// Package discord is a thin typed client for the application emoji endpoints
// of the Discord REST API.
//
// It exposes the four calls the reconciler needs and nothing else:
//
//   - Identity: resolves the application id that owns the bot token.
//   - List: returns every emoji registered against an application.
//   - Create: uploads one image as a new emoji.
//   - Delete: removes one emoji by id.
//
// Each call is a single request/response exchange authenticated with a
// "Bot <token>" header. The client never retries; callers decide what a
// failure means for them.
//
// # Errors
//
// Non-success responses are reported as *AuthError (identity) or
// *RemoteError (everything else). RemoteError carries the HTTP status and a
// trimmed copy of the response body.
//
// # Usage
//
//	client := discord.NewClient(cfg.Discord, token)
//	appID, err := client.Identity(ctx)
//	emojis, err := client.List(ctx, appID)
package discord
