// Package vault stores the secret API key, separately from the non-secret
// connection settings and encrypted at rest.
package vault

import "context"

// Vault is the capability a session needs from secure credential storage.
// Platform-specific secret services can be substituted behind it without
// touching the session layer.
//
// Load reports absence via its second return value; an unreadable or corrupt
// entry is treated as absent, not as a fatal error.
type Vault interface {
	Save(ctx context.Context, apiKey string) error
	Load(ctx context.Context) (apiKey string, ok bool, err error)
	Clear(ctx context.Context) error
}
