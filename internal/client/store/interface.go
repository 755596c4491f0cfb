package store

import "context"

// DefaultPort is the port Load resolves to when nothing (or something
// malformed) is stored.
const DefaultPort = 8081

// Repository persists the non-secret connection settings. An empty host on
// Load means "absent". The credential never goes through this store.
type Repository interface {
	Save(ctx context.Context, host string, port int) error
	Load(ctx context.Context) (host string, port int, err error)
	Clear(ctx context.Context) error
}
