package ports

import "context"

// TokenSource yields the bearer token for the active session. It returns
// domain.ErrNotAuthenticated when no session credential is stored.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// SecretStore persists session credentials outside the profile registry.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
