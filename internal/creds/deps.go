package creds

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock_deps_test.go -package=creds -source=deps.go

// SecretStore is the remote key-value service backing user credentials.
// The store has no lookup-by-name, so Get and Update take the internal
// identifier resolved from a prior List. Implementations classify
// transport and auth failures as ErrRemote.
type SecretStore interface {
	// List returns the mapping from logical key name to secret ID for
	// every secret visible to the client.
	List(ctx context.Context) (map[string]uuid.UUID, error)
	// Get fetches one secret's value and free-text note.
	Get(ctx context.Context, id uuid.UUID) (value, note string, err error)
	// Create stores a new secret under the given key.
	Create(ctx context.Context, key, value, note string) error
	// Update overwrites an existing secret.
	Update(ctx context.Context, id uuid.UUID, key, value, note string) error
}

// LocalCache is the durable per-machine credential cache. Load methods
// fail with ErrAbsent, ErrCorrupt or ErrIO; store methods fail with
// ErrIO. Callers treat store failures as warnings.
type LocalCache interface {
	LoadApp() (*AppAuthData, error)
	StoreApp(data *AppAuthData) error
	LoadUser() (*UserAuthData, error)
	StoreUser(data *UserAuthData) error
}

// TokenExchanger performs grants against the authorization server's
// token endpoint. Implemented by the spotify package.
type TokenExchanger interface {
	// ExchangeCode redeems an authorization code using the PKCE verifier.
	ExchangeCode(ctx context.Context, clientID, code, verifier, redirectURI string) (*UserAuthData, error)
	// RefreshToken performs a refresh_token grant.
	RefreshToken(ctx context.Context, clientID, refreshToken string) (*UserAuthData, error)
}

// Console is the interactive operator step of the authorization flow:
// show the authorization URL, then read back the pasted redirect URL.
type Console interface {
	ShowAuthURL(url string)
	ReadRedirectURL() (string, error)
}

// Persister stores a freshly obtained user credential in both the local
// cache and the secret store. Satisfied by *Resolver.
type Persister interface {
	PersistUserAuth(ctx context.Context, data *UserAuthData, userID string) error
}
