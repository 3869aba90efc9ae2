package creds

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Resolver merges local cache and secret store state into a single
// authoritative credential. The secret store is the durable multi-device
// source of truth; the cache is a latency and offline-availability
// optimization. The resolver never talks to the authorization server.
type Resolver struct {
	cache  LocalCache
	store  SecretStore
	keys   Keys
	scope  string
	logger *slog.Logger
	now    func() time.Time
}

// NewResolver wires a resolver over the two credential stores. scope is
// the capability list stamped onto bundles synthesized from store state.
func NewResolver(cache LocalCache, store SecretStore, keys Keys, scope string, logger *slog.Logger) *Resolver {
	return &Resolver{
		cache:  cache,
		store:  store,
		keys:   keys,
		scope:  scope,
		logger: logger,
		now:    time.Now,
	}
}

// ResolveAppAuth returns the application identity. The cache is trusted
// indefinitely; only when it is absent or corrupt does the resolver fall
// back to the secret store, re-caching the result best-effort. Fails
// with ErrCredentialUnavailable only when the store fetch also fails.
func (r *Resolver) ResolveAppAuth(ctx context.Context) (*AppAuthData, error) {
	app, err := r.cache.LoadApp()
	if err == nil {
		return app, nil
	}

	switch {
	case errors.Is(err, ErrAbsent):
		r.logger.Debug("no cached app auth, consulting secret store")
	case errors.Is(err, ErrCorrupt):
		r.logger.Warn("cached app auth is corrupt, consulting secret store", "error", err)
	default:
		r.logger.Warn("cannot read cached app auth, consulting secret store", "error", err)
	}

	value, _, err := r.fetchSecret(ctx, r.keys.ClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrCredentialUnavailable, r.keys.ClientID, err)
	}

	app = &AppAuthData{ClientID: value}
	if err := r.cache.StoreApp(app); err != nil {
		r.logger.Warn("failed to cache app auth", "error", err)
	}

	return app, nil
}

// ResolveUserAuth returns the best available credential bundle for the
// user, or nil when neither store holds anything usable and the caller
// must run the interactive authorization flow.
//
// An unexpired local bundle is returned without any remote call. When
// the local bundle is expired or missing, the store's refresh token
// decides: if it matches the local one the local bundle stands; if it
// differs (or there is no local bundle) the store is authoritative and a
// bundle is synthesized from the stored tokens and their RefreshNote.
// An unreachable store degrades to the local bundle, stale or not.
func (r *Resolver) ResolveUserAuth(ctx context.Context, userID string) *UserAuthData {
	local := r.loadLocalUser()
	if local != nil && !local.NeedsRefresh(r.now()) {
		r.logger.Debug("using cached user auth", "user", userID)
		return local
	}

	remoteRefresh, note, err := r.fetchSecret(ctx, r.keys.RefreshTokenKey(userID))
	if err != nil {
		if local != nil {
			// A stale token we can attempt to refresh beats no token.
			r.logger.Warn("secret store unavailable, keeping local user auth", "user", userID, "error", err)
			return local
		}

		r.logger.Warn("no user auth in cache or secret store", "user", userID, "error", err)

		return nil
	}

	if local != nil && local.RefreshToken == remoteRefresh {
		return local
	}

	r.logger.Info("secret store user auth is authoritative", "user", userID)

	accessToken, _, err := r.fetchSecret(ctx, r.keys.AccessTokenKey(userID))
	if err != nil {
		r.logger.Warn("stored access token unavailable, continuing with refresh token only", "user", userID, "error", err)
		accessToken = ""
	}

	n := ParseRefreshNote(note)

	return &UserAuthData{
		AccessToken:  accessToken,
		TokenType:    TokenTypeBearer,
		Scope:        r.scope,
		ExpiresIn:    n.ExpiresIn,
		RefreshToken: remoteRefresh,
		LastRefresh:  n.LastRefresh,
	}
}

// PersistUserAuth writes the bundle to the local cache (best effort) and
// then to both token secrets in the store. The two store writes are
// independent: one failing does not stop the other, and neither failure
// is fatal to the caller. The returned error aggregates store failures
// for logging.
func (r *Resolver) PersistUserAuth(ctx context.Context, data *UserAuthData, userID string) error {
	if err := r.cache.StoreUser(data); err != nil {
		r.logger.Warn("failed to cache user auth", "user", userID, "error", err)
	}

	note := ""
	if data.LastRefresh != nil {
		encoded, err := RefreshNote{ExpiresIn: data.ExpiresIn, LastRefresh: data.LastRefresh}.Encode()
		if err != nil {
			r.logger.Warn("failed to encode refresh note", "user", userID, "error", err)
		} else {
			note = encoded
		}
	}

	refreshErr := r.putSecret(ctx, r.keys.RefreshTokenKey(userID), data.RefreshToken, note)
	if refreshErr != nil {
		r.logger.Warn("failed to store refresh token secret", "user", userID, "error", refreshErr)
	}

	accessErr := r.putSecret(ctx, r.keys.AccessTokenKey(userID), data.AccessToken, note)
	if accessErr != nil {
		r.logger.Warn("failed to store access token secret", "user", userID, "error", accessErr)
	}

	return errors.Join(refreshErr, accessErr)
}

// loadLocalUser reads the cached user bundle, classifying failures as
// absence.
func (r *Resolver) loadLocalUser() *UserAuthData {
	local, err := r.cache.LoadUser()
	if err == nil {
		return local
	}

	switch {
	case errors.Is(err, ErrAbsent):
		r.logger.Debug("no cached user auth")
	case errors.Is(err, ErrCorrupt):
		r.logger.Warn("cached user auth is corrupt, ignoring it", "error", err)
	default:
		r.logger.Warn("cannot read cached user auth", "error", err)
	}

	return nil
}

// fetchSecret resolves a logical key through a fresh listing and fetches
// the secret. The listing is rebuilt on every call: the store has no
// lookup-by-name and a cached identifier map would go stale after
// out-of-band secret creation.
func (r *Resolver) fetchSecret(ctx context.Context, key string) (value, note string, err error) {
	ids, err := r.store.List(ctx)
	if err != nil {
		return "", "", fmt.Errorf("listing secrets: %w", err)
	}

	id, ok := ids[key]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	value, note, err = r.store.Get(ctx, id)
	if err != nil {
		return "", "", fmt.Errorf("getting secret %s: %w", key, err)
	}

	return value, note, nil
}

// putSecret updates the secret under key, creating it when the listing
// does not know the key yet.
func (r *Resolver) putSecret(ctx context.Context, key, value, note string) error {
	ids, err := r.store.List(ctx)
	if err != nil {
		return fmt.Errorf("listing secrets: %w", err)
	}

	id, ok := ids[key]
	if !ok {
		if err := r.store.Create(ctx, key, value, note); err != nil {
			return fmt.Errorf("creating secret %s: %w", key, err)
		}

		return nil
	}

	if err := r.store.Update(ctx, id, key, value, note); err != nil {
		return fmt.Errorf("updating secret %s: %w", key, err)
	}

	return nil
}

var _ Persister = (*Resolver)(nil)
