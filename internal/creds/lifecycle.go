package creds

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

// Manager owns the access-token lifecycle: it decides when a token needs
// refreshing, performs the refresh_token grant, and persists the result
// to both stores. Concurrent refreshes for the same user are collapsed
// into one exchange so interleaved callers cannot clobber each other's
// rotated refresh token.
type Manager struct {
	persister Persister
	exchanger TokenExchanger
	logger    *slog.Logger
	now       func() time.Time
	group     singleflight.Group
}

// NewManager wires a lifecycle manager. persister is normally the
// resolver.
func NewManager(persister Persister, exchanger TokenExchanger, logger *slog.Logger) *Manager {
	return &Manager{
		persister: persister,
		exchanger: exchanger,
		logger:    logger,
		now:       time.Now,
	}
}

// Refresh returns user unchanged when its access token is still fresh.
// Otherwise it performs a refresh_token grant, stamps the new bundle
// with the current time, persists it, and returns it as the new
// authoritative credential. Fails with ErrRefreshFailed when the
// exchange cannot complete; the caller decides whether that is fatal.
func (m *Manager) Refresh(ctx context.Context, app *AppAuthData, user *UserAuthData, userID string) (*UserAuthData, error) {
	if !user.NeedsRefresh(m.now()) {
		m.logger.Debug("access token still fresh", "user", userID)
		return user, nil
	}

	m.logger.Info("refreshing access token", "user", userID)

	fresh, err, _ := m.group.Do(userID, func() (any, error) {
		return m.refresh(ctx, app, user, userID)
	})
	if err != nil {
		return nil, err
	}

	return fresh.(*UserAuthData), nil
}

func (m *Manager) refresh(ctx context.Context, app *AppAuthData, user *UserAuthData, userID string) (*UserAuthData, error) {
	fresh, err := m.exchanger.RefreshToken(ctx, app.ClientID, user.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}

	// The server may omit fields it considers unchanged.
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = user.RefreshToken
	}

	if fresh.Scope == "" {
		fresh.Scope = user.Scope
	}

	now := m.now()
	fresh.LastRefresh = &now

	if err := m.persister.PersistUserAuth(ctx, fresh, userID); err != nil {
		m.logger.Warn("refreshed token not fully persisted", "user", userID, "error", err)
	}

	return fresh, nil
}
