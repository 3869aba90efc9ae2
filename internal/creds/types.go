// Package creds resolves and maintains OAuth credentials for one Spotify
// application and its users. It reconciles a local JSON cache with a
// remote secret store, refreshes access tokens before they expire, and
// drives the interactive PKCE grant when no usable credential exists.
package creds

import (
	"encoding/json"
	"fmt"
	"time"
)

// TokenTypeBearer is the only token type the authorization server issues.
const TokenTypeBearer = "Bearer"

// refreshMargin is subtracted from the advertised token lifetime so a
// token is refreshed slightly before the server would reject it.
const refreshMargin = 5 * time.Second

// AppAuthData identifies the registered client application. It changes
// only when the operator rotates the client registration out-of-band.
type AppAuthData struct {
	ClientID string `json:"client_id"`
	// PKCE clients typically have no secret.
	ClientSecret string `json:"client_secret,omitempty"`
}

// UserAuthData is the bearer-token bundle for one end user, as returned
// by the authorization server's token endpoint plus our own refresh
// timestamp.
type UserAuthData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	// Space-separated list of scopes granted for this access token.
	Scope        string     `json:"scope"`
	ExpiresIn    int64      `json:"expires_in"`
	RefreshToken string     `json:"refresh_token"`
	LastRefresh  *time.Time `json:"last_refresh,omitempty"`
}

// NeedsRefresh reports whether the access token must be refreshed before
// it can be used. A bundle with no recorded refresh time is unverified
// and always refreshed, as is one whose refresh time lies in the future
// (clock skew).
func (u *UserAuthData) NeedsRefresh(now time.Time) bool {
	if u.LastRefresh == nil {
		return true
	}

	elapsed := now.Sub(*u.LastRefresh)
	if elapsed < 0 {
		return true
	}

	return elapsed >= time.Duration(u.ExpiresIn)*time.Second-refreshMargin
}

// RefreshNote carries token freshness metadata in the free-text note of
// a secret-store entry, so a usable bundle can be reconstructed from the
// store alone when the local cache is gone.
type RefreshNote struct {
	ExpiresIn   int64      `json:"expires_in"`
	LastRefresh *time.Time `json:"last_refresh,omitempty"`
}

// Encode serializes the note for storage.
func (n RefreshNote) Encode() (string, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("encoding refresh note: %w", err)
	}

	return string(b), nil
}

// ParseRefreshNote decodes a note attached to a stored secret. A missing
// or malformed note degrades to zero values: the synthesized bundle is
// then treated as expired and refreshed on first use.
func ParseRefreshNote(note string) RefreshNote {
	var n RefreshNote
	if note == "" {
		return RefreshNote{}
	}

	if err := json.Unmarshal([]byte(note), &n); err != nil {
		return RefreshNote{}
	}

	return n
}

// Keys maps logical credential names to secret-store key names. The
// token templates take the user ID as their single argument.
type Keys struct {
	ClientID             string
	AccessTokenTemplate  string
	RefreshTokenTemplate string
}

// DefaultKeys returns the key names used by the spotkeep deployment.
func DefaultKeys() Keys {
	return Keys{
		ClientID:             "spotify_client_id",
		AccessTokenTemplate:  "spotify_access_token_%s",
		RefreshTokenTemplate: "spotify_refresh_token_%s",
	}
}

// AccessTokenKey returns the store key holding a user's access token.
func (k Keys) AccessTokenKey(userID string) string {
	return fmt.Sprintf(k.AccessTokenTemplate, userID)
}

// RefreshTokenKey returns the store key holding a user's refresh token.
func (k Keys) RefreshTokenKey(userID string) string {
	return fmt.Sprintf(k.RefreshTokenTemplate, userID)
}
