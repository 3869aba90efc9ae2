package creds

import "errors"

// Local cache outcomes. Absent and Corrupt are expected conditions that
// trigger fallback to the secret store, not failures of the pipeline.
var (
	ErrAbsent  = errors.New("local credential data absent")
	ErrCorrupt = errors.New("local credential data corrupt")
	ErrIO      = errors.New("local credential storage failure")
)

// Secret store outcomes.
var (
	ErrNotFound = errors.New("secret key not found")
	ErrRemote   = errors.New("secret store request failed")
)

// Terminal outcomes. These are the only errors surfaced past the
// resolver and lifecycle manager.
var (
	ErrRefreshFailed         = errors.New("access token refresh failed")
	ErrAuthExchangeFailed    = errors.New("authorization code exchange failed")
	ErrCredentialUnavailable = errors.New("application credentials unavailable")
)
