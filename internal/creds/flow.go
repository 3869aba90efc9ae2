package creds

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
)

// FlowState is the phase of an interactive authorization flow.
type FlowState int

const (
	FlowIdle FlowState = iota
	FlowAwaitingUserCode
	FlowExchanging
	FlowComplete
	FlowFailed
)

func (s FlowState) String() string {
	switch s {
	case FlowIdle:
		return "idle"
	case FlowAwaitingUserCode:
		return "awaiting-user-code"
	case FlowExchanging:
		return "exchanging"
	case FlowComplete:
		return "complete"
	case FlowFailed:
		return "failed"
	}

	return "unknown"
}

// FlowConfig carries the endpoints and grant parameters of the
// interactive flow.
type FlowConfig struct {
	// AuthorizeURL is the authorization server's interactive endpoint.
	AuthorizeURL string
	// RedirectURI must match the client registration.
	RedirectURI string
	// Scope is the space-separated capability list to request.
	Scope string
}

// Flow drives the interactive PKCE authorization-code grant:
// idle -> awaiting-user-code -> exchanging -> complete or failed.
// Nothing is retried automatically; on failure the operator restarts the
// flow. A flow instance is single-use.
type Flow struct {
	cfg       FlowConfig
	console   Console
	exchanger TokenExchanger
	persister Persister
	logger    *slog.Logger
	now       func() time.Time
	state     FlowState
}

// NewFlow wires an authorization flow controller.
func NewFlow(cfg FlowConfig, console Console, exchanger TokenExchanger, persister Persister, logger *slog.Logger) *Flow {
	return &Flow{
		cfg:       cfg,
		console:   console,
		exchanger: exchanger,
		persister: persister,
		logger:    logger,
		now:       time.Now,
		state:     FlowIdle,
	}
}

// State returns the flow's current phase.
func (f *Flow) State() FlowState {
	return f.state
}

func (f *Flow) transition(next FlowState) {
	f.logger.Debug("authorization flow transition", "from", f.state.String(), "to", next.String())
	f.state = next
}

// Run executes the full grant for the given application identity and
// returns the new user credential, already persisted. Fails with
// ErrAuthExchangeFailed on any aborted or malformed step.
func (f *Flow) Run(ctx context.Context, app *AppAuthData, userID string) (*UserAuthData, error) {
	verifier, err := newCodeVerifier()
	if err != nil {
		f.transition(FlowFailed)
		return nil, fmt.Errorf("%w: generating code verifier: %v", ErrAuthExchangeFailed, err)
	}

	authURL, err := f.buildAuthorizeURL(app.ClientID, challengeS256(verifier))
	if err != nil {
		f.transition(FlowFailed)
		return nil, fmt.Errorf("%w: %v", ErrAuthExchangeFailed, err)
	}

	f.console.ShowAuthURL(authURL)
	f.transition(FlowAwaitingUserCode)

	// Blocks until the operator pastes the redirect URL. No timeout:
	// the operator may take as long as the browser step needs.
	line, err := f.console.ReadRedirectURL()
	if err != nil {
		f.transition(FlowFailed)
		return nil, fmt.Errorf("%w: reading redirect URL: %v", ErrAuthExchangeFailed, err)
	}

	code, err := codeFromRedirect(line)
	if err != nil {
		f.transition(FlowFailed)
		return nil, fmt.Errorf("%w: %v", ErrAuthExchangeFailed, err)
	}

	f.transition(FlowExchanging)

	// The exchange sends the raw verifier; the server re-derives the
	// challenge from it.
	user, err := f.exchanger.ExchangeCode(ctx, app.ClientID, code, string(verifier), f.cfg.RedirectURI)
	if err != nil {
		f.transition(FlowFailed)
		return nil, fmt.Errorf("%w: %v", ErrAuthExchangeFailed, err)
	}

	now := f.now()
	user.LastRefresh = &now

	if user.Scope == "" {
		user.Scope = f.cfg.Scope
	}

	if err := f.persister.PersistUserAuth(ctx, user, userID); err != nil {
		f.logger.Warn("new credential not fully persisted", "user", userID, "error", err)
	}

	f.transition(FlowComplete)
	f.logger.Info("authorization flow complete", "user", userID)

	return user, nil
}

func (f *Flow) buildAuthorizeURL(clientID, challenge string) (string, error) {
	u, err := url.Parse(f.cfg.AuthorizeURL)
	if err != nil {
		return "", fmt.Errorf("parsing authorize URL: %w", err)
	}

	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", clientID)
	q.Set("scope", f.cfg.Scope)
	q.Set("code_challenge_method", "S256")
	q.Set("code_challenge", challenge)
	q.Set("redirect_uri", f.cfg.RedirectURI)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// codeFromRedirect extracts the authorization code from the pasted
// redirect URL. An error parameter aborts the flow; a URL carrying
// neither code nor error is malformed operator input.
func codeFromRedirect(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parsing redirect URL: %w", err)
	}

	q := u.Query()
	if issue := q.Get("error"); issue != "" {
		return "", fmt.Errorf("authorization server returned error: %s", issue)
	}

	if code := q.Get("code"); code != "" {
		return code, nil
	}

	return "", fmt.Errorf("redirect URL carries neither code nor error")
}
