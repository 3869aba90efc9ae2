package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/spotkeep/spotkeep/internal/creds"
)

// ExchangeCode redeems an authorization code for a token bundle,
// presenting the raw PKCE verifier for the server to check against the
// challenge sent during authorization.
func (c *Client) ExchangeCode(ctx context.Context, clientID, code, verifier, redirectURI string) (*creds.UserAuthData, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", clientID)
	form.Set("code_verifier", verifier)
	form.Set("redirect_uri", redirectURI)

	return c.postTokenForm(ctx, form)
}

// RefreshToken performs a refresh_token grant.
func (c *Client) RefreshToken(ctx context.Context, clientID, refreshToken string) (*creds.UserAuthData, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", clientID)

	return c.postTokenForm(ctx, form)
}

// postTokenForm sends a form-encoded grant to the token endpoint and
// decodes the bundle. The caller stamps LastRefresh; the endpoint only
// reports expires_in.
func (c *Client) postTokenForm(ctx context.Context, form url.Values) (*creds.UserAuthData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: creating token request: %v", ErrAPI, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPI, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading token response: %v", ErrAPI, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: token endpoint returned status %d: %s", ErrAPI, resp.StatusCode, sanitizeBody(body))
	}

	var user creds.UserAuthData
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("%w: decoding token response: %v", ErrAPI, err)
	}

	if user.AccessToken == "" {
		return nil, fmt.Errorf("%w: token response carries no access token", ErrAPI)
	}

	return &user, nil
}

// sanitizeBody truncates and cleans a response body for error messages,
// replacing non-printable characters to keep logs safe.
func sanitizeBody(body []byte) string {
	const maxLen = 256
	if len(body) > maxLen {
		body = body[:maxLen]
	}

	var clean []byte

	for len(body) > 0 {
		r, size := utf8.DecodeRune(body)
		if r == utf8.RuneError && size <= 1 {
			clean = append(clean, '?')
			body = body[1:]

			continue
		}

		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			clean = append(clean, '?')
		} else {
			clean = append(clean, body[:size]...)
		}

		body = body[size:]
	}

	return string(clean)
}

var _ creds.TokenExchanger = (*Client)(nil)
