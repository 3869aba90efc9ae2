// Package bitwarden talks to a Bitwarden Secrets Manager style REST API:
// one machine-token login against the identity endpoint, then
// list/get/create/update of key-value secrets scoped to an organization
// and project.
package bitwarden

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spotkeep/spotkeep/internal/creds"
)

const (
	defaultIdentityURL = "https://identity.bitwarden.com"
	defaultAPIURL      = "https://api.bitwarden.com"

	// httpClientTimeout bounds every secret store round trip when the
	// caller does not provide its own client.
	httpClientTimeout = 30 * time.Second

	// maxResponseBytes caps response body reads. Secret payloads are
	// small JSON documents.
	maxResponseBytes = 1024 * 1024

	// bearerSlack re-authenticates slightly before the session bearer
	// expires so a request never races the expiry.
	bearerSlack = 30 * time.Second
)

// Client is the secret store adapter. It authenticates lazily on first
// use and re-authenticates when the session bearer nears expiry.
type Client struct {
	httpClient  *http.Client
	identityURL string
	apiURL      string
	cfg         *Config
	logger      *slog.Logger

	bearer    string
	bearerExp time.Time
	now       func() time.Time
}

// NewClient creates a secret store client. If httpClient is nil, a
// client with a 30-second timeout is used.
func NewClient(cfg *Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: httpClientTimeout}
	}

	return &Client{
		httpClient:  httpClient,
		identityURL: defaultIdentityURL,
		apiURL:      defaultAPIURL,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type secretSummary struct {
	ID  uuid.UUID `json:"id"`
	Key string    `json:"key"`
}

type secretListResponse struct {
	Secrets []secretSummary `json:"secrets"`
}

type secretResponse struct {
	ID    uuid.UUID `json:"id"`
	Key   string    `json:"key"`
	Value string    `json:"value"`
	Note  string    `json:"note"`
}

type secretWriteRequest struct {
	Key        string      `json:"key"`
	Value      string      `json:"value"`
	Note       string      `json:"note"`
	ProjectIDs []uuid.UUID `json:"projectIds,omitempty"`
}

// login exchanges the machine access token for a session bearer. The
// bearer is a JWT; its exp claim drives re-authentication.
func (c *Client) login(ctx context.Context) error {
	clientID, clientSecret, err := splitAccessToken(c.cfg.AccessToken)
	if err != nil {
		return fmt.Errorf("%w: %v", creds.ErrRemote, err)
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", "api.secrets")
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.identityURL+"/connect/token", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: creating login request: %v", creds.ErrRemote, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.send(req)
	if err != nil {
		return fmt.Errorf("authenticating to secret store: %w", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("%w: decoding login response: %v", creds.ErrRemote, err)
	}

	if resp.AccessToken == "" {
		return fmt.Errorf("%w: login response carries no access token", creds.ErrRemote)
	}

	c.bearer = resp.AccessToken
	c.bearerExp = c.bearerExpiry(resp)
	c.logger.Debug("authenticated to secret store", "bearer_expires", c.bearerExp)

	return nil
}

// bearerExpiry prefers the bearer's own exp claim over the advertised
// expires_in, falling back to the latter when the token is not a
// parseable JWT. The claim is read without signature verification: it
// only schedules our re-login, it grants nothing.
func (c *Client) bearerExpiry(resp loginResponse) time.Time {
	claims := jwt.MapClaims{}

	_, _, err := jwt.NewParser().ParseUnverified(resp.AccessToken, claims)
	if err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}

	return c.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
}

// ensureSession logs in on first use or when the bearer nears expiry.
func (c *Client) ensureSession(ctx context.Context) error {
	if c.bearer != "" && c.now().Before(c.bearerExp.Add(-bearerSlack)) {
		return nil
	}

	return c.login(ctx)
}

// List returns the logical-key-to-identifier map for all secrets in the
// configured organization. Later duplicates of a key shadow earlier
// ones, matching the store's own ordering.
func (c *Client) List(ctx context.Context) (map[string]uuid.UUID, error) {
	var resp secretListResponse
	endpoint := fmt.Sprintf("/organizations/%s/secrets", c.cfg.OrgID)

	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	ids := make(map[string]uuid.UUID, len(resp.Secrets))
	for _, s := range resp.Secrets {
		ids[s.Key] = s.ID
	}

	return ids, nil
}

// Get fetches one secret's value and note by identifier.
func (c *Client) Get(ctx context.Context, id uuid.UUID) (string, string, error) {
	var resp secretResponse
	if err := c.doJSON(ctx, http.MethodGet, "/secrets/"+id.String(), nil, &resp); err != nil {
		return "", "", err
	}

	return resp.Value, resp.Note, nil
}

// Create stores a new secret under the configured project.
func (c *Client) Create(ctx context.Context, key, value, note string) error {
	req := secretWriteRequest{Key: key, Value: value, Note: note}
	if c.cfg.ProjectID != uuid.Nil {
		req.ProjectIDs = []uuid.UUID{c.cfg.ProjectID}
	}

	endpoint := fmt.Sprintf("/organizations/%s/secrets", c.cfg.OrgID)

	return c.doJSON(ctx, http.MethodPost, endpoint, &req, nil)
}

// Update overwrites an existing secret.
func (c *Client) Update(ctx context.Context, id uuid.UUID, key, value, note string) error {
	req := secretWriteRequest{Key: key, Value: value, Note: note}
	if c.cfg.ProjectID != uuid.Nil {
		req.ProjectIDs = []uuid.UUID{c.cfg.ProjectID}
	}

	return c.doJSON(ctx, http.MethodPut, "/secrets/"+id.String(), &req, nil)
}

// doJSON sends an authenticated JSON request against the API endpoint
// and decodes the response into result when non-nil. Every failure is
// classified as ErrRemote so the resolver never sees raw transport
// errors.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, result any) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: marshalling request body: %v", creds.ErrRemote, err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: creating request: %v", creds.ErrRemote, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.bearer)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	respBody, err := c.send(req)
	if err != nil {
		return fmt.Errorf("secret store %s %s: %w", method, endpoint, err)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%w: decoding response from %s: %v", creds.ErrRemote, endpoint, err)
		}
	}

	return nil
}

// send executes the request and returns the response body, mapping
// network failures and non-2xx statuses to ErrRemote.
func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", creds.ErrRemote, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", creds.ErrRemote, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: status %d: %s", creds.ErrRemote, resp.StatusCode, sanitizeBody(body))
	}

	return body, nil
}

// sanitizeBody truncates and cleans a response body for inclusion in an
// error message, replacing non-printable characters to keep logs safe.
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

var _ creds.SecretStore = (*Client)(nil)
