package bitwarden

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Config is the one-time bootstrap loaded from bitwarden_config.json:
// the machine access token plus the organization and project the
// credential secrets live under. It is not part of the credential
// resolution state machine itself.
type Config struct {
	AccessToken string    `json:"access_token"`
	OrgID       uuid.UUID `json:"org_id"`
	ProjectID   uuid.UUID `json:"project_id"`
}

// LoadConfig reads the bootstrap file. Failure here is fatal to the
// process: without it the secret store cannot be reached at all.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("%s: access_token is required", path)
	}

	if cfg.OrgID == uuid.Nil {
		return nil, fmt.Errorf("%s: org_id is required", path)
	}

	return &cfg, nil
}

// splitAccessToken breaks a machine access token of the form
// "0.<client_id>.<client_secret>:<encryption_key>" into the client
// credentials used for the identity grant. The encryption key suffix is
// not needed here: secret payload decryption is out of scope.
func splitAccessToken(token string) (clientID, clientSecret string, err error) {
	token, _, _ = strings.Cut(token, ":")

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", "", fmt.Errorf("malformed access token: want 3 dot-separated parts, got %d", len(parts))
	}

	if parts[1] == "" || parts[2] == "" {
		return "", "", fmt.Errorf("malformed access token: empty client id or secret")
	}

	return parts[1], parts[2], nil
}
