// Package spotify talks to the Spotify accounts service and Web API: the
// two token-endpoint grants the credential core needs, and the
// currently-playing resource call.
package spotify

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	// AuthorizeURL is the interactive authorization endpoint opened in
	// the operator's browser.
	AuthorizeURL = "https://accounts.spotify.com/authorize"

	tokenURL   = "https://accounts.spotify.com/api/token"
	apiBaseURL = "https://api.spotify.com/v1"

	currentlyPlayingPath = "/me/player/currently-playing"

	// httpClientTimeout bounds every round trip when the caller does not
	// provide its own client.
	httpClientTimeout = 30 * time.Second

	// maxResponseBytes caps response body reads.
	maxResponseBytes = 1024 * 1024

	// maxRedirects matches the default net/http limit.
	maxRedirects = 10
)

// DefaultScope is the capability list the application requests.
const DefaultScope = "user-read-playback-state user-read-currently-playing playlist-read-private user-read-playback-position user-top-read user-read-recently-played user-library-read"

// ErrAPI wraps any failure talking to the Spotify endpoints.
var ErrAPI = errors.New("spotify API request failed")

// Client talks to the Spotify token endpoint and Web API.
type Client struct {
	httpClient *http.Client
	tokenURL   string
	apiURL     string
	logger     *slog.Logger
}

// sameHostRedirectPolicy follows redirects only within the original
// host, so the bearer token cannot leak to a third-party domain.
func sameHostRedirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return errors.New("stopped after 10 redirects")
	}

	if len(via) > 0 {
		origHost := via[0].URL.Host
		if req.URL.Host != origHost {
			return fmt.Errorf("redirect to different host blocked: %s -> %s", origHost, req.URL.Host)
		}
	}

	return nil
}

// NewClient creates a Spotify client. If httpClient is nil, a client
// with a 30-second timeout and same-host redirect policy is used.
func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:       httpClientTimeout,
			CheckRedirect: sameHostRedirectPolicy,
		}
	}

	return &Client{
		httpClient: httpClient,
		tokenURL:   tokenURL,
		apiURL:     apiBaseURL,
		logger:     logger,
	}
}
