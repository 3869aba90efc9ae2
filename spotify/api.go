package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// CurrentlyPlaying fetches the user's currently playing item. A 204
// from the API means nothing is playing and yields (nil, nil).
func (c *Client) CurrentlyPlaying(ctx context.Context, accessToken string) (*CurrentlyPlaying, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+currentlyPlayingPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrAPI, err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPI, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrAPI, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrAPI, resp.StatusCode, sanitizeBody(body))
	}

	// Peek at the discriminator before the full decode: anything other
	// than a track (episode, ad) keeps its raw item payload.
	playingType := gjson.GetBytes(body, "currently_playing_type").Str
	c.logger.Debug("currently playing response", "type", playingType)

	var playing CurrentlyPlaying
	if err := json.Unmarshal(body, &playing); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrAPI, err)
	}

	return &playing, nil
}
