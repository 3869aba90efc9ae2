package spotify

import "encoding/json"

// CurrentlyPlaying is the response of the currently-playing endpoint.
// Item is held raw: it is a track only when CurrentlyPlayingType says
// so, and episodes or ads carry a different shape.
type CurrentlyPlaying struct {
	Timestamp            int64           `json:"timestamp"`
	ProgressMS           *int            `json:"progress_ms"`
	CurrentlyPlayingType string          `json:"currently_playing_type"`
	IsPlaying            bool            `json:"is_playing"`
	Item                 json.RawMessage `json:"item"`
}

// Track returns the playing item decoded as a track, or nil when the
// item is absent or the discriminator says it is something else.
// Episodes and ads share enough field names with tracks that shape
// alone cannot tell them apart.
func (c *CurrentlyPlaying) Track() *Track {
	if c.CurrentlyPlayingType != "track" || len(c.Item) == 0 {
		return nil
	}

	var t Track
	if err := json.Unmarshal(c.Item, &t); err != nil {
		return nil
	}

	return &t
}

// Artist is a Spotify artist reference.
type Artist struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Album is the album a track belongs to.
type Album struct {
	Name        string   `json:"name"`
	ID          string   `json:"id"`
	TotalTracks int      `json:"total_tracks"`
	ReleaseDate string   `json:"release_date"`
	AlbumType   string   `json:"album_type"`
	Artists     []Artist `json:"artists"`
}

// ExternalID carries the standard recording identifiers of a track.
type ExternalID struct {
	ISRC string `json:"isrc,omitempty"`
	EAN  string `json:"ean,omitempty"`
	UPC  string `json:"upc,omitempty"`
}

// Track is a full track object from the Web API.
type Track struct {
	Name        string     `json:"name"`
	ID          string     `json:"id"`
	Album       Album      `json:"album"`
	Artists     []Artist   `json:"artists"`
	DiscNumber  int        `json:"disc_number"`
	DurationMS  int        `json:"duration_ms"`
	ExternalIDs ExternalID `json:"external_ids"`
	Explicit    bool       `json:"explicit"`
}
