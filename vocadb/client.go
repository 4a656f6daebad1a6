package vocadb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public VocaDB instance.
const DefaultBaseURL = "https://vocadb.net"

// Client fetches entries from VocaDB REST API.
type Client struct {
	BaseURL string
	// Origin is passed to the API to identify the caller.
	Origin string
	Client *http.Client
	Log    *zap.Logger
}

func getJSON[T any](ctx context.Context, c *Client, path string, params url.Values) (*T, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	params.Set("lang", "English")
	if c.Origin != "" {
		params.Set("origin", c.Origin)
	}
	reqURL := strings.TrimRight(base, "/") + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	httpClient := c.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}

	log.Debug("Fetching entry", zap.String("url", reqURL))
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for '%s'", resp.StatusCode, reqURL)
	}

	var res T
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("unable to decode response: %w", err)
	}
	return &res, nil
}

// Song fetches song entry with fields needed for prefill.
func (c *Client) Song(ctx context.Context, id string) (*Song, error) {
	return getJSON[Song](ctx, c, "/api/songs/"+url.PathEscape(id), url.Values{
		"fields": {"Artists,Names,PVs,WebLinks,CultureCodes"},
	})
}

// Album fetches album entry with its tracks.
func (c *Client) Album(ctx context.Context, id string) (*Album, error) {
	return getJSON[Album](ctx, c, "/api/albums/"+url.PathEscape(id), url.Values{
		"fields":     {"MainPicture,Names,PVs,Artists,Tracks,WebLinks"},
		"songfields": {"Artists"},
	})
}

// Artist fetches artist entry with linked artists.
func (c *Client) Artist(ctx context.Context, id string) (*Artist, error) {
	return getJSON[Artist](ctx, c, "/api/artists/"+url.PathEscape(id), url.Values{
		"fields": {"AdditionalNames,MainPicture,Description,ArtistLinks,WebLinks"},
	})
}
