package youtube

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ledmatrix/ytstats/internal/model"
)

// API endpoint and limits
const (
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"
	requestTimeout = 10 * time.Second
)

// Fetch errors
var (
	ErrNoChannel = errors.New("no channel data in response")
)

// Client fetches channel statistics from the YouTube Data API v3.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against the public API endpoint.
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against an alternate endpoint,
// used by tests to point at a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// channelListResponse mirrors the fields we read from the channels.list
// API shape. Count values arrive as JSON strings.
type channelListResponse struct {
	Items []struct {
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
			ViewCount       string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// ChannelStats issues one channels.list call and returns the parsed
// snapshot for the first returned channel.
func (c *Client) ChannelStats(channelID, apiKey string) (model.Stats, error) {
	query := url.Values{}
	query.Set("part", "statistics,snippet")
	query.Set("id", channelID)
	query.Set("key", apiKey)
	endpoint := c.baseURL + "/channels?" + query.Encode()

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return model.Stats{}, fmt.Errorf("fetch channel stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Stats{}, fmt.Errorf("fetch channel stats: unexpected status %s", resp.Status)
	}

	var parsed channelListResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.Stats{}, fmt.Errorf("parse channel stats: %w", err)
	}

	if len(parsed.Items) == 0 {
		return model.Stats{}, fmt.Errorf("%w for channel %s", ErrNoChannel, channelID)
	}

	channel := parsed.Items[0]
	subscribers, err := parseCount(channel.Statistics.SubscriberCount)
	if err != nil {
		return model.Stats{}, fmt.Errorf("parse subscriber count: %w", err)
	}
	views, err := parseCount(channel.Statistics.ViewCount)
	if err != nil {
		return model.Stats{}, fmt.Errorf("parse view count: %w", err)
	}

	return model.Stats{
		Name:        channel.Snippet.Title,
		Subscribers: subscribers,
		Views:       views,
	}, nil
}

// parseCount coerces an API count string to a non-negative integer.
func parseCount(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}
