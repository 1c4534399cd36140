// Package youtube is a minimal client for the four YouTube Data API v3
// read operations this service needs. The API signals "not found" with
// an empty items list, not an HTTP error; callers are responsible for
// interpreting empty results.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a Data API client. baseURL is overridable for
// tests; empty means the production endpoint.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// SearchChannels searches channels by free text. Used to resolve an
// @handle to a channel ID.
func (c *Client) SearchChannels(ctx context.Context, query string) (SearchListResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "channel")

	var resp SearchListResponse
	err := c.get(ctx, "/search", params, &resp)
	return resp, err
}

// VideoDetails fetches snippet, statistics and content details for one
// video in a single call.
func (c *Client) VideoDetails(ctx context.Context, videoID string) (VideoListResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", videoID)

	var resp VideoListResponse
	err := c.get(ctx, "/videos", params, &resp)
	return resp, err
}

// ChannelDetails fetches snippet and statistics for one channel.
func (c *Client) ChannelDetails(ctx context.Context, channelID string) (ChannelListResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", channelID)

	var resp ChannelListResponse
	err := c.get(ctx, "/channels", params, &resp)
	return resp, err
}

// RecentVideos lists a channel's most recent uploads, newest first.
func (c *Client) RecentVideos(ctx context.Context, channelID string, maxResults int) (SearchListResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("channelId", channelID)
	params.Set("order", "date")
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))

	var resp SearchListResponse
	err := c.get(ctx, "/search", params, &resp)
	return resp, err
}

// TopComments lists a video's top-level comments ordered by relevance,
// as plain text. A 403 here means comments are disabled for the video.
func (c *Client) TopComments(ctx context.Context, videoID string, maxResults int) (CommentThreadListResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("videoId", videoID)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("order", "relevance")
	params.Set("textFormat", "plainText")

	var resp CommentThreadListResponse
	err := c.get(ctx, "/commentThreads", params, &resp)
	return resp, err
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("youtube: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("youtube: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("youtube: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("youtube: status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return fmt.Errorf("youtube: unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("youtube: decode response: %w", err)
	}
	return nil
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
