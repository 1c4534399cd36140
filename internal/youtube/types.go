package youtube

// Response shapes for the subset of the YouTube Data API v3 this
// service consumes. Only the fields we read are declared; everything
// else in the API payloads is ignored by the decoder.

// SearchListResponse is returned by the search endpoint (channel
// resolution and recent-upload listing).
type SearchListResponse struct {
	Items []SearchItem `json:"items"`
}

type SearchItem struct {
	Snippet SearchSnippet `json:"snippet"`
}

type SearchSnippet struct {
	ChannelID   string `json:"channelId"`
	Title       string `json:"title"`
	PublishedAt string `json:"publishedAt"`
}

// VideoListResponse is returned by the videos endpoint.
type VideoListResponse struct {
	Items []Video `json:"items"`
}

type Video struct {
	ID         string          `json:"id"`
	Snippet    VideoSnippet    `json:"snippet"`
	Statistics VideoStatistics `json:"statistics"`
}

type VideoSnippet struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelID    string `json:"channelId"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
}

// VideoStatistics carries counters as decimal strings, as the API
// serializes them.
type VideoStatistics struct {
	ViewCount string `json:"viewCount"`
}

// ChannelListResponse is returned by the channels endpoint.
type ChannelListResponse struct {
	Items []Channel `json:"items"`
}

type Channel struct {
	ID         string            `json:"id"`
	Snippet    ChannelSnippet    `json:"snippet"`
	Statistics ChannelStatistics `json:"statistics"`
}

type ChannelSnippet struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
}

// ChannelStatistics: HiddenSubscriberCount true means the owner hides
// the subscriber count and SubscriberCount must not be trusted.
type ChannelStatistics struct {
	SubscriberCount       string `json:"subscriberCount"`
	HiddenSubscriberCount bool   `json:"hiddenSubscriberCount"`
	VideoCount            string `json:"videoCount"`
}

// CommentThreadListResponse is returned by the commentThreads endpoint.
type CommentThreadListResponse struct {
	Items []CommentThread `json:"items"`
}

type CommentThread struct {
	Snippet CommentThreadSnippet `json:"snippet"`
}

type CommentThreadSnippet struct {
	TopLevelComment Comment `json:"topLevelComment"`
}

type Comment struct {
	Snippet CommentSnippet `json:"snippet"`
}

type CommentSnippet struct {
	TextDisplay string `json:"textDisplay"`
}
