package model

// EntryMeta is the lightweight summary stored alongside a cached result
// so the history view can render without unpacking the full result.
// Thumbnail is nil for channels (the platform exposes no stable
// channel-thumbnail URL scheme).
type EntryMeta struct {
	Title     string     `json:"title"`
	Thumbnail *string    `json:"thumbnail"`
	Type      ResultType `json:"type"`
}

// CacheEntry is one record in the analysis cache document, keyed by
// normalized URL. Timestamp is epoch milliseconds at insertion.
type CacheEntry struct {
	Result    AnalysisResult `json:"result"`
	Timestamp int64          `json:"timestamp"`
	Meta      EntryMeta      `json:"meta"`
}

// HistoryEntry is one row of the derived history view, ordered by
// Timestamp descending.
type HistoryEntry struct {
	URL       string     `json:"url"`
	Title     string     `json:"title"`
	Thumbnail *string    `json:"thumbnail"`
	Type      ResultType `json:"type"`
	Timestamp int64      `json:"timestamp"`
}
