package model

// ResultType tags an AnalysisResult as a video or channel analysis.
type ResultType string

const (
	ResultTypeVideo   ResultType = "video"
	ResultTypeChannel ResultType = "channel"
)

// Verdict is the model's recommendation. "Unknown" is reserved for the
// fallback record used when the model's reply could not be parsed.
type Verdict string

const (
	VerdictYes     Verdict = "Yes"
	VerdictMaybe   Verdict = "Maybe"
	VerdictNo      Verdict = "No"
	VerdictUnknown Verdict = "Unknown"
)

// AnalyzeRequest is the API request body for POST /api/analyze.
type AnalyzeRequest struct {
	URL string `json:"url"`
}

// AnalysisResult is the unit returned to the caller and persisted in
// the history cache. Exactly one of the video/channel pairs is set,
// selected by Type.
type AnalysisResult struct {
	Type             ResultType       `json:"type"`
	Video            *VideoEvidence   `json:"video,omitempty"`
	VideoAnalysis    *VideoJudgment   `json:"videoAnalysis,omitempty"`
	Channel          *ChannelEvidence `json:"channel,omitempty"`
	ChannelAnalysis  *ChannelJudgment `json:"channelAnalysis,omitempty"`
	CommentsDisabled bool             `json:"commentsDisabled,omitempty"`
}

// StatsResponse is the API response for aggregate analysis statistics.
type StatsResponse struct {
	TotalAnalyses   int `json:"totalAnalyses"`
	VideoAnalyses   int `json:"videoAnalyses"`
	ChannelAnalyses int `json:"channelAnalyses"`
	Analyses24h     int `json:"analyses24h"`
}
