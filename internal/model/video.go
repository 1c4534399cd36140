package model

import "time"

// VideoEvidence is the factual data gathered for a single video before
// the AI judgment step.
type VideoEvidence struct {
	Title            string    `json:"title"`
	Views            int64     `json:"views"`
	UploadedAt       time.Time `json:"uploadedAt"`
	ChannelName      string    `json:"channelName"`
	Description      string    `json:"description"`
	Comments         []string  `json:"comments"`
	CommentsDisabled bool      `json:"commentsDisabled"`
}

// VideoJudgment is the AI assessment of a video. Percentage fields are
// nil when the model declined or failed to produce them.
type VideoJudgment struct {
	Summary                string   `json:"summary"`
	GoodCommentsPercent    *float64 `json:"goodCommentsPercent"`
	BadCommentsPercent     *float64 `json:"badCommentsPercent"`
	WorthWatching          Verdict  `json:"worthWatching"`
	ImprovementSuggestions string   `json:"improvementSuggestions"`
}
