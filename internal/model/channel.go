package model

import "time"

// UploadFrequency is the categorical upload-cadence label derived from
// a channel's recent publish timestamps.
type UploadFrequency string

const (
	FrequencyDaily    UploadFrequency = "Daily"
	FrequencyWeekly   UploadFrequency = "Weekly"
	FrequencyBiweekly UploadFrequency = "Bi-weekly"
	FrequencyMonthly  UploadFrequency = "Monthly / Irregular"
	FrequencyUnknown  UploadFrequency = "Unknown"
)

// ChannelEvidence is the factual data gathered for a channel before the
// AI judgment step. Subscribers is nil when the owner hides the count.
type ChannelEvidence struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Subscribers     *int64          `json:"subscribers"`
	TotalVideos     int64           `json:"totalVideos"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
	UploadFrequency UploadFrequency `json:"uploadFrequency"`
}

// ChannelJudgment is the AI assessment of a channel. Score is nil when
// the model declined or failed to produce one.
type ChannelJudgment struct {
	Summary        string   `json:"summary"`
	Score          *float64 `json:"score"`
	WorthFollowing Verdict  `json:"worthFollowing"`
	Reason         string   `json:"reason"`
}
