package service

import (
	"time"

	"github.com/tenthin/youtube-analyzer/internal/model"
)

// Upload-cadence classification thresholds: inclusive upper bounds on
// the mean gap between consecutive uploads, in days.
const (
	dailyMaxGap    = 2.0
	weeklyMaxGap   = 7.0
	biweeklyMaxGap = 20.0
)

// UploadCadence classifies a channel's upload frequency from publish
// timestamps ordered newest first. Fewer than two timestamps yield no
// gaps and therefore FrequencyUnknown.
func UploadCadence(published []time.Time) model.UploadFrequency {
	if len(published) < 2 {
		return model.FrequencyUnknown
	}

	var totalDays float64
	for i := 0; i < len(published)-1; i++ {
		totalDays += published[i].Sub(published[i+1]).Hours() / 24
	}
	meanGap := totalDays / float64(len(published)-1)

	switch {
	case meanGap <= dailyMaxGap:
		return model.FrequencyDaily
	case meanGap <= weeklyMaxGap:
		return model.FrequencyWeekly
	case meanGap <= biweeklyMaxGap:
		return model.FrequencyBiweekly
	default:
		return model.FrequencyMonthly
	}
}
