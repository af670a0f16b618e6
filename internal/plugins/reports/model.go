// Package reports summarises a user's recent mood entries.
package reports

import (
	"time"

	"github.com/keyxmakerx/moodwell/internal/plugins/moods"
)

// weekWindow is the look-back period of the weekly report.
const weekWindow = 7 * 24 * time.Hour

// Observation is the slice of a mood entry a report needs.
type Observation struct {
	Mood      moods.Mood
	Intensity int
	At        time.Time
}

// WeeklyReport is the response of GET /reports/weekly. Averages are rounded
// to one decimal and are zero when there are no entries.
type WeeklyReport struct {
	UserID           int64      `json:"user_id"`
	From             time.Time  `json:"from"`
	To               time.Time  `json:"to"`
	Entries          int        `json:"entries"`
	AverageScore     float64    `json:"average_score"`
	AverageIntensity float64    `json:"average_intensity"`
	MostFrequentMood moods.Mood `json:"most_frequent_mood,omitempty"`
	Summary          string     `json:"summary"`
}
