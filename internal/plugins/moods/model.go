// Package moods records mood entries and serves a user's mood history. It
// also owns the Mood vocabulary and its wellbeing score, which the content
// and reports plugins build on.
package moods

import (
	"strings"
	"time"
)

// Mood is one of the fixed moods a user can log.
type Mood string

// The known moods, ordered from lowest to highest score.
const (
	Overwhelmed Mood = "Overwhelmed"
	Demotivated Mood = "Demotivated"
	Anxious     Mood = "Anxious"
	Stressed    Mood = "Stressed"
	Sad         Mood = "Sad"
	Lazy        Mood = "Lazy"
	Bored       Mood = "Bored"
	Neutral     Mood = "Neutral"
	Motivated   Mood = "Motivated"
	Happy       Mood = "Happy"
)

// AllMoods lists every known mood in score order.
var AllMoods = []Mood{
	Overwhelmed, Demotivated, Anxious, Stressed, Sad,
	Lazy, Bored, Neutral, Motivated, Happy,
}

var moodScores = map[Mood]int{
	Overwhelmed: 1,
	Demotivated: 2,
	Anxious:     3,
	Stressed:    4,
	Sad:         5,
	Lazy:        6,
	Bored:       7,
	Neutral:     8,
	Motivated:   9,
	Happy:       10,
}

// defaultScore is used for moods outside the known set.
const defaultScore = 5

// Score maps a mood to 1 (worst) .. 10 (best).
func Score(m Mood) int {
	if s, ok := moodScores[m]; ok {
		return s
	}
	return defaultScore
}

// ParseMood resolves s to a known mood, ignoring case and surrounding space.
func ParseMood(s string) (Mood, bool) {
	s = strings.TrimSpace(s)
	for _, m := range AllMoods {
		if strings.EqualFold(s, string(m)) {
			return m, true
		}
	}
	return "", false
}

// Intensity bounds, inclusive.
const (
	MinIntensity = 1
	MaxIntensity = 10
)

// Entry is one logged mood.
type Entry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Mood      Mood      `json:"mood"`
	Intensity int       `json:"intensity"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Request / Response DTOs ---

// LogRequest is the JSON body of POST /mood/log.
type LogRequest struct {
	Mood      string `json:"mood"`
	Intensity int    `json:"intensity"`
}

// LogResponse is returned after an entry is stored.
type LogResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// HistoryItem is one element of GET /mood/history.
type HistoryItem struct {
	Date      string `json:"date"`
	Mood      Mood   `json:"mood"`
	Intensity int    `json:"intensity"`
	Score     int    `json:"score"`
}

// LogInput is the validated input for logging a mood.
type LogInput struct {
	Mood      Mood
	Intensity int
}
