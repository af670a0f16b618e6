package reports

import (
	"context"
	"time"

	"github.com/keyxmakerx/moodwell/internal/plugins/moods"
)

// MoodSource supplies the observations a report is built from.
type MoodSource interface {
	ObservationsSince(ctx context.Context, userID int64, since time.Time) ([]Observation, error)
}

// MoodSourceAdapter wraps moods.MoodService to satisfy MoodSource, so the
// report code never touches mood storage types directly.
type MoodSourceAdapter struct {
	service moods.MoodService
}

// NewMoodSourceAdapter creates a new adapter around the mood service.
func NewMoodSourceAdapter(service moods.MoodService) MoodSource {
	return &MoodSourceAdapter{service: service}
}

// ObservationsSince maps the user's entries at or after since.
func (a *MoodSourceAdapter) ObservationsSince(ctx context.Context, userID int64, since time.Time) ([]Observation, error) {
	entries, err := a.service.EntriesSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	out := make([]Observation, 0, len(entries))
	for _, e := range entries {
		out = append(out, Observation{Mood: e.Mood, Intensity: e.Intensity, At: e.CreatedAt})
	}
	return out, nil
}
