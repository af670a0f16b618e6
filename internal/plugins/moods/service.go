package moods

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/keyxmakerx/moodwell/internal/apperror"
)

// MoodService handles business logic for mood entries.
type MoodService interface {
	Log(ctx context.Context, userID int64, input LogInput) (*Entry, error)
	History(ctx context.Context, userID int64) ([]HistoryItem, error)

	// EntriesSince returns the user's entries at or after since, oldest first.
	EntriesSince(ctx context.Context, userID int64, since time.Time) ([]Entry, error)
}

type moodService struct {
	repo MoodRepository
	now  func() time.Time
}

// NewMoodService creates a new mood service.
func NewMoodService(repo MoodRepository) MoodService {
	return &moodService{repo: repo, now: time.Now}
}

// Log validates and stores a mood entry stamped with the current UTC time.
func (s *moodService) Log(ctx context.Context, userID int64, input LogInput) (*Entry, error) {
	if _, ok := moodScores[input.Mood]; !ok {
		return nil, apperror.NewValidation(fmt.Sprintf("unknown mood %q", input.Mood))
	}
	if input.Intensity < MinIntensity || input.Intensity > MaxIntensity {
		return nil, apperror.NewValidation("intensity must be between 1 and 10")
	}

	entry := &Entry{
		UserID:    userID,
		Mood:      input.Mood,
		Intensity: input.Intensity,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("logging mood: %w", err))
	}

	slog.Debug("mood logged",
		slog.Int64("user_id", userID),
		slog.String("mood", string(entry.Mood)),
	)
	return entry, nil
}

// History returns every entry for the user, oldest first, with its score.
func (s *moodService) History(ctx context.Context, userID int64) ([]HistoryItem, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading mood history: %w", err))
	}

	items := make([]HistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, HistoryItem{
			Date:      e.CreatedAt.UTC().Format(time.RFC3339),
			Mood:      e.Mood,
			Intensity: e.Intensity,
			Score:     Score(e.Mood),
		})
	}
	return items, nil
}

func (s *moodService) EntriesSince(ctx context.Context, userID int64, since time.Time) ([]Entry, error) {
	entries, err := s.repo.ListByUserSince(ctx, userID, since.UTC())
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading mood entries: %w", err))
	}
	return entries, nil
}
