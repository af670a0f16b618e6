package content

import (
	"context"
	"fmt"

	"github.com/keyxmakerx/moodwell/internal/apperror"
	"github.com/keyxmakerx/moodwell/internal/plugins/moods"
	"github.com/keyxmakerx/moodwell/internal/rotation"
)

// ContentService picks the next suggestion for a user.
type ContentService interface {
	// Suggest returns the next item in the user's rotation for mood and
	// kind, or nil if the catalogue has none.
	Suggest(ctx context.Context, userID int64, mood moods.Mood, kind Kind) (*Item, error)
}

// SuggestionRecorder counts served suggestions. Implemented by
// *metrics.Collector.
type SuggestionRecorder interface {
	RecordSuggestion(kind string, found bool)
}

type contentService struct {
	repo     ContentRepository
	cursors  CursorStore
	recorder SuggestionRecorder
}

// NewContentService creates a new content service. recorder may be nil.
func NewContentService(repo ContentRepository, cursors CursorStore, recorder SuggestionRecorder) ContentService {
	return &contentService{repo: repo, cursors: cursors, recorder: recorder}
}

func (s *contentService) Suggest(ctx context.Context, userID int64, mood moods.Mood, kind Kind) (*Item, error) {
	items, err := s.repo.ListByMoodAndKind(ctx, mood, kind)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading %s items for %s: %w", kind, mood, err))
	}
	if len(items) == 0 {
		s.record(kind, false)
		return nil, nil
	}

	var selected Item
	key := CursorKey{UserID: userID, Mood: mood, Kind: kind}
	_, err = s.cursors.Advance(ctx, key, func(current int) int {
		item, next, _ := rotation.Rotate(items, current)
		selected = item
		return next
	})
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("rotating %s: %w", key, err))
	}

	s.record(kind, true)
	return &selected, nil
}

func (s *contentService) record(kind Kind, found bool) {
	if s.recorder != nil {
		s.recorder.RecordSuggestion(string(kind), found)
	}
}
