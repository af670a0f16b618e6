package reminders

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/keyxmakerx/moodwell/internal/apperror"
	"github.com/keyxmakerx/moodwell/internal/sanitize"
)

// ReminderService handles business logic for reminders.
type ReminderService interface {
	Create(ctx context.Context, userID int64, req CreateReminderRequest) (*Reminder, error)
	List(ctx context.Context, userID int64) ([]Reminder, error)
	Delete(ctx context.Context, userID, id int64) error
}

type reminderService struct {
	repo ReminderRepository
	now  func() time.Time
}

// NewReminderService creates a new reminder service.
func NewReminderService(repo ReminderRepository) ReminderService {
	return &reminderService{repo: repo, now: time.Now}
}

// Create validates and persists a new active reminder. Time is normalised
// to zero-padded HH:MM.
func (s *reminderService) Create(ctx context.Context, userID int64, req CreateReminderRequest) (*Reminder, error) {
	title := sanitize.Text(req.Title)
	if title == "" {
		return nil, apperror.NewValidation("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return nil, apperror.NewValidation("title must be 200 characters or less")
	}

	at, err := time.Parse(timeLayout, strings.TrimSpace(req.Time))
	if err != nil {
		return nil, apperror.NewValidation("time must be HH:MM (24-hour)")
	}

	rem := &Reminder{
		UserID:    userID,
		Title:     title,
		Time:      at.Format(timeLayout),
		Active:    true,
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}
	if err := s.repo.Create(ctx, rem); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("creating reminder: %w", err))
	}
	return rem, nil
}

func (s *reminderService) List(ctx context.Context, userID int64) ([]Reminder, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing reminders: %w", err))
	}
	return list, nil
}

func (s *reminderService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if apperror.IsNotFound(err) {
			return err
		}
		return apperror.NewInternal(fmt.Errorf("deleting reminder %d: %w", id, err))
	}
	return nil
}
