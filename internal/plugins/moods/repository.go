package moods

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MoodRepository defines the data access contract for mood entries.
type MoodRepository interface {
	Create(ctx context.Context, entry *Entry) error

	// ListByUser returns all of a user's entries, oldest first.
	ListByUser(ctx context.Context, userID int64) ([]Entry, error)

	// ListByUserSince returns a user's entries created at or after since,
	// oldest first.
	ListByUserSince(ctx context.Context, userID int64, since time.Time) ([]Entry, error)
}

type moodRepository struct {
	db *sql.DB
}

// NewMoodRepository creates a new MariaDB-backed mood repository.
func NewMoodRepository(db *sql.DB) MoodRepository {
	return &moodRepository{db: db}
}

const entryColumns = `id, user_id, mood, intensity, created_at`

// Create inserts entry and sets its ID.
func (r *moodRepository) Create(ctx context.Context, entry *Entry) error {
	query := `INSERT INTO mood_logs (user_id, mood, intensity, created_at)
	          VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		entry.UserID,
		string(entry.Mood),
		entry.Intensity,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting mood entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted mood entry id: %w", err)
	}
	entry.ID = id
	return nil
}

func (r *moodRepository) ListByUser(ctx context.Context, userID int64) ([]Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM mood_logs
	          WHERE user_id = ? ORDER BY created_at, id`
	return r.list(ctx, query, userID)
}

func (r *moodRepository) ListByUserSince(ctx context.Context, userID int64, since time.Time) ([]Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM mood_logs
	          WHERE user_id = ? AND created_at >= ? ORDER BY created_at, id`
	return r.list(ctx, query, userID, since)
}

func (r *moodRepository) list(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing mood entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var mood string
		if err := rows.Scan(&e.ID, &e.UserID, &mood, &e.Intensity, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning mood entry: %w", err)
		}
		e.Mood = Mood(mood)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mood entries: %w", err)
	}
	return entries, nil
}
