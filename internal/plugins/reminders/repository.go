package reminders

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/keyxmakerx/moodwell/internal/apperror"
)

// ReminderRepository defines the data access contract for reminders.
type ReminderRepository interface {
	Create(ctx context.Context, r *Reminder) error
	ListByUser(ctx context.Context, userID int64) ([]Reminder, error)

	// Delete removes the reminder only if userID owns it. Returns
	// apperror.NotFound otherwise.
	Delete(ctx context.Context, id, userID int64) error
}

type reminderRepository struct {
	db *sql.DB
}

// NewReminderRepository creates a new MariaDB-backed reminder repository.
func NewReminderRepository(db *sql.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, rem *Reminder) error {
	query := `INSERT INTO reminders (user_id, title, remind_at, active, created_at)
	          VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, rem.UserID, rem.Title, rem.Time, rem.Active, rem.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting reminder: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted reminder id: %w", err)
	}
	rem.ID = id
	return nil
}

func (r *reminderRepository) ListByUser(ctx context.Context, userID int64) ([]Reminder, error) {
	query := `SELECT id, user_id, title, remind_at, active, created_at
	          FROM reminders WHERE user_id = ?
	          ORDER BY remind_at, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	defer rows.Close()

	list := []Reminder{}
	for rows.Next() {
		var rem Reminder
		if err := rows.Scan(&rem.ID, &rem.UserID, &rem.Title, &rem.Time, &rem.Active, &rem.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}
		list = append(list, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}
	return list, nil
}

func (r *reminderRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted reminder: %w", err)
	}
	if n == 0 {
		return apperror.NewNotFound("reminder not found")
	}
	return nil
}
