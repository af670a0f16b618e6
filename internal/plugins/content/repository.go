package content

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/keyxmakerx/moodwell/internal/plugins/moods"
)

// ContentRepository reads the seeded content catalogue.
type ContentRepository interface {
	// ListByMoodAndKind returns every item for mood and kind ordered by ID,
	// so rotation order is stable between requests.
	ListByMoodAndKind(ctx context.Context, mood moods.Mood, kind Kind) ([]Item, error)
}

type contentRepository struct {
	db *sql.DB
}

// NewContentRepository creates a new MariaDB-backed content repository.
func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) ListByMoodAndKind(ctx context.Context, mood moods.Mood, kind Kind) ([]Item, error) {
	query := `SELECT id, mood, kind, title, body, url
	          FROM content_items
	          WHERE mood = ? AND kind = ?
	          ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, string(mood), string(kind))
	if err != nil {
		return nil, fmt.Errorf("listing content items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var m, k string
		var body, url sql.NullString
		if err := rows.Scan(&it.ID, &m, &k, &it.Title, &body, &url); err != nil {
			return nil, fmt.Errorf("scanning content item: %w", err)
		}
		it.Mood = moods.Mood(m)
		it.Kind = Kind(k)
		it.Body = body.String
		it.URL = url.String
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating content items: %w", err)
	}
	return items, nil
}
