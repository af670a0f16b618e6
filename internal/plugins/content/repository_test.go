package content

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/keyxmakerx/moodwell/internal/plugins/moods"
)

func TestContentRepository_ListByMoodAndKind(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM content_items\s+WHERE mood = \? AND kind = \?\s+ORDER BY id`).
		WithArgs("Sad", "playlist").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mood", "kind", "title", "body", "url"}).
			AddRow(4, "Sad", "playlist", "Gentle Comfort", nil, "https://example.com/p").
			AddRow(9, "Sad", "playlist", "Rainy Day", nil, nil))

	items, err := NewContentRepository(db).ListByMoodAndKind(context.Background(), moods.Sad, KindPlaylist)
	if err != nil {
		t.Fatalf("ListByMoodAndKind: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != 4 || items[0].URL != "https://example.com/p" || items[0].Body != "" {
		t.Errorf("unexpected first item %+v", items[0])
	}
	if items[1].URL != "" || items[1].Kind != KindPlaylist || items[1].Mood != moods.Sad {
		t.Errorf("unexpected second item %+v", items[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
