package content

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/keyxmakerx/moodwell/internal/apperror"
	"github.com/keyxmakerx/moodwell/internal/plugins/moods"
)

// --- Mocks ---

type mockContentRepo struct {
	listFn func(ctx context.Context, mood moods.Mood, kind Kind) ([]Item, error)
}

func (m *mockContentRepo) ListByMoodAndKind(ctx context.Context, mood moods.Mood, kind Kind) ([]Item, error) {
	if m.listFn != nil {
		return m.listFn(ctx, mood, kind)
	}
	return nil, nil
}

// memCursorStore is an in-process CursorStore.
type memCursorStore struct {
	cursors    map[CursorKey]int
	advanceErr error
}

func newMemCursorStore() *memCursorStore {
	return &memCursorStore{cursors: make(map[CursorKey]int)}
}

func (m *memCursorStore) Advance(_ context.Context, key CursorKey, step func(int) int) (int, error) {
	if m.advanceErr != nil {
		return 0, m.advanceErr
	}
	cur := m.cursors[key]
	m.cursors[key] = step(cur)
	return cur, nil
}

type mockSuggestionRecorder struct {
	found, missed int
}

func (m *mockSuggestionRecorder) RecordSuggestion(kind string, found bool) {
	if found {
		m.found++
	} else {
		m.missed++
	}
}

func assertAppError(t *testing.T, err error, expectedCode int) {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	if appErr.Code != expectedCode {
		t.Errorf("expected status %d, got %d", expectedCode, appErr.Code)
	}
}

func catalogue(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: int64(i + 1), Mood: moods.Sad, Kind: KindQuote, Body: fmt.Sprintf("quote %d", i+1)}
	}
	return items
}

// --- Suggest Tests ---

func TestSuggest_CyclesThroughCatalogue(t *testing.T) {
	items := catalogue(3)
	repo := &mockContentRepo{
		listFn: func(ctx context.Context, mood moods.Mood, kind Kind) ([]Item, error) {
			return items, nil
		},
	}
	rec := &mockSuggestionRecorder{}
	svc := NewContentService(repo, newMemCursorStore(), rec)

	var got []int64
	for i := 0; i < 7; i++ {
		item, err := svc.Suggest(context.Background(), 1, moods.Sad, KindQuote)
		if err != nil {
			t.Fatalf("Suggest: %v", err)
		}
		got = append(got, item.ID)
	}

	want := []int64{1, 2, 3, 1, 2, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sequence = %v, want %v", got, want)
		}
	}
	if rec.found != 7 || rec.missed != 0 {
		t.Errorf("recorder found=%d missed=%d", rec.found, rec.missed)
	}
}

func TestSuggest_UsersRotateIndependently(t *testing.T) {
	repo := &mockContentRepo{
		listFn: func(ctx context.Context, mood moods.Mood, kind Kind) ([]Item, error) {
			return catalogue(2), nil
		},
	}
	svc := NewContentService(repo, newMemCursorStore(), nil)
	ctx := context.Background()

	a1, _ := svc.Suggest(ctx, 1, moods.Sad, KindQuote)
	a2, _ := svc.Suggest(ctx, 1, moods.Sad, KindQuote)
	b1, _ := svc.Suggest(ctx, 2, moods.Sad, KindQuote)

	if a1.ID != 1 || a2.ID != 2 || b1.ID != 1 {
		t.Errorf("got a1=%d a2=%d b1=%d, want 1 2 1", a1.ID, a2.ID, b1.ID)
	}
}

func TestSuggest_EmptyCatalogue(t *testing.T) {
	cursors := newMemCursorStore()
	rec := &mockSuggestionRecorder{}
	svc := NewContentService(&mockContentRepo{}, cursors, rec)

	item, err := svc.Suggest(context.Background(), 1, moods.Happy, KindMovie)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if item != nil {
		t.Errorf("expected nil item, got %+v", item)
	}
	if len(cursors.cursors) != 0 {
		t.Error("cursor should not be touched for an empty catalogue")
	}
	if rec.missed != 1 {
		t.Errorf("missed = %d, want 1", rec.missed)
	}
}

// A catalogue that shrank under an old cursor still yields an item.
func TestSuggest_StaleCursorWraps(t *testing.T) {
	cursors := newMemCursorStore()
	key := CursorKey{UserID: 1, Mood: moods.Sad, Kind: KindQuote}
	cursors.cursors[key] = 10

	repo := &mockContentRepo{
		listFn: func(ctx context.Context, mood moods.Mood, kind Kind) ([]Item, error) {
			return catalogue(3), nil
		},
	}
	item, err := NewContentService(repo, cursors, nil).Suggest(context.Background(), 1, moods.Sad, KindQuote)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if item.ID != 2 {
		t.Errorf("item = %d, want 2 (10 mod 3 = 1)", item.ID)
	}
	if cursors.cursors[key] != 2 {
		t.Errorf("next cursor = %d, want 2", cursors.cursors[key])
	}
}

func TestSuggest_Errors(t *testing.T) {
	failingRepo := &mockContentRepo{
		listFn: func(ctx context.Context, mood moods.Mood, kind Kind) ([]Item, error) {
			return nil, errors.New("db down")
		},
	}
	_, err := NewContentService(failingRepo, newMemCursorStore(), nil).Suggest(context.Background(), 1, moods.Sad, KindQuote)
	assertAppError(t, err, 500)

	okRepo := &mockContentRepo{
		listFn: func(ctx context.Context, mood moods.Mood, kind Kind) ([]Item, error) {
			return catalogue(1), nil
		},
	}
	cursors := newMemCursorStore()
	cursors.advanceErr = ErrCursorContention
	_, err = NewContentService(okRepo, cursors, nil).Suggest(context.Background(), 1, moods.Sad, KindQuote)
	assertAppError(t, err, 500)
	if !errors.Is(err, ErrCursorContention) {
		t.Errorf("expected ErrCursorContention in chain, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"quote":     KindQuote,
		"quotes":    KindQuote,
		"Stories":   KindStory,
		"story":     KindStory,
		"PLAYLISTS": KindPlaylist,
		"movie":     KindMovie,
		"books":     "",
	}
	for in, want := range tests {
		got, ok := ParseKind(in)
		if got != want || ok != (want != "") {
			t.Errorf("ParseKind(%q) = (%q, %v), want %q", in, got, ok, want)
		}
	}
}
