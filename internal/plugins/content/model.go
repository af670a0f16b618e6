// Package content serves mood-matched suggestions (quotes, stories,
// playlists, movies). Each user gets a rotating cursor per mood and kind so
// repeated requests walk the catalogue instead of repeating one item.
package content

import (
	"fmt"
	"strings"

	"github.com/keyxmakerx/moodwell/internal/plugins/moods"
)

// Kind is a category of suggested content.
type Kind string

// Content kinds. Values match the content_items.kind ENUM.
const (
	KindQuote    Kind = "quote"
	KindStory    Kind = "story"
	KindPlaylist Kind = "playlist"
	KindMovie    Kind = "movie"
)

// AllKinds lists every content kind.
var AllKinds = []Kind{KindQuote, KindStory, KindPlaylist, KindMovie}

var kindPlurals = map[string]Kind{
	"quotes":    KindQuote,
	"stories":   KindStory,
	"playlists": KindPlaylist,
	"movies":    KindMovie,
}

// ParseKind resolves a path segment to a Kind. Singular and plural forms
// are accepted ("story", "stories").
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range AllKinds {
		if s == string(k) {
			return k, true
		}
	}
	k, ok := kindPlurals[s]
	return k, ok
}

// Item is one piece of suggested content. Quotes and stories carry Body;
// playlists carry URL; movies carry only Title.
type Item struct {
	ID    int64      `json:"id"`
	Mood  moods.Mood `json:"mood"`
	Kind  Kind       `json:"kind"`
	Title string     `json:"title,omitempty"`
	Body  string     `json:"body,omitempty"`
	URL   string     `json:"url,omitempty"`
}

// SuggestionResponse is the body of GET /mood/suggestions/:kind. Item is
// null when the catalogue has nothing for the mood and kind.
type SuggestionResponse struct {
	Item *Item `json:"item"`
}

// CursorKey identifies one rotation cursor.
type CursorKey struct {
	UserID int64
	Mood   moods.Mood
	Kind   Kind
}

// String returns the Redis key holding the cursor.
func (k CursorKey) String() string {
	return fmt.Sprintf("rotation:%d:%s:%s", k.UserID, k.Mood, k.Kind)
}
