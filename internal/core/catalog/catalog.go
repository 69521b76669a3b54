// Package catalog holds the fixed list of sessions offered on the home screen.
package catalog

import (
	"errors"
	"fmt"

	"mindful/internal/core/model"
)

var (
	// ErrUnknownSession indicates a lookup for an id the catalog does not hold.
	ErrUnknownSession = errors.New("unknown session")
	// ErrInvalidCatalog indicates a catalog entry breaks an entry invariant.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

var sessions = []model.Session{
	{ID: "1", Title: "Morning Peace", DurationMinutes: 10, Category: model.CategoryMeditation, Color: model.Gradient{From: "orange-400", To: "pink-500"}, Icon: "🌅"},
	{ID: "2", Title: "Deep Breathing", DurationMinutes: 5, Category: model.CategoryBreathing, Color: model.Gradient{From: "blue-400", To: "teal-500"}, Icon: "💨"},
	{ID: "3", Title: "Stress Relief", DurationMinutes: 15, Category: model.CategoryMeditation, Color: model.Gradient{From: "purple-400", To: "pink-500"}, Icon: "🧘‍♀️"},
	{ID: "4", Title: "Sleep Sounds", DurationMinutes: 20, Category: model.CategorySleep, Color: model.Gradient{From: "indigo-500", To: "purple-600"}, Icon: "🌙"},
	{ID: "5", Title: "Focus Flow", DurationMinutes: 12, Category: model.CategoryMeditation, Color: model.Gradient{From: "teal-400", To: "blue-500"}, Icon: "🎯"},
	{ID: "6", Title: "Box Breathing", DurationMinutes: 8, Category: model.CategoryBreathing, Color: model.Gradient{From: "cyan-400", To: "blue-500"}, Icon: "⬜"},
}

// All returns the sessions in display order. The slice is a copy.
func All() []model.Session {
	return append([]model.Session(nil), sessions...)
}

// Lookup finds a session by id.
func Lookup(id string) (model.Session, bool) {
	for _, session := range sessions {
		if session.ID == id {
			return session, true
		}
	}
	return model.Session{}, false
}

// Find is Lookup with an error for unknown ids.
func Find(id string) (model.Session, error) {
	session, ok := Lookup(id)
	if !ok {
		return model.Session{}, fmt.Errorf("find session %q: %w", id, ErrUnknownSession)
	}
	return session, nil
}

// Validate checks that ids are unique, durations positive and categories known.
func Validate(list []model.Session) error {
	seen := make(map[string]struct{}, len(list))
	for index, session := range list {
		if session.ID == "" {
			return fmt.Errorf("entry %d: empty id: %w", index, ErrInvalidCatalog)
		}
		if _, ok := seen[session.ID]; ok {
			return fmt.Errorf("entry %d: duplicate id %q: %w", index, session.ID, ErrInvalidCatalog)
		}
		seen[session.ID] = struct{}{}
		if session.DurationMinutes <= 0 {
			return fmt.Errorf("session %q: duration must be positive: %w", session.ID, ErrInvalidCatalog)
		}
		if !session.Category.Valid() {
			return fmt.Errorf("session %q: unknown category %q: %w", session.ID, session.Category, ErrInvalidCatalog)
		}
	}
	return nil
}
