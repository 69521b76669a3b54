package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"mindful/internal/core/model"
)

func TestShippedCatalogIsValid(t *testing.T) {
	require.NoError(t, Validate(All()))
	require.Len(t, All(), 6)
}

func TestAllPreservesOrder(t *testing.T) {
	var titles []string
	for _, session := range All() {
		titles = append(titles, session.Title)
	}
	require.Equal(t, []string{
		"Morning Peace",
		"Deep Breathing",
		"Stress Relief",
		"Sleep Sounds",
		"Focus Flow",
		"Box Breathing",
	}, titles)
}

func TestAllReturnsCopy(t *testing.T) {
	list := All()
	list[0].Title = "changed"
	list[0].DurationMinutes = 99

	fresh := All()
	require.Equal(t, "Morning Peace", fresh[0].Title)
	require.Equal(t, 10, fresh[0].DurationMinutes)
}

func TestLookup(t *testing.T) {
	session, ok := Lookup("2")
	require.True(t, ok)
	require.Equal(t, "Deep Breathing", session.Title)
	require.Equal(t, 5, session.DurationMinutes)
	require.True(t, session.IsBreathing())
	require.Equal(t, "from-blue-400 to-teal-500", session.Color.Token())

	_, ok = Lookup("missing")
	require.False(t, ok)
}

func TestFindWrapsUnknown(t *testing.T) {
	_, err := Find("42")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownSession))

	session, err := Find("6")
	require.NoError(t, err)
	require.Equal(t, "Box Breathing", session.Title)
}

func TestValidateRejectsBrokenEntries(t *testing.T) {
	valid := model.Session{ID: "a", DurationMinutes: 1, Category: model.CategorySleep}
	cases := map[string][]model.Session{
		"empty id":          {{DurationMinutes: 1, Category: model.CategorySleep}},
		"duplicate id":      {valid, valid},
		"zero duration":     {{ID: "a", Category: model.CategorySleep}},
		"negative duration": {{ID: "a", DurationMinutes: -5, Category: model.CategorySleep}},
		"unknown category":  {{ID: "a", DurationMinutes: 1, Category: "yoga"}},
	}
	for name, list := range cases {
		t.Run(name, func(t *testing.T) {
			err := Validate(list)
			require.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestHomeContent(t *testing.T) {
	home := HomeContent()
	require.Equal(t, "Mindful", home.Heading)
	require.Equal(t, "7 Days 🔥", home.Streak.Value)
	require.Equal(t, "2.5 hrs", home.TotalTime.Value)
	require.Equal(t, "Quick Sessions", home.SectionTitle)

	meta := AppMetadata()
	require.Equal(t, "Mindful - Meditation & Breathing", meta.Title)
	require.Equal(t, "#007AFF", meta.ThemeColor)
}
