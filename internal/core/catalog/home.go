package catalog

// Metadata describes the application to the hosting shell.
type Metadata struct {
	Title       string
	ShortName   string
	Description string
	ThemeColor  string
}

// Stat is one figure on the home stats card.
type Stat struct {
	Label string
	Value string
}

// Home is the static content around the session list.
type Home struct {
	Heading      string
	Tagline      string
	Streak       Stat
	TotalTime    Stat
	SectionTitle string
	TipTitle     string
	Tip          string
}

// AppMetadata returns the window title and branding.
func AppMetadata() Metadata {
	return Metadata{
		Title:       "Mindful - Meditation & Breathing",
		ShortName:   "Mindful",
		Description: "Your personal meditation and mindfulness companion",
		ThemeColor:  "#007AFF",
	}
}

// HomeContent returns the home screen copy. Stats are display values only.
func HomeContent() Home {
	return Home{
		Heading:      "Mindful",
		Tagline:      "Find your inner peace",
		Streak:       Stat{Label: "Daily Streak", Value: "7 Days 🔥"},
		TotalTime:    Stat{Label: "Total Time", Value: "2.5 hrs"},
		SectionTitle: "Quick Sessions",
		TipTitle:     "💡 Today's Tip",
		Tip:          "Try meditation in the morning to set a positive tone for your day. Even 5 minutes can make a difference.",
	}
}
