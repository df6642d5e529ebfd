package domain

// MoodRecord is a single classification result plus its originating text.
// Records are created once per analysis and never modified afterwards.
type MoodRecord struct {
	Text       string `json:"text"`
	Mood       string `json:"mood"`
	Suggestion string `json:"suggestion"`
	Time       string `json:"time"`
}
