package mood

import (
	"strings"

	"github.com/PabloGalante/moodlens/internal/domain"
)

// Group is a mood category with the words that select it.
type Group struct {
	Mood       string
	Suggestion string
	Triggers   []string
}

// groups are checked in order; the first one with a matching trigger wins.
var groups = []Group{
	{
		Mood:       domain.MoodStressed,
		Suggestion: "Try a 1-minute deep breathing exercise",
		Triggers:   []string{"tired", "stress", "stressed", "overwhelmed", "pressure"},
	},
	{
		Mood:       domain.MoodSad,
		Suggestion: "Write one positive thing about today",
		Triggers:   []string{"sad", "lonely", "down", "depressed", "unhappy"},
	},
	{
		Mood:       domain.MoodHappy,
		Suggestion: "Keep doing what makes you feel good",
		Triggers:   []string{"happy", "good", "great", "excited", "fine"},
	},
}

var neutral = Group{
	Mood:       domain.MoodNeutral,
	Suggestion: "Take a short break and hydrate",
}

// Classify maps text to a mood label and a suggestion.
//
// Matching is plain substring containment on the lower-cased text, so a
// trigger found inside another word ("sadness", "downtown") still counts.
func Classify(text string) (mood, suggestion string) {
	lower := strings.ToLower(text)

	for _, g := range groups {
		if containsAny(lower, g.Triggers) {
			return g.Mood, g.Suggestion
		}
	}

	return neutral.Mood, neutral.Suggestion
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// Groups returns the mood groups in priority order, Neutral last.
// The result is a copy.
func Groups() []Group {
	out := make([]Group, 0, len(groups)+1)
	for _, g := range groups {
		g.Triggers = append([]string(nil), g.Triggers...)
		out = append(out, g)
	}
	out = append(out, Group{
		Mood:       neutral.Mood,
		Suggestion: neutral.Suggestion,
		Triggers:   []string{},
	})
	return out
}
