package domain

// Mood labels returned to clients, emoji included.
const (
	MoodStressed = "Stressed 😟"
	MoodSad      = "Sad 😔"
	MoodHappy    = "Happy 😊"
	MoodNeutral  = "Neutral 🙂"
)

// TimeLayout is the wall-clock format stamped on every record (24h, no date, no zone).
const TimeLayout = "15:04"
