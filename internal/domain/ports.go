package domain

// HistoryStore keeps every analyzed record for the lifetime of the process.
// Implementations must be safe for concurrent use.
type HistoryStore interface {
	// Append adds the record at the end of the sequence.
	Append(record MoodRecord)
	// ListAll returns every record, oldest first. Never nil.
	ListAll() []MoodRecord
}
