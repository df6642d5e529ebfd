package memory

import (
	"sync"

	"github.com/PabloGalante/moodlens/internal/domain"
)

// HistoryStore is an in-memory implementation of domain.HistoryStore.
// It is NOT persistent: records live as long as the process does.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.MoodRecord
}

// NewHistoryStore creates an empty in-memory HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		records: make([]domain.MoodRecord, 0),
	}
}

// Append saves a record at the end of the history.
func (s *HistoryStore) Append(record domain.MoodRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
}

// ListAll returns a copy of every record in insertion order.
func (s *HistoryStore) ListAll() []domain.MoodRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.MoodRecord, len(s.records))
	copy(out, s.records)
	return out
}
