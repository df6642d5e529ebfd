package mood

import (
	"context"
	"time"

	"github.com/PabloGalante/moodlens/internal/domain"
	"github.com/PabloGalante/moodlens/internal/observability"
)

type Service struct {
	store domain.HistoryStore
	now   func() time.Time
}

func NewService(store domain.HistoryStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Analyze classifies text, records the result and returns it.
func (s *Service) Analyze(ctx context.Context, text string) domain.MoodRecord {
	mood, suggestion := Classify(text)

	record := domain.MoodRecord{
		Text:       text,
		Mood:       mood,
		Suggestion: suggestion,
		Time:       s.now().Format(domain.TimeLayout),
	}

	s.store.Append(record)

	log := observability.LoggerFromContext(ctx)
	log.Debug("analyzed text", "text", text)
	log.Info("mood recorded", "mood", record.Mood, "time", record.Time)

	return record
}

// History returns every recorded analysis, oldest first.
func (s *Service) History(ctx context.Context) []domain.MoodRecord {
	records := s.store.ListAll()

	observability.LoggerFromContext(ctx).Info("fetched history", "record_count", len(records))

	return records
}
