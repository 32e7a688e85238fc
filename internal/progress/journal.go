package progress

import "context"

// Journal event types.
const (
	EventVideo       = "video"
	EventQuiz        = "quiz"
	EventAchievement = "achievement"
	EventReset       = "reset"
)

// JournalEntry describes one completion event for the history log.
type JournalEntry struct {
	Type      string
	ItemKey   string
	Score     *int // quiz events only
	Points    int
	AttemptID string
}

// Journal receives completion events as they happen. Implementations are
// expected to be best-effort: a journal failure never affects the record.
type Journal interface {
	Record(ctx context.Context, entry JournalEntry)
}

// WithJournal attaches a completion journal to the engine.
func WithJournal(j Journal) Option {
	return func(e *Engine) { e.journal = j }
}
