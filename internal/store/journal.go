package store

import (
	"context"
	"fmt"
	"os"

	"github.com/roeland/learntrack/internal/progress"
)

// journal adapts the completion event log to the engine's journal contract.
// Append failures are logged and dropped: the log is a convenience view,
// never a dependency of the record itself.
type journal struct {
	events EventRepo
}

// NewJournal wraps an EventRepo as a progress.Journal.
func NewJournal(events EventRepo) progress.Journal {
	return &journal{events: events}
}

func (j *journal) Record(ctx context.Context, entry progress.JournalEntry) {
	err := j.events.AppendCompletion(ctx, CompletionEventData{
		EventType:     entry.Type,
		ItemKey:       entry.ItemKey,
		Score:         entry.Score,
		PointsAwarded: entry.Points,
		AttemptID:     entry.AttemptID,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "journal completion:", err)
	}
}
