package store

import (
	"context"
	"time"

	"github.com/roeland/learntrack/internal/progress"
)

// snapshotKeep is how many historical progress snapshots survive pruning.
const snapshotKeep = 20

// ProgressRepo is the durable home of the progress record. It satisfies
// progress.Gateway.
type ProgressRepo interface {
	// Load returns the most recently saved record. Absent or unreadable
	// stored data yields the default record, not an error.
	Load(ctx context.Context) (progress.Record, error)

	// Save persists the record as a new snapshot row and prunes history.
	Save(ctx context.Context, rec progress.Record) error

	// Clear removes all stored snapshots.
	Clear(ctx context.Context) error
}

// CompletionEventData captures a single completion for the event log.
type CompletionEventData struct {
	EventType     string
	ItemKey       string
	Score         *int
	PointsAwarded int
	AttemptID     string
}

// CompletionRecord is a completion event read back from the log.
type CompletionRecord struct {
	EventType     string
	ItemKey       string
	Score         *int
	PointsAwarded int
	AttemptID     string
	Sequence      int64
	Timestamp     time.Time
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// EventRepo provides append and query access to the completion event log.
type EventRepo interface {
	// AppendCompletion records a completion event.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// RecentCompletions returns events ordered newest first.
	RecentCompletions(ctx context.Context, opts QueryOpts) ([]CompletionRecord, error)
}
