package store

import (
	"context"
	"fmt"

	"github.com/roeland/learntrack/ent"
	"github.com/roeland/learntrack/ent/completionevent"
)

// eventRepo implements EventRepo over the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetEventType(data.EventType).
		SetItemKey(data.ItemKey).
		SetPointsAwarded(data.PointsAwarded).
		SetAttemptID(data.AttemptID)

	if data.Score != nil {
		builder = builder.SetScore(*data.Score)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentCompletions(ctx context.Context, opts QueryOpts) ([]CompletionRecord, error) {
	query := r.client.CompletionEvent.Query().
		Order(ent.Desc(completionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(completionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(completionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(completionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(completionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}

	records := make([]CompletionRecord, len(events))
	for i, e := range events {
		records[i] = CompletionRecord{
			EventType:     e.EventType,
			ItemKey:       e.ItemKey,
			Score:         e.Score,
			PointsAwarded: e.PointsAwarded,
			AttemptID:     e.AttemptID,
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
		}
	}
	return records, nil
}
