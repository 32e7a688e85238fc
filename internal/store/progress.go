package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/roeland/learntrack/ent"
	"github.com/roeland/learntrack/ent/progresssnapshot"
	"github.com/roeland/learntrack/internal/progress"
)

// progressRepo implements ProgressRepo over the ent client. Snapshot rows
// mirror the single-document shape of the record: the whole thing is saved
// and loaded as one JSON blob.
type progressRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ progress.Gateway = (*progressRepo)(nil)

func (r *progressRepo) Load(ctx context.Context) (progress.Record, error) {
	snap, err := r.client.ProgressSnapshot.Query().
		Order(ent.Desc(progresssnapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return progress.DefaultRecord(), nil
		}
		return progress.Record{}, fmt.Errorf("query latest snapshot: %w", err)
	}

	rec, err := recordFromMap(snap.Data)
	if err != nil {
		// Unreadable stored data is treated as absent.
		fmt.Fprintln(os.Stderr, "stored progress unreadable, using default:", err)
		return progress.DefaultRecord(), nil
	}
	return rec, nil
}

func (r *progressRepo) Save(ctx context.Context, rec progress.Record) error {
	data, err := recordToMap(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProgressSnapshot.Create().
		SetSequence(seqNum).
		SetTimestamp(time.Now()).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return r.prune(ctx, snapshotKeep)
}

func (r *progressRepo) Clear(ctx context.Context) error {
	_, err := r.client.ProgressSnapshot.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear snapshots: %w", err)
	}
	return nil
}

// prune deletes all but the keep most recent snapshots.
func (r *progressRepo) prune(ctx context.Context, keep int) error {
	snapshots, err := r.client.ProgressSnapshot.Query().
		Order(ent.Desc(progresssnapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Sequence
	_, err = r.client.ProgressSnapshot.Delete().
		Where(progresssnapshot.SequenceLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// recordToMap converts a record to map[string]any for ent JSON storage.
func recordToMap(rec progress.Record) (map[string]any, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// recordFromMap converts stored JSON back to a record.
func recordFromMap(m map[string]any) (progress.Record, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return progress.Record{}, fmt.Errorf("marshal stored data: %w", err)
	}
	var rec progress.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return progress.Record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	// Stored documents may predate some collections; keep them non-nil so
	// the engine can append without nil checks.
	if rec.CompletedVideos == nil {
		rec.CompletedVideos = []string{}
	}
	if rec.CompletedQuizzes == nil {
		rec.CompletedQuizzes = []progress.QuizResult{}
	}
	if rec.EarnedAchievements == nil {
		rec.EarnedAchievements = []string{}
	}
	if rec.Level < 1 {
		rec.Level = progress.LevelForPoints(rec.Points)
	}
	return rec, nil
}
