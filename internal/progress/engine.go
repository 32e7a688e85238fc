package progress

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roeland/learntrack/internal/catalog"
)

// Gateway is the durable storage contract for the progress record.
// Load must degrade to a default record when nothing usable is stored;
// Save failures are treated as best-effort by the engine.
type Gateway interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, rec Record) error
	Clear(ctx context.Context) error
}

// Completion describes the outcome of a mutating operation: the updated
// record plus any achievements unlocked by it.
type Completion struct {
	Record       Record
	NewlyEarned  []catalog.Achievement
	PointsEarned int
}

// Engine applies completion events to the progress record. It is the single
// in-process owner of the record; a mutex serializes mutations so no two
// events interleave.
type Engine struct {
	catalog *catalog.Catalog
	gateway Gateway
	journal Journal
	now     func() time.Time

	mu      sync.Mutex
	record  Record
	loaded  bool
	subs    []func(Record)
	pending []JournalEntry
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine over a catalog and a persistence gateway.
func NewEngine(cat *catalog.Catalog, gw Gateway, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		gateway: gw,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe registers an observer called with a copy of the record after
// every successful save.
func (e *Engine) Subscribe(fn func(Record)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// Record returns a copy of the current progress record, loading it from the
// gateway on first access.
func (e *Engine) Record(ctx context.Context) Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loadLocked(ctx)
	return e.record.Clone()
}

// CompleteVideo records that a video was watched. The operation is
// idempotent on the completion set: re-watching never re-awards points, but
// it still bumps LastActive and re-runs achievement evaluation.
func (e *Engine) CompleteVideo(ctx context.Context, courseID, chapterID, videoID string) Completion {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loadLocked(ctx)

	before := e.record.Points
	key := VideoKey(courseID, chapterID, videoID)
	if !e.record.VideoCompleted(key) {
		e.record.CompletedVideos = append(e.record.CompletedVideos, key)
		// A video missing from the catalog still counts as watched; it just
		// carries no points.
		videoPoints := 0
		if video, ok := e.catalog.Video(courseID, chapterID, videoID); ok {
			videoPoints = video.Points
			e.record.Points += videoPoints
		}
		e.record.Stats.TotalVideosWatched = len(e.record.CompletedVideos)
		e.pending = append(e.pending, JournalEntry{Type: EventVideo, ItemKey: key, Points: videoPoints})
	}

	newly := e.finishMutationLocked(ctx)
	return Completion{
		Record:       e.record.Clone(),
		NewlyEarned:  newly,
		PointsEarned: e.record.Points - before,
	}
}

// CompleteQuiz records a quiz attempt with a score in [0, 100]. The first
// completion awards the quiz's points; later attempts only ever raise the
// stored best score and never re-award.
func (e *Engine) CompleteQuiz(ctx context.Context, courseID, chapterID, quizID string, score int) Completion {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loadLocked(ctx)

	before := e.record.Points
	key := QuizKey(courseID, chapterID, quizID)
	idx := -1
	for i, q := range e.record.CompletedQuizzes {
		if q.QuizKey == key {
			idx = i
			break
		}
	}

	switch {
	case idx < 0:
		e.record.CompletedQuizzes = append(e.record.CompletedQuizzes, QuizResult{
			QuizKey:     key,
			Score:       score,
			CompletedAt: e.now(),
		})
		quizPoints := 0
		if quiz, ok := e.catalog.Quiz(quizID); ok {
			quizPoints = quiz.Points
			e.record.Points += quizPoints
		}
		e.record.Stats.TotalQuizzesPassed = len(e.record.CompletedQuizzes)
		s := score
		e.pending = append(e.pending, JournalEntry{Type: EventQuiz, ItemKey: key, Score: &s, Points: quizPoints})
	case score > e.record.CompletedQuizzes[idx].Score:
		e.record.CompletedQuizzes[idx].Score = score
		e.record.CompletedQuizzes[idx].CompletedAt = e.now()
		s := score
		e.pending = append(e.pending, JournalEntry{Type: EventQuiz, ItemKey: key, Score: &s})
	}

	newly := e.finishMutationLocked(ctx)
	return Completion{
		Record:       e.record.Clone(),
		NewlyEarned:  newly,
		PointsEarned: e.record.Points - before,
	}
}

// Reset clears stored progress and replaces the record with the default.
func (e *Engine) Reset(ctx context.Context) Record {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.gateway.Clear(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "clear progress:", err)
	}
	e.record = DefaultRecord()
	e.loaded = true
	if e.journal != nil {
		e.journal.Record(ctx, JournalEntry{Type: EventReset, AttemptID: uuid.New().String()})
	}
	e.notifyLocked()
	return e.record.Clone()
}

// IsVideoComplete reports whether a video's completion key is recorded.
func (e *Engine) IsVideoComplete(ctx context.Context, courseID, chapterID, videoID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loadLocked(ctx)
	return e.record.VideoCompleted(VideoKey(courseID, chapterID, videoID))
}

// IsQuizComplete reports whether a quiz result is recorded.
func (e *Engine) IsQuizComplete(ctx context.Context, courseID, chapterID, quizID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loadLocked(ctx)
	return e.record.QuizCompleted(QuizKey(courseID, chapterID, quizID))
}

// IsVideoUnlocked applies the unlock chain to the current record.
func (e *Engine) IsVideoUnlocked(ctx context.Context, courseID, chapterID, videoID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loadLocked(ctx)
	return VideoUnlocked(e.catalog, e.record, courseID, chapterID, videoID)
}

// IsQuizUnlocked applies the quiz's unlock requirement to the current record.
func (e *Engine) IsQuizUnlocked(ctx context.Context, quiz catalog.Quiz) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loadLocked(ctx)
	return QuizUnlocked(e.catalog, quiz, e.record)
}

// finishMutationLocked runs the shared tail of every completion event:
// refresh LastActive, recompute level, evaluate achievements, then persist
// exactly once with everything settled.
func (e *Engine) finishMutationLocked(ctx context.Context) []catalog.Achievement {
	e.record.LastActive = e.now()
	e.record.Level = LevelForPoints(e.record.Points)

	newly := e.evaluateLocked()
	if len(newly) > 0 {
		// Achievement points can push the level boundary.
		e.record.Level = LevelForPoints(e.record.Points)
		for _, a := range newly {
			e.pending = append(e.pending, JournalEntry{Type: EventAchievement, ItemKey: a.ID, Points: a.Points})
		}
	}

	e.persistLocked(ctx)
	e.flushJournalLocked(ctx)
	return newly
}

// flushJournalLocked hands accumulated entries to the journal under a single
// attempt ID, so one user action groups into one logical log unit.
func (e *Engine) flushJournalLocked(ctx context.Context) {
	entries := e.pending
	e.pending = nil
	if e.journal == nil || len(entries) == 0 {
		return
	}
	attemptID := uuid.New().String()
	for _, entry := range entries {
		entry.AttemptID = attemptID
		e.journal.Record(ctx, entry)
	}
}

// persistLocked saves the record. Storage failures are logged and swallowed;
// the in-memory record already reflects the update. Subscribers are notified
// only on successful saves.
func (e *Engine) persistLocked(ctx context.Context) {
	if err := e.gateway.Save(ctx, e.record); err != nil {
		fmt.Fprintln(os.Stderr, "save progress:", err)
		return
	}
	e.notifyLocked()
}

func (e *Engine) notifyLocked() {
	for _, fn := range e.subs {
		fn(e.record.Clone())
	}
}

func (e *Engine) loadLocked(ctx context.Context) {
	if e.loaded {
		return
	}
	rec, err := e.gateway.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load progress:", err)
		rec = DefaultRecord()
	}
	e.record = rec
	e.loaded = true
}
