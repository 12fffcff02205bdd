package explorer

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// CycleTracker counts fetch cycle outcomes for the account feeds of a session
type CycleTracker struct {
	sessionStart time.Time
	started      int64
	merged       int64
	superseded   int64
	failed       int64
	ignored      int64
	mutex        sync.RWMutex
}

// CycleStats is a snapshot of fetch cycle outcomes
type CycleStats struct {
	Started         int64
	Merged          int64
	Superseded      int64
	Failed          int64
	IgnoredResults  int64
	SessionDuration time.Duration
}

// NewCycleTracker creates a new fetch cycle tracker
func NewCycleTracker() *CycleTracker {
	return &CycleTracker{
		sessionStart: time.Now(),
	}
}

// RecordStarted records a new fetch cycle
func (t *CycleTracker) RecordStarted() {
	t.increment(func(t *CycleTracker) { t.started++ })
}

// RecordMerged records a cycle whose two sources were merged
func (t *CycleTracker) RecordMerged() {
	t.increment(func(t *CycleTracker) { t.merged++ })
}

// RecordSuperseded records a cycle abandoned because a newer one started
func (t *CycleTracker) RecordSuperseded() {
	t.increment(func(t *CycleTracker) { t.superseded++ })
}

// RecordFailed records a cycle abandoned because a fetch failed
func (t *CycleTracker) RecordFailed() {
	t.increment(func(t *CycleTracker) { t.failed++ })
}

// RecordIgnored records a fetch result that arrived for a stale cycle
func (t *CycleTracker) RecordIgnored() {
	t.increment(func(t *CycleTracker) { t.ignored++ })
}

// increment applies a counter update; a nil tracker records nothing
func (t *CycleTracker) increment(update func(*CycleTracker)) {
	if t == nil {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	update(t)
}

// GetStats returns fetch cycle statistics for the current session
func (t *CycleTracker) GetStats() CycleStats {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return CycleStats{
		Started:         t.started,
		Merged:          t.merged,
		Superseded:      t.superseded,
		Failed:          t.failed,
		IgnoredResults:  t.ignored,
		SessionDuration: time.Since(t.sessionStart),
	}
}

// LogSessionSummary logs a summary of fetch cycle outcomes for the session
func (t *CycleTracker) LogSessionSummary() {
	stats := t.GetStats()

	log.Info().
		Int64("cycles_started", stats.Started).
		Int64("cycles_merged", stats.Merged).
		Int64("cycles_superseded", stats.Superseded).
		Int64("cycles_failed", stats.Failed).
		Int64("results_ignored", stats.IgnoredResults).
		Dur("session_duration", stats.SessionDuration).
		Msg("Fetch cycle session summary")
}
