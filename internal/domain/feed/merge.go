// Package feed merges independently fetched record collections into one
// time-ordered feed.
package feed

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"
)

// TimestampFunc extracts the ordering timestamp of a record.
// It reports false when the record has no timestamp.
type TimestampFunc[T any] func(T) (time.Time, bool)

type timedRecord[T any] struct {
	record T
	at     time.Time
	ok     bool
}

// Merge combines two nullable record collections into one feed ordered newest first.
//
// Absent slots (nil) are dropped. Records present in both sources are kept
// twice: each source is a distinct facet of the same event (a self-transfer is
// both sent and received). Records without a timestamp sort after all timed
// records and keep their relative order. An accessor that panics is treated as
// reporting no timestamp.
//
// Pure function: Does not modify the inputs, returns a new slice
func Merge[T any](sourceA, sourceB []*T, timestampOf TimestampFunc[T]) []T {
	timed := make([]timedRecord[T], 0, CountPresent(sourceA)+CountPresent(sourceB))

	for _, source := range [][]*T{sourceA, sourceB} {
		for _, slot := range source {
			if slot == nil {
				continue
			}
			at, ok := safeTimestamp(timestampOf, *slot)
			timed = append(timed, timedRecord[T]{record: *slot, at: at, ok: ok})
		}
	}

	sort.SliceStable(timed, func(i, j int) bool {
		return newerFirst(timed[i], timed[j])
	})

	merged := make([]T, len(timed))
	for i, tr := range timed {
		merged[i] = tr.record
	}

	log.Debug().
		Int("source_a", len(sourceA)).
		Int("source_b", len(sourceB)).
		Int("merged", len(merged)).
		Msg("Merged record sources")

	return merged
}

// CountPresent returns the number of non-nil slots
func CountPresent[T any](slots []*T) int {
	count := 0
	for _, slot := range slots {
		if slot != nil {
			count++
		}
	}
	return count
}

// newerFirst orders timed records before untimed ones, and newer before older.
func newerFirst[T any](a, b timedRecord[T]) bool {
	switch {
	case a.ok && b.ok:
		return a.at.After(b.at)
	case a.ok:
		return true
	default:
		return false
	}
}

func safeTimestamp[T any](timestampOf TimestampFunc[T], record T) (at time.Time, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().
				Interface("panic", r).
				Msg("Timestamp accessor failed; ordering record last")
			at, ok = time.Time{}, false
		}
	}()
	return timestampOf(record)
}
