package explorer

import (
	"sync"

	"mina_explorer/internal/app"
	"mina_explorer/internal/domain/feed"

	"github.com/rs/zerolog/log"
)

// AccountFeed joins the two transaction fetches of an account page, the
// transactions sent from the account and those sent to it, and merges them
// once both have resolved for the latest fetch cycle.
//
// Results belonging to a superseded cycle are dropped, as is every result of
// a cycle in which either fetch failed. Resolve and Fail may be called from
// the goroutines performing the fetches.
type AccountFeed struct {
	publicKey string
	tracker   *CycleTracker

	mutex   sync.Mutex
	cycle   uint64
	from    []*app.Transaction
	to      []*app.Transaction
	gotFrom bool
	gotTo   bool
	done    bool // merged or failed
}

// NewAccountFeed creates a feed for publicKey. tracker may be nil.
func NewAccountFeed(publicKey string, tracker *CycleTracker) *AccountFeed {
	return &AccountFeed{
		publicKey: publicKey,
		tracker:   tracker,
	}
}

// Begin starts a new fetch cycle and returns its id.
// An unfinished earlier cycle is superseded.
func (f *AccountFeed) Begin() uint64 {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.cycle > 0 && !f.done {
		f.tracker.RecordSuperseded()
		log.Debug().
			Str("public_key", f.publicKey).
			Uint64("cycle", f.cycle).
			Msg("Fetch cycle superseded")
	}

	f.cycle++
	f.from, f.to = nil, nil
	f.gotFrom, f.gotTo, f.done = false, false, false
	f.tracker.RecordStarted()

	return f.cycle
}

// ResolveFrom delivers the "sent from" transactions of a cycle. It returns the
// merged feed and true when this completes the cycle.
func (f *AccountFeed) ResolveFrom(cycle uint64, slots []*app.Transaction) ([]app.Transaction, bool) {
	return f.resolve(cycle, slots, true)
}

// ResolveTo delivers the "sent to" transactions of a cycle. It returns the
// merged feed and true when this completes the cycle.
func (f *AccountFeed) ResolveTo(cycle uint64, slots []*app.Transaction) ([]app.Transaction, bool) {
	return f.resolve(cycle, slots, false)
}

// Fail abandons a cycle after one of its fetches failed.
func (f *AccountFeed) Fail(cycle uint64, err error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if cycle != f.cycle || f.done {
		f.tracker.RecordIgnored()
		return
	}

	f.done = true
	f.from, f.to = nil, nil
	f.tracker.RecordFailed()

	log.Warn().
		Err(err).
		Str("public_key", f.publicKey).
		Uint64("cycle", cycle).
		Msg("Fetch cycle failed; keeping previous feed")
}

func (f *AccountFeed) resolve(cycle uint64, slots []*app.Transaction, fromSide bool) ([]app.Transaction, bool) {
	f.mutex.Lock()

	if cycle != f.cycle || f.done {
		latest := f.cycle
		f.mutex.Unlock()
		f.tracker.RecordIgnored()
		log.Debug().
			Str("public_key", f.publicKey).
			Uint64("cycle", cycle).
			Uint64("latest_cycle", latest).
			Msg("Ignoring result for stale fetch cycle")
		return nil, false
	}

	if fromSide {
		f.from, f.gotFrom = slots, true
	} else {
		f.to, f.gotTo = slots, true
	}

	if !f.gotFrom || !f.gotTo {
		f.mutex.Unlock()
		return nil, false
	}

	from, to := f.from, f.to
	f.from, f.to = nil, nil
	f.done = true
	f.mutex.Unlock()

	merged := feed.Merge(from, to, TransactionTime)
	f.tracker.RecordMerged()

	log.Debug().
		Str("public_key", f.publicKey).
		Uint64("cycle", cycle).
		Int("from", feed.CountPresent(from)).
		Int("to", feed.CountPresent(to)).
		Int("merged", len(merged)).
		Msg("Account feed merged")

	return merged, true
}
