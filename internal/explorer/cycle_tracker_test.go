package explorer

import (
	"sync"
	"testing"
)

func TestCycleTracker(t *testing.T) {
	tracker := NewCycleTracker()

	tracker.RecordStarted()
	tracker.RecordStarted()
	tracker.RecordMerged()
	tracker.RecordSuperseded()
	tracker.RecordFailed()
	tracker.RecordIgnored()
	tracker.RecordIgnored()

	stats := tracker.GetStats()

	if stats.Started != 2 {
		t.Errorf("Expected 2 started, got %d", stats.Started)
	}
	if stats.Merged != 1 {
		t.Errorf("Expected 1 merged, got %d", stats.Merged)
	}
	if stats.Superseded != 1 {
		t.Errorf("Expected 1 superseded, got %d", stats.Superseded)
	}
	if stats.Failed != 1 {
		t.Errorf("Expected 1 failed, got %d", stats.Failed)
	}
	if stats.IgnoredResults != 2 {
		t.Errorf("Expected 2 ignored, got %d", stats.IgnoredResults)
	}
	if stats.SessionDuration < 0 {
		t.Errorf("Expected non-negative session duration, got %v", stats.SessionDuration)
	}

	// Should not panic
	tracker.LogSessionSummary()
}

func TestNilCycleTracker(t *testing.T) {
	var tracker *CycleTracker

	// Recording on a nil tracker is a no-op
	tracker.RecordStarted()
	tracker.RecordMerged()
	tracker.RecordSuperseded()
	tracker.RecordFailed()
	tracker.RecordIgnored()
}

func TestCycleTrackerConcurrent(t *testing.T) {
	tracker := NewCycleTracker()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.RecordStarted()
			tracker.RecordMerged()
		}()
	}
	wg.Wait()

	stats := tracker.GetStats()
	if stats.Started != 100 || stats.Merged != 100 {
		t.Errorf("Expected 100 started and merged, got %+v", stats)
	}
}
