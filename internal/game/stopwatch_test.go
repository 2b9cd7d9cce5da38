package game

import (
	"testing"
	"time"
)

func TestStopwatchLifecycle(t *testing.T) {
	now := time.Unix(0, 0)
	w := NewStopwatch(func() time.Time { return now })

	if w.Elapsed() != 0 {
		t.Fatalf("elapsed = %v before start, expected 0", w.Elapsed())
	}

	w.Start()
	now = now.Add(3 * time.Second)
	if w.Elapsed() != 3*time.Second {
		t.Fatalf("elapsed = %v while running, expected 3s", w.Elapsed())
	}

	w.Stop()
	now = now.Add(10 * time.Second)
	if w.Elapsed() != 3*time.Second {
		t.Fatalf("elapsed = %v after stop, expected frozen 3s", w.Elapsed())
	}

	// Stop on a stopped watch keeps the frozen value.
	w.Stop()
	if w.Elapsed() != 3*time.Second {
		t.Fatalf("elapsed = %v after double stop, expected 3s", w.Elapsed())
	}
}

func TestStopwatchRestart(t *testing.T) {
	now := time.Unix(0, 0)
	w := NewStopwatch(func() time.Time { return now })

	w.Start()
	now = now.Add(5 * time.Second)
	w.Start()
	now = now.Add(2 * time.Second)
	if w.Elapsed() != 2*time.Second {
		t.Fatalf("elapsed = %v after restart, expected 2s", w.Elapsed())
	}
}
