package workers

import (
	"context"
	"testing"
	"time"
)

func TestJobExpiryWorker_StopsOnCancel(t *testing.T) {
	w := NewJobExpiryWorker(nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.loop(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestNewJobExpiryWorker_DefaultInterval(t *testing.T) {
	w := NewJobExpiryWorker(nil, nil, 0)
	if w.interval != time.Hour {
		t.Fatalf("interval = %v, want 1h", w.interval)
	}
}
