package worker

import (
	"testing"

	"go.uber.org/atomic"
)

func TestRunWaitsForEveryJob(t *testing.T) {
	var count atomic.Int32
	jobs := make([]func(), 50)
	for i := range jobs {
		jobs[i] = func() { count.Inc() }
	}
	Run(jobs...)
	if got := count.Load(); got != 50 {
		t.Fatalf("expected 50 jobs to run, got %d", got)
	}
}
