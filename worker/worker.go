package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	defer sentry.Recover()

	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		f()
	}
}

// Submit queues a function that may be CPU intensive, such as parsing a level file.
func Submit(f func()) {
	workerQueue <- f
}

// Run submits every job passed and blocks until all of them have returned.
func Run(jobs ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for _, job := range jobs {
		job := job
		Submit(func() {
			defer wg.Done()
			job()
		})
	}
	wg.Wait()
}
