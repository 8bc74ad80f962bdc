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
	for f := range workerQueue {
		run(f)
	}
}

// run runs a single job. A panicking job is reported to sentry and does not take the worker down with it.
func run(f func()) {
	defer sentry.Recover()
	f()
}

// To be used by a function that may be CPU intensive.
func Submit(f func()) {
	workerQueue <- f
}

// Batch runs every function passed on the worker pool and blocks until all of them returned. It must not
// be called from a job running on the pool.
func Batch(fns ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, f := range fns {
		f := f
		Submit(func() {
			defer wg.Done()
			f()
		})
	}
	wg.Wait()
}
