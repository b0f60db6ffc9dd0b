package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/entsim/oerror"
)

// Pool is a fixed set of goroutines that run CPU intensive work.
type Pool struct {
	queue chan func()
	size  int

	closeOnce sync.Once
}

// NewPool starts a pool with the amount of workers passed. If size is not positive, one worker is started
// for every CPU.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), size), size: size}
	for i := 0; i < size; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer sentry.Recover()

	for {
		f, ok := <-p.queue
		if !ok {
			return
		}

		f()
	}
}

// Size returns the amount of workers in the pool.
func (p *Pool) Size() int {
	return p.size
}

// Submit queues a function to be run by one of the workers. It blocks while all workers are busy.
func (p *Pool) Submit(f func()) {
	p.queue <- f
}

// Run calls f for every index in [0, n) spread over the workers of the pool, and returns once all calls
// have returned. A panic in one call is recovered and reported to sentry, and does not stop the other
// calls. The error returned describes the first panic recovered, if any.
func (p *Pool) Run(n int, f func(i int)) error {
	if n <= 0 {
		return nil
	}

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	chunk := (n + p.size - 1) / p.size
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)

		wg.Add(1)
		p.Submit(func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				if err := call(f, i); err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
				}
			}
		})
	}
	wg.Wait()
	return firstErr
}

// Close stops the workers once the queued work is done. Submitting work after Close panics.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.queue)
	})
}

func call(f func(i int), i int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("worker_task", "run")
			})
			hub.Recover(r)
			err = oerror.New("task %d panicked: %v", i, r)
		}
	}()

	f(i)
	return nil
}
