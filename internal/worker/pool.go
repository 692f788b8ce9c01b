// worker/pool.go
package worker

import "sync"

type Job[T any] func() T

type Result[T any] struct {
	JobID  string
	Output T
}

// Pool runs submitted jobs on a fixed number of goroutines. Results arrive
// in completion order; Results is closed once Close has been called and
// every submitted job has finished.
type Pool[T any] struct {
	jobs    chan jobWrapper[T]
	results chan Result[T]

	wg        sync.WaitGroup
	closeOnce sync.Once
}

type jobWrapper[T any] struct {
	id string
	fn Job[T]
}

func NewPool[T any](workerCount int, bufferSize int) *Pool[T] {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &Pool[T]{
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}
	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		output := job.fn()
		p.results <- Result[T]{
			JobID:  job.id,
			Output: output,
		}
	}
}

// Submit queues a job. It blocks while the job buffer is full and must not
// be called after Close.
func (p *Pool[T]) Submit(id string, fn Job[T]) {
	p.jobs <- jobWrapper[T]{id: id, fn: fn}
}

// Close stops accepting jobs. Safe to call more than once.
func (p *Pool[T]) Close() {
	p.closeOnce.Do(func() { close(p.jobs) })
}

func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}
