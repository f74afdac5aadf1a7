package services

import (
	"errors"
	"log"
	"sync"
)

// ErrQueueStopped is returned when a mutation is submitted after shutdown.
var ErrQueueStopped = errors.New("mutation queue stopped")

// MutationQueue serializes multi-record mutations. The store has no native
// multi-record transaction, so anything that rewrites several records
// (reorders, reseeds) must run one at a time, FIFO by arrival, or concurrent
// calls would interleave partial writes and lose updates.
type MutationQueue interface {
	Start()
	Stop()
	Do(fn func() error) error
}

type mutation struct {
	fn   func() error
	done chan error
}

type mutationQueue struct {
	tasks    chan mutation
	stopChan chan struct{}
	doneChan chan struct{}
	wg       sync.WaitGroup
}

func NewMutationQueue() MutationQueue {
	return &mutationQueue{
		tasks:    make(chan mutation, 100),
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start implements MutationQueue. A single goroutine drains the queue; that
// is what makes the serialization guarantee hold.
func (q *mutationQueue) Start() {
	q.wg.Add(1)
	go q.run()
	log.Println("✅ Mutation queue started")
}

// Stop implements MutationQueue.
func (q *mutationQueue) Stop() {
	close(q.stopChan)
	q.wg.Wait()
	log.Println("✅ Mutation queue stopped")
}

// Do implements MutationQueue. It blocks until fn has run and returns fn's
// error, so callers observe the complete effect of all prior mutations.
func (q *mutationQueue) Do(fn func() error) error {
	select {
	case <-q.stopChan:
		return ErrQueueStopped
	default:
	}

	task := mutation{fn: fn, done: make(chan error, 1)}
	select {
	case q.tasks <- task:
	case <-q.stopChan:
		return ErrQueueStopped
	}

	// The enqueue can still slip in after the drain loop has exited; waiting
	// on doneChan keeps such a caller from blocking on a task nobody will run.
	select {
	case err := <-task.done:
		return err
	case <-q.doneChan:
		select {
		case err := <-task.done:
			return err
		default:
			return ErrQueueStopped
		}
	}
}

func (q *mutationQueue) run() {
	defer q.wg.Done()
	defer close(q.doneChan)
	for {
		select {
		case <-q.stopChan:
			// Drain whatever already queued so no caller blocks forever.
			for {
				select {
				case task := <-q.tasks:
					task.done <- task.fn()
				default:
					return
				}
			}
		case task := <-q.tasks:
			task.done <- task.fn()
		}
	}
}
