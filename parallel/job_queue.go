package parallel

import (
	"errors"
	"fmt"
	"sync"
)

// CreateJobQueue starts poolSize workers consuming a queue of queueSize
// pending jobs. Add blocks while the queue is full.
func CreateJobQueue(queueSize int, poolSize int) *JobQueue {
	if poolSize < 1 {
		poolSize = 1
	}

	queue := &JobQueue{
		jobsChannel: make(chan func() error, queueSize),
		waitGroup:   &sync.WaitGroup{},
	}

	for i := 1; i <= poolSize; i++ {
		go queue.worker()
	}
	return queue
}

type JobQueue struct {
	jobsChannel chan func() error
	waitGroup   *sync.WaitGroup
	errorsLock  sync.Mutex
	errors      []error
}

func (queue *JobQueue) Add(function func() error) error {
	if function == nil {
		return fmt.Errorf("nil function")
	}

	queue.waitGroup.Add(1)
	queue.jobsChannel <- function
	return nil
}

// Wait blocks until every added job has run and returns the errors they
// reported, joined in completion order.
func (queue *JobQueue) Wait() error {
	queue.waitGroup.Wait()
	queue.errorsLock.Lock()
	defer queue.errorsLock.Unlock()
	return errors.Join(queue.errors...)
}

func (queue *JobQueue) Close() {
	close(queue.jobsChannel)
}

func (queue *JobQueue) worker() {
	for job := range queue.jobsChannel {
		if err := job(); err != nil {
			queue.errorsLock.Lock()
			queue.errors = append(queue.errors, err)
			queue.errorsLock.Unlock()
		}
		queue.waitGroup.Done()
	}
}
