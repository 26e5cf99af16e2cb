package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	apperrors "taskflow.com/taskflow/internal/errors"
	"taskflow.com/taskflow/internal/queue"
)

// ConsumerService is the worker side of the notification queue: a
// dispatcher polls the queue and hands status-update jobs to a pool
// of workers that write the status back onto the stored task.
type ConsumerService struct {
	consumer     queue.Consumer
	tasks        *TaskService
	jobs         chan queue.StatusUpdate
	pollInterval time.Duration
	wg           sync.WaitGroup
	dispatcherWG sync.WaitGroup
	stop         chan struct{}
}

func NewConsumerService(
	consumer queue.Consumer,
	tasks *TaskService,
	workers int,
	pollInterval time.Duration,
) *ConsumerService {
	c := &ConsumerService{
		consumer:     consumer,
		tasks:        tasks,
		jobs:         make(chan queue.StatusUpdate, workers),
		pollInterval: pollInterval,
		stop:         make(chan struct{}),
	}

	c.dispatcherWG.Add(1)
	go c.dispatchLoop()

	for i := 1; i <= workers; i++ {
		c.wg.Add(1)
		go c.worker(i)
	}

	return c
}

func (c *ConsumerService) dispatchLoop() {
	defer c.dispatcherWG.Done()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.drainOnce()
		case <-c.stop:
			return
		}
	}
}

// drainOnce pops jobs until the queue reports empty, so a burst of
// notifications does not wait a poll interval per job.
func (c *ConsumerService) drainOnce() {
	ctx := context.Background()

	for {
		update, err := c.consumer.Pop(ctx)
		if err != nil {
			if !errors.Is(err, queue.ErrQueueEmpty) {
				log.Printf("consumer: failed to pop status update: %v", err)
			}
			return
		}

		select {
		case c.jobs <- *update:
		case <-c.stop:
			return
		}
	}
}

func (c *ConsumerService) worker(workerID int) {
	defer c.wg.Done()

	log.Printf("consumer worker %d started", workerID)

	for update := range c.jobs {
		c.handleUpdate(workerID, update)
	}

	log.Printf("consumer worker %d stopped", workerID)
}

func (c *ConsumerService) handleUpdate(workerID int, update queue.StatusUpdate) {
	ctx := context.Background()

	if err := c.tasks.UpdateStatus(ctx, update.TaskID, update.Status); err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			// The task was deleted after the job was queued; the job
			// is dropped.
			log.Printf("consumer worker %d: task %s no longer exists", workerID, update.TaskID)
			return
		}
		log.Printf("consumer worker %d: failed to apply status update for task %s: %v", workerID, update.TaskID, err)
		return
	}

	log.Printf("consumer worker %d applied status %s to task %s", workerID, update.Status, update.TaskID)
}

func (c *ConsumerService) Shutdown(ctx context.Context) {
	close(c.stop)
	c.dispatcherWG.Wait()
	close(c.jobs)

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("consumer pool shut down cleanly")
	case <-ctx.Done():
		log.Println("consumer pool shutdown timed out")
	}
}
