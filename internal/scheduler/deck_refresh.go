package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/lexicard/internal/tasks"
)

// Enqueuer is the task queue the scheduler hands refreshes to.
type Enqueuer interface {
	Enqueue(ctx context.Context, tasks ...backlite.Task) ([]string, error)
}

// DeckRefreshScheduler periodically enqueues a deck refresh.
type DeckRefreshScheduler struct {
	queue    Enqueuer
	schedule string

	cron       *cron.Cron
	mu         sync.Mutex
	isRunning  bool
	cancelFunc context.CancelFunc

	// separate from mu: Stop holds mu while jobs finish
	idMu       sync.Mutex
	lastTaskID string
}

func NewDeckRefreshScheduler(queue Enqueuer, schedule string) *DeckRefreshScheduler {
	return &DeckRefreshScheduler{
		queue:    queue,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(parser)),
	}
}

// Start schedules the refresh job and stops it again when ctx is done.
func (s *DeckRefreshScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	if _, err := s.cron.AddFunc(s.schedule, func() { s.enqueue(runCtx, "scheduled") }); err != nil {
		cancel()
		return fmt.Errorf("failed to schedule deck refresh: %w", err)
	}
	s.cancelFunc = cancel
	s.cron.Start()
	s.isRunning = true

	next, _ := NextRun(s.schedule, time.Now())
	log.Printf("[SCHEDULER] Deck refresh started with schedule '%s' (%s). Next run: %v",
		s.schedule, Describe(s.schedule), next)

	go func() {
		<-runCtx.Done()
		s.Stop()
	}()
	return nil
}

// Stop waits for a running enqueue to finish. Safe to call more than once.
func (s *DeckRefreshScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.cancelFunc()
	s.isRunning = false
	log.Printf("[SCHEDULER] Deck refresh stopped")
}

// RunNow enqueues a refresh immediately.
func (s *DeckRefreshScheduler) RunNow(ctx context.Context) (string, error) {
	return s.enqueue(ctx, "manual")
}

func (s *DeckRefreshScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

func (s *DeckRefreshScheduler) LastTaskID() string {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	return s.lastTaskID
}

func (s *DeckRefreshScheduler) enqueue(ctx context.Context, reason string) (string, error) {
	ids, err := s.queue.Enqueue(ctx, tasks.RefreshDeckTask{Reason: reason})
	if err != nil {
		log.Printf("[SCHEDULER] Failed to enqueue deck refresh: %v", err)
		return "", err
	}

	var id string
	if len(ids) > 0 {
		id = ids[0]
	}
	s.idMu.Lock()
	s.lastTaskID = id
	s.idMu.Unlock()
	return id, nil
}
