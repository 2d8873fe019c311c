package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/lexicard/internal/entities"
	"github.com/mrlokans/lexicard/internal/exporters"
	"github.com/mrlokans/lexicard/internal/stores"
)

// DeckLoader is the word store seen from the refresh task.
type DeckLoader interface {
	FetchDeck(ctx context.Context) error
	Snapshot() stores.WordState
}

// RefreshDeckTask reloads the review deck and, when an exporter is
// configured, writes it out.
type RefreshDeckTask struct {
	Reason string `json:"reason"`
}

const (
	// DefaultRefreshDeckTimeout bounds one refresh when no timeout is configured.
	DefaultRefreshDeckTimeout = 2 * time.Minute

	// maxRefreshDeckTimeout is the queue level ceiling. backlite reads the
	// queue config from the zero task, so per-queue timeouts are applied by
	// the processor instead.
	maxRefreshDeckTimeout = 30 * time.Minute
)

func (t RefreshDeckTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name: "refresh_deck",
		// requests to the word service are never retried
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     maxRefreshDeckTimeout,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// RefreshDeckProcessor loads the deck through loader, giving up after
// timeout. writer may be nil. A non-positive timeout means
// DefaultRefreshDeckTimeout.
func RefreshDeckProcessor(loader DeckLoader, writer exporters.DeckWriter, timeout time.Duration) backlite.QueueProcessor[RefreshDeckTask] {
	if timeout <= 0 {
		timeout = DefaultRefreshDeckTimeout
	}
	timeout = min(timeout, maxRefreshDeckTimeout)

	return func(ctx context.Context, task RefreshDeckTask) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if err := loader.FetchDeck(ctx); err != nil {
			return fmt.Errorf("refresh deck (%s): %w", task.Reason, err)
		}

		deck := loader.Snapshot().Deck
		log.Printf("[TASK] Refreshed deck (%s): %d words, %d hard or medium", task.Reason, len(deck), hardOrMedium(deck))

		if writer == nil {
			return nil
		}
		result, err := writer.Export(deck)
		if err != nil {
			return fmt.Errorf("export deck: %w", err)
		}
		log.Printf("[TASK] Exported %d words (%d failed)", result.WordsProcessed, result.WordsFailed)
		return nil
	}
}

func NewRefreshDeckQueue(loader DeckLoader, writer exporters.DeckWriter, timeout time.Duration) backlite.Queue {
	return backlite.NewQueue(RefreshDeckProcessor(loader, writer, timeout))
}

// hardOrMedium counts the words a review session would focus on.
func hardOrMedium(deck []entities.Word) int {
	n := 0
	for _, w := range deck {
		if w.Level == entities.LevelHard || w.Level == entities.LevelMedium {
			n++
		}
	}
	return n
}
