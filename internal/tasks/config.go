package tasks

import (
	"path/filepath"
	"strings"
	"time"
)

// Config holds configuration for the background task queue.
type Config struct {
	// DatabasePath is the SQLite file backing the queue.
	DatabasePath string

	// Workers is the number of concurrent task workers. Default: 1
	Workers int

	// TaskTimeout bounds a single deck refresh; pass it to NewRefreshDeckQueue. Default: 2m
	TaskTimeout time.Duration

	// ReleaseAfter is when stuck tasks are released back to the queue. Default: 5m
	ReleaseAfter time.Duration

	// CleanupInterval is how often finished tasks are purged. Default: 1h
	CleanupInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Workers:         1,
		TaskTimeout:     2 * time.Minute,
		ReleaseAfter:    5 * time.Minute,
		CleanupInterval: time.Hour,
	}
}

// TasksDatabasePath derives the queue database path from another SQLite file
// by adding a "-tasks" suffix, keeping both side by side.
func TasksDatabasePath(mainDBPath string) string {
	ext := filepath.Ext(mainDBPath)
	return strings.TrimSuffix(mainDBPath, ext) + "-tasks" + ext
}
