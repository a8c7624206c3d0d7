package service

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/jimbeezz/pygrade/domain"
	"github.com/jimbeezz/pygrade/internal/config"
	"golang.org/x/sync/errgroup"
)

// Default values for the parallel executor
const (
	// DefaultMaxConcurrency is used when the config value is invalid
	DefaultMaxConcurrency = 4
	DefaultTimeout        = 5 * time.Minute
)

// FileAnalyzeFunc produces the metrics record for one file. It must be
// pure apart from reading the file, so running many in parallel is safe.
type FileAnalyzeFunc func(filePath string) domain.FileMetrics

// ParallelExecutorImpl fans file analyses out over a bounded worker pool
type ParallelExecutorImpl struct {
	maxConcurrency int
	timeout        time.Duration
}

// NewParallelExecutor creates a new parallel executor with defaults.
// Uses runtime.NumCPU() for concurrency and a 5 minute timeout.
func NewParallelExecutor() *ParallelExecutorImpl {
	return &ParallelExecutorImpl{
		maxConcurrency: runtime.NumCPU(),
		timeout:        DefaultTimeout,
	}
}

// NewParallelExecutorFromConfig creates a parallel executor from configuration
func NewParallelExecutorFromConfig(cfg *config.PerformanceConfig) *ParallelExecutorImpl {
	maxConcurrency := cfg.MaxGoroutines
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &ParallelExecutorImpl{
		maxConcurrency: maxConcurrency,
		timeout:        timeout,
	}
}

// AnalyzeFiles runs analyze over every path with bounded concurrency.
// Each result is slotted by input index, so the returned slice preserves
// discovery order exactly as a sequential run would.
func (e *ParallelExecutorImpl) AnalyzeFiles(
	ctx context.Context,
	paths []string,
	analyze FileAnalyzeFunc,
	progress domain.TaskProgress,
) ([]domain.FileMetrics, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	results := make([]domain.FileMetrics, len(paths))

	g, gCtx := errgroup.WithContext(timeoutCtx)
	g.SetLimit(e.maxConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}

			results[i] = analyze(path)
			if progress != nil {
				progress.Increment(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	return results, nil
}

// SetMaxConcurrency sets the maximum number of concurrent analyses
func (e *ParallelExecutorImpl) SetMaxConcurrency(max int) {
	if max > 0 {
		e.maxConcurrency = max
	}
}

// SetTimeout sets the timeout for a whole batch
func (e *ParallelExecutorImpl) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		e.timeout = timeout
	}
}

// roundScore rounds a score to two decimal places for reporting
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
