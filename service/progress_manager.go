package service

import (
	"os"

	"github.com/jimbeezz/pygrade/domain"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressManagerImpl renders per-batch progress bars on stderr
type ProgressManagerImpl struct {
	bars []*progressbar.ProgressBar
}

// NewProgressManager returns an interactive progress manager when enabled
// and stderr is a terminal, otherwise a no-op one
func NewProgressManager(enabled bool) domain.ProgressManager {
	if enabled && IsInteractiveEnvironment() {
		return &ProgressManagerImpl{}
	}
	return &NoOpProgressManager{}
}

// IsInteractiveEnvironment reports whether stderr is attached to a terminal.
// Progress bars are suppressed in CI and when output is redirected.
func IsInteractiveEnvironment() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// StartTask creates a progress bar sized to the file count
func (pm *ProgressManagerImpl) StartTask(description string, total int) domain.TaskProgress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(18),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
	)
	pm.bars = append(pm.bars, bar)
	return &TaskProgressImpl{bar: bar}
}

// IsInteractive returns true for the interactive manager
func (pm *ProgressManagerImpl) IsInteractive() bool {
	return true
}

// Close finishes any bars still running
func (pm *ProgressManagerImpl) Close() {
	for _, bar := range pm.bars {
		_ = bar.Finish()
	}
	pm.bars = nil
}

// TaskProgressImpl drives a single progress bar
type TaskProgressImpl struct {
	bar *progressbar.ProgressBar
}

// Increment adds n to the current progress
func (tp *TaskProgressImpl) Increment(n int) {
	_ = tp.bar.Add(n)
}

// Describe updates the bar description, typically with the current file
func (tp *TaskProgressImpl) Describe(description string) {
	tp.bar.Describe(description)
}

// Complete marks the task as finished
func (tp *TaskProgressImpl) Complete() {
	_ = tp.bar.Finish()
}

// NoOpProgressManager is used for non-interactive runs and machine output
type NoOpProgressManager struct{}

// StartTask returns a no-op task progress
func (pm *NoOpProgressManager) StartTask(_ string, _ int) domain.TaskProgress {
	return &NoOpTaskProgress{}
}

// IsInteractive returns false for no-op manager
func (pm *NoOpProgressManager) IsInteractive() bool {
	return false
}

// Close is a no-op
func (pm *NoOpProgressManager) Close() {}

// NoOpTaskProgress discards all progress updates
type NoOpTaskProgress struct{}

func (tp *NoOpTaskProgress) Increment(_ int) {}

func (tp *NoOpTaskProgress) Describe(_ string) {}

func (tp *NoOpTaskProgress) Complete() {}
