// Package cleaner executes cleanup tasks for the configured log files.
// Each file is processed in list order, and one file's failure never
// stops the remaining files from being attempted.
package cleaner

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Henrik-Peters/Yalc/config"
	"github.com/Henrik-Peters/Yalc/pkg"
)

// Action describes the outcome recorded for one file task.
type Action int

const (
	// ActionNone means no mutation happened: either no condition was
	// met or the task failed before mutating anything.
	ActionNone Action = iota

	// ActionSkippedMissing means the file was absent and
	// missing_files_ok allowed the task to succeed without it.
	ActionSkippedMissing

	// ActionDryRun means a condition was met but the mutation was only
	// simulated.
	ActionDryRun

	// ActionDeleted means the file was removed (keep_rotate zero).
	ActionDeleted

	// ActionRotated means the rotation chain was shifted and the file
	// was renamed or copy-truncated.
	ActionRotated
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionSkippedMissing:
		return "skipped-missing"
	case ActionDryRun:
		return "dry-run"
	case ActionDeleted:
		return "deleted"
	case ActionRotated:
		return "rotated"
	}
	return "unknown"
}

// TaskResult records the outcome of one file cleanup task.
type TaskResult struct {
	Path   string
	Action Action
	Err    error
}

// RunReport aggregates the results of one cleanup run.
type RunReport struct {
	Tasks     []TaskResult
	Executed  int
	Succeeded int
	Failed    int
}

// SuccessRate returns the percentage of successful tasks. An empty run
// reports zero instead of dividing by zero.
func (r *RunReport) SuccessRate() int {
	if r.Executed == 0 {
		return 0
	}
	return r.Succeeded * 100 / r.Executed
}

// FailureRate returns the percentage of failed tasks, zero for an
// empty run.
func (r *RunReport) FailureRate() int {
	if r.Executed == 0 {
		return 0
	}
	return r.Failed * 100 / r.Executed
}

// Run executes the cleanup task for every file in the configured list,
// strictly in order. Per-file errors are recorded in the report and do
// not abort the run.
func Run(cfg *config.Config) *RunReport {
	report := &RunReport{}
	slog.Info("starting cleanup tasks", "files", len(cfg.FileList))

	if len(cfg.FileList) == 0 {
		slog.Info("file list is empty, nothing to do")
		return report
	}

	for idx, path := range cfg.FileList {
		taskNr := idx + 1
		slog.Info("running task", "task", taskNr, "path", path)

		action, err := runFileCleanup(path, cfg)
		report.Tasks = append(report.Tasks, TaskResult{Path: path, Action: action, Err: err})
		report.Executed++
		if err != nil {
			report.Failed++
			slog.Error("task failed", "task", taskNr, "path", path, "err", err)
		} else {
			report.Succeeded++
			slog.Info("task done", "task", taskNr, "action", action)
		}
	}

	return report
}

// runFileCleanup processes a single file: existence and type checks,
// condition evaluation, then the mutation unless dry-run is active.
func runFileCleanup(path string, cfg *config.Config) (Action, error) {
	exists, err := pkg.CheckFileExist(path)
	if err != nil {
		return ActionNone, fmt.Errorf("stat %s: %w", path, err)
	}
	if !exists {
		if cfg.MissingFilesOK {
			slog.Info("file not found, missing file is configured as okay", "path", path)
			return ActionSkippedMissing, nil
		}
		return ActionNone, fmt.Errorf("file not found %s: %w", path, os.ErrNotExist)
	}

	info, err := os.Stat(path)
	if err != nil {
		return ActionNone, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return ActionNone, fmt.Errorf("path is not a regular file: %s", path)
	}

	if !NeedsCleanup(info, cfg.Mode, cfg.Retention, time.Now()) {
		slog.Info("no cleanup conditions met", "path", path)
		return ActionNone, nil
	}

	if cfg.DryRun {
		slog.Info("dry run, would clean up file", "path", path)
		return ActionDryRun, nil
	}

	if err := RotateOrDelete(path, cfg.KeepRotate, cfg.CopyTruncate); err != nil {
		return ActionNone, err
	}
	if cfg.KeepRotate == 0 {
		return ActionDeleted, nil
	}
	return ActionRotated, nil
}
