// Package runner orchestrates one engine run: preflight checks, the run
// lock, the copy batch itself, and history recording.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"roimark/internal/config"
	"roimark/internal/history"
	"roimark/internal/logging"
	"roimark/internal/preflight"
	"roimark/internal/roi"
	"roimark/internal/selection"
	"roimark/internal/stack"
)

// Options carries the collaborators for a run. Store may be nil when history
// recording is disabled.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	Store  *history.Store
}

// Outcome is the successful result of a run.
type Outcome struct {
	RunID     string
	Report    roi.Report
	Preflight []preflight.Result
}

// Run executes the copy batch for a completed selection. Cancellation is
// honored up to the moment copying starts; once the batch is underway it runs
// to completion or fails, and files copied before a failure stay in place.
func Run(ctx context.Context, opts Options, inputDir string, st stack.Stack, sel selection.Selection) (Outcome, error) {
	cfg := opts.Config
	runID := uuid.NewString()
	logger := logging.NewComponentLogger(opts.Logger, "runner").With(logging.String(logging.FieldRunID, runID))

	defs, err := roi.FromConfig(cfg.ROIs)
	if err != nil {
		return Outcome{}, err
	}

	outputRoot := cfg.Paths.OutputDir
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return Outcome{}, fmt.Errorf("create output root %s: %w", outputRoot, err)
	}

	checks := preflight.RunAll(inputDir, outputRoot, batchBytes(st, sel, defs, inputDir))
	if failed, ok := preflight.Failed(checks); ok {
		return Outcome{Preflight: checks}, fmt.Errorf("preflight %s failed: %s", failed.Name, failed.Detail)
	}

	lock := flock.New(filepath.Join(cfg.Paths.StateDir, "roimark.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return Outcome{Preflight: checks}, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return Outcome{Preflight: checks}, fmt.Errorf("another copy batch is already running (lock %s)", lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	if err := ctx.Err(); err != nil {
		return Outcome{Preflight: checks}, err
	}

	logger.Info("starting copy batch",
		logging.String("input", inputDir),
		logging.String("output", outputRoot),
		logging.Int("distal", sel.Distal),
		logging.Int("proximal", sel.Proximal),
		logging.Int("slices", st.Len()),
	)

	engine := roi.NewEngine(logger)
	rep, runErr := engine.Process(st, sel, inputDir, outputRoot, defs)

	recordRun(ctx, opts, logger, runID, inputDir, st, sel, rep, runErr)

	if runErr != nil {
		return Outcome{RunID: runID, Report: rep, Preflight: checks}, runErr
	}
	logger.Info("copy batch finished", logging.Int("files", rep.CopiedTotal()))
	return Outcome{RunID: runID, Report: rep, Preflight: checks}, nil
}

// recordRun persists the outcome. History failures are logged, never fatal to
// the copy itself.
func recordRun(ctx context.Context, opts Options, logger *slog.Logger, runID, inputDir string, st stack.Stack, sel selection.Selection, rep roi.Report, runErr error) {
	if opts.Store == nil {
		return
	}

	run := history.Run{
		ID:         runID,
		CreatedAt:  time.Now().UTC(),
		InputDir:   inputDir,
		OutputDir:  opts.Config.Paths.OutputDir,
		Sample:     rep.Sample,
		Distal:     sel.Distal,
		Proximal:   sel.Proximal,
		SliceCount: st.Len(),
		Status:     history.RunCompleted,
	}
	if runErr != nil {
		run.Status = history.RunFailed
		run.ErrorText = runErr.Error()
	}
	if run.Sample == "" {
		run.Sample = stack.SampleName(inputDir)
	}
	for _, result := range rep.Results {
		run.Results = append(run.Results, history.RunResult{
			ROIName: result.Name,
			Status:  string(result.Status),
			Copied:  result.Copied,
			Dest:    result.Dest,
			Reason:  result.Reason,
		})
	}

	if err := opts.Store.RecordRun(ctx, run); err != nil {
		logger.Warn("failed to record run history", logging.Error(err))
	}
}

// batchBytes estimates the total size of the files the batch will copy, for
// the free-space preflight check. Stat failures are ignored here; the copy
// itself reports them properly.
func batchBytes(st stack.Stack, sel selection.Selection, defs []roi.Definition, inputDir string) int64 {
	var total int64
	for _, def := range defs {
		rng := def.Compute(sel)
		if !rng.InBounds(st.Len()) {
			continue
		}
		for i := rng.Start; i < rng.End; i++ {
			if info, err := os.Stat(filepath.Join(inputDir, st.File(i))); err == nil {
				total += info.Size()
			}
		}
	}
	return total
}
