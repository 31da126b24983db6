package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"roimark/internal/config"
	"roimark/internal/history"
	"roimark/internal/logging"
	"roimark/internal/selection"
	"roimark/internal/stack"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.ROIs = []config.ROI{
		{Name: "forward", Anchor: config.AnchorDistal, Skip: 1, Copy: 2},
		{Name: "backward", Anchor: config.AnchorProximal, Skip: 0, Count: 3},
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	return &cfg
}

func buildInput(t *testing.T, slices int) (string, stack.Stack) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "Sample9 Registered")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= slices; i++ {
		name := fmt.Sprintf("slice_%03d.tif", i)
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	st, err := stack.Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, st
}

func TestRunCopiesAndReports(t *testing.T) {
	cfg := testConfig(t)
	inputDir, st := buildInput(t, 30)

	outcome, err := Run(context.Background(), Options{Config: cfg, Logger: logging.NewNop()},
		inputDir, st, selection.Selection{Distal: 4, Proximal: 20})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if outcome.RunID == "" {
		t.Fatal("expected a run id")
	}
	if outcome.Report.Sample != "Sample9" {
		t.Fatalf("sample = %q", outcome.Report.Sample)
	}
	if len(outcome.Report.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(outcome.Report.Results))
	}
	if outcome.Report.CopiedTotal() != 5 {
		t.Fatalf("copied %d files, want 5", outcome.Report.CopiedTotal())
	}

	// Distal: start = 4+1+1 = 6, end = 8 -> slice_007, slice_008.
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, "forward", "Sample9", "slice_007.tif")); err != nil {
		t.Fatalf("missing copied file: %v", err)
	}
	if len(outcome.Preflight) == 0 {
		t.Fatal("expected preflight results")
	}
}

func TestRunRecordsHistory(t *testing.T) {
	cfg := testConfig(t)
	inputDir, st := buildInput(t, 30)

	store, err := history.Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	outcome, err := Run(context.Background(), Options{Config: cfg, Logger: logging.NewNop(), Store: store},
		inputDir, st, selection.Selection{Distal: 4, Proximal: 20})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	run, err := store.GetRun(context.Background(), outcome.RunID)
	if err != nil {
		t.Fatalf("run not recorded: %v", err)
	}
	if run.Status != history.RunCompleted {
		t.Fatalf("run status = %q", run.Status)
	}
	if run.Sample != "Sample9" || run.Distal != 4 || run.Proximal != 20 {
		t.Fatalf("recorded run = %+v", run)
	}
	if len(run.Results) != 2 {
		t.Fatalf("recorded %d results, want 2", len(run.Results))
	}
}

func TestRunFailsPreflightForMissingInput(t *testing.T) {
	cfg := testConfig(t)
	_, st := buildInput(t, 10)
	missing := filepath.Join(t.TempDir(), "gone")

	_, err := Run(context.Background(), Options{Config: cfg, Logger: logging.NewNop()},
		missing, st, selection.Selection{Distal: 1, Proximal: 5})
	if err == nil {
		t.Fatal("expected preflight failure for missing input directory")
	}
}

func TestRunRecordsFailure(t *testing.T) {
	cfg := testConfig(t)
	inputDir, st := buildInput(t, 30)

	store, err := history.Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	// Remove a slice of the proximal region [18, 21) after scanning so the
	// copy fails mid-batch.
	if err := os.Remove(filepath.Join(inputDir, "slice_020.tif")); err != nil {
		t.Fatal(err)
	}

	outcome, runErr := Run(context.Background(), Options{Config: cfg, Logger: logging.NewNop(), Store: store},
		inputDir, st, selection.Selection{Distal: 4, Proximal: 20})
	if runErr == nil {
		t.Fatal("expected copy failure")
	}

	run, err := store.GetRun(context.Background(), outcome.RunID)
	if err != nil {
		t.Fatalf("failed run not recorded: %v", err)
	}
	if run.Status != history.RunFailed {
		t.Fatalf("run status = %q, want failed", run.Status)
	}
	if run.ErrorText == "" {
		t.Fatal("failed run must record the error")
	}
}
