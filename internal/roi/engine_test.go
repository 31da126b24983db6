package roi

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"roimark/internal/logging"
	"roimark/internal/selection"
	"roimark/internal/stack"
)

func buildSample(t *testing.T, name string, slices int) (string, stack.Stack) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= slices; i++ {
		filename := fmt.Sprintf("slice_%03d.tif", i)
		if err := os.WriteFile(filepath.Join(dir, filename), []byte(filename), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	st, err := stack.Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, st
}

func TestEngineCopiesRegions(t *testing.T) {
	inputDir, st := buildSample(t, "Sample12 Registered", 30)
	outputRoot := t.TempDir()
	engine := NewEngine(logging.NewNop())

	defs := []Definition{
		Distal{Name: "near_distal", Skip: 2, Copy: 3},
		Proximal{Name: "near_proximal", Skip: 1, Count: 4},
	}
	sel := selection.Selection{Distal: 4, Proximal: 20}

	rep, err := engine.Process(st, sel, inputDir, outputRoot, defs)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if rep.Sample != "Sample12" {
		t.Fatalf("sample = %q, want Sample12", rep.Sample)
	}
	if len(rep.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(rep.Results))
	}

	// Distal: start = 4+2+1 = 7, end = 10 -> slices 008..010.
	distalDir := filepath.Join(outputRoot, "near_distal", "Sample12")
	for _, name := range []string{"slice_008.tif", "slice_009.tif", "slice_010.tif"} {
		content, err := os.ReadFile(filepath.Join(distalDir, name))
		if err != nil {
			t.Fatalf("missing copied slice %s: %v", name, err)
		}
		if string(content) != name {
			t.Fatalf("content mismatch for %s: %q", name, content)
		}
	}
	if rep.Results[0].Copied != 3 || rep.Results[0].Status != StatusCopied {
		t.Fatalf("distal result = %+v", rep.Results[0])
	}

	// Proximal: end = 20+1-1 = 20, start = 16 -> slices 017..020.
	proximalDir := filepath.Join(outputRoot, "near_proximal", "Sample12")
	entries, err := os.ReadDir(proximalDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("proximal dir holds %d files, want 4", len(entries))
	}
	if entries[0].Name() != "slice_017.tif" || entries[3].Name() != "slice_020.tif" {
		t.Fatalf("unexpected proximal files: %v", entries)
	}
	if rep.Results[1].Copied != 4 {
		t.Fatalf("proximal result = %+v", rep.Results[1])
	}
}

func TestEngineSkipsOutOfBoundsAndContinues(t *testing.T) {
	inputDir, st := buildSample(t, "Sample3", 20)
	outputRoot := t.TempDir()
	engine := NewEngine(logging.NewNop())

	defs := []Definition{
		Distal{Name: "too_far", Skip: 100, Copy: 10},
		Proximal{Name: "fits", Skip: 0, Count: 5},
	}
	sel := selection.Selection{Distal: 2, Proximal: 10}

	rep, err := engine.Process(st, sel, inputDir, outputRoot, defs)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(rep.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(rep.Results))
	}

	skipped := rep.Results[0]
	if skipped.Status != StatusSkipped || skipped.Reason == "" {
		t.Fatalf("expected skip with reason, got %+v", skipped)
	}
	if _, err := os.Stat(filepath.Join(outputRoot, "too_far")); !os.IsNotExist(err) {
		t.Fatal("skipped region must not create its output directory")
	}

	if rep.Results[1].Status != StatusCopied || rep.Results[1].Copied != 5 {
		t.Fatalf("later region must still copy, got %+v", rep.Results[1])
	}
}

func TestEngineNegativeStartSkipped(t *testing.T) {
	inputDir, st := buildSample(t, "Sample4", 20)
	engine := NewEngine(logging.NewNop())

	defs := []Definition{Proximal{Name: "underflow", Skip: 0, Count: 50}}
	rep, err := engine.Process(st, selection.Selection{Distal: 2, Proximal: 10}, inputDir, t.TempDir(), defs)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if rep.Results[0].Status != StatusSkipped {
		t.Fatalf("expected skip for negative start, got %+v", rep.Results[0])
	}
}

func TestEngineEmptyRangeCopiesZero(t *testing.T) {
	inputDir, st := buildSample(t, "Sample5", 10)
	outputRoot := t.TempDir()
	engine := NewEngine(logging.NewNop())

	defs := []Definition{Distal{Name: "empty", Skip: 2, Copy: 0}}
	rep, err := engine.Process(st, selection.Selection{Distal: 1, Proximal: 9}, inputDir, outputRoot, defs)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	result := rep.Results[0]
	if result.Status != StatusCopied || result.Copied != 0 {
		t.Fatalf("empty range must report zero copies, got %+v", result)
	}
	if _, err := os.Stat(filepath.Join(outputRoot, "empty", "Sample5")); err != nil {
		t.Fatalf("empty range still creates its directory: %v", err)
	}
}

func TestEngineRerunIsIdempotent(t *testing.T) {
	inputDir, st := buildSample(t, "Sample6", 10)
	outputRoot := t.TempDir()
	engine := NewEngine(logging.NewNop())

	defs := []Definition{Distal{Name: "region", Skip: 0, Copy: 3}}
	sel := selection.Selection{Distal: 1, Proximal: 8}

	if _, err := engine.Process(st, sel, inputDir, outputRoot, defs); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// An unrelated file in the destination must survive the second run.
	unrelated := filepath.Join(outputRoot, "region", "Sample6", "notes.txt")
	if err := os.WriteFile(unrelated, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := engine.Process(st, sel, inputDir, outputRoot, defs); err != nil {
		t.Fatalf("second run: %v", err)
	}
	content, err := os.ReadFile(unrelated)
	if err != nil || string(content) != "keep" {
		t.Fatalf("unrelated file not preserved: %q, %v", content, err)
	}
}

func TestEngineFatalCopyErrorAbortsBatch(t *testing.T) {
	inputDir, st := buildSample(t, "Sample7", 12)
	outputRoot := t.TempDir()
	engine := NewEngine(logging.NewNop())

	defs := []Definition{
		Distal{Name: "first", Skip: 0, Copy: 2},
		Proximal{Name: "second", Skip: 0, Count: 3},
	}
	sel := selection.Selection{Distal: 1, Proximal: 10}

	// Proximal range is [8, 11); removing one of its sources fails the copy.
	if err := os.Remove(filepath.Join(inputDir, "slice_010.tif")); err != nil {
		t.Fatal(err)
	}

	rep, err := engine.Process(st, sel, inputDir, outputRoot, defs)
	if err == nil {
		t.Fatal("expected fatal copy error")
	}

	// The first region completed before the failure and is not rolled back.
	if len(rep.Results) != 1 || rep.Results[0].Name != "first" {
		t.Fatalf("partial results = %+v", rep.Results)
	}
	if _, statErr := os.Stat(filepath.Join(outputRoot, "first", "Sample7", "slice_003.tif")); statErr != nil {
		t.Fatalf("earlier region's files must stay in place: %v", statErr)
	}
}
