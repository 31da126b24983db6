package roi

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"roimark/internal/fileutil"
	"roimark/internal/logging"
	"roimark/internal/selection"
	"roimark/internal/stack"
)

// skipOutOfBounds is the report reason for regions that fall outside the stack.
const skipOutOfBounds = "Region is out of image bounds"

// Engine copies region slices from an input directory into the structured
// output layout <output>/<roi name>/<sample name>/.
type Engine struct {
	logger *slog.Logger
}

// NewEngine constructs an engine. A nil logger disables logging.
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{logger: logging.NewComponentLogger(logger, "roi-engine")}
}

// Process runs every definition against the selection, in declared order, and
// returns one result per definition. Out-of-bounds regions are recorded as
// skipped and never create their destination directory. Any I/O failure
// aborts the remainder of the batch; files already copied stay in place.
func (e *Engine) Process(st stack.Stack, sel selection.Selection, inputDir, outputRoot string, defs []Definition) (Report, error) {
	sample := stack.SampleName(inputDir)
	report := Report{Sample: sample, Results: make([]Result, 0, len(defs))}

	for _, def := range defs {
		rng := def.Compute(sel)
		if !rng.InBounds(st.Len()) {
			e.logger.Warn("region out of bounds",
				logging.String("roi", def.Label()),
				logging.String("range", rng.String()),
				logging.Int("slices", st.Len()),
			)
			report.Results = append(report.Results, Result{
				Name:   def.Label(),
				Status: StatusSkipped,
				Range:  rng,
				Reason: skipOutOfBounds,
			})
			continue
		}

		dest := filepath.Join(outputRoot, def.Label(), sample)
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return report, fmt.Errorf("create region directory %s: %w", dest, err)
		}

		for i := rng.Start; i < rng.End; i++ {
			name := st.File(i)
			src := filepath.Join(inputDir, name)
			if err := fileutil.CopyFilePreserve(src, filepath.Join(dest, name)); err != nil {
				return report, fmt.Errorf("copy %s for region %s: %w", name, def.Label(), err)
			}
		}

		e.logger.Info("region copied",
			logging.String("roi", def.Label()),
			logging.String("range", rng.String()),
			logging.Int("files", rng.Width()),
			logging.String("dest", dest),
		)
		report.Results = append(report.Results, Result{
			Name:   def.Label(),
			Status: StatusCopied,
			Range:  rng,
			Copied: rng.Width(),
			Dest:   dest,
		})
	}

	return report, nil
}
