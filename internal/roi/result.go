package roi

import "fmt"

// Status classifies the outcome of one region in a run.
type Status string

const (
	StatusCopied  Status = "copied"
	StatusSkipped Status = "skipped"
)

// Result is the outcome for a single region: either copied with a count and
// destination, or skipped with a reason. Skips never abort the batch.
type Result struct {
	Name   string
	Status Status
	Range  Range
	Copied int
	Dest   string
	Reason string
}

// Line renders the result as one human-readable report line.
func (r Result) Line() string {
	if r.Status == StatusSkipped {
		return fmt.Sprintf("%q: Skipped (%s).", r.Name, r.Reason)
	}
	return fmt.Sprintf("%q: Copied %d files to %s", r.Name, r.Copied, r.Dest)
}

// Report aggregates one Result per configured region, in declared order.
type Report struct {
	Sample  string
	Results []Result
}

// Lines returns the per-region report lines in declared order.
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Results))
	for _, result := range r.Results {
		lines = append(lines, result.Line())
	}
	return lines
}

// CopiedTotal returns the number of files copied across all regions.
func (r Report) CopiedTotal() int {
	total := 0
	for _, result := range r.Results {
		total += result.Copied
	}
	return total
}
