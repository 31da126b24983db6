// Package report formats engine results for the operator.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"roimark/internal/roi"
)

var titleCaser = cases.Title(language.English)

// Render returns the multi-line operator report for one engine run: a header
// naming the sample followed by one line per configured region, in declared
// order.
func Render(rep roi.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Processing complete for sample %q\n", rep.Sample)
	for _, line := range rep.Lines() {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Total files copied: %d\n", rep.CopiedTotal())
	return b.String()
}

// AnchorCaption returns the display form of an anchor name, e.g. "distal"
// becomes "Distal".
func AnchorCaption(anchor string) string {
	return titleCaser.String(strings.TrimSpace(anchor))
}

// StatusCaption returns the display form of a result status.
func StatusCaption(status roi.Status) string {
	return titleCaser.String(string(status))
}
