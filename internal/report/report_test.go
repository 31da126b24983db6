package report

import (
	"strings"
	"testing"

	"roimark/internal/roi"
)

func TestRenderListsEveryRegionInOrder(t *testing.T) {
	rep := roi.Report{
		Sample: "Sample12",
		Results: []roi.Result{
			{Name: "50-100_distal_TF", Status: roi.StatusCopied, Copied: 50, Dest: "/out/50-100_distal_TF/Sample12"},
			{Name: "450-500_distal_TF", Status: roi.StatusSkipped, Reason: "Region is out of image bounds"},
			{Name: "0-300_proximal_TF", Status: roi.StatusCopied, Copied: 300, Dest: "/out/0-300_proximal_TF/Sample12"},
		},
	}

	text := Render(rep)
	if !strings.Contains(text, `sample "Sample12"`) {
		t.Fatalf("missing sample header:\n%s", text)
	}
	if !strings.Contains(text, "Total files copied: 350") {
		t.Fatalf("missing total line:\n%s", text)
	}

	first := strings.Index(text, "50-100_distal_TF")
	second := strings.Index(text, "450-500_distal_TF")
	third := strings.Index(text, "0-300_proximal_TF")
	if first < 0 || second < 0 || third < 0 {
		t.Fatalf("missing region line:\n%s", text)
	}
	if !(first < second && second < third) {
		t.Fatalf("regions out of declared order:\n%s", text)
	}
	if !strings.Contains(text, "Skipped (Region is out of image bounds)") {
		t.Fatalf("missing skip reason:\n%s", text)
	}
}

func TestAnchorCaption(t *testing.T) {
	if got := AnchorCaption("distal"); got != "Distal" {
		t.Fatalf("AnchorCaption(distal) = %q", got)
	}
	if got := AnchorCaption(" proximal "); got != "Proximal" {
		t.Fatalf("AnchorCaption(proximal) = %q", got)
	}
}

func TestStatusCaption(t *testing.T) {
	if got := StatusCaption(roi.StatusCopied); got != "Copied" {
		t.Fatalf("StatusCaption(copied) = %q", got)
	}
}
