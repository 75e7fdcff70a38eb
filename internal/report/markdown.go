package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/hmartins/secconsole/internal/model"
)

// Markdown renders the report as a markdown document. The layout follows
// the report type: scan reports list findings, baseline reports list check
// item outcomes.
func (g *Generator) Markdown(rpt model.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", rpt.Title))
	b.WriteString(fmt.Sprintf("**Generated:** %s  \n", time.Now().Format("January 2, 2006 15:04:05 MST")))
	b.WriteString(fmt.Sprintf("**Report type:** %s  \n\n", rpt.Type))

	if rpt.Content == nil {
		b.WriteString("No content is available for this report; the source scan or check may have been deleted.\n")
		return b.String()
	}

	switch rpt.Type {
	case model.ReportScan:
		g.writeScanSections(&b, rpt.Content)
	case model.ReportBaseline:
		g.writeBaselineSections(&b, rpt.Content)
	}
	return b.String()
}

func (g *Generator) writeScanSections(b *strings.Builder, content *model.ReportContent) {
	if scan := content.Scan; scan != nil {
		b.WriteString("## Scan\n\n")
		b.WriteString(fmt.Sprintf("**Target:** `%s`  \n", scan.Target))
		b.WriteString(fmt.Sprintf("**Status:** %s  \n", scan.Status))
		b.WriteString(fmt.Sprintf("**Depth:** %d  \n", scan.Depth))
		if scan.StartTime != nil {
			b.WriteString(fmt.Sprintf("**Started:** %s  \n", scan.StartTime.Format(time.RFC3339)))
		}
		if scan.EndTime != nil {
			b.WriteString(fmt.Sprintf("**Finished:** %s  \n", scan.EndTime.Format(time.RFC3339)))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Summary\n\n")
	b.WriteString("| Risk | Count |\n|---|---|\n")
	b.WriteString(fmt.Sprintf("| High | %d |\n", content.Summary.HighRiskCount))
	b.WriteString(fmt.Sprintf("| Medium | %d |\n", content.Summary.MediumRiskCount))
	b.WriteString(fmt.Sprintf("| Low | %d |\n", content.Summary.LowRiskCount))
	b.WriteString(fmt.Sprintf("| Total | %d |\n\n", content.Summary.VulnerabilitiesCount))

	b.WriteString("## Findings\n\n")
	if len(content.Results) == 0 {
		b.WriteString("No findings were recorded for this scan.\n\n")
		return
	}
	b.WriteString("| Risk | Vulnerability | URL | Parameter |\n|---|---|---|---|\n")
	for _, r := range content.Results {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", r.Risk, r.VulnerabilityID, r.URL, r.Parameter))
	}
	b.WriteString("\n")

	for _, r := range content.Results {
		b.WriteString(fmt.Sprintf("### %s — %s\n\n", r.VulnerabilityID, r.URL))
		if r.Description != "" {
			b.WriteString(r.Description + "\n\n")
		}
		if r.Proof != "" {
			b.WriteString(fmt.Sprintf("**Proof:** %s  \n", r.Proof))
		}
		if r.FixSuggestion != "" {
			b.WriteString(fmt.Sprintf("**Remediation:** %s  \n", r.FixSuggestion))
		}
		b.WriteString("\n")
	}
}

func (g *Generator) writeBaselineSections(b *strings.Builder, content *model.ReportContent) {
	if asset := content.Asset; asset != nil {
		b.WriteString("## Asset\n\n")
		b.WriteString(fmt.Sprintf("**Name:** %s  \n", asset.Name))
		b.WriteString(fmt.Sprintf("**Domain:** `%s`  \n", asset.Domain))
		b.WriteString(fmt.Sprintf("**Type:** %s  \n\n", asset.Type))
	}
	if baseline := content.Baseline; baseline != nil {
		b.WriteString("## Baseline\n\n")
		b.WriteString(fmt.Sprintf("**Name:** %s  \n", baseline.Name))
		b.WriteString(fmt.Sprintf("**Category:** %s  \n\n", baseline.Category))
	}

	b.WriteString("## Summary\n\n")
	b.WriteString(fmt.Sprintf("**Score:** %d/100  \n", content.Summary.Score))
	b.WriteString(fmt.Sprintf("**Passed:** %d of %d  \n", content.Summary.PassedItems, content.Summary.TotalItems))
	b.WriteString(fmt.Sprintf("**Failed:** %d  \n\n", content.Summary.FailedItems))

	if check := content.Check; check != nil && len(check.Result) > 0 {
		b.WriteString("## Check Items\n\n")
		b.WriteString("| Item | Result | Details |\n|---|---|---|\n")
		for _, item := range check.Result {
			result := "FAIL"
			if item.Passed {
				result = "PASS"
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", item.ItemID, result, item.Details))
		}
		b.WriteString("\n")
	}
}
