package report

import (
	"fmt"
	"time"

	"github.com/signintech/gopdf"

	"github.com/hmartins/secconsole/internal/model"
)

const fontName = "report"

// PDF renders the report as a single-column PDF. Requires a TTF font to be
// configured; markdown export has no such dependency.
func (g *Generator) PDF(rpt model.Report) ([]byte, error) {
	if g.fontPath == "" {
		return nil, fmt.Errorf("pdf export requires a TTF font (reports.font_path)")
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	if err := pdf.AddTTFFont(fontName, g.fontPath); err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	pdf.AddPage()

	w := pdfWriter{pdf: &pdf}
	w.heading(rpt.Title)
	w.line(fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))
	w.line(fmt.Sprintf("Report type: %s", rpt.Type))
	w.blank()

	if rpt.Content == nil {
		w.line("No content is available for this report.")
	} else {
		switch rpt.Type {
		case model.ReportScan:
			w.scanBody(rpt.Content)
		case model.ReportBaseline:
			w.baselineBody(rpt.Content)
		}
	}

	if w.err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", w.err)
	}
	return pdf.GetBytesPdf(), nil
}

// pdfWriter accumulates the first rendering error so each section can be
// written without per-line checks.
type pdfWriter struct {
	pdf *gopdf.GoPdf
	err error
}

func (w *pdfWriter) heading(text string) {
	if w.err != nil {
		return
	}
	if w.err = w.pdf.SetFont(fontName, "", 18); w.err != nil {
		return
	}
	w.err = w.pdf.Cell(nil, text)
	w.pdf.Br(28)
}

func (w *pdfWriter) section(text string) {
	if w.err != nil {
		return
	}
	w.pdf.Br(8)
	if w.err = w.pdf.SetFont(fontName, "", 14); w.err != nil {
		return
	}
	w.err = w.pdf.Cell(nil, text)
	w.pdf.Br(22)
}

func (w *pdfWriter) line(text string) {
	if w.err != nil {
		return
	}
	if w.err = w.pdf.SetFont(fontName, "", 11); w.err != nil {
		return
	}
	w.err = w.pdf.Cell(nil, text)
	w.pdf.Br(16)
}

func (w *pdfWriter) blank() {
	if w.err == nil {
		w.pdf.Br(10)
	}
}

func (w *pdfWriter) scanBody(content *model.ReportContent) {
	if scan := content.Scan; scan != nil {
		w.section("Scan")
		w.line(fmt.Sprintf("Target: %s", scan.Target))
		w.line(fmt.Sprintf("Status: %s", scan.Status))
		if scan.StartTime != nil {
			w.line(fmt.Sprintf("Started: %s", scan.StartTime.Format(time.RFC3339)))
		}
	}

	w.section("Summary")
	w.line(fmt.Sprintf("High: %d   Medium: %d   Low: %d   Total: %d",
		content.Summary.HighRiskCount, content.Summary.MediumRiskCount,
		content.Summary.LowRiskCount, content.Summary.VulnerabilitiesCount))

	w.section("Findings")
	if len(content.Results) == 0 {
		w.line("No findings were recorded for this scan.")
		return
	}
	for _, r := range content.Results {
		w.line(fmt.Sprintf("[%s] %s  %s (%s)", r.Risk, r.VulnerabilityID, r.URL, r.Parameter))
	}
}

func (w *pdfWriter) baselineBody(content *model.ReportContent) {
	if asset := content.Asset; asset != nil {
		w.section("Asset")
		w.line(fmt.Sprintf("%s (%s)", asset.Name, asset.Domain))
	}
	if baseline := content.Baseline; baseline != nil {
		w.section("Baseline")
		w.line(fmt.Sprintf("%s / %s", baseline.Name, baseline.Category))
	}

	w.section("Summary")
	w.line(fmt.Sprintf("Score: %d/100   Passed: %d of %d",
		content.Summary.Score, content.Summary.PassedItems, content.Summary.TotalItems))

	if check := content.Check; check != nil && len(check.Result) > 0 {
		w.section("Check Items")
		for _, item := range check.Result {
			result := "FAIL"
			if item.Passed {
				result = "PASS"
			}
			w.line(fmt.Sprintf("[%s] %s: %s", result, item.ItemID, item.Details))
		}
	}
}
