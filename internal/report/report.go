// Package report renders a console report's content projection into a
// downloadable document.
package report

import (
	"fmt"
	"strings"

	"github.com/hmartins/secconsole/internal/model"
)

type Generator struct {
	// fontPath points at a TTF font used for PDF rendering. Markdown
	// export works without it.
	fontPath string
}

func NewGenerator(fontPath string) *Generator {
	return &Generator{fontPath: fontPath}
}

// Export renders the report in the requested format. The report must carry
// its content projection (reports.getById provides it).
func (g *Generator) Export(rpt model.Report, format string) (model.ExportedReport, error) {
	switch strings.ToLower(format) {
	case "", "markdown", "md":
		content := g.Markdown(rpt)
		return model.ExportedReport{
			Filename:    fmt.Sprintf("report-%d.md", rpt.ID),
			ContentType: "text/markdown",
			Data:        []byte(content),
		}, nil
	case "pdf":
		data, err := g.PDF(rpt)
		if err != nil {
			return model.ExportedReport{}, err
		}
		return model.ExportedReport{
			Filename:    fmt.Sprintf("report-%d.pdf", rpt.ID),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return model.ExportedReport{}, fmt.Errorf("unsupported export format %q", format)
	}
}
