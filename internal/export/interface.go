package export

import (
	"fmt"
	"io"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// Exporter renders a report in one output format.
type Exporter interface {
	Export(report *domain.Report, w io.Writer) error
	Extension() string
}

// NewExporter creates an exporter for the given format name.
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "pdf":
		return &PDFExporter{}, nil
	case "csv":
		return &CSVExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: pdf, csv, json, yaml, md)", format)
	}
}
