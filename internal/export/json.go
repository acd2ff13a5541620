package export

import (
	"encoding/json"
	"io"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// JSONExporter renders the report as pretty-printed JSON.
type JSONExporter struct{}

func (e *JSONExporter) Export(report *domain.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildDoc(report))
}

func (e *JSONExporter) Extension() string {
	return "json"
}
