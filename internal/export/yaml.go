package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// YAMLExporter renders the report as YAML.
type YAMLExporter struct{}

func (e *YAMLExporter) Export(report *domain.Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	return enc.Encode(buildDoc(report))
}

func (e *YAMLExporter) Extension() string {
	return "yaml"
}
