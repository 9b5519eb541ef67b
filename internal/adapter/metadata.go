package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

type metadataExporter struct{}

// NewMetadataExporter creates the YAML sidecar exporter: run metadata, the
// normalized parameters, and the clone table, but not the mutation records.
func NewMetadataExporter() Exporter {
	return &metadataExporter{}
}

func (e *metadataExporter) Name() string {
	return "metadata"
}

// runDescriptor is the sidecar document layout.
type runDescriptor struct {
	Metadata   m.Metadata        `yaml:"metadata"`
	Parameters m.Scenario        `yaml:"parameters"`
	Clones     []m.CloneTableRow `yaml:"clones"`
	Purity     float64           `yaml:"purity"`
	Mutations  int               `yaml:"mutation_count"`
}

func (e *metadataExporter) Export(ctx context.Context, result m.SimulationResult, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := runDescriptor{
		Metadata:   result.Metadata,
		Parameters: result.Params,
		Clones:     result.CloneTable,
		Purity:     result.Params.Clones().Purity(),
		Mutations:  len(result.Records),
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal run metadata: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Debug("wrote metadata export", "path", path)

	return nil
}
