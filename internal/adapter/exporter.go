// Package adapter provides exporters that turn a simulation result into the
// file formats consumed by downstream variant callers and deconvolution
// tools. Every exporter treats the result as read-only.
package adapter

import (
	"context"
	"fmt"
	"os"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

// Exporter writes one downstream representation of a simulation result.
type Exporter interface {
	Name() string
	Export(ctx context.Context, result m.SimulationResult, path string) error
}

// writeFile is the shared writer used by line-oriented exporters.
func writeFile(path string, render func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := render(file); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
