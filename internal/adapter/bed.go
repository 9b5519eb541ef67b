package adapter

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

type bedExporter struct{}

// NewBEDExporter creates a genomic-interval (BED) exporter. Intervals are
// half-open zero-based per the BED convention, with the observed VAF scaled
// into the 0-1000 score column.
func NewBEDExporter() Exporter {
	return &bedExporter{}
}

func (e *bedExporter) Name() string {
	return "bed"
}

func (e *bedExporter) Export(ctx context.Context, result m.SimulationResult, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeFile(path, func(file *os.File) error {
		w := bufio.NewWriter(file)

		for _, rec := range sortedByCoordinate(result.Records) {
			score := int(math.Round(rec.VAF * 1000))
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\t+\n", rec.Chrom, rec.Pos-1, rec.Pos, rec.ID, score)
		}

		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to flush bed: %w", err)
		}

		slog.Debug("wrote bed export", "path", path, "records", len(result.Records))

		return nil
	})
}
