package adapter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

// CSVOptions configures the full-table CSV dump.
type CSVOptions struct {
	// IncludeTrueVAF controls whether the true-VAF column is written. Callers
	// benchmarking against blinded input drop it.
	IncludeTrueVAF bool
}

type csvExporter struct {
	opts CSVOptions
}

// NewCSVExporter creates the CSV table exporter.
func NewCSVExporter(opts CSVOptions) Exporter {
	return &csvExporter{opts: opts}
}

func (e *csvExporter) Name() string {
	return "csv"
}

func (e *csvExporter) Export(ctx context.Context, result m.SimulationResult, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeFile(path, func(file *os.File) error {
		w := csv.NewWriter(file)

		if err := w.Write(e.header()); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}

		for i := range result.Records {
			if err := w.Write(e.row(&result.Records[i])); err != nil {
				return fmt.Errorf("failed to write csv row %d: %w", i, err)
			}
		}

		w.Flush()

		if err := w.Error(); err != nil {
			return fmt.Errorf("failed to flush csv: %w", err)
		}

		slog.Debug("wrote csv export", "path", path, "rows", len(result.Records))

		return nil
	})
}

func (e *csvExporter) header() []string {
	header := []string{"mutation_id", "chrom", "pos", "ref", "alt"}
	if e.opts.IncludeTrueVAF {
		header = append(header, "true_vaf")
	}

	return append(header, "vaf", "depth", "alt_reads", "ref_reads", "clone", "type", "clone_ids")
}

func (e *csvExporter) row(rec *m.MutationRecord) []string {
	row := []string{
		rec.ID,
		rec.Chrom,
		strconv.Itoa(rec.Pos),
		rec.Ref,
		rec.Alt,
	}

	if e.opts.IncludeTrueVAF {
		row = append(row, formatVAF(rec.TrueVAF))
	}

	return append(row,
		formatVAF(rec.VAF),
		strconv.Itoa(rec.Depth),
		strconv.Itoa(rec.AltReads),
		strconv.Itoa(rec.RefReads),
		rec.CloneLabel,
		string(rec.Type),
		rec.CloneIDs,
	)
}

func formatVAF(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
