package adapter

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

type sciCloneExporter struct{}

// NewSciCloneExporter creates a sciClone input TSV exporter: chromosome,
// position, reference reads, variant reads, and VAF as a percentage.
func NewSciCloneExporter() Exporter {
	return &sciCloneExporter{}
}

func (e *sciCloneExporter) Name() string {
	return "sciclone"
}

func (e *sciCloneExporter) Export(ctx context.Context, result m.SimulationResult, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeFile(path, func(file *os.File) error {
		w := bufio.NewWriter(file)

		fmt.Fprintln(w, "chr\tpos\tref_reads\tvar_reads\tvaf")

		for i := range result.Records {
			rec := &result.Records[i]
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.4f\n",
				rec.Chrom, rec.Pos, rec.RefReads, rec.AltReads, rec.VAF*100)
		}

		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to flush sciclone tsv: %w", err)
		}

		slog.Debug("wrote sciclone export", "path", path, "records", len(result.Records))

		return nil
	})
}
