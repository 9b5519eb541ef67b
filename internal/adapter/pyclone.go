package adapter

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

// PyCloneOptions configures the PyClone-VI input export.
type PyCloneOptions struct {
	SampleName string
}

type pyCloneExporter struct {
	opts PyCloneOptions
}

// NewPyCloneExporter creates a PyClone-VI input TSV exporter. Copy numbers
// are fixed at the diploid heterozygous assumption (normal 2, major 1,
// minor 1); tumour content is the simulated purity.
func NewPyCloneExporter(opts PyCloneOptions) Exporter {
	return &pyCloneExporter{opts: opts}
}

func (e *pyCloneExporter) Name() string {
	return "pyclone"
}

func (e *pyCloneExporter) Export(ctx context.Context, result m.SimulationResult, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sample := e.opts.SampleName
	if sample == "" {
		sample = "TUMOR"
	}

	purity := result.Params.Clones().Purity()

	return writeFile(path, func(file *os.File) error {
		w := bufio.NewWriter(file)

		fmt.Fprintln(w, "mutation_id\tsample_id\tref_counts\talt_counts\tnormal_cn\tmajor_cn\tminor_cn\ttumour_content")

		for i := range result.Records {
			rec := &result.Records[i]
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t2\t1\t1\t%.4f\n",
				rec.ID, sample, rec.RefReads, rec.AltReads, purity)
		}

		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to flush pyclone tsv: %w", err)
		}

		slog.Debug("wrote pyclone export", "path", path, "records", len(result.Records), "purity", purity)

		return nil
	})
}
