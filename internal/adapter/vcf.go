package adapter

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

// VCFOptions configures the VCF-style export.
type VCFOptions struct {
	SampleName string
}

type vcfExporter struct {
	opts VCFOptions
}

// NewVCFExporter creates a VCF-style exporter. Records whose reference and
// alternate base coincide are not real variants and are filtered here; the
// core leaves ref/alt uncorrelated on purpose.
func NewVCFExporter(opts VCFOptions) Exporter {
	return &vcfExporter{opts: opts}
}

func (e *vcfExporter) Name() string {
	return "vcf"
}

func (e *vcfExporter) Export(ctx context.Context, result m.SimulationResult, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sample := e.opts.SampleName
	if sample == "" {
		sample = "TUMOR"
	}

	return writeFile(path, func(file *os.File) error {
		w := bufio.NewWriter(file)

		e.writeHeader(w, result, sample)

		written, skipped := 0, 0

		for _, rec := range sortedByCoordinate(result.Records) {
			if rec.Ref == rec.Alt {
				skipped++
				continue
			}

			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t.\tPASS\tDP=%d;AF=%.6f;CLONE=%s;TYPE=%s\tGT:AD:DP:AF\t0/1:%d,%d:%d:%.6f\n",
				rec.Chrom, rec.Pos, rec.ID, rec.Ref, rec.Alt,
				rec.Depth, rec.VAF, rec.CloneLabel, rec.Type,
				rec.RefReads, rec.AltReads, rec.Depth, rec.VAF,
			)

			written++
		}

		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to flush vcf: %w", err)
		}

		slog.Debug("wrote vcf export", "path", path, "records", written, "ref_eq_alt_skipped", skipped)

		return nil
	})
}

func (e *vcfExporter) writeHeader(w *bufio.Writer, result m.SimulationResult, sample string) {
	fmt.Fprintln(w, "##fileformat=VCFv4.2")
	fmt.Fprintf(w, "##source=clonesim %s\n", result.Metadata.Version)
	fmt.Fprintf(w, "##fileDate=%s\n", result.Metadata.CreatedAt.Format("20060102"))
	fmt.Fprintln(w, `##INFO=<ID=DP,Number=1,Type=Integer,Description="Total depth">`)
	fmt.Fprintln(w, `##INFO=<ID=AF,Number=1,Type=Float,Description="Observed variant allele frequency">`)
	fmt.Fprintln(w, `##INFO=<ID=CLONE,Number=1,Type=String,Description="Simulated clone of origin">`)
	fmt.Fprintln(w, `##INFO=<ID=TYPE,Number=1,Type=String,Description="Mutation type">`)
	fmt.Fprintln(w, `##FORMAT=<ID=GT,Number=1,Type=String,Description="Genotype">`)
	fmt.Fprintln(w, `##FORMAT=<ID=AD,Number=R,Type=Integer,Description="Ref and alt read depths">`)
	fmt.Fprintln(w, `##FORMAT=<ID=DP,Number=1,Type=Integer,Description="Total depth">`)
	fmt.Fprintln(w, `##FORMAT=<ID=AF,Number=1,Type=Float,Description="Observed variant allele frequency">`)
	fmt.Fprintf(w, "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\t%s\n", sample)
}

// sortedByCoordinate returns a coordinate-ordered copy of the records; the
// result table itself is never reordered.
func sortedByCoordinate(records []m.MutationRecord) []m.MutationRecord {
	out := make([]m.MutationRecord, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Chrom != out[j].Chrom {
			return chromRank(out[i].Chrom) < chromRank(out[j].Chrom)
		}

		return out[i].Pos < out[j].Pos
	})

	return out
}

func chromRank(chrom string) int {
	for i, label := range m.Autosomes {
		if label == chrom {
			return i
		}
	}

	return len(m.Autosomes)
}
