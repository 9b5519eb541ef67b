package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

// testResult builds a small fixed result. The second record has ref==alt on
// purpose so exporter-side filtering is observable.
func testResult() m.SimulationResult {
	sc := m.DefaultScenario()
	sc.CloneFrequencies = []float64{0.7}
	sc.PrivateMutations = []int{2}

	return m.SimulationResult{
		Records: []m.MutationRecord{
			{
				ID: "Founder_1", Chrom: "chr2", Pos: 1200, Ref: "A", Alt: "T",
				TrueVAF: 0.7, VAF: 0.68, Depth: 100, AltReads: 68, RefReads: 32,
				CloneLabel: "Founder", Type: m.MutationFounder, CloneIDs: "1",
			},
			{
				ID: "Clone1_mut1", Chrom: "chr1", Pos: 900, Ref: "G", Alt: "G",
				TrueVAF: 0.7, VAF: 0.71, Depth: 90, AltReads: 64, RefReads: 26,
				CloneLabel: "Clone1", Type: m.MutationPrivate, CloneIDs: "1",
			},
			{
				ID: "Clone1_mut2", Chrom: "chr1", Pos: 4500, Ref: "C", Alt: "A",
				TrueVAF: 0.72, VAF: 0.7, Depth: 110, AltReads: 77, RefReads: 33,
				CloneLabel: "Clone1", Type: m.MutationPrivate, CloneIDs: "1",
			},
		},
		Params:     sc,
		CloneTable: []m.CloneTableRow{{Name: "Clone1", Frequency: 0.7, PrivateMutations: 2}},
		Metadata: m.Metadata{
			CreatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
			Version:   m.Version,
			Seed:      42,
		},
	}
}

func exportToString(t *testing.T, e Exporter, result m.SimulationResult) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out")
	require.NoError(t, e.Export(context.Background(), result, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestExporters_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exporters := []Exporter{
		NewCSVExporter(CSVOptions{}),
		NewVCFExporter(VCFOptions{}),
		NewBEDExporter(),
		NewPyCloneExporter(PyCloneOptions{}),
		NewSciCloneExporter(),
		NewMetadataExporter(),
	}

	for _, e := range exporters {
		err := e.Export(ctx, testResult(), filepath.Join(t.TempDir(), "out"))
		require.Error(t, err, e.Name())
	}
}

func TestExporters_UnwritablePath(t *testing.T) {
	e := NewCSVExporter(CSVOptions{IncludeTrueVAF: true})

	err := e.Export(context.Background(), testResult(), filepath.Join(t.TempDir(), "missing", "out.csv"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to create")
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
