package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSVExporter_WritesAllRecords(t *testing.T) {
	out := exportToString(t, NewCSVExporter(CSVOptions{IncludeTrueVAF: true}), testResult())

	rows := lines(out)
	require.Len(t, rows, 4)

	require.Equal(t,
		"mutation_id,chrom,pos,ref,alt,true_vaf,vaf,depth,alt_reads,ref_reads,clone,type,clone_ids",
		rows[0],
	)
	require.Equal(t,
		"Founder_1,chr2,1200,A,T,0.700000,0.680000,100,68,32,Founder,founder,1",
		rows[1],
	)
}

func TestCSVExporter_KeepsRefEqAltRows(t *testing.T) {
	out := exportToString(t, NewCSVExporter(CSVOptions{IncludeTrueVAF: true}), testResult())

	// Ref==alt filtering is VCF policy, not table policy.
	require.Contains(t, out, "Clone1_mut1")
}

func TestCSVExporter_ExcludesTrueVAFColumn(t *testing.T) {
	out := exportToString(t, NewCSVExporter(CSVOptions{IncludeTrueVAF: false}), testResult())

	rows := lines(out)
	require.NotContains(t, rows[0], "true_vaf")
	require.False(t, strings.Contains(rows[1], "0.700000,0.680000"))
	require.Contains(t, rows[1], "0.680000")
}
