package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVCFExporter_FiltersRefEqAlt(t *testing.T) {
	out := exportToString(t, NewVCFExporter(VCFOptions{}), testResult())

	require.NotContains(t, out, "Clone1_mut1")
	require.Contains(t, out, "Founder_1")
	require.Contains(t, out, "Clone1_mut2")
}

func TestVCFExporter_Header(t *testing.T) {
	out := exportToString(t, NewVCFExporter(VCFOptions{SampleName: "S1"}), testResult())

	rows := lines(out)
	require.Equal(t, "##fileformat=VCFv4.2", rows[0])
	require.Contains(t, out, "##fileDate=20260314")
	require.Contains(t, out, "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1")
}

func TestVCFExporter_DefaultSampleName(t *testing.T) {
	out := exportToString(t, NewVCFExporter(VCFOptions{}), testResult())

	require.Contains(t, out, "\tTUMOR")
}

func TestVCFExporter_RecordsAreCoordinateSorted(t *testing.T) {
	out := exportToString(t, NewVCFExporter(VCFOptions{}), testResult())

	// chr1:4500 sorts before chr2:1200 even though the table order differs.
	require.Less(t,
		strings.Index(out, "Clone1_mut2"),
		strings.Index(out, "Founder_1"),
	)
}

func TestVCFExporter_RecordFields(t *testing.T) {
	out := exportToString(t, NewVCFExporter(VCFOptions{}), testResult())

	require.Contains(t, out,
		"chr2\t1200\tFounder_1\tA\tT\t.\tPASS\tDP=100;AF=0.680000;CLONE=Founder;TYPE=founder\tGT:AD:DP:AF\t0/1:32,68:100:0.680000",
	)
}
