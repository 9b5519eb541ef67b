package controller

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"clonesim.dev/pkg/clonesim/internal/domain"
	m "clonesim.dev/pkg/clonesim/internal/model"
)

func newTestSummary() (*Summary, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buffer)

	return NewSummary(cmd), buffer
}

func sampleResult() m.SimulationResult {
	sc := m.DefaultScenario()
	sc.CloneFrequencies = []float64{0.6, 0.3}
	sc.PrivateMutations = []int{1, 1}

	return m.SimulationResult{
		Records: []m.MutationRecord{
			{ID: "Founder_1", TrueVAF: 0.9, VAF: 0.88, Depth: 100, AltReads: 88, RefReads: 12, CloneLabel: "Founder", Type: m.MutationFounder, CloneIDs: "1 2"},
			{ID: "Clone1_mut1", TrueVAF: 0.6, VAF: 0.55, Depth: 90, AltReads: 50, RefReads: 40, CloneLabel: "Clone1", Type: m.MutationPrivate, CloneIDs: "1"},
			{ID: "Clone2_mut1", TrueVAF: 0.3, VAF: 0.32, Depth: 110, AltReads: 35, RefReads: 75, CloneLabel: "Clone2", Type: m.MutationPrivate, CloneIDs: "2"},
		},
		Params: sc,
		CloneTable: []m.CloneTableRow{
			{Name: "Clone1", Frequency: 0.6, PrivateMutations: 1},
			{Name: "Clone2", Frequency: 0.3, PrivateMutations: 1},
		},
		Metadata: m.Metadata{CreatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), Version: m.Version, Seed: 9},
	}
}

func TestSummary_DisplayResult(t *testing.T) {
	summary, buffer := newTestSummary()

	summary.DisplayResult(sampleResult())
	out := buffer.String()

	require.Contains(t, out, "Clonal structure")
	require.Contains(t, out, "Clone1")
	require.Contains(t, out, "0.6000")
	// tablewriter upper-cases footer cells.
	require.Contains(t, out, "PURITY")
	require.Contains(t, out, "0.9000")

	require.Contains(t, out, "Mutation groups")
	require.Contains(t, out, "Founder")
	require.Contains(t, out, "Seed 9")
	require.Contains(t, out, m.Version)
}

func TestSummary_DisplayResultAggregatesGroups(t *testing.T) {
	summary, buffer := newTestSummary()

	result := sampleResult()
	result.Records = append(result.Records, m.MutationRecord{
		CloneLabel: "Clone1", Type: m.MutationPrivate, TrueVAF: 0.6, VAF: 0.65, Depth: 100, AltReads: 65, RefReads: 35,
	})

	summary.DisplayResult(result)
	out := buffer.String()

	// Clone1 aggregates to two mutations with mean observed VAF 0.60.
	require.Contains(t, out, "0.6000")
	require.Contains(t, out, "4")
}

func TestSummary_DisplayWarnings(t *testing.T) {
	summary, buffer := newTestSummary()

	summary.DisplayWarnings([]string{"shared group Clone2+9 references a clone index outside the configured 3 clone(s); skipping it"})

	require.Contains(t, buffer.String(), "warning: ")
	require.Contains(t, buffer.String(), "Clone2+9")
}

func TestSummary_DisplayWarningsEmpty(t *testing.T) {
	summary, buffer := newTestSummary()

	summary.DisplayWarnings(nil)

	require.Empty(t, buffer.String())
}

func TestSummary_DisplayPlan(t *testing.T) {
	summary, buffer := newTestSummary()

	summary.DisplayPlan([]domain.GroupSpec{
		{Type: m.MutationFounder, Label: "Founder", Frequency: 0.9, Count: 10},
		{Type: m.MutationPrivate, Label: "Clone1", Frequency: 0.6, Count: 20},
	})
	out := buffer.String()

	require.Contains(t, out, "Group plan")
	require.Contains(t, out, "Founder")
	require.Contains(t, out, "0.9000")
	require.Contains(t, out, "30")
}
