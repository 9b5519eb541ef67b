// Package controller renders simulation output for the terminal.
package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"clonesim.dev/pkg/clonesim/internal/domain"
	m "clonesim.dev/pkg/clonesim/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Summary prints clone tables, group summaries, and warnings through the
// command's output stream.
type Summary struct {
	cmd *cobra.Command
}

// NewSummary creates a Summary bound to the given command.
func NewSummary(cmd *cobra.Command) *Summary {
	return &Summary{cmd: cmd}
}

// DisplayWarnings prints skipped-group warnings, one per line.
func (s *Summary) DisplayWarnings(warnings []string) {
	for _, warning := range warnings {
		s.printf("%s\n", warningStyle.Render("warning: "+warning))
	}
}

// DisplayResult prints the clone table, the per-group mutation summary, and
// the run metadata line.
func (s *Summary) DisplayResult(result m.SimulationResult) {
	s.printf("\n%s\n%s", headingStyle.Render("Clonal structure"), renderCloneTable(result))
	s.printf("\n%s\n%s", headingStyle.Render("Mutation groups"), renderGroupTable(result.Records))
	s.printf("\nSeed %d | clonesim %s | %s\n",
		result.Metadata.Seed,
		result.Metadata.Version,
		result.Metadata.CreatedAt.Format("2006-01-02 15:04:05 MST"),
	)
}

// DisplayPlan prints the resolved group plan of a scenario without results.
func (s *Summary) DisplayPlan(specs []domain.GroupSpec) {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Group", "Type", "Target VAF", "Mutations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	total := 0

	for _, spec := range specs {
		table.Append([]string{
			spec.Label,
			string(spec.Type),
			fmt.Sprintf("%.4f", spec.Frequency),
			fmt.Sprintf("%d", spec.Count),
		})

		total += spec.Count
	}

	table.SetFooter([]string{"", "", "Total", fmt.Sprintf("%d", total)})
	table.Render()

	s.printf("\n%s\n%s", headingStyle.Render("Group plan"), buffer.String())
}

func renderCloneTable(result m.SimulationResult) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Clone", "Frequency", "Private mutations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, row := range result.CloneTable {
		table.Append([]string{
			row.Name,
			fmt.Sprintf("%.4f", row.Frequency),
			fmt.Sprintf("%d", row.PrivateMutations),
		})
	}

	table.SetFooter([]string{
		"Purity",
		fmt.Sprintf("%.4f", result.Params.Clones().Purity()),
		"",
	})
	table.Render()

	return buffer.String()
}

type groupStat struct {
	label   string
	kind    m.MutationType
	count   int
	vafSum  float64
	trueSum float64
}

func renderGroupTable(records []m.MutationRecord) string {
	stats := make([]groupStat, 0)
	index := make(map[string]int)

	// Aggregate in table order so groups print as generated.
	for i := range records {
		rec := &records[i]

		pos, ok := index[rec.CloneLabel]
		if !ok {
			pos = len(stats)
			index[rec.CloneLabel] = pos
			stats = append(stats, groupStat{label: rec.CloneLabel, kind: rec.Type})
		}

		stats[pos].count++
		stats[pos].vafSum += rec.VAF
		stats[pos].trueSum += rec.TrueVAF
	}

	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Group", "Type", "Mutations", "Mean true VAF", "Mean VAF"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, stat := range stats {
		n := float64(stat.count)
		table.Append([]string{
			stat.label,
			string(stat.kind),
			fmt.Sprintf("%d", stat.count),
			fmt.Sprintf("%.4f", stat.trueSum/n),
			fmt.Sprintf("%.4f", stat.vafSum/n),
		})
	}

	table.SetFooter([]string{"Total", "", fmt.Sprintf("%d", len(records)), "", ""})
	table.Render()

	return buffer.String()
}

func (s *Summary) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
