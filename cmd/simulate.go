package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"clonesim.dev/pkg/clonesim/internal/adapter"
	m "clonesim.dev/pkg/clonesim/internal/model"
)

var formatsFlag []string
var sampleNameFlag string
var includeTrueVAFFlag bool

// exportFileNames maps exporter names to output filenames.
var exportFileNames = map[string]string{
	"csv":      "mutations.csv",
	"vcf":      "mutations.vcf",
	"bed":      "mutations.bed",
	"pyclone":  "pyclone.tsv",
	"sciclone": "sciclone.tsv",
	"metadata": "run.yaml",
}

// simulateCmd represents the simulate command.
var simulateCmd = newSimulateCmd()

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one simulation and write exports",
		Long:  simulateLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := buildScenario(cmd)
			if err != nil {
				return err
			}

			result, warnings, err := simulator.Run(sc)
			if err != nil {
				return err
			}

			summary.DisplayWarnings(warnings)
			summary.DisplayResult(result)

			return writeExports(cmd, result)
		},
	}

	configureScenarioFlags(cmd)
	configureSimulateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

func configureSimulateFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&formatsFlag, formatsFlagName, "f", viper.GetStringSlice(formatsConfigKey), "export formats to write (csv,vcf,bed,pyclone,sciclone,metadata)")
	bindFlagToConfig(cmd.Flags().Lookup(formatsFlagName), formatsConfigKey)

	cmd.Flags().StringVarP(&sampleNameFlag, sampleNameFlagName, "s", viper.GetString(sampleNameConfigKey), "sample name used in vcf and pyclone exports")
	bindFlagToConfig(cmd.Flags().Lookup(sampleNameFlagName), sampleNameConfigKey)

	cmd.Flags().BoolVar(&includeTrueVAFFlag, includeTrueVAFFlagName, viper.GetBool(includeTrueVAFConfigKey), "include the true-VAF column in the csv export")
	bindFlagToConfig(cmd.Flags().Lookup(includeTrueVAFFlagName), includeTrueVAFConfigKey)
}

// writeExports fans the selected exporters out over the immutable result.
func writeExports(cmd *cobra.Command, result m.SimulationResult) error {
	outDir := viper.GetString(outputFlagName)
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	exporters, err := selectedExporters()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())

	for _, exporter := range exporters {
		path := filepath.Join(outDir, exportFileNames[exporter.Name()])

		g.Go(func() error {
			return exporter.Export(ctx, result, path)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	cmd.Printf("Wrote %d export(s) to %s\n", len(exporters), outDir)

	return nil
}

func selectedExporters() ([]adapter.Exporter, error) {
	sampleName := viper.GetString(sampleNameConfigKey)
	formats := viper.GetStringSlice(formatsConfigKey)

	exporters := make([]adapter.Exporter, 0, len(formats))

	for _, format := range formats {
		switch format {
		case "csv":
			exporters = append(exporters, adapter.NewCSVExporter(adapter.CSVOptions{
				IncludeTrueVAF: viper.GetBool(includeTrueVAFConfigKey),
			}))
		case "vcf":
			exporters = append(exporters, adapter.NewVCFExporter(adapter.VCFOptions{SampleName: sampleName}))
		case "bed":
			exporters = append(exporters, adapter.NewBEDExporter())
		case "pyclone":
			exporters = append(exporters, adapter.NewPyCloneExporter(adapter.PyCloneOptions{SampleName: sampleName}))
		case "sciclone":
			exporters = append(exporters, adapter.NewSciCloneExporter())
		case "metadata":
			exporters = append(exporters, adapter.NewMetadataExporter())
		default:
			return nil, fmt.Errorf("unknown export format %q", format)
		}
	}

	return exporters, nil
}
