// Package cmd provides the root command and CLI setup for clonesim.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"clonesim.dev/pkg/clonesim/internal/controller"
	"clonesim.dev/pkg/clonesim/internal/domain"
)

var simulator domain.Simulator
var resolver domain.Resolver
var summary *controller.Summary

// outputDirFlag is a root-level flag shared by commands that write exports.
var outputDirFlag string

// scenarioFileFlag points at the YAML scenario describing the clonal structure.
var scenarioFileFlag string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	simulator = domain.NewSimulator()
	resolver = domain.NewResolver()
	summary = controller.NewSummary(rootCmd)
}

const scenarioHelp = `The scenario file is a YAML document describing the tumor:
  clone_frequencies: [0.3, 0.4, 0.3]
  private_mutations: [20, 25, 15]
  founder_mutations: 10
  shared_groups:
    - clones: [2, 3]
      mutations: 12
Omitted keys keep their defaults; see the documentation for the noise blocks.`

const rootLongDescription = `Clonesim simulates synthetic tumor sequencing data: it draws a mutation
table for a hierarchical population of subclones and corrupts the true
variant allele frequencies with biological and sequencing noise, producing
the kind of variant-calling output downstream benchmarks consume.

` + scenarioHelp

const simulateLongDescription = `Run one simulation and write the selected export formats (default: all).

` + scenarioHelp

const planLongDescription = `Resolve a scenario into its mutation-group plan without drawing anything.

` + scenarioHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clonesim",
		Short: "Synthetic tumor sequencing simulator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for simulation exports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().
		StringVarP(
			&scenarioFileFlag, scenarioFlagName, "c",
			viper.GetString(scenarioFlagName),
			"path to the YAML scenario file",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(scenarioFlagName), scenarioFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
