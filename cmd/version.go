package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	m "clonesim.dev/pkg/clonesim/internal/model"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the simulator version and the Go version used to build this tool.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("clonesim version\t", m.Version)

			info, ok := debug.ReadBuildInfo()
			if !ok {
				return
			}

			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
