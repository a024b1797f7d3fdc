package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/dms-go/internal/version"
)

func newVersionCmd() *cobra.Command {
	var jsonOutput bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version, git commit, and build date of dmsctl.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			w := cmd.OutOrStdout()

			if jsonOutput {
				output, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode version: %w", err)
				}
				fmt.Fprintln(w, string(output))
				return nil
			}

			fmt.Fprintf(w, "dmsctl\n")
			fmt.Fprintf(w, "Version:    %s\n", info.Version)
			fmt.Fprintf(w, "Git commit: %s\n", info.GitCommit)
			fmt.Fprintf(w, "Built:      %s\n", info.BuildDate)
			fmt.Fprintf(w, "Go version: %s\n", info.GoVersion)
			fmt.Fprintf(w, "Platform:   %s\n", info.Platform)
			return nil
		},
	}

	versionCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version information in JSON format")
	return versionCmd
}
