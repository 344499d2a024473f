package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/manualfsm"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of manualfsm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "manualfsm version %s\n", strings.TrimSpace(manualfsm.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
