package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/manualfsm/pkg/compiler"
)

var manualsCmd = &cobra.Command{
	Use:   "manuals",
	Short: "List the manuals in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closer, err := newEngine(cmd.Context(), settings, logger, compiler.Hooks{})
		defer func() { _ = closer() }()
		if err != nil {
			return err
		}
		ids, err := eng.Manuals(cmd.Context())
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(manualsCmd)
	manualsCmd.Flags().String("library", "", "Directory of markdown manuals")
}
