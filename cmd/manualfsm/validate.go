package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/manualfsm/internal/presentation/tui"
	"github.com/aretw0/manualfsm/pkg/compiler"
	"github.com/aretw0/manualfsm/pkg/domain"
	"github.com/aretw0/manualfsm/pkg/validate"
)

var errDefects = errors.New("graph has structural defects")

var validateCmd = &cobra.Command{
	Use:   "validate [FILE]",
	Short: "Check a graph snapshot for structural defects",
	Long: `Loads a snapshot (JSON or YAML) and reports a missing start state,
unreachable states and dead ends. Exits non-zero when defects are found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshotArg(cmd, args)
		if err != nil {
			return err
		}
		return runValidate(cmd.OutOrStdout(), snap)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addSnapshotFlags(validateCmd)
}

func runValidate(out io.Writer, snap domain.Snapshot) error {
	printer := tui.NewPrinter(out)
	msgs := validate.Validate(domain.FromSnapshot(snap))
	if len(msgs) == 0 {
		printer.Status(true, "Graph is valid!")
		return nil
	}
	for _, m := range msgs {
		fmt.Fprintln(out, "-", m)
	}
	printer.Status(false, fmt.Sprintf("%d defect(s) found.", len(msgs)))
	return errDefects
}

func addSnapshotFlags(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "Load the graph with this id from the configured store instead of a file")
	cmd.Flags().String("store", "", "Graph store: memory, file or redis")
	cmd.Flags().String("store-dir", "", "Directory for the file store")
}

// loadSnapshotArg reads the snapshot named by the FILE argument or --id.
func loadSnapshotArg(cmd *cobra.Command, args []string) (domain.Snapshot, error) {
	id, _ := cmd.Flags().GetString("id")
	if id == "" {
		if len(args) == 0 {
			return domain.Snapshot{}, fmt.Errorf("pass a snapshot FILE or --id")
		}
		return readSnapshot(args[0])
	}
	return loadStored(cmd.Context(), id)
}

func loadStored(ctx context.Context, id string) (domain.Snapshot, error) {
	eng, closer, err := newEngine(ctx, settings, logger, compiler.Hooks{})
	defer func() { _ = closer() }()
	if err != nil {
		return domain.Snapshot{}, err
	}
	return eng.Graph(ctx, id)
}
