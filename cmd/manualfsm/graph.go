package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/manualfsm/internal/presentation/graph"
	"github.com/aretw0/manualfsm/pkg/domain"
	"github.com/aretw0/manualfsm/pkg/validate"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [FILE]",
	Short: "Export a graph visualization",
	Long:  `Renders a snapshot as a Mermaid flowchart (default) or Graphviz DOT source.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshotArg(cmd, args)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return runGraph(cmd.OutOrStdout(), snap, format)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addSnapshotFlags(graphCmd)
	graphCmd.Flags().StringP("format", "f", "mermaid", "Output format: mermaid or dot")
}

func runGraph(out io.Writer, snap domain.Snapshot, format string) error {
	f, err := graph.ParseFormat(format)
	if err != nil {
		return err
	}

	overlay := &graph.Overlay{}
	for _, d := range validate.Check(domain.FromSnapshot(snap)) {
		overlay.Flagged = append(overlay.Flagged, d.StateIDs...)
	}

	rendered, err := graph.Render(snap, f, overlay)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
