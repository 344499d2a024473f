package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/manualfsm"
	"github.com/aretw0/manualfsm/internal/presentation/graph"
	"github.com/aretw0/manualfsm/internal/presentation/tui"
	"github.com/aretw0/manualfsm/pkg/compiler"
)

type compileOptions struct {
	Input       string
	Output      string
	Format      string
	Annotations string
	Manual      string
	Save        bool
}

var compileCmd = &cobra.Command{
	Use:   "compile [FILE]",
	Short: "Compile a manual into a state machine",
	Long: `Reads a manual (one instruction per line), synthesizes its state machine and
reports structural defects. With --output BASE the snapshot is written to BASE.json
(or BASE.yaml) and the Graphviz source to BASE.dot.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts compileOptions
		opts.Input, _ = cmd.Flags().GetString("input")
		opts.Output, _ = cmd.Flags().GetString("output")
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.Annotations, _ = cmd.Flags().GetString("annotations")
		opts.Manual, _ = cmd.Flags().GetString("manual")
		opts.Save, _ = cmd.Flags().GetBool("save")
		if opts.Input == "" && len(args) > 0 {
			opts.Input = args[0]
		}

		eng, closer, err := newEngine(cmd.Context(), settings, logger, compiler.Hooks{})
		defer func() { _ = closer() }()
		if err != nil {
			return err
		}
		return runCompile(cmd.Context(), eng, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringP("input", "i", "", "Manual file to compile ('-' for stdin)")
	compileCmd.Flags().StringP("output", "o", "", "Base path for the snapshot and .dot outputs")
	compileCmd.Flags().String("format", "json", "Snapshot output format: json or yaml")
	compileCmd.Flags().String("annotations", "", "Compile pre-annotated records (JSON or YAML list) instead of text")
	compileCmd.Flags().String("manual", "", "Compile a manual from the library by id")
	compileCmd.Flags().String("library", "", "Directory of markdown manuals")
	compileCmd.Flags().String("strategy", "", "Synthesis strategy: linear or branching")
	compileCmd.Flags().String("store", "", "Graph store: memory, file or redis")
	compileCmd.Flags().String("store-dir", "", "Directory for the file store")
	compileCmd.Flags().Bool("save", false, "Persist the compiled graph in the configured store")
}

func runCompile(ctx context.Context, eng *manualfsm.Engine, in io.Reader, out io.Writer, opts compileOptions) error {
	res, err := compileFrom(ctx, eng, in, opts)
	if err != nil {
		return err
	}

	printer := tui.NewPrinter(out)
	if err := printer.Markdown(tui.Report(res)); err != nil {
		return err
	}

	if opts.Output != "" {
		if err := writeOutputs(out, res, opts.Output, opts.Format); err != nil {
			return err
		}
	}

	if res.Valid() {
		printer.Status(true, "FSM is valid.")
	} else {
		printer.Status(false, fmt.Sprintf("FSM has %d structural defect(s).", len(res.Diagnostics)))
	}
	return nil
}

func compileFrom(ctx context.Context, eng *manualfsm.Engine, in io.Reader, opts compileOptions) (*compiler.Result, error) {
	var res *compiler.Result
	var err error

	switch {
	case opts.Manual != "":
		res, err = eng.CompileManual(ctx, opts.Manual)

	case opts.Annotations != "":
		data, readErr := os.ReadFile(opts.Annotations)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read annotations: %w", readErr)
		}
		res, err = eng.CompileRecords(ctx, data)

	default:
		text, readErr := readInput(in, opts.Input)
		if readErr != nil {
			return nil, readErr
		}
		res, err = eng.Compile(ctx, text)
	}
	if err != nil {
		return nil, err
	}

	if opts.Save {
		if err := eng.Save(ctx, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func readInput(in io.Reader, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no input: pass --input FILE, --manual ID or --annotations FILE")
	}
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

func writeOutputs(out io.Writer, res *compiler.Result, base, format string) error {
	data, ext, err := encodeSnapshot(res.Snapshot, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(base+ext, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	fmt.Fprintf(out, "Saved FSM data to %s\n", base+ext)

	if err := os.WriteFile(base+".dot", []byte(graph.Dot(res.Snapshot)), 0o644); err != nil {
		return fmt.Errorf("failed to write dot file: %w", err)
	}
	fmt.Fprintf(out, "Saved Graphviz source to %s.dot\n", base)
	return nil
}
