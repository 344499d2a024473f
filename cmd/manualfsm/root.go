package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/manualfsm/internal/config"
	"github.com/aretw0/manualfsm/internal/logging"
)

var (
	settings config.Config
	logger   = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "manualfsm",
	Short: "manualfsm compiles technical manuals into finite-state machines",
	Long: `manualfsm turns step-by-step technical manuals into state machine graphs,
checks them for structural defects and renders them as Graphviz or Mermaid diagrams.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default ./manualfsm.yaml if present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")
}

// loadSettings resolves configuration and applies flag overrides.
func loadSettings(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(config.WithFile(path))
	if err != nil {
		return err
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		c.Log.Level = "debug"
	}
	overlay := map[string]*string{
		"log-format": &c.Log.Format,
		"strategy":   &c.Strategy,
		"store":      &c.Store.Driver,
		"store-dir":  &c.Store.Dir,
		"library":    &c.Library.Dir,
		"addr":       &c.Server.Addr,
	}
	for name, dst := range overlay {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	if err := c.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(c.Log.Level)
	format, _ := logging.ParseFormat(c.Log.Format)
	logger = logging.NewWithFormat(os.Stderr, level, format)
	slog.SetDefault(logger)

	settings = c
	logger.Debug("configuration loaded", "strategy", c.Strategy, "store", c.Store.Driver)
	return nil
}
