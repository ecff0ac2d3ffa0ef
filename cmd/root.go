package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/aquabench/aquabench-cli/internal/config"
)

var (
	// Global flags
	cfgFile   string
	dataFile  string
	delimiter string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "aquabench",
	Short: "AquaBench CLI: score and explore mineral water datasets",
	Long: `AquaBench loads a CSV catalog of mineral and spring waters, normalizes it
into a canonical schema, computes a composite quality score per water, and
lets you filter, sort, compare and serve the results.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.aquabench/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "dataset CSV file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", "", "CSV delimiter ',' or ';' (default auto-detect)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("file") && dataFile != "" {
		cfg.DatasetPath = dataFile
	}
	if f.Changed("delimiter") && delimiter != "" {
		cfg.Delimiter = delimiter
	}
}
