package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "github.com/aquabench/aquabench-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set AquaBench configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("dataset_path: %s\n", cfg.DatasetPath)
		fmt.Printf("delimiter: %s\n", orAuto(cfg.Delimiter))
		fmt.Printf("listen_addr: %s\n", cfg.ListenAddr)
		fmt.Printf("scoring.max_possible: %d\n", cfg.Scoring.MaxPossible)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "dataset_path":
			cfg.DatasetPath = val
		case "delimiter":
			if _, err := cfgpkg.ParseDelimiter(val); err != nil {
				return err
			}
			cfg.Delimiter = val
		case "listen_addr":
			cfg.ListenAddr = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func orAuto(s string) string {
	if s == "" {
		return "(auto)"
	}
	return s
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
