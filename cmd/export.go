package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the normalized, scored records as JSON or YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadDataset()
		if err != nil {
			return err
		}

		var out []byte
		switch exportFormat {
		case "json":
			out, err = json.MarshalIndent(c.Records, "", "  ")
		case "yaml":
			out, err = yaml.Marshal(c.Records)
		default:
			return fmt.Errorf("unsupported --format: %s (use json|yaml)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("marshal records: %w", err)
		}

		if exportOutput == "" || exportOutput == "-" {
			fmt.Println(string(out))
			return nil
		}
		if err := os.WriteFile(exportOutput, out, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("✓ Exported %d waters to %s\n", len(c.Records), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json|yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
