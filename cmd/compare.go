package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aquabench/aquabench-cli/internal/scoring"
	"github.com/aquabench/aquabench-cli/internal/water"
)

var compareCmd = &cobra.Command{
	Use:   "compare <water> <water> [water...]",
	Short: "Compare two or more waters side by side",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadDataset()
		if err != nil {
			return err
		}

		recs := make([]*water.Record, 0, len(args))
		for _, arg := range args {
			rec := c.Find(arg)
			if rec == nil {
				return fmt.Errorf("no water matching %q", arg)
			}
			recs = append(recs, rec)
		}

		printRow := func(label string, cell func(*water.Record) string) {
			fmt.Printf("%-16s", label)
			for _, rec := range recs {
				fmt.Printf(" %-20s", truncate(cell(rec), 20))
			}
			fmt.Println()
		}

		printRow("", func(r *water.Record) string { return r.Name })
		printRow("", func(r *water.Record) string { return strings.Repeat("-", 18) })
		printRow("type", func(r *water.Record) string { return string(r.Type) })
		printRow("score", func(r *water.Record) string {
			return fmt.Sprintf("%d (%s)", r.Score, scoring.BandOf(r.Score))
		})
		printRow("mineralization", func(r *water.Record) string { return string(r.Categories.Mineralization) })
		printRow("region", func(r *water.Record) string { return r.Region })
		printRow("pH", func(r *water.Record) string { return fmtOpt(r.PH) })
		printRow("dry residue", func(r *water.Record) string { return fmtOpt(r.DryResidue) })
		printRow("calcium", func(r *water.Record) string { return fmtOpt(r.Calcium) })
		printRow("magnesium", func(r *water.Record) string { return fmtOpt(r.Magnesium) })
		printRow("sodium", func(r *water.Record) string { return fmtOpt(r.Sodium) })
		printRow("bicarbonate", func(r *water.Record) string { return fmtOpt(r.Bicarbonate) })
		printRow("nitrate", func(r *water.Record) string { return fmtOpt(r.Nitrate) })
		printRow("PFAS sum", func(r *water.Record) string { return fmtOpt(r.PFASSum) })
		printRow("microplastics", func(r *water.Record) string { return fmtOpt(r.MicroplasticsPerLiter) })
		printRow("uranium", func(r *water.Record) string { return fmtOpt(r.Uranium) })
		printRow("suitability", func(r *water.Record) string {
			tags := scoring.Suitability(r)
			parts := make([]string, len(tags))
			for i, t := range tags {
				parts[i] = string(t)
			}
			return strings.Join(parts, ",")
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
