package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aquabench/aquabench-cli/internal/scoring"
	"github.com/aquabench/aquabench-cli/internal/water"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Load a dataset and print a summary",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			dataFile = args[0]
		}
		c, err := loadDataset()
		if err != nil {
			return err
		}

		fmt.Printf("[DATASET SUMMARY]\n")
		fmt.Printf("File: %s\n", c.Source)
		fmt.Printf("Waters: %d (skipped rows: %d)\n", len(c.Records), c.SkippedRows)
		for _, warn := range c.Warnings {
			fmt.Fprintf(os.Stderr, "⚠ %s\n", warn)
		}
		if len(c.Records) == 0 {
			return nil
		}

		var still, sparkling, scoreSum int
		mins := map[water.Mineralization]int{}
		bands := map[scoring.Band]int{}
		for _, rec := range c.Records {
			if rec.Type == water.Sparkling {
				sparkling++
			} else {
				still++
			}
			scoreSum += rec.Score
			mins[rec.Categories.Mineralization]++
			bands[scoring.BandOf(rec.Score)]++
		}

		fmt.Printf("Types: %d still, %d sparkling\n", still, sparkling)
		fmt.Printf("Average score: %.1f\n\n", float64(scoreSum)/float64(len(c.Records)))

		fmt.Println("[MINERALIZATION]")
		for _, k := range sortedMineralizations(mins) {
			fmt.Printf("- %s: %d\n", k, mins[k])
		}
		fmt.Println("\n[QUALITY BANDS]")
		for _, b := range []scoring.Band{scoring.BandExcellent, scoring.BandGood, scoring.BandFair, scoring.BandPoor} {
			fmt.Printf("- %s: %d\n", b, bands[b])
		}
		return nil
	},
}

func sortedMineralizations(m map[water.Mineralization]int) []water.Mineralization {
	keys := make([]water.Mineralization, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
