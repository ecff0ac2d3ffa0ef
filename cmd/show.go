package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aquabench/aquabench-cli/internal/query"
	"github.com/aquabench/aquabench-cli/internal/scoring"
)

var showCmd = &cobra.Command{
	Use:   "show <id-or-name>",
	Short: "Show the full detail sheet of one water",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadDataset()
		if err != nil {
			return err
		}
		rec := c.Find(args[0])
		if rec == nil {
			return fmt.Errorf("no water matching %q", args[0])
		}

		fmt.Printf("%s (%s)\n", rec.Name, rec.Type)
		fmt.Printf("Score: %d/100 — %s\n", rec.Score, scoring.BandOf(rec.Score))
		if tags := scoring.Suitability(rec); len(tags) > 0 {
			parts := make([]string, len(tags))
			for i, t := range tags {
				parts[i] = string(t)
			}
			fmt.Printf("Suitable for: %s\n", strings.Join(parts, ", "))
		}
		if rec.Region != "" {
			fmt.Printf("Region: %s (%s)\n", rec.Region, rec.Categories.Geography)
		}
		if rec.Owner != "" {
			fmt.Printf("Owner: %s\n", rec.Owner)
		}
		fmt.Printf("Mineralization: %s\n", rec.Categories.Mineralization)

		fmt.Println("\n[PHYSICO-CHEMICAL]")
		fmt.Printf("pH %s · conductivity %s µS/cm · dry residue %s mg/L · temperature %s °C\n",
			fmtOpt(rec.PH), fmtOpt(rec.Conductivity), fmtOpt(rec.DryResidue), fmtOpt(rec.Temperature))

		fmt.Println("\n[MINERALS mg/L]")
		maxima := (&query.MaximaCache{}).For(c.Records)
		printMineralBar("calcium", rec.Calcium, maxima.Calcium)
		printMineralBar("magnesium", rec.Magnesium, maxima.Magnesium)
		printMineralBar("sodium", rec.Sodium, maxima.Sodium)
		printMineralBar("bicarbonate", rec.Bicarbonate, maxima.Bicarbonate)
		fmt.Printf("potassium %s · chloride %s · sulfate %s · nitrate %s · fluoride %s · silica %s · iron %s\n",
			fmtOpt(rec.Potassium), fmtOpt(rec.Chloride), fmtOpt(rec.Sulfate),
			fmtOpt(rec.Nitrate), fmtOpt(rec.Fluoride), fmtOpt(rec.Silica), fmtOpt(rec.Iron))

		fmt.Println("\n[CONTAMINANTS]")
		fmt.Printf("microplastics %s p/L · PFAS sum %s ng/L · relevant pesticides %s µg/L\n",
			fmtOpt(rec.MicroplasticsPerLiter), fmtOpt(rec.PFASSum), fmtOpt(rec.RelevantPesticides))
		fmt.Printf("bisphenols %s µg/L · phthalates %s µg/L · drug residues %s\n",
			fmtOpt(rec.Bisphenols), fmtOpt(rec.Phthalates), orDash(rec.DrugResidueStatus))
		fmt.Printf("uranium %s µg/L · radon %s Bq/L · tritium %s Bq/L\n",
			fmtOpt(rec.Uranium), fmtOpt(rec.Radon), fmtOpt(rec.Tritium))

		fmt.Println("\n[COMPLIANCE]")
		fmt.Printf("national: %s · EU: %s · lab: %s · last analysis: %s\n",
			orDash(rec.NationalComplianceStatus), orDash(rec.EUComplianceStatus),
			orDash(rec.ControlLab), orDash(rec.LastAnalysisDate))

		if rec.RecommendedUses != "" {
			fmt.Printf("\nRecommended uses: %s\n", rec.RecommendedUses)
		}
		if rec.UsageRestrictions != "" {
			fmt.Printf("Restrictions: %s\n", rec.UsageRestrictions)
		}
		if rec.Certifications != "" {
			fmt.Printf("Certifications: %s\n", rec.Certifications)
		}
		return nil
	},
}

// printMineralBar renders a value scaled against the dataset maximum.
func printMineralBar(name string, v *float64, max float64) {
	const width = 30
	if v == nil {
		fmt.Printf("%-12s %5s\n", name, "-")
		return
	}
	filled := 0
	if max > 0 {
		filled = int(*v / max * width)
		if filled > width {
			filled = width
		}
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	fmt.Printf("%-12s %5s %s\n", name, fmtOpt(v), bar)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(showCmd)
}
