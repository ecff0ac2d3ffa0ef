package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aquabench/aquabench-cli/internal/query"
	"github.com/aquabench/aquabench-cli/internal/scoring"
	"github.com/aquabench/aquabench-cli/internal/water"
)

var (
	listType           string
	listSearch         string
	listMineralization string
	listUsage          string
	listBand           string
	listSortKey        string
	listSortDir        string
	listLimit          int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List waters with filters and sorting",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadDataset()
		if err != nil {
			return err
		}

		f := query.Filter{
			Type:           query.AllTypes(),
			Text:           listSearch,
			Mineralization: water.Mineralization(listMineralization),
			Usage:          water.Usage(listUsage),
			ScoreBand:      scoring.Band(listBand),
		}
		switch listType {
		case "still":
			f.Type = query.TypeFilter{Still: true}
		case "sparkling":
			f.Type = query.TypeFilter{Sparkling: true}
		case "", "all":
		default:
			return fmt.Errorf("--type must be 'still', 'sparkling' or 'all'")
		}

		s := query.Sort{Key: query.Key(listSortKey), Direction: query.Direction(listSortDir)}

		results := query.Run(c.Records, f, s)
		if len(results) == 0 {
			fmt.Println("(no waters match)")
			return nil
		}
		if listLimit > 0 && len(results) > listLimit {
			results = results[:listLimit]
		}

		fmt.Printf("%-28s %-10s %5s %-10s %6s %8s %8s  %s\n",
			"NAME", "TYPE", "SCORE", "BAND", "PH", "CA", "MG", "REGION")
		for _, rec := range results {
			fmt.Printf("%-28s %-10s %5d %-10s %6s %8s %8s  %s\n",
				truncate(rec.Name, 28), rec.Type, rec.Score, scoring.BandOf(rec.Score),
				fmtOpt(rec.PH), fmtOpt(rec.Calcium), fmtOpt(rec.Magnesium), rec.Region)
		}
		fmt.Printf("\n%d water(s)\n", len(results))
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "all", "filter by type: still|sparkling|all")
	listCmd.Flags().StringVarP(&listSearch, "search", "q", "", "free-text search over name, region and owner")
	listCmd.Flags().StringVar(&listMineralization, "mineralization", "", "filter by bucket: very-low|low|medium|high")
	listCmd.Flags().StringVar(&listUsage, "usage", "", "filter by usage tag (infants, sport, ...)")
	listCmd.Flags().StringVar(&listBand, "band", "", "filter by quality band: excellent|good|fair|poor")
	listCmd.Flags().StringVar(&listSortKey, "sort", "score", "sort key: name|type|score|ph|calcium|magnesium|sparkling|origin")
	listCmd.Flags().StringVar(&listSortDir, "direction", "desc", "sort direction: asc|desc")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "show at most N results (0 = all)")
	rootCmd.AddCommand(listCmd)
}
