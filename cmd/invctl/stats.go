package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <csv>",
		Short: "Show catalog statistics",
		Long: `The stats command loads the catalog and reports hash table metrics
(entries, buckets, load factor, chain lengths) plus category index metrics.

Example:
  invctl stats products.csv
  invctl stats products.csv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

func runStats(args []string) error {
	c, err := loadCatalog(args[0])
	if err != nil {
		return err
	}

	s := c.Stats()
	if jsonOut {
		return printJSON(s)
	}

	printInfo("Products:        %d\n", s.Table.Entries)
	printInfo("Buckets:         %d\n", s.Table.Buckets)
	printInfo("Load factor:     %.3f\n", s.Table.LoadFactor)
	printInfo("Used buckets:    %d\n", s.Table.UsedBuckets)
	printInfo("Longest chain:   %d\n", s.Table.MaxChain)
	printInfo("Avg used chain:  %.2f\n", s.Table.AvgChainUsed)
	printInfo("Categories:      %d\n", s.Categories.Categories)
	printInfo("Category refs:   %d\n", s.Categories.Entries)
	printInfo("Largest bucket:  %d\n", s.Categories.MaxBucket)
	return nil
}
