package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list <csv> <category>",
		Aliases: []string{"listInventory"},
		Short:   "List products in a category",
		Long: `The list command prints the id and name of every product recorded under
the given category, in catalog load order.

Example:
  invctl list products.csv "Toys & Games"
  invctl list products.csv Electronics --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

func runList(args []string) error {
	csvPath := args[0]
	category := args[1]

	c, err := loadCatalog(csvPath)
	if err != nil {
		return err
	}

	ids, ok := c.InCategory(category)
	if !ok {
		if jsonOut {
			return printJSON(map[string]any{"found": false, "category": category})
		}
		printInfo("%s\n", renderNotFound("Invalid Category"))
		return nil
	}

	if jsonOut {
		type entry struct {
			UniqID      string `json:"uniqId"`
			ProductName string `json:"productName"`
		}
		out := make([]entry, 0, len(ids))
		for _, id := range ids {
			if p, ok := c.Find(id); ok {
				out = append(out, entry{UniqID: id, ProductName: p.ProductName})
			}
		}
		return printJSON(out)
	}

	for _, id := range ids {
		if p, ok := c.Find(id); ok {
			fmt.Fprintln(os.Stdout, renderCategoryLine(id, p.ProductName))
		}
	}
	return nil
}
