package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newFindCmd())
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <csv> <uniq-id>",
		Short: "Look up a product by its unique id",
		Long: `The find command loads the catalog and looks up a single product by its
unique id, printing its details field by field.

Example:
  invctl find products.csv 4c69b61db1fc16e7013b43fc926e502d
  invctl find products.csv 4c69b61db1fc16e7013b43fc926e502d --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args)
		},
	}
	return cmd
}

func runFind(args []string) error {
	csvPath := args[0]
	id := args[1]

	c, err := loadCatalog(csvPath)
	if err != nil {
		return err
	}

	p, ok := c.Find(id)
	if !ok {
		if jsonOut {
			return printJSON(map[string]any{"found": false, "uniqId": id})
		}
		printInfo("%s\n", renderNotFound("Inventory not found"))
		return nil
	}

	if jsonOut {
		return printJSON(p)
	}
	fmt.Fprint(os.Stdout, renderProduct(p))
	return nil
}
