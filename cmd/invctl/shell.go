package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/invkit/invkit/inv"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newShellCmd())
}

func newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell <csv>",
		Short: "Interactive query shell",
		Long: `The shell command loads the catalog once and then answers queries
interactively until :quit.

Commands inside the shell:
  find <uniq-id>             look up one product
  listInventory <category>   list id and name per product in the category
  :help                      show shell help
  :quit                      exit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(args)
		},
	}
	return cmd
}

func runShell(args []string) error {
	c, err := loadCatalog(args[0])
	if err != nil {
		return err
	}

	printInfo("\n Welcome to the Inventory Query System\n")
	printInfo(" enter :quit to exit, or :help to list supported commands.\n\n")

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprint(os.Stdout, renderPrompt())
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == ":quit" {
			break
		}
		evalLine(c, line, os.Stdout)
		fmt.Fprint(os.Stdout, renderPrompt())
	}
	return scanner.Err()
}

// evalLine dispatches one shell line against the catalog.
func evalLine(c *inv.Catalog, line string, w io.Writer) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == ":help":
		printShellHelp(w)

	case strings.HasPrefix(trimmed, "find"):
		// The argument starts after the first space; "find" glued to its
		// argument is a miss, matching the original dispatcher.
		_, arg, found := strings.Cut(trimmed, " ")
		id := strings.TrimSpace(arg)
		if !found || id == "" {
			fmt.Fprintln(w, renderNotFound("Inventory not found"))
			return
		}
		p, ok := c.Find(id)
		if !ok {
			fmt.Fprintln(w, renderNotFound("Inventory not found"))
			return
		}
		fmt.Fprint(w, renderProduct(p))

	case strings.HasPrefix(trimmed, "listInventory"):
		_, arg, found := strings.Cut(trimmed, " ")
		category := strings.TrimSpace(arg)
		if !found || category == "" {
			fmt.Fprintln(w, renderNotFound("Invalid Category"))
			return
		}
		ids, ok := c.InCategory(category)
		if !ok {
			fmt.Fprintln(w, renderNotFound("Invalid Category"))
			return
		}
		for _, id := range ids {
			if p, ok := c.Find(id); ok {
				fmt.Fprintln(w, renderCategoryLine(id, p.ProductName))
			}
		}

	default:
		fmt.Fprintln(w, "Command not supported. Enter :help for list of supported commands")
	}
}

func printShellHelp(w io.Writer) {
	fmt.Fprintln(w, "Supported list of commands:")
	fmt.Fprintln(w, " 1. find <inventoryid> - Finds if the inventory exists. If exists, prints details. If not, prints 'Inventory not found'.")
	fmt.Fprintln(w, " 2. listInventory <category_string> - Lists just the id and name of all inventory belonging to the specified category. If the category doesn't exists, prints 'Invalid Category'.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, " Use :quit to quit the shell")
}
