package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invkit/invkit/inv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	noColor  bool
	encoding string
	buckets  int
)

var rootCmd = &cobra.Command{
	Use:   "invctl",
	Short: "Query product catalogs loaded from CSV files",
	Long: `invctl loads a product catalog CSV into an in-memory hash table and
category index, then answers queries against it: product lookup by unique id,
category listings, and table statistics.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&encoding, "encoding", "", "Source encoding (UTF-8, UTF-16LE, Windows-1252); BOM wins")
	rootCmd.PersistentFlags().
		IntVar(&buckets, "buckets", 0, "Initial hash table bucket count (0 = default)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadCatalog loads the source at path honoring the global flags.
func loadCatalog(path string) (*inv.Catalog, error) {
	printVerbose("Loading catalog: %s\n", path)
	c, err := inv.LoadCSVWithOptions(path, inv.LoadOptions{
		Encoding:       encoding,
		InitialBuckets: buckets,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	printVerbose("Loaded %d products in %d categories\n", c.Len(), len(c.Categories()))
	return c, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
