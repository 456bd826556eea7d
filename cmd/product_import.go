package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	catalogService "storefront.GO/service/catalog"
)

var (
	importFile    string
	importBatch   int
	importFixture bool
)

var importCmd = &cobra.Command{
	Use:   "products:import",
	Short: "Import products from CSV (or the built-in fixture) into the products table",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if importFile == "" && !importFixture {
			return fmt.Errorf("one of --file or --fixture is required")
		}

		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}

		if importFixture {
			n, err := catalogService.SeedFixture(db)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			fmt.Fprintf(out, "Seeded %d fixture products\n", n)
			if importFile == "" {
				return nil
			}
		}

		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("failed to open CSV: %w", err)
		}
		defer f.Close()

		res, err := catalogService.ImportProducts(db, f, catalogService.ImportOptions{BatchSize: importBatch})
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		for _, w := range res.Warnings {
			fmt.Fprintf(out, "  [warn] %s\n", w)
		}
		fmt.Fprintf(out, `
=== Import Report ===
CSV rows:       %d
Created:        %d
Updated:        %d
Skipped:        %d
Total time:     %s
  - Processing: %s
  - DB upsert:  %s
=====================
`, res.TotalRows, res.Created, res.Updated, res.Skipped,
			res.TotalTime.Round(time.Millisecond),
			res.ProcessTime.Round(time.Millisecond),
			res.DBTime.Round(time.Millisecond))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path")
	importCmd.Flags().IntVar(&importBatch, "batch-size", 500, "Batch size for DB operations")
	importCmd.Flags().BoolVar(&importFixture, "fixture", false, "Seed the built-in fixture catalog first")
	rootCmd.AddCommand(importCmd)
}
