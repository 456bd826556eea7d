package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"storefront.GO/catalog"
	"storefront.GO/config"
	"storefront.GO/listing"
)

var listPageSize int

var catalogListCmd = &cobra.Command{
	Use:   "catalog:list [query]",
	Short: `Print one listing page for a query string, e.g. "?brands=Nike&sort=price-asc&page=2"`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.App()
		var db *gorm.DB
		if cfg.CatalogSource == "db" {
			var err error
			if db, err = config.NewDB(); err != nil {
				return err
			}
		}
		cat, err := catalog.Load(cfg.CatalogSource, db)
		if err != nil {
			return err
		}

		raw := ""
		if len(args) == 1 {
			raw = args[0]
		}
		size := listPageSize
		if size <= 0 {
			size = cfg.PageSize
		}
		printListing(cmd.OutOrStdout(), cat, listing.Decode(raw), size)
		return nil
	},
}

func printListing(out io.Writer, cat *catalog.Catalog, state listing.State, pageSize int) {
	view := listing.NewView(state)
	res := view.Result(cat.All(), pageSize)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBRAND\tCATEGORY\tPRICE\tRATING")
	for _, p := range res.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.1f\n", p.ID, p.Name, p.Brand, p.Category, p.EffectivePrice(), p.RatingValue)
	}
	w.Flush()
	fmt.Fprintf(out, "page %d of %d, %d products, query %q\n", res.Page, res.TotalPages, res.TotalCount, view.Query())
}

func init() {
	catalogListCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Products per page (default PAGE_SIZE)")
	rootCmd.AddCommand(catalogListCmd)
}
