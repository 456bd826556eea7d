package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"storefront.GO/cart"
	"storefront.GO/catalog"
	"storefront.GO/config"
	"storefront.GO/core/app"
)

var cartShowCmd = &cobra.Command{
	Use:   "cart:show <session>",
	Short: "Print the persisted cart of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(config.App(), config.Logger(), app.Options{})
		if err != nil {
			return err
		}
		defer a.Carts.Close()
		store := a.Carts.Get(cmd.Context(), args[0])
		printCart(cmd.OutOrStdout(), store.Snapshot())
		return nil
	},
}

func printCart(out io.Writer, s cart.State) {
	if s.Empty() {
		fmt.Fprintln(out, "cart is empty")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOLOR\tSIZE\tQTY\tPRICE\tSUBTOTAL")
	for _, l := range s.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.2f\t%.2f\n", l.ID, l.Name, l.Color, l.Size, l.Quantity, l.Price, catalog.FromCents(l.SubtotalCents()))
	}
	w.Flush()
	fmt.Fprintf(out, "%d items, total %.2f\n", s.TotalItems, s.TotalPrice())
}

func init() {
	rootCmd.AddCommand(cartShowCmd)
}
