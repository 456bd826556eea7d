// Package custom holds storefront extensions that hook into the api, cmd and graphql
// registries from init(). Import it for side effects.
package custom

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"storefront.GO/api"
	"storefront.GO/cmd"
	gqlregistry "storefront.GO/graphql/registry"
	"storefront.GO/promo"
)

// CountdownResponse is the display state of the promotional countdowns.
type CountdownResponse struct {
	FlashSale promo.Clock `json:"flashSale"`
	Hero      promo.Clock `json:"hero"`
}

func Countdowns() CountdownResponse {
	return CountdownResponse{FlashSale: promo.FlashSale.Clock(), Hero: promo.Hero.Clock()}
}

func init() {
	// _extension(name: "countdown")
	gqlregistry.Register("countdown", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return Countdowns(), nil
	})

	cmd.Register(&cobra.Command{
		Use:   "promo:countdown",
		Short: "Print the flash-sale and hero countdowns",
		Run: func(c *cobra.Command, args []string) {
			cd := Countdowns()
			fmt.Fprintf(c.OutOrStdout(), "flash sale: %s\nhero:       %s\n", cd.FlashSale, cd.Hero)
		},
	})

	api.RegisterGET("/promo/countdown", func(c echo.Context) error {
		return c.JSON(http.StatusOK, Countdowns())
	})
}
