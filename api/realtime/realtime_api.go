package realtime

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"storefront.GO/api"
	"storefront.GO/cart"
	"storefront.GO/core/session"
	"storefront.GO/listing"
	"storefront.GO/promo"
)

func init() {
	api.RegisterModule(RegisterRealtimeRoutes)
}

// Badge is the header cart indicator.
type Badge struct {
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

// SnapshotResponse is everything the storefront header and home page poll for.
type SnapshotResponse struct {
	Cart      Badge                 `json:"cart"`
	FlashSale promo.Clock           `json:"flashSale"`
	Hero      promo.Clock           `json:"hero"`
	Deals     []listing.DealSection `json:"deals"`
}

func badge(s cart.State) Badge {
	return Badge{TotalItems: s.TotalItems, TotalPrice: s.TotalPrice()}
}

// RegisterRealtimeRoutes sets up the polling endpoints of the storefront shell.
func RegisterRealtimeRoutes(apiGroup *echo.Group, d *api.Deps) {
	g := apiGroup.Group("/realtime", session.Middleware(nil))

	// GET /api/realtime/snapshot – cart badge, countdowns and deals in one call
	g.GET("/snapshot", func(c echo.Context) error {
		start := time.Now()

		var res SnapshotResponse

		eg, ctx := errgroup.WithContext(c.Request().Context())

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res.Cart = badge(d.Carts.Get(ctx, session.ID(c)).Reload(ctx))
			return nil
		})

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res.Deals = listing.Deals(d.Catalog.All())
			return nil
		})

		res.FlashSale = promo.FlashSale.Clock()
		res.Hero = promo.Hero.Clock()

		if err := eg.Wait(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
		}

		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, res)
	})

	// GET /api/realtime/cart-badge – cart indicator only
	g.GET("/cart-badge", func(c echo.Context) error {
		ctx := c.Request().Context()
		return c.JSON(http.StatusOK, badge(d.Carts.Get(ctx, session.ID(c)).Reload(ctx)))
	})
}
