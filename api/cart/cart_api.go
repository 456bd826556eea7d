package cart

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront.GO/api"
	"storefront.GO/cart"
	"storefront.GO/catalog"
	"storefront.GO/core/session"
	"storefront.GO/service/checkout"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// ItemRequest addresses one cart line; Quantity is ignored on delete.
type ItemRequest struct {
	ProductID string `json:"productId" query:"productId"`
	Color     string `json:"color" query:"color"`
	Size      string `json:"size" query:"size"`
	Quantity  int    `json:"quantity" query:"quantity"`
}

func (r ItemRequest) key() cart.Key {
	return cart.Key{ID: r.ProductID, Color: r.Color, Size: r.Size}
}

func RegisterCartRoutes(apiGroup *echo.Group, d *api.Deps) {
	g := apiGroup.Group("/cart", session.Middleware(nil))
	log := d.Logger().Named("api.cart")

	store := func(c echo.Context) *cart.Store {
		return d.Carts.Get(c.Request().Context(), session.ID(c))
	}

	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, store(c).Snapshot())
	})

	// POST /api/cart/items {"productId":"1","color":"black","size":"M","quantity":2}
	g.POST("/items", func(c echo.Context) error {
		var req ItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		p, err := d.Catalog.ByID(req.ProductID)
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		state, err := store(c).AddToCart(c.Request().Context(), p, cart.Options{
			Color:    req.Color,
			Size:     req.Size,
			Quantity: req.Quantity,
		})
		if errors.Is(err, cart.ErrInvalidColor) || errors.Is(err, cart.ErrInvalidSize) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, state)
	})

	// PATCH /api/cart/items – set quantity; zero or less removes the line
	g.PATCH("/items", func(c echo.Context) error {
		var req ItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if req.ProductID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "productId is required"})
		}
		return c.JSON(http.StatusOK, store(c).UpdateQuantity(c.Request().Context(), req.key(), req.Quantity))
	})

	// DELETE /api/cart/items?productId=1&color=black&size=M
	g.DELETE("/items", func(c echo.Context) error {
		var req ItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if req.ProductID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "productId is required"})
		}
		return c.JSON(http.StatusOK, store(c).RemoveFromCart(c.Request().Context(), req.key()))
	})

	g.DELETE("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, store(c).ClearCart(c.Request().Context()))
	})

	// POST /api/cart/checkout – blocks for the simulated submission delay
	g.POST("/checkout", func(c echo.Context) error {
		order, err := d.Checkout.Checkout(c.Request().Context(), store(c))
		if errors.Is(err, checkout.ErrEmptyCart) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err != nil {
			log.Error("checkout failed", zap.String("session", session.ID(c)), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, order)
	})
}
