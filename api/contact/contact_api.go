package contact

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/service/contact"
)

func init() {
	api.RegisterModule(RegisterContactRoutes)
}

func RegisterContactRoutes(apiGroup *echo.Group, d *api.Deps) {
	// POST /api/contact – blocks for the simulated submission delay
	apiGroup.POST("/contact", func(c echo.Context) error {
		var msg contact.Message
		if err := c.Bind(&msg); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		receipt, err := d.Contact.Send(msg)
		if errors.Is(err, contact.ErrMissingField) || errors.Is(err, contact.ErrInvalidEmail) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, receipt)
	})
}
