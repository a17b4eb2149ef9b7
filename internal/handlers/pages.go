package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the storefront shells; everything dynamic goes
// through the JSON API.
type PageHandler struct{}

func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

func (h *PageHandler) AdminPanel(c echo.Context) error {
	return c.Render(http.StatusOK, "admin.html", nil)
}

func (h *PageHandler) Checkout(c echo.Context) error {
	return c.Render(http.StatusOK, "checkout.html", nil)
}

func (h *PageHandler) Payment(c echo.Context) error {
	return c.Render(http.StatusOK, "payment.html", nil)
}
