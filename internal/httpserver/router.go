package httpserver

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/gamepoint-mx/storefront/internal/handlers"
)

type Deps struct {
	DB             *gorm.DB
	WebDir         string
	PageHandler    *handlers.PageHandler
	ProductHandler *handlers.ProductHandler
	OrderHandler   *handlers.OrderHandler
	StatsHandler   *handlers.StatsHandler
	SearchHandler  *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.Static("/static", filepath.Join(d.WebDir, "static"))
	e.GET("/", d.PageHandler.Home)
	e.GET("/adminpanelconfig", d.PageHandler.AdminPanel)
	e.GET("/checkout", d.PageHandler.Checkout)
	e.GET("/payment", d.PageHandler.Payment)

	api := e.Group("/api")

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.POST("", d.ProductHandler.CreateProduct)
	if d.SearchHandler != nil {
		products.GET("/search", d.SearchHandler.Search)
	}
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	orders := api.Group("/orders")
	orders.GET("", d.OrderHandler.GetOrders)
	orders.PUT("/:id/cancel", d.OrderHandler.CancelOrder)
	orders.PUT("/:id/status", d.OrderHandler.SetStatus)

	api.POST("/create-invoice", d.OrderHandler.CreateInvoice)
	api.GET("/stats", d.StatsHandler.GetStats)
}
