package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/gamepoint-mx/storefront/internal/events"
	"github.com/gamepoint-mx/storefront/internal/logging"
	"github.com/gamepoint-mx/storefront/internal/models"
	"github.com/gamepoint-mx/storefront/internal/orders"
	"github.com/gamepoint-mx/storefront/internal/transport"
)

type OrderHandler struct {
	Svc      *orders.Service
	Producer *events.Producer
}

func (h *OrderHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	key, _ := event["orderCode"].(string)
	if err := h.Producer.PublishEvent(ctx, events.TopicOrders, key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	items, err := h.Svc.ListOrders(ctx)
	if err != nil {
		l.Error("get_orders_error", "status", 500, "reason", "cannot list orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, items)
}

// CreateInvoice is the checkout entry point: it returns payment
// instructions and records the order as pending.
func (h *OrderHandler) CreateInvoice(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_invoice")

	var req transport.CreateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_invoice_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, order, err := h.Svc.CreateInvoice(ctx, req)
	if err != nil {
		if errors.Is(err, orders.ErrValidation) {
			l.Warn("create_invoice_error", "status", 400, "reason", "invalid invoice request", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_invoice_error", "status", 500, "reason", "cannot store order", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(c, map[string]any{
		"type":      "order_created",
		"orderID":   order.ID,
		"orderCode": order.OrderCode,
		"total":     order.Total,
		"currency":  order.PaymentMethod,
	})

	l.Info("create_invoice_success", "order_code", order.OrderCode)
	return c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) CancelOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.cancel_order")

	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		l.Warn("cancel_order_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	order, err := h.Svc.CancelOrder(ctx, id)
	if err != nil {
		return h.mapStatusErr(l, "cancel_order_error", err)
	}

	h.publish(c, map[string]any{
		"type":      "order_cancelled",
		"orderID":   order.ID,
		"orderCode": order.OrderCode,
	})

	l.Info("cancel_order_success", "order_code", order.OrderCode)
	return c.JSON(http.StatusOK, order)
}

// SetStatus is the admin path that makes completed/failed reachable.
func (h *OrderHandler) SetStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.set_status")

	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		l.Warn("set_status_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var req transport.SetStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_status_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	next, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		l.Warn("set_status_error", "status", 400, "reason", "unknown status", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.Svc.SetStatus(ctx, id, next)
	if err != nil {
		return h.mapStatusErr(l, "set_status_error", err)
	}

	l.Info("set_status_success", "order_code", order.OrderCode, "order_status", order.Status)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) mapStatusErr(l *slog.Logger, event string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		l.Warn(event, "status", 404, "reason", "order not found", "error", err)
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	case errors.Is(err, orders.ErrConflict):
		l.Warn(event, "status", 409, "reason", "disallowed status transition", "error", err)
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		l.Error(event, "status", 500, "reason", "cannot update order", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
