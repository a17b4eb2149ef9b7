package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamepoint-mx/storefront/internal/logging"
	"github.com/gamepoint-mx/storefront/internal/stats"
)

type StatsHandler struct {
	Svc *stats.Service
}

func (h *StatsHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stats.get_stats")

	totals, err := h.Svc.Totals(ctx)
	if err != nil {
		l.Error("get_stats_error", "status", 500, "reason", "cannot aggregate stats", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, totals)
}
