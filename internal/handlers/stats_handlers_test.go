package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gamepoint-mx/storefront/internal/models"
	"github.com/gamepoint-mx/storefront/internal/transport"
)

func TestStatsEmptyStore(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/stats", nil)
	require.NoError(t, env.S.GetStats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Zero(t, resp.TotalProducts)
	require.Zero(t, resp.TotalOrders)
	require.Zero(t, resp.TotalRevenue)
}

func TestStatsOnlyCompletedOrdersCount(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.DB.Create(&models.Product{
		Name: "x", Platform: "p", Duration: "d", Price: 1, ImageURL: "u",
	}).Error)

	seed := []models.Order{
		{OrderCode: "GP000001", CustomerEmail: "a@example.com", ItemsCount: 1, Total: 25.50, PaymentMethod: "BTC", Status: models.StatusCompleted},
		{OrderCode: "GP000002", CustomerEmail: "b@example.com", ItemsCount: 1, Total: 10.00, PaymentMethod: "LTC", Status: models.StatusPending},
		{OrderCode: "GP000003", CustomerEmail: "c@example.com", ItemsCount: 1, Total: 99.00, PaymentMethod: "ETH", Status: models.StatusCancelled},
	}
	for i := range seed {
		require.NoError(t, env.DB.Create(&seed[i]).Error)
	}

	rec, c := env.doJSONRequest(http.MethodGet, "/api/stats", nil)
	require.NoError(t, env.S.GetStats(c))

	var resp transport.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.EqualValues(t, 1, resp.TotalProducts)
	require.EqualValues(t, 3, resp.TotalOrders)
	require.InDelta(t, 25.50, resp.TotalRevenue, 1e-9)
}
