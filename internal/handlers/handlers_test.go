package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gamepoint-mx/storefront/internal/catalog"
	"github.com/gamepoint-mx/storefront/internal/config"
	"github.com/gamepoint-mx/storefront/internal/models"
	"github.com/gamepoint-mx/storefront/internal/orders"
	"github.com/gamepoint-mx/storefront/internal/stats"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
	P  *ProductHandler
	O  *OrderHandler
	S  *StatsHandler
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	catalogSvc := &catalog.Service{Repo: &catalog.GormRepo{DB: db}}
	orderSvc := &orders.Service{
		Repo:         &orders.GormRepo{DB: db},
		Rates:        config.DefaultRates(),
		Destinations: config.DefaultDestinations(),
	}

	return &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		P:  &ProductHandler{Svc: catalogSvc},
		O:  &OrderHandler{Svc: orderSvc},
		S:  &StatsHandler{Svc: &stats.Service{DB: db}},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
}
