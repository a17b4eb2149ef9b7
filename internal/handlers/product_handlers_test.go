package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gamepoint-mx/storefront/internal/models"
)

func TestCreateAndListProducts(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{
		"name":      "Game Pass Ultimate",
		"platform":  "Xbox",
		"duration":  "1 mes",
		"price":     12.99,
		"stock":     50,
		"image_url": "https://cdn.example.com/gpu.png",
	}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/products", payload)
	require.NoError(t, env.P.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	require.Equal(t, "Game Pass Ultimate", created.Name)
	require.Equal(t, "Xbox", created.Platform)
	require.Equal(t, "1 mes", created.Duration)
	require.Equal(t, 12.99, created.Price)
	require.Nil(t, created.PriceBefore)
	require.Equal(t, 50, created.Stock)

	recList, cList := env.doJSONRequest(http.MethodGet, "/api/products", nil)
	require.NoError(t, env.P.GetProducts(cList))
	require.Equal(t, http.StatusOK, recList.Code)

	var listed []models.Product
	require.NoError(t, json.Unmarshal(recList.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, created.ID, listed[0].ID)
}

func TestCreateProductMissingFields(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{
		"platform":  "Steam",
		"duration":  "12 meses",
		"price":     29.99,
		"image_url": "https://cdn.example.com/x.png",
	}

	_, c := env.doJSONRequest(http.MethodPost, "/api/products", payload)
	requireHTTPError(t, env.P.CreateProduct(c), http.StatusBadRequest)

	var count int64
	require.NoError(t, env.DB.Model(&models.Product{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateProductRequiresStock(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{
		"name":      "PSN Plus",
		"platform":  "PlayStation",
		"duration":  "3 meses",
		"price":     24.99,
		"image_url": "https://cdn.example.com/psn.png",
	}

	_, c := env.doJSONRequest(http.MethodPost, "/api/products", payload)
	requireHTTPError(t, env.P.CreateProduct(c), http.StatusBadRequest)

	var count int64
	require.NoError(t, env.DB.Model(&models.Product{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestListProductsNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	first := models.Product{Name: "a", Platform: "p", Duration: "d", Price: 1, ImageURL: "u"}
	second := models.Product{Name: "b", Platform: "p", Duration: "d", Price: 2, ImageURL: "u"}
	require.NoError(t, env.DB.Create(&first).Error)
	require.NoError(t, env.DB.Create(&second).Error)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/products", nil)
	require.NoError(t, env.P.GetProducts(c))

	var listed []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	require.Equal(t, second.ID, listed[0].ID)
	require.Equal(t, first.ID, listed[1].ID)
}

func TestUpdateProductPartial(t *testing.T) {
	env := newTestEnv(t)

	before := 19.99
	seed := models.Product{
		Name:        "Nintendo Online",
		Platform:    "Switch",
		Duration:    "12 meses",
		Price:       17.49,
		PriceBefore: &before,
		Stock:       30,
		ImageURL:    "https://cdn.example.com/nso.png",
	}
	require.NoError(t, env.DB.Create(&seed).Error)

	rec, c := env.doJSONRequest(http.MethodPut, "/api/products/1", map[string]any{"price": 15.99})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.P.UpdateProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, 15.99, updated.Price)

	// every field absent from the payload keeps its stored value
	require.Equal(t, seed.Name, updated.Name)
	require.Equal(t, seed.Platform, updated.Platform)
	require.Equal(t, seed.Duration, updated.Duration)
	require.NotNil(t, updated.PriceBefore)
	require.Equal(t, before, *updated.PriceBefore)
	require.Equal(t, seed.Stock, updated.Stock)
	require.Equal(t, seed.ImageURL, updated.ImageURL)
}

func TestUpdateProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPut, "/api/products/42", map[string]any{"price": 1.0})
	c.SetParamNames("id")
	c.SetParamValues("42")
	requireHTTPError(t, env.P.UpdateProduct(c), http.StatusNotFound)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)

	seed := models.Product{Name: "x", Platform: "p", Duration: "d", Price: 1, ImageURL: "u"}
	require.NoError(t, env.DB.Create(&seed).Error)

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/products/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.P.DeleteProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	recList, cList := env.doJSONRequest(http.MethodGet, "/api/products", nil)
	require.NoError(t, env.P.GetProducts(cList))
	var listed []models.Product
	require.NoError(t, json.Unmarshal(recList.Body.Bytes(), &listed))
	require.Empty(t, listed)

	// repeated delete of the same id is a 404
	_, cAgain := env.doJSONRequest(http.MethodDelete, "/api/products/1", nil)
	cAgain.SetParamNames("id")
	cAgain.SetParamValues("1")
	requireHTTPError(t, env.P.DeleteProduct(cAgain), http.StatusNotFound)
}
