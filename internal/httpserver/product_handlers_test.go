package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtneystore/catalog-api/internal/models"
	"github.com/courtneystore/catalog-api/internal/transport"
)

func TestGetProducts_EmptyStoreYieldsEmptyArray(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/products", nil)
	require.NoError(t, env.P.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestProductLifecycle(t *testing.T) {
	env := newTestEnv(t)

	// Create with a field subset; description and image stay empty.
	rec, c := env.doJSONRequest(http.MethodPost, "/products", map[string]any{
		"name":  "Chair",
		"price": 49.99,
	})
	require.NoError(t, env.P.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	assert.Equal(t, "Chair", created.Name)
	assert.Equal(t, 49.99, created.Price)
	assert.Empty(t, created.Description)
	assert.Empty(t, created.Image)

	idStr := fmt.Sprint(created.ID)

	// Round-trip.
	rec, c = env.doJSONRequest(http.MethodGet, "/products/"+idStr, nil)
	c.SetParamNames("id")
	c.SetParamValues(idStr)
	require.NoError(t, env.P.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	// Partial update changes only the supplied field.
	rec, c = env.doJSONRequest(http.MethodPut, "/products/"+idStr, map[string]any{
		"price": 39.99,
	})
	c.SetParamNames("id")
	c.SetParamValues(idStr)
	require.NoError(t, env.P.UpdateProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Chair", updated.Name)
	assert.Equal(t, 39.99, updated.Price)

	// Delete, then fetching reports not found.
	rec, c = env.doJSONRequest(http.MethodDelete, "/products/"+idStr, nil)
	c.SetParamNames("id")
	c.SetParamValues(idStr)
	require.NoError(t, env.P.DeleteProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Product deleted", resp.Message)

	_, c = env.doJSONRequest(http.MethodGet, "/products/"+idStr, nil)
	c.SetParamNames("id")
	c.SetParamValues(idStr)
	err := env.P.GetProduct(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetProduct_MalformedID(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/products/not-an-id", nil)
	c.SetParamNames("id")
	c.SetParamValues("not-an-id")

	err := env.P.GetProduct(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestUpdateProduct_MissingIDIsEmptySuccess(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPut, "/products/12345", map[string]any{
		"name": "ghost",
	})
	c.SetParamNames("id")
	c.SetParamValues("12345")
	require.NoError(t, env.P.UpdateProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestDeleteProduct_MissingIDSucceeds(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodDelete, "/products/12345", nil)
	c.SetParamNames("id")
	c.SetParamValues("12345")
	require.NoError(t, env.P.DeleteProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Product deleted", resp.Message)
}
