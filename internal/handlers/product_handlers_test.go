package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/gifthub/gifthub/internal/events"
	"github.com/gifthub/gifthub/internal/models"
)

func TestCreateAndGetProduct(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHandler{DB: env.DB, Producer: events.NewProducerWithWriter(env.Writer)}

	payload := map[string]interface{}{"name": "teddy bear", "description": "soft", "price": 19.9, "count": 5}
	rec, c := env.doJSONRequest(http.MethodPost, "/products", payload)
	require.NoError(t, h.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	recGet, cGet := env.doJSONRequest(http.MethodGet, "/products/"+fmt.Sprint(created.ID), nil)
	cGet.SetParamNames("id")
	cGet.SetParamValues(fmt.Sprint(created.ID))
	require.NoError(t, h.GetProduct(cGet))
	require.Equal(t, http.StatusOK, recGet.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(recGet.Body.Bytes(), &got))
	require.Equal(t, "teddy bear", got.Name)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHandler{DB: env.DB}

	_, c := env.doJSONRequest(http.MethodGet, "/products/999", nil)
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.GetProduct(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetProductsPagination(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHandler{DB: env.DB}

	for i := 0; i < 15; i++ {
		env.createProduct(t, fmt.Sprintf("gift-%d", i))
	}

	rec, c := env.doJSONRequest(http.MethodGet, "/products?page=2&size=10", nil)
	require.NoError(t, h.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Product       `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 5)
	require.Equal(t, float64(15), resp.Meta["total"])
	require.Equal(t, true, resp.Meta["has_prev"])
	require.Equal(t, false, resp.Meta["has_next"])
}
