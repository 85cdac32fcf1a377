package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSearchMissingQuery(t *testing.T) {
	env := newTestEnv(t)
	h := NewSearchHandler(nil, "products")

	_, c := env.doJSONRequest(http.MethodGet, "/search", nil)

	err := h.Search(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestSearchErrorBodyIsOpaque(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{ts.URL}})
	require.NoError(t, err)

	env := newTestEnv(t)
	h := NewSearchHandler(client, "products")

	_, c := env.doJSONRequest(http.MethodGet, "/search?q=mug", nil)

	err = h.Search(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusInternalServerError, he.Code)
	require.Equal(t, "internal error", he.Message)
}
