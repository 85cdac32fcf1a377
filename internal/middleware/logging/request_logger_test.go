package loggingmw

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
)

func serveWithLogger(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return rec, entry
}

func TestRequestLoggerGeneratedRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("User-Agent", "gifthub-test")

	rec, entry := serveWithLogger(t, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rid := rec.Header().Get(echo.HeaderXRequestID)
	require.NotEmpty(t, rid)
	require.Equal(t, rid, entry["request_id"])
	require.Equal(t, "gifthub-test", entry["user_agent"])
}

func TestRequestLoggerClientRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")

	rec, entry := serveWithLogger(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
	require.Equal(t, "abc-123", entry["request_id"])
}
