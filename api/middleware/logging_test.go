package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func makeRouter(buf *bytes.Buffer, options ...LoggerOption) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	r := gin.New()
	r.Use(NewLogging(logger, options...))
	r.GET("/liveness", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/score", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	return r
}

func TestNewLogging_logsMethodRouteAndStatus(t *testing.T) {
	var buf bytes.Buffer
	r := makeRouter(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/score", nil))

	line := buf.String()
	assert.Contains(t, line, `"msg":"POST /score"`)
	assert.Contains(t, line, `"route":"/score"`)
	assert.Contains(t, line, `"status":400`)
	assert.Contains(t, line, `"level":"WARN"`)
}

func TestNewLogging_ignoredPathStaysQuiet(t *testing.T) {
	var buf bytes.Buffer
	r := makeRouter(&buf, WithIgnorePath([]string{"/liveness"}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/liveness", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, buf.String())
}
