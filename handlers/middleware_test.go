package handlers

import (
	"errors"
	"net/http"
	"testing"

	"review-sentiment/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := gin.New()
	r.Use(RequestLogger(logger.NewZapAdapter(zap.New(core))))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("database is locked"))
		c.Status(http.StatusInternalServerError)
	})

	get(r, "/ok")
	get(r, "/bad")
	get(r, "/boom")

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "request served", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, http.MethodGet, ctx["method"])
	assert.Equal(t, "/ok", ctx["path"])
	assert.EqualValues(t, http.StatusOK, ctx["status"])
	assert.Contains(t, ctx, "latency_ms")
	assert.Contains(t, ctx, "client_ip")
	assert.NotContains(t, ctx, "error")

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "request rejected", entries[1].Message)
	assert.EqualValues(t, http.StatusBadRequest, entries[1].ContextMap()["status"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "request failed", entries[2].Message)
	ctx = entries[2].ContextMap()
	assert.Equal(t, "/boom", ctx["path"])
	assert.Equal(t, "database is locked", ctx["error"])
}
