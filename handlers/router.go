package handlers

import (
	"net/http"

	"review-sentiment/logger"
	"review-sentiment/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(h *Handler, log logger.Logger) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", h.Index)
	r.POST("/predict", h.PredictPage)
	r.GET("/history", h.HistoryPage)

	api := r.Group("/api")
	{
		api.POST("/predict", h.Predict)
		api.GET("/predictions", h.GetPredictions)
		api.GET("/stats", h.GetStats)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r, nil
}
