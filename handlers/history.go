package handlers

import (
	"net/http"

	"review-sentiment/database"
	"review-sentiment/models"
	"review-sentiment/sentiment"

	"github.com/gin-gonic/gin"
)

type HistoryData struct {
	Title       string
	Label       string
	Predictions []models.Prediction
	Stats       *database.Stats
}

// HistoryPage renders recent predictions with their stats.
func (h *Handler) HistoryPage(c *gin.Context) {
	if h.history == nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Prediction history is disabled"})
		return
	}

	label := c.Query("label")
	if sentiment.Label(label) != sentiment.Positive && sentiment.Label(label) != sentiment.Negative {
		label = ""
	}

	ctx := c.Request.Context()
	predictions, err := h.history.List(ctx, database.Filter{Label: label, Limit: h.historyLimit})
	if err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Database error"})
		return
	}
	stats, err := h.history.Stats(ctx, label)
	if err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Database error"})
		return
	}

	c.HTML(http.StatusOK, "history.html", HistoryData{
		Title:       h.renderer.Blank().Title,
		Label:       label,
		Predictions: predictions,
		Stats:       stats,
	})
}
