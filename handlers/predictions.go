package handlers

import (
	"net/http"
	"strconv"

	"review-sentiment/database"
	"review-sentiment/sentiment"

	"github.com/gin-gonic/gin"
)

const maxHistoryLimit = 500

// GetPredictions lists recorded predictions, newest first.
func (h *Handler) GetPredictions(c *gin.Context) {
	if !h.historyEnabled(c) {
		return
	}
	label, ok := h.labelParam(c)
	if !ok {
		return
	}

	predictions, err := h.history.List(c.Request.Context(), database.Filter{
		Label: label,
		Limit: h.limitParam(c),
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "code": CodeDatabaseError})
		return
	}

	c.JSON(http.StatusOK, predictions)
}

// GetStats reports prediction counts and average confidence.
func (h *Handler) GetStats(c *gin.Context) {
	if !h.historyEnabled(c) {
		return
	}
	label, ok := h.labelParam(c)
	if !ok {
		return
	}

	stats, err := h.history.Stats(c.Request.Context(), label)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "code": CodeDatabaseError})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) historyEnabled(c *gin.Context) bool {
	if h.history != nil {
		return true
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Prediction history is disabled", "code": CodeHistoryDisabled})
	return false
}

// labelParam accepts "", "Positive" or "Negative".
func (h *Handler) labelParam(c *gin.Context) (string, bool) {
	label := c.Query("label")
	switch sentiment.Label(label) {
	case "", sentiment.Positive, sentiment.Negative:
		return label, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "label must be Positive or Negative", "code": CodeInvalidLabel})
	return "", false
}

// limitParam falls back to the configured page size and is capped.
func (h *Handler) limitParam(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = h.historyLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return limit
}
