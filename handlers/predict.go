package handlers

import (
	"errors"
	"net/http"

	"review-sentiment/page"
	"review-sentiment/sentiment"

	"github.com/gin-gonic/gin"
)

// Error codes returned by the JSON API.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeEmptyReview     = "EMPTY_REVIEW"
	CodePredictFailed   = "PREDICTION_FAILED"
	CodeHistoryDisabled = "HISTORY_DISABLED"
	CodeInvalidLabel    = "INVALID_LABEL"
	CodeDatabaseError   = "DATABASE_ERROR"
)

type PredictRequest struct {
	Review string `json:"review"`
}

type PredictResponse struct {
	ID         string          `json:"id,omitempty"`
	Label      sentiment.Label `json:"label"`
	Class      string          `json:"class"`
	Confidence float64         `json:"confidence"`
	Message    string          `json:"message"`
}

// Predict is the JSON counterpart of PredictPage.
func (h *Handler) Predict(c *gin.Context) {
	var request PredictRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": CodeInvalidRequest})
		return
	}

	res, id, err := h.predict(c.Request.Context(), request.Review)
	if errors.Is(err, sentiment.ErrEmptyReview) {
		c.JSON(http.StatusBadRequest, gin.H{"error": page.EmptyWarning, "code": CodeEmptyReview})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Prediction failed", "code": CodePredictFailed})
		return
	}

	c.JSON(http.StatusOK, PredictResponse{
		ID:         id,
		Label:      res.Label,
		Class:      res.Class,
		Confidence: res.Confidence,
		Message:    page.ResultText(res.Label),
	})
}
