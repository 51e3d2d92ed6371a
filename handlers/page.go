package handlers

import (
	"errors"
	"net/http"

	"review-sentiment/sentiment"

	"github.com/gin-gonic/gin"
)

// Index renders the empty review form.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.renderer.Blank())
}

// PredictPage handles the form submission and renders the page again with
// either the warning or the predicted sentiment.
func (h *Handler) PredictPage(c *gin.Context) {
	review := c.PostForm("review")

	res, _, err := h.predict(c.Request.Context(), review)
	if errors.Is(err, sentiment.ErrEmptyReview) {
		c.HTML(http.StatusOK, "index.html", h.renderer.Warn(review))
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Prediction failed"})
		return
	}

	c.HTML(http.StatusOK, "index.html", h.renderer.Result(review, res.Label))
}
