package handlers

import (
	"context"
	"errors"
	"time"

	"review-sentiment/database"
	"review-sentiment/logger"
	"review-sentiment/metrics"
	"review-sentiment/models"
	"review-sentiment/page"
	"review-sentiment/sentiment"
)

// Analyzer classifies a single review.
type Analyzer interface {
	Analyze(ctx context.Context, review string) (sentiment.Result, error)
}

// History records predictions and serves them back. A nil History disables
// the history endpoints.
type History interface {
	Record(ctx context.Context, review string, res sentiment.Result) (*models.Prediction, error)
	List(ctx context.Context, f database.Filter) ([]models.Prediction, error)
	Stats(ctx context.Context, label string) (*database.Stats, error)
}

// Handler serves the review page, the JSON API and the history views.
type Handler struct {
	analyzer     Analyzer
	history      History
	renderer     *page.Renderer
	log          logger.Logger
	historyLimit int
}

func New(analyzer Analyzer, history History, renderer *page.Renderer, log logger.Logger, historyLimit int) *Handler {
	return &Handler{
		analyzer:     analyzer,
		history:      history,
		renderer:     renderer,
		log:          log,
		historyLimit: historyLimit,
	}
}

// predict runs the analyzer, updates metrics and records the outcome. The
// returned id is empty when history is disabled or the write failed.
func (h *Handler) predict(ctx context.Context, review string) (sentiment.Result, string, error) {
	start := time.Now()
	res, err := h.analyzer.Analyze(ctx, review)
	if errors.Is(err, sentiment.ErrEmptyReview) {
		metrics.EmptyReviewsTotal.Inc()
		return res, "", err
	}
	if err != nil {
		return res, "", err
	}
	metrics.PredictionDuration.Observe(time.Since(start).Seconds())
	metrics.PredictionsTotal.WithLabelValues(string(res.Label)).Inc()

	h.log.Debug("review classified", map[string]interface{}{
		"label":      res.Label,
		"class":      res.Class,
		"confidence": res.Confidence,
		"length":     len(review),
	})

	if h.history == nil {
		return res, "", nil
	}
	// A failed history write never costs the user their prediction.
	p, err := h.history.Record(ctx, review, res)
	if err != nil {
		metrics.HistoryWriteFailures.Inc()
		h.log.WithError(err).Warn("failed to record prediction", nil)
		return res, "", nil
	}
	return res, p.ID, nil
}
