package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_predictions_total",
			Help: "Total number of reviews classified, by label",
		},
		[]string{"label"},
	)

	EmptyReviewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_empty_reviews_total",
			Help: "Total number of empty or whitespace-only submissions",
		},
	)

	PredictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiment_prediction_duration_seconds",
			Help:    "Time spent vectorizing and classifying one review",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	HistoryWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_history_write_failures_total",
			Help: "Total number of predictions that could not be recorded",
		},
	)
)
