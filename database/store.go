package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"review-sentiment/models"
	"review-sentiment/sentiment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stats summarises the recorded predictions.
type Stats struct {
	Total         int64   `json:"total"`
	Positive      int64   `json:"positive"`
	Negative      int64   `json:"negative"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// Filter narrows List. Zero values mean "no filter".
type Filter struct {
	Label string
	Limit int
}

// Store records predictions and answers history queries.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Record saves one prediction and returns the stored row.
func (s *Store) Record(ctx context.Context, review string, res sentiment.Result) (*models.Prediction, error) {
	p := &models.Prediction{
		ID:         uuid.NewString(),
		Review:     review,
		Label:      string(res.Label),
		Class:      res.Class,
		Confidence: res.Confidence,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("record prediction: %w", err)
	}
	return p, nil
}

// List returns the most recent predictions first.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Prediction, error) {
	query := s.filtered(ctx, f.Label)
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	var out []models.Prediction
	if err := query.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	return out, nil
}

// Stats counts predictions per label, optionally restricted to one label.
func (s *Store) Stats(ctx context.Context, label string) (*Stats, error) {
	var stats Stats

	if err := s.filtered(ctx, label).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("count predictions: %w", err)
	}
	if err := s.filtered(ctx, label).Where("label = ?", string(sentiment.Positive)).Count(&stats.Positive).Error; err != nil {
		return nil, fmt.Errorf("count positive: %w", err)
	}
	if err := s.filtered(ctx, label).Where("label = ?", string(sentiment.Negative)).Count(&stats.Negative).Error; err != nil {
		return nil, fmt.Errorf("count negative: %w", err)
	}

	var avg sql.NullFloat64
	if err := s.filtered(ctx, label).Select("AVG(confidence)").Row().Scan(&avg); err != nil {
		return nil, fmt.Errorf("average confidence: %w", err)
	}
	stats.AvgConfidence = avg.Float64

	return &stats, nil
}

func (s *Store) filtered(ctx context.Context, label string) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Prediction{})
	if label != "" {
		query = query.Where("label = ?", label)
	}
	return query
}
