package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"review-sentiment/logger"
	"review-sentiment/sentiment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := Connect(filepath.Join(t.TempDir(), "predictions.db"), logger.NewTestLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	store := NewStore(db)
	base := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	var tick int
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return store
}

func seed(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	rows := []struct {
		review string
		res    sentiment.Result
	}{
		{"loved it", sentiment.Result{Label: sentiment.Positive, Class: "positive", Confidence: 0.9}},
		{"dull", sentiment.Result{Label: sentiment.Negative, Class: "negative", Confidence: 0.6}},
		{"brilliant cast", sentiment.Result{Label: sentiment.Positive, Class: "positive", Confidence: 0.7}},
	}
	for _, r := range rows {
		_, err := s.Record(ctx, r.review, r.res)
		require.NoError(t, err)
	}
}

func TestStore_Record(t *testing.T) {
	s := setupStore(t)

	p, err := s.Record(context.Background(), "great movie", sentiment.Result{
		Label: sentiment.Positive, Class: "positive", Confidence: 0.8,
	})
	require.NoError(t, err)

	assert.Len(t, p.ID, 36)
	assert.Equal(t, "great movie", p.Review)
	assert.Equal(t, "Positive", p.Label)
	assert.Equal(t, "positive", p.Class)
	assert.InDelta(t, 0.8, p.Confidence, 1e-9)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestStore_List(t *testing.T) {
	s := setupStore(t)
	seed(t, s)
	ctx := context.Background()

	all, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "brilliant cast", all[0].Review)
	assert.Equal(t, "loved it", all[2].Review)

	limited, err := s.List(ctx, Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "brilliant cast", limited[0].Review)

	negative, err := s.List(ctx, Filter{Label: "Negative"})
	require.NoError(t, err)
	require.Len(t, negative, 1)
	assert.Equal(t, "dull", negative[0].Review)
}

func TestStore_Stats(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	empty, err := s.Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, Stats{}, *empty)

	seed(t, s)

	stats, err := s.Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Positive)
	assert.Equal(t, int64(1), stats.Negative)
	assert.InDelta(t, (0.9+0.6+0.7)/3, stats.AvgConfidence, 1e-9)

	positive, err := s.Stats(ctx, "Positive")
	require.NoError(t, err)
	assert.Equal(t, int64(2), positive.Total)
	assert.Equal(t, int64(0), positive.Negative)
	assert.InDelta(t, 0.8, positive.AvgConfidence, 1e-9)
}
