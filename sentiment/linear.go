package sentiment

import (
	"fmt"
	"math"
)

// LogisticRegression is a fitted binary linear model.
type LogisticRegression struct {
	Type      string    `json:"type"`
	Labels    []string  `json:"classes"`
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

func (m *LogisticRegression) init() error {
	if len(m.Labels) != 2 {
		return fmt.Errorf("%w: logistic regression needs exactly two classes, got %d", ErrIncompatibleModel, len(m.Labels))
	}
	if len(m.Coef) == 0 {
		return fmt.Errorf("%w: no coefficients", ErrIncompatibleModel)
	}
	return nil
}

// DecisionFunction is w·x + b. Features beyond the coefficient vector are
// ignored.
func (m *LogisticRegression) DecisionFunction(x SparseVector) float64 {
	score := m.Intercept
	for idx, val := range x {
		if idx >= 0 && idx < len(m.Coef) {
			score += m.Coef[idx] * val
		}
	}
	return score
}

func (m *LogisticRegression) Predict(x SparseVector) (Prediction, error) {
	score := m.DecisionFunction(x)
	p := 1 / (1 + math.Exp(-score))
	if score > 0 {
		return Prediction{Class: m.Labels[1], Confidence: p}, nil
	}
	return Prediction{Class: m.Labels[0], Confidence: 1 - p}, nil
}

func (m *LogisticRegression) Classes() []string { return m.Labels }

func (m *LogisticRegression) NumFeatures() int { return len(m.Coef) }
