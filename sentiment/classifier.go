package sentiment

import (
	"encoding/json"
	"fmt"
	"os"
)

// Prediction is the raw output of a classifier.
type Prediction struct {
	Class      string
	Confidence float64
}

// Classifier maps a feature vector to one of its classes.
// Implementations are read-only after loading and safe for concurrent use.
type Classifier interface {
	Predict(x SparseVector) (Prediction, error)
	Classes() []string
	NumFeatures() int
}

const (
	TypeRandomForest       = "random_forest"
	TypeLogisticRegression = "logistic_regression"
)

// LoadClassifier reads a classifier artifact and dispatches on its "type"
// field.
func LoadClassifier(path string) (Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read classifier: %w", err)
	}

	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("decode classifier %s: %w", path, err)
	}

	var clf interface {
		Classifier
		init() error
	}
	switch header.Type {
	case TypeRandomForest:
		clf = &RandomForest{}
	case TypeLogisticRegression:
		clf = &LogisticRegression{}
	default:
		return nil, fmt.Errorf("classifier %s: %w %q", path, ErrUnknownModelType, header.Type)
	}

	if err := json.Unmarshal(data, clf); err != nil {
		return nil, fmt.Errorf("decode classifier %s: %w", path, err)
	}
	if err := clf.init(); err != nil {
		return nil, fmt.Errorf("classifier %s: %w", path, err)
	}
	return clf, nil
}

func argmax(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}
