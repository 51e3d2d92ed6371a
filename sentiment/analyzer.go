// Package sentiment classifies movie reviews with an exported TF-IDF
// vectorizer and a fitted classifier.
package sentiment

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Label is the user-facing sentiment.
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"

	// PositiveClass is the raw classifier class that maps to Positive. Every
	// other class maps to Negative.
	PositiveClass = "positive"
)

// Result is the outcome of analyzing one review.
type Result struct {
	Label      Label   `json:"label"`
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

// Analyzer runs a review through the vectorizer and then the classifier.
type Analyzer struct {
	vectorizer Vectorizer
	classifier Classifier
}

// NewAnalyzer pairs a vectorizer with a classifier, rejecting a classifier
// trained on a different feature space.
func NewAnalyzer(v Vectorizer, c Classifier) (*Analyzer, error) {
	if n := c.NumFeatures(); n > 0 && n != v.Size() {
		return nil, fmt.Errorf("%w: classifier expects %d features, vectorizer produces %d", ErrIncompatibleModel, n, v.Size())
	}
	return &Analyzer{vectorizer: v, classifier: c}, nil
}

// Load reads both artifacts from disk.
func Load(vectorizerPath, classifierPath string) (*Analyzer, error) {
	v, err := LoadVectorizer(vectorizerPath)
	if err != nil {
		return nil, err
	}
	c, err := LoadClassifier(classifierPath)
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(v, c)
}

// Analyze classifies review. Empty or whitespace-only input returns
// ErrEmptyReview without calling the model.
func (a *Analyzer) Analyze(ctx context.Context, review string) (Result, error) {
	if IsBlank(review) {
		return Result{}, ErrEmptyReview
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	pred, err := a.classifier.Predict(a.vectorizer.Transform(review))
	if err != nil {
		return Result{}, fmt.Errorf("predict: %w", err)
	}

	label := Negative
	if pred.Class == PositiveClass {
		label = Positive
	}
	return Result{Label: label, Class: pred.Class, Confidence: pred.Confidence}, nil
}

// IsBlank reports whether review holds nothing but whitespace. The ASCII
// file, group, record and unit separators (0x1c-0x1f) count as whitespace
// too, as they do for Python's str.strip.
func IsBlank(review string) bool {
	return strings.TrimFunc(review, isSpace) == ""
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Classes lists the raw classes of the loaded classifier.
func (a *Analyzer) Classes() []string {
	return a.classifier.Classes()
}
