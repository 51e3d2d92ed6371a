package sentiment

import "errors"

var (
	// ErrEmptyReview is returned for empty or whitespace-only input. The model
	// is not consulted.
	ErrEmptyReview = errors.New("please enter a review to analyze")

	ErrIncompatibleModel = errors.New("incompatible model artifact")
	ErrUnknownModelType  = errors.New("unknown model type")
)
