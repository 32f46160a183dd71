package model

import "errors"

// TrainingExample pairs a text with its class label. Examples are
// read-only once handed to a classifier.
type TrainingExample struct {
	Text  string
	Label string
}

// Ranked is one entry of a ranking: a training label and the score its
// text achieved against the query.
type Ranked struct {
	Label string
	Score float64
}

// Similarity scores how alike two texts are. Higher means more alike.
// Compression-based scores stay roughly inside [0, 1] but may drift
// slightly past either bound because of compressor framing overhead, so
// callers should not assume hard limits.
type Similarity interface {
	Score(a, b string) (float64, error)
}

// SimilarityFunc adapts a plain function to the Similarity interface.
type SimilarityFunc func(a, b string) (float64, error)

func (f SimilarityFunc) Score(a, b string) (float64, error) {
	return f(a, b)
}

var (
	// ErrEmptyTrainingSet is returned when a classifier is asked to work
	// with zero training examples.
	ErrEmptyTrainingSet = errors.New("training set is empty")

	// ErrDegenerateInput is returned when both inputs compress to zero
	// bytes and the similarity denominator vanishes.
	ErrDegenerateInput = errors.New("both inputs compressed to zero bytes")
)
