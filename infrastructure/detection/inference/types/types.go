package inference_types

import "gocv.io/x/gocv"

// InferenceEngine scores a face crop (or full frame) with the probability that
// it is synthetic. Engines sit in an ordered fallback chain; any error moves
// the chain to the next engine.
type InferenceEngine interface {
	Name() string
	Predict(img gocv.Mat) (float64, error)
}

// PlaceholderSource produces the degraded-mode score used when every engine in
// the chain has failed. It lives behind its own capability so tests can swap
// in a fixed value.
type PlaceholderSource interface {
	Probability() float64
}
