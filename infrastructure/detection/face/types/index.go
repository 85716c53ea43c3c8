package face_types

import (
	"image"

	"gocv.io/x/gocv"
)

// DetectionStrategy is one interchangeable face detector in the locator's
// fallback chain. Implementations return every candidate box they find; the
// chain owns selection and padding.
type DetectionStrategy interface {
	Name() string
	Detect(img gocv.Mat) ([]image.Rectangle, error)
	Close()
}
