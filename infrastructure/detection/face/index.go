package face

import (
	"image"

	"gocv.io/x/gocv"

	"nexora.io/application/constants"
	face_types "nexora.io/infrastructure/detection/face/types"
	"nexora.io/infrastructure/logger"
)

// FaceLocator runs an ordered chain of detection strategies and crops the
// primary face out of a frame. Strategies are tried in sequence until one
// returns at least one box.
type FaceLocator struct {
	strategies []face_types.DetectionStrategy
}

var Locator *FaceLocator

func InitialiseFaceLocator() {
	Locator = &FaceLocator{
		strategies: []face_types.DetectionStrategy{
			NewYuNetStrategy(GetDefaultYuNetConfig()),
			NewHaarStrategy(),
		},
	}
}

// Locate finds the primary face in a frame and returns a padded crop. The
// second return value is false when no strategy found a usable region; callers
// are expected to analyse the full frame in that case.
func (fl *FaceLocator) Locate(img gocv.Mat) (gocv.Mat, bool) {
	if img.Empty() {
		return gocv.NewMat(), false
	}

	for _, strategy := range fl.strategies {
		boxes, err := strategy.Detect(img)
		if err != nil {
			logger.Warning("face strategy failed, advancing chain", logger.LoggerOptions{
				Key:  "strategy",
				Data: strategy.Name(),
			}, logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			continue
		}
		if len(boxes) == 0 {
			continue
		}

		primary := PrimaryRegion(boxes)
		padded, ok := PadRegion(primary, img.Cols(), img.Rows())
		if !ok {
			return gocv.NewMat(), false
		}
		region := img.Region(padded)
		defer region.Close()
		return region.Clone(), true
	}
	return gocv.NewMat(), false
}

func (fl *FaceLocator) Close() {
	for _, strategy := range fl.strategies {
		strategy.Close()
	}
}

// PrimaryRegion picks the largest box. Equal areas break leftmost first, then
// topmost, so selection never depends on detector iteration order.
func PrimaryRegion(boxes []image.Rectangle) image.Rectangle {
	primary := boxes[0]
	for _, box := range boxes[1:] {
		boxArea := box.Dx() * box.Dy()
		primaryArea := primary.Dx() * primary.Dy()
		if boxArea > primaryArea {
			primary = box
			continue
		}
		if boxArea == primaryArea {
			if box.Min.X < primary.Min.X || (box.Min.X == primary.Min.X && box.Min.Y < primary.Min.Y) {
				primary = box
			}
		}
	}
	return primary
}

// PadRegion expands a detected box by the padding ratio on every side and
// clamps it to the frame. The boolean is false when the clamped region is
// empty.
func PadRegion(box image.Rectangle, width int, height int) (image.Rectangle, bool) {
	xPad := int(float64(box.Dx()) * constants.FacePaddingRatio)
	yPad := int(float64(box.Dy()) * constants.FacePaddingRatio)

	padded := image.Rectangle{
		Min: image.Pt(max(0, box.Min.X-xPad), max(0, box.Min.Y-yPad)),
		Max: image.Pt(min(width, box.Max.X+xPad), min(height, box.Max.Y+yPad)),
	}
	if padded.Empty() {
		return image.Rectangle{}, false
	}
	return padded, true
}
