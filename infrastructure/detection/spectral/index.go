package spectral

import (
	"image"

	"gocv.io/x/gocv"
)

// Half-width of the central square zeroed out of the shifted spectrum.
// Authentic imagery concentrates energy in these low frequencies; synthetic
// faces leave unusually strong residue outside them.
const lowFrequencyHalfWidth = 30

// AnomalyScore computes the frequency-domain heuristic for one frame: the mean
// log-magnitude of the spectrum after the low-frequency centre is suppressed.
// The result is deterministic for identical pixels and roughly spans 0-100+.
// An unreadable or empty image scores 0.
func AnomalyScore(img gocv.Mat) float64 {
	if img.Empty() {
		return 0
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if img.Channels() > 1 {
		gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	} else {
		img.CopyTo(&gray)
	}

	floats := gocv.NewMat()
	defer floats.Close()
	gray.ConvertTo(&floats, gocv.MatTypeCV32F)

	spectrum := gocv.NewMat()
	defer spectrum.Close()
	gocv.DFT(floats, &spectrum, gocv.DftComplexOutput)

	planes := gocv.Split(spectrum)
	defer planes[0].Close()
	defer planes[1].Close()

	magnitude := gocv.NewMat()
	defer magnitude.Close()
	gocv.Magnitude(planes[0], planes[1], &magnitude)

	// 20*log(1+|F|), the usual decibel-style spectrum view.
	magnitude.AddFloat(1.0)
	logMagnitude := gocv.NewMat()
	defer logMagnitude.Close()
	gocv.Log(magnitude, &logMagnitude)
	logMagnitude.MultiplyFloat(20.0)

	shifted := shiftQuadrants(logMagnitude)
	defer shifted.Close()

	suppressLowFrequencies(&shifted)

	return shifted.Mean().Val1
}

// shiftQuadrants swaps the spectrum quadrants diagonally so the zero
// frequency sits in the centre. Odd rows/columns are cropped first.
func shiftQuadrants(spectrum gocv.Mat) gocv.Mat {
	cols := spectrum.Cols() &^ 1
	rows := spectrum.Rows() &^ 1
	cropped := spectrum.Region(image.Rect(0, 0, cols, rows))
	defer cropped.Close()
	shifted := cropped.Clone()

	cx, cy := cols/2, rows/2
	q0 := shifted.Region(image.Rect(0, 0, cx, cy))
	q1 := shifted.Region(image.Rect(cx, 0, cols, cy))
	q2 := shifted.Region(image.Rect(0, cy, cx, rows))
	q3 := shifted.Region(image.Rect(cx, cy, cols, rows))
	defer q0.Close()
	defer q1.Close()
	defer q2.Close()
	defer q3.Close()

	tmp := gocv.NewMat()
	defer tmp.Close()
	q0.CopyTo(&tmp)
	q3.CopyTo(&q0)
	tmp.CopyTo(&q3)
	q1.CopyTo(&tmp)
	q2.CopyTo(&q1)
	tmp.CopyTo(&q2)

	return shifted
}

// suppressLowFrequencies zeroes the central square of the shifted spectrum so
// only high-frequency energy contributes to the score.
func suppressLowFrequencies(shifted *gocv.Mat) {
	cx, cy := shifted.Cols()/2, shifted.Rows()/2
	halfWidth := lowFrequencyHalfWidth
	if halfWidth > cx {
		halfWidth = cx
	}
	if halfWidth > cy {
		halfWidth = cy
	}
	if halfWidth == 0 {
		return
	}

	center := shifted.Region(image.Rect(cx-halfWidth, cy-halfWidth, cx+halfWidth, cy+halfWidth))
	defer center.Close()
	center.SetTo(gocv.NewScalar(0, 0, 0, 0))
}
