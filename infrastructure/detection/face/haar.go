package face

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"gocv.io/x/gocv"

	"nexora.io/infrastructure/logger"
)

// HaarStrategy detects faces with the classical frontal-face Haar cascade. It
// is the last strategy in the locator chain and needs no downloaded DNN model.
type HaarStrategy struct {
	faceCascade  gocv.CascadeClassifier
	modelsLoaded bool
	mutex        sync.Mutex
}

func NewHaarStrategy() *HaarStrategy {
	strategy := &HaarStrategy{}

	cascadePath := os.Getenv("OPENCV_CASCADE_PATH")
	if cascadePath == "" {
		cascadePath = "./models/haarcascades"
	}

	strategy.faceCascade = gocv.NewCascadeClassifier()
	cascadeFile := filepath.Join(cascadePath, "haarcascade_frontalface_default.xml")
	if !strategy.faceCascade.Load(cascadeFile) {
		alternativePaths := []string{
			"haarcascade_frontalface_default.xml",
			"/usr/local/share/opencv4/haarcascades/haarcascade_frontalface_default.xml",
			"/usr/share/opencv4/haarcascades/haarcascade_frontalface_default.xml",
			"/opt/homebrew/share/opencv4/haarcascades/haarcascade_frontalface_default.xml",
		}
		loaded := false
		for _, path := range alternativePaths {
			if strategy.faceCascade.Load(path) {
				loaded = true
				break
			}
		}
		if !loaded {
			logger.Error("failed to load Haar cascade, strategy disabled", logger.LoggerOptions{
				Key:  "cascade_file",
				Data: cascadeFile,
			})
			return strategy
		}
	}

	strategy.modelsLoaded = true
	logger.Info("Haar cascade face strategy initialised")
	return strategy
}

func (hs *HaarStrategy) Name() string {
	return "haar-cascade"
}

func (hs *HaarStrategy) Detect(img gocv.Mat) ([]image.Rectangle, error) {
	if !hs.modelsLoaded {
		return nil, fmt.Errorf("haar cascade not loaded")
	}

	hs.mutex.Lock()
	defer hs.mutex.Unlock()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	faces := hs.faceCascade.DetectMultiScaleWithParams(
		gray, 1.1, 3, 0, image.Pt(30, 30), image.Pt(0, 0),
	)
	return faces, nil
}

func (hs *HaarStrategy) Close() {
	hs.faceCascade.Close()
}
