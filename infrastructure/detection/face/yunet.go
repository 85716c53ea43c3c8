package face

import (
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"

	"nexora.io/infrastructure/logger"
)

// YuNetStrategy detects faces with the YuNet landmark-based DNN. It is the
// preferred strategy in the locator chain.
type YuNetStrategy struct {
	detector     gocv.FaceDetectorYN
	modelsLoaded bool
	mutex        sync.Mutex
}

type YuNetConfig struct {
	ModelPath           string
	InputSize           image.Point
	ConfidenceThreshold float32
	NMSThreshold        float32
	TopK                int
}

func GetDefaultYuNetConfig() YuNetConfig {
	return YuNetConfig{
		ModelPath:           os.Getenv("YUNET_MODEL_PATH"),
		InputSize:           image.Pt(320, 320),
		ConfidenceThreshold: 0.6,
		NMSThreshold:        0.3,
		TopK:                5000,
	}
}

func NewYuNetStrategy(config YuNetConfig) *YuNetStrategy {
	strategy := &YuNetStrategy{}

	if config.ModelPath == "" {
		logger.Warning("YuNet model path not configured, strategy disabled")
		return strategy
	}
	if _, err := os.Stat(config.ModelPath); os.IsNotExist(err) {
		logger.Warning("YuNet model file not found, strategy disabled", logger.LoggerOptions{
			Key:  "model_path",
			Data: config.ModelPath,
		})
		return strategy
	}

	detector := gocv.NewFaceDetectorYN(
		config.ModelPath,
		"",
		image.Pt(config.InputSize.X, config.InputSize.Y),
	)
	detector.SetScoreThreshold(config.ConfidenceThreshold)
	detector.SetNMSThreshold(config.NMSThreshold)
	detector.SetTopK(config.TopK)

	strategy.detector = detector
	strategy.modelsLoaded = true
	logger.Info("YuNet face strategy initialised", logger.LoggerOptions{
		Key:  "model_path",
		Data: config.ModelPath,
	})
	return strategy
}

func (ys *YuNetStrategy) Name() string {
	return "yunet"
}

func (ys *YuNetStrategy) Detect(img gocv.Mat) ([]image.Rectangle, error) {
	if !ys.modelsLoaded {
		return nil, fmt.Errorf("YuNet model not loaded")
	}

	ys.mutex.Lock()
	defer ys.mutex.Unlock()

	ys.detector.SetInputSize(image.Pt(img.Cols(), img.Rows()))

	facesMat := gocv.NewMat()
	defer facesMat.Close()
	ys.detector.Detect(img, &facesMat)

	return ys.parseDetections(facesMat, img), nil
}

// parseDetections reads YuNet rows of
// [x, y, w, h, 5 landmark pairs, score] and clips boxes to the image.
func (ys *YuNetStrategy) parseDetections(facesMat gocv.Mat, img gocv.Mat) []image.Rectangle {
	var faces []image.Rectangle
	if facesMat.Empty() || facesMat.Rows() == 0 {
		return faces
	}
	for i := 0; i < facesMat.Rows(); i++ {
		x := int(facesMat.GetFloatAt(i, 0))
		y := int(facesMat.GetFloatAt(i, 1))
		w := int(facesMat.GetFloatAt(i, 2))
		h := int(facesMat.GetFloatAt(i, 3))
		box := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, img.Cols(), img.Rows()))
		if box.Empty() {
			continue
		}
		faces = append(faces, box)
	}
	return faces
}

func (ys *YuNetStrategy) Close() {
	if ys.modelsLoaded {
		ys.detector.Close()
	}
}
