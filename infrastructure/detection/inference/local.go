package inference

import (
	"fmt"
	"image"
	"math"
	"os"
	"sync"

	"gocv.io/x/gocv"

	"nexora.io/infrastructure/logger"
)

// LocalONNXEngine runs a bundled binary real/fake classifier through the
// OpenCV DNN module. Output layout is two scores, real first.
type LocalONNXEngine struct {
	net          gocv.Net
	inputSize    image.Point
	modelsLoaded bool
	mutex        sync.Mutex
}

func NewLocalONNXEngine() *LocalONNXEngine {
	engine := &LocalONNXEngine{
		inputSize: image.Pt(224, 224),
	}

	modelPath := os.Getenv("DEEPFAKE_MODEL_PATH")
	if modelPath == "" {
		logger.Warning("local deepfake model path not configured, engine disabled")
		return engine
	}
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		logger.Warning("local deepfake model file not found, engine disabled", logger.LoggerOptions{
			Key:  "model_path",
			Data: modelPath,
		})
		return engine
	}

	engine.net = gocv.ReadNetFromONNX(modelPath)
	if engine.net.Empty() {
		logger.Error("failed to load local deepfake model", logger.LoggerOptions{
			Key:  "model_path",
			Data: modelPath,
		})
		return engine
	}
	engine.net.SetPreferableBackend(gocv.NetBackendDefault)
	engine.net.SetPreferableTarget(gocv.NetTargetCPU)

	engine.modelsLoaded = true
	logger.Info("local deepfake model loaded", logger.LoggerOptions{
		Key:  "model_path",
		Data: modelPath,
	})
	return engine
}

func (le *LocalONNXEngine) Name() string {
	return "local-onnx"
}

func (le *LocalONNXEngine) Predict(img gocv.Mat) (float64, error) {
	if !le.modelsLoaded {
		return 0, fmt.Errorf("local deepfake model not loaded")
	}

	le.mutex.Lock()
	defer le.mutex.Unlock()

	blob := gocv.BlobFromImage(img, 1.0/255.0, le.inputSize, gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	le.net.SetInput(blob, "")
	output := le.net.Forward("")
	defer output.Close()

	if output.Total() < 2 {
		return 0, fmt.Errorf("unexpected classifier output shape: %d values", output.Total())
	}

	realScore := float64(output.GetFloatAt(0, 0))
	fakeScore := float64(output.GetFloatAt(0, 1))
	return softmaxFake(realScore, fakeScore), nil
}

func (le *LocalONNXEngine) Close() {
	if le.modelsLoaded {
		le.net.Close()
	}
}

// softmaxFake turns raw [real, fake] logits into the fake-class probability.
func softmaxFake(realScore float64, fakeScore float64) float64 {
	m := math.Max(realScore, fakeScore)
	expReal := math.Exp(realScore - m)
	expFake := math.Exp(fakeScore - m)
	return expFake / (expReal + expFake)
}
