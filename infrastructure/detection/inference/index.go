package inference

import (
	"gocv.io/x/gocv"

	"nexora.io/infrastructure/detection/inference/huggingface"
	inference_types "nexora.io/infrastructure/detection/inference/types"
	"nexora.io/infrastructure/logger"
)

// InferenceService tries each engine in order and falls back to the
// placeholder source when the whole chain is down. It is a process-wide
// singleton; engines are constructed once at startup and are safe for
// concurrent use.
type InferenceService struct {
	Engines     []inference_types.InferenceEngine
	Placeholder inference_types.PlaceholderSource
}

var Service *InferenceService

func InitialiseInferenceService() {
	Service = &InferenceService{
		Engines: []inference_types.InferenceEngine{
			huggingface.NewHuggingFaceEngine(),
			NewLocalONNXEngine(),
		},
		Placeholder: NewUniformPlaceholder(),
	}
}

// Predict returns the probability that the image is synthetic, clamped to
// [0,1]. The second return value reports degraded mode: every engine failed
// and the score is a placeholder.
func (s *InferenceService) Predict(img gocv.Mat) (float64, bool) {
	for _, engine := range s.Engines {
		prob, err := engine.Predict(img)
		if err != nil {
			logger.Warning("inference engine failed, advancing chain", logger.LoggerOptions{
				Key:  "engine",
				Data: engine.Name(),
			}, logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			continue
		}
		return clampProbability(prob), false
	}

	logger.Error("all inference engines failed, using placeholder score")
	return clampProbability(s.Placeholder.Probability()), true
}

func clampProbability(prob float64) float64 {
	if prob < 0 {
		return 0
	}
	if prob > 1 {
		return 1
	}
	return prob
}
