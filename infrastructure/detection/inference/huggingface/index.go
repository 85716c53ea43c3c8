package huggingface

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gocv.io/x/gocv"

	"nexora.io/infrastructure/logger"
	"nexora.io/infrastructure/network"
)

// HuggingFaceEngine calls a hosted image-classification model on the
// HuggingFace inference API. It is the preferred engine in the chain; any
// transport or parsing failure makes the chain fall back to the local model.
type HuggingFaceEngine struct {
	Network *network.NetworkController
	Token   string
}

type classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func NewHuggingFaceEngine() *HuggingFaceEngine {
	return &HuggingFaceEngine{
		Network: &network.NetworkController{
			BaseUrl: os.Getenv("HF_MODEL_URL"),
		},
		Token: os.Getenv("HF_TOKEN"),
	}
}

func (hf *HuggingFaceEngine) Name() string {
	return "huggingface"
}

func (hf *HuggingFaceEngine) Predict(img gocv.Mat) (float64, error) {
	if hf.Network.BaseUrl == "" || hf.Token == "" {
		return 0, errors.New("huggingface engine not configured")
	}

	buf, err := gocv.IMEncode(".jpg", img)
	if err != nil {
		return 0, fmt.Errorf("failed to encode frame for remote inference: %w", err)
	}
	defer buf.Close()

	response, _, err := hf.Network.Post("", &map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", hf.Token),
		"Content-Type":  "application/octet-stream",
	}, buf.GetBytes())
	if err != nil {
		return 0, err
	}

	var classifications []classification
	if err := json.Unmarshal(*response, &classifications); err != nil {
		return 0, fmt.Errorf("error parsing huggingface classification response: %w", err)
	}
	if len(classifications) == 0 {
		return 0, errors.New("huggingface returned no classifications")
	}

	top := classifications[0]
	for _, c := range classifications[1:] {
		if c.Score > top.Score {
			top = c
		}
	}

	prob := NormalizeFakeProbability(top.Label, top.Score)
	logger.Info("remote inference completed", logger.LoggerOptions{
		Key:  "label",
		Data: top.Label,
	}, logger.LoggerOptions{
		Key:  "fake_probability",
		Data: prob,
	})
	return prob, nil
}

// NormalizeFakeProbability converts a labelled classification score into the
// probability that the image is synthetic: a "real" label with score s means
// 1-s, a "fake"/"deepfake" label means s.
func NormalizeFakeProbability(label string, score float64) float64 {
	if strings.Contains(strings.ToLower(label), "real") {
		return 1 - score
	}
	return score
}
