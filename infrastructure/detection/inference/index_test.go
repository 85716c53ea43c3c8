package inference

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"

	inference_types "nexora.io/infrastructure/detection/inference/types"
)

type stubEngine struct {
	name string
	prob float64
	err  error
}

func (s *stubEngine) Name() string { return s.name }

func (s *stubEngine) Predict(img gocv.Mat) (float64, error) {
	return s.prob, s.err
}

type fixedPlaceholder struct {
	prob float64
}

func (f *fixedPlaceholder) Probability() float64 { return f.prob }

func TestPredictUsesFirstHealthyEngine(t *testing.T) {
	service := &InferenceService{
		Engines: []inference_types.InferenceEngine{
			&stubEngine{name: "primary", prob: 0.8},
			&stubEngine{name: "secondary", prob: 0.1},
		},
		Placeholder: &fixedPlaceholder{prob: 0.5},
	}

	img := gocv.NewMat()
	defer img.Close()
	prob, degraded := service.Predict(img)
	if prob != 0.8 {
		t.Errorf("probability = %v, expected 0.8 from the primary engine", prob)
	}
	if degraded {
		t.Error("expected a healthy chain not to report degraded mode")
	}
}

func TestPredictAdvancesPastFailedEngines(t *testing.T) {
	service := &InferenceService{
		Engines: []inference_types.InferenceEngine{
			&stubEngine{name: "primary", err: errors.New("connection refused")},
			&stubEngine{name: "secondary", prob: 0.3},
		},
		Placeholder: &fixedPlaceholder{prob: 0.5},
	}

	img := gocv.NewMat()
	defer img.Close()
	prob, degraded := service.Predict(img)
	if prob != 0.3 {
		t.Errorf("probability = %v, expected 0.3 from the fallback engine", prob)
	}
	if degraded {
		t.Error("a successful fallback engine is not degraded mode")
	}
}

func TestPredictFallsBackToPlaceholder(t *testing.T) {
	service := &InferenceService{
		Engines: []inference_types.InferenceEngine{
			&stubEngine{name: "primary", err: errors.New("connection refused")},
			&stubEngine{name: "secondary", err: errors.New("model file missing")},
		},
		Placeholder: &fixedPlaceholder{prob: 0.55},
	}

	img := gocv.NewMat()
	defer img.Close()
	prob, degraded := service.Predict(img)
	if prob != 0.55 {
		t.Errorf("probability = %v, expected the placeholder score 0.55", prob)
	}
	if !degraded {
		t.Error("expected degraded mode when every engine fails")
	}
}

func TestPredictClampsOutOfRangeScores(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected float64
	}{
		{"above one", 1.5, 1},
		{"below zero", -0.2, 0},
		{"in range", 0.42, 0.42},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := &InferenceService{
				Engines:     []inference_types.InferenceEngine{&stubEngine{name: "stub", prob: test.raw}},
				Placeholder: &fixedPlaceholder{},
			}
			img := gocv.NewMat()
			defer img.Close()
			prob, _ := service.Predict(img)
			if prob != test.expected {
				t.Errorf("probability = %v, expected %v", prob, test.expected)
			}
		})
	}
}

func TestSoftmaxFake(t *testing.T) {
	if got := softmaxFake(0, 0); got != 0.5 {
		t.Errorf("softmaxFake(0, 0) = %v, expected 0.5", got)
	}
	if got := softmaxFake(-10, 10); got < 0.99 {
		t.Errorf("softmaxFake(-10, 10) = %v, expected near 1", got)
	}
	if got := softmaxFake(10, -10); got > 0.01 {
		t.Errorf("softmaxFake(10, -10) = %v, expected near 0", got)
	}
}

func TestUniformPlaceholderStaysInBand(t *testing.T) {
	placeholder := NewUniformPlaceholder()
	for i := 0; i < 100; i++ {
		prob := placeholder.Probability()
		if prob < 0.40 || prob > 0.60 {
			t.Fatalf("placeholder probability %v outside the uncertain band", prob)
		}
	}
}
