package huggingface

import (
	"math"
	"testing"
)

func TestNormalizeFakeProbability(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		score    float64
		expected float64
	}{
		{"fake label passes through", "Fake", 0.8, 0.8},
		{"deepfake label passes through", "deepfake", 0.95, 0.95},
		{"real label inverts", "Real", 0.9, 0.1},
		{"uppercase real inverts", "REAL", 0.7, 0.3},
		{"realistic substring inverts", "realistic", 0.6, 0.4},
		{"unknown label passes through", "artificial", 0.5, 0.5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := NormalizeFakeProbability(test.label, test.score)
			if math.Abs(got-test.expected) > 1e-9 {
				t.Errorf("NormalizeFakeProbability(%q, %v) = %v, expected %v", test.label, test.score, got, test.expected)
			}
		})
	}
}
