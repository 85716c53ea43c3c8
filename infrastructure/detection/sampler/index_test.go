package sampler

import (
	"math"
	"testing"

	"nexora.io/entities"
)

func TestSampleInterval(t *testing.T) {
	tests := []struct {
		name     string
		fps      float64
		expected int
	}{
		{"standard 30fps", 30, 30},
		{"cinema 24fps", 24, 24},
		{"ntsc rounds up", 29.97, 30},
		{"high speed 120fps", 120, 120},
		{"fractional clamps to every frame", 0.4, 1},
		{"zero falls back", 0, 30},
		{"negative falls back", -5, 30},
		{"nan falls back", math.NaN(), 30},
		{"infinity falls back", math.Inf(1), 30},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := SampleInterval(test.fps)
			if got != test.expected {
				t.Errorf("SampleInterval(%v) = %d, expected %d", test.fps, got, test.expected)
			}
		})
	}
}

func TestOpenUnreadableSourceIsExhausted(t *testing.T) {
	source := Open("/nonexistent/path/media.jpg", entities.ImageMedia)
	defer source.Close()
	if source.Next() {
		t.Error("expected an unreadable image source to yield no frames")
	}
	if source.Next() {
		t.Error("expected an exhausted source to stay exhausted")
	}
}
