package scan_usecases

import (
	"math"
	"testing"

	"nexora.io/entities"
)

func TestBlendConfidence(t *testing.T) {
	tests := []struct {
		name     string
		meanAI   float64
		meanFFT  float64
		expected float64
	}{
		{"strong fake signals", 0.9, 70, 84},
		{"weak signals", 0.1, 20, 13},
		{"ai only", 0.5, 0, 35},
		{"fft only", 0, 50, 15},
		{"capped at ceiling", 1.0, 200, 99.9},
		{"zero everything", 0, 0, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := BlendConfidence(test.meanAI, test.meanFFT)
			if math.Abs(got-test.expected) > 1e-9 {
				t.Errorf("BlendConfidence(%v, %v) = %v, expected %v", test.meanAI, test.meanFFT, got, test.expected)
			}
		})
	}
}

func TestFinalizeVerdicts(t *testing.T) {
	tests := []struct {
		name               string
		frames             []entities.FrameResult
		expectedVerdict    entities.ScanVerdict
		expectedConfidence float64
	}{
		{
			name: "single suspicious frame is flagged",
			frames: []entities.FrameResult{
				{Timestamp: 0, AIProbability: 0.9, FFTAnomalyScore: 70},
			},
			expectedVerdict:    entities.VerdictDeepfake,
			expectedConfidence: 84,
		},
		{
			name: "consistently clean frames read as real",
			frames: []entities.FrameResult{
				{Timestamp: 0, AIProbability: 0.1, FFTAnomalyScore: 20},
				{Timestamp: 1, AIProbability: 0.1, FFTAnomalyScore: 20},
				{Timestamp: 2, AIProbability: 0.1, FFTAnomalyScore: 20},
				{Timestamp: 3, AIProbability: 0.1, FFTAnomalyScore: 20},
				{Timestamp: 4, AIProbability: 0.1, FFTAnomalyScore: 20},
			},
			expectedVerdict:    entities.VerdictReal,
			expectedConfidence: 13,
		},
		{
			name: "exact threshold stays real",
			frames: []entities.FrameResult{
				{Timestamp: 0, AIProbability: 0.5, FFTAnomalyScore: 50},
			},
			expectedVerdict:    entities.VerdictReal,
			expectedConfidence: 50,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			aggregator := NewAggregator()
			for _, frame := range test.frames {
				aggregator.Record(frame)
			}
			verdict, confidence, frameData := aggregator.Finalize()
			if verdict != test.expectedVerdict {
				t.Errorf("verdict = %s, expected %s", verdict, test.expectedVerdict)
			}
			if math.Abs(confidence-test.expectedConfidence) > 1e-9 {
				t.Errorf("confidence = %v, expected %v", confidence, test.expectedConfidence)
			}
			if len(frameData) != len(test.frames) {
				t.Errorf("frame data length = %d, expected %d", len(frameData), len(test.frames))
			}
		})
	}
}

func TestFinalizeWithNoFrames(t *testing.T) {
	aggregator := NewAggregator()
	verdict, confidence, frameData := aggregator.Finalize()
	if verdict != entities.VerdictUncertain {
		t.Errorf("verdict = %s, expected %s", verdict, entities.VerdictUncertain)
	}
	if confidence != 0 {
		t.Errorf("confidence = %v, expected 0", confidence)
	}
	if frameData == nil || len(frameData) != 0 {
		t.Errorf("frame data = %v, expected empty slice", frameData)
	}
}

func TestFinalizeIsOrderIndependent(t *testing.T) {
	frames := []entities.FrameResult{
		{Timestamp: 0, AIProbability: 0.95, FFTAnomalyScore: 80, Thumbnail: "frame_000000.jpg"},
		{Timestamp: 1, AIProbability: 0.2, FFTAnomalyScore: 30, Thumbnail: "frame_000001.jpg"},
		{Timestamp: 2, AIProbability: 0.6, FFTAnomalyScore: 55, Thumbnail: "frame_000002.jpg"},
		{Timestamp: 3, AIProbability: 0.4, FFTAnomalyScore: 45, Thumbnail: "frame_000003.jpg"},
	}

	ordered := NewAggregator()
	for _, frame := range frames {
		ordered.Record(frame)
	}
	shuffled := NewAggregator()
	for _, i := range []int{2, 0, 3, 1} {
		shuffled.Record(frames[i])
	}

	orderedVerdict, orderedConfidence, orderedFrames := ordered.Finalize()
	shuffledVerdict, shuffledConfidence, shuffledFrames := shuffled.Finalize()

	if orderedVerdict != shuffledVerdict {
		t.Errorf("verdicts diverged: %s vs %s", orderedVerdict, shuffledVerdict)
	}
	if orderedConfidence != shuffledConfidence {
		t.Errorf("confidence diverged: %v vs %v", orderedConfidence, shuffledConfidence)
	}
	for i := range orderedFrames {
		if orderedFrames[i] != shuffledFrames[i] {
			t.Errorf("frame %d diverged after reordering: %+v vs %+v", i, orderedFrames[i], shuffledFrames[i])
		}
	}
}

func TestFinalizeRestoresTemporalOrder(t *testing.T) {
	aggregator := NewAggregator()
	for _, timestamp := range []float64{3, 0, 2, 1} {
		aggregator.Record(entities.FrameResult{Timestamp: timestamp, AIProbability: 0.5, FFTAnomalyScore: 10})
	}
	_, _, frameData := aggregator.Finalize()
	for i := 1; i < len(frameData); i++ {
		if frameData[i-1].Timestamp > frameData[i].Timestamp {
			t.Fatalf("frame data not in temporal order: %v before %v", frameData[i-1].Timestamp, frameData[i].Timestamp)
		}
	}
}
