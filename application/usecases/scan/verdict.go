package scan_usecases

import (
	"math"
	"sort"
	"sync"

	"nexora.io/application/constants"
	"nexora.io/entities"
)

// Aggregator folds per-frame signals into the final verdict. Recording is a
// commutative sum guarded by a mutex, so frames may be analysed in any order
// on any number of workers without changing the outcome.
type Aggregator struct {
	mutex   sync.Mutex
	sumAI   float64
	sumFFT  float64
	results []entities.FrameResult
}

func NewAggregator() *Aggregator {
	return &Aggregator{results: []entities.FrameResult{}}
}

func (a *Aggregator) Record(result entities.FrameResult) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.sumAI += result.AIProbability
	a.sumFFT += result.FFTAnomalyScore
	a.results = append(a.results, result)
}

func (a *Aggregator) Count() int {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return len(a.results)
}

// Finalize computes the blended confidence score and verdict and returns the
// frame results restored to temporal order. Zero analysed frames means
// UNCERTAIN with zero confidence.
func (a *Aggregator) Finalize() (entities.ScanVerdict, float64, []entities.FrameResult) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	count := len(a.results)
	if count == 0 {
		return entities.VerdictUncertain, 0, []entities.FrameResult{}
	}

	frameData := make([]entities.FrameResult, count)
	copy(frameData, a.results)
	sort.SliceStable(frameData, func(i, j int) bool {
		return frameData[i].Timestamp < frameData[j].Timestamp
	})

	meanAI := a.sumAI / float64(count)
	meanFFT := a.sumFFT / float64(count)
	confidence := BlendConfidence(meanAI, meanFFT)

	verdict := entities.VerdictReal
	if confidence > constants.DeepfakeThreshold {
		verdict = entities.VerdictDeepfake
	}
	return verdict, confidence, frameData
}

// BlendConfidence combines the mean AI probability and the mean frequency
// anomaly score into the 0-99.9 confidence scale. The frequency signal's
// native ~0-100 range is rescaled to a fraction before weighting.
func BlendConfidence(meanAI float64, meanFFT float64) float64 {
	blended := meanAI*100*constants.AISignalWeight + meanFFT*0.01*100*constants.FFTSignalWeight
	return math.Min(constants.MaxConfidence, roundTo(blended, 2))
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
