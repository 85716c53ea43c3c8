package inference

import (
	"math/rand"
	"sync"
	"time"
)

// Placeholder scores are drawn from a fixed mid-range interval so a fully
// degraded scan can never read as a confident verdict on its own.
const (
	placeholderMin = 0.40
	placeholderMax = 0.60
)

type UniformPlaceholder struct {
	rng   *rand.Rand
	mutex sync.Mutex
}

func NewUniformPlaceholder() *UniformPlaceholder {
	return &UniformPlaceholder{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (up *UniformPlaceholder) Probability() float64 {
	up.mutex.Lock()
	defer up.mutex.Unlock()
	return placeholderMin + up.rng.Float64()*(placeholderMax-placeholderMin)
}
