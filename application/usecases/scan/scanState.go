package scan_usecases

import (
	"fmt"
	"time"

	"nexora.io/entities"
	"nexora.io/infrastructure/database/repository/cache"
)

// State registry entries outlive any realistic pipeline run but expire
// eventually so abandoned ids do not accumulate in redis.
const scanStateTTL = 24 * time.Hour

func scanStateKey(scanID string) string {
	return fmt.Sprintf("%s-scan-state", scanID)
}

// SetScanState records where a scan is in its lifecycle. COMPLETE is implied
// by the report row and clears the registry entry instead.
func SetScanState(scanID string, state entities.ScanState) {
	if state == entities.ScanComplete {
		cache.Cache.DeleteOne(scanStateKey(scanID))
		return
	}
	cache.Cache.CreateEntry(scanStateKey(scanID), string(state), scanStateTTL)
}

// GetScanState reads the registry. A missing entry reads as PROCESSING: the
// entry may simply have expired while the report write is in flight.
func GetScanState(scanID string) entities.ScanState {
	value := cache.Cache.FindOne(scanStateKey(scanID))
	if value == nil {
		return entities.ScanProcessing
	}
	switch entities.ScanState(*value) {
	case entities.ScanPending:
		return entities.ScanPending
	case entities.ScanFailed:
		return entities.ScanFailed
	default:
		return entities.ScanProcessing
	}
}
