package scan_usecases

import (
	"testing"

	"nexora.io/entities"
)

func TestScanStateKey(t *testing.T) {
	if got := scanStateKey("abc123"); got != "abc123-scan-state" {
		t.Errorf("scanStateKey = %s, expected abc123-scan-state", got)
	}
}

func TestGetScanStateDefaultsToProcessing(t *testing.T) {
	// With no registry entry reachable the lifecycle must read as in-flight,
	// never as an error.
	if state := GetScanState("never-submitted"); state != entities.ScanProcessing {
		t.Errorf("state = %s, expected %s", state, entities.ScanProcessing)
	}
}
