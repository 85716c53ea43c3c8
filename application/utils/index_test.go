package utils

import (
	"strings"
	"testing"
)

func TestGenerateScanID(t *testing.T) {
	id := GenerateScanID()
	if len(id) != 26 {
		t.Errorf("scan id length = %d, expected 26", len(id))
	}
	if id != strings.ToLower(id) {
		t.Errorf("scan id %s is not lowercase", id)
	}
}

func TestGenerateScanIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := GenerateScanID()
		if seen[id] {
			t.Fatalf("duplicate scan id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestHasItemString(t *testing.T) {
	arr := []string{"mp4", "avi", "mov"}
	if !HasItemString(&arr, "avi") {
		t.Error("expected avi to be found")
	}
	if HasItemString(&arr, "gif") {
		t.Error("did not expect gif to be found")
	}
}
